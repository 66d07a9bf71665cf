package store

import (
	"context"

	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

type ProviderStore struct {
	kind salon.Kind
	deps Deps
}

func NewProviderStore(kind salon.Kind, deps Deps) *ProviderStore {
	return &ProviderStore{kind: kind, deps: deps}
}

func (s *ProviderStore) Kind() salon.Kind {
	return s.kind
}

func (s *ProviderStore) cacheKey() string {
	return "providers:" + string(s.kind)
}

func (s *ProviderStore) List(ctx context.Context, sess *session.Session) ([]salon.Provider, error) {
	return listCached[salon.Provider](ctx, sess, s.deps, s.cacheKey(), s.kind.ProviderListPath())
}

func (s *ProviderStore) Create(ctx context.Context, sess *session.Session, p salon.Provider) (*salon.Provider, error) {
	var created salon.Provider
	if err := s.deps.Remote.Post(ctx, sess, s.kind.ProviderCreatePath(), p, &created); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "provider_created", string(s.kind), created.ID, nil)
	return &created, nil
}

func (s *ProviderStore) Update(ctx context.Context, sess *session.Session, p salon.Provider) (*salon.Provider, error) {
	var updated salon.Provider
	if err := s.deps.Remote.Put(ctx, sess, s.kind.ProviderUpdatePath(p.ID), p, &updated); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "provider_updated", string(s.kind), p.ID, nil)
	return &updated, nil
}

func (s *ProviderStore) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := s.deps.Remote.Delete(ctx, sess, s.kind.ProviderDeletePath(id), nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "provider_deleted", string(s.kind), id, nil)
	return nil
}
