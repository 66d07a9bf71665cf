package store

import (
	"context"

	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

// ServiceStore covers the priced catalog: haircut types for barbers,
// beauty services for estheticians.
type ServiceStore struct {
	kind salon.Kind
	deps Deps
}

func NewServiceStore(kind salon.Kind, deps Deps) *ServiceStore {
	return &ServiceStore{kind: kind, deps: deps}
}

func (s *ServiceStore) Kind() salon.Kind {
	return s.kind
}

func (s *ServiceStore) cacheKey() string {
	return "services:" + s.kind.ServiceSegment()
}

func (s *ServiceStore) List(ctx context.Context, sess *session.Session) ([]salon.Service, error) {
	return listCached[salon.Service](ctx, sess, s.deps, s.cacheKey(), s.kind.ServiceListPath())
}

func (s *ServiceStore) Create(ctx context.Context, sess *session.Session, svc salon.Service) (*salon.Service, error) {
	var created salon.Service
	if err := s.deps.Remote.Post(ctx, sess, s.kind.ServiceCreatePath(), svc, &created); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "service_created", s.kind.ServiceSegment(), created.ID.String(), nil)
	return &created, nil
}

func (s *ServiceStore) Update(ctx context.Context, sess *session.Session, svc salon.Service) (*salon.Service, error) {
	var updated salon.Service
	if err := s.deps.Remote.Put(ctx, sess, s.kind.ServiceUpdatePath(svc.ID.String()), svc, &updated); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "service_updated", s.kind.ServiceSegment(), svc.ID.String(), nil)
	return &updated, nil
}

func (s *ServiceStore) Delete(ctx context.Context, sess *session.Session, id string) error {
	if err := s.deps.Remote.Delete(ctx, sess, s.kind.ServiceDeletePath(id), nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "service_deleted", s.kind.ServiceSegment(), id, nil)
	return nil
}
