package store

import (
	"context"
	"fmt"

	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

const clientsKey = "clients"

type ClientStore struct {
	deps Deps
}

func NewClientStore(deps Deps) *ClientStore {
	return &ClientStore{deps: deps}
}

func (s *ClientStore) List(ctx context.Context, sess *session.Session) ([]salon.Client, error) {
	return listCached[salon.Client](ctx, sess, s.deps, clientsKey, "/client/admin/all")
}

// Create signs the client up through the admin auth route; the backend
// owns the account, the dashboard just registers it.
func (s *ClientStore) Create(ctx context.Context, sess *session.Session, cl salon.Client) (*salon.Client, error) {
	var created salon.Client
	if err := s.deps.Remote.Post(ctx, sess, "/auth/admin/signup/client", cl, &created); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(clientsKey)
	s.deps.dispatch(sess, "client_created", "client", created.ID, nil)
	return &created, nil
}

func (s *ClientStore) Update(ctx context.Context, sess *session.Session, cl salon.Client) (*salon.Client, error) {
	var updated salon.Client
	path := fmt.Sprintf("/client/%s/admin/update", cl.ID)
	if err := s.deps.Remote.Put(ctx, sess, path, cl, &updated); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(clientsKey)
	s.deps.dispatch(sess, "client_updated", "client", cl.ID, nil)
	return &updated, nil
}

func (s *ClientStore) Delete(ctx context.Context, sess *session.Session, id string) error {
	path := fmt.Sprintf("/client/%s/admin/delete", id)
	if err := s.deps.Remote.Delete(ctx, sess, path, nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(clientsKey)
	s.deps.dispatch(sess, "client_deleted", "client", id, nil)
	return nil
}

func (s *ClientStore) DeleteAll(ctx context.Context, sess *session.Session) error {
	if err := s.deps.Remote.Delete(ctx, sess, "/client/admin/delete-all", nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(clientsKey)
	s.deps.dispatch(sess, "clients_deleted_all", "client", "", nil)
	return nil
}
