package store

import (
	"context"
	"fmt"

	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

type AppointmentStore struct {
	kind salon.Kind
	deps Deps
}

func NewAppointmentStore(kind salon.Kind, deps Deps) *AppointmentStore {
	return &AppointmentStore{kind: kind, deps: deps}
}

func (s *AppointmentStore) Kind() salon.Kind {
	return s.kind
}

func (s *AppointmentStore) cacheKey() string {
	return "appointments:" + string(s.kind)
}

func (s *AppointmentStore) List(ctx context.Context, sess *session.Session) ([]salon.Appointment, error) {
	return listCached[salon.Appointment](ctx, sess, s.deps, s.cacheKey(), s.kind.AppointmentListPath())
}

func (s *AppointmentStore) Create(ctx context.Context, sess *session.Session, req salon.AppointmentRequest) (*salon.Appointment, error) {
	req.Kind = s.kind

	var created salon.Appointment
	if err := s.deps.Remote.Post(ctx, sess, "/appointment/", req.Payload(), &created); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "appointment_created", "appointment", created.ID, nil)
	return &created, nil
}

func (s *AppointmentStore) Update(ctx context.Context, sess *session.Session, req salon.AppointmentRequest) (*salon.Appointment, error) {
	req.Kind = s.kind

	var updated salon.Appointment
	path := fmt.Sprintf("/appointment/%s/admin/update", req.ID)
	if err := s.deps.Remote.Put(ctx, sess, path, req.Payload(), &updated); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "appointment_updated", "appointment", req.ID, nil)
	return &updated, nil
}

// Cancel requests a provider-side cancellation. The status transition is
// the backend's call; the gateway only refuses appointments it already
// knows to be terminal.
func (s *AppointmentStore) Cancel(ctx context.Context, sess *session.Session, id string) (*salon.Appointment, error) {
	if err := s.checkTransition(ctx, sess, id, salon.CanCancel); err != nil {
		return nil, err
	}

	var cancelled salon.Appointment
	path := fmt.Sprintf("/appointment/%s/admin/cancel", id)
	if err := s.deps.Remote.Put(ctx, sess, path, nil, &cancelled); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "appointment_cancelled", "appointment", id, nil)
	return &cancelled, nil
}

func (s *AppointmentStore) Complete(ctx context.Context, sess *session.Session, id string) (*salon.Appointment, error) {
	if err := s.checkTransition(ctx, sess, id, salon.CanComplete); err != nil {
		return nil, err
	}

	var completed salon.Appointment
	path := fmt.Sprintf("/appointment/%s/status/completed", id)
	if err := s.deps.Remote.Post(ctx, sess, path, nil, &completed); err != nil {
		return nil, err
	}

	s.deps.Cache.Invalidate(s.cacheKey())
	s.deps.dispatch(sess, "appointment_completed", "appointment", id, nil)
	return &completed, nil
}

func (s *AppointmentStore) checkTransition(
	ctx context.Context,
	sess *session.Session,
	id string,
	allowed func(salon.Status) error,
) error {

	appointments, err := s.List(ctx, sess)
	if err != nil {
		// Can't pre-check; let the backend decide.
		return nil
	}

	for _, ap := range appointments {
		if ap.ID == id {
			return allowed(ap.Status)
		}
	}

	return nil
}
