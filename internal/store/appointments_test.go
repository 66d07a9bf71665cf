package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonbelle/salon-admin/internal/cache"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
)

func testSession() *session.Session {
	return &session.Session{Token: "t", Subject: "admin@salon.fr", ExpiresAt: time.Now().Add(time.Hour)}
}

type appointmentBackend struct {
	srv *httptest.Server

	listHits   atomic.Int64
	cancelHits atomic.Int64
	listBody   string
	mutateFail func(w http.ResponseWriter) bool
}

func newAppointmentBackend(t *testing.T, listBody string) *appointmentBackend {
	t.Helper()
	b := &appointmentBackend{listBody: listBody}

	b.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")

		switch {
		case strings.HasSuffix(r.URL.Path, "/all"):
			b.listHits.Add(1)
			w.Write([]byte(b.listBody))

		case r.URL.Path == "/appointment/" && r.Method == http.MethodPost:
			if b.mutateFail != nil && b.mutateFail(w) {
				return
			}
			w.Write([]byte(`{"id":"new-1","barberId":"b1","status":"PENDING"}`))

		case strings.HasSuffix(r.URL.Path, "/admin/cancel"):
			b.cancelHits.Add(1)
			w.Write([]byte(`{"id":"a1","barberId":"b1","status":"CANCELLED_BY_PROVIDER"}`))

		default:
			http.NotFound(w, r)
		}
	}))

	t.Cleanup(b.srv.Close)
	return b
}

func newAppointmentStore(t *testing.T, b *appointmentBackend) *AppointmentStore {
	t.Helper()

	queryCache, err := cache.New(8, time.Minute)
	require.NoError(t, err)

	return NewAppointmentStore(salon.KindBarber, Deps{
		Remote: remote.NewClient(b.srv.URL),
		Cache:  queryCache,
	})
}

func TestListServesFromCache(t *testing.T) {
	b := newAppointmentBackend(t, `[{"id":"a1","barberId":"b1","status":"PENDING"}]`)
	s := newAppointmentStore(t, b)
	ctx := context.Background()
	sess := testSession()

	first, err := s.List(ctx, sess)
	require.NoError(t, err)
	require.Len(t, first, 1)

	second, err := s.List(ctx, sess)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	assert.Equal(t, int64(1), b.listHits.Load(), "second list must be served from cache")
}

func TestCreateInvalidatesList(t *testing.T) {
	b := newAppointmentBackend(t, `[{"id":"a1","barberId":"b1","status":"PENDING"}]`)
	s := newAppointmentStore(t, b)
	ctx := context.Background()
	sess := testSession()

	_, err := s.List(ctx, sess)
	require.NoError(t, err)

	_, err = s.Create(ctx, sess, salon.AppointmentRequest{
		Email:           "client@mail.fr",
		ProviderID:      "b1",
		ServiceType:     "Dégradé",
		AppointmentTime: time.Date(2030, 5, 10, 14, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	_, err = s.List(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, int64(2), b.listHits.Load(), "a successful create must force a refetch")
}

func TestFailedMutationKeepsCache(t *testing.T) {
	b := newAppointmentBackend(t, `[{"id":"a1","barberId":"b1","status":"PENDING"}]`)
	b.mutateFail = func(w http.ResponseWriter) bool {
		w.WriteHeader(http.StatusForbidden)
		w.Write([]byte(`{"message":"Accès réservé aux superviseurs"}`))
		return true
	}
	s := newAppointmentStore(t, b)
	ctx := context.Background()
	sess := testSession()

	_, err := s.List(ctx, sess)
	require.NoError(t, err)

	_, err = s.Create(ctx, sess, salon.AppointmentRequest{
		Email:      "client@mail.fr",
		ProviderID: "b1",
	})
	require.Error(t, err)
	assert.True(t, remote.IsSupervisorDenied(err))

	_, err = s.List(ctx, sess)
	require.NoError(t, err)

	assert.Equal(t, int64(1), b.listHits.Load(), "a failed mutation must not touch the cache")
}

func TestCancelRefusesTerminalAppointmentLocally(t *testing.T) {
	b := newAppointmentBackend(t, `[{"id":"a1","barberId":"b1","status":"COMPLETED"}]`)
	s := newAppointmentStore(t, b)
	ctx := context.Background()
	sess := testSession()

	_, err := s.Cancel(ctx, sess, "a1")
	assert.True(t, httperr.IsBusiness(err, "invalid_state"))
	assert.Equal(t, int64(0), b.cancelHits.Load(), "a known-terminal appointment must be refused before the backend")
}

func TestCancelPassesNonTerminalToBackend(t *testing.T) {
	b := newAppointmentBackend(t, `[{"id":"a1","barberId":"b1","status":"PENDING"}]`)
	s := newAppointmentStore(t, b)
	ctx := context.Background()
	sess := testSession()

	cancelled, err := s.Cancel(ctx, sess, "a1")
	require.NoError(t, err)
	assert.Equal(t, salon.StatusCancelledByProvider, cancelled.Status)
	assert.Equal(t, int64(1), b.cancelHits.Load())
}
