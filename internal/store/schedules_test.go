package store

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/maisonbelle/salon-admin/internal/cache"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/salon"
)

func newScheduleStore(t *testing.T, url string, now time.Time) (*ScheduleStore, *cache.Cache) {
	t.Helper()

	queryCache, err := cache.New(8, time.Minute)
	require.NoError(t, err)

	s := NewScheduleStore(Deps{
		Remote: remote.NewClient(url),
		Cache:  queryCache,
	}, "UTC")
	s.now = func() time.Time { return now }

	return s, queryCache
}

func validRule() salon.ScheduleRequest {
	return salon.ScheduleRequest{
		Kind:          salon.KindBarber,
		ProviderID:    "b1",
		WorkingDays:   []int{1, 2, 3, 4, 5},
		StartTime:     time.Date(2030, 5, 10, 9, 0, 0, 0, time.UTC),
		EndTime:       time.Date(2030, 5, 10, 18, 0, 0, 0, time.UTC),
		IsRecurring:   true,
		EffectiveFrom: "2030-05-10",
		EffectiveTo:   "2030-08-10",
	}
}

func TestBulkCreateValidation(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
	}))
	defer srv.Close()

	s, _ := newScheduleStore(t, srv.URL, now)
	ctx := context.Background()
	sess := testSession()

	cases := []struct {
		name   string
		mutate func(*salon.ScheduleRequest)
		code   string
	}{
		{"missing provider", func(r *salon.ScheduleRequest) { r.ProviderID = "" }, "missing_provider"},
		{"no working days", func(r *salon.ScheduleRequest) { r.WorkingDays = nil }, "missing_working_days"},
		{"sunday is not bookable", func(r *salon.ScheduleRequest) { r.WorkingDays = []int{0, 1} }, "invalid_working_day"},
		{"day out of range", func(r *salon.ScheduleRequest) { r.WorkingDays = []int{7} }, "invalid_working_day"},
		{"end before start", func(r *salon.ScheduleRequest) {
			r.EndTime = r.StartTime.Add(-time.Hour)
		}, "invalid_time_range"},
		{"garbage effective date", func(r *salon.ScheduleRequest) { r.EffectiveFrom = "10/05/2030" }, "invalid_effective_date"},
		{"effective date in the past", func(r *salon.ScheduleRequest) {
			r.EffectiveFrom = "2020-01-01"
		}, "effective_date_in_past"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			req := validRule()
			tc.mutate(&req)

			err := s.BulkCreate(ctx, sess, req)
			assert.True(t, httperr.IsBusiness(err, tc.code), "expected %s, got %v", tc.code, err)
		})
	}

	assert.Equal(t, int64(0), hits.Load(), "invalid rules must never reach the backend")
}

func TestBulkCreateInvalidatesProviderSchedules(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	var listHits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if r.Method == http.MethodGet {
			listHits.Add(1)
			w.Write([]byte(`[{"id":"s1","barberId":"b1","workingDays":[1,2]}]`))
			return
		}
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s, _ := newScheduleStore(t, srv.URL, now)
	ctx := context.Background()
	sess := testSession()

	_, err := s.ListForProvider(ctx, sess, salon.KindBarber, "b1")
	require.NoError(t, err)

	require.NoError(t, s.BulkCreate(ctx, sess, validRule()))

	_, err = s.ListForProvider(ctx, sess, salon.KindBarber, "b1")
	require.NoError(t, err)

	assert.Equal(t, int64(2), listHits.Load())
}

func TestDeleteOnlyTouchesThatProvider(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	s, queryCache := newScheduleStore(t, srv.URL, now)
	ctx := context.Background()
	sess := testSession()

	queryCache.Put("schedules:barber:b1", []salon.Schedule{{ID: "s1"}})
	queryCache.Put("schedules:barber:b2", []salon.Schedule{{ID: "s2"}})

	require.NoError(t, s.Delete(ctx, sess, salon.KindBarber, "b1", "s1"))

	_, ok := queryCache.Get("schedules:barber:b1")
	assert.False(t, ok)
	_, ok = queryCache.Get("schedules:barber:b2")
	assert.True(t, ok, "another provider's cached schedules must survive")
}

func TestDeleteAllGlobalInvalidatesEveryProvider(t *testing.T) {
	now := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer srv.Close()

	s, queryCache := newScheduleStore(t, srv.URL, now)
	ctx := context.Background()
	sess := testSession()

	queryCache.Put("schedules:barber:b1", []salon.Schedule{{ID: "s1"}})
	queryCache.Put("schedules:esthetician:e1", []salon.Schedule{{ID: "s2"}})
	queryCache.Put("clients", []salon.Client{{ID: "c1"}})

	require.NoError(t, s.DeleteAllGlobal(ctx, sess))

	_, ok := queryCache.Get("schedules:barber:b1")
	assert.False(t, ok)
	_, ok = queryCache.Get("schedules:esthetician:e1")
	assert.False(t, ok)
	_, ok = queryCache.Get("clients")
	assert.True(t, ok, "the global schedule wipe must not touch other collections")
}
