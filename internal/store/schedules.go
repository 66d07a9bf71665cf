package store

import (
	"context"
	"fmt"
	"time"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
	"github.com/maisonbelle/salon-admin/internal/timezone"
)

const schedulesPrefix = "schedules:"

// ScheduleStore manages the recurring weekly availability rules from
// which the backend derives slots. Schedules are cached per provider.
type ScheduleStore struct {
	deps Deps
	tz   string
	now  func() time.Time
}

func NewScheduleStore(deps Deps, tz string) *ScheduleStore {
	return &ScheduleStore{
		deps: deps,
		tz:   tz,
		now:  func() time.Time { return timezone.NowIn(tz) },
	}
}

func scheduleKey(kind salon.Kind, providerID string) string {
	return schedulesPrefix + string(kind) + ":" + providerID
}

func (s *ScheduleStore) ListForProvider(
	ctx context.Context,
	sess *session.Session,
	kind salon.Kind,
	providerID string,
) ([]salon.Schedule, error) {
	return listCached[salon.Schedule](
		ctx, sess, s.deps,
		scheduleKey(kind, providerID),
		kind.ScheduleListPath(providerID),
	)
}

// BulkCreate submits one weekly rule (weekday set + time range + validity
// window). Validation mirrors what the dashboard refuses to send.
func (s *ScheduleStore) BulkCreate(
	ctx context.Context,
	sess *session.Session,
	req salon.ScheduleRequest,
) error {

	if req.ProviderID == "" {
		return httperr.ErrBusiness("missing_provider")
	}
	if len(req.WorkingDays) == 0 {
		return httperr.ErrBusiness("missing_working_days")
	}
	for _, d := range req.WorkingDays {
		if d < 1 || d > 6 {
			return httperr.ErrBusiness("invalid_working_day")
		}
	}
	if !req.EndTime.After(req.StartTime) {
		return httperr.ErrBusiness("invalid_time_range")
	}

	today := timezone.StartOfDay(s.now(), s.tz)
	for _, dateStr := range []string{req.EffectiveFrom, req.EffectiveTo} {
		day, err := time.ParseInLocation("2006-01-02", dateStr, timezone.Location(s.tz))
		if err != nil {
			return httperr.ErrBusiness("invalid_effective_date")
		}
		if day.Before(today) {
			return httperr.ErrBusiness("effective_date_in_past")
		}
	}

	if err := s.deps.Remote.Post(ctx, sess, "/schedule/bulk", req.Payload(), nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(scheduleKey(req.Kind, req.ProviderID))
	s.deps.dispatch(sess, "schedule_created", "schedule", req.ProviderID, map[string]any{
		"workingDays": req.WorkingDays,
	})
	return nil
}

func (s *ScheduleStore) Delete(
	ctx context.Context,
	sess *session.Session,
	kind salon.Kind,
	providerID string,
	scheduleID string,
) error {

	path := fmt.Sprintf("/schedule/%s/delete", scheduleID)
	if err := s.deps.Remote.Delete(ctx, sess, path, nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(scheduleKey(kind, providerID))
	s.deps.dispatch(sess, "schedule_deleted", "schedule", scheduleID, nil)
	return nil
}

func (s *ScheduleStore) DeleteAllForProvider(
	ctx context.Context,
	sess *session.Session,
	kind salon.Kind,
	providerID string,
) error {

	if err := s.deps.Remote.Delete(ctx, sess, kind.ScheduleDeleteAllPath(providerID), nil); err != nil {
		return err
	}

	s.deps.Cache.Invalidate(scheduleKey(kind, providerID))
	s.deps.dispatch(sess, "schedules_deleted_provider", "schedule", providerID, nil)
	return nil
}

// DeleteAllGlobal wipes every provider's schedules. Destructive; the
// handler requires an explicit confirmation before calling this.
func (s *ScheduleStore) DeleteAllGlobal(ctx context.Context, sess *session.Session) error {
	if err := s.deps.Remote.Delete(ctx, sess, "/schedule/admin/delete-all", nil); err != nil {
		return err
	}

	s.deps.Cache.InvalidatePrefix(schedulesPrefix)
	s.deps.dispatch(sess, "schedules_deleted_all", "schedule", "", nil)
	return nil
}
