// Package availability queries open slots for a provider on a date and
// applies the same-day booking policy.
package availability

import (
	"context"
	"sort"
	"time"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
	"github.com/maisonbelle/salon-admin/internal/timezone"
)

const dateLayout = "2006-01-02"

type Fetcher struct {
	remote *remote.Client
	policy Policy
	tz     string
	now    func() time.Time
}

func NewFetcher(rc *remote.Client, policy Policy, tz string) *Fetcher {
	return &Fetcher{
		remote: rc,
		policy: policy,
		tz:     tz,
		now:    func() time.Time { return timezone.NowIn(tz) },
	}
}

// Slots returns the candidate slots for provider+date, ordered by start
// time. An empty result is not an error; the caller warns the user to
// pick another date.
func (f *Fetcher) Slots(
	ctx context.Context,
	sess *session.Session,
	kind salon.Kind,
	providerID string,
	date string,
) ([]salon.AvailableSlot, error) {

	if providerID == "" {
		return nil, httperr.ErrBusiness("missing_provider")
	}

	day, err := time.ParseInLocation(dateLayout, date, timezone.Location(f.tz))
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	var slots []salon.AvailableSlot
	if err := f.remote.Get(ctx, sess, kind.AvailabilityPath(providerID, date), &slots); err != nil {
		return nil, err
	}

	sort.Slice(slots, func(i, j int) bool {
		return slots[i].StartTime.Before(slots[j].StartTime)
	})

	now := f.now()
	if sameDay(day, now) {
		slots = f.policy.FilterSameDay(slots, now)
	}

	return slots, nil
}

func sameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}
