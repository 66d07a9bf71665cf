package availability

import (
	"time"

	"github.com/maisonbelle/salon-admin/internal/config"
	"github.com/maisonbelle/salon-admin/internal/salon"
)

// Policy trims slots when the requested date is today. Exactly one
// policy applies per service kind; it comes from configuration, never
// from which screen happened to ask.
type Policy interface {
	FilterSameDay(slots []salon.AvailableSlot, now time.Time) []salon.AvailableSlot
}

// LeadTimePolicy drops slots starting within Lead of now. This is the
// canonical default: a walk-in needs preparation time regardless of
// which chair they book.
type LeadTimePolicy struct {
	Lead time.Duration
}

func (p LeadTimePolicy) FilterSameDay(slots []salon.AvailableSlot, now time.Time) []salon.AvailableSlot {
	cutoff := now.Add(p.Lead)

	out := make([]salon.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		if s.StartTime.After(cutoff) {
			out = append(out, s)
		}
	}
	return out
}

// EveningCutoffPolicy keeps only slots at or after Hour o'clock local
// time. Kept for shops that push all same-day bookings to the evening.
type EveningCutoffPolicy struct {
	Hour int
}

func (p EveningCutoffPolicy) FilterSameDay(slots []salon.AvailableSlot, now time.Time) []salon.AvailableSlot {
	out := make([]salon.AvailableSlot, 0, len(slots))
	for _, s := range slots {
		local := s.StartTime.In(now.Location())
		if local.Hour() >= p.Hour {
			out = append(out, s)
		}
	}
	return out
}

func PolicyFromConfig(cfg *config.Config) Policy {
	if cfg.SameDayPolicy == config.PolicyEveningCutoff {
		return EveningCutoffPolicy{Hour: cfg.SameDayCutoffHour}
	}
	return LeadTimePolicy{Lead: time.Duration(cfg.SameDayLeadMinutes) * time.Minute}
}
