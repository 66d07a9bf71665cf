// Package booking drives the appointment form: provider and date
// selection trigger availability fetches, and submission re-validates
// the chosen slot before anything reaches the backend.
package booking

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/maisonbelle/salon-admin/internal/availability"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/session"
	"github.com/maisonbelle/salon-admin/internal/store"
	"github.com/maisonbelle/salon-admin/internal/timezone"
	"github.com/maisonbelle/salon-admin/internal/validators"
)

const (
	dateLayout = "2006-01-02"
	timeLayout = "15:04"
)

// ErrSlotUnavailable means the chosen time is no longer in the
// last-fetched slot list. The backend is never called in that case.
var ErrSlotUnavailable = httperr.ErrBusiness("slot_no_longer_available")

// Form is the booking form state.
type Form struct {
	ClientEmail string `json:"email"`
	ProviderID  string `json:"providerId"`
	ServiceType string `json:"serviceType"`
	Date        string `json:"date"` // YYYY-MM-DD
	Time        string `json:"time"` // HH:MM
}

// FieldErrors reports per-field validation failures, shown inline.
type FieldErrors map[string]string

func (e FieldErrors) Error() string {
	parts := make([]string, 0, len(e))
	for field, reason := range e {
		parts = append(parts, field+": "+reason)
	}
	return "invalid form: " + strings.Join(parts, ", ")
}

// Controller coordinates one booking form. Provider or date changes
// refetch availability; a generation counter makes sure a superseded
// fetch can never overwrite a newer one's slots.
type Controller struct {
	kind         salon.Kind
	appointments *store.AppointmentStore
	fetcher      *availability.Fetcher
	tz           string

	mu         sync.Mutex
	form       Form
	editingID  string
	slots      []salon.AvailableSlot
	generation uint64
}

func NewController(
	kind salon.Kind,
	appointments *store.AppointmentStore,
	fetcher *availability.Fetcher,
	tz string,
) *Controller {
	return &Controller{
		kind:         kind,
		appointments: appointments,
		fetcher:      fetcher,
		tz:           tz,
	}
}

func (c *Controller) Form() Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Slots returns the last successfully fetched slot list.
func (c *Controller) Slots() []salon.AvailableSlot {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]salon.AvailableSlot, len(c.slots))
	copy(out, c.slots)
	return out
}

func (c *Controller) SetClientEmail(email string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.ClientEmail = email
}

func (c *Controller) SetServiceType(serviceType string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.ServiceType = serviceType
}

// SetTime picks a slot from the fetched list. The pick is re-validated
// on submit, so a slot gone stale between here and there still fails.
func (c *Controller) SetTime(hhmm string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form.Time = hhmm
}

// SetProvider selects a provider and, when a date is already chosen,
// refreshes availability. The previously selected time is cleared.
func (c *Controller) SetProvider(ctx context.Context, sess *session.Session, providerID string) error {
	c.mu.Lock()
	c.form.ProviderID = providerID
	c.form.Time = ""
	date := c.form.Date
	c.mu.Unlock()

	if providerID == "" || date == "" {
		return nil
	}
	return c.refetch(ctx, sess, providerID, date)
}

// SetDate selects a date and, when a provider is already chosen,
// refreshes availability. The previously selected time is cleared.
func (c *Controller) SetDate(ctx context.Context, sess *session.Session, date string) error {
	c.mu.Lock()
	c.form.Date = date
	c.form.Time = ""
	c.slots = nil
	providerID := c.form.ProviderID
	c.mu.Unlock()

	if providerID == "" || date == "" {
		return nil
	}
	return c.refetch(ctx, sess, providerID, date)
}

func (c *Controller) refetch(ctx context.Context, sess *session.Session, providerID, date string) error {
	c.mu.Lock()
	c.generation++
	gen := c.generation
	c.mu.Unlock()

	slots, err := c.fetcher.Slots(ctx, sess, c.kind, providerID, date)

	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		// A newer fetch was issued while this one was in flight.
		return nil
	}

	if err != nil {
		c.slots = nil
		return err
	}

	c.slots = slots
	return nil
}

// BeginEdit pre-populates the form from an existing appointment and
// refetches availability so its current slot shows alongside open ones.
func (c *Controller) BeginEdit(ctx context.Context, sess *session.Session, ap salon.Appointment) error {
	local := ap.AppointmentTime.In(timezone.Location(c.tz))

	c.mu.Lock()
	c.editingID = ap.ID
	c.form = Form{
		ClientEmail: ap.ClientEmail,
		ProviderID:  ap.ProviderID,
		ServiceType: ap.ServiceType,
		Date:        local.Format(dateLayout),
		Time:        local.Format(timeLayout),
	}
	providerID := c.form.ProviderID
	date := c.form.Date
	c.mu.Unlock()

	return c.refetch(ctx, sess, providerID, date)
}

// Reset clears the form, the edit target and the fetched slots.
func (c *Controller) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.form = Form{}
	c.editingID = ""
	c.slots = nil
	c.generation++
}

func (c *Controller) validate(f Form) error {
	errs := FieldErrors{}

	if !validators.IsEmailValid(f.ClientEmail) {
		errs["email"] = "a valid client email is required"
	}
	if f.ProviderID == "" {
		errs["providerId"] = "provider is required"
	}
	if f.ServiceType == "" {
		errs["serviceType"] = "service is required"
	}
	if f.Date == "" {
		errs["date"] = "date is required"
	}
	if f.Time == "" {
		errs["time"] = "time is required"
	}

	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Submit validates the form, re-checks the chosen slot against the
// last-fetched list, and only then calls the backend. On success the
// form is reset; on failure it is kept for retry.
func (c *Controller) Submit(ctx context.Context, sess *session.Session) (*salon.Appointment, error) {
	c.mu.Lock()
	f := c.form
	editingID := c.editingID
	slots := c.slots
	c.mu.Unlock()

	if err := c.validate(f); err != nil {
		return nil, err
	}

	if !slotStillListed(slots, f.Time, timezone.Location(c.tz)) {
		return nil, ErrSlotUnavailable
	}

	when, err := time.ParseInLocation(
		dateLayout+" "+timeLayout,
		f.Date+" "+f.Time,
		timezone.Location(c.tz),
	)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date_or_time")
	}

	req := salon.AppointmentRequest{
		Kind:            c.kind,
		ID:              editingID,
		Email:           f.ClientEmail,
		ProviderID:      f.ProviderID,
		ServiceType:     f.ServiceType,
		AppointmentTime: when,
	}

	var ap *salon.Appointment
	if editingID != "" {
		ap, err = c.appointments.Update(ctx, sess, req)
	} else {
		ap, err = c.appointments.Create(ctx, sess, req)
	}
	if err != nil {
		return nil, err
	}

	c.Reset()
	return ap, nil
}

func slotStillListed(slots []salon.AvailableSlot, hhmm string, loc *time.Location) bool {
	for _, s := range slots {
		if s.StartTime.In(loc).Format(timeLayout) == hhmm {
			return true
		}
	}
	return false
}
