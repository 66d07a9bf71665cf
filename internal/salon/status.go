package salon

import "github.com/maisonbelle/salon-admin/internal/httperr"

// ===============================
// Appointment Status
// ===============================

// Status values are server-authoritative; the gateway only refuses
// requests that cannot succeed.
type Status string

const (
	StatusPending             Status = "PENDING"
	StatusConfirmed           Status = "CONFIRMED"
	StatusProgression         Status = "PROGRESSION" // esthetician flow only
	StatusCompleted           Status = "COMPLETED"
	StatusCancelledByProvider Status = "CANCELLED_BY_PROVIDER"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusProgression,
		StatusCompleted, StatusCancelledByProvider:
		return true
	}
	return false
}

// Terminal reports whether no further transition is possible.
func (s Status) Terminal() bool {
	return s == StatusCompleted || s == StatusCancelledByProvider
}

// ===============================
// Validations
// ===============================

func CanCancel(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}

func CanComplete(current Status) error {
	if current.Terminal() {
		return httperr.ErrBusiness("invalid_state")
	}
	return nil
}
