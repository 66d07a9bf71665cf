package remote

import (
	"errors"
	"fmt"
	"strings"
)

// ErrBackendUnavailable covers transport-level failures (dial, timeout,
// broken connection). Callers may retry later.
var ErrBackendUnavailable = errors.New("salon backend unavailable")

// ErrNotJSON marks a 2xx response whose body was not the JSON we asked
// for. Distinct from APIError: the backend answered, but not usably.
var ErrNotJSON = errors.New("salon backend returned a non-JSON response")

// SupervisorDeniedMarker is the substring the backend puts in denial
// messages for supervisor-only actions.
const SupervisorDeniedMarker = "réservé aux superviseurs"

// APIError is a non-2xx response with the message extracted from the
// body's "message" or "error" field, falling back to the status text.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("salon backend: %d %s", e.Status, e.Message)
}

func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}

func IsSupervisorDenied(err error) bool {
	if apiErr, ok := AsAPIError(err); ok {
		return strings.Contains(apiErr.Message, SupervisorDeniedMarker)
	}
	return false
}

func IsRetryable(err error) bool {
	return errors.Is(err, ErrBackendUnavailable)
}
