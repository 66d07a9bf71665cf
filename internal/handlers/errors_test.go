package handlers

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	"github.com/maisonbelle/salon-admin/internal/booking"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/session"
)

func TestWriteError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			"not authenticated",
			session.ErrNotAuthenticated,
			http.StatusUnauthorized,
			"must_be_logged_in",
		},
		{
			"supervisor denial",
			&remote.APIError{Status: 403, Message: "Accès réservé aux superviseurs"},
			http.StatusForbidden,
			"supervisor_only",
		},
		{
			"stale slot",
			booking.ErrSlotUnavailable,
			http.StatusBadRequest,
			"slot_no_longer_available",
		},
		{
			"form validation",
			booking.FieldErrors{"email": "a valid client email is required"},
			http.StatusBadRequest,
			"invalid_form",
		},
		{
			"business rule",
			httperr.ErrBusiness("invalid_state"),
			http.StatusBadRequest,
			"invalid_state",
		},
		{
			"backend down",
			remote.ErrBackendUnavailable,
			http.StatusBadGateway,
			"backend_unavailable",
		},
		{
			"backend spoke html",
			remote.ErrNotJSON,
			http.StatusBadGateway,
			"invalid_backend_response",
		},
		{
			"backend error passes through its status",
			&remote.APIError{Status: 404, Message: "Client introuvable"},
			http.StatusNotFound,
			"backend_error",
		},
		{
			"anything else",
			errors.New("boom"),
			http.StatusInternalServerError,
			"internal_error",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			c, _ := gin.CreateTestContext(w)

			writeError(c, tc.err)

			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), tc.wantCode)
		})
	}
}
