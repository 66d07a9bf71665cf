package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/booking"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/remote"
	"github.com/maisonbelle/salon-admin/internal/session"
)

// writeError maps the remote/store error taxonomy onto the response
// envelope. Every handler funnels failures through here.
func writeError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, session.ErrNotAuthenticated):
		httperr.Unauthorized(c, "must_be_logged_in", "Vous devez être connecté.")

	case remote.IsSupervisorDenied(err):
		httperr.Forbidden(c, "supervisor_only", "Cette action est réservée aux superviseurs.")

	case errors.Is(err, booking.ErrSlotUnavailable):
		httperr.BadRequest(c, "slot_no_longer_available", "Le créneau sélectionné n'est plus disponible.")

	case isFieldErrors(err):
		var fieldErrs booking.FieldErrors
		errors.As(err, &fieldErrs)
		c.JSON(http.StatusBadRequest, gin.H{
			"error_code": "invalid_form",
			"message":    "Formulaire invalide.",
			"fields":     fieldErrs,
		})

	case isBusiness(err):
		var be httperr.BusinessError
		errors.As(err, &be)
		httperr.BadRequest(c, be.Code, "Requête invalide.")

	case remote.IsRetryable(err):
		httperr.BadGateway(c, "backend_unavailable", "Une erreur est survenue. Veuillez réessayer.")

	case errors.Is(err, remote.ErrNotJSON):
		httperr.BadGateway(c, "invalid_backend_response", "La réponse du serveur n'est pas un JSON valide.")

	default:
		if apiErr, ok := remote.AsAPIError(err); ok {
			httperr.Write(c, apiErr.Status, "backend_error", apiErr.Message)
			return
		}
		httperr.Internal(c, "internal_error", "Une erreur est survenue.")
	}
}

func isBusiness(err error) bool {
	var be httperr.BusinessError
	return errors.As(err, &be)
}

func isFieldErrors(err error) bool {
	var fe booking.FieldErrors
	return errors.As(err, &fe)
}
