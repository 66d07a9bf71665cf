package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/availability"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
)

type AvailabilityHandler struct {
	fetchers map[salon.Kind]*availability.Fetcher
}

func NewAvailabilityHandler(fetchers map[salon.Kind]*availability.Fetcher) *AvailabilityHandler {
	return &AvailabilityHandler{fetchers: fetchers}
}

// Slots returns the bookable windows for a provider on a date, already
// trimmed by the same-day policy. An empty list carries a warning so the
// dashboard can tell the user to pick another date.
func (h *AvailabilityHandler) Slots(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	providerID := c.Param("providerId")
	date := c.Query("date")
	if date == "" {
		httperr.BadRequest(c, "missing_date", "Date obligatoire.")
		return
	}

	sess := middleware.SessionFrom(c)

	slots, err := h.fetchers[kind].Slots(c.Request.Context(), sess, kind, providerID, date)
	if err != nil {
		writeError(c, err)
		return
	}

	resp := gin.H{
		"data":  slots,
		"total": len(slots),
	}
	if len(slots) == 0 {
		resp["warning"] = "Aucun horaire disponible pour cette date. Veuillez choisir une autre date."
	}

	c.JSON(200, resp)
}
