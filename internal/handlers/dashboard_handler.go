package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/dashboard"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
	"github.com/maisonbelle/salon-admin/internal/timezone"
)

// DashboardHandler feeds the stat cards and the per-day chart. It loads
// through the same cached stores as the list screens, then aggregates
// in memory.
type DashboardHandler struct {
	appointments map[salon.Kind]*store.AppointmentStore
	providers    map[salon.Kind]*store.ProviderStore
	tz           string
}

func NewDashboardHandler(
	appointments map[salon.Kind]*store.AppointmentStore,
	providers map[salon.Kind]*store.ProviderStore,
	tz string,
) *DashboardHandler {
	return &DashboardHandler{
		appointments: appointments,
		providers:    providers,
		tz:           tz,
	}
}

func (h *DashboardHandler) Stats(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	barberAps, err := h.appointments[salon.KindBarber].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}
	estheticianAps, err := h.appointments[salon.KindEsthetician].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}
	barbers, err := h.providers[salon.KindBarber].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}
	estheticians, err := h.providers[salon.KindEsthetician].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}

	now := timezone.NowIn(h.tz)
	c.JSON(200, dashboard.Compute(barberAps, estheticianAps, barbers, estheticians, now))
}

func (h *DashboardHandler) AppointmentsByDay(c *gin.Context) {
	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	barberAps, err := h.appointments[salon.KindBarber].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}
	estheticianAps, err := h.appointments[salon.KindEsthetician].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}

	days := dashboard.AppointmentsByDay(barberAps, estheticianAps, timezone.Location(h.tz))
	c.JSON(200, gin.H{
		"data":  days,
		"total": len(days),
	})
}
