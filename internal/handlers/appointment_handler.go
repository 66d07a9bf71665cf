package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/availability"
	"github.com/maisonbelle/salon-admin/internal/booking"
	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/httpresp"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
)

// ======================================================
// HANDLER
// ======================================================

// AppointmentHandler serves both appointment families; the :kind path
// segment picks the store.
type AppointmentHandler struct {
	stores   map[salon.Kind]*store.AppointmentStore
	fetchers map[salon.Kind]*availability.Fetcher
	tz       string
}

func NewAppointmentHandler(
	stores map[salon.Kind]*store.AppointmentStore,
	fetchers map[salon.Kind]*availability.Fetcher,
	tz string,
) *AppointmentHandler {
	return &AppointmentHandler{
		stores:   stores,
		fetchers: fetchers,
		tz:       tz,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookingRequest struct {
	Email       string `json:"email" binding:"required"`
	ProviderID  string `json:"providerId" binding:"required"`
	ServiceType string `json:"serviceType" binding:"required"`
	Date        string `json:"date" binding:"required"`
	Time        string `json:"time" binding:"required"`
}

func kindOf(c *gin.Context) (salon.Kind, bool) {
	kind, err := salon.ParseKind(c.Param("kind"))
	if err != nil {
		httperr.BadRequest(c, "invalid_kind", "Type de prestataire inconnu.")
		return "", false
	}
	return kind, true
}

// ======================================================
// LIST
// ======================================================

func (h *AppointmentHandler) List(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	appointments, err := h.stores[kind].List(c.Request.Context(), sess)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, appointments)
}

// ======================================================
// BOOK
// ======================================================

// Book runs the whole form flow server-side: provider+date selection
// fetches availability, the chosen time is checked against it, and only
// then is the backend asked to create the appointment.
func (h *AppointmentHandler) Book(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	ctrl := booking.NewController(kind, h.stores[kind], h.fetchers[kind], h.tz)
	ctrl.SetClientEmail(req.Email)
	ctrl.SetServiceType(req.ServiceType)

	if err := ctrl.SetProvider(ctx, sess, req.ProviderID); err != nil {
		writeError(c, err)
		return
	}
	if err := ctrl.SetDate(ctx, sess, req.Date); err != nil {
		writeError(c, err)
		return
	}
	ctrl.SetTime(req.Time)

	ap, err := ctrl.Submit(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, ap)
}

// ======================================================
// UPDATE (edit mode)
// ======================================================

func (h *AppointmentHandler) Update(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}
	id := c.Param("id")

	var req BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)
	ctx := c.Request.Context()

	appointments, err := h.stores[kind].List(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}

	var current *salon.Appointment
	for i := range appointments {
		if appointments[i].ID == id {
			current = &appointments[i]
			break
		}
	}
	if current == nil {
		httperr.NotFound(c, "appointment_not_found", "Rendez-vous introuvable.")
		return
	}

	ctrl := booking.NewController(kind, h.stores[kind], h.fetchers[kind], h.tz)
	if err := ctrl.BeginEdit(ctx, sess, *current); err != nil {
		writeError(c, err)
		return
	}

	ctrl.SetClientEmail(req.Email)
	ctrl.SetServiceType(req.ServiceType)
	if err := ctrl.SetProvider(ctx, sess, req.ProviderID); err != nil {
		writeError(c, err)
		return
	}
	if err := ctrl.SetDate(ctx, sess, req.Date); err != nil {
		writeError(c, err)
		return
	}
	ctrl.SetTime(req.Time)

	ap, err := ctrl.Submit(ctx, sess)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, ap)
}

// ======================================================
// CANCEL / COMPLETE
// ======================================================

func (h *AppointmentHandler) Cancel(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	ap, err := h.stores[kind].Cancel(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, ap)
}

func (h *AppointmentHandler) Complete(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	ap, err := h.stores[kind].Complete(c.Request.Context(), sess, c.Param("id"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, ap)
}
