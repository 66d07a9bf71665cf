package handlers

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/httpresp"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
	"github.com/maisonbelle/salon-admin/internal/timezone"
)

type ScheduleHandler struct {
	store *store.ScheduleStore
	tz    string
}

func NewScheduleHandler(s *store.ScheduleStore, tz string) *ScheduleHandler {
	return &ScheduleHandler{store: s, tz: tz}
}

type ScheduleCreateRequest struct {
	ProviderID    string `json:"providerId" binding:"required"`
	WorkingDays   []int  `json:"workingDays" binding:"required,min=1,dive,min=1,max=6"`
	StartTime     string `json:"startTime" binding:"required"` // HH:MM
	EndTime       string `json:"endTime" binding:"required"`   // HH:MM
	IsRecurring   bool   `json:"isRecurring"`
	EffectiveFrom string `json:"effectiveFrom" binding:"required"` // YYYY-MM-DD
	EffectiveTo   string `json:"effectiveTo" binding:"required"`
}

// ======================================================
// BULK CREATE
// ======================================================

// Create submits one weekly rule. Clock times are anchored on the
// effective-from day in the salon timezone; no offset arithmetic.
func (h *ScheduleHandler) Create(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req ScheduleCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	loc := timezone.Location(h.tz)

	firstDay, err := time.ParseInLocation("2006-01-02", req.EffectiveFrom, loc)
	if err != nil {
		httperr.BadRequest(c, "invalid_effective_date", "Date de début invalide.")
		return
	}

	start, err := parseClock(req.StartTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_range", "Heure de début invalide.")
		return
	}
	end, err := parseClock(req.EndTime)
	if err != nil {
		httperr.BadRequest(c, "invalid_time_range", "Heure de fin invalide.")
		return
	}

	sess := middleware.SessionFrom(c)

	err = h.store.BulkCreate(c.Request.Context(), sess, salon.ScheduleRequest{
		Kind:          kind,
		ProviderID:    req.ProviderID,
		WorkingDays:   req.WorkingDays,
		StartTime:     timezone.At(firstDay, start.Hour(), start.Minute(), h.tz),
		EndTime:       timezone.At(firstDay, end.Hour(), end.Minute(), h.tz),
		IsRecurring:   req.IsRecurring,
		EffectiveFrom: req.EffectiveFrom,
		EffectiveTo:   req.EffectiveTo,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, gin.H{"status": "ok"})
}

func parseClock(hhmm string) (time.Time, error) {
	return time.Parse("15:04", hhmm)
}

// ======================================================
// LIST / DELETE
// ======================================================

func (h *ScheduleHandler) ListForProvider(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	schedules, err := h.store.ListForProvider(c.Request.Context(), sess, kind, c.Param("providerId"))
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, schedules)
}

func (h *ScheduleHandler) Delete(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	err := h.store.Delete(c.Request.Context(), sess, kind, c.Param("providerId"), c.Param("scheduleId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

func (h *ScheduleHandler) DeleteAllForProvider(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	err := h.store.DeleteAllForProvider(c.Request.Context(), sess, kind, c.Param("providerId"))
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// DeleteAllGlobal wipes every schedule of every provider.
func (h *ScheduleHandler) DeleteAllGlobal(c *gin.Context) {
	if c.Query("confirm") != "true" {
		httperr.BadRequest(c, "confirmation_required", "Confirmation requise pour cette action.")
		return
	}

	sess := middleware.SessionFrom(c)

	if err := h.store.DeleteAllGlobal(c.Request.Context(), sess); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
