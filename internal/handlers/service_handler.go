package handlers

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/httpresp"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
)

// ServiceHandler manages the priced catalog (haircuts, beauty services).
type ServiceHandler struct {
	stores map[salon.Kind]*store.ServiceStore
}

func NewServiceHandler(stores map[salon.Kind]*store.ServiceStore) *ServiceHandler {
	return &ServiceHandler{stores: stores}
}

type ServiceRequest struct {
	Type        string  `json:"type" binding:"required"`
	Duration    int     `json:"duration" binding:"required,min=1"`
	Description string  `json:"description"`
	Price       float64 `json:"price" binding:"required,min=0"`
}

func (h *ServiceHandler) List(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	services, err := h.stores[kind].List(c.Request.Context(), sess)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, services)
}

func (h *ServiceHandler) Create(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	created, err := h.stores[kind].Create(c.Request.Context(), sess, salon.Service{
		Type:        req.Type,
		Duration:    req.Duration,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, created)
}

func (h *ServiceHandler) Update(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req ServiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	updated, err := h.stores[kind].Update(c.Request.Context(), sess, salon.Service{
		ID:          json.Number(c.Param("id")),
		Type:        req.Type,
		Duration:    req.Duration,
		Description: req.Description,
		Price:       req.Price,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *ServiceHandler) Delete(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	if err := h.stores[kind].Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
