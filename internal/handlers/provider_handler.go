package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/httpresp"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
)

// ProviderHandler covers barbers and estheticians through one route set.
type ProviderHandler struct {
	stores map[salon.Kind]*store.ProviderStore
}

func NewProviderHandler(stores map[salon.Kind]*store.ProviderStore) *ProviderHandler {
	return &ProviderHandler{stores: stores}
}

type ProviderRequest struct {
	Firstname   string `json:"firstname" binding:"required"`
	Lastname    string `json:"lastname" binding:"required"`
	Email       string `json:"email" binding:"required,email"`
	Phone       string `json:"phone" binding:"required"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
}

func (h *ProviderHandler) List(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	sess := middleware.SessionFrom(c)

	providers, err := h.stores[kind].List(c.Request.Context(), sess)
	if err != nil {
		writeError(c, err)
		return
	}

	httpresp.List(c, providers)
}

func (h *ProviderHandler) Create(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	created, err := h.stores[kind].Create(c.Request.Context(), sess, salon.Provider{
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, created)
}

func (h *ProviderHandler) Update(c *gin.Context) {
	kind, ok := kindOf(c)
	if !ok {
		return
	}

	var req ProviderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	updated, err := h.stores[kind].Update(c.Request.Context(), sess, salon.Provider{
		ID:          c.Param("id"),
		Firstname:   req.Firstname,
		Lastname:    req.Lastname,
		Email:       req.Email,
		Phone:       req.Phone,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *ProviderHandler) Delete(c *gin.Context) {
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
