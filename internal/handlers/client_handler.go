package handlers

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/maisonbelle/salon-admin/internal/httperr"
	"github.com/maisonbelle/salon-admin/internal/httpresp"
	"github.com/maisonbelle/salon-admin/internal/middleware"
	"github.com/maisonbelle/salon-admin/internal/salon"
	"github.com/maisonbelle/salon-admin/internal/store"
)

type ClientHandler struct {
	store *store.ClientStore
}

func NewClientHandler(s *store.ClientStore) *ClientHandler {
	return &ClientHandler{store: s}
}

type ClientRequest struct {
	Firstname string `json:"firstname" binding:"required"`
	Lastname  string `json:"lastname" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Phone     string `json:"phone" binding:"required"`
}

// ======================================================
// LIST (with search)
// ======================================================

// List filters the cached collection in memory; the backend has no
// search parameter on /client/admin/all.
func (h *ClientHandler) List(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	clients, err := h.store.List(c.Request.Context(), sess)
	if err != nil {
		writeError(c, err)
		return
	}

	query := strings.ToLower(strings.TrimSpace(c.Query("query")))
	if query != "" {
		filtered := make([]salon.Client, 0, len(clients))
		for _, cl := range clients {
			if strings.Contains(strings.ToLower(cl.Firstname), query) ||
				strings.Contains(strings.ToLower(cl.Lastname), query) ||
				strings.Contains(strings.ToLower(cl.Email), query) ||
				strings.Contains(cl.Phone, query) {
				filtered = append(filtered, cl)
			}
		}
		clients = filtered
	}

	httpresp.List(c, clients)
}

func (h *ClientHandler) Create(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	created, err := h.store.Create(c.Request.Context(), sess, salon.Client{
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(201, created)
}

func (h *ClientHandler) Update(c *gin.Context) {
	var req ClientRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.BadRequest(c, "invalid_request", "Données invalides.")
		return
	}

	sess := middleware.SessionFrom(c)

	updated, err := h.store.Update(c.Request.Context(), sess, salon.Client{
		ID:        c.Param("id"),
		Firstname: req.Firstname,
		Lastname:  req.Lastname,
		Email:     req.Email,
		Phone:     req.Phone,
	})
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, updated)
}

func (h *ClientHandler) Delete(c *gin.Context) {
	sess := middleware.SessionFrom(c)

	if err := h.store.Delete(c.Request.Context(), sess, c.Param("id")); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}

// DeleteAll wipes the whole client base. Destructive; requires the
// explicit confirm flag.
func (h *ClientHandler) DeleteAll(c *gin.Context) {
	if c.Query("confirm") != "true" {
		httperr.BadRequest(c, "confirmation_required", "Confirmation requise pour cette action.")
		return
	}

	sess := middleware.SessionFrom(c)

	if err := h.store.DeleteAll(c.Request.Context(), sess); err != nil {
		writeError(c, err)
		return
	}

	c.JSON(200, gin.H{"status": "ok"})
}
