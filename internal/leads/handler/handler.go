// Package handler exposes the leads API over HTTP.
package handler

import (
	"encoding/json"
	"net/http"

	"github.com/gin-gonic/gin"

	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/httpkit"
	"leadpilot_backend/platform/logger"
	"leadpilot_backend/platform/validator"
)

// Handler handles lead HTTP requests.
type Handler struct {
	svc      *service.Service
	validate *validator.Validator
	log      *logger.Logger
}

// New creates a lead handler.
func New(svc *service.Service, validate *validator.Validator, log *logger.Logger) *Handler {
	return &Handler{svc: svc, validate: validate, log: log}
}

// Create handles POST /leads.
func (h *Handler) Create(c *gin.Context) {
	var req transport.CreateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	lead, err := h.svc.Add(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, lead)
}

// Get handles GET /leads/:id.
func (h *Handler) Get(c *gin.Context) {
	lead, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

// FindByEmail handles GET /leads/by-email?email=.
func (h *Handler) FindByEmail(c *gin.Context) {
	email := c.Query("email")
	if err := h.validate.Var(email, "required,email"); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid email", err.Error())
		return
	}

	lead, err := h.svc.FindByEmail(c.Request.Context(), email)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

// List handles GET /leads with optional status and q filters.
func (h *Handler) List(c *gin.Context) {
	list, err := h.svc.List(c.Request.Context(), c.Query("status"), c.Query("q"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, list)
}

// Update handles PUT /leads/:id.
func (h *Handler) Update(c *gin.Context) {
	var req transport.UpdateLeadRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	lead, err := h.svc.Update(c.Request.Context(), c.Param("id"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, lead)
}

// Delete handles DELETE /leads/:id.
func (h *Handler) Delete(c *gin.Context) {
	if httpkit.HandleError(c, h.svc.Delete(c.Request.Context(), c.Param("id"))) {
		return
	}
	c.Status(http.StatusNoContent)
}

// Qualified handles GET /leads/qualified.
func (h *Handler) Qualified(c *gin.Context) {
	httpkit.OK(c, h.svc.Qualified(c.Request.Context()))
}

// Hot handles GET /leads/hot.
func (h *Handler) Hot(c *gin.Context) {
	httpkit.OK(c, h.svc.HotLeads(c.Request.Context()))
}

// Summary handles GET /leads/summary.
func (h *Handler) Summary(c *gin.Context) {
	httpkit.OK(c, h.svc.Summary(c.Request.Context()))
}

// Export handles GET /leads/export.
func (h *Handler) Export(c *gin.Context) {
	httpkit.OK(c, h.svc.Export(c.Request.Context()))
}

// Import handles POST /leads/import. Accepts either a bare array of
// import records or a full export document.
func (h *Handler) Import(c *gin.Context) {
	body, err := c.GetRawData()
	if err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	var records []transport.LeadImportRecord
	if err := json.Unmarshal(body, &records); err == nil {
		httpkit.OK(c, h.svc.Import(c.Request.Context(), records))
		return
	}

	var doc transport.ExportDocument
	if err := json.Unmarshal(body, &doc); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	httpkit.OK(c, h.svc.ImportFromDocument(c.Request.Context(), doc))
}

// AddInteraction handles POST /leads/:id/interactions.
func (h *Handler) AddInteraction(c *gin.Context) {
	var req transport.AddInteractionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	interaction, err := h.svc.AddInteraction(c.Request.Context(), c.Param("id"), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, interaction)
}

// Interactions handles GET /leads/:id/interactions.
func (h *Handler) Interactions(c *gin.Context) {
	log, err := h.svc.Interactions(c.Request.Context(), c.Param("id"))
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, log)
}

// GetCriteria handles GET /criteria.
func (h *Handler) GetCriteria(c *gin.Context) {
	httpkit.OK(c, h.svc.Criteria())
}

// UpdateCriteria handles PUT /criteria.
func (h *Handler) UpdateCriteria(c *gin.Context) {
	var req transport.UpdateCriteriaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := h.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	if httpkit.HandleError(c, h.svc.UpdateCriteria(c.Request.Context(), req)) {
		return
	}
	httpkit.OK(c, h.svc.Criteria())
}
