package generator

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "leadpilot_backend/internal/http"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/httpkit"
	"leadpilot_backend/platform/validator"
)

// Module exposes synthetic lead generation over HTTP.
type Module struct {
	svc      *Service
	validate *validator.Validator
}

// NewModule wires the generator module.
func NewModule(svc *Service, validate *validator.Validator) *Module {
	return &Module{svc: svc, validate: validate}
}

// Name identifies the module.
func (m *Module) Name() string { return "generator" }

// RegisterRoutes mounts POST /leads/generate under /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/leads/generate", m.generate)
}

func (m *Module) generate(c *gin.Context) {
	var req transport.GenerateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := m.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	resp, err := m.svc.Generate(c.Request.Context(), req.Count)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.JSON(c, http.StatusCreated, resp)
}
