package chat

import (
	"net/http"

	"github.com/gin-gonic/gin"

	apphttp "leadpilot_backend/internal/http"
	"leadpilot_backend/internal/leads/transport"
	"leadpilot_backend/platform/httpkit"
	"leadpilot_backend/platform/validator"
)

// Module exposes the lead analyzer over HTTP.
type Module struct {
	analyzer *Analyzer
	validate *validator.Validator
}

// NewModule wires the chat module.
func NewModule(analyzer *Analyzer, validate *validator.Validator) *Module {
	return &Module{analyzer: analyzer, validate: validate}
}

// Name identifies the module.
func (m *Module) Name() string { return "chat" }

// RegisterRoutes mounts the chat routes under /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.V1.POST("/chat", m.ask)
	ctx.V1.DELETE("/chat/history", m.clearHistory)
}

func (m *Module) ask(c *gin.Context) {
	var req transport.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}
	if err := m.validate.Struct(req); err != nil {
		httpkit.Error(c, http.StatusBadRequest, "validation failed", err.Error())
		return
	}

	answer, source, err := m.analyzer.Ask(c.Request.Context(), req.Query)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, transport.ChatResponse{Answer: answer, Source: source})
}

func (m *Module) clearHistory(c *gin.Context) {
	m.analyzer.ClearHistory()
	c.Status(http.StatusNoContent)
}
