// Package leads wires the lead management module: repository, scoring,
// service, and HTTP handler.
package leads

import (
	"leadpilot_backend/internal/events"
	apphttp "leadpilot_backend/internal/http"
	"leadpilot_backend/internal/leads/domain"
	"leadpilot_backend/internal/leads/handler"
	"leadpilot_backend/internal/leads/repository"
	"leadpilot_backend/internal/leads/service"
	"leadpilot_backend/platform/logger"
	"leadpilot_backend/platform/validator"
)

// Module bundles the lead management components.
type Module struct {
	Service *service.Service
	handler *handler.Handler
}

// NewModule wires the lead module with the default scoring criteria.
func NewModule(bus events.Bus, validate *validator.Validator, log *logger.Logger) (*Module, error) {
	return NewModuleWithCriteria(domain.DefaultScoringCriteria(), bus, validate, log)
}

// NewModuleWithCriteria wires the lead module with explicit criteria.
func NewModuleWithCriteria(criteria domain.ScoringCriteria, bus events.Bus, validate *validator.Validator, log *logger.Logger) (*Module, error) {
	store := repository.New()
	svc, err := service.New(store, criteria, bus, log)
	if err != nil {
		return nil, err
	}
	return &Module{
		Service: svc,
		handler: handler.New(svc, validate, log),
	}, nil
}

// Name identifies the module.
func (m *Module) Name() string { return "leads" }

// RegisterRoutes mounts the lead routes under /api/v1.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	leads := ctx.V1.Group("/leads")
	{
		leads.GET("", m.handler.List)
		leads.POST("", m.handler.Create)
		leads.GET("/summary", m.handler.Summary)
		leads.GET("/qualified", m.handler.Qualified)
		leads.GET("/hot", m.handler.Hot)
		leads.GET("/export", m.handler.Export)
		leads.GET("/by-email", m.handler.FindByEmail)
		leads.POST("/import", m.handler.Import)
		leads.GET("/:id", m.handler.Get)
		leads.PUT("/:id", m.handler.Update)
		leads.DELETE("/:id", m.handler.Delete)
		leads.GET("/:id/interactions", m.handler.Interactions)
		leads.POST("/:id/interactions", m.handler.AddInteraction)
	}

	criteria := ctx.V1.Group("/criteria")
	{
		criteria.GET("", m.handler.GetCriteria)
		criteria.PUT("", m.handler.UpdateCriteria)
	}
}
