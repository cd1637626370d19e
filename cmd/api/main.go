package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"leadpilot_backend/internal/chat"
	"leadpilot_backend/internal/events"
	"leadpilot_backend/internal/generator"
	apphttp "leadpilot_backend/internal/http"
	"leadpilot_backend/internal/http/router"
	"leadpilot_backend/internal/leads"
	"leadpilot_backend/platform/ai"
	"leadpilot_backend/platform/config"
	"leadpilot_backend/platform/logger"
	"leadpilot_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)
	subscribeEventLogging(eventBus, log)

	// Shared validator instance for dependency injection
	val := validator.New()

	// LLM completion client for lead generation and chat analysis
	completer, err := ai.NewCompleter(ctx, cfg)
	if err != nil {
		log.Error("failed to initialize LLM client", "error", err)
		panic("failed to initialize LLM client: " + err.Error())
	}
	log.Info("LLM client initialized", "provider", completer.Name())

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	leadsModule, err := leads.NewModule(eventBus, val, log)
	if err != nil {
		log.Error("failed to initialize leads module", "error", err)
		panic("failed to initialize leads module: " + err.Error())
	}

	// Preload leads from a previous export when the file exists
	if _, statErr := os.Stat(cfg.LeadsFile); statErr == nil {
		result, loadErr := leadsModule.Service.LoadFromFile(ctx, cfg.LeadsFile)
		if loadErr != nil {
			log.Warn("failed to preload leads", "path", cfg.LeadsFile, "error", loadErr)
		} else {
			log.Info("leads preloaded", "path", cfg.LeadsFile,
				"imported", len(result.LeadIDs), "skipped", len(result.Skipped))
		}
	}

	generatorSvc := generator.New(completer, leadsModule.Service, log)
	generatorSvc.SetLeadsFile(cfg.LeadsFile)
	generatorModule := generator.NewModule(generatorSvc, val)
	chatModule := chat.NewModule(chat.New(completer, leadsModule.Service, log), val)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config:   cfg,
		Logger:   log,
		EventBus: eventBus,
		Modules: []apphttp.Module{
			leadsModule,
			generatorModule,
			chatModule,
		},
	}

	engine := router.New(app)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("server shutdown failed", "error", err)
		}
		if err := leadsModule.Service.SaveToFile(context.Background(), cfg.LeadsFile); err != nil {
			log.Error("failed to persist leads on shutdown", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// subscribeEventLogging logs domain events as they are published.
func subscribeEventLogging(bus events.Bus, log *logger.Logger) {
	logEvent := events.HandlerFunc(func(ctx context.Context, event events.Event) error {
		log.Info("domain event", "event", event.EventName())
		return nil
	})
	bus.Subscribe(events.LeadCreated{}.EventName(), logEvent)
	bus.Subscribe(events.LeadRescored{}.EventName(), logEvent)
	bus.Subscribe(events.CriteriaUpdated{}.EventName(), logEvent)
}
