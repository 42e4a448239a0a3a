package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shelfpilot/shelfpilot/internal/api/handlers"
	"github.com/shelfpilot/shelfpilot/internal/api/middleware"
	"github.com/shelfpilot/shelfpilot/internal/cache"
	"github.com/shelfpilot/shelfpilot/internal/config"
	"github.com/shelfpilot/shelfpilot/internal/health"
	"github.com/shelfpilot/shelfpilot/internal/metrics"
	repository "github.com/shelfpilot/shelfpilot/internal/repositories"
	service "github.com/shelfpilot/shelfpilot/internal/services"
	"github.com/shelfpilot/shelfpilot/internal/telemetry"
	"github.com/shelfpilot/shelfpilot/pkg/gemini"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Tracing setup (no-op when no collector endpoint is configured)
	tp, err := telemetry.InitTracer(context.Background(), cfg)
	if err != nil {
		slog.Error("❌ Error initializing tracing", "error", err.Error())
		os.Exit(1)
	}

	// Database setup
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup; the cache is optional and the services run without it
	var appCache cache.Cache

	redisClient, err := repository.NewRedisClient(cfg)
	if err != nil {
		slog.Warn("⚠️ Redis unavailable, running without cache", slog.String("error", err.Error()))
	} else {
		appCache = cache.NewRedisCache(redisClient, &cfg.Cache)
		defer appCache.Close()
	}

	geminiClient := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.BaseURL, cfg.Gemini.Model, cfg.Gemini.Timeout)

	inventoryService := service.NewInventoryService(repos.Inventory, appCache)
	inventoryHandler := handlers.NewInventoryHandler(inventoryService)
	shelfService := service.NewShelfService(repos.Shelf, appCache)
	shelfHandler := handlers.NewShelfHandler(shelfService)
	requestService := service.NewRequestService(repos.Request, repos.Inventory)
	requestHandler := handlers.NewRequestHandler(requestService)
	invoiceService := service.NewInvoiceService(repos.Request)
	invoiceHandler := handlers.NewInvoiceHandler(invoiceService)
	suggestionService := service.NewSuggestionService(repos.Inventory, repos.Shelf, geminiClient)
	suggestionHandler := handlers.NewSuggestionHandler(suggestionService)

	healthHandler, err := health.NewHealthHandler(cfg, geminiClient)
	if err != nil {
		slog.Error("❌ Error initializing health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	// Setup router
	routerMux := http.NewServeMux()
	routerMux.HandleFunc("POST /api/v1/inventory", inventoryHandler.CreateItem())
	routerMux.HandleFunc("GET /api/v1/inventory", inventoryHandler.ListItems())
	routerMux.HandleFunc("GET /api/v1/inventory/{id}", inventoryHandler.GetItem())
	routerMux.HandleFunc("PATCH /api/v1/inventory/{id}", inventoryHandler.UpdateItem())
	routerMux.HandleFunc("DELETE /api/v1/inventory/{id}", inventoryHandler.DeleteItem())
	routerMux.HandleFunc("POST /api/v1/shelves", shelfHandler.CreateShelf())
	routerMux.HandleFunc("GET /api/v1/shelves", shelfHandler.ListShelves())
	routerMux.HandleFunc("GET /api/v1/shelves/{id}", shelfHandler.GetShelf())
	routerMux.HandleFunc("PATCH /api/v1/shelves/{id}", shelfHandler.UpdateShelf())
	routerMux.HandleFunc("DELETE /api/v1/shelves/{id}", shelfHandler.DeleteShelf())
	routerMux.HandleFunc("POST /api/v1/requests", requestHandler.SubmitRequest())
	routerMux.HandleFunc("GET /api/v1/requests", requestHandler.ListRequests())
	routerMux.HandleFunc("GET /api/v1/requests/{id}", requestHandler.GetRequest())
	routerMux.HandleFunc("PATCH /api/v1/requests/{id}/status", requestHandler.TransitionStatus())
	routerMux.HandleFunc("GET /api/v1/invoices", invoiceHandler.ListInvoices())
	routerMux.HandleFunc("POST /api/v1/suggestions/shelf-location", suggestionHandler.SuggestShelfLocation())
	routerMux.Handle("GET /health", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)
	handler = otelhttp.NewHandler(handler, "shelfpilot")

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

	if tp != nil {
		if err := tp.Shutdown(shutdownCtx); err != nil {
			slog.Error("⚠️ Tracer shutdown encountered an issue", slog.String("error", err.Error()))
		}
	}
}
