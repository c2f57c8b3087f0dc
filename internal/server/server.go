// FilePath: internal/server/server.go
package server

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	ghandlers "github.com/gorilla/handlers"
	"github.com/swaggo/swag"
	nuts "github.com/vaudience/go-nuts"

	"github.com/climatewatch/hub/api"
	_ "github.com/climatewatch/hub/docs"
	"github.com/climatewatch/hub/internal/auth"
	"github.com/climatewatch/hub/internal/cache"
	"github.com/climatewatch/hub/internal/config"
	"github.com/climatewatch/hub/internal/database"
	"github.com/climatewatch/hub/internal/hubservice"
	"github.com/climatewatch/hub/internal/maintenance"
	"github.com/climatewatch/hub/internal/monitoring"
	"github.com/climatewatch/hub/internal/repository/mongodb"
)

// Server represents our HTTP server
type Server struct {
	config     *config.Config
	srv        *http.Server
	db         database.DB
	cache      *cache.ResponseCache
	hubservice *hubservice.HubService
	monitoring *monitoring.Service
}

// New creates a new server instance
func New(cfg *config.Config) *Server {
	return &Server{
		config: cfg,
		srv: &http.Server{
			Addr:         fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port),
			ReadTimeout:  cfg.Server.ReadTimeout,
			WriteTimeout: cfg.Server.WriteTimeout,
		},
	}
}

// Start connects the backing stores, wires the routes and begins
// listening for requests. It blocks until shutdown.
func (s *Server) Start() error {
	ctx, cancel := context.WithTimeout(context.Background(), s.config.Mongo.ConnectTimeout)
	defer cancel()

	db, err := database.NewMongoDB(ctx, s.config.Mongo)
	if err != nil {
		return fmt.Errorf("failed to connect to mongodb: %w", err)
	}
	s.db = db
	if err := database.EnsureIndexes(ctx, db); err != nil {
		return fmt.Errorf("failed to ensure indexes: %w", err)
	}

	// The cache is an optimization; a missing redis degrades to
	// uncached responses instead of refusing to start.
	respCache, err := cache.NewResponseCache(ctx, s.config.Redis)
	if err != nil {
		nuts.L.Warnf("[Server] Redis unavailable, running without response cache: %v", err)
		respCache = nil
	}
	s.cache = respCache

	users := mongodb.NewUserRepository(db)
	readings := mongodb.NewReadingRepository(db)
	s.hubservice = hubservice.New(users, readings)
	if err := s.hubservice.Validate(); err != nil {
		return err
	}

	s.monitoring = monitoring.NewService(monitoring.Config{
		LogLevel: s.config.Monitoring.LogLevel,
	})
	s.setupMaintenanceHandlers()

	gate := auth.NewGate(users)
	router := api.NewRouter(s.hubservice, gate, respCache)
	router.Resources().SetHealthCheck(s.handleHealth())
	router.Resources().SetDocs(s.handleDocs())

	cors := ghandlers.CORS(
		ghandlers.AllowedOrigins(s.config.CORS.AllowedOrigins),
		ghandlers.AllowedMethods([]string{
			http.MethodGet, http.MethodPost, http.MethodPut,
			http.MethodPatch, http.MethodDelete, http.MethodOptions,
		}),
		ghandlers.AllowedHeaders([]string{"Content-Type", "apiKey"}),
	)
	s.srv.Handler = cors(router)

	go func() {
		nuts.L.Infof("[Server] Starting server on %s", s.srv.Addr)
		if err := s.srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			nuts.L.Errorf("[Server] Error starting server: %v", err)
			os.Exit(1)
		}
	}()

	return s.waitForShutdown()
}

// waitForShutdown waits for interrupt signal and gracefully shuts down the server
func (s *Server) waitForShutdown() error {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	nuts.L.Infof("[Server] Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), s.config.Server.ShutdownTimeout)
	defer cancel()

	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("error shutting down server: %w", err)
	}

	if err := s.cache.Close(); err != nil {
		nuts.L.Warnf("[Server] Error closing redis connection: %v", err)
	}
	if err := s.db.Close(ctx); err != nil {
		nuts.L.Warnf("[Server] Error closing mongodb connection: %v", err)
	}

	nuts.L.Infof("[Server] Server shut down successfully")
	return nil
}

// handleHealth returns a simple health check handler
func (s *Server) handleHealth() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		status := "ok"
		code := http.StatusOK
		if err := s.db.Ping(r.Context()); err != nil {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(code)
		w.Write([]byte(`{"status":"` + status + `","version":"` + nuts.GetVersion() + `"}`))
	}
}

// handleDocs serves the generated OpenAPI document.
func (s *Server) handleDocs() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		doc, err := swag.ReadDoc()
		if err != nil {
			http.Error(w, "documentation unavailable", http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(doc))
	}
}

func (s *Server) setupMaintenanceHandlers() {
	// Handle bulk role reassignment events
	s.hubservice.Maintenance.OnMaintenance(maintenance.EventRolesUpdated, func(count int64) {
		s.monitoring.RecordEvent("user_roles_updated", map[string]string{
			"count": fmt.Sprintf("%d", count),
		})
	})

	// Handle viewer purge events
	s.hubservice.Maintenance.OnMaintenance(maintenance.EventViewersPurged, func(count int64) {
		s.monitoring.RecordEvent("viewer_users_purged", map[string]string{
			"count": fmt.Sprintf("%d", count),
		})
	})
}
