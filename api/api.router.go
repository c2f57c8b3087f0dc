// FilePath: api/api.router.go
package api

import (
	"net/http"

	"github.com/climatewatch/hub/api/middleware"
	"github.com/climatewatch/hub/api/resources"
	"github.com/climatewatch/hub/internal/auth"
	"github.com/climatewatch/hub/internal/cache"
	"github.com/climatewatch/hub/internal/hubservice"
	"github.com/climatewatch/hub/internal/models"
	"github.com/gorilla/mux"
)

type Router struct {
	router    *mux.Router
	auth      *middleware.AuthMiddleware
	resources *resources.Resources
}

func NewRouter(svc *hubservice.HubService, gate *auth.Gate, respCache *cache.ResponseCache) *Router {
	r := &Router{
		router:    mux.NewRouter(),
		auth:      middleware.NewAuthMiddleware(gate),
		resources: resources.NewResources(svc, respCache),
	}

	r.setupRoutes()
	return r
}

func (r *Router) setupRoutes() {
	// API version prefix
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Public routes. The handlers are looked up per request so the
	// server can install them after constructing the router.
	api.HandleFunc("/health", func(w http.ResponseWriter, req *http.Request) {
		r.resources.HealthCheck(w, req)
	}).Methods(http.MethodGet)
	api.HandleFunc("/docs/swagger.json", func(w http.ResponseWriter, req *http.Request) {
		r.resources.Docs(w, req)
	}).Methods(http.MethodGet)

	adminOnly := r.auth.RequireRoles(models.RoleAdmin)
	reporting := r.auth.RequireRoles(models.RoleAdmin, models.RoleViewer)
	ingest := r.auth.RequireRoles(models.RoleSensor)

	// Users (admin only)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(adminOnly)
	users.HandleFunc("", r.resources.Users.CreateUser).Methods(http.MethodPost)
	users.HandleFunc("/roles", r.resources.Users.UpdateRoles).Methods(http.MethodPut)
	users.HandleFunc("/viewers", r.resources.Users.PurgeViewers).Methods(http.MethodDelete)
	users.HandleFunc("/{id}", r.resources.Users.DeleteUser).Methods(http.MethodDelete)

	// Readings: ingestion routes take the sensor role, query routes the
	// human roles, corrections admin. Per-route middleware keeps the
	// allow-lists next to the paths they guard.
	readings := api.PathPrefix("/readings").Subrouter()
	readings.Handle("", ingest(http.HandlerFunc(r.resources.Readings.CreateReading))).Methods(http.MethodPost)
	readings.Handle("/batch", ingest(http.HandlerFunc(r.resources.Readings.CreateReadingBatch))).Methods(http.MethodPost)
	readings.Handle("/{id}/precipitation", adminOnly(http.HandlerFunc(r.resources.Readings.PatchPrecipitation))).Methods(http.MethodPatch)
	readings.Handle("", reporting(http.HandlerFunc(r.resources.Readings.GetReadingAt))).Methods(http.MethodGet)
	readings.Handle("/max-temperature", reporting(http.HandlerFunc(r.resources.Readings.GetMaxTemperature))).Methods(http.MethodGet)
	readings.Handle("/max-precipitation", reporting(http.HandlerFunc(r.resources.Readings.GetMaxPrecipitation))).Methods(http.MethodGet)
}

// Resources exposes the handler set so the server can install the
// health and docs handlers.
func (r *Router) Resources() *resources.Resources {
	return r.resources
}

func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	r.router.ServeHTTP(w, req)
}
