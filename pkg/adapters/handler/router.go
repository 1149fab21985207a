package handler

import (
	"log/slog"
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wadjakorntonsri/go-link-hub/pkg/config"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

// NewRouter creates and configures the main application router
func NewRouter(cfg *config.Config, hubService ports.HubService, linkService ports.LinkService, logger *slog.Logger) http.Handler {
	// Initialize Handlers
	h := NewHTTPHandler(linkService, logger)
	hh := NewHubHandler(hubService, logger)

	// Initialize Middleware
	mw := NewMiddleware(cfg, logger)

	// Setup Router
	mux := http.NewServeMux()

	// Public Routes
	mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		writeMessage(w, http.StatusOK, "ok")
	})
	mux.Handle("GET /metrics", promhttp.Handler())
	mux.HandleFunc("GET /u/{slug}", hh.GetPublicHub)
	mux.HandleFunc("POST /api/v1/links/{id}/click", h.Click)

	// Protected Routes
	protectedMux := http.NewServeMux()
	protectedMux.HandleFunc("POST /api/v1/hubs", hh.CreateHub)
	protectedMux.HandleFunc("GET /api/v1/hubs", hh.ListHubs)
	protectedMux.HandleFunc("GET /api/v1/hubs/{id}", hh.GetHub)
	protectedMux.HandleFunc("PUT /api/v1/hubs/{id}", hh.UpdateHub)
	protectedMux.HandleFunc("DELETE /api/v1/hubs/{id}", hh.DeleteHub)
	protectedMux.HandleFunc("GET /api/v1/hubs/{slug}/admin", hh.GetHubAdmin)

	protectedMux.HandleFunc("POST /api/v1/links", h.Create)
	protectedMux.HandleFunc("PUT /api/v1/links/{id}", h.Update)
	protectedMux.HandleFunc("DELETE /api/v1/links/{id}", h.Delete)
	protectedMux.HandleFunc("GET /api/v1/links/{id}/stats", h.Stats)

	// Apply Middleware to Protected Routes
	// The more specific public click route above still wins for POST .../click.
	mux.Handle("/api/v1/", mw.AuthMiddleware(protectedMux))

	return mw.RequestID(mw.AccessLog(mux))
}
