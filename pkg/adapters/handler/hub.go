package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

// LocationHeader carries the visitor's resolved location as JSON,
// e.g. {"country":"India","city":"Mumbai","postalCode":"400001"}.
const LocationHeader = "X-User-Location"

type HubHandler struct {
	service ports.HubService
	logger  *slog.Logger
	now     func() time.Time
}

func NewHubHandler(service ports.HubService, logger *slog.Logger) *HubHandler {
	return &HubHandler{service: service, logger: logger, now: time.Now}
}

type hubRequest struct {
	Slug  string       `json:"slug"`
	Title string       `json:"title"`
	Theme domain.Theme `json:"theme"`
}

// hubResponse is the shape of both the public and admin views.
type hubResponse struct {
	Hub   *domain.Hub   `json:"hub"`
	Links []domain.Link `json:"links"`
}

func newHubResponse(hub *domain.Hub) hubResponse {
	links := hub.Links
	if links == nil {
		links = []domain.Link{}
	}
	bare := *hub
	bare.Links = nil
	return hubResponse{Hub: &bare, Links: links}
}

func (h *HubHandler) CreateHub(w http.ResponseWriter, r *http.Request) {
	var req hubRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	hub, err := h.service.CreateHub(r.Context(), OwnerFromContext(r.Context()), req.Slug, req.Title, req.Theme)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, hub)
}

func (h *HubHandler) ListHubs(w http.ResponseWriter, r *http.Request) {
	hubs, err := h.service.ListHubs(r.Context(), OwnerFromContext(r.Context()))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"data": hubs, "total": len(hubs)})
}

func (h *HubHandler) GetHub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	hub, err := h.service.GetHub(r.Context(), OwnerFromContext(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newHubResponse(hub))
}

func (h *HubHandler) UpdateHub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var req hubRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	hub, err := h.service.UpdateHub(r.Context(), OwnerFromContext(r.Context()), id, req.Slug, req.Title, req.Theme)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, hub)
}

func (h *HubHandler) DeleteHub(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteHub(r.Context(), OwnerFromContext(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Hub removed")
}

// GetHubAdmin returns the hub with every link, unfiltered, for its owner.
func (h *HubHandler) GetHubAdmin(w http.ResponseWriter, r *http.Request) {
	hub, err := h.service.GetHubAdmin(r.Context(), OwnerFromContext(r.Context()), r.PathValue("slug"))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newHubResponse(hub))
}

// GetPublicHub serves the visitor's view: only links whose rules pass, best first.
func (h *HubHandler) GetPublicHub(w http.ResponseWriter, r *http.Request) {
	rc := domain.NewRequestContext(r.UserAgent(), h.location(r), h.now())

	hub, err := h.service.GetPublicHub(r.Context(), r.PathValue("slug"), rc)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, newHubResponse(hub))
}

// location parses LocationHeader. Missing or malformed values mean unknown.
func (h *HubHandler) location(r *http.Request) *domain.UserLocation {
	raw := r.Header.Get(LocationHeader)
	if raw == "" {
		return nil
	}
	var loc domain.UserLocation
	if err := json.Unmarshal([]byte(raw), &loc); err != nil {
		h.logger.WarnContext(r.Context(), "failed to parse user location header",
			"request_id", RequestIDFromContext(r.Context()),
			"error", err,
		)
		return nil
	}
	return &loc
}
