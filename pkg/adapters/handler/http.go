package handler

import (
	"log/slog"
	"net/http"

	"github.com/wadjakorntonsri/go-link-hub/pkg/core/domain"
	"github.com/wadjakorntonsri/go-link-hub/pkg/ports"
)

type HTTPHandler struct {
	service ports.LinkService
	logger  *slog.Logger
}

func NewHTTPHandler(service ports.LinkService, logger *slog.Logger) *HTTPHandler {
	return &HTTPHandler{service: service, logger: logger}
}

// CreateLinkRequest payload
type CreateLinkRequest struct {
	HubID       int64         `json:"hub_id"`
	OriginalURL string        `json:"original_url"`
	Title       string        `json:"title"`
	Priority    float64       `json:"priority"`
	Active      *bool         `json:"is_active,omitempty"` // defaults to true
	Rules       []domain.Rule `json:"rules"`
}

// Create Link
func (h *HTTPHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req CreateLinkRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	active := true
	if req.Active != nil {
		active = *req.Active
	}

	link, err := h.service.CreateLink(r.Context(), OwnerFromContext(r.Context()), domain.Link{
		HubID:       req.HubID,
		OriginalURL: req.OriginalURL,
		Title:       req.Title,
		Priority:    req.Priority,
		Active:      active,
		Rules:       req.Rules,
	})
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusCreated, link)
}

// Update Link
func (h *HTTPHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	var patch domain.LinkPatch
	if err := decodeJSON(r, &patch); err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	link, err := h.service.UpdateLink(r.Context(), OwnerFromContext(r.Context()), id, patch)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, link)
}

// Delete Link
func (h *HTTPHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	if err := h.service.DeleteLink(r.Context(), OwnerFromContext(r.Context()), id); err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeMessage(w, http.StatusOK, "Link removed")
}

// Get Stats for a Link
func (h *HTTPHandler) Stats(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	stats, err := h.service.GetLinkStats(r.Context(), OwnerFromContext(r.Context()), id)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Click records a public click and hands back the destination.
func (h *HTTPHandler) Click(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}

	url, err := h.service.TrackClick(r.Context(), id, r.Header.Get("Referer"), r.UserAgent(), clientIP(r))
	if err != nil {
		writeError(w, r, h.logger, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"message": "Click recorded", "url": url})
}
