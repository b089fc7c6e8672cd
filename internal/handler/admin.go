package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/osse101/InvestSim_Go/internal/catalog"
	"github.com/osse101/InvestSim_Go/internal/domain"
	"github.com/osse101/InvestSim_Go/internal/eventlog"
)

// CatalogReloadResponse reports the reloaded catalog's size
type CatalogReloadResponse struct {
	Message string         `json:"message"`
	Catalog domain.Catalog `json:"catalog"`
}

// AdminHandler serves admin routes
type AdminHandler struct {
	catalog catalog.Service
	events  eventlog.Service
}

// NewAdminHandler creates an admin handler. events may be nil when the
// event log is disabled.
func NewAdminHandler(svc catalog.Service, events eventlog.Service) *AdminHandler {
	return &AdminHandler{catalog: svc, events: events}
}

// HandleReloadCatalog reloads the catalog from the quote providers. A failed
// reload answers 503 and leaves the cached catalog in place.
// @Summary Reload catalog
// @Tags admin
// @Produce json
// @Success 200 {object} CatalogReloadResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/catalog/reload [post]
func (h *AdminHandler) HandleReloadCatalog(w http.ResponseWriter, r *http.Request) {
	c, err := h.catalog.Refresh(r.Context(), catalog.SourceAdmin)
	if err != nil {
		respondServiceError(w, r, "Reload catalog", err)
		return
	}
	respondJSON(w, http.StatusOK, CatalogReloadResponse{Message: MsgCatalogReloaded, Catalog: *c})
}

// HandleGetCacheStats returns cache hit/miss counters
// @Summary Get cache stats
// @Tags admin
// @Produce json
// @Success 200 {object} cache.Stats
// @Router /api/v1/admin/cache/stats [get]
func (h *AdminHandler) HandleGetCacheStats(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.CacheStats())
}

// HandleListEvents queries the event log
// @Summary List logged events
// @Tags admin
// @Produce json
// @Param type query string false "Event type, e.g. purchase.completed"
// @Param account_id query string false "Account id"
// @Param since query string false "RFC3339 lower bound"
// @Param limit query int false "Maximum number of events"
// @Success 200 {array} eventlog.Event
// @Failure 400 {object} ErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/events [get]
func (h *AdminHandler) HandleListEvents(w http.ResponseWriter, r *http.Request) {
	if h.events == nil {
		respondError(w, http.StatusServiceUnavailable, ErrMsgEventLogDisabled)
		return
	}

	limit, ok := limitParam(w, r)
	if !ok {
		return
	}
	filter := eventlog.EventFilter{Limit: limit}

	if t := r.URL.Query().Get("type"); t != "" {
		filter.EventType = &t
	}
	if raw := r.URL.Query().Get("account_id"); raw != "" {
		if _, err := uuid.Parse(raw); err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidAccountID)
			return
		}
		filter.AccountID = &raw
	}
	if raw := r.URL.Query().Get("since"); raw != "" {
		since, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, ErrMsgInvalidSince)
			return
		}
		filter.Since = &since
	}

	events, err := h.events.ListEvents(r.Context(), filter)
	if err != nil {
		respondServiceError(w, r, "List events", err)
		return
	}
	if events == nil {
		events = []eventlog.Event{}
	}
	respondJSON(w, http.StatusOK, events)
}
