package handlers

import (
	"net/http"

	"myticket-storefront/internal/models"
	"myticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
)

// CatalogHandler serves the browsing surface: event listings, event
// details and places. Loading, empty and error are three separate
// outcomes: a failed fetch is 503, a loaded-but-empty catalog is an
// empty 200, a miss on a loaded catalog is 404.
type CatalogHandler struct {
	catalogService services.CatalogServiceInterface
}

// NewCatalogHandler creates a new catalog handler
func NewCatalogHandler(catalogService services.CatalogServiceInterface) *CatalogHandler {
	return &CatalogHandler{catalogService: catalogService}
}

type eventListResponse struct {
	Top     []models.Event `json:"top"`
	Regular []models.Event `json:"regular"`
}

// ListEvents returns the catalog's events split into top and regular
// listings, the way the storefront's event page renders them
func (h *CatalogHandler) ListEvents(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, eventListResponse{
		Top:     h.catalogService.TopEvents(catalog),
		Regular: h.catalogService.RegularEvents(catalog),
	})
}

// GetEvent returns one event by identifier
func (h *CatalogHandler) GetEvent(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	catalog, err := h.catalogService.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	event, err := h.catalogService.FindEvent(catalog, eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, event)
}

// ListPlaces returns the catalog's places
func (h *CatalogHandler) ListPlaces(w http.ResponseWriter, r *http.Request) {
	catalog, err := h.catalogService.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, catalog.Places)
}

// GetPlace returns one place by identifier
func (h *CatalogHandler) GetPlace(w http.ResponseWriter, r *http.Request) {
	placeID := chi.URLParam(r, "placeID")

	catalog, err := h.catalogService.Fetch(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	place, err := h.catalogService.FindPlace(catalog, placeID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, place)
}
