package handlers

import (
	"net/http"

	"myticket-storefront/internal/middleware"
	"myticket-storefront/internal/models"
	"myticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
)

const sessionKeySelection = "selection"

// SelectionHandler drives the ticket-selection screen: one selection
// at a time, scoped to the session, created against a fetched event
// and mutated by increment/decrement only
type SelectionHandler struct {
	catalogService services.CatalogServiceInterface
	store          sessions.Store
	policy         models.SelectionPolicy
}

// NewSelectionHandler creates a new selection handler
func NewSelectionHandler(catalogService services.CatalogServiceInterface, store sessions.Store, policy models.SelectionPolicy) *SelectionHandler {
	return &SelectionHandler{
		catalogService: catalogService,
		store:          store,
		policy:         policy,
	}
}

// Start opens a fresh selection for an event, replacing any selection
// left over from another event
func (h *SelectionHandler) Start(w http.ResponseWriter, r *http.Request) {
	eventID := chi.URLParam(r, "eventID")

	event, err := h.catalogService.FetchEvent(r.Context(), eventID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	selection := models.NewSelection(event, h.policy)

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	saveSelectionToSession(session, selection)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusCreated, selection)
}

// Increment adds one ticket of a tier to the active selection
func (h *SelectionHandler) Increment(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *models.Selection, tier string) error {
		return s.Increment(tier)
	})
}

// Decrement removes one ticket of a tier; quantities floor at zero
func (h *SelectionHandler) Decrement(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func(s *models.Selection, tier string) error {
		return s.Decrement(tier)
	})
}

func (h *SelectionHandler) mutate(w http.ResponseWriter, r *http.Request, op func(*models.Selection, string) error) {
	tier := chi.URLParam(r, "tier")

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	selection := getSelectionFromSession(session)
	if selection == nil {
		writeServiceError(w, models.ErrNoSelection)
		return
	}

	if err := op(selection, tier); err != nil {
		writeServiceError(w, err)
		return
	}

	saveSelectionToSession(session, selection)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, selection)
}

// Summary recomputes the order summary against current catalog prices.
// If the event has vanished from the catalog the stale selection is
// discarded rather than priced against nothing.
func (h *SelectionHandler) Summary(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	selection := getSelectionFromSession(session)
	if selection == nil {
		writeServiceError(w, models.ErrNoSelection)
		return
	}

	event, err := h.catalogService.FetchEvent(r.Context(), selection.EventID)
	if err != nil {
		if statusForError(err) == http.StatusNotFound {
			clearSelectionFromSession(session)
			session.Save(r, w)
		}
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, models.NewOrderSummary(selection, event))
}

// Clear discards the active selection
func (h *SelectionHandler) Clear(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	clearSelectionFromSession(session)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// Session helpers shared with the checkout handler

func getSelectionFromSession(session *sessions.Session) *models.Selection {
	selection, ok := session.Values[sessionKeySelection].(*models.Selection)
	if !ok {
		return nil
	}
	return selection
}

func saveSelectionToSession(session *sessions.Session, selection *models.Selection) {
	session.Values[sessionKeySelection] = selection
}

func clearSelectionFromSession(session *sessions.Session) {
	delete(session.Values, sessionKeySelection)
}
