package handlers

import (
	"net/http"

	"myticket-storefront/internal/middleware"

	"github.com/gorilla/sessions"
)

const sessionKeyCategories = "selected_categories"

// PreferencesHandler persists the buyer's category preferences, read
// on screen entry and written on save
type PreferencesHandler struct {
	store sessions.Store
}

// NewPreferencesHandler creates a new preferences handler
func NewPreferencesHandler(store sessions.Store) *PreferencesHandler {
	return &PreferencesHandler{store: store}
}

type categoryPreferences struct {
	Categories []string `json:"categories"`
}

// GetCategories returns the saved category preferences
func (h *PreferencesHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	categories, _ := session.Values[sessionKeyCategories].([]string)
	if categories == nil {
		categories = []string{}
	}

	writeJSON(w, http.StatusOK, categoryPreferences{Categories: categories})
}

// SaveCategories replaces the saved category preferences
func (h *PreferencesHandler) SaveCategories(w http.ResponseWriter, r *http.Request) {
	var req categoryPreferences
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	session, err := h.store.Get(r, middleware.SessionName)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "session error")
		return
	}

	session.Values[sessionKeyCategories] = req.Categories
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, req)
}
