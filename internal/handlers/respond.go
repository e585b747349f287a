package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"myticket-storefront/internal/models"
)

// errorResponse is the JSON error envelope for all handlers
type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		json.NewEncoder(w).Encode(v)
	}
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

func decodeJSON(r *http.Request, v any) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return errors.New("invalid request body")
	}
	return nil
}

// statusForError maps the storefront error taxonomy onto HTTP status
// codes. Every failure is recoverable at this boundary; nothing panics
// or crashes the flow.
func statusForError(err error) int {
	switch {
	case errors.Is(err, models.ErrCatalogUnavailable):
		return http.StatusServiceUnavailable
	case errors.Is(err, models.ErrEventNotFound),
		errors.Is(err, models.ErrPlaceNotFound),
		errors.Is(err, models.ErrNoSelection):
		return http.StatusNotFound
	case errors.Is(err, models.ErrUnknownTier),
		errors.Is(err, models.ErrInvalidInput):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrGatewayRejected):
		return http.StatusPaymentRequired
	case errors.Is(err, models.ErrGatewayUnreachable):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrAuthFailed):
		return http.StatusUnauthorized
	case errors.Is(err, models.ErrNotAuthenticated):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func writeServiceError(w http.ResponseWriter, err error) {
	writeError(w, statusForError(err), err.Error())
}
