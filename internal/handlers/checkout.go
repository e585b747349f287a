package handlers

import (
	"net/http"

	"myticket-storefront/internal/middleware"
	"myticket-storefront/internal/models"
	"myticket-storefront/internal/services"

	"github.com/gorilla/sessions"
)

// CheckoutHandler finalizes the active selection into an order summary
// and hands the buyer off to the payment gateway
type CheckoutHandler struct {
	catalogService  services.CatalogServiceInterface
	checkoutService services.CheckoutServiceInterface
	store           sessions.Store
}

// NewCheckoutHandler creates a new checkout handler
func NewCheckoutHandler(catalogService services.CatalogServiceInterface, checkoutService services.CheckoutServiceInterface, store sessions.Store) *CheckoutHandler {
	return &CheckoutHandler{
		catalogService:  catalogService,
		checkoutService: checkoutService,
		store:           store,
	}
}

// Initiate prices the active selection, sends one payment-initiation
// request and returns the gateway redirect. The selection survives a
// failed attempt so the buyer can retry; it is discarded on success
// when control passes to the gateway.
func (h *CheckoutHandler) Initiate(w http.ResponseWriter, r *http.Request) {
	var buyer models.BuyerDetails
	if err := decodeJSON(r, &buyer); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

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
		writeServiceError(w, err)
		return
	}

	summary := h.checkoutService.BuildOrderSummary(selection, event)

	attempt, err := h.checkoutService.InitiatePayment(r.Context(), summary, &buyer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	clearSelectionFromSession(session)
	if err := session.Save(r, w); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save session")
		return
	}

	writeJSON(w, http.StatusOK, attempt)
}
