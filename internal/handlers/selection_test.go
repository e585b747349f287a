package handlers

import (
	"encoding/gob"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"myticket-storefront/internal/models"
	"myticket-storefront/internal/services"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/sessions"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func init() {
	gob.Register(&models.Selection{})
	gob.Register([]string{})
}

func selectionTestEvent() *models.Event {
	return &models.Event{
		ID:          "E1",
		DisplayName: "Addis Jazz Night",
		Tickets: []models.TicketTier{
			{Type: models.TierRegular, Price: 10000},
			{Type: models.TierVIP, Price: 25000},
		},
	}
}

// selectionRouter wires the selection routes the way main does, minus
// the auth gate, which has its own tests
func selectionRouter(catalogService services.CatalogServiceInterface, store sessions.Store) chi.Router {
	h := NewSelectionHandler(catalogService, store, models.DefaultSelectionPolicy())

	r := chi.NewRouter()
	r.Post("/events/{eventID}/selection", h.Start)
	r.Post("/selection/tiers/{tier}/increment", h.Increment)
	r.Post("/selection/tiers/{tier}/decrement", h.Decrement)
	r.Get("/selection/summary", h.Summary)
	r.Delete("/selection", h.Clear)
	return r
}

// do sends a request carrying the cookies of previous responses so the
// session persists across the flow
func do(router http.Handler, method, target string, cookies []*http.Cookie) (*httptest.ResponseRecorder, []*http.Cookie) {
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Accept", "application/json")
	for _, c := range cookies {
		req.AddCookie(c)
	}

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if fresh := rec.Result().Cookies(); len(fresh) > 0 {
		cookies = fresh
	}
	return rec, cookies
}

func TestSelectionFlow(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(selectionTestEvent(), nil)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	// Opening the selection seeds the default: one Regular ticket
	rec, cookies := do(router, http.MethodPost, "/events/E1/selection", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	var selection models.Selection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &selection))
	assert.Equal(t, 1, selection.Quantities[models.TierRegular])
	assert.Equal(t, 0, selection.Quantities[models.TierVIP])

	// Regular +1, VIP +1
	rec, cookies = do(router, http.MethodPost, "/selection/tiers/Regular/increment", cookies)
	require.Equal(t, http.StatusOK, rec.Code)
	rec, cookies = do(router, http.MethodPost, "/selection/tiers/VIP/increment", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	// Summary prices the selection against the event: 2×100 + 1×250
	rec, cookies = do(router, http.MethodGet, "/selection/summary", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var summary models.OrderSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summary))
	assert.Equal(t, 45000, summary.Total)
	assert.Len(t, summary.LineItems, 2)

	// Clearing discards the selection
	rec, cookies = do(router, http.MethodDelete, "/selection", cookies)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec, _ = do(router, http.MethodGet, "/selection/summary", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelection_UnknownTier(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(selectionTestEvent(), nil)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	rec, cookies := do(router, http.MethodPost, "/events/E1/selection", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec, _ = do(router, http.MethodPost, "/selection/tiers/VVIP/increment", cookies)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.Contains(t, rec.Body.String(), "unknown ticket tier")
}

func TestSelection_DecrementFloorsAtZero(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(selectionTestEvent(), nil)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	rec, cookies := do(router, http.MethodPost, "/events/E1/selection", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// VIP is at zero; decrementing stays at zero
	rec, _ = do(router, http.MethodPost, "/selection/tiers/VIP/decrement", cookies)
	require.Equal(t, http.StatusOK, rec.Code)

	var selection models.Selection
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &selection))
	assert.Equal(t, 0, selection.Quantities[models.TierVIP])
}

func TestSelection_StartEventNotFound(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "missing").Return(nil, models.ErrEventNotFound)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	rec, _ := do(router, http.MethodPost, "/events/missing/selection", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestSelection_StartCatalogUnavailable(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(nil, models.ErrCatalogUnavailable)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	// Catalog failure is 503, distinct from a 404 miss
	rec, _ := do(router, http.MethodPost, "/events/E1/selection", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestSelection_MutateWithoutSelection(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	rec, _ := do(router, http.MethodPost, "/selection/tiers/Regular/increment", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no active ticket selection")
}

func TestSelection_SummaryStaleEventDiscardsSelection(t *testing.T) {
	catalogService := new(services.MockCatalogService)
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(selectionTestEvent(), nil).Once()
	catalogService.On("FetchEvent", mock.Anything, "E1").Return(nil, models.ErrEventNotFound)

	router := selectionRouter(catalogService, sessions.NewCookieStore([]byte("test-secret")))

	rec, cookies := do(router, http.MethodPost, "/events/E1/selection", nil)
	require.Equal(t, http.StatusCreated, rec.Code)

	// Event vanished between screens: summary 404s and drops the selection
	rec, cookies = do(router, http.MethodGet, "/selection/summary", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec, _ = do(router, http.MethodPost, "/selection/tiers/Regular/increment", cookies)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "no active ticket selection")
}
