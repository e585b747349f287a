package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/models"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogFeed = `{
	"events": [
		{
			"event_id": "E1",
			"display_name": "Addis Jazz Night",
			"event_description": "An evening of jazz",
			"position": "top",
			"tickets": [
				{"ticket_type": "Regular", "price": 100},
				{"ticket_type": "VIP", "price": 250}
			]
		},
		{
			"event_id": "E2",
			"display_name": "Theatre Premiere",
			"position": "regular",
			"tickets": [{"ticket_type": "Regular", "price": 80}]
		},
		{
			"display_name": "Broken entry without id",
			"position": "regular"
		}
	],
	"places": [
		{"place_id": "P1", "place_name": "Unity Park", "description": "Park"},
		{"place_id": "", "place_name": "Broken place"}
	]
}`

func newCatalogService(t *testing.T, handler http.HandlerFunc) (*CatalogService, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	service := NewCatalogService(config.CatalogConfig{
		URL:            server.URL,
		TimeoutSeconds: 5,
	}, zerolog.Nop())

	return service, server
}

func TestCatalogService_Fetch(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		w.Write([]byte(catalogFeed))
	})

	catalog, err := service.Fetch(context.Background())
	require.NoError(t, err)

	// Malformed entries are dropped, not propagated
	assert.Len(t, catalog.Events, 2)
	assert.Len(t, catalog.Places, 1)

	assert.Len(t, service.TopEvents(catalog), 1)
	assert.Len(t, service.RegularEvents(catalog), 1)
}

func TestCatalogService_FetchServerError(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	})

	catalog, err := service.Fetch(context.Background())
	assert.Nil(t, catalog)
	assert.ErrorIs(t, err, models.ErrCatalogUnavailable)
}

func TestCatalogService_FetchMalformedBody(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"events": [not json`))
	})

	_, err := service.Fetch(context.Background())
	assert.ErrorIs(t, err, models.ErrCatalogUnavailable)
}

func TestCatalogService_FetchUnreachable(t *testing.T) {
	service, server := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {})
	server.Close()

	_, err := service.Fetch(context.Background())
	assert.ErrorIs(t, err, models.ErrCatalogUnavailable)
}

func TestCatalogService_FindEvent(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogFeed))
	})

	catalog, err := service.Fetch(context.Background())
	require.NoError(t, err)

	event, err := service.FindEvent(catalog, "E1")
	require.NoError(t, err)
	assert.Equal(t, "Addis Jazz Night", event.DisplayName)

	// A miss on a loaded catalog is EventNotFound, never CatalogUnavailable
	_, err = service.FindEvent(catalog, "missing")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
	assert.False(t, errors.Is(err, models.ErrCatalogUnavailable))
}

func TestCatalogService_FindPlace(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogFeed))
	})

	catalog, err := service.Fetch(context.Background())
	require.NoError(t, err)

	place, err := service.FindPlace(catalog, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Unity Park", place.Name)

	_, err = service.FindPlace(catalog, "P9")
	assert.ErrorIs(t, err, models.ErrPlaceNotFound)
}

func TestCatalogService_FetchEvent(t *testing.T) {
	service, _ := newCatalogService(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(catalogFeed))
	})

	event, err := service.FetchEvent(context.Background(), "E2")
	require.NoError(t, err)
	assert.Equal(t, "Theatre Premiere", event.DisplayName)

	_, err = service.FetchEvent(context.Background(), "nope")
	assert.ErrorIs(t, err, models.ErrEventNotFound)
}
