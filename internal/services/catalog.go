package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/models"

	"github.com/rs/zerolog"
)

// CatalogService fetches the remote event/place feed and exposes typed
// lookups over one immutable snapshot. A fetch either yields a complete
// catalog or fails; there is no partial data and no retry.
type CatalogService struct {
	url    string
	client *http.Client
	logger zerolog.Logger
}

// NewCatalogService creates a new catalog service
func NewCatalogService(cfg config.CatalogConfig, logger zerolog.Logger) *CatalogService {
	return &CatalogService{
		url:    cfg.URL,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger: logger.With().Str("component", "catalog").Logger(),
	}
}

// Fetch performs one network read against the catalog endpoint.
// Transport, status, and decode failures all surface as
// models.ErrCatalogUnavailable so callers render a single fallback
// state instead of inspecting transport details.
func (s *CatalogService) Fetch(ctx context.Context) (*models.Catalog, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: building request: %v", models.ErrCatalogUnavailable, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		s.logger.Warn().Err(err).Msg("catalog fetch failed")
		return nil, fmt.Errorf("%w: %v", models.ErrCatalogUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		s.logger.Warn().Int("status", resp.StatusCode).Msg("catalog returned non-200")
		return nil, fmt.Errorf("%w: unexpected status %d", models.ErrCatalogUnavailable, resp.StatusCode)
	}

	var catalog models.Catalog
	if err := json.NewDecoder(resp.Body).Decode(&catalog); err != nil {
		s.logger.Warn().Err(err).Msg("catalog decode failed")
		return nil, fmt.Errorf("%w: decoding response: %v", models.ErrCatalogUnavailable, err)
	}

	return s.sanitize(&catalog), nil
}

// FetchEvent fetches the catalog and resolves one event in a single
// call, for flows that only need the event
func (s *CatalogService) FetchEvent(ctx context.Context, eventID string) (*models.Event, error) {
	catalog, err := s.Fetch(ctx)
	if err != nil {
		return nil, err
	}
	return s.FindEvent(catalog, eventID)
}

// FindEvent returns the event with the given identifier.
// models.ErrEventNotFound means the catalog loaded but has no such
// event, which callers must keep distinct from a failed fetch.
func (s *CatalogService) FindEvent(catalog *models.Catalog, eventID string) (*models.Event, error) {
	for i := range catalog.Events {
		if catalog.Events[i].ID == eventID {
			return &catalog.Events[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrEventNotFound, eventID)
}

// FindPlace returns the place with the given identifier
func (s *CatalogService) FindPlace(catalog *models.Catalog, placeID string) (*models.Place, error) {
	for i := range catalog.Places {
		if catalog.Places[i].ID == placeID {
			return &catalog.Places[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %s", models.ErrPlaceNotFound, placeID)
}

// TopEvents returns the events the feed marks for the top carousel
func (s *CatalogService) TopEvents(catalog *models.Catalog) []models.Event {
	return s.eventsByPosition(catalog, models.PositionTop)
}

// RegularEvents returns the events the feed marks as regular listings
func (s *CatalogService) RegularEvents(catalog *models.Catalog) []models.Event {
	return s.eventsByPosition(catalog, models.PositionRegular)
}

func (s *CatalogService) eventsByPosition(catalog *models.Catalog, position models.EventPosition) []models.Event {
	events := make([]models.Event, 0, len(catalog.Events))
	for _, event := range catalog.Events {
		if event.Position == position {
			events = append(events, event)
		}
	}
	return events
}

// sanitize drops malformed feed entries instead of propagating them
func (s *CatalogService) sanitize(catalog *models.Catalog) *models.Catalog {
	clean := &models.Catalog{
		Events: make([]models.Event, 0, len(catalog.Events)),
		Places: make([]models.Place, 0, len(catalog.Places)),
	}

	for _, event := range catalog.Events {
		if err := event.Validate(); err != nil {
			s.logger.Warn().Err(err).Str("event_id", event.ID).Msg("dropping malformed event")
			continue
		}
		clean.Events = append(clean.Events, event)
	}

	for _, place := range catalog.Places {
		if err := place.Validate(); err != nil {
			s.logger.Warn().Err(err).Str("place_id", place.ID).Msg("dropping malformed place")
			continue
		}
		clean.Places = append(clean.Places, place)
	}

	return clean
}
