package models

import (
	"encoding/json"
	"errors"
	"math"
	"strconv"
	"strings"
)

// EventPosition marks where an event is surfaced in the storefront
type EventPosition string

const (
	PositionTop     EventPosition = "top"
	PositionRegular EventPosition = "regular"
)

// Well-known ticket tier labels. The set is open: events may define
// additional labels and the selection logic treats them uniformly.
const (
	TierRegular = "Regular"
	TierVIP     = "VIP"
	TierVVIP    = "VVIP"
)

// Catalog is one immutable snapshot of the remote event/place feed
type Catalog struct {
	Events []Event `json:"events"`
	Places []Place `json:"places"`
}

// Event represents a single event in the catalog
type Event struct {
	ID          string        `json:"event_id"`
	DisplayName string        `json:"display_name"`
	Description string        `json:"event_description"`
	Poster      string        `json:"poster"`
	Location    string        `json:"location"`
	DateTime    string        `json:"event_date_time"`
	Position    EventPosition `json:"position"`
	Tickets     []TicketTier  `json:"tickets"`
}

// TicketTier is one priced ticket category belonging to an event.
// Price is held in cents; the feed carries whole-currency amounts.
type TicketTier struct {
	Type  string `json:"ticket_type"`
	Price int    `json:"price"`
}

// Place represents a venue highlighted alongside events
type Place struct {
	ID          string `json:"place_id"`
	Name        string `json:"place_name"`
	Photo       string `json:"place_photo"`
	Description string `json:"description"`
}

// UnmarshalJSON decodes an event entry, tolerating numeric identifiers
func (e *Event) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID          json.Number   `json:"event_id"`
		DisplayName string        `json:"display_name"`
		Description string        `json:"event_description"`
		Poster      string        `json:"poster"`
		Location    string        `json:"location"`
		DateTime    string        `json:"event_date_time"`
		Position    EventPosition `json:"position"`
		Tickets     []TicketTier  `json:"tickets"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	e.ID = a.ID.String()
	e.DisplayName = a.DisplayName
	e.Description = a.Description
	e.Poster = a.Poster
	e.Location = a.Location
	e.DateTime = a.DateTime
	e.Position = a.Position
	e.Tickets = a.Tickets
	return nil
}

// UnmarshalJSON decodes a ticket entry, converting the feed's
// whole-currency price into cents
func (tt *TicketTier) UnmarshalJSON(data []byte) error {
	type alias struct {
		Type  string      `json:"ticket_type"`
		Price json.Number `json:"price"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	tt.Type = a.Type
	tt.Price = 0
	if a.Price.String() != "" {
		price, err := a.Price.Float64()
		if err != nil {
			return errors.New("invalid ticket price")
		}
		tt.Price = int(math.Round(price * 100))
	}
	return nil
}

// UnmarshalJSON decodes a place entry, tolerating numeric identifiers
func (p *Place) UnmarshalJSON(data []byte) error {
	type alias struct {
		ID          json.Number `json:"place_id"`
		Name        string      `json:"place_name"`
		Photo       string      `json:"place_photo"`
		Description string      `json:"description"`
	}

	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}

	p.ID = a.ID.String()
	p.Name = a.Name
	p.Photo = a.Photo
	p.Description = a.Description
	return nil
}

// Validate validates the event data as fetched from the catalog
func (e *Event) Validate() error {
	if strings.TrimSpace(e.ID) == "" {
		return errors.New("event id is required")
	}

	if strings.TrimSpace(e.DisplayName) == "" {
		return errors.New("event display name is required")
	}

	seen := make(map[string]bool, len(e.Tickets))
	for _, tt := range e.Tickets {
		if err := tt.Validate(); err != nil {
			return err
		}
		if seen[tt.Type] {
			return errors.New("duplicate ticket tier: " + tt.Type)
		}
		seen[tt.Type] = true
	}

	return nil
}

// Validate validates a ticket tier
func (tt *TicketTier) Validate() error {
	if strings.TrimSpace(tt.Type) == "" {
		return errors.New("ticket tier label is required")
	}

	if tt.Price < 0 {
		return errors.New("ticket price cannot be negative")
	}

	return nil
}

// Validate validates a place entry
func (p *Place) Validate() error {
	if strings.TrimSpace(p.ID) == "" {
		return errors.New("place id is required")
	}

	if strings.TrimSpace(p.Name) == "" {
		return errors.New("place name is required")
	}

	return nil
}

// Tier returns the tier with the given label, if the event defines it
func (e *Event) Tier(label string) (TicketTier, bool) {
	for _, tt := range e.Tickets {
		if tt.Type == label {
			return tt, true
		}
	}
	return TicketTier{}, false
}

// HasTier returns true if the event defines the given tier label
func (e *Event) HasTier(label string) bool {
	_, ok := e.Tier(label)
	return ok
}

// TierLabels returns the event's tier labels in feed order
func (e *Event) TierLabels() []string {
	labels := make([]string, 0, len(e.Tickets))
	for _, tt := range e.Tickets {
		labels = append(labels, tt.Type)
	}
	return labels
}

// PriceInCurrency returns the tier price in whole currency units
func (tt *TicketTier) PriceInCurrency() float64 {
	return float64(tt.Price) / 100.0
}

// FormatAmount renders an amount in cents as a two-decimal string,
// the format the payment gateway expects
func FormatAmount(cents int) string {
	sign := ""
	if cents < 0 {
		sign = "-"
		cents = -cents
	}
	return sign + strconv.Itoa(cents/100) + "." + pad2(cents%100)
}

func pad2(n int) string {
	if n < 10 {
		return "0" + strconv.Itoa(n)
	}
	return strconv.Itoa(n)
}
