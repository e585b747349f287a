package models

import "fmt"

// SelectionPolicy controls how a fresh selection is seeded. The mobile
// storefront pre-selects one Regular ticket when the buyer opens the
// purchase screen; that behavior is kept but made explicit here so a
// deployment can disable or change it.
type SelectionPolicy struct {
	DefaultTier     string
	DefaultQuantity int
}

// DefaultSelectionPolicy returns the seeding policy observed in the
// storefront: one unit of the Regular tier.
func DefaultSelectionPolicy() SelectionPolicy {
	return SelectionPolicy{
		DefaultTier:     TierRegular,
		DefaultQuantity: 1,
	}
}

// Selection holds a buyer's in-progress ticket quantities for one
// event. Quantities exist only for tiers the event defines, which is
// what makes unknown-tier operations detectable.
type Selection struct {
	EventID    string         `json:"event_id"`
	EventTitle string         `json:"event_title"`
	Quantities map[string]int `json:"quantities"`
}

// NewSelection seeds a selection for the event: zero for every tier,
// except the policy's default tier when the event defines it.
func NewSelection(event *Event, policy SelectionPolicy) *Selection {
	s := &Selection{
		EventID:    event.ID,
		EventTitle: event.DisplayName,
		Quantities: make(map[string]int, len(event.Tickets)),
	}

	for _, tt := range event.Tickets {
		s.Quantities[tt.Type] = 0
	}

	if policy.DefaultQuantity > 0 {
		if _, ok := s.Quantities[policy.DefaultTier]; ok {
			s.Quantities[policy.DefaultTier] = policy.DefaultQuantity
		}
	}

	return s
}

// Increment adds one ticket of the given tier
func (s *Selection) Increment(label string) error {
	q, ok := s.Quantities[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTier, label)
	}

	s.Quantities[label] = q + 1
	return nil
}

// Decrement removes one ticket of the given tier. Quantities never go
// negative; decrementing at zero is a no-op.
func (s *Selection) Decrement(label string) error {
	q, ok := s.Quantities[label]
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownTier, label)
	}

	if q > 0 {
		s.Quantities[label] = q - 1
	}
	return nil
}

// Quantity returns the selected quantity for a tier, zero if absent
func (s *Selection) Quantity(label string) int {
	return s.Quantities[label]
}

// TicketCount returns the total number of selected tickets
func (s *Selection) TicketCount() int {
	count := 0
	for _, q := range s.Quantities {
		count += q
	}
	return count
}

// IsEmpty returns true if no tickets are selected
func (s *Selection) IsEmpty() bool {
	return s.TicketCount() == 0
}

// Total computes the order total in cents against the event's prices.
// A selected label the event no longer prices contributes zero; the
// storefront inherited that behavior and it is kept as the documented
// policy rather than an error.
func (s *Selection) Total(event *Event) int {
	total := 0
	for label, count := range s.Quantities {
		if tt, ok := event.Tier(label); ok {
			total += count * tt.Price
		}
	}
	return total
}
