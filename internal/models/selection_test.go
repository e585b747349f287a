package models

import (
	"errors"
	"testing"
)

func testEvent() *Event {
	return &Event{
		ID:          "E1",
		DisplayName: "Addis Jazz Night",
		Tickets: []TicketTier{
			{Type: TierRegular, Price: 10000}, // 100 ETB
			{Type: TierVIP, Price: 25000},     // 250 ETB
		},
	}
}

func TestNewSelection_DefaultPolicy(t *testing.T) {
	selection := NewSelection(testEvent(), DefaultSelectionPolicy())

	if got := selection.Quantity(TierRegular); got != 1 {
		t.Errorf("Quantity(Regular) = %d, want 1", got)
	}
	if got := selection.Quantity(TierVIP); got != 0 {
		t.Errorf("Quantity(VIP) = %d, want 0", got)
	}
}

func TestNewSelection_DefaultTierNotOnEvent(t *testing.T) {
	event := &Event{
		ID:          "E2",
		DisplayName: "VIP Only Gala",
		Tickets:     []TicketTier{{Type: TierVIP, Price: 50000}},
	}

	selection := NewSelection(event, DefaultSelectionPolicy())

	if !selection.IsEmpty() {
		t.Errorf("selection should be empty when the default tier is absent, got %v", selection.Quantities)
	}
	if _, ok := selection.Quantities[TierRegular]; ok {
		t.Error("selection must not carry tiers the event does not define")
	}
}

func TestSelection_IncrementUnknownTier(t *testing.T) {
	selection := NewSelection(testEvent(), DefaultSelectionPolicy())

	err := selection.Increment(TierVVIP)
	if !errors.Is(err, ErrUnknownTier) {
		t.Errorf("Increment(VVIP) error = %v, want ErrUnknownTier", err)
	}

	err = selection.Decrement(TierVVIP)
	if !errors.Is(err, ErrUnknownTier) {
		t.Errorf("Decrement(VVIP) error = %v, want ErrUnknownTier", err)
	}
}

func TestSelection_DecrementFloorsAtZero(t *testing.T) {
	selection := NewSelection(testEvent(), SelectionPolicy{})

	if err := selection.Decrement(TierVIP); err != nil {
		t.Fatalf("Decrement() error = %v", err)
	}
	if got := selection.Quantity(TierVIP); got != 0 {
		t.Errorf("Quantity(VIP) after decrement at zero = %d, want 0", got)
	}

	selection.Increment(TierVIP)
	selection.Decrement(TierVIP)
	selection.Decrement(TierVIP)
	if got := selection.Quantity(TierVIP); got != 0 {
		t.Errorf("Quantity(VIP) = %d, want 0", got)
	}
}

func TestSelection_Total(t *testing.T) {
	event := testEvent()

	tests := []struct {
		name       string
		quantities map[string]int
		want       int
	}{
		{
			name:       "empty selection",
			quantities: map[string]int{},
			want:       0,
		},
		{
			name:       "two regular one vip",
			quantities: map[string]int{TierRegular: 2, TierVIP: 1},
			want:       45000, // 450 ETB
		},
		{
			name:       "doubled quantities double the total",
			quantities: map[string]int{TierRegular: 4, TierVIP: 2},
			want:       90000,
		},
		{
			name:       "label with no matching price contributes zero",
			quantities: map[string]int{TierRegular: 1, "Backstage": 3},
			want:       10000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selection := &Selection{EventID: event.ID, Quantities: tt.quantities}
			if got := selection.Total(event); got != tt.want {
				t.Errorf("Total() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelection_IncrementDecrementRoundTrip(t *testing.T) {
	selection := NewSelection(testEvent(), SelectionPolicy{})

	for i := 0; i < 3; i++ {
		if err := selection.Increment(TierRegular); err != nil {
			t.Fatalf("Increment() error = %v", err)
		}
	}
	if err := selection.Increment(TierVIP); err != nil {
		t.Fatalf("Increment() error = %v", err)
	}

	if got := selection.TicketCount(); got != 4 {
		t.Errorf("TicketCount() = %d, want 4", got)
	}

	selection.Decrement(TierRegular)
	if got := selection.Quantity(TierRegular); got != 2 {
		t.Errorf("Quantity(Regular) = %d, want 2", got)
	}
	if got := selection.Total(testEvent()); got != 45000 {
		t.Errorf("Total() = %d, want 45000", got)
	}
}
