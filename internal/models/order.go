package models

import (
	"errors"
	"strings"
)

// OrderSummary is a read-only projection of a selection against its
// event's prices. It is recomputed on demand and never stored.
type OrderSummary struct {
	EventID    string     `json:"event_id"`
	EventTitle string     `json:"event_title"`
	LineItems  []LineItem `json:"line_items"`
	Total      int        `json:"total"` // in cents
}

// LineItem is one tier's contribution to an order
type LineItem struct {
	TierLabel string `json:"tier_label"`
	Quantity  int    `json:"quantity"`
	UnitPrice int    `json:"unit_price"` // in cents
	LineTotal int    `json:"line_total"` // in cents
}

// BuyerDetails carries the contact fields the payment gateway requires
type BuyerDetails struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	PhoneNumber string `json:"phone_number"`
}

// NewOrderSummary builds the order summary for a selection. Line items
// follow the event's tier order so the summary renders stably; tiers
// with zero quantity are omitted.
func NewOrderSummary(selection *Selection, event *Event) *OrderSummary {
	summary := &OrderSummary{
		EventID:    event.ID,
		EventTitle: event.DisplayName,
		LineItems:  make([]LineItem, 0, len(event.Tickets)),
	}

	for _, tt := range event.Tickets {
		quantity := selection.Quantity(tt.Type)
		if quantity == 0 {
			continue
		}

		item := LineItem{
			TierLabel: tt.Type,
			Quantity:  quantity,
			UnitPrice: tt.Price,
			LineTotal: quantity * tt.Price,
		}
		summary.LineItems = append(summary.LineItems, item)
		summary.Total += item.LineTotal
	}

	return summary
}

// IsEmpty returns true if the summary has no line items
func (os *OrderSummary) IsEmpty() bool {
	return len(os.LineItems) == 0
}

// Validate validates the buyer contact fields
func (b *BuyerDetails) Validate() error {
	if strings.TrimSpace(b.FirstName) == "" {
		return errors.New("first name is required")
	}

	if strings.TrimSpace(b.LastName) == "" {
		return errors.New("last name is required")
	}

	if err := validateEmail(b.Email); err != nil {
		return err
	}

	if strings.TrimSpace(b.PhoneNumber) == "" {
		return errors.New("phone number is required")
	}

	return nil
}

func validateEmail(email string) error {
	email = strings.TrimSpace(email)
	if email == "" {
		return errors.New("email is required")
	}

	at := strings.Index(email, "@")
	if at <= 0 || at == len(email)-1 {
		return errors.New("email is invalid")
	}

	return nil
}
