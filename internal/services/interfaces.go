package services

import (
	"context"

	"myticket-storefront/internal/models"
)

// CatalogServiceInterface defines the interface for catalog access
type CatalogServiceInterface interface {
	Fetch(ctx context.Context) (*models.Catalog, error)
	FetchEvent(ctx context.Context, eventID string) (*models.Event, error)
	FindEvent(catalog *models.Catalog, eventID string) (*models.Event, error)
	FindPlace(catalog *models.Catalog, placeID string) (*models.Place, error)
	TopEvents(catalog *models.Catalog) []models.Event
	RegularEvents(catalog *models.Catalog) []models.Event
}

// PaymentGateway defines the interface for the external payment service
type PaymentGateway interface {
	InitializeTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error)
}

// CheckoutServiceInterface defines the interface for checkout
type CheckoutServiceInterface interface {
	BuildOrderSummary(selection *models.Selection, event *models.Event) *models.OrderSummary
	InitiatePayment(ctx context.Context, summary *models.OrderSummary, buyer *models.BuyerDetails) (*CheckoutAttempt, error)
}

// IdentityProvider defines the interface to the external identity service
type IdentityProvider interface {
	SignIn(ctx context.Context, email, password string) (*IdentitySession, error)
	SignUp(ctx context.Context, email, password string) (*IdentitySession, error)
	SendPasswordReset(ctx context.Context, email string) error
}

// AuthServiceInterface defines the interface for authentication services
type AuthServiceInterface interface {
	Login(ctx context.Context, req *LoginRequest) (*models.AuthSession, error)
	Register(ctx context.Context, req *RegisterRequest) (*models.AuthSession, error)
	RequestPasswordReset(ctx context.Context, req *PasswordResetRequest) error
}
