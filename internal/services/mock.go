package services

import (
	"context"

	"myticket-storefront/internal/models"

	"github.com/stretchr/testify/mock"
)

// MockCatalogService is a mock implementation of CatalogServiceInterface
type MockCatalogService struct {
	mock.Mock
}

func (m *MockCatalogService) Fetch(ctx context.Context) (*models.Catalog, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Catalog), args.Error(1)
}

func (m *MockCatalogService) FetchEvent(ctx context.Context, eventID string) (*models.Event, error) {
	args := m.Called(ctx, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockCatalogService) FindEvent(catalog *models.Catalog, eventID string) (*models.Event, error) {
	args := m.Called(catalog, eventID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Event), args.Error(1)
}

func (m *MockCatalogService) FindPlace(catalog *models.Catalog, placeID string) (*models.Place, error) {
	args := m.Called(catalog, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Place), args.Error(1)
}

func (m *MockCatalogService) TopEvents(catalog *models.Catalog) []models.Event {
	args := m.Called(catalog)
	return args.Get(0).([]models.Event)
}

func (m *MockCatalogService) RegularEvents(catalog *models.Catalog) []models.Event {
	args := m.Called(catalog)
	return args.Get(0).([]models.Event)
}

// MockPaymentGateway is a mock implementation of PaymentGateway
type MockPaymentGateway struct {
	mock.Mock
}

func (m *MockPaymentGateway) InitializeTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*TransactionResponse), args.Error(1)
}

// MockCheckoutService is a mock implementation of CheckoutServiceInterface
type MockCheckoutService struct {
	mock.Mock
}

func (m *MockCheckoutService) BuildOrderSummary(selection *models.Selection, event *models.Event) *models.OrderSummary {
	args := m.Called(selection, event)
	return args.Get(0).(*models.OrderSummary)
}

func (m *MockCheckoutService) InitiatePayment(ctx context.Context, summary *models.OrderSummary, buyer *models.BuyerDetails) (*CheckoutAttempt, error) {
	args := m.Called(ctx, summary, buyer)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*CheckoutAttempt), args.Error(1)
}

// MockAuthService is a mock implementation of AuthServiceInterface
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, req *LoginRequest) (*models.AuthSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthSession), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, req *RegisterRequest) (*models.AuthSession, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.AuthSession), args.Error(1)
}

func (m *MockAuthService) RequestPasswordReset(ctx context.Context, req *PasswordResetRequest) error {
	args := m.Called(ctx, req)
	return args.Error(0)
}

// MockIdentityProvider is a mock implementation of IdentityProvider
type MockIdentityProvider struct {
	mock.Mock
}

func (m *MockIdentityProvider) SignIn(ctx context.Context, email, password string) (*IdentitySession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*IdentitySession), args.Error(1)
}

func (m *MockIdentityProvider) SignUp(ctx context.Context, email, password string) (*IdentitySession, error) {
	args := m.Called(ctx, email, password)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*IdentitySession), args.Error(1)
}

func (m *MockIdentityProvider) SendPasswordReset(ctx context.Context, email string) error {
	args := m.Called(ctx, email)
	return args.Error(0)
}
