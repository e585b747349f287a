package services

import (
	"context"
	"errors"
	"fmt"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/models"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// AttemptState tracks a single checkout attempt
type AttemptState string

const (
	AttemptIdle        AttemptState = "idle"
	AttemptSubmitting  AttemptState = "submitting"
	AttemptRedirecting AttemptState = "redirecting" // terminal success
	AttemptFailed      AttemptState = "failed"      // terminal failure
)

// CheckoutAttempt is the outcome of one payment initiation. Redirecting
// and Failed are terminal; recovery is a new attempt with a new tx_ref.
type CheckoutAttempt struct {
	TxRef       string       `json:"tx_ref"`
	State       AttemptState `json:"state"`
	RedirectURL string       `json:"redirect_url,omitempty"`
	FailureMsg  string       `json:"failure_message,omitempty"`
}

// CheckoutService packages a finalized selection into an order summary
// and drives payment initiation against the gateway
type CheckoutService struct {
	gateway PaymentGateway
	config  config.ChapaConfig
	logger  zerolog.Logger
}

// NewCheckoutService creates a new checkout service
func NewCheckoutService(gateway PaymentGateway, cfg config.ChapaConfig, logger zerolog.Logger) *CheckoutService {
	return &CheckoutService{
		gateway: gateway,
		config:  cfg,
		logger:  logger.With().Str("component", "checkout").Logger(),
	}
}

// BuildOrderSummary projects the selection against the event's prices
func (s *CheckoutService) BuildOrderSummary(selection *models.Selection, event *models.Event) *models.OrderSummary {
	return models.NewOrderSummary(selection, event)
}

// InitiatePayment makes exactly one payment-initiation call for the
// order. Each call generates a fresh tx_ref, so a failed attempt is
// retried by calling InitiatePayment again, never by resending.
func (s *CheckoutService) InitiatePayment(ctx context.Context, summary *models.OrderSummary, buyer *models.BuyerDetails) (*CheckoutAttempt, error) {
	attempt := &CheckoutAttempt{State: AttemptIdle}

	if summary.IsEmpty() {
		return attempt, fmt.Errorf("%w: order has no line items", models.ErrInvalidInput)
	}

	if err := buyer.Validate(); err != nil {
		return attempt, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	attempt.TxRef = s.generateTxRef()
	attempt.State = AttemptSubmitting

	req := &TransactionRequest{
		Amount:      models.FormatAmount(summary.Total),
		Currency:    "ETB",
		Email:       buyer.Email,
		FirstName:   buyer.FirstName,
		LastName:    buyer.LastName,
		PhoneNumber: buyer.PhoneNumber,
		TxRef:       attempt.TxRef,
		CallbackURL: s.config.CallbackURL,
		ReturnURL:   s.config.ReturnURL,
		Customization: Customization{
			Title:       truncate(s.config.Title, chapaTitleMaxLen),
			Description: s.config.Description,
		},
	}

	if err := req.Validate(); err != nil {
		attempt.State = AttemptFailed
		attempt.FailureMsg = err.Error()
		return attempt, fmt.Errorf("%w: %v", models.ErrInvalidInput, err)
	}

	resp, err := s.gateway.InitializeTransaction(ctx, req)
	if err != nil {
		attempt.State = AttemptFailed
		attempt.FailureMsg = failureMessage(err)
		s.logger.Warn().Err(err).Str("tx_ref", attempt.TxRef).Msg("payment initiation failed")
		return attempt, err
	}

	attempt.State = AttemptRedirecting
	attempt.RedirectURL = resp.Data.CheckoutURL

	s.logger.Info().
		Str("tx_ref", attempt.TxRef).
		Str("event_id", summary.EventID).
		Str("checkout_host", CheckoutHost(resp.Data.CheckoutURL)).
		Msg("payment initiated")

	return attempt, nil
}

// generateTxRef generates a unique transaction reference for one attempt
func (s *CheckoutService) generateTxRef() string {
	return "myticket-" + uuid.NewString()
}

func failureMessage(err error) string {
	switch {
	case errors.Is(err, models.ErrGatewayUnreachable):
		return "payment gateway unreachable"
	case errors.Is(err, models.ErrGatewayRejected):
		return err.Error()
	default:
		return "payment initiation failed"
	}
}

func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	return s[:max]
}
