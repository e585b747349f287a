package services

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/models"

	"github.com/rs/zerolog"
)

// chapaTitleMaxLen is the gateway's limit on the checkout page title
const chapaTitleMaxLen = 16

// ChapaService initializes payments via the Chapa API
type ChapaService struct {
	config  config.ChapaConfig
	client  *http.Client
	logger  zerolog.Logger
	baseURL string
}

// NewChapaService creates a new Chapa payment service
func NewChapaService(cfg config.ChapaConfig, logger zerolog.Logger) *ChapaService {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = "https://api.chapa.co/v1"
	}

	return &ChapaService{
		config:  cfg,
		client:  &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger:  logger.With().Str("component", "chapa").Logger(),
		baseURL: baseURL,
	}
}

// TransactionRequest represents a payment initialization request
type TransactionRequest struct {
	Amount        string        `json:"amount"`   // two-decimal string
	Currency      string        `json:"currency"` // ETB
	Email         string        `json:"email"`
	FirstName     string        `json:"first_name"`
	LastName      string        `json:"last_name"`
	PhoneNumber   string        `json:"phone_number"`
	TxRef         string        `json:"tx_ref"` // unique per attempt
	CallbackURL   string        `json:"callback_url"`
	ReturnURL     string        `json:"return_url"`
	Customization Customization `json:"customization"`
}

// Customization controls the hosted checkout page appearance
type Customization struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// TransactionResponse represents the response from transaction initialization
type TransactionResponse struct {
	Status  string          `json:"status"`
	Message string          `json:"message"`
	Data    TransactionData `json:"data"`
}

// TransactionData contains the transaction initialization data
type TransactionData struct {
	CheckoutURL string `json:"checkout_url"`
}

// chapaError represents an error response body from Chapa
type chapaError struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}

// InitializeTransaction sends one payment-initialization request.
// Exactly one outbound call is made; retrying would risk a duplicate
// tx_ref, so recovery is the caller starting a fresh attempt.
func (s *ChapaService) InitializeTransaction(ctx context.Context, req *TransactionRequest) (*TransactionResponse, error) {
	jsonData, err := json.Marshal(req)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal transaction request: %w", err)
	}

	initURL := s.baseURL + "/transaction/initialize"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, initURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction request: %w", err)
	}

	httpReq.Header.Set("Authorization", "Bearer "+s.config.SecretKey)
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")

	s.logger.Info().Str("tx_ref", req.TxRef).Str("amount", req.Amount).Msg("initializing transaction")

	resp, err := s.client.Do(httpReq)
	if err != nil {
		s.logger.Warn().Err(err).Str("tx_ref", req.TxRef).Msg("transaction request failed")
		return nil, fmt.Errorf("%w: %v", models.ErrGatewayUnreachable, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading response: %v", models.ErrGatewayUnreachable, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, s.handleAPIError(resp.StatusCode, bodyBytes)
	}

	var transactionResp TransactionResponse
	if err := json.Unmarshal(bodyBytes, &transactionResp); err != nil {
		s.logger.Warn().Err(err).Str("tx_ref", req.TxRef).Msg("malformed gateway response")
		return nil, fmt.Errorf("%w: decoding response: %v", models.ErrGatewayUnreachable, err)
	}

	if transactionResp.Data.CheckoutURL == "" {
		return nil, fmt.Errorf("%w: response missing checkout URL", models.ErrGatewayRejected)
	}

	s.logger.Info().Str("tx_ref", req.TxRef).Msg("transaction initialized")

	return &transactionResp, nil
}

// Validate checks the request against the gateway's documented limits
func (r *TransactionRequest) Validate() error {
	if r.Amount == "" {
		return errors.New("amount is required")
	}

	if r.TxRef == "" {
		return errors.New("tx_ref is required")
	}

	if len(r.Customization.Title) > chapaTitleMaxLen {
		return fmt.Errorf("customization title must be at most %d characters", chapaTitleMaxLen)
	}

	return nil
}

// handleAPIError maps Chapa error responses onto the gateway error
// taxonomy, keeping the provider message for the screen boundary
func (s *ChapaService) handleAPIError(statusCode int, body []byte) error {
	var gatewayErr chapaError
	if err := json.Unmarshal(body, &gatewayErr); err != nil || gatewayErr.Message == "" {
		return fmt.Errorf("%w: status %d", models.ErrGatewayRejected, statusCode)
	}

	s.logger.Warn().Int("status", statusCode).Str("message", gatewayErr.Message).Msg("gateway rejected transaction")

	return fmt.Errorf("%w: %s", models.ErrGatewayRejected, gatewayErr.Message)
}

// CheckoutHost extracts the host of a checkout URL, used for logging
// without recording the full tokenized URL
func CheckoutHost(checkoutURL string) string {
	u, err := url.Parse(checkoutURL)
	if err != nil {
		return ""
	}
	return u.Host
}
