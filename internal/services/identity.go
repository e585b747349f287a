package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"myticket-storefront/internal/config"
	"myticket-storefront/internal/models"

	"github.com/rs/zerolog"
)

// IdentitySession is the provider's answer to a successful sign-in or
// sign-up: an opaque token plus the identifiers the storefront keeps
type IdentitySession struct {
	UserID    string
	Email     string
	Token     string
	ExpiresAt time.Time
}

// HTTPIdentityProvider talks to the external identity service's REST
// API. Only the resulting token is consumed; the provider's internal
// protocol stays opaque to the rest of the storefront.
type HTTPIdentityProvider struct {
	config config.IdentityConfig
	client *http.Client
	logger zerolog.Logger
}

// NewHTTPIdentityProvider creates a new identity provider client
func NewHTTPIdentityProvider(cfg config.IdentityConfig, logger zerolog.Logger) *HTTPIdentityProvider {
	return &HTTPIdentityProvider{
		config: cfg,
		client: &http.Client{Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second},
		logger: logger.With().Str("component", "identity").Logger(),
	}
}

type identityCredentialsRequest struct {
	Email             string `json:"email"`
	Password          string `json:"password"`
	ReturnSecureToken bool   `json:"returnSecureToken"`
}

type identityTokenResponse struct {
	LocalID   string `json:"localId"`
	Email     string `json:"email"`
	IDToken   string `json:"idToken"`
	ExpiresIn string `json:"expiresIn"` // seconds, as a string
}

type identityErrorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}

type identityResetRequest struct {
	RequestType string `json:"requestType"`
	Email       string `json:"email"`
}

// SignIn exchanges credentials for a session token
func (p *HTTPIdentityProvider) SignIn(ctx context.Context, email, password string) (*IdentitySession, error) {
	return p.credentialCall(ctx, "accounts:signInWithPassword", email, password)
}

// SignUp registers a new account and returns its first session token
func (p *HTTPIdentityProvider) SignUp(ctx context.Context, email, password string) (*IdentitySession, error) {
	return p.credentialCall(ctx, "accounts:signUp", email, password)
}

// SendPasswordReset asks the provider to email a reset link
func (p *HTTPIdentityProvider) SendPasswordReset(ctx context.Context, email string) error {
	body := identityResetRequest{
		RequestType: "PASSWORD_RESET",
		Email:       email,
	}

	var resp identityTokenResponse
	return p.post(ctx, "accounts:sendOobCode", body, &resp)
}

func (p *HTTPIdentityProvider) credentialCall(ctx context.Context, endpoint, email, password string) (*IdentitySession, error) {
	body := identityCredentialsRequest{
		Email:             email,
		Password:          password,
		ReturnSecureToken: true,
	}

	var resp identityTokenResponse
	if err := p.post(ctx, endpoint, body, &resp); err != nil {
		return nil, err
	}

	if resp.IDToken == "" {
		return nil, fmt.Errorf("%w: provider returned no token", models.ErrAuthFailed)
	}

	session := &IdentitySession{
		UserID: resp.LocalID,
		Email:  resp.Email,
		Token:  resp.IDToken,
	}
	if seconds, err := strconv.Atoi(resp.ExpiresIn); err == nil {
		session.ExpiresAt = time.Now().Add(time.Duration(seconds) * time.Second)
	}

	return session, nil
}

func (p *HTTPIdentityProvider) post(ctx context.Context, endpoint string, body, out any) error {
	jsonData, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal identity request: %w", err)
	}

	callURL := p.config.BaseURL + "/" + endpoint + "?key=" + p.config.APIKey
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, callURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return fmt.Errorf("failed to create identity request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := p.client.Do(req)
	if err != nil {
		p.logger.Warn().Err(err).Str("endpoint", endpoint).Msg("identity request failed")
		return fmt.Errorf("%w: %v", models.ErrAuthFailed, err)
	}
	defer resp.Body.Close()

	bodyBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: reading response: %v", models.ErrAuthFailed, err)
	}

	if resp.StatusCode != http.StatusOK {
		return p.handleAPIError(resp.StatusCode, bodyBytes)
	}

	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: decoding response: %v", models.ErrAuthFailed, err)
	}

	return nil
}

// handleAPIError surfaces the provider's message verbatim so the
// screen boundary can show it to the user
func (p *HTTPIdentityProvider) handleAPIError(statusCode int, body []byte) error {
	var providerErr identityErrorResponse
	if err := json.Unmarshal(body, &providerErr); err != nil || providerErr.Error.Message == "" {
		return fmt.Errorf("%w: status %d", models.ErrAuthFailed, statusCode)
	}

	return fmt.Errorf("%w: %s", models.ErrAuthFailed, providerErr.Error.Message)
}
