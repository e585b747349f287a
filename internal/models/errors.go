package models

import "errors"

// Common errors used throughout the application
var (
	ErrCatalogUnavailable = errors.New("catalog unavailable")
	ErrEventNotFound      = errors.New("event not found")
	ErrPlaceNotFound      = errors.New("place not found")
	ErrUnknownTier        = errors.New("unknown ticket tier")
	ErrGatewayRejected    = errors.New("payment gateway rejected the transaction")
	ErrGatewayUnreachable = errors.New("payment gateway unreachable")
	ErrAuthFailed         = errors.New("authentication failed")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNoSelection        = errors.New("no active ticket selection")
	ErrInvalidInput       = errors.New("invalid input")
)
