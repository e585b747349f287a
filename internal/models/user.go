package models

// User is the authenticated identity as surfaced by the external
// identity provider. The provider's protocol stays opaque; the
// storefront only holds the resulting identifiers and token.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthSession is the serializable session state persisted after a
// successful login and cleared on logout
type AuthSession struct {
	User      User   `json:"user"`
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expires_at"` // Unix timestamp
}
