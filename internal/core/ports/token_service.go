package ports

// TokenClaims is the verified identity carried by a session token.
type TokenClaims struct {
	UserID   string
	TenantID string
}

// TokenService mints and verifies signed session tokens. Tokens are opaque
// to callers; the tenant id inside is trusted only because Issue embedded
// it under the signing key; no request may supply a tenant id directly.
type TokenService interface {
	Issue(userID, tenantID string) (string, error)
	// Verify is pure and side-effect free. It returns
	// domain.ErrTokenExpired when the token is past its expiry and
	// domain.ErrTokenInvalid for every other failure.
	Verify(token string) (*TokenClaims, error)
}
