package model

import "time"

// TokenType tags a token as access or refresh.
type TokenType string

const (
	TokenTypeAccess  TokenType = "access"
	TokenTypeRefresh TokenType = "refresh"
)

// Claims is the verified content of a token.
type Claims struct {
	ID        string
	Subject   string
	Type      TokenType
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// IssuedToken is a freshly signed token together with the values needed to
// revoke it later.
type IssuedToken struct {
	Raw       string
	ID        string
	Type      TokenType
	ExpiresAt time.Time
}

// TokenPair holds an access token and the refresh token issued with it.
type TokenPair struct {
	Access  IssuedToken
	Refresh IssuedToken
}

// TokenManager issues and verifies signed tokens.
type TokenManager interface {
	IssueAccess(subject int64) (IssuedToken, error)
	IssueRefresh(subject int64) (IssuedToken, error)
	IssuePair(subject int64) (TokenPair, error)
	// Parse verifies signature and expiry. Errors wrap ErrExpiredToken or ErrInvalidToken.
	Parse(raw string) (Claims, error)
	// Peek decodes jti and expiry of a correctly signed token, expired or not.
	Peek(raw string) (jti string, expiresAt time.Time, ok bool)
}

// RevocationRegistry tracks revoked token identifiers until they expire.
type RevocationRegistry interface {
	Revoke(jti string, expiresAt time.Time)
	IsRevoked(jti string) bool
}
