package token

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/dtroode/clinic-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims is the JWT payload: registered claims plus the token type tag.
type Claims struct {
	jwt.RegisteredClaims
	TokenType model.TokenType `json:"type"`
}

var signingMethods = map[string]jwt.SigningMethod{
	"HS256": jwt.SigningMethodHS256,
	"HS384": jwt.SigningMethodHS384,
	"HS512": jwt.SigningMethodHS512,
}

// Option configures a JWT manager.
type Option func(*JWT)

// WithClock overrides the time source used for issuing and validating tokens.
func WithClock(now func() time.Time) Option {
	return func(j *JWT) {
		j.now = now
	}
}

// JWT implements model.TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey  []byte
	method     jwt.SigningMethod
	accessTTL  time.Duration
	refreshTTL time.Duration
	now        func() time.Time
	parser     *jwt.Parser
	peeker     *jwt.Parser
}

// NewJWT creates a token manager. An empty secret, an unsupported algorithm
// or a non-positive lifetime is an error.
func NewJWT(secretKey, algorithm string, accessTTL, refreshTTL time.Duration, opts ...Option) (*JWT, error) {
	if secretKey == "" {
		return nil, errors.New("jwt secret is empty")
	}
	method, ok := signingMethods[algorithm]
	if !ok {
		return nil, fmt.Errorf("unsupported jwt algorithm %q", algorithm)
	}
	if accessTTL <= 0 || refreshTTL <= 0 {
		return nil, errors.New("token lifetimes must be positive")
	}

	j := &JWT{
		secretKey:  []byte(secretKey),
		method:     method,
		accessTTL:  accessTTL,
		refreshTTL: refreshTTL,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(j)
	}
	j.parser = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithIssuedAt(),
		jwt.WithTimeFunc(j.now),
	)
	j.peeker = jwt.NewParser(
		jwt.WithValidMethods([]string{method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	return j, nil
}

// IssueAccess creates a short-lived access token for the user.
func (j *JWT) IssueAccess(subject int64) (model.IssuedToken, error) {
	return j.issue(subject, model.TokenTypeAccess, j.accessTTL)
}

// IssueRefresh creates a long-lived refresh token for the user.
func (j *JWT) IssueRefresh(subject int64) (model.IssuedToken, error) {
	return j.issue(subject, model.TokenTypeRefresh, j.refreshTTL)
}

// IssuePair creates an access and a refresh token for the user.
func (j *JWT) IssuePair(subject int64) (model.TokenPair, error) {
	access, err := j.IssueAccess(subject)
	if err != nil {
		return model.TokenPair{}, err
	}
	refresh, err := j.IssueRefresh(subject)
	if err != nil {
		return model.TokenPair{}, err
	}
	return model.TokenPair{Access: access, Refresh: refresh}, nil
}

func (j *JWT) issue(subject int64, typ model.TokenType, ttl time.Duration) (model.IssuedToken, error) {
	now := j.now()
	jti := uuid.NewString()
	issuedAt := jwt.NewNumericDate(now)
	expiresAt := jwt.NewNumericDate(now.Add(ttl))

	token := jwt.NewWithClaims(j.method, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        jti,
			Subject:   strconv.FormatInt(subject, 10),
			IssuedAt:  issuedAt,
			ExpiresAt: expiresAt,
		},
		TokenType: typ,
	})

	raw, err := token.SignedString(j.secretKey)
	if err != nil {
		return model.IssuedToken{}, fmt.Errorf("failed to sign %s token: %w", typ, err)
	}

	return model.IssuedToken{
		Raw:       raw,
		ID:        jti,
		Type:      typ,
		ExpiresAt: expiresAt.UTC(),
	}, nil
}

// Parse verifies the signature and expiry of raw and returns its claims.
// The type tag is not checked here.
func (j *JWT) Parse(raw string) (model.Claims, error) {
	claims := &Claims{}
	_, err := j.parser.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return model.Claims{}, model.NewAuthError(model.ErrExpiredToken, "token has expired")
		}
		return model.Claims{}, model.NewAuthError(model.ErrInvalidToken, "could not validate token")
	}
	if claims.ID == "" {
		return model.Claims{}, model.NewAuthError(model.ErrInvalidToken, "token has no id")
	}

	out := model.Claims{
		ID:        claims.ID,
		Subject:   claims.Subject,
		Type:      claims.TokenType,
		ExpiresAt: claims.ExpiresAt.UTC(),
	}
	if claims.IssuedAt != nil {
		out.IssuedAt = claims.IssuedAt.UTC()
	}
	return out, nil
}

// Peek returns the jti and expiry of raw, checking the signature but none of
// the time-based claims. Tokens not signed with this manager's key are
// rejected, so only tokens this process issued can be revoked through it.
func (j *JWT) Peek(raw string) (string, time.Time, bool) {
	claims := &Claims{}
	_, err := j.peeker.ParseWithClaims(raw, claims, func(*jwt.Token) (interface{}, error) {
		return j.secretKey, nil
	})
	if err != nil {
		return "", time.Time{}, false
	}
	if claims.ID == "" || claims.ExpiresAt == nil {
		return "", time.Time{}, false
	}
	return claims.ID, claims.ExpiresAt.UTC(), true
}
