package token

import (
	"strings"
	"testing"
	"time"

	"github.com/dtroode/clinic-server/internal/model"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) Now() time.Time { return c.t }

func (c *fakeClock) Advance(d time.Duration) { c.t = c.t.Add(d) }

func newTestJWT(t *testing.T) (*JWT, *fakeClock) {
	t.Helper()
	clock := &fakeClock{t: time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)}
	j, err := NewJWT("secret", "HS256", 15*time.Minute, 7*24*time.Hour, WithClock(clock.Now))
	require.NoError(t, err)
	return j, clock
}

func TestNewJWT_Config(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		secret    string
		algorithm string
		wantErr   bool
	}{
		{name: "hs256", secret: "s", algorithm: "HS256"},
		{name: "hs512", secret: "s", algorithm: "HS512"},
		{name: "empty secret", secret: "", algorithm: "HS256", wantErr: true},
		{name: "unknown algorithm", secret: "s", algorithm: "RS256", wantErr: true},
		{name: "none", secret: "s", algorithm: "none", wantErr: true},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := NewJWT(tt.secret, tt.algorithm, time.Minute, time.Hour)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestJWT_IssueAndParse(t *testing.T) {
	j, clock := newTestJWT(t)

	access, err := j.IssueAccess(42)
	require.NoError(t, err)
	assert.Equal(t, model.TokenTypeAccess, access.Type)
	assert.Equal(t, clock.Now().Add(15*time.Minute), access.ExpiresAt)

	claims, err := j.Parse(access.Raw)
	require.NoError(t, err)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, model.TokenTypeAccess, claims.Type)
	assert.Equal(t, access.ID, claims.ID)
	assert.Equal(t, access.ExpiresAt, claims.ExpiresAt)
	assert.Equal(t, clock.Now(), claims.IssuedAt)

	refresh, err := j.IssueRefresh(42)
	require.NoError(t, err)
	claims, err = j.Parse(refresh.Raw)
	require.NoError(t, err)
	assert.Equal(t, model.TokenTypeRefresh, claims.Type)
	assert.Equal(t, clock.Now().Add(7*24*time.Hour), claims.ExpiresAt)
}

func TestJWT_IssuePair_DistinctIDs(t *testing.T) {
	j, _ := newTestJWT(t)

	pair, err := j.IssuePair(7)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access.ID, pair.Refresh.ID)

	again, err := j.IssuePair(7)
	require.NoError(t, err)
	assert.NotEqual(t, pair.Access.ID, again.Access.ID)
	assert.NotEqual(t, pair.Refresh.ID, again.Refresh.ID)
}

func TestJWT_Parse_Expired(t *testing.T) {
	j, clock := newTestJWT(t)

	access, err := j.IssueAccess(1)
	require.NoError(t, err)

	clock.Advance(16 * time.Minute)
	_, err = j.Parse(access.Raw)
	require.Error(t, err)
	assert.ErrorIs(t, err, model.ErrExpiredToken)
}

func TestJWT_Parse_Invalid(t *testing.T) {
	j, _ := newTestJWT(t)

	access, err := j.IssueAccess(1)
	require.NoError(t, err)

	other, err := NewJWT("another-secret", "HS256", time.Minute, time.Hour)
	require.NoError(t, err)
	foreign, err := other.IssueAccess(1)
	require.NoError(t, err)

	parts := strings.Split(access.Raw, ".")
	tampered := parts[0] + "." + parts[1] + ".AAAA" + parts[2][4:]

	for name, raw := range map[string]string{
		"garbage":        "not-a-token",
		"empty":          "",
		"wrong secret":   foreign.Raw,
		"bad signature":  tampered,
		"two segments":   parts[0] + "." + parts[1],
		"unsigned token": unsignedToken(t),
	} {
		_, err := j.Parse(raw)
		assert.ErrorIs(t, err, model.ErrInvalidToken, name)
	}
}

func TestJWT_Parse_WrongAlgorithm(t *testing.T) {
	j, clock := newTestJWT(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS512, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(clock.Now().Add(time.Minute)),
		},
		TokenType: model.TokenTypeAccess,
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.Parse(raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Parse_MissingExpiry(t *testing.T) {
	j, _ := newTestJWT(t)

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{ID: "jti", Subject: "1"},
		TokenType:        model.TokenTypeAccess,
	})
	raw, err := token.SignedString([]byte("secret"))
	require.NoError(t, err)

	_, err = j.Parse(raw)
	assert.ErrorIs(t, err, model.ErrInvalidToken)
}

func TestJWT_Peek(t *testing.T) {
	j, clock := newTestJWT(t)

	access, err := j.IssueAccess(3)
	require.NoError(t, err)

	clock.Advance(time.Hour)
	jti, exp, ok := j.Peek(access.Raw)
	require.True(t, ok)
	assert.Equal(t, access.ID, jti)
	assert.Equal(t, access.ExpiresAt, exp)

	_, _, ok = j.Peek("garbage")
	assert.False(t, ok)
}

func TestJWT_Peek_RejectsForeignSignature(t *testing.T) {
	j, _ := newTestJWT(t)

	forged := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "forged",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Date(9999, 1, 1, 0, 0, 0, 0, time.UTC)),
		},
		TokenType: model.TokenTypeAccess,
	})
	raw, err := forged.SignedString([]byte("attacker-key"))
	require.NoError(t, err)

	_, _, ok := j.Peek(raw)
	assert.False(t, ok)

	_, _, ok = j.Peek(unsignedToken(t))
	assert.False(t, ok)
}

func unsignedToken(t *testing.T) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        "jti",
			Subject:   "1",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	raw, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	return raw
}
