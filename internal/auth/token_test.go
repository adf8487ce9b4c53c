package auth

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestManager(t *testing.T, lifetimeSeconds int) *TokenManager {
	t.Helper()
	return NewTokenManager("unit-test-secret", lifetimeSeconds)
}

func TestTokenManager_RoundTrip(t *testing.T) {
	tm := newTestManager(t, 3600)

	token, expiresAt, err := tm.GenerateToken("alice")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.True(t, expiresAt.After(time.Now()))

	claims, err := tm.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)
	require.NotNil(t, claims.IssuedAt)
	require.NotNil(t, claims.ExpiresAt)

	assert.NoError(t, tm.Validate(token, "alice"))
}

func TestTokenManager_SubjectMismatch(t *testing.T) {
	tm := newTestManager(t, 3600)

	token, _, err := tm.GenerateToken("alice")
	require.NoError(t, err)

	err = tm.Validate(token, "bob")
	assert.ErrorIs(t, err, ErrSubjectMismatch)
}

func TestTokenManager_TamperedSignature(t *testing.T) {
	tm := newTestManager(t, 3600)

	token, _, err := tm.GenerateToken("alice")
	require.NoError(t, err)

	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)

	sig := []byte(parts[2])
	if sig[0] == 'A' {
		sig[0] = 'B'
	} else {
		sig[0] = 'A'
	}
	tampered := parts[0] + "." + parts[1] + "." + string(sig)

	_, err = tm.ExtractClaims(tampered)
	assert.ErrorIs(t, err, ErrSignatureMismatch)

	err = tm.Validate(tampered, "alice")
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestTokenManager_WrongKey(t *testing.T) {
	issuer := NewTokenManager("issuer-secret", 3600)
	verifier := NewTokenManager("other-secret", 3600)

	token, _, err := issuer.GenerateToken("alice")
	require.NoError(t, err)

	_, err = verifier.ExtractClaims(token)
	assert.ErrorIs(t, err, ErrSignatureMismatch)
}

func TestTokenManager_Malformed(t *testing.T) {
	tm := newTestManager(t, 3600)

	tests := []struct {
		name  string
		token string
	}{
		{name: "empty string", token: ""},
		{name: "no separators", token: "notatoken"},
		{name: "one separator", token: "part1.part2"},
		{name: "undecodable segments", token: "!!!.@@@.###"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tm.ExtractClaims(tt.token)
			assert.ErrorIs(t, err, ErrMalformedToken)

			err = tm.Validate(tt.token, "alice")
			assert.ErrorIs(t, err, ErrMalformedToken)
		})
	}
}

func TestTokenManager_Expired(t *testing.T) {
	tm := newTestManager(t, 60)

	issuedAt := time.Now().Add(-2 * time.Minute)
	tm.now = func() time.Time { return issuedAt }

	token, _, err := tm.GenerateToken("alice")
	require.NoError(t, err)

	tm.now = time.Now

	// Expired tokens still decode; only Validate rejects them.
	claims, err := tm.ExtractClaims(token)
	require.NoError(t, err)
	assert.Equal(t, "alice", claims.Subject)

	err = tm.Validate(token, "alice")
	assert.ErrorIs(t, err, ErrTokenExpired)
}

func TestTokenManager_ExpiryIsExclusive(t *testing.T) {
	tm := newTestManager(t, 60)

	base := time.Unix(1_700_000_000, 0)
	tm.now = func() time.Time { return base }

	token, expiresAt, err := tm.GenerateToken("alice")
	require.NoError(t, err)
	assert.Equal(t, base.Add(time.Minute), expiresAt)

	// One second before expiry the token is still valid.
	tm.now = func() time.Time { return expiresAt.Add(-time.Second) }
	assert.NoError(t, tm.Validate(token, "alice"))

	// At the expiry instant the token is already expired.
	tm.now = func() time.Time { return expiresAt }
	assert.ErrorIs(t, tm.Validate(token, "alice"), ErrTokenExpired)
}
