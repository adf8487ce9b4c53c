package auth

import (
	"errors"
	"fmt"
	"time"

	jwt "github.com/golang-jwt/jwt/v5"
)

// Token validation outcomes. Callers distinguish structural failures
// (malformed, bad signature) from semantic ones (expired, wrong
// subject) with errors.Is.
var (
	ErrMalformedToken    = errors.New("malformed token")
	ErrSignatureMismatch = errors.New("token signature mismatch")
	ErrTokenExpired      = errors.New("token expired")
	ErrSubjectMismatch   = errors.New("token subject mismatch")
)

// Claims describes the JWT payload: subject (username), issued-at and
// expiry. The role is deliberately not embedded; it is resolved fresh
// from the user directory at verification time.
type Claims struct {
	jwt.RegisteredClaims
}

// TokenManager issues and verifies HS256 JWTs. The signing key is
// derived once at construction and shared immutably across requests.
type TokenManager struct {
	key      []byte
	lifetime time.Duration
	now      func() time.Time
}

// NewTokenManager derives the signing key from the secret and builds a
// manager issuing tokens valid for lifetimeSeconds.
func NewTokenManager(secret string, lifetimeSeconds int) *TokenManager {
	return &TokenManager{
		key:      DeriveSigningKey(secret),
		lifetime: time.Duration(lifetimeSeconds) * time.Second,
		now:      time.Now,
	}
}

// GenerateToken builds and signs a token for the username.
func (tm *TokenManager) GenerateToken(username string) (string, time.Time, error) {
	now := tm.now()
	expiresAt := now.Add(tm.lifetime)
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(tm.key)
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ExtractClaims parses the token and verifies its signature. Claim
// contents are not validated here, so an expired token still yields its
// claims; only structural or signature failures error out.
func (tm *TokenManager) ExtractClaims(tokenStr string) (*Claims, error) {
	parsed, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method %q", token.Method.Alg())
		}
		return tm.key, nil
	}, jwt.WithoutClaimsValidation())
	if err != nil {
		if errors.Is(err, jwt.ErrTokenSignatureInvalid) {
			return nil, ErrSignatureMismatch
		}
		return nil, fmt.Errorf("%w: %v", ErrMalformedToken, err)
	}

	claims, ok := parsed.Claims.(*Claims)
	if !ok {
		return nil, ErrMalformedToken
	}
	return claims, nil
}

// Validate checks that the token is well-formed, carries a valid
// signature, asserts expectedSubject and has not expired. Expiry is
// compared at whole-second resolution and is exclusive: a token whose
// expiry equals the current instant is already expired.
func (tm *TokenManager) Validate(tokenStr, expectedSubject string) error {
	claims, err := tm.ExtractClaims(tokenStr)
	if err != nil {
		return err
	}
	if claims.Subject != expectedSubject {
		return ErrSubjectMismatch
	}
	if claims.ExpiresAt == nil || claims.ExpiresAt.Unix() <= tm.now().Unix() {
		return ErrTokenExpired
	}
	return nil
}
