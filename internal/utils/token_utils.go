package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ScopeTokenIssuer signs HS256 tokens whose subject is the ledger scope (the user ID).
type ScopeTokenIssuer struct {
	Secret string
	Issuer string
	TTL    time.Duration
	Now    func() time.Time
}

// NewScopeTokenIssuer returns an issuer using the wall clock.
func NewScopeTokenIssuer(secret, issuer string, ttl time.Duration) *ScopeTokenIssuer {
	return &ScopeTokenIssuer{Secret: secret, Issuer: issuer, TTL: ttl, Now: time.Now}
}

// Issue signs a token for scopeID and returns it with its expiry.
func (s *ScopeTokenIssuer) Issue(scopeID string) (string, time.Time, error) {
	if scopeID == "" {
		return "", time.Time{}, errors.New("scope id is required")
	}
	if s.Secret == "" {
		return "", time.Time{}, errors.New("signing secret is required")
	}
	now := s.Now()
	expiresAt := now.Add(s.TTL)
	claims := jwt.RegisteredClaims{
		Issuer:    s.Issuer,
		Subject:   scopeID,
		ExpiresAt: jwt.NewNumericDate(expiresAt),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT checks the signature and the time claims of tokenString.
// Only HMAC tokens are accepted and an expiry is mandatory.
func ParseAndValidateJWT(tokenString string, secretKey string) (*jwt.RegisteredClaims, error) {
	claims := &jwt.RegisteredClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}
	return claims, nil
}
