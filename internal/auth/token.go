package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// DefaultTokenTTL applies when the caller does not ask for a lifetime.
const DefaultTokenTTL = 15 * time.Minute

// TokenService issues and validates HMAC-signed JWTs carrying a subject claim.
// It holds no mutable state after construction.
type TokenService struct {
	key    []byte
	method jwt.SigningMethod
	now    func() time.Time
}

// NewTokenService builds a service for one of HS256, HS384 or HS512.
func NewTokenService(secret, algorithm string) (*TokenService, error) {
	if secret == "" {
		return nil, ErrEmptySigningKey
	}
	method, ok := jwt.GetSigningMethod(algorithm).(*jwt.SigningMethodHMAC)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedAlg, algorithm)
	}
	return &TokenService{key: []byte(secret), method: method, now: time.Now}, nil
}

// WithClock replaces the time source.
func (s *TokenService) WithClock(now func() time.Time) *TokenService {
	s.now = now
	return s
}

// Issue signs a token for subject valid for DefaultTokenTTL.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, DefaultTokenTTL)
}

// IssueWithTTL signs a token for subject expiring ttl from now. A ttl of zero
// or less yields a token that never validates.
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	issuedAt := s.now()
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(issuedAt),
		ExpiresAt: jwt.NewNumericDate(issuedAt.Add(ttl)),
	}
	return jwt.NewWithClaims(s.method, claims).SignedString(s.key)
}

// Validate checks signature, algorithm and expiry and returns the subject.
// Every failure is reported as ErrInvalidToken.
func (s *TokenService) Validate(token string) (string, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return s.key, nil
	},
		jwt.WithValidMethods([]string{s.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	// exp is truncated to whole seconds; require now strictly before it.
	if !s.now().Before(claims.ExpiresAt.Time) {
		return "", fmt.Errorf("%w: token is expired", ErrInvalidToken)
	}
	if claims.Subject == "" {
		return "", fmt.Errorf("%w: missing subject", ErrInvalidToken)
	}
	return claims.Subject, nil
}
