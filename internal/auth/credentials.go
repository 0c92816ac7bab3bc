package auth

import (
	"errors"

	"golang.org/x/crypto/bcrypt"
)

// CredentialStore hashes and verifies passwords with bcrypt.
type CredentialStore struct {
	cost int
}

// NewCredentialStore returns a store hashing at cost, clamped to bcrypt's range.
func NewCredentialStore(cost int) *CredentialStore {
	if cost < bcrypt.MinCost {
		cost = bcrypt.MinCost
	}
	if cost > bcrypt.MaxCost {
		cost = bcrypt.MaxCost
	}
	return &CredentialStore{cost: cost}
}

// Hash returns a salted bcrypt hash of password. Empty passwords are allowed.
func (s *CredentialStore) Hash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		if errors.Is(err, bcrypt.ErrPasswordTooLong) {
			return "", ErrPasswordTooLong
		}
		return "", err
	}
	return string(hash), nil
}

// Verify reports whether password matches hash. A malformed hash never matches.
func (s *CredentialStore) Verify(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}
