package service

import (
	"context"
	"errors"
	"fmt"
	"net/mail"
	"strings"
	"time"

	"taskboard-service/internal/auth"
	"taskboard-service/internal/entity"
	"taskboard-service/internal/repository"
)

// UserService registers accounts and exchanges credentials for tokens.
type UserService struct {
	users       repository.UserRepository
	credentials *auth.CredentialStore
	tokens      *auth.TokenService
	tokenTTL    time.Duration
}

// NewUserService creates a new instance of UserService. Login tokens live for tokenTTL.
func NewUserService(users repository.UserRepository, credentials *auth.CredentialStore, tokens *auth.TokenService, tokenTTL time.Duration) *UserService {
	return &UserService{
		users:       users,
		credentials: credentials,
		tokens:      tokens,
		tokenTTL:    tokenTTL,
	}
}

// normalizeEmail lowercases email so lookups match under every driver's
// collation.
func normalizeEmail(email string) string {
	return strings.ToLower(email)
}

// validateEmail accepts a bare address whose domain has at least one dot.
func validateEmail(email string) error {
	addr, err := mail.ParseAddress(email)
	if err != nil || addr.Address != email {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	domain := email[strings.LastIndex(email, "@")+1:]
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return fmt.Errorf("%w: %q", ErrInvalidEmail, email)
	}
	return nil
}

// Register creates a user with a hashed password. The email is stored lowercased.
func (s *UserService) Register(ctx context.Context, email, password string) (*entity.User, error) {
	email = normalizeEmail(email)
	if err := validateEmail(email); err != nil {
		return nil, err
	}

	if _, err := s.users.GetUserByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, repository.ErrNotFound) {
		logger.Error().Err(err).Msgf("Error looking up user %s", email)
		return nil, err
	}

	hash, err := s.credentials.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &entity.User{Email: email, PasswordHash: hash}
	if err := s.users.CreateUser(ctx, user); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailTaken
		}
		logger.Error().Err(err).Msg("Error creating user")
		return nil, err
	}
	return user, nil
}

// Login verifies the password and issues an access token for the email.
func (s *UserService) Login(ctx context.Context, email, password string) (string, error) {
	email = normalizeEmail(email)
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return "", ErrInvalidCredentials
		}
		logger.Error().Err(err).Msgf("Error looking up user %s", email)
		return "", err
	}

	if !s.credentials.Verify(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	token, err := s.tokens.IssueWithTTL(user.Email, s.tokenTTL)
	if err != nil {
		logger.Error().Err(err).Msg("Error signing token")
		return "", err
	}
	return token, nil
}
