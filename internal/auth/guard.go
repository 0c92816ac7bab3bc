package auth

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/rs/zerolog"

	"taskboard-service/internal/entity"
	"taskboard-service/internal/repository"
)

var logger = zerolog.New(os.Stdout).With().Timestamp().Logger()

// UserFinder looks users up by their email identity.
type UserFinder interface {
	GetUserByEmail(ctx context.Context, email string) (*entity.User, error)
}

// UserCache is an optional read-through cache in front of the UserFinder.
type UserCache interface {
	Get(ctx context.Context, email string) (*entity.User, bool, error)
	Set(ctx context.Context, user *entity.User) error
}

// Guard resolves bearer tokens to users.
type Guard struct {
	tokens *TokenService
	users  UserFinder
	cache  UserCache
}

// NewGuard builds a guard. cache may be nil.
func NewGuard(tokens *TokenService, users UserFinder, cache UserCache) *Guard {
	return &Guard{tokens: tokens, users: users, cache: cache}
}

// Resolve validates token and loads the user named by its subject. It fails
// with ErrUnauthorized when the token is invalid or the user is gone.
func (g *Guard) Resolve(ctx context.Context, token string) (*entity.User, error) {
	email, err := g.tokens.Validate(token)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnauthorized, err)
	}

	if g.cache != nil {
		user, ok, err := g.cache.Get(ctx, email)
		if err != nil {
			logger.Error().Err(err).Msgf("Error reading user %s from cache", email)
		} else if ok {
			return user, nil
		}
	}

	user, err := g.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, fmt.Errorf("%w: unknown user", ErrUnauthorized)
		}
		return nil, err
	}

	if g.cache != nil {
		if err := g.cache.Set(ctx, user); err != nil {
			logger.Error().Err(err).Msgf("Error writing user %s to cache", email)
		}
	}
	return user, nil
}
