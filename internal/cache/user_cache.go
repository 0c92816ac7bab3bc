package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"

	"taskboard-service/internal/entity"
)

// UserCache keeps resolved users in redis. Users are immutable once
// registered, so entries only expire by TTL.
type UserCache struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewUserCache(rdb *redis.Client, ttl time.Duration) *UserCache {
	return &UserCache{rdb: rdb, ttl: ttl}
}

// cachedUser omits the password hash; the guard never needs it.
type cachedUser struct {
	ID    entity.ID `json:"id"`
	Email string    `json:"email"`
}

func key(email string) string {
	return fmt.Sprintf("user:%s", email)
}

func (c *UserCache) Get(ctx context.Context, email string) (*entity.User, bool, error) {
	val, err := c.rdb.Get(ctx, key(email)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, false, nil
		}
		return nil, false, err
	}

	var cu cachedUser
	if err := json.Unmarshal([]byte(val), &cu); err != nil {
		return nil, false, fmt.Errorf("decode cached user %s: %w", email, err)
	}
	return &entity.User{ID: cu.ID, Email: cu.Email}, true, nil
}

func (c *UserCache) Set(ctx context.Context, user *entity.User) error {
	b, err := json.Marshal(cachedUser{ID: user.ID, Email: user.Email})
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key(user.Email), b, c.ttl).Err()
}
