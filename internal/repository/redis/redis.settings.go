// FilePath: internal/repository/redis/redis.settings.go
package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	goredis "github.com/redis/go-redis/v9"

	"github.com/animalhaven/feederhub/internal/repository"
)

const keyPrefix = "feederhub:settings:"

// SettingsRepo implements the SettingsStore interface on Redis
type SettingsRepo struct {
	client *goredis.Client
}

// NewSettingsRepository creates a Redis-backed settings store
func NewSettingsRepository(addr, password string, db int) *SettingsRepo {
	client := goredis.NewClient(&goredis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})
	return &SettingsRepo{client: client}
}

func (r *SettingsRepo) GetInt(ctx context.Context, key string) (int, error) {
	val, err := r.client.Get(ctx, keyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return 0, repository.ErrNotFound
		}
		return 0, fmt.Errorf("redis get %s: %w", key, err)
	}
	n, err := strconv.Atoi(val)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", repository.ErrInvalidValue, val)
	}
	return n, nil
}

func (r *SettingsRepo) SetInt(ctx context.Context, key string, value int) error {
	if err := r.client.Set(ctx, keyPrefix+key, strconv.Itoa(value), 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (r *SettingsRepo) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

// Close releases the underlying connection pool
func (r *SettingsRepo) Close() error {
	return r.client.Close()
}
