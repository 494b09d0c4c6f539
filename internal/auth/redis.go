package auth

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	domain "github.com/donaldgifford/grocery-prices/pkg/types"
)

const defaultRedisKeyPrefix = "grocer:token:"

// RedisOptions holds the Redis token store connection settings.
type RedisOptions struct {
	Addr      string
	Password  string
	DB        int
	KeyPrefix string
}

// RedisStore is a TokenStore shared by every replica pointing at the same
// Redis. Entries expire with the token, so Redis drops them on its own.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
	nowFunc   func() time.Time
}

// NewRedisStore connects to Redis and verifies the connection.
func NewRedisStore(ctx context.Context, opts RedisOptions) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis: %w", err)
	}

	return NewRedisStoreWithClient(client, opts.KeyPrefix), nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = defaultRedisKeyPrefix
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
		nowFunc:   time.Now,
	}
}

func (s *RedisStore) key(vendor domain.VendorID) string {
	return s.keyPrefix + string(vendor)
}

// Get implements TokenStore.
func (s *RedisStore) Get(ctx context.Context, vendor domain.VendorID) (Token, bool, error) {
	data, err := s.client.Get(ctx, s.key(vendor)).Bytes()
	if errors.Is(err, redis.Nil) {
		return Token{}, false, nil
	}
	if err != nil {
		return Token{}, false, fmt.Errorf("reading token from redis: %w", err)
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return Token{}, false, fmt.Errorf("decoding cached token: %w", err)
	}
	return tok, true, nil
}

// Put implements TokenStore. Already-expired tokens are not written.
func (s *RedisStore) Put(ctx context.Context, vendor domain.VendorID, tok Token) error {
	ttl := tok.ExpiresAt.Sub(s.nowFunc())
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(tok)
	if err != nil {
		return fmt.Errorf("encoding token: %w", err)
	}

	if err := s.client.Set(ctx, s.key(vendor), data, ttl).Err(); err != nil {
		return fmt.Errorf("writing token to redis: %w", err)
	}
	return nil
}

// Delete implements TokenStore.
func (s *RedisStore) Delete(ctx context.Context, vendor domain.VendorID) error {
	if err := s.client.Del(ctx, s.key(vendor)).Err(); err != nil {
		return fmt.Errorf("deleting token from redis: %w", err)
	}
	return nil
}

// Ping verifies the Redis connection is alive.
func (s *RedisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// Close closes the Redis client.
func (s *RedisStore) Close() error {
	return s.client.Close()
}

var _ TokenStore = (*RedisStore)(nil)
