package cartstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/redis/go-redis/v9"
)

// RedisStore implements checkout.Store using Redis. It is suitable for
// deployments with multiple instances, where cart sessions must survive a
// restart and be visible to every instance.
type RedisStore struct {
	client    *redis.Client
	keyPrefix string
}

// RedisConfig holds Redis connection configuration
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// NewRedisStore creates a new Redis-backed cart store
func NewRedisStore(cfg RedisConfig) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Addr,
		Password: cfg.Password,
		DB:       cfg.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return &RedisStore{
		client:    client,
		keyPrefix: "cart:session:",
	}, nil
}

// NewRedisStoreWithClient creates a store with an existing Redis client.
// Useful for testing or when sharing a client across components.
func NewRedisStoreWithClient(client *redis.Client, keyPrefix string) *RedisStore {
	if keyPrefix == "" {
		keyPrefix = "cart:session:"
	}
	return &RedisStore{
		client:    client,
		keyPrefix: keyPrefix,
	}
}

// Get returns the cart for the given session token, or an empty cart when
// the token is unknown or expired
func (s *RedisStore) Get(ctx context.Context, token string) (*checkout.Cart, error) {
	payload, err := s.client.Get(ctx, s.keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return checkout.NewCart(), nil
		}
		return nil, fmt.Errorf("failed to load cart session: %w", err)
	}

	var cart checkout.Cart
	if err := json.Unmarshal(payload, &cart); err != nil {
		// A corrupt session is unrecoverable; start over with an empty cart
		return checkout.NewCart(), nil
	}
	return &cart, nil
}

// Put stores the cart under the given session token with the given TTL
func (s *RedisStore) Put(ctx context.Context, token string, cart *checkout.Cart, ttl time.Duration) error {
	payload, err := json.Marshal(cart)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}
	if err := s.client.Set(ctx, s.keyPrefix+token, payload, ttl).Err(); err != nil {
		return fmt.Errorf("failed to store cart session: %w", err)
	}
	return nil
}

// Delete removes the cart for the given session token
func (s *RedisStore) Delete(ctx context.Context, token string) error {
	if err := s.client.Del(ctx, s.keyPrefix+token).Err(); err != nil {
		return fmt.Errorf("failed to delete cart session: %w", err)
	}
	return nil
}

// Close closes the Redis client
func (s *RedisStore) Close() error {
	return s.client.Close()
}

// Ensure RedisStore implements checkout.Store
var _ checkout.Store = (*RedisStore)(nil)
