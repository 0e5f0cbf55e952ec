package cartstore

import (
	"fmt"

	"github.com/arganshop/backend/internal/domain/checkout"
	"github.com/arganshop/backend/internal/infrastructure/config"
	"go.uber.org/zap"
)

// Factory creates cart stores based on configuration
type Factory struct {
	redisConfig   config.RedisConfig
	logger        *zap.Logger
	allowFallback bool
}

// FactoryOption is a functional option for configuring the factory
type FactoryOption func(*Factory)

// WithLogger sets the logger for the factory
func WithLogger(logger *zap.Logger) FactoryOption {
	return func(f *Factory) {
		f.logger = logger
	}
}

// WithMemoryFallback controls whether to fall back to the in-memory store
// when Redis is unavailable. Default is true.
func WithMemoryFallback(allow bool) FactoryOption {
	return func(f *Factory) {
		f.allowFallback = allow
	}
}

// NewFactory creates a new cart store factory
func NewFactory(cfg config.RedisConfig, opts ...FactoryOption) *Factory {
	f := &Factory{
		redisConfig:   cfg,
		logger:        zap.NewNop(),
		allowFallback: true,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// CreateStore creates a cart store for the given backend ("redis" or
// "memory"). For the redis backend it falls back to the in-memory store when
// Redis is unreachable and fallback is allowed.
func (f *Factory) CreateStore(backend string) (checkout.Store, error) {
	switch backend {
	case "memory":
		f.logger.Info("using in-memory cart store")
		return NewMemoryStore(), nil

	case "redis":
		store, err := NewRedisStore(RedisConfig{
			Addr:     f.redisConfig.Addr(),
			Password: f.redisConfig.Password,
			DB:       f.redisConfig.DB,
		})
		if err == nil {
			f.logger.Info("using Redis cart store")
			return store, nil
		}
		if !f.allowFallback {
			return nil, fmt.Errorf("Redis required for cart sessions but unavailable: %w", err)
		}
		f.logger.Warn("Redis unavailable, falling back to in-memory cart store. "+
			"Cart sessions will not survive restarts or be shared across instances.",
			zap.Error(err),
		)
		return NewMemoryStore(), nil

	default:
		return nil, fmt.Errorf("unknown cart store backend %q", backend)
	}
}
