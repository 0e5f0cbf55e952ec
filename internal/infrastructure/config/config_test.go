package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "arganshop-backend", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "localhost", cfg.Database.Host)
	assert.Equal(t, 5432, cfg.Database.Port)
	assert.Equal(t, "arganshop", cfg.Database.DBName)
	assert.Equal(t, 25, cfg.Database.MaxOpenConns)
	assert.Equal(t, "memory", cfg.Cart.Backend)
	assert.Equal(t, 72*time.Hour, cfg.Cart.TTL)
	assert.Equal(t, 12*time.Hour, cfg.JWT.Expiration)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, int64(1<<20), cfg.HTTP.MaxBodySize)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
}

func TestLoadEnvOverride(t *testing.T) {
	envs := map[string]string{
		"ARGAN_APP_PORT":          "9090",
		"ARGAN_DATABASE_PASSWORD": "secret",
		"ARGAN_CART_BACKEND":      "redis",
		"ARGAN_REDIS_HOST":        "cache.internal",
	}
	for k, v := range envs {
		old, had := os.LookupEnv(k)
		os.Setenv(k, v)
		t.Cleanup(func() {
			if had {
				os.Setenv(k, old)
			} else {
				os.Unsetenv(k)
			}
		})
	}

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "secret", cfg.Database.Password)
	assert.Equal(t, "redis", cfg.Cart.Backend)
	assert.Equal(t, "cache.internal", cfg.Redis.Host)
}

func TestValidate(t *testing.T) {
	base := func() *Config {
		cfg := &Config{}
		applyDefaults(cfg)
		return cfg
	}

	t.Run("invalid cart backend", func(t *testing.T) {
		cfg := base()
		cfg.Cart.Backend = "dynamo"
		assert.Error(t, cfg.validate())
	})

	t.Run("idle conns exceed open conns", func(t *testing.T) {
		cfg := base()
		cfg.Database.MaxIdleConns = 100
		assert.Error(t, cfg.validate())
	})

	t.Run("production requires jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("production rejects short jwt secret", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "short"
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("production rejects wildcard cors", func(t *testing.T) {
		cfg := base()
		cfg.App.Env = "production"
		cfg.JWT.Secret = "0123456789abcdef0123456789abcdef"
		cfg.Admin.PasswordHash = "$2a$10$abcdefghijklmnopqrstuv"
		cfg.Database.Password = "pw"
		cfg.Database.SSLMode = "require"
		cfg.HTTP.CORSAllowOrigins = []string{"*"}
		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cors_allow_origins")
	})

	t.Run("sampling ratio bounds", func(t *testing.T) {
		cfg := base()
		cfg.Telemetry.SamplingRatio = 1.5
		assert.Error(t, cfg.validate())
	})
}

func TestDatabaseDSN(t *testing.T) {
	d := DatabaseConfig{
		Host:     "db.internal",
		Port:     5433,
		User:     "argan",
		Password: "p@ss:word/1",
		DBName:   "arganshop",
		SSLMode:  "require",
	}
	dsn := d.DSN()
	assert.Contains(t, dsn, "postgres://")
	assert.Contains(t, dsn, "db.internal:5433")
	assert.Contains(t, dsn, "sslmode=require")
	// special characters in the password must be escaped
	assert.NotContains(t, dsn, "p@ss:word/1")
}

func TestRedisAddr(t *testing.T) {
	r := RedisConfig{Host: "localhost", Port: 6379}
	assert.Equal(t, "localhost:6379", r.Addr())
}
