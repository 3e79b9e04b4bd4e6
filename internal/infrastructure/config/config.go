package config

import (
	"context"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port      string `env:"PORT,      default=5000"`
	Env       string `env:"ENV,       default=development"`
	JWTSecret string `env:"JWT_SECRET"`
	LogLevel  string `env:"LOG_LEVEL, default=info"`

	// TokenTTL of zero issues tokens without an exp claim.
	TokenTTL time.Duration `env:"TOKEN_TTL, default=0"`

	// EnforceAdminRole gates role-mutation routes behind an admin check. Off
	// by default: any authenticated caller may change roles, a known
	// weakness of the original contract.
	EnforceAdminRole bool `env:"ENFORCE_ADMIN_ROLE, default=false"`

	Mongo  MongoConfig
	Redis  RedisConfig
	Stripe StripeConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=hungry_den"`
}

type RedisConfig struct {
	Addr         string        `env:"REDIS_ADDR, default=localhost:6379"`
	DB           int           `env:"REDIS_DB,   default=0"`
	MenuCacheTTL time.Duration `env:"MENU_CACHE_TTL, default=5m"`
}

type StripeConfig struct {
	SecretKey string `env:"STRIPE_SECRET_KEY"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load() *Config {
	var cfg Config
	if err := envconfig.Process(context.Background(), &cfg); err != nil {
		panic(fmt.Sprintf("config: failed to load configuration: %v", err))
	}
	return &cfg
}
