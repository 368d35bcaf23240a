// Package config loads configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Web configures the web client.
type Web struct {
	Port              string        `env:"PORT" envDefault:"8080"`
	AccountServiceURL string        `env:"ACCOUNT_SERVICE_URL" envDefault:"http://127.0.0.1:8000"`
	RecommendPath     string        `env:"ACCOUNT_RECOMMEND_PATH" envDefault:"/recommend"`
	GatewayTimeout    time.Duration `env:"GATEWAY_TIMEOUT" envDefault:"10s"`
	SessionSecret     string        `env:"SESSION_SECRET,required"`
	CookieSecure      bool          `env:"COOKIE_SECURE" envDefault:"true"`
}

// Accountd configures the stand-in account service.
type Accountd struct {
	Port         string `env:"PORT" envDefault:"8000"`
	DatabasePath string `env:"DATABASE_PATH" envDefault:"accountd.db"`
	BcryptCost   int    `env:"BCRYPT_COST" envDefault:"12"`
}

// LoadWeb parses and validates the web client configuration.
func LoadWeb() (Web, error) {
	var cfg Web
	if err := env.Parse(&cfg); err != nil {
		return Web{}, fmt.Errorf("parse env: %w", err)
	}
	if len(cfg.SessionSecret) < 32 {
		return Web{}, fmt.Errorf("SESSION_SECRET must be at least 32 characters for HMAC-SHA256 security")
	}
	return cfg, nil
}

// LoadAccountd parses and validates the stand-in service configuration.
func LoadAccountd() (Accountd, error) {
	var cfg Accountd
	if err := env.Parse(&cfg); err != nil {
		return Accountd{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.BcryptCost < 4 || cfg.BcryptCost > 14 {
		return Accountd{}, fmt.Errorf("BCRYPT_COST must be between 4 and 14, got %d", cfg.BcryptCost)
	}
	return cfg, nil
}
