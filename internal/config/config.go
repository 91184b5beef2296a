package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Config is the process configuration, loaded from the environment after the
// .env bootstrap has run.
type Config struct {
	Port         int    `env:"PORT" envDefault:"5000"`
	MongoURI     string `env:"MONGODB_URI" envDefault:"mongodb://localhost:27017"`
	DatabaseName string `env:"DATABASE_NAME" envDefault:"alumni_portal"`
	JWTSecret    string `env:"JWT_SECRET,required"`
	AllowOrigin  string `env:"CORS_ORIGIN" envDefault:"http://localhost:5173"`

	// Resend delivery is optional; notifications stay store-only when unset.
	ResendAPIKey string `env:"RESEND_API_KEY"`
	FromEmail    string `env:"FROM_EMAIL"`
	AdminEmail   string `env:"ADMIN_EMAIL"`

	// Interval in minutes for the campaign expiry sweeper. Zero disables it.
	SweepInterval int `env:"CAMPAIGN_SWEEP_INTERVAL" envDefault:"60"`
}

func NewConfig() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse environment: %w", err)
	}
	return &cfg, nil
}
