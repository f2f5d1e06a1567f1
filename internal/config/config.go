package config

import (
	"github.com/kelseyhightower/envconfig"
)

// Config is populated from the environment. Load a .env first (godotenv) if
// one exists; explicit env vars win. The store location is configuration,
// never a CLI argument.
type Config struct {
	DatabaseDSN string `envconfig:"DATABASE_DSN" default:"ev_motors.db"`
	Env         string `envconfig:"APP_ENV" default:"development"`
	LogLevel    string `envconfig:"LOG_LEVEL" default:"info"`
	Migrations  bool   `envconfig:"MIGRATIONS" default:"false"`
	DBDebug     bool   `envconfig:"DB_DEBUG" default:"false"`
	DBSeed      bool   `envconfig:"DB_SEED" default:"false"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return Config{}, err
	}
	return cfg, nil
}
