package config

import (
	"os"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	Port string
}

// Load reads .env if present, then the environment. Missing .env is fine:
// deployments set real environment variables. JWT_SECRET stays in the
// environment and is read where tokens are signed and verified.
func Load() Config {
	if err := godotenv.Load(); err != nil {
		logrus.Debug("no .env file found, using environment")
	}

	cfg := Config{
		Port: os.Getenv("PORT"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if os.Getenv("JWT_SECRET") == "" {
		logrus.Warn("JWT_SECRET not set, tokens will be signed with an empty key")
	}
	return cfg
}
