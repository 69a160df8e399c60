package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	// Port the HTTP server listens on
	Port string `env:"PG_PORT" envDefault:"5250"`

	// LogLevel is any logrus level name
	LogLevel string `env:"PG_LOG_LEVEL" envDefault:"info"`

	// Store configuration
	Store struct {
		// Backend is "memory" or "sqlite"
		Backend string `env:"PG_STORE" envDefault:"memory"`

		// DSN for the sqlite backend
		SQLiteDSN string `env:"PG_SQLITE_DSN" envDefault:"file:pgmanager?mode=memory&cache=shared"`
	}

	// Actions configuration
	Actions struct {
		// Number of pending UI actions buffered before Push reports full
		QueueSize int `env:"PG_QUEUE_SIZE" envDefault:"64"`
	}

	// CORSOrigins allowed to call the API
	CORSOrigins []string `env:"PG_CORS_ORIGINS" envSeparator:"," envDefault:"http://localhost:5173"`

	// City whose map viewport is served
	City string `env:"PG_CITY" envDefault:"bangalore"`

	// ShutdownTimeout in seconds
	ShutdownTimeout int `env:"PG_SHUTDOWN_TIMEOUT" envDefault:"15"`
}

// LoadConfig reads an optional .env file, then the environment
func LoadConfig() (*Config, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to load .env: %v", err)
	}

	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	if cfg.Actions.QueueSize <= 0 {
		return nil, fmt.Errorf("PG_QUEUE_SIZE must be positive, got %d", cfg.Actions.QueueSize)
	}
	if GetCityByName(cfg.City) == nil {
		return nil, fmt.Errorf("unsupported city: %s", cfg.City)
	}
	return cfg, nil
}

// NewLogger builds the JSON logger used across the server
func (c *Config) NewLogger() *logrus.Logger {
	logger := logrus.New()
	logger.SetFormatter(&logrus.JSONFormatter{})
	logger.SetOutput(os.Stdout)

	level, err := logrus.ParseLevel(c.LogLevel)
	if err != nil {
		logger.WithError(err).Warnf("Unknown log level %q, using info", c.LogLevel)
		level = logrus.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}
