package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Config holds the process-wide configuration, loaded once at startup.
// The JWT secret has no default on purpose; the server refuses to start
// without one.
type Config struct {
	ServerAddress  string        `env:"SERVER_ADDRESS"  envDefault:":5000"`
	MongoURI       string        `env:"MONGO_URI"       envDefault:"mongodb://localhost:27017"`
	MongoDatabase  string        `env:"MONGO_DATABASE"  envDefault:"e_comm"`
	JWTSecret      string        `env:"JWT_SECRET,required"`
	TokenTTL       time.Duration `env:"TOKEN_TTL"       envDefault:"2h"`
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from the environment, with a local .env file
// as a fallback for development.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg, err := env.ParseAs[Config]()
	if err != nil {
		return nil, fmt.Errorf("failed to parse environment: %w", err)
	}

	return &cfg, nil
}
