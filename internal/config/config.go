package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config contains server configuration parameters.
type Config struct {
	LogLevel int      `env:"LOG_LEVEL" envDefault:"0"`
	HTTP     HTTP     `envPrefix:"HTTP_"`
	Database Database `envPrefix:"MONGO_"`
	JWT      JWT      `envPrefix:"JWT_"`
	Password Password `envPrefix:"PASSWORD_"`
}

// HTTP contains HTTP server parameters.
type HTTP struct {
	Port               string `env:"PORT" envDefault:"8080"`
	EnableHTTPS        bool   `env:"ENABLE_HTTPS" envDefault:"false"`
	CertFileName       string `env:"CERT_FILE_NAME" envDefault:"cert.pem"`
	PrivateKeyFileName string `env:"PRIVATE_KEY_FILE_NAME" envDefault:"key.pem"`
}

// Database contains document database connection parameters.
type Database struct {
	URI  string `env:"URI" envDefault:"mongodb://localhost:27017"`
	Name string `env:"DATABASE" envDefault:"userauth"`
}

// JWT contains session token parameters.
type JWT struct {
	Secret   string        `env:"SECRET" envDefault:"devsecret"`
	TokenTTL time.Duration `env:"TOKEN_TTL" envDefault:"15m"`
}

// Password contains password hashing parameters. Cost is the bcrypt work
// factor; raising it does not invalidate previously stored hashes because
// bcrypt encodes the cost in the hash itself.
type Password struct {
	HashCost int `env:"HASH_COST" envDefault:"10"`
}

// NewConfig loads configuration from environment variables.
func NewConfig() (*Config, error) {
	cfg := Config{}
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return &cfg, nil
}
