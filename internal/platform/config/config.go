// Package config loads process configuration from the environment so main
// stays lean.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Server captures everything the process reads from its environment.
// An empty DatabaseURL selects the in-process store; anything else selects
// the PostgreSQL-backed store.
type Server struct {
	Addr            string        `env:"CHECKLIST_ADDR"             envDefault:":8080"`
	DatabaseURL     string        `env:"CHECKLIST_DATABASE_URL"`
	Debug           bool          `env:"CHECKLIST_DEBUG"            envDefault:"false"`
	CORSOrigin      string        `env:"CHECKLIST_CORS_ORIGIN"      envDefault:"http://localhost:5173"`
	ShutdownTimeout time.Duration `env:"CHECKLIST_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// FromEnv builds a Server config from environment variables.
func FromEnv() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
