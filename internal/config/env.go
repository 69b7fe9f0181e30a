package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/Hariz09/game-hub-sub001/internal/dedupe"
)

// ServerConfig is the process configuration read from the environment.
type ServerConfig struct {
	Addr       string        `env:"CARD_BATTLE_ADDR" envDefault:":8080"`
	DBPath     string        `env:"CARD_BATTLE_DB" envDefault:"./data/card-battle.db"`
	ConfigPath string        `env:"CARD_BATTLE_CONFIG"`
	SessionTTL time.Duration `env:"CARD_BATTLE_SESSION_TTL" envDefault:"30m"`
	Memory     bool          `env:"CARD_BATTLE_MEMORY" envDefault:"false"`
	LogLevel   string        `env:"CARD_BATTLE_LOG_LEVEL" envDefault:"info"`
}

// ParseEnv populates target from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadServerConfig reads ServerConfig from the environment.
func LoadServerConfig() (ServerConfig, error) {
	var cfg ServerConfig
	if err := ParseEnv(&cfg); err != nil {
		return ServerConfig{}, err
	}
	if cfg.SessionTTL <= 0 {
		return ServerConfig{}, fmt.Errorf("parse env: session ttl must be positive, got %s", cfg.SessionTTL)
	}
	return cfg, nil
}

// Catalog loads the catalog file when one is configured and falls back to
// the built-in catalog otherwise. Concurrent reads of the same file share
// one parse; the returned catalog must be treated as read-only.
func (c ServerConfig) Catalog() (*Catalog, error) {
	if c.ConfigPath == "" {
		return DefaultCatalog(), nil
	}
	v, err, _ := dedupe.CatalogGroup.Do(c.ConfigPath, func() (any, error) {
		return LoadCatalog(c.ConfigPath)
	})
	if err != nil {
		return nil, err
	}
	return v.(*Catalog), nil
}
