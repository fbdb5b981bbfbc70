package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Server holds the runtime settings of the game server process.
type Server struct {
	Addr       string `env:"CORNERMAN_ADDR" envDefault:":8080"`
	DBPath     string `env:"CORNERMAN_DB_PATH" envDefault:"data/cornerman.db"`
	TablesPath string `env:"CORNERMAN_TABLES_PATH"` // optional YAML override for game tables
	Seed       int64  `env:"CORNERMAN_SEED" envDefault:"0"` // 0 = time-seeded
	SaveSlot   string `env:"CORNERMAN_SAVE_SLOT" envDefault:"default"`
}

// LoadServer reads server settings from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse server env: %w", err)
	}
	return cfg, nil
}
