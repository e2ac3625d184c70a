// Package config loads the simulator's configuration: a YAML file for the
// run command and environment variables for the serve command.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// Teams names the two sides of a simulated game.
type Teams struct {
	Home string `yaml:"home"`
	Away string `yaml:"away"`
}

// Sim configures one simulated game run.
type Sim struct {
	GameID   string `yaml:"game_id"`
	Seed     int64  `yaml:"seed"`
	Teams    Teams  `yaml:"teams"`
	MaxPlays int    `yaml:"max_plays"`

	// AuditDir, when set, exports the audit trail as JSON under this
	// directory after the game.
	AuditDir string `yaml:"audit_dir"`

	// RedisAddr, when set, exports the audit trail to Redis instead.
	RedisAddr string `yaml:"redis_addr"`
}

// DefaultSim returns the configuration used when no file is given.
func DefaultSim() Sim {
	return Sim{
		GameID:   "exhibition",
		Teams:    Teams{Home: "home", Away: "away"},
		MaxPlays: 400,
	}
}

// LoadSim reads a YAML config file, filling gaps with defaults.
func LoadSim(path string) (Sim, error) {
	cfg := DefaultSim()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Sim{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Sim{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.validate(); err != nil {
		return Sim{}, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Sim) validate() error {
	if c.Teams.Home == "" || c.Teams.Away == "" {
		return fmt.Errorf("both teams must be named")
	}
	if c.Teams.Home == c.Teams.Away {
		return fmt.Errorf("teams must be distinct, got %q twice", c.Teams.Home)
	}
	if c.MaxPlays < 1 {
		return fmt.Errorf("max_plays must be positive, got %d", c.MaxPlays)
	}
	return nil
}

// Server configures the serve command from the environment.
type Server struct {
	Addr     string `env:"GRIDIRON_ADDR" envDefault:":8017"`
	LogLevel string `env:"GRIDIRON_LOG_LEVEL" envDefault:"info"`
	GameID   string `env:"GRIDIRON_GAME_ID" envDefault:"exhibition"`
	HomeTeam string `env:"GRIDIRON_HOME_TEAM" envDefault:"home"`
	AwayTeam string `env:"GRIDIRON_AWAY_TEAM" envDefault:"away"`
	Seed     int64  `env:"GRIDIRON_SEED"`
	MaxPlays int    `env:"GRIDIRON_MAX_PLAYS" envDefault:"400"`
}

// LoadServer parses the server configuration from the environment.
func LoadServer() (Server, error) {
	var cfg Server
	if err := env.Parse(&cfg); err != nil {
		return Server{}, fmt.Errorf("parse environment: %w", err)
	}
	return cfg, nil
}
