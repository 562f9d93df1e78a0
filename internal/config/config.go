// Package config resolves travelbuddy configuration.
//
// Settings come, in increasing priority, from built-in defaults, an optional
// config.yaml under the data root, a .env file and TRAVELBUDDY_* environment
// variables. The default data root is ~/.travelbuddy, holding the memory
// document (memory_bank.json) and the optional config file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
)

// EnvPrefix prefixes every environment variable read by travelbuddy.
const EnvPrefix = "TRAVELBUDDY"

// Config holds resolved settings.
type Config struct {
	// Root is the base directory for travelbuddy data (default: ~/.travelbuddy)
	Root string `mapstructure:"root"`

	// StorePath is the memory document (default: <Root>/memory_bank.json)
	StorePath string `mapstructure:"store_path"`

	// CatalogPath is an optional YAML attraction catalog; empty uses the built-in one
	CatalogPath string `mapstructure:"catalog_path"`

	// MaxCandidates caps the ranked search results
	MaxCandidates int `mapstructure:"max_candidates"`

	// ProximityKm is the grouping distance used by the itinerary builder
	ProximityKm float64 `mapstructure:"proximity_km"`

	// Slots is the daily schedule template
	Slots []itinerary.Slot `mapstructure:"slots"`

	// ConfigFile is the config file that was read, if any
	ConfigFile string `mapstructure:"-"`
}

// Load resolves the configuration. envFile names an optional dotenv file;
// a missing file is not an error.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("failed to load env file %s: %w", envFile, err)
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("failed to get user home directory: %w", err)
	}

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.AutomaticEnv()

	v.SetDefault("root", filepath.Join(home, ".travelbuddy"))
	v.SetDefault("store_path", "")
	v.SetDefault("catalog_path", "")
	v.SetDefault("max_candidates", attractions.DefaultMaxCandidates)
	v.SetDefault("proximity_km", itinerary.DefaultProximityKm)

	configFile := filepath.Join(v.GetString("root"), "config.yaml")
	if _, err := os.Stat(configFile); err == nil {
		v.SetConfigFile(configFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", configFile, err)
		}
	} else {
		configFile = ""
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to decode config: %w", err)
	}
	cfg.ConfigFile = configFile

	if cfg.StorePath == "" {
		cfg.StorePath = filepath.Join(cfg.Root, "memory_bank.json")
	}
	if len(cfg.Slots) == 0 {
		cfg.Slots = itinerary.DefaultSlots()
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks the numeric limits and the slot template.
func (c *Config) Validate() error {
	if c.MaxCandidates < 0 {
		return fmt.Errorf("invalid config: max_candidates must not be negative, got %d", c.MaxCandidates)
	}
	if err := c.Policy().Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// Policy returns the itinerary policy described by the config.
func (c *Config) Policy() itinerary.Policy {
	return itinerary.Policy{Slots: c.Slots, ProximityKm: c.ProximityKm}
}
