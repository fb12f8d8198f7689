package config

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/viper"

	"github.com/papapumpkin/bubbleforge/internal/grid"
	"github.com/papapumpkin/bubbleforge/internal/store"
)

// EnvPrefix is the prefix of environment variables read into the config.
const EnvPrefix = "BUBBLEFORGE"

// GridConfig holds the lattice size of new stages.
type GridConfig struct {
	Rows    int `mapstructure:"rows"`
	Columns int `mapstructure:"columns"`
}

// Dimensions returns the grid size as grid.Dimensions.
func (g GridConfig) Dimensions() grid.Dimensions {
	return grid.Dimensions{Rows: g.Rows, Columns: g.Columns}
}

// StoreConfig selects the persistence backend.
type StoreConfig struct {
	Backend string `mapstructure:"backend"`
	Path    string `mapstructure:"path"`
	Codec   string `mapstructure:"codec"`
}

// Options returns store.Options for this configuration.
func (s StoreConfig) Options() (store.Options, error) {
	codec, err := store.CodecByName(s.Codec)
	if err != nil {
		return store.Options{}, err
	}
	return store.Options{Backend: s.Backend, Path: s.Path, Codec: codec}, nil
}

// Config holds all runtime configuration for a bubbleforge session.
// Values are populated from .bubbleforge.yaml, BUBBLEFORGE_* env vars, and CLI flags.
type Config struct {
	Grid        GridConfig  `mapstructure:"grid"`
	Store       StoreConfig `mapstructure:"store"`
	PresetsFile string      `mapstructure:"presets_file"`
	EventsFile  string      `mapstructure:"events_file"`
	LogLevel    string      `mapstructure:"log_level"`
	Verbose     bool        `mapstructure:"verbose"`
}

// ConfigureEnv maps BUBBLEFORGE_* environment variables onto config keys.
// Nested keys use underscores, e.g. BUBBLEFORGE_GRID_ROWS for grid.rows.
func ConfigureEnv() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()
}

// Load reads configuration from viper, applying built-in defaults for any
// values not set by config file, environment, or flags.
func Load() (Config, error) {
	viper.SetDefault("grid.rows", 10)
	viper.SetDefault("grid.columns", 12)
	viper.SetDefault("store.backend", store.BackendFile)
	viper.SetDefault("store.path", ".bubbleforge")
	viper.SetDefault("store.codec", "json")
	viper.SetDefault("presets_file", "")
	viper.SetDefault("events_file", "")
	viper.SetDefault("log_level", "info")
	viper.SetDefault("verbose", false)

	var cfg Config
	if err := viper.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects grid sizes, backends and codecs the program cannot use.
func (c Config) Validate() error {
	if err := c.Grid.Dimensions().Validate(); err != nil {
		return fmt.Errorf("config: grid: %w", err)
	}
	if !slices.Contains(store.Backends(), c.Store.Backend) {
		return fmt.Errorf("config: %w: %q (want one of %s)",
			store.ErrUnknownBackend, c.Store.Backend, strings.Join(store.Backends(), ", "))
	}
	if _, err := store.CodecByName(c.Store.Codec); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}
