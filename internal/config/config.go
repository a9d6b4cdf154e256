package config

import (
	"blackjack-server/internal/util"
	"errors"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"
	"io/fs"
	"os"
)

// Config provides configuration for the blackjack server
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Game   struct {
		StartingBalance    int   `yaml:"startingBalance" envconfig:"starting_balance"`
		DefaultBet         int   `yaml:"defaultBet" envconfig:"default_bet"`
		ReshuffleThreshold int   `yaml:"reshuffleThreshold" envconfig:"reshuffle_threshold"`
		Seed               int64 `yaml:"seed" envconfig:"seed"`
	} `yaml:"game"`
	Log struct {
		Level             string `yaml:"level" envconfig:"level"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is overridden
func DefaultConfig() Config {
	cfg := Config{
		Addr: ":5000",
	}

	cfg.Game.StartingBalance = 1000
	cfg.Game.DefaultBet = 50
	cfg.Game.ReshuffleThreshold = 10
	cfg.Log.Level = "info"

	return cfg
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Values are read from the YAML file first (a missing file is not an error), then from BJ_* environment variables
func Load() error {
	cfg := DefaultConfig()

	configFile := util.Getenv("BJ_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&cfg); err != nil {
			return err
		}
	}

	if err := envconfig.Process("bj", &cfg); err != nil {
		return err
	}

	if cfg.Game.StartingBalance < 0 {
		return errors.New("starting balance cannot be negative")
	}

	cfg.loaded = true
	config = cfg
	return nil
}
