package global

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// SideConfig picks the Pokemon for one side of a duel.
type SideConfig struct {
	Species string `yaml:"species"`
	Level   uint8  `yaml:"level"`
	// Empty means the side only uses Struggle
	Move     string `yaml:"move"`
	Nickname string `yaml:"nickname"`
}

type GlobalConfig struct {
	Debug bool `yaml:"debug"`
	// Where log files go. Empty means <config dir>/logs
	LogDirectory string `yaml:"log_directory"`
	MaxLogSizeKB int64  `yaml:"max_log_size_kb"`
	MaxLogs      int    `yaml:"max_logs"`

	// Zero picks a random seed
	Seed     uint64     `yaml:"seed"`
	MaxTurns int        `yaml:"max_turns"`
	Attacker SideConfig `yaml:"attacker"`
	Defender SideConfig `yaml:"defender"`
}

func DefaultConfigDir() string {
	configDir, _ := os.UserConfigDir()
	return filepath.Join(configDir, "genwun")
}

func DefaultConfigLocation() string {
	return filepath.Join(DefaultConfigDir(), "config.yaml")
}

// DefaultConfig is the classic Mewtwo vs Mew struggle fight.
func DefaultConfig() GlobalConfig {
	return GlobalConfig{
		MaxLogSizeKB: 2500,
		MaxLogs:      2,
		MaxTurns:     100,
		Attacker:     SideConfig{Species: "Mewtwo", Level: 100},
		Defender:     SideConfig{Species: "Mew", Level: 100},
	}
}

// LoadConfig reads a YAML config on top of the defaults.
// A missing file is not an error; the defaults are returned as is.
func LoadConfig(path string) (GlobalConfig, error) {
	config := DefaultConfig()

	contents, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return populateConfig(config), nil
		}
		return config, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(contents, &config); err != nil {
		return config, fmt.Errorf("parsing config %s: %w", path, err)
	}

	return populateConfig(config), nil
}

func SaveConfig(path string, config GlobalConfig) error {
	contents, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return err
	}

	return os.WriteFile(path, contents, 0644)
}

func populateConfig(config GlobalConfig) GlobalConfig {
	defaults := DefaultConfig()

	if config.LogDirectory == "" {
		config.LogDirectory = filepath.Join(DefaultConfigDir(), "logs")
	}
	if config.MaxLogSizeKB <= 0 {
		config.MaxLogSizeKB = defaults.MaxLogSizeKB
	}
	if config.MaxLogs <= 0 {
		config.MaxLogs = defaults.MaxLogs
	}
	if config.MaxTurns <= 0 {
		config.MaxTurns = defaults.MaxTurns
	}
	if config.Attacker.Level == 0 {
		config.Attacker.Level = 100
	}
	if config.Defender.Level == 0 {
		config.Defender.Level = 100
	}

	return config
}
