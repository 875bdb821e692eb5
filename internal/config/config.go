package config

import (
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	DBPath       string        `yaml:"db_path"`
	CatalogPath  string        `yaml:"catalog_path"`
	ReminderLead time.Duration `yaml:"reminder_lead"`
	LogLevel     string        `yaml:"log_level"`
}

// DefaultPath returns the default config file location.
func DefaultPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, ".lifequest.yaml"), nil
}

// Load reads the config file, filling unset fields with defaults.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	cfg := defaults()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadOrDefault returns defaults when the file does not exist.
func LoadOrDefault(path string) (*Config, error) {
	cfg, err := Load(path)
	if err != nil {
		if os.IsNotExist(err) {
			return defaults(), nil
		}
		return nil, err
	}
	return cfg, nil
}

func defaults() *Config {
	return &Config{
		ReminderLead: 30 * time.Minute,
		LogLevel:     "warn",
	}
}
