// Package config handles uqffpub paths and settings.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/d2verb/uqffpub/internal/hub"
	"github.com/d2verb/uqffpub/internal/publish"
)

const (
	// DefaultNamespace owns the repositories created by batch runs.
	DefaultNamespace = "EricB"

	// EnvEndpoint overrides the Hub endpoint.
	EnvEndpoint = "HF_ENDPOINT"
	// EnvToken supplies the access token to batch runs.
	EnvToken = "HF_TOKEN"
)

// Paths holds common paths used by uqffpub.
type Paths struct {
	Home    string
	Config  string
	Logs    string
	LogFile string
}

// GetPaths returns the paths for the current user.
func GetPaths() (*Paths, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	appHome := filepath.Join(home, ".uqffpub")
	logsDir := filepath.Join(appHome, "logs")
	return &Paths{
		Home:    appHome,
		Config:  filepath.Join(appHome, "config.yaml"),
		Logs:    logsDir,
		LogFile: filepath.Join(logsDir, "uqffpub.log"),
	}, nil
}

// EnsureDirectories creates the required directories if they don't exist.
func (p *Paths) EnsureDirectories() error {
	dirs := []string{p.Home, p.Logs}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}
	return nil
}

// Config holds user settings from config.yaml.
type Config struct {
	Endpoint      string `yaml:"endpoint"`
	Namespace     string `yaml:"namespace"`
	CommitMessage string `yaml:"commit_message"`
}

// DefaultConfig returns the settings used when no config file exists.
func DefaultConfig() Config {
	return Config{
		Endpoint:      hub.DefaultEndpoint,
		Namespace:     DefaultNamespace,
		CommitMessage: publish.DefaultCommitMessage,
	}
}

// Load reads the config file at path over the defaults, then applies
// environment overrides. A missing file is not an error.
func Load(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return cfg, fmt.Errorf("read config: %w", err)
	default:
		var fileCfg Config
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return cfg, fmt.Errorf("parse config %s: %w", path, err)
		}
		cfg.merge(fileCfg)
	}

	if endpoint := os.Getenv(EnvEndpoint); endpoint != "" {
		cfg.Endpoint = endpoint
	}
	return cfg, nil
}

// merge overwrites fields that are set in other.
func (c *Config) merge(other Config) {
	if other.Endpoint != "" {
		c.Endpoint = other.Endpoint
	}
	if other.Namespace != "" {
		c.Namespace = other.Namespace
	}
	if other.CommitMessage != "" {
		c.CommitMessage = other.CommitMessage
	}
}
