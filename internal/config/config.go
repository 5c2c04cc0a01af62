// Package config handles Chronex configuration loading and management.
package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// Default returns the default configuration.
func Default() *Config {
	homeDir, _ := os.UserHomeDir()
	dataDir := filepath.Join(homeDir, ".chronex")

	return &Config{
		Model: ModelConfig{
			Name:        "Chronex AI v1.0",
			Temperature: 0.7,
			MaxTokens:   2000,
			TopP:        0.9,
		},
		Capabilities: CapabilitiesConfig{
			Chat:         true,
			CodeAnalysis: true,
			MathSolving:  true,
			Languages: []string{
				"JavaScript", "Python", "C++", "C", "C#", "Java", "Go", "Rust",
			},
			KnowledgeBase:       true,
			ContextAwareGeneral: true,
			NoRepeat:            true,
		},
		Backends: BackendsConfig{
			Local: BackendConfig{
				Enabled: true,
			},
			Remote: BackendConfig{
				Enabled:   false,
				Endpoint:  "http://localhost:5000/ai/chat",
				TimeoutMS: 10000,
			},
		},
		Cache: CacheConfig{
			Enabled:    true,
			TTLSeconds: 3600,
			MaxEntries: 100,
		},
		Server: ServerConfig{
			Addr: ":8080",
		},
		Storage: StorageConfig{
			DBPath: filepath.Join(dataDir, "conversations.db"),
		},
	}
}

// Load loads the configuration from the given path.
// If the file doesn't exist, returns defaults.
func Load(configPath string) (*Config, error) {
	cfg := Default()

	data, err := os.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, err
	}

	if err := toml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}

	return expandPaths(cfg), nil
}

// Save saves the configuration to the given path.
func (c *Config) Save(configPath string) error {
	dir := filepath.Dir(configPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return err
	}

	file, err := os.Create(configPath)
	if err != nil {
		return err
	}
	defer file.Close()

	encoder := toml.NewEncoder(file)
	return encoder.Encode(c)
}

// expandPaths expands a leading ~ in path settings.
func expandPaths(cfg *Config) *Config {
	homeDir, _ := os.UserHomeDir()

	if len(cfg.Storage.DBPath) > 0 && cfg.Storage.DBPath[0] == '~' {
		cfg.Storage.DBPath = filepath.Join(homeDir, cfg.Storage.DBPath[1:])
	}

	return cfg
}

// RemoteEnabled returns true if the remote backend should be tried first.
func (c *Config) RemoteEnabled() bool {
	return c.Backends.Remote.Enabled && c.Backends.Remote.Endpoint != ""
}

// SupportsLanguage reports whether lang is in the configured language list.
func (c *Config) SupportsLanguage(lang string) bool {
	for _, l := range c.Capabilities.Languages {
		if l == lang {
			return true
		}
	}
	return false
}
