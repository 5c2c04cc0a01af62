// Package config provides configuration types for Chronex.
package config

import "time"

// Config represents the main Chronex configuration.
type Config struct {
	Model        ModelConfig        `toml:"model"`
	Capabilities CapabilitiesConfig `toml:"capabilities"`
	Backends     BackendsConfig     `toml:"backends"`
	Cache        CacheConfig        `toml:"cache"`
	Server       ServerConfig       `toml:"server"`
	Storage      StorageConfig      `toml:"storage"`
}

// ModelConfig contains model parameters. The local pipeline ignores
// them; they are forwarded to the remote backend only.
type ModelConfig struct {
	Name        string  `toml:"name"`
	Temperature float64 `toml:"temperature"`
	MaxTokens   int     `toml:"max_tokens"`
	TopP        float64 `toml:"top_p"`
}

// CapabilitiesConfig describes what the assistant supports.
// Languages is an ordered priority list used for code-language
// detection: the first list entry mentioned in a message wins.
type CapabilitiesConfig struct {
	Chat                bool     `toml:"chat"`
	CodeAnalysis        bool     `toml:"code_analysis"`
	MathSolving         bool     `toml:"math_solving"`
	Languages           []string `toml:"languages"`
	KnowledgeBase       bool     `toml:"knowledge_base"`
	ContextAwareGeneral bool     `toml:"context_aware_general"`
	NoRepeat            bool     `toml:"no_repeat"`
}

// BackendsConfig selects where responses are computed.
type BackendsConfig struct {
	Local  BackendConfig `toml:"local"`
	Remote BackendConfig `toml:"remote"`
}

// BackendConfig describes a single response backend.
type BackendConfig struct {
	Enabled   bool   `toml:"enabled"`
	Endpoint  string `toml:"endpoint"`
	TimeoutMS int    `toml:"timeout_ms"`
}

// Timeout returns the backend timeout as a duration.
func (b BackendConfig) Timeout() time.Duration {
	return time.Duration(b.TimeoutMS) * time.Millisecond
}

// CacheConfig controls the response cache.
type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
	MaxEntries int  `toml:"max_entries"`
}

// TTL returns the cache entry lifetime as a duration.
func (c CacheConfig) TTL() time.Duration {
	return time.Duration(c.TTLSeconds) * time.Second
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Addr string `toml:"addr"`
}

// StorageConfig contains persistence settings.
type StorageConfig struct {
	DBPath string `toml:"db_path"`
}
