package config

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strconv"

	"github.com/BurntSushi/toml"
)

// GenerationConfig holds the sampling parameters attached to every completion
// request. It is loaded once at startup and never mutated by conversation
// activity.
type GenerationConfig struct {
	Model           string  `toml:"model"`
	Temperature     float64 `toml:"temperature"`
	TopP            float64 `toml:"top_p"`
	TopK            int32   `toml:"top_k"`
	MaxOutputTokens int32   `toml:"max_output_tokens"`
}

// ProviderConfig describes one cloud provider entry in the config file.
type ProviderConfig struct {
	ID      string `toml:"id"`
	BaseURL string `toml:"base_url,omitempty"`
	APIKey  string `toml:"api_key,omitempty"`
	Enabled bool   `toml:"enabled"`
}

type OllamaConfig struct {
	Host         string `toml:"host"`
	DefaultModel string `toml:"default_model"`
}

// UserConfig mirrors the on-disk TOML layout.
type UserConfig struct {
	DefaultProvider string           `toml:"default_provider"`
	MaxHistory      int              `toml:"max_history"`
	Generation      GenerationConfig `toml:"generation"`
	Providers       []ProviderConfig `toml:"providers"`
	Ollama          OllamaConfig     `toml:"ollama"`
}

// Config is the resolved runtime configuration.
type Config struct {
	DefaultProvider string
	MaxHistory      int
	Generation      GenerationConfig
	Providers       []ProviderConfig
	OllamaHost      string
	OllamaModel     string
}

var Debug = false
var DebugLog *log.Logger

func (c *Config) OllamaURL() string {
	return c.OllamaHost
}

// ProviderEntry returns the config entry for a provider ID, or nil.
func (c *Config) ProviderEntry(id string) *ProviderConfig {
	for i := range c.Providers {
		if c.Providers[i].ID == id {
			return &c.Providers[i]
		}
	}
	return nil
}

func (c *Config) applyEnvOverrides() {
	if p := os.Getenv("GEMTUI_PROVIDER"); p != "" {
		c.DefaultProvider = p
	}
	if m := os.Getenv("GEMTUI_MODEL"); m != "" {
		c.Generation.Model = m
	}
	if h := os.Getenv("GEMTUI_OLLAMA_HOST"); h != "" {
		c.OllamaHost = h
	}
	if n := os.Getenv("GEMTUI_MAX_HISTORY"); n != "" {
		if v, err := strconv.Atoi(n); err == nil && v > 0 {
			c.MaxHistory = v
		}
	}
}

func CheckDebug() bool {
	debug := os.Getenv("GEMTUI_DEBUG")
	return debug == "true" || debug == "1"
}

// InitDebugLog opens the opt-in debug log in the cache directory.
// The TUI owns stdout/stderr, so diagnostics go to a file.
func InitDebugLog() {
	if !CheckDebug() {
		return
	}

	Debug = true
	cacheDir := GetCacheDir()
	if err := os.MkdirAll(cacheDir, 0700); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not create cache directory %s: %v\n", cacheDir, err)
		return
	}
	logPath := filepath.Join(cacheDir, "debug.log")

	// 0600 - prompts and responses may end up in here
	f, err := os.OpenFile(logPath, os.O_RDWR|os.O_CREATE|os.O_APPEND, 0600)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: Could not open debug log at %s: %v\n", logPath, err)
		return
	}

	DebugLog = log.New(f, "", log.Ldate|log.Ltime|log.Lmicroseconds|log.Lshortfile)
	DebugLog.Printf("=== Debug logging started (GEMTUI_DEBUG=%s) ===", os.Getenv("GEMTUI_DEBUG"))
}

// Load reads the config file (creating a commented template on first run),
// applies defaults for anything missing, then environment overrides.
func Load() (*Config, error) {
	userCfg := DefaultUserConfig()

	cfgPath := GetConfigFilePath()
	if FileExists(cfgPath) {
		if _, err := toml.DecodeFile(cfgPath, userCfg); err != nil {
			return nil, fmt.Errorf("failed to parse %s: %w", cfgPath, err)
		}
	} else {
		if err := writeConfigTemplate(cfgPath); err != nil {
			return nil, fmt.Errorf("failed to write config template: %w", err)
		}
	}

	cfg := &Config{
		DefaultProvider: userCfg.DefaultProvider,
		MaxHistory:      userCfg.MaxHistory,
		Generation:      userCfg.Generation,
		Providers:       userCfg.Providers,
		OllamaHost:      userCfg.Ollama.Host,
		OllamaModel:     userCfg.Ollama.DefaultModel,
	}

	// Fill gaps left by a partially edited config file
	defaults := DefaultUserConfig()
	if cfg.DefaultProvider == "" {
		cfg.DefaultProvider = defaults.DefaultProvider
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = defaults.MaxHistory
	}
	if cfg.Generation.Model == "" {
		cfg.Generation.Model = defaults.Generation.Model
	}
	if cfg.Generation.MaxOutputTokens <= 0 {
		cfg.Generation.MaxOutputTokens = defaults.Generation.MaxOutputTokens
	}
	if len(cfg.Providers) == 0 {
		cfg.Providers = defaults.Providers
	}
	if cfg.OllamaHost == "" {
		cfg.OllamaHost = defaults.Ollama.Host
	}
	if cfg.OllamaModel == "" {
		cfg.OllamaModel = defaults.Ollama.DefaultModel
	}

	cfg.applyEnvOverrides()

	return cfg, nil
}

func writeConfigTemplate(cfgPath string) error {
	if err := os.MkdirAll(filepath.Dir(cfgPath), 0700); err != nil {
		return err
	}
	// 0600 - the file may hold API keys
	return os.WriteFile(cfgPath, []byte(GenerateConfigTemplate()), 0600)
}
