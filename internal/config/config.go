package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Config represents the application configuration structure.
// It identifies the remote share, the extension sets used to classify
// entries, and the external player candidates per platform.
type Config struct {
	Server struct {
		Address string `yaml:"address"` // SMB server address (SERVER_IP overrides)
		Share   string `yaml:"share"`   // Share name (SHARE_NAME overrides)
	} `yaml:"server"`
	Browser struct {
		IgnorePatterns []string `yaml:"ignore_patterns"` // Glob patterns for entries to hide
	} `yaml:"browser"`
	Extensions struct {
		Video    []string `yaml:"video"`    // Extensions classified as Video
		Document []string `yaml:"document"` // Extensions classified as Document
		Image    []string `yaml:"image"`    // Extensions classified as Image
	} `yaml:"extensions"`
	Players struct {
		Linux []string `yaml:"linux"` // Ordered player candidates on Linux
	} `yaml:"players"`
	Settings struct {
		Debug               bool `yaml:"debug"`                 // Enable debug logging
		MountTimeoutSeconds int  `yaml:"mount_timeout_seconds"` // Mount helper timeout
	} `yaml:"settings"`
}

// LoadConfig loads configuration from the default location
// (~/.config/shareview/config.yaml).
func LoadConfig() (*Config, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	configPath := filepath.Join(home, ".config", "shareview", "config.yaml")
	return LoadConfigFile(configPath)
}

// LoadConfigFile loads configuration from a specific file path.
// If the file doesn't exist, returns default configuration. The SERVER_IP
// and SHARE_NAME environment variables always take precedence over the file.
func LoadConfigFile(path string) (*Config, error) {
	// Start with default configuration
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			cfg.applyEnv()
			return cfg, cfg.Validate()
		}
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	// Unmarshal into a temporary config to preserve defaults for unset fields
	var tempCfg Config
	if err := yaml.Unmarshal(data, &tempCfg); err != nil {
		return nil, fmt.Errorf("error parsing config file: %w", err)
	}

	// Merge the loaded config with defaults
	if tempCfg.Server.Address != "" {
		cfg.Server.Address = tempCfg.Server.Address
	}
	if tempCfg.Server.Share != "" {
		cfg.Server.Share = tempCfg.Server.Share
	}
	if len(tempCfg.Browser.IgnorePatterns) > 0 {
		cfg.Browser.IgnorePatterns = tempCfg.Browser.IgnorePatterns
	}
	if len(tempCfg.Extensions.Video) > 0 {
		cfg.Extensions.Video = tempCfg.Extensions.Video
	}
	if len(tempCfg.Extensions.Document) > 0 {
		cfg.Extensions.Document = tempCfg.Extensions.Document
	}
	if len(tempCfg.Extensions.Image) > 0 {
		cfg.Extensions.Image = tempCfg.Extensions.Image
	}
	if len(tempCfg.Players.Linux) > 0 {
		cfg.Players.Linux = tempCfg.Players.Linux
	}
	cfg.Settings.Debug = tempCfg.Settings.Debug
	if tempCfg.Settings.MountTimeoutSeconds > 0 {
		cfg.Settings.MountTimeoutSeconds = tempCfg.Settings.MountTimeoutSeconds
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}

// applyEnv overlays the environment variables that identify the share.
func (c *Config) applyEnv() {
	if addr := os.Getenv("SERVER_IP"); addr != "" {
		c.Server.Address = addr
	}
	if share := os.Getenv("SHARE_NAME"); share != "" {
		c.Server.Share = share
	}
}

// defaultConfig returns the default configuration with safe defaults.
func defaultConfig() *Config {
	cfg := &Config{}

	// Hidden and system entries (the original share exposes @-prefixed
	// NAS metadata directories)
	cfg.Browser.IgnorePatterns = []string{".*", "@*"}

	cfg.Extensions.Video = []string{"mp4", "avi", "mkv", "mov", "wmv", "flv", "webm", "m4v"}
	cfg.Extensions.Document = []string{"pdf", "txt"}
	cfg.Extensions.Image = []string{"jpg", "jpeg", "png", "gif", "bmp", "tiff", "webp"}

	// mpv first: lightest and most reliable with network paths
	cfg.Players.Linux = []string{"mpv", "totem", "gnome-videos", "xdg-open", "/usr/bin/vlc"}

	cfg.Settings.Debug = false
	cfg.Settings.MountTimeoutSeconds = 10

	return cfg
}

// New creates a new configuration instance with default values, with the
// share identity taken from the environment when present.
func New() *Config {
	cfg := defaultConfig()
	cfg.applyEnv()
	return cfg
}

// ShareURI returns the smb:// URI identifying the configured share.
func (c *Config) ShareURI() string {
	return fmt.Sprintf("smb://%s/%s", c.Server.Address, c.Server.Share)
}

// SaveConfig saves the configuration to the specified file.
// It creates parent directories if they don't exist.
func SaveConfig(cfg *Config, path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// Validate checks if the configuration is valid.
// Returns error if any settings are invalid.
func (c *Config) Validate() error {
	if c == nil {
		return fmt.Errorf("nil config")
	}

	for i, pattern := range c.Browser.IgnorePatterns {
		if pattern == "" {
			return fmt.Errorf("ignore pattern %d: pattern is empty", i)
		}
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("ignore pattern %d (%q): %w", i, pattern, err)
		}
	}

	for _, set := range [][]string{c.Extensions.Video, c.Extensions.Document, c.Extensions.Image} {
		for _, ext := range set {
			if ext == "" || strings.HasPrefix(ext, ".") {
				return fmt.Errorf("extension %q: must be non-empty and written without the leading dot", ext)
			}
		}
	}

	if c.Settings.MountTimeoutSeconds < 1 {
		return fmt.Errorf("mount timeout must be >= 1 second")
	}

	if len(c.Players.Linux) == 0 {
		return fmt.Errorf("at least one Linux player candidate is required")
	}

	return nil
}

// NewTestConfig creates a configuration instance for testing purposes.
func NewTestConfig() *Config {
	cfg := defaultConfig()
	cfg.Server.Address = "192.168.1.10"
	cfg.Server.Share = "media"
	return cfg
}
