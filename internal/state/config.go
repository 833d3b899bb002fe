package state

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/steviee/serverseeker/internal/serverseeker"
)

// Config represents the user configuration file.
type Config struct {
	API      APIConfig      `yaml:"api"`
	Defaults DefaultsConfig `yaml:"defaults"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// APIConfig holds ServerSeeker API settings.
type APIConfig struct {
	Key     string        `yaml:"key"`
	BaseURL string        `yaml:"base_url"`
	Timeout time.Duration `yaml:"timeout"`
}

// DefaultsConfig holds defaults applied to commands.
type DefaultsConfig struct {
	Port int `yaml:"port"`
}

// LoggingConfig holds logging configuration.
type LoggingConfig struct {
	Level string `yaml:"level"`
}

// Keys settable with Set, in the dotted form also used by viper and env vars.
const (
	KeyAPIKey       = "api.key"
	KeyAPIBaseURL   = "api.base_url"
	KeyAPITimeout   = "api.timeout"
	KeyDefaultsPort = "defaults.port"
	KeyLoggingLevel = "logging.level"
)

// Keys lists every settable key.
var Keys = []string{KeyAPIKey, KeyAPIBaseURL, KeyAPITimeout, KeyDefaultsPort, KeyLoggingLevel}

// DefaultAPITimeout bounds each API request unless the config overrides it.
const DefaultAPITimeout = 30 * time.Second

// configFilePerm keeps the API key readable by the owner only.
const configFilePerm os.FileMode = 0600

// DefaultConfig returns a Config with default values and no API key.
func DefaultConfig() *Config {
	return &Config{
		API: APIConfig{
			BaseURL: serverseeker.DefaultBaseURL,
			Timeout: DefaultAPITimeout,
		},
		Defaults: DefaultsConfig{
			Port: serverseeker.DefaultPort,
		},
		Logging: LoggingConfig{
			Level: "info",
		},
	}
}

// LoadConfig loads the config file at the default location.
func LoadConfig(ctx context.Context) (*Config, error) {
	configPath, err := GetConfigPath()
	if err != nil {
		return nil, fmt.Errorf("failed to get config path: %w", err)
	}
	return LoadConfigFrom(ctx, configPath)
}

// LoadConfigFrom loads the config file at configPath, creating it with defaults
// if missing. A file that is not valid YAML is moved to <path>.corrupted and replaced.
func LoadConfigFrom(ctx context.Context, configPath string) (*Config, error) {
	data, err := os.ReadFile(configPath)
	if os.IsNotExist(err) {
		cfg := DefaultConfig()
		if err := SaveConfigTo(ctx, configPath, cfg); err != nil {
			return nil, fmt.Errorf("failed to save default config: %w", err)
		}
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		backupPath := configPath + ".corrupted"
		if backupErr := os.Rename(configPath, backupPath); backupErr != nil {
			return nil, fmt.Errorf("config file is corrupted and failed to create backup: %w (original error: %v)", backupErr, err)
		}

		cfg = DefaultConfig()
		if saveErr := SaveConfigTo(ctx, configPath, cfg); saveErr != nil {
			return nil, fmt.Errorf("config file was corrupted (backed up to %s), failed to save fresh config: %w (original error: %v)", backupPath, saveErr, err)
		}
		return cfg, nil
	}

	if err := ValidateConfig(cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// SaveConfig validates cfg and writes it atomically to the default location.
func SaveConfig(ctx context.Context, cfg *Config) error {
	configPath, err := GetConfigPath()
	if err != nil {
		return fmt.Errorf("failed to get config path: %w", err)
	}
	return SaveConfigTo(ctx, configPath, cfg)
}

// SaveConfigTo validates cfg and writes it atomically to configPath.
func SaveConfigTo(_ context.Context, configPath string, cfg *Config) error {
	if err := ValidateConfig(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := AtomicWrite(configPath, data, configFilePerm); err != nil {
		return fmt.Errorf("failed to write config: %w", err)
	}

	return nil
}

// Set assigns a value by dotted key, converting it to the field's type.
func (c *Config) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyAPIKey:
		c.API.Key = value
	case KeyAPIBaseURL:
		c.API.BaseURL = value
	case KeyAPITimeout:
		d, err := time.ParseDuration(value)
		if err != nil {
			return fmt.Errorf("invalid duration %q: %w", value, err)
		}
		c.API.Timeout = d
	case KeyDefaultsPort:
		port, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("invalid port %q: %w", value, err)
		}
		c.Defaults.Port = port
	case KeyLoggingLevel:
		c.Logging.Level = strings.ToLower(value)
	default:
		return fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}

	return nil
}

// Get returns a value by dotted key as text. The API key is returned unmasked.
func (c *Config) Get(key string) (string, error) {
	switch key {
	case KeyAPIKey:
		return c.API.Key, nil
	case KeyAPIBaseURL:
		return c.API.BaseURL, nil
	case KeyAPITimeout:
		return c.API.Timeout.String(), nil
	case KeyDefaultsPort:
		return strconv.Itoa(c.Defaults.Port), nil
	case KeyLoggingLevel:
		return c.Logging.Level, nil
	default:
		return "", fmt.Errorf("unknown config key %q (valid keys: %s)", key, strings.Join(Keys, ", "))
	}
}

// ValidateConfig validates the configuration.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return fmt.Errorf("config cannot be nil")
	}

	if err := ValidateBaseURL(cfg.API.BaseURL); err != nil {
		return fmt.Errorf("invalid API base URL: %w", err)
	}

	if cfg.API.Timeout < time.Second {
		return fmt.Errorf("API timeout must be >= 1s, got %v", cfg.API.Timeout)
	}

	if err := ValidatePort(cfg.Defaults.Port); err != nil {
		return fmt.Errorf("invalid default port: %w", err)
	}

	if err := ValidateLogLevel(cfg.Logging.Level); err != nil {
		return err
	}

	return nil
}

// ValidateBaseURL requires an absolute http or https URL.
func ValidateBaseURL(raw string) error {
	u, err := url.Parse(raw)
	if err != nil {
		return err
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("scheme must be http or https, got %q", raw)
	}
	if u.Host == "" {
		return fmt.Errorf("missing host in %q", raw)
	}
	return nil
}

// ValidatePort validates a port number in the range 1-65535.
func ValidatePort(port int) error {
	if port < 1 || port > 65535 {
		return fmt.Errorf("port must be between 1 and 65535, got %d", port)
	}
	return nil
}

// ValidateLogLevel accepts debug, info, warn and error.
func ValidateLogLevel(level string) error {
	switch level {
	case "debug", "info", "warn", "error":
		return nil
	}
	return fmt.Errorf("invalid log level: %q (must be debug, info, warn, or error)", level)
}

// MaskAPIKey hides all but the last four characters of key.
func MaskAPIKey(key string) string {
	if key == "" {
		return "(not set)"
	}
	if len(key) <= 4 {
		return strings.Repeat("*", len(key))
	}
	return strings.Repeat("*", len(key)-4) + key[len(key)-4:]
}
