package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/doodlesbykumbi/nodem-in-go/pkg/logging"
	"github.com/doodlesbykumbi/nodem-in-go/pkg/mumps"
)

const (
	DefaultConfigPath = "/etc/nodem/config"
	ConfigFileName    = "nodem.yml"

	DefaultReleasePath   = "build/Release/mumps.so"
	DefaultReleaseSymbol = "Module"
	DefaultFallback      = "gtm"
	DefaultLogLevel      = "info"
)

// NodemConfig holds all nodem configuration settings
type NodemConfig struct {
	// ReleasePath is the compiled driver plugin tried first
	ReleasePath string `yaml:"release_path" json:"release_path"`

	// ReleaseSymbol is the symbol the plugin exports its module under
	ReleaseSymbol string `yaml:"release_symbol" json:"release_symbol"`

	// Fallback is the registry name of the in-process module tried second
	Fallback string `yaml:"fallback" json:"fallback"`

	// Encoding is the database charset; empty means UTF-8
	Encoding string `yaml:"encoding" json:"encoding"`

	// AutoRelink makes extrinsic function calls pick up recompiled routines
	AutoRelink bool `yaml:"auto_relink" json:"auto_relink"`

	// Mode is canonical or strict
	Mode mumps.Mode `yaml:"mode" json:"mode"`

	// LogLevel is the diagnostic stream level
	LogLevel string `yaml:"log_level" json:"log_level"`

	// sources tracks where each value came from
	sources map[string]string

	// configFilePath is the path to the config file
	configFilePath string
}

// fileConfig distinguishes unset keys from zero values in nodem.yml
type fileConfig struct {
	ReleasePath   string      `yaml:"release_path"`
	ReleaseSymbol string      `yaml:"release_symbol"`
	Fallback      string      `yaml:"fallback"`
	Encoding      string      `yaml:"encoding"`
	AutoRelink    *bool       `yaml:"auto_relink"`
	Mode          *mumps.Mode `yaml:"mode"`
	LogLevel      string      `yaml:"log_level"`
}

// Attribute represents a configuration attribute with its value and source
type Attribute struct {
	Name   string `json:"name"`
	Value  string `json:"value"`
	Source string `json:"source"`
}

// Global singleton config
var (
	globalConfig *NodemConfig
	configMu     sync.RWMutex
)

// Get returns the global configuration, loading it if necessary
func Get() *NodemConfig {
	configMu.RLock()
	if globalConfig != nil {
		configMu.RUnlock()
		return globalConfig
	}
	configMu.RUnlock()

	configMu.Lock()
	defer configMu.Unlock()

	if globalConfig == nil {
		cfg, err := Load()
		if err != nil {
			// Unreadable file: defaults, but the environment still applies
			cfg = Default()
			cfg.configFilePath = configFilePath()
			cfg.applyEnvConfig()
		}
		globalConfig = cfg
	}
	return globalConfig
}

// Reload reloads the configuration from file and environment
func Reload() error {
	cfg, err := Load()
	if err != nil {
		return err
	}

	configMu.Lock()
	globalConfig = cfg
	configMu.Unlock()
	return nil
}

// newDefault returns a config with default values
func newDefault() *NodemConfig {
	return &NodemConfig{
		ReleasePath:   DefaultReleasePath,
		ReleaseSymbol: DefaultReleaseSymbol,
		Fallback:      DefaultFallback,
		Mode:          mumps.ModeCanonical,
		LogLevel:      DefaultLogLevel,
		sources:       make(map[string]string),
	}
}

// Default returns the built-in configuration, ignoring file and environment
func Default() *NodemConfig {
	cfg := newDefault()
	for _, name := range attributeNames() {
		cfg.sources[name] = "default"
	}
	return cfg
}

// Load loads configuration from file and environment variables
// Environment variables take precedence over file values
func Load() (*NodemConfig, error) {
	config := Default()
	config.configFilePath = configFilePath()

	if data, err := os.ReadFile(config.configFilePath); err == nil {
		var file fileConfig
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, fmt.Errorf("failed to parse config file %s: %w", config.configFilePath, err)
		}
		config.applyFileConfig(&file)
	}

	config.applyEnvConfig()

	return config, nil
}

func configFilePath() string {
	configPath := os.Getenv("NODEM_CONFIG_PATH")
	if configPath == "" {
		configPath = DefaultConfigPath
	}
	return filepath.Join(configPath, ConfigFileName)
}

func attributeNames() []string {
	return []string{
		"release_path", "release_symbol", "fallback",
		"encoding", "auto_relink", "mode", "log_level",
	}
}

func (c *NodemConfig) applyFileConfig(file *fileConfig) {
	if file.ReleasePath != "" {
		c.ReleasePath = file.ReleasePath
		c.sources["release_path"] = "file"
	}
	if file.ReleaseSymbol != "" {
		c.ReleaseSymbol = file.ReleaseSymbol
		c.sources["release_symbol"] = "file"
	}
	if file.Fallback != "" {
		c.Fallback = file.Fallback
		c.sources["fallback"] = "file"
	}
	if file.Encoding != "" {
		c.Encoding = file.Encoding
		c.sources["encoding"] = "file"
	}
	if file.AutoRelink != nil {
		c.AutoRelink = *file.AutoRelink
		c.sources["auto_relink"] = "file"
	}
	if file.Mode != nil {
		c.Mode = *file.Mode
		c.sources["mode"] = "file"
	}
	if file.LogLevel != "" {
		c.LogLevel = file.LogLevel
		c.sources["log_level"] = "file"
	}
}

func (c *NodemConfig) applyEnvConfig() {
	if val := os.Getenv("NODEM_RELEASE_PATH"); val != "" {
		c.ReleasePath = val
		c.sources["release_path"] = "environment"
	}
	if val := os.Getenv("NODEM_RELEASE_SYMBOL"); val != "" {
		c.ReleaseSymbol = val
		c.sources["release_symbol"] = "environment"
	}
	if val := os.Getenv("NODEM_FALLBACK"); val != "" {
		c.Fallback = val
		c.sources["fallback"] = "environment"
	}
	if val := os.Getenv("XNODEM_ENCODING"); val != "" {
		c.Encoding = val
		c.sources["encoding"] = "environment"
	}
	if val := os.Getenv("XNODEM_AUTO_RELINK"); val != "" {
		// Numeric like the M side reads it; anything unparsable is off
		i, _ := strconv.Atoi(strings.TrimSpace(val))
		c.AutoRelink = i != 0
		c.sources["auto_relink"] = "environment"
	}
	if val := os.Getenv("NODEM_MODE"); val != "" {
		if m, err := mumps.ModeString(strings.TrimSpace(val)); err == nil {
			c.Mode = m
			c.sources["mode"] = "environment"
		}
	}
	if val := os.Getenv("NODEM_LOG_LEVEL"); val != "" {
		c.LogLevel = val
		c.sources["log_level"] = "environment"
	}
}

// ConfigFilePath returns the path to the config file
func (c *NodemConfig) ConfigFilePath() string {
	return c.configFilePath
}

// Source returns the source of a configuration attribute
func (c *NodemConfig) Source(name string) string {
	if c.sources == nil {
		return "default"
	}
	if s, ok := c.sources[name]; ok {
		return s
	}
	return "default"
}

// Transcoder returns the converter for Encoding, or nil when values are
// passed through as UTF-8
func (c *NodemConfig) Transcoder() (*mumps.Transcoder, error) {
	if c.Encoding == "" {
		return nil, nil
	}
	return mumps.NewTranscoder(c.Encoding)
}

// Validate validates the configuration
func (c *NodemConfig) Validate() error {
	if c.ReleasePath == "" {
		return fmt.Errorf("release_path must not be empty")
	}
	if c.ReleaseSymbol == "" {
		return fmt.Errorf("release_symbol must not be empty")
	}
	if c.Fallback == "" {
		return fmt.Errorf("fallback must not be empty")
	}
	if !c.Mode.IsAMode() {
		return fmt.Errorf("invalid mode: %s", c.Mode)
	}
	if !logging.ValidLevel(c.LogLevel) {
		return fmt.Errorf("invalid log_level: %s", c.LogLevel)
	}
	if _, err := c.Transcoder(); err != nil {
		return fmt.Errorf("invalid encoding: %w", err)
	}
	return nil
}

// Attributes returns all configuration attributes with their values and sources
func (c *NodemConfig) Attributes() []Attribute {
	return []Attribute{
		{Name: "release_path", Value: c.ReleasePath, Source: c.Source("release_path")},
		{Name: "release_symbol", Value: c.ReleaseSymbol, Source: c.Source("release_symbol")},
		{Name: "fallback", Value: c.Fallback, Source: c.Source("fallback")},
		{Name: "encoding", Value: c.Encoding, Source: c.Source("encoding")},
		{Name: "auto_relink", Value: strconv.FormatBool(c.AutoRelink), Source: c.Source("auto_relink")},
		{Name: "mode", Value: c.Mode.String(), Source: c.Source("mode")},
		{Name: "log_level", Value: c.LogLevel, Source: c.Source("log_level")},
	}
}

// FormatText returns a text representation of the configuration
func (c *NodemConfig) FormatText() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Config file: %s\n\n", c.configFilePath))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "NAME", "VALUE", "SOURCE"))
	sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", "----", "-----", "------"))

	for _, attr := range c.Attributes() {
		value := attr.Value
		if value == "" {
			value = "(not set)"
		}
		sb.WriteString(fmt.Sprintf("%-20s %-30s %s\n", attr.Name, value, attr.Source))
	}
	return sb.String()
}

// FormatJSON returns a JSON representation of the configuration
func (c *NodemConfig) FormatJSON() (string, error) {
	result := map[string]interface{}{
		"config_file": c.configFilePath,
		"attributes":  c.Attributes(),
	}
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
