package config

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/vango-dev/forge/internal/errors"
)

const (
	// ConfigFileName is the name of the configuration file.
	ConfigFileName = "forge.json"

	// DefaultPort is the default preview server port.
	DefaultPort = 4000

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// HostVDOM and HostHTML name the tree hosts the command can render with.
	HostVDOM = "vdom"
	HostHTML = "html"
)

// Config represents the complete forge.json configuration.
type Config struct {
	// Render controls how layouts are turned into HTML.
	Render RenderConfig `json:"render,omitempty"`

	// Preview contains preview server configuration.
	Preview PreviewConfig `json:"preview,omitempty"`

	// Publish contains the S3 publishing target.
	Publish PublishConfig `json:"publish,omitempty"`

	// Log configures the command's structured logging.
	Log LogConfig `json:"log,omitempty"`

	// configPath stores the path where the config was loaded from.
	configPath string
}

// RenderConfig controls rendering.
type RenderConfig struct {
	// Host is the tree host used to build layouts: "vdom" or "html".
	Host string `json:"host,omitempty"`

	// Pretty enables indented output.
	Pretty bool `json:"pretty,omitempty"`

	// Indent is the indentation unit in pretty mode.
	Indent string `json:"indent,omitempty"`

	// Lang is the page language.
	Lang string `json:"lang,omitempty"`
}

// PreviewConfig contains preview server configuration.
type PreviewConfig struct {
	Host string `json:"host,omitempty"`
	Port int    `json:"port,omitempty"`

	// HotReload enables the live-reload websocket. Defaults to true.
	HotReload *bool `json:"hotReload,omitempty"`

	// Metrics exposes /metrics. Defaults to true.
	Metrics *bool `json:"metrics,omitempty"`
}

// PublishConfig is the S3 publishing target.
type PublishConfig struct {
	Bucket       string `json:"bucket,omitempty"`
	Prefix       string `json:"prefix,omitempty"`
	Region       string `json:"region,omitempty"`
	Endpoint     string `json:"endpoint,omitempty"`
	CacheControl string `json:"cacheControl,omitempty"`
}

// LogConfig configures logging.
type LogConfig struct {
	// Level is one of debug, info, warn, error.
	Level string `json:"level,omitempty"`

	// Format is "text" or "json".
	Format string `json:"format,omitempty"`
}

// New returns a Config holding the defaults.
func New() *Config {
	c := &Config{}
	c.applyDefaults()
	return c
}

// Load reads forge.json from dir. A missing file yields the defaults.
func Load(dir string) (*Config, error) {
	path := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return New(), nil
	}
	return LoadFile(path)
}

// LoadFile reads configuration from the specified file path.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.New("E040").Wrap(err)
	}

	cfg := &Config{}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, errors.New("E040").
			WithDetail("Failed to parse " + path + ": " + err.Error()).
			WithSuggestion("Check that " + ConfigFileName + " is valid JSON")
	}

	cfg.configPath = path
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Path returns the path where the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Render.Host == "" {
		c.Render.Host = HostVDOM
	}
	if c.Render.Indent == "" {
		c.Render.Indent = "  "
	}
	if c.Render.Lang == "" {
		c.Render.Lang = "en"
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.HotReload == nil {
		c.Preview.HotReload = boolPtr(true)
	}
	if c.Preview.Metrics == nil {
		c.Preview.Metrics = boolPtr(true)
	}
	if c.Publish.CacheControl == "" {
		c.Publish.CacheControl = "no-cache"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E041").
			WithDetail("preview.port must be between 0 and 65535")
	}
	if c.Render.Host != HostVDOM && c.Render.Host != HostHTML {
		return errors.New("E041").
			WithDetailf("render.host must be %q or %q, got %q", HostVDOM, HostHTML, c.Render.Host)
	}
	if _, err := c.LogLevel(); err != nil {
		return errors.New("E041").Wrap(err)
	}
	if c.Log.Format != "text" && c.Log.Format != "json" {
		return errors.New("E041").
			WithDetailf("log.format must be \"text\" or \"json\", got %q", c.Log.Format)
	}
	return nil
}

// LogLevel parses Log.Level.
func (c *Config) LogLevel() (slog.Level, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(c.Log.Level))); err != nil {
		return 0, fmt.Errorf("log.level: %w", err)
	}
	return level, nil
}

// PreviewAddress returns the preview server listen address.
func (c *Config) PreviewAddress() string {
	return fmt.Sprintf("%s:%d", c.Preview.Host, c.Preview.Port)
}

// PreviewURL returns the preview server URL.
func (c *Config) PreviewURL() string {
	return "http://" + c.PreviewAddress()
}

// HotReloadEnabled reports whether the preview server pushes reloads.
func (c *Config) HotReloadEnabled() bool {
	return c.Preview.HotReload == nil || *c.Preview.HotReload
}

// MetricsEnabled reports whether the preview server exposes /metrics.
func (c *Config) MetricsEnabled() bool {
	return c.Preview.Metrics == nil || *c.Preview.Metrics
}

// FindProjectRoot walks up from startDir to the first directory holding
// forge.json. ok is false when there is none.
func FindProjectRoot(startDir string) (dir string, ok bool, err error) {
	dir, err = filepath.Abs(startDir)
	if err != nil {
		return "", false, err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ConfigFileName)); err == nil {
			return dir, true, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false, nil
		}
		dir = parent
	}
}

// LoadFromWorkingDir loads the nearest forge.json above the working
// directory, or the defaults when there is none.
func LoadFromWorkingDir() (*Config, error) {
	wd, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	root, ok, err := FindProjectRoot(wd)
	if err != nil {
		return nil, err
	}
	if !ok {
		return New(), nil
	}
	return Load(root)
}

func boolPtr(b bool) *bool { return &b }
