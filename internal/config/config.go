package config

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/bfkr/alerts/internal/errors"
)

const (
	// ConfigFileName is the JSON configuration file name.
	ConfigFileName = "bfkr.json"

	// TOMLConfigFileName is the TOML configuration file name.
	TOMLConfigFileName = "bfkr.toml"

	// DefaultPort is the default preview server port.
	DefaultPort = 3400

	// DefaultHost is the default preview server host.
	DefaultHost = "localhost"

	// DefaultToastPosition is the initial toast position.
	DefaultToastPosition = "top-right"

	// DefaultToastTheme is the initial toast theme.
	DefaultToastTheme = "default"

	// DefaultDialogTheme is the initial dialog theme.
	DefaultDialogTheme = "modern"

	// DefaultToastDuration is the default toast duration.
	DefaultToastDuration = "3500ms"
)

// Config represents bfkr.json.
type Config struct {
	// Colors overrides entries of the semantic color table.
	Colors map[string]string `json:"colors,omitempty" toml:"colors,omitempty"`

	// Toast contains toast engine defaults.
	Toast ToastConfig `json:"toast" toml:"toast"`

	// Dialog contains dialog engine defaults.
	Dialog DialogConfig `json:"dialog" toml:"dialog"`

	// Preview contains preview server settings.
	Preview PreviewConfig `json:"preview" toml:"preview"`

	configPath string
}

// ToastConfig contains toast engine defaults.
type ToastConfig struct {
	// Position is the initial container position.
	Position string `json:"position,omitempty" toml:"position,omitempty"`

	// Theme is the initial preset.
	Theme string `json:"theme,omitempty" toml:"theme,omitempty"`

	// Duration is the default duration used by the preview (e.g., "5s").
	Duration string `json:"duration,omitempty" toml:"duration,omitempty"`
}

// DialogConfig contains dialog engine defaults.
type DialogConfig struct {
	// Theme is the initial preset.
	Theme string `json:"theme,omitempty" toml:"theme,omitempty"`
}

// PreviewConfig contains preview server settings.
type PreviewConfig struct {
	// Host is the host to bind to.
	Host string `json:"host,omitempty" toml:"host,omitempty"`

	// Port is the port to listen on.
	Port int `json:"port,omitempty" toml:"port,omitempty"`

	// Title is the preview page title.
	Title string `json:"title,omitempty" toml:"title,omitempty"`

	// Metrics exposes /metrics when true.
	Metrics bool `json:"metrics,omitempty" toml:"metrics,omitempty"`
}

// New creates a Config with default values.
func New() *Config {
	c := &Config{Preview: PreviewConfig{Metrics: true}}
	c.applyDefaults()
	return c
}

// Load reads bfkr.json, or bfkr.toml when no JSON file exists, from dir.
func Load(dir string) (*Config, error) {
	jsonPath := filepath.Join(dir, ConfigFileName)
	if _, err := os.Stat(jsonPath); err == nil {
		return LoadFile(jsonPath)
	}
	tomlPath := filepath.Join(dir, TOMLConfigFileName)
	if _, err := os.Stat(tomlPath); err == nil {
		return LoadFile(tomlPath)
	}
	return nil, errors.New("E100").
		WithDetail("No " + ConfigFileName + " or " + TOMLConfigFileName + " found in " + dir)
}

// LoadFile reads configuration from path. The format follows the extension.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.New("E100").
				WithDetail("No configuration at " + path).
				Wrap(err)
		}
		return nil, errors.New("E101").Wrap(err)
	}

	cfg := New()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		if err := json.Unmarshal(data, cfg); err != nil {
			return nil, errors.New("E101").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid JSON").
				Wrap(err)
		}
	case ".toml":
		if _, err := toml.Decode(string(data), cfg); err != nil {
			return nil, errors.New("E101").
				WithDetail("Failed to parse " + filepath.Base(path) + ": " + err.Error()).
				WithSuggestion("Check that the file is valid TOML").
				Wrap(err)
		}
	default:
		return nil, errors.New("E103").WithDetail("Unknown extension " + filepath.Ext(path))
	}

	cfg.configPath = path
	cfg.applyDefaults()

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Save writes the configuration to the file it was loaded from.
func (c *Config) Save() error {
	if c.configPath == "" {
		return errors.Newf(errors.CategoryConfig, "no config path set")
	}
	return c.SaveTo(c.configPath)
}

// SaveTo writes the configuration to path, as TOML for .toml files and JSON
// otherwise.
func (c *Config) SaveTo(path string) error {
	var data []byte
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(c); err != nil {
			return errors.New("E104").Wrap(err)
		}
		data = buf.Bytes()
	} else {
		out, err := json.MarshalIndent(c, "", "  ")
		if err != nil {
			return errors.New("E104").Wrap(err)
		}
		data = append(out, '\n')
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.New("E104").Wrap(err)
	}

	c.configPath = path
	return nil
}

// Path returns the path the config was loaded from.
func (c *Config) Path() string {
	return c.configPath
}

func (c *Config) applyDefaults() {
	if c.Toast.Position == "" {
		c.Toast.Position = DefaultToastPosition
	}
	if c.Toast.Theme == "" {
		c.Toast.Theme = DefaultToastTheme
	}
	if c.Toast.Duration == "" {
		c.Toast.Duration = DefaultToastDuration
	}
	if c.Dialog.Theme == "" {
		c.Dialog.Theme = DefaultDialogTheme
	}
	if c.Preview.Host == "" {
		c.Preview.Host = DefaultHost
	}
	if c.Preview.Port == 0 {
		c.Preview.Port = DefaultPort
	}
	if c.Preview.Title == "" {
		c.Preview.Title = "bfkr preview"
	}
}

// Validate checks the configuration.
func (c *Config) Validate() error {
	if c.Preview.Port < 0 || c.Preview.Port > 65535 {
		return errors.New("E102")
	}
	if _, err := time.ParseDuration(c.Toast.Duration); err != nil {
		return errors.New("E101").
			WithDetail("toast.duration: " + err.Error()).
			WithSuggestion(`Use a Go duration such as "3500ms" or "5s"`).
			Wrap(err)
	}
	return nil
}

// ToastDuration returns the parsed toast duration.
func (c *Config) ToastDuration() time.Duration {
	d, err := time.ParseDuration(c.Toast.Duration)
	if err != nil || d <= 0 {
		d, _ = time.ParseDuration(DefaultToastDuration)
	}
	return d
}

// Address returns host:port for the preview server.
func (c *Config) Address() string {
	return c.Preview.Host + ":" + strconv.Itoa(c.Preview.Port)
}

// URL returns the preview server URL.
func (c *Config) URL() string {
	return "http://" + c.Address()
}

// Exists reports whether dir contains a configuration file.
func Exists(dir string) bool {
	for _, name := range []string{ConfigFileName, TOMLConfigFileName} {
		if _, err := os.Stat(filepath.Join(dir, name)); err == nil {
			return true
		}
	}
	return false
}

// LoadOrDefault loads configuration from dir, returning defaults when no
// file exists. Parse errors are still reported.
func LoadOrDefault(dir string) (*Config, error) {
	if !Exists(dir) {
		return New(), nil
	}
	return Load(dir)
}
