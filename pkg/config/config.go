// Package config loads registry client settings from YAML.
package config

import (
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/uddiwire/uddi/pkg/codec"
	"github.com/uddiwire/uddi/pkg/constants"
	"github.com/uddiwire/uddi/pkg/logger"
)

// Config represents the complete client configuration
type Config struct {
	// InquiryURL is the SOAP endpoint for find_* and get_* calls
	InquiryURL string `yaml:"inquiry_url"`
	// PublishURL is the SOAP endpoint for save_*, delete_* and auth calls
	PublishURL string `yaml:"publish_url"`
	// Timeout bounds each HTTP round trip (default: 10s)
	Timeout time.Duration `yaml:"timeout"`
	Schema  SchemaConfig  `yaml:"schema"`
	Log     LogConfig     `yaml:"log"`
	// Cache keeps decoded tModels in memory between get calls
	Cache bool `yaml:"cache"`
}

// SchemaConfig overrides the message vocabulary. Empty fields keep the
// version 2 defaults.
type SchemaConfig struct {
	Namespace string `yaml:"namespace"`
	Prefix    string `yaml:"prefix"`
	Generic   string `yaml:"generic"`
}

type LogConfig struct {
	// Level is a zerolog level name (default: info)
	Level string `yaml:"level"`
	// Path appends logs to a file instead of stderr
	Path string `yaml:"path"`
}

// EnvPath names the environment variable holding the config file path.
const EnvPath = "UDDI_CONFIG"

// DefaultPath returns $UDDI_CONFIG, or uddi.yaml in the working directory.
func DefaultPath() string {
	return getEnvOrDefault(EnvPath, "uddi.yaml")
}

func getEnvOrDefault(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	return value
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() *Config {
	s := codec.DefaultSchema()
	return &Config{
		Timeout: constants.DefaultHTTPTimeout,
		Schema: SchemaConfig{
			Namespace: s.Namespace,
			Prefix:    s.Prefix,
			Generic:   s.Generic,
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads path over the defaults and validates the result.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("config load failed (%s): %w", path, err)
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("config parse failed (%s): %w", path, err)
	}
	cfg.fillDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config invalid (%s): %w", path, err)
	}
	return cfg, nil
}

func (c *Config) fillDefaults() {
	d := DefaultConfig()
	if c.Timeout <= 0 {
		c.Timeout = d.Timeout
	}
	if c.Schema.Namespace == "" {
		c.Schema.Namespace = d.Schema.Namespace
	}
	if c.Schema.Generic == "" {
		c.Schema.Generic = d.Schema.Generic
	}
}

// Validate checks that at least one endpoint is usable.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.InquiryURL) == "" && strings.TrimSpace(c.PublishURL) == "" {
		return fmt.Errorf("inquiry_url or publish_url: %w", constants.ErrNoEndpoint)
	}
	for name, raw := range map[string]string{"inquiry_url": c.InquiryURL, "publish_url": c.PublishURL} {
		if raw == "" {
			continue
		}
		u, err := url.Parse(raw)
		if err != nil {
			return fmt.Errorf("%s: %w", name, err)
		}
		if u.Scheme != "http" && u.Scheme != "https" {
			return fmt.Errorf("%s: unsupported scheme %q", name, u.Scheme)
		}
	}
	if _, err := logger.ParseLevel(c.Log.Level); err != nil {
		return err
	}
	return nil
}

// CodecSchema returns the schema the codecs should use.
func (c *Config) CodecSchema() codec.Schema {
	return codec.Schema{
		Namespace: c.Schema.Namespace,
		Prefix:    c.Schema.Prefix,
		Generic:   c.Schema.Generic,
	}
}
