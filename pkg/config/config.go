package config

import (
	"fmt"
	"os"
	"time"

	"LendRisk/pkg/util"

	"github.com/creasty/defaults"
	"gopkg.in/yaml.v3"
)

type Config struct {
	Environment string `yaml:"environment" default:"development"`
	Server      struct {
		Port            int           `yaml:"port" default:"8080"`
		ReadTimeout     time.Duration `yaml:"read_timeout" default:"10s"`
		WriteTimeout    time.Duration `yaml:"write_timeout" default:"30s"`
		ShutdownTimeout time.Duration `yaml:"shutdown_timeout" default:"10s"`
	} `yaml:"server"`
	CORS struct {
		// Origin is a comma-separated allowlist; "*" allows any origin.
		Origin string `yaml:"origin" default:"*"`
	} `yaml:"cors"`
	RateLimit struct {
		Requests int           `yaml:"requests" default:"100"`
		Window   time.Duration `yaml:"window" default:"15m"`
	} `yaml:"rate_limit"`
	Gemini struct {
		APIKey            string        `yaml:"api_key"`
		Model             string        `yaml:"model" default:"gemini-1.5-flash"`
		BaseURL           string        `yaml:"base_url" default:"https://generativelanguage.googleapis.com/v1beta"`
		Timeout           time.Duration `yaml:"timeout" default:"30s"`
		Temperature       float64       `yaml:"temperature" default:"0.2"`
		MaxOutputTokens   int           `yaml:"max_output_tokens" default:"1024"`
		RequestsPerSecond int           `yaml:"requests_per_second" default:"5"`
	} `yaml:"gemini"`
	Log struct {
		Level  string `yaml:"level" default:"info"`
		Format string `yaml:"format" default:"console"`
		Output string `yaml:"output" default:"stdout"`
	} `yaml:"log"`
}

// Load reads a YAML configuration file on top of baseline defaults.
// A missing file is not an error: the service runs on defaults plus
// environment variables alone.
func Load(path string) (*Config, error) {
	c := &Config{}
	if err := defaults.Set(c); err != nil {
		return nil, fmt.Errorf("apply defaults: %w", err)
	}

	b, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(b, c); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	case os.IsNotExist(err):
		// defaults + env only
	default:
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := c.Validate(); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return c, nil
}

// LoadWithEnv loads config and overrides with environment variables.
func LoadWithEnv(path string) (*Config, error) {
	c, err := Load(path)
	if err != nil {
		return nil, err
	}

	if v := os.Getenv("ENVIRONMENT"); v != "" {
		c.Environment = v
	}
	if v := os.Getenv("PORT"); v != "" {
		c.Server.Port = util.ParseIntDefault(v, c.Server.Port)
	}
	if v := os.Getenv("CORS_ORIGIN"); v != "" {
		c.CORS.Origin = v
	}
	if v := os.Getenv("GEMINI_API_KEY"); v != "" {
		c.Gemini.APIKey = v
	}
	if v := os.Getenv("GEMINI_MODEL"); v != "" {
		c.Gemini.Model = v
	}
	if v := os.Getenv("GEMINI_TIMEOUT"); v != "" {
		c.Gemini.Timeout = util.ParseDurationDefault(v, c.Gemini.Timeout)
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		c.Log.Level = v
	}

	return c, nil
}

// Validate checks if the configuration is valid.
func (c *Config) Validate() error {
	if c.Environment == "" {
		return fmt.Errorf("environment is required")
	}
	if c.Server.Port < 1 || c.Server.Port > 65535 {
		return fmt.Errorf("server.port must be in 1..65535, got %d", c.Server.Port)
	}
	if c.RateLimit.Requests <= 0 {
		return fmt.Errorf("rate_limit.requests must be positive")
	}
	if c.RateLimit.Window <= 0 {
		return fmt.Errorf("rate_limit.window must be positive")
	}
	if c.Gemini.Model == "" {
		return fmt.Errorf("gemini.model is required")
	}
	if c.Gemini.BaseURL == "" {
		return fmt.Errorf("gemini.base_url is required")
	}
	if c.Gemini.Timeout <= 0 {
		return fmt.Errorf("gemini.timeout must be positive")
	}
	if c.Gemini.MaxOutputTokens <= 0 {
		return fmt.Errorf("gemini.max_output_tokens must be positive")
	}
	if c.Gemini.RequestsPerSecond <= 0 {
		return fmt.Errorf("gemini.requests_per_second must be positive")
	}
	return nil
}

// GeminiConfigured reports whether an API credential is present.
func (c *Config) GeminiConfigured() bool {
	return c.Gemini.APIKey != ""
}

// CORSOrigins returns the configured origin allowlist as a slice.
func (c *Config) CORSOrigins() []string {
	return util.SplitAndTrim(c.CORS.Origin, ",")
}
