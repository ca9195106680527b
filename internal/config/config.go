package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/mgpai22/subrip/internal/subtitle"
	"gopkg.in/yaml.v3"
)

type LoggingConfig struct {
	Level string `yaml:"level"`
	File  string `yaml:"file"`
}

// Config holds parse defaults for the subrip command. Flags override it.
type Config struct {
	Encoding      string        `yaml:"encoding"`
	StartOffsetUs int64         `yaml:"start_offset_us"`
	ScaleFraction bool          `yaml:"scale_fraction"`
	Logging       LoggingConfig `yaml:"logging"`
}

// env var overrides
const (
	EnvEncoding = "SUBRIP_ENCODING"
	EnvLogLevel = "SUBRIP_LOG_LEVEL"
	EnvLogFile  = "SUBRIP_LOG_FILE"
)

func Defaults() Config {
	return Config{
		Encoding: "utf-8",
		Logging:  LoggingConfig{Level: "info"},
	}
}

// Load reads path on top of the defaults and applies env overrides. An
// empty path or a missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Defaults()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, os.ErrNotExist):
		case err != nil:
			return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
			}
		}
	}

	cfg.applyEnv()

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv(EnvEncoding)); v != "" {
		c.Encoding = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogLevel)); v != "" {
		c.Logging.Level = v
	}
	if v := strings.TrimSpace(os.Getenv(EnvLogFile)); v != "" {
		c.Logging.File = v
	}
}

func (c Config) Validate() error {
	if strings.EqualFold(c.Encoding, subtitle.EncodingAuto) {
		return nil
	}
	if _, err := subtitle.LookupEncoding(c.Encoding); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}
