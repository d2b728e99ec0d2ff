package split

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/knadh/koanf/parsers/json"
	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/sartorproj/tabkit/logger"
)

// ErrInvalidConfig is returned for a configuration that cannot be used.
var ErrInvalidConfig = errors.New("invalid split config")

// EnvPrefix marks environment variables that override file settings,
// e.g. TABKIT_TRAIN__START=2019-09-01.
const EnvPrefix = "TABKIT_"

// Config holds the split windows and the date column used to filter rows.
type Config struct {
	DateColumn string `json:"date_column"`
	Train      Period `json:"train"`
	Test       Period `json:"test"`
	Val        Period `json:"val"`

	// Logger receives a debug line per partition. Nil means no logging.
	Logger logger.Logger `json:"-"`
}

// DefaultConfig returns the default split configuration.
// Each call returns a new value.
func DefaultConfig() *Config {
	return &Config{
		DateColumn: "DATE_ID",
		Train:      Period{Start: "2019-10-01", End: "2019-12-31"},
		Test:       Period{Start: "2020-01-01", End: "2020-01-31"},
		Val:        Period{Start: "2020-08-01", End: "2020-09-30"},
		Logger:     logger.NopLogger{},
	}
}

// Validate checks the date column and that every period bound parses.
func (c *Config) Validate() error {
	if c.DateColumn == "" {
		return fmt.Errorf("%w: date column is empty", ErrInvalidConfig)
	}
	for _, p := range []struct {
		name   string
		period Period
	}{{"train", c.Train}, {"test", c.Test}, {"val", c.Val}} {
		if _, _, err := p.period.Bounds(); err != nil {
			return fmt.Errorf("%s %w", p.name, err)
		}
	}
	return nil
}

// LoadConfig reads a YAML or JSON file on top of DefaultConfig and applies
// TABKIT_ environment overrides. Keys absent from both keep their defaults.
func LoadConfig(path string) (*Config, error) {
	k := koanf.New(".")
	var parser koanf.Parser
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		parser = yaml.Parser()
	case ".json":
		parser = json.Parser()
	default:
		return nil, fmt.Errorf("%w: unsupported config format: %s", ErrInvalidConfig, ext)
	}
	if err := k.Load(file.Provider(path), parser); err != nil {
		return nil, err
	}
	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		s = strings.ToLower(strings.TrimPrefix(s, EnvPrefix))
		return strings.ReplaceAll(s, "__", ".")
	}), nil); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	if err := k.UnmarshalWithConf("", cfg, koanf.UnmarshalConf{Tag: "json"}); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
