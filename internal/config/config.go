// Package config loads recfmt settings from defaults, an optional config
// file, RECFMT_* environment variables and explicit overrides, in increasing
// order of precedence.
package config

import (
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "RECFMT"

// Config holds every setting of the recfmt command.
type Config struct {
	File        string `mapstructure:"file"`
	Format      string `mapstructure:"format"`
	Header      bool   `mapstructure:"header"`
	Delimiter   string `mapstructure:"delimiter"`
	Display     string `mapstructure:"display"`
	Border      string `mapstructure:"border"`
	Combine     bool   `mapstructure:"combine"`
	Export      bool   `mapstructure:"export"`
	Index       bool   `mapstructure:"index"`
	IndexHeader string `mapstructure:"index-header"`
	MaxWidth    int    `mapstructure:"max-width"`
	Caption     string `mapstructure:"caption"`
	Align       string `mapstructure:"align"`
	LogLevel    string `mapstructure:"log-level"`
	JSON        JSON   `mapstructure:"json"`
	XML         XML    `mapstructure:"xml"`
	YAML        YAML   `mapstructure:"yaml"`
}

// JSON configures the structured-object serializer.
type JSON struct {
	Indent string `mapstructure:"indent"`
}

// XML configures the markup serializer.
type XML struct {
	Root   string `mapstructure:"root"`
	Indent string `mapstructure:"indent"`
}

// YAML configures the mapping serializer.
type YAML struct {
	SortKeys bool `mapstructure:"sort-keys"`
	Indent   int  `mapstructure:"indent"`
}

var defaults = map[string]any{
	"file":           "",
	"format":         "JSON",
	"header":         false,
	"delimiter":      ",",
	"display":        "table",
	"border":         "rounded",
	"combine":        false,
	"export":         false,
	"index":          false,
	"index-header":   "",
	"max-width":      0,
	"caption":        "",
	"align":          "left",
	"log-level":      "warn",
	"json.indent":    "",
	"xml.root":       "record",
	"xml.indent":     "",
	"yaml.sort-keys": true,
	"yaml.indent":    0,
}

// Load builds a Config. path may be empty; otherwise it names a YAML, JSON
// or TOML file. overrides are applied last, keyed like the defaults.
func Load(path string, overrides map[string]any) (*Config, error) {
	v := viper.New()
	for k, val := range defaults {
		v.SetDefault(k, val)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		switch ext := filepath.Ext(path); ext {
		case ".yaml", ".yml":
			v.SetConfigType("yaml")
		case ".json":
			v.SetConfigType("json")
		case ".toml":
			v.SetConfigType("toml")
		}
		if err := v.ReadInConfig(); err != nil {
			return nil, errors.Wrapf(err, "read config %s", path)
		}
	}
	for k, val := range overrides {
		v.Set(k, val)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, errors.Wrap(err, "decode config")
	}
	return &cfg, nil
}

// DelimiterRune returns the first rune of Delimiter, or ',' when unset.
// The literal `\t` is accepted for tab.
func (c *Config) DelimiterRune() (rune, error) {
	switch c.Delimiter {
	case "":
		return ',', nil
	case `\t`, "tab":
		return '\t', nil
	}
	r := []rune(c.Delimiter)
	if len(r) != 1 {
		return 0, errors.Newf("delimiter must be a single character, got %q", c.Delimiter)
	}
	return r[0], nil
}
