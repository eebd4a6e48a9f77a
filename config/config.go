// Package config loads codec settings from YAML, TOML, or JSON files.
//
// Settings parse leniently: unknown keys are ignored, absent keys keep
// their defaults, and scalar values convert weakly (a quoted "true" still
// reads as a bool). A loaded Settings converts to codec build options:
//
//	settings, err := config.Load("relish.yaml")
//	if err != nil {
//	    return err
//	}
//	codec, err := json.New(settings.Options()...)
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/go-viper/mapstructure/v2"
	jsoniter "github.com/json-iterator/go"
	"gopkg.in/yaml.v3"

	"github.com/zoobzio/relish/json"
)

// ErrUnknownFormat indicates a settings file in an unsupported format.
var ErrUnknownFormat = fmt.Errorf("unknown settings format")

// Supported settings formats.
const (
	formatYAML = "yaml"
	formatTOML = "toml"
	formatJSON = "json"
)

// Settings holds file-loadable codec configuration.
type Settings struct {
	// SerializeNulls controls whether null object members appear in output.
	SerializeNulls bool `json:"serialize_nulls" yaml:"serialize_nulls" toml:"serialize_nulls" mapstructure:"serialize_nulls"`

	// DisableHTMLEscaping turns off escaping of <, >, and & in strings.
	DisableHTMLEscaping bool `json:"disable_html_escaping" yaml:"disable_html_escaping" toml:"disable_html_escaping" mapstructure:"disable_html_escaping"`

	// DateFormat is the time layout for time.Time values. Empty keeps the
	// engine default (RFC 3339).
	DateFormat string `json:"date_format" yaml:"date_format" toml:"date_format" mapstructure:"date_format"`

	// NamingPolicy translates field names. Empty means the default policy.
	NamingPolicy json.NamingPolicy `json:"naming_policy" yaml:"naming_policy" toml:"naming_policy" mapstructure:"naming_policy"`
}

// Defaults returns the convention defaults.
func Defaults() Settings {
	return Settings{
		SerializeNulls:      true,
		DisableHTMLEscaping: true,
		NamingPolicy:        json.PolicyLowerCaseWithUnderscores,
	}
}

// Load reads a settings file, detecting the format from the extension.
func Load(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}
	return Decode(data, detectFormat(path))
}

// Decode parses settings from data in the given format (yaml, yml, toml, or
// json). Absent keys keep their defaults.
func Decode(data []byte, format string) (Settings, error) {
	raw := make(map[string]any)
	switch normalizeFormat(format) {
	case formatYAML:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return Settings{}, fmt.Errorf("parse yaml settings: %w", err)
		}
	case formatTOML:
		if _, err := toml.Decode(string(data), &raw); err != nil {
			return Settings{}, fmt.Errorf("parse toml settings: %w", err)
		}
	case formatJSON:
		if err := jsoniter.Unmarshal(data, &raw); err != nil {
			return Settings{}, fmt.Errorf("parse json settings: %w", err)
		}
	default:
		return Settings{}, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}

	settings := Defaults()
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &settings,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return Settings{}, fmt.Errorf("build settings decoder: %w", err)
	}
	if err := decoder.Decode(raw); err != nil {
		return Settings{}, fmt.Errorf("decode settings: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return Settings{}, err
	}
	return settings, nil
}

// Validate checks that the settings can build a codec.
func (s Settings) Validate() error {
	if s.NamingPolicy != "" && !json.IsValidNamingPolicy(s.NamingPolicy) {
		return fmt.Errorf("%w: %q", json.ErrUnknownPolicy, s.NamingPolicy)
	}
	return nil
}

// Options converts the settings to codec build options.
func (s Settings) Options() []json.Option {
	policy := s.NamingPolicy
	if policy == "" {
		policy = json.PolicyLowerCaseWithUnderscores
	}
	opts := []json.Option{
		json.WithSerializeNulls(s.SerializeNulls),
		json.WithHTMLEscaping(!s.DisableHTMLEscaping),
		json.WithNamingPolicy(policy),
	}
	if s.DateFormat != "" {
		opts = append(opts, json.WithDateFormat(s.DateFormat))
	}
	return opts
}

// detectFormat derives the settings format from a file extension.
func detectFormat(path string) string {
	return strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
}

// normalizeFormat maps format aliases to canonical names. Unknown formats
// normalize to the empty string.
func normalizeFormat(format string) string {
	switch strings.ToLower(format) {
	case "yaml", "yml":
		return formatYAML
	case "toml":
		return formatTOML
	case "json":
		return formatJSON
	default:
		return ""
	}
}
