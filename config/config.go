// Package config loads the friend list and the runtime settings of the
// friends tool.
//
// The friend list can be written in TOML, YAML or JSON; the format is chosen
// by file extension. All three share one layout:
//
//	[[blogs]]
//	name = "Example Blog"
//	url = "https://blog.example.com"
//	avatar = "https://blog.example.com/avatar.png"
//	description = "Notes on Go"
//
//	[[nonBlogs]]
//	name = "Old Homepage"
//	url = "https://old.example.com"
//	avatar = "https://old.example.com/a.png"
//	hidden = true
package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Supported friend list formats.
const (
	FormatTOML = "toml"
	FormatYAML = "yaml"
	FormatJSON = "json"
)

// Config is the root structure of a friend list file.
//
// Use [Load] or [Parse] to create a Config.
type Config struct {
	// Blogs are personal blogs, listed first on the friends page.
	Blogs []FriendConfig `toml:"blogs" yaml:"blogs" json:"blogs"`

	// NonBlogs are every other kind of site.
	NonBlogs []FriendConfig `toml:"nonBlogs" yaml:"nonBlogs" json:"nonBlogs"`
}

// FriendConfig defines one friend site.
type FriendConfig struct {
	// Name is the display name. Required.
	Name string `toml:"name" yaml:"name" json:"name"`

	// URL is the site address and the health check target. Required.
	// Supports environment variable substitution: ${VAR} or ${VAR:-default}
	URL string `toml:"url" yaml:"url" json:"url"`

	// Avatar is the image shown on the friends page.
	Avatar string `toml:"avatar" yaml:"avatar" json:"avatar"`

	// Description is an optional one-line blurb.
	Description string `toml:"description" yaml:"description" json:"description,omitempty"`

	// Hidden entries are kept in the file but neither checked nor rendered.
	// Their URL is not validated.
	Hidden bool `toml:"hidden" yaml:"hidden" json:"hidden,omitempty"`
}

// All returns blogs followed by non-blogs.
func (c *Config) All() []FriendConfig {
	all := make([]FriendConfig, 0, len(c.Blogs)+len(c.NonBlogs))
	all = append(all, c.Blogs...)
	return append(all, c.NonBlogs...)
}

// envVarPattern matches ${VAR} and ${VAR:-default} patterns.
// Group 1: variable name
// Group 2: the ":-default" part (if present, indicates a default was specified)
// Group 3: the default value (may be empty for ${VAR:-})
var envVarPattern = regexp.MustCompile(`\$\{([^}:]+)(:-([^}]*))?\}`)

// expandEnvVars replaces ${VAR} and ${VAR:-default} patterns with environment values.
func expandEnvVars(s string) (string, error) {
	var firstErr error

	result := envVarPattern.ReplaceAllStringFunc(s, func(match string) string {
		if firstErr != nil {
			return match
		}

		submatches := envVarPattern.FindStringSubmatch(match)
		varName := submatches[1]
		hasDefault := submatches[2] != ""
		defaultVal := submatches[3]

		value, exists := os.LookupEnv(varName)
		if !exists {
			if hasDefault {
				return defaultVal
			}
			firstErr = fmt.Errorf("environment variable %q is not set", varName)
			return match
		}
		return value
	})

	if firstErr != nil {
		return "", firstErr
	}
	return result, nil
}

// FormatFromPath returns the friend list format implied by the file extension.
func FormatFromPath(path string) (string, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		return FormatTOML, nil
	case ".yaml", ".yml":
		return FormatYAML, nil
	case ".json":
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unsupported friend list extension %q (expected .toml, .yaml, .yml or .json)", filepath.Ext(path))
	}
}

// Load reads and parses a friend list file.
//
// Returns an error if the file cannot be read, has an unknown extension, or
// fails validation.
func Load(path string) (*Config, error) {
	format, err := FormatFromPath(path)
	if err != nil {
		return nil, err
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	return Parse(data, format)
}

// Parse parses friend list data in the given format and validates it.
//
// Environment variables are expanded in URLs.
func Parse(data []byte, format string) (*Config, error) {
	var cfg Config

	switch format {
	case FormatTOML:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	case FormatYAML:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	case FormatJSON:
		if err := json.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse JSON: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown friend list format %q", format)
	}

	if err := cfg.expandAndValidate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// expandAndValidate expands environment variables and validates every entry.
func (c *Config) expandAndValidate() error {
	if err := validateFriends("blogs", c.Blogs); err != nil {
		return err
	}
	if err := validateFriends("nonBlogs", c.NonBlogs); err != nil {
		return err
	}
	if len(c.Blogs) == 0 && len(c.NonBlogs) == 0 {
		return errors.New("at least one friend must be defined in blogs or nonBlogs")
	}
	return nil
}

func validateFriends(section string, friends []FriendConfig) error {
	for i := range friends {
		f := &friends[i]

		if f.Name == "" {
			return fmt.Errorf("%s[%d]: name is required", section, i)
		}

		// hidden entries are never checked or rendered; only the name matters
		if f.Hidden {
			if expanded, err := expandEnvVars(f.URL); err == nil {
				f.URL = expanded
			}
			continue
		}

		if f.URL == "" {
			return fmt.Errorf("%s[%d] (%s): url is required", section, i, f.Name)
		}
		expanded, err := expandEnvVars(f.URL)
		if err != nil {
			return fmt.Errorf("%s[%d] (%s): url: %w", section, i, f.Name, err)
		}
		f.URL = expanded

		parsedURL, err := url.Parse(f.URL)
		if err != nil {
			return fmt.Errorf("%s[%d] (%s): invalid url: %w", section, i, f.Name, err)
		}
		if parsedURL.Scheme == "" {
			return fmt.Errorf("%s[%d] (%s): url must have a scheme (http:// or https://)", section, i, f.Name)
		}
		if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
			return fmt.Errorf("%s[%d] (%s): url scheme must be http or https, got %q", section, i, f.Name, parsedURL.Scheme)
		}
	}
	return nil
}
