package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

// Settings holds the runtime settings of the friends CLI.
//
// Values are layered by viper: command-line flags override FRIENDS_*
// environment variables, which override an optional settings file, which
// overrides the defaults below.
type Settings struct {
	// Sites is the path of the friend list file.
	Sites string `mapstructure:"sites"`

	// BatchSize is the number of sites checked concurrently.
	BatchSize int `mapstructure:"batch_size"`

	// Timeout bounds each site check.
	Timeout time.Duration `mapstructure:"timeout"`

	// UserAgent is sent with every check.
	UserAgent string `mapstructure:"user_agent"`

	// Format is the check report format: text or json.
	Format string `mapstructure:"format"`

	// Output is where the rendered friends page is written.
	Output string `mapstructure:"output"`

	// Footer is an optional HTML file appended to the rendered page.
	// Empty selects the embedded default footer.
	Footer string `mapstructure:"footer"`

	Deploy DeploySettings `mapstructure:"deploy"`
	Log    LogSettings    `mapstructure:"log"`
}

// DeploySettings configures publishing of the rendered page.
type DeploySettings struct {
	// Remote is the scp destination, user@host:/path.
	Remote string `mapstructure:"remote"`

	// CacheURL receives a DELETE after upload to purge the site cache.
	// Empty skips the purge.
	CacheURL string `mapstructure:"cache_url"`
}

// LogSettings configures the structured logger.
type LogSettings struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Defaults for [Settings].
const (
	DefaultSites     = "friends.toml"
	DefaultBatchSize = 5
	DefaultTimeout   = 10 * time.Second
	DefaultUserAgent = "Mozilla/5.0 (compatible; FriendsHealthCheck/1.0)"
	DefaultOutput    = "dist/friends.html"
	DefaultRemote    = "tcdw@tcdw.host.reall.bond:/home/tcdw/apps/SilverBlog/documents/page/f35ac53d-96ec-5300-b58d-4a0f1cf68a1b"
	DefaultCacheURL  = "https://www.tcdw.net/cache/"
)

// EnvPrefix is the prefix of environment variables read into [Settings].
// Nested keys use underscores: FRIENDS_DEPLOY_CACHE_URL.
const EnvPrefix = "FRIENDS"

// NewViper returns a viper instance with defaults and environment binding
// applied. Callers bind their command-line flags before [LoadSettings].
func NewViper() *viper.Viper {
	v := viper.New()

	v.SetDefault("sites", DefaultSites)
	v.SetDefault("batch_size", DefaultBatchSize)
	v.SetDefault("timeout", DefaultTimeout)
	v.SetDefault("user_agent", DefaultUserAgent)
	v.SetDefault("format", "text")
	v.SetDefault("output", DefaultOutput)
	v.SetDefault("footer", "")

	v.SetDefault("deploy.remote", DefaultRemote)
	v.SetDefault("deploy.cache_url", DefaultCacheURL)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	return v
}

// LoadSettings reads the optional settings file and decodes all layers into
// [Settings]. An empty file path skips the file layer.
func LoadSettings(v *viper.Viper, file string) (*Settings, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read settings file: %w", err)
		}
	}

	var s Settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("failed to decode settings: %w", err)
	}

	if err := s.validate(); err != nil {
		return nil, fmt.Errorf("invalid settings: %w", err)
	}
	return &s, nil
}

func (s *Settings) validate() error {
	if s.Sites == "" {
		return errors.New("sites is required")
	}
	if s.BatchSize < 1 {
		return fmt.Errorf("batch_size must be at least 1, got %d", s.BatchSize)
	}
	if s.Timeout <= 0 {
		return fmt.Errorf("timeout must be positive, got %s", s.Timeout)
	}
	if s.UserAgent == "" {
		return errors.New("user_agent is required")
	}
	if s.Format != "text" && s.Format != "json" {
		return fmt.Errorf("format must be text or json, got %q", s.Format)
	}
	switch strings.ToLower(s.Log.Level) {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log.level must be debug, info, warn or error, got %q", s.Log.Level)
	}
	if s.Log.Format != "json" && s.Log.Format != "text" {
		return fmt.Errorf("log.format must be json or text, got %q", s.Log.Format)
	}
	return nil
}
