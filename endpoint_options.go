package friends

import (
	"errors"
	"net/url"
)

// endpointConfig holds mutable state during endpoint construction.
type endpointConfig struct {
	hidden      bool
	avatar      string
	description string
}

// EndpointOption is a function that configures an [Endpoint] during construction.
//
// Built-in options: [WithHidden], [WithAvatar], [WithDescription].
type EndpointOption func(*endpointConfig) error

// WithHidden marks the endpoint as hidden.
//
// Hidden endpoints stay in the configuration but are neither checked nor
// rendered.
func WithHidden(hidden bool) EndpointOption {
	return func(cfg *endpointConfig) error {
		cfg.hidden = hidden
		return nil
	}
}

// WithAvatar sets the avatar image URL shown on the friends page.
//
// Returns an error if the value is not a valid URL. Relative URLs are
// accepted since the page may be served next to its images.
func WithAvatar(avatar string) EndpointOption {
	return func(cfg *endpointConfig) error {
		if avatar == "" {
			return nil
		}
		if _, err := url.Parse(avatar); err != nil {
			return errors.New("invalid avatar URL: " + err.Error())
		}
		cfg.avatar = avatar
		return nil
	}
}

// WithDescription sets the one-line description shown under the name.
func WithDescription(description string) EndpointOption {
	return func(cfg *endpointConfig) error {
		cfg.description = description
		return nil
	}
}
