package friends

import (
	"errors"
	"net/url"
)

// Endpoint is one friend site to check and render.
//
// Endpoint is immutable after creation via [NewEndpoint]. All fields are
// private with getter methods.
//
// Only name, URL and the hidden flag matter to the checker; avatar and
// description are carried for the rendered friends page.
type Endpoint struct {
	name        string
	url         string
	hidden      bool
	avatar      string
	description string
}

// Name returns the endpoint's display name.
func (e Endpoint) Name() string {
	return e.name
}

// URL returns the endpoint's target URL as a string.
func (e Endpoint) URL() string {
	return e.url
}

// Hidden reports whether the endpoint is excluded from checking and rendering.
func (e Endpoint) Hidden() bool {
	return e.hidden
}

// Avatar returns the avatar image URL shown on the friends page.
func (e Endpoint) Avatar() string {
	return e.avatar
}

// Description returns the optional one-line description.
func (e Endpoint) Description() string {
	return e.description
}

// NewEndpoint creates an [Endpoint] with the given name, URL, and options.
//
// The rawURL parameter must be an absolute http:// or https:// URL.
//
// Returns an error if the name is empty or the URL is invalid.
//
// Example:
//
//	ep, err := friends.NewEndpoint("Example Blog", "https://blog.example.com",
//	    friends.WithAvatar("https://blog.example.com/avatar.png"),
//	    friends.WithDescription("Notes on Go"),
//	)
func NewEndpoint(name, rawURL string, opts ...EndpointOption) (Endpoint, error) {
	if name == "" {
		return Endpoint{}, errors.New("endpoint name cannot be empty")
	}

	parsedURL, err := url.Parse(rawURL)
	if err != nil {
		return Endpoint{}, errors.New("invalid URL: " + err.Error())
	}
	if parsedURL.Scheme == "" {
		return Endpoint{}, errors.New("URL must have a scheme (http:// or https://)")
	}
	if parsedURL.Scheme != "http" && parsedURL.Scheme != "https" {
		return Endpoint{}, errors.New("URL scheme must be http or https, got " + parsedURL.Scheme)
	}
	if parsedURL.Host == "" {
		return Endpoint{}, errors.New("URL must have a host")
	}

	cfg := &endpointConfig{}
	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return Endpoint{}, err
		}
	}

	return Endpoint{
		name:        name,
		url:         rawURL,
		hidden:      cfg.hidden,
		avatar:      cfg.avatar,
		description: cfg.description,
	}, nil
}
