package config

import (
	"fmt"

	friends "github.com/Eofs791/tcdw-friends"
)

// Section titles used on the rendered friends page.
const (
	BlogsTitle    = "博客"
	NonBlogsTitle = "非博客"
)

// Section is a titled group of endpoints, in file order.
type Section struct {
	Title     string
	Endpoints []friends.Endpoint
}

// BuildSections converts the parsed friend list into SDK endpoints, grouped
// by section. Hidden entries are included and carry the hidden flag, except
// those whose URL is not a valid endpoint URL, which are dropped.
func BuildSections(cfg *Config) ([]Section, error) {
	blogs, err := buildEndpoints("blogs", cfg.Blogs)
	if err != nil {
		return nil, err
	}
	nonBlogs, err := buildEndpoints("nonBlogs", cfg.NonBlogs)
	if err != nil {
		return nil, err
	}
	return []Section{
		{Title: BlogsTitle, Endpoints: blogs},
		{Title: NonBlogsTitle, Endpoints: nonBlogs},
	}, nil
}

// BuildEndpoints converts the parsed friend list into SDK endpoints: blogs
// first, then non-blogs.
func BuildEndpoints(cfg *Config) ([]friends.Endpoint, error) {
	sections, err := BuildSections(cfg)
	if err != nil {
		return nil, err
	}
	var endpoints []friends.Endpoint
	for _, s := range sections {
		endpoints = append(endpoints, s.Endpoints...)
	}
	return endpoints, nil
}

func buildEndpoints(section string, fcs []FriendConfig) ([]friends.Endpoint, error) {
	endpoints := make([]friends.Endpoint, 0, len(fcs))
	for i, fc := range fcs {
		ep, err := buildEndpoint(fc)
		if err != nil && fc.Hidden {
			// a broken hidden entry has nothing to check or render
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s[%d] (%s): %w", section, i, fc.Name, err)
		}
		endpoints = append(endpoints, ep)
	}
	return endpoints, nil
}

// buildEndpoint converts a single FriendConfig to an SDK Endpoint.
func buildEndpoint(fc FriendConfig) (friends.Endpoint, error) {
	opts := []friends.EndpointOption{
		friends.WithHidden(fc.Hidden),
	}
	if fc.Avatar != "" {
		opts = append(opts, friends.WithAvatar(fc.Avatar))
	}
	if fc.Description != "" {
		opts = append(opts, friends.WithDescription(fc.Description))
	}
	return friends.NewEndpoint(fc.Name, fc.URL, opts...)
}
