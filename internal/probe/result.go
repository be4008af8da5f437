package probe

import "time"

// Status values reported by [Client.Check].
//
// These are plain strings to keep this package free of the root package's
// types; the root package converts them to friends.Status.
const (
	StatusOK       = "ok"
	StatusRedirect = "redirect"
	StatusError    = "error"
	StatusTimeout  = "timeout"
)

// Target is one endpoint to probe.
type Target struct {
	// Name is the display label of the endpoint.
	Name string

	// URL is the absolute URL to GET.
	URL string

	// Hidden targets are skipped by the batch scheduler.
	Hidden bool
}

// Result holds the outcome of probing a single [Target].
type Result struct {
	// Name and URL are copied from the probed Target.
	Name string
	URL  string

	// Status is one of StatusOK, StatusRedirect, StatusError or StatusTimeout.
	Status string

	// StatusCode is the HTTP status code.
	// Zero if the request failed before receiving a response.
	StatusCode int

	// RedirectURL is the Location header of a 3xx response.
	RedirectURL string

	// Error describes a failure that produced no HTTP status.
	Error string

	// Elapsed is the wall-clock duration of the attempt.
	Elapsed time.Duration
}
