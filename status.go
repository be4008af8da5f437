package friends

import "time"

// Status represents the classified outcome of checking one endpoint.
//
// Status is a string type that holds one of four predefined values:
// [StatusOK], [StatusRedirect], [StatusError], or [StatusTimeout].
type Status string

const (
	// StatusOK indicates the endpoint answered 200.
	StatusOK Status = "ok"

	// StatusRedirect indicates the endpoint answered with a 3xx status.
	// Redirects are observed, never followed, and do not count as failures.
	StatusRedirect Status = "redirect"

	// StatusError indicates a transport failure or a non-200, non-3xx status.
	StatusError Status = "error"

	// StatusTimeout indicates no response headers arrived before the deadline.
	StatusTimeout Status = "timeout"
)

// String returns the string representation of the status.
// This implements the fmt.Stringer interface.
func (s Status) String() string {
	return string(s)
}

// Failed reports whether the status counts against the all-healthy signal.
func (s Status) Failed() bool {
	return s == StatusError || s == StatusTimeout
}

// CheckResult holds the outcome of checking a single endpoint.
//
// CheckResult is immutable after creation. Exactly one of StatusCode and
// Error describes a failure: results with an HTTP response carry the status
// code, results without one carry the error message.
type CheckResult struct {
	// Name is the display name of the checked endpoint.
	Name string `json:"name"`

	// URL is the target URL that was checked.
	URL string `json:"url"`

	// Status is the classified outcome.
	Status Status `json:"status"`

	// StatusCode is the HTTP status code returned by the endpoint.
	// Zero if the request failed before receiving a response.
	StatusCode int `json:"status_code,omitempty"`

	// RedirectURL is the Location header of a redirect response.
	// Only set when Status is StatusRedirect; empty if the header was absent.
	RedirectURL string `json:"redirect_url,omitempty"`

	// Error describes a failure that produced no HTTP status, including
	// timeouts ("Timeout after 10000ms").
	Error string `json:"error,omitempty"`

	// Elapsed is the wall-clock duration of the check.
	Elapsed time.Duration `json:"-"`
}

// ElapsedMillis returns Elapsed in whole milliseconds.
func (r CheckResult) ElapsedMillis() int64 {
	return r.Elapsed.Milliseconds()
}

// Summary holds the per-status counts of a completed run.
type Summary struct {
	OK        int `json:"ok"`
	Redirects int `json:"redirects"`
	Timeouts  int `json:"timeouts"`
	Errors    int `json:"errors"`
}

// Add counts one result.
func (s *Summary) Add(r CheckResult) {
	switch r.Status {
	case StatusOK:
		s.OK++
	case StatusRedirect:
		s.Redirects++
	case StatusTimeout:
		s.Timeouts++
	case StatusError:
		s.Errors++
	}
}

// Total returns the number of counted results.
func (s Summary) Total() int {
	return s.OK + s.Redirects + s.Timeouts + s.Errors
}

// Healthy reports whether no result was an error or a timeout.
func (s Summary) Healthy() bool {
	return s.Errors+s.Timeouts == 0
}

// Tally counts results per status.
func Tally(results []CheckResult) Summary {
	var s Summary
	for _, r := range results {
		s.Add(r)
	}
	return s
}
