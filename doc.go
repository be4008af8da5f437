// Package friends checks a list of friend sites and reports which of them
// are still healthy.
//
// A check is a one-shot batch run: every visible endpoint is probed once with
// an HTTP GET, the outcome is classified as ok, redirect, error, or timeout,
// and a summary decides whether the run was healthy. The cmd/friends binary
// maps an unhealthy run to a non-zero exit status so the check can gate CI.
//
// # Quick Start
//
//	ep, _ := friends.NewEndpoint("Example", "https://blog.example.com")
//	c, _ := friends.New(friends.WithEndpoint(ep))
//
//	summary := c.Run(context.Background(), friends.NewReporter(os.Stdout))
//	if !summary.Healthy() {
//	    os.Exit(1)
//	}
//
// # Configuration
//
// The checker uses the functional options pattern:
//
//	c, err := friends.New(
//	    friends.WithEndpoints(endpoints...),
//	    friends.WithBatchSize(5),
//	    friends.WithTimeout(10 * time.Second),
//	    friends.WithUserAgent("Mozilla/5.0 (compatible; FriendsHealthCheck/1.0)"),
//	)
//
// # Classification
//
// Redirects are never followed. A probe's outcome is, in order of precedence:
//
//   - [StatusTimeout]: no response headers before the deadline
//   - [StatusError]: a transport failure (DNS, refused connection, TLS)
//   - [StatusRedirect]: any 3xx status; the Location header is recorded
//   - [StatusError]: any other status that is not 200
//   - [StatusOK]: 200
//
// Only errors and timeouts make a run unhealthy.
//
// # Architecture
//
// The package is backed by internal packages:
//
//   - internal/probe: single GET with a per-request deadline
//   - internal/batch: fixed-size concurrent groups, joined one after another
//   - internal/render: the friends page HTML fragment
//   - internal/deploy: upload of the rendered page and cache purge
//
// The config package loads the friend list from TOML, YAML or JSON.
package friends
