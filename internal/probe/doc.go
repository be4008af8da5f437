// Package probe performs single HTTP health checks for the friends checker.
//
// A probe is one GET request with a fixed deadline and redirect following
// disabled. Every outcome, including transport failures and deadlines, is
// returned as a [Result] value so that one failing site never disturbs the
// checks running next to it.
//
// The main components are:
//
//   - [Client]: HTTP client wrapper with per-request timeout and no redirects
//   - [Target]: the name and URL to probe
//   - [Result]: the classified outcome of one probe
//
// Users of the friends library should not need to interact with this package
// directly. Configuration is done through the root friends package.
package probe
