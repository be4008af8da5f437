package friends

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/Eofs791/tcdw-friends/internal/batch"
	"github.com/Eofs791/tcdw-friends/internal/probe"
)

const (
	defaultBatchSize = batch.DefaultBatchSize
	defaultTimeout   = probe.DefaultTimeout
	defaultUserAgent = probe.DefaultUserAgent
)

// Checker runs one batch health check over a list of endpoints.
//
// Checker is created using [New] with functional options. A Checker holds no
// state between runs and may be run more than once.
//
// The typical lifecycle is:
//
//	c, err := friends.New(friends.WithEndpoints(endpoints...))
//	if err != nil {
//	    slog.Error("failed to create checker", "error", err)
//	    os.Exit(1)
//	}
//
//	summary := c.Run(context.Background(), friends.NewReporter(os.Stdout))
//	if !summary.Healthy() {
//	    os.Exit(1)
//	}
type Checker struct {
	endpoints       []Endpoint
	batchSize       int
	timeout         time.Duration
	userAgent       string
	logger          *slog.Logger
	resultCallbacks []func(CheckResult)
}

// New creates a new [Checker] instance with the given options.
//
// At least one endpoint must be configured via [WithEndpoint] or [WithEndpoints].
// Other options have defaults:
//   - Batch size: 5
//   - Timeout: 10 seconds
//   - User-Agent: "Mozilla/5.0 (compatible; FriendsHealthCheck/1.0)"
//
// Returns an error if no endpoints are configured or if any option is invalid.
func New(opts ...Option) (*Checker, error) {
	cfg := &checkerConfig{
		batchSize: defaultBatchSize,
		timeout:   defaultTimeout,
		userAgent: defaultUserAgent,
	}

	for _, opt := range opts {
		if err := opt(cfg); err != nil {
			return nil, err
		}
	}

	if len(cfg.endpoints) == 0 {
		return nil, errors.New("at least one endpoint is required")
	}

	logger := cfg.logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Checker{
		endpoints:       cfg.endpoints,
		batchSize:       cfg.batchSize,
		timeout:         cfg.timeout,
		userAgent:       cfg.userAgent,
		logger:          logger,
		resultCallbacks: cfg.resultCallbacks,
	}, nil
}

// Stream checks every visible endpoint and returns a channel of results.
//
// Results arrive group by group in endpoint order. The channel is closed
// after the last result, or early when ctx is done and the caller has
// stopped receiving.
func (c *Checker) Stream(ctx context.Context) <-chan CheckResult {
	client := probe.NewClient(
		probe.WithTimeout(c.timeout),
		probe.WithUserAgent(c.userAgent),
	)
	scheduler := batch.NewScheduler(client, c.batchSize, c.logger)

	out := make(chan CheckResult)
	go func() {
		defer close(out)
		defer client.Close()

		for pr := range scheduler.Run(ctx, c.toTargets()) {
			result := probeResultToPublicResult(pr)

			for _, cb := range c.resultCallbacks {
				invokeCallbackSafe(cb, result, c.logger)
			}

			logAttrs := []any{
				"status", result.Status,
				"endpoint", result.Name,
				"url", result.URL,
				"elapsed_ms", result.ElapsedMillis(),
			}
			if result.Status.Failed() {
				c.logger.Warn("check failed", logAttrs...)
			} else {
				c.logger.Debug("check completed", logAttrs...)
			}

			select {
			case out <- result:
			case <-ctx.Done():
				return
			}
		}
	}()

	return out
}

// Run checks every visible endpoint, reporting each result as it arrives,
// and returns the summary printed by the reporter.
func (c *Checker) Run(ctx context.Context, rep *Reporter) Summary {
	visible := len(c.Visible())
	c.logger.Info("check starting",
		"endpoints", visible,
		"hidden", len(c.endpoints)-visible,
		"batch_size", c.batchSize,
		"timeout", c.timeout.String(),
	)

	rep.Start(visible)
	summary := rep.Consume(c.Stream(ctx))
	rep.Finish()

	c.logger.Info("check finished",
		"ok", summary.OK,
		"redirects", summary.Redirects,
		"timeouts", summary.Timeouts,
		"errors", summary.Errors,
		"healthy", summary.Healthy(),
	)
	return summary
}

// Endpoints returns a copy of the configured endpoints, hidden ones included.
func (c *Checker) Endpoints() []Endpoint {
	cp := make([]Endpoint, len(c.endpoints))
	copy(cp, c.endpoints)
	return cp
}

// Visible returns the endpoints that will be checked.
func (c *Checker) Visible() []Endpoint {
	return VisibleEndpoints(c.endpoints)
}

// BatchSize returns the configured number of concurrent checks.
func (c *Checker) BatchSize() int {
	return c.batchSize
}

// Timeout returns the configured per-endpoint deadline.
func (c *Checker) Timeout() time.Duration {
	return c.timeout
}

// VisibleEndpoints filters out hidden endpoints, preserving order.
func VisibleEndpoints(endpoints []Endpoint) []Endpoint {
	visible := make([]Endpoint, 0, len(endpoints))
	for _, ep := range endpoints {
		if !ep.hidden {
			visible = append(visible, ep)
		}
	}
	return visible
}

// toTargets converts endpoints to probe targets. Hidden endpoints are kept;
// the scheduler drops them.
func (c *Checker) toTargets() []probe.Target {
	targets := make([]probe.Target, len(c.endpoints))
	for i, ep := range c.endpoints {
		targets[i] = probe.Target{
			Name:   ep.name,
			URL:    ep.url,
			Hidden: ep.hidden,
		}
	}
	return targets
}

// probeResultToPublicResult converts an internal probe result to the public API type.
func probeResultToPublicResult(pr probe.Result) CheckResult {
	return CheckResult{
		Name:        pr.Name,
		URL:         pr.URL,
		Status:      Status(pr.Status),
		StatusCode:  pr.StatusCode,
		RedirectURL: pr.RedirectURL,
		Error:       pr.Error,
		Elapsed:     pr.Elapsed,
	}
}

// invokeCallbackSafe calls a result callback with panic recovery.
// Panics are logged but do not propagate.
func invokeCallbackSafe(cb func(CheckResult), result CheckResult, logger *slog.Logger) {
	defer func() {
		if r := recover(); r != nil {
			logger.Error("result callback panicked",
				"panic", r,
				"endpoint", result.Name,
			)
		}
	}()
	cb(result)
}
