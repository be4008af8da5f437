package friends

import (
	"errors"
	"log/slog"
	"time"
)

// checkerConfig holds mutable state during Checker construction.
type checkerConfig struct {
	endpoints       []Endpoint
	batchSize       int
	timeout         time.Duration
	userAgent       string
	logger          *slog.Logger
	resultCallbacks []func(CheckResult)
}

// Option is a function that configures a [Checker] instance during construction.
//
// Built-in options: [WithEndpoint], [WithEndpoints], [WithBatchSize],
// [WithTimeout], [WithUserAgent], [WithLogger], [WithResultCallback].
type Option func(*checkerConfig) error

// WithEndpoint adds a single [Endpoint] to the check list.
//
// Can be called multiple times; endpoints are checked in the order added.
func WithEndpoint(e Endpoint) Option {
	return func(cfg *checkerConfig) error {
		cfg.endpoints = append(cfg.endpoints, e)
		return nil
	}
}

// WithEndpoints adds multiple [Endpoint] values to the check list.
//
// Equivalent to calling [WithEndpoint] for each value in order.
func WithEndpoints(endpoints ...Endpoint) Option {
	return func(cfg *checkerConfig) error {
		cfg.endpoints = append(cfg.endpoints, endpoints...)
		return nil
	}
}

// WithBatchSize sets how many endpoints are checked concurrently.
//
// Endpoints are checked in consecutive groups of this size; a group must
// finish before the next one starts. Defaults to 5.
//
// Returns an error if the value is zero or negative.
func WithBatchSize(n int) Option {
	return func(cfg *checkerConfig) error {
		if n <= 0 {
			return errors.New("batch size must be positive")
		}
		cfg.batchSize = n
		return nil
	}
}

// WithTimeout sets the per-endpoint deadline. Defaults to 10 seconds.
//
// Returns an error if the duration is zero or negative.
func WithTimeout(d time.Duration) Option {
	return func(cfg *checkerConfig) error {
		if d <= 0 {
			return errors.New("timeout must be positive")
		}
		cfg.timeout = d
		return nil
	}
}

// WithUserAgent sets the User-Agent header sent with every check.
//
// Returns an error if the value is empty.
func WithUserAgent(ua string) Option {
	return func(cfg *checkerConfig) error {
		if ua == "" {
			return errors.New("user agent cannot be empty")
		}
		cfg.userAgent = ua
		return nil
	}
}

// WithLogger sets a custom [slog.Logger] for the Checker.
//
// If not specified, [slog.Default] is used.
//
// Returns an error if the logger is nil.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *checkerConfig) error {
		if logger == nil {
			return errors.New("logger cannot be nil")
		}
		cfg.logger = logger
		return nil
	}
}

// WithResultCallback registers a function to be called for every result.
//
// Callbacks run in registration order on the goroutine that delivers results,
// before the result is handed to the reporter. They must not block. Panics
// within callbacks are recovered and logged.
//
// Nil callbacks are silently ignored.
func WithResultCallback(cb func(CheckResult)) Option {
	return func(cfg *checkerConfig) error {
		if cb == nil {
			return nil
		}
		cfg.resultCallbacks = append(cfg.resultCallbacks, cb)
		return nil
	}
}
