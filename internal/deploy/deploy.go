package deploy

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/exec"
	"time"
)

// DefaultPurgeTimeout bounds the cache purge request.
const DefaultPurgeTimeout = 30 * time.Second

// Runner runs an external command to completion.
type Runner interface {
	Run(ctx context.Context, name string, args ...string) error
}

// ExecRunner runs commands with os/exec, streaming their output to Stdout
// and Stderr.
type ExecRunner struct {
	Stdout io.Writer
	Stderr io.Writer
}

// Run implements [Runner].
func (r ExecRunner) Run(ctx context.Context, name string, args ...string) error {
	cmd := exec.CommandContext(ctx, name, args...)
	cmd.Stdout = r.Stdout
	cmd.Stderr = r.Stderr
	return cmd.Run()
}

// Deployer uploads a file and purges the site cache.
type Deployer struct {
	remote     string
	cacheURL   string
	runner     Runner
	httpClient *http.Client
	logger     *slog.Logger
}

// Option configures a [Deployer].
type Option func(*Deployer)

// WithRunner replaces the command runner used for scp.
func WithRunner(r Runner) Option {
	return func(d *Deployer) {
		if r != nil {
			d.runner = r
		}
	}
}

// WithHTTPClient replaces the client used for the cache purge.
func WithHTTPClient(hc *http.Client) Option {
	return func(d *Deployer) {
		if hc != nil {
			d.httpClient = hc
		}
	}
}

// WithLogger sets the logger for progress messages.
func WithLogger(logger *slog.Logger) Option {
	return func(d *Deployer) {
		if logger != nil {
			d.logger = logger
		}
	}
}

// New creates a Deployer copying to remote (user@host:/path). An empty
// cacheURL disables the purge step.
func New(remote, cacheURL string, opts ...Option) (*Deployer, error) {
	if remote == "" {
		return nil, errors.New("deploy remote cannot be empty")
	}

	d := &Deployer{
		remote:     remote,
		cacheURL:   cacheURL,
		runner:     ExecRunner{Stdout: os.Stdout, Stderr: os.Stderr},
		httpClient: &http.Client{Timeout: DefaultPurgeTimeout},
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d, nil
}

// Deploy uploads file and then purges the cache.
func (d *Deployer) Deploy(ctx context.Context, file string) error {
	if err := d.Upload(ctx, file); err != nil {
		return err
	}
	return d.PurgeCache(ctx)
}

// Upload copies file to the remote path with scp.
func (d *Deployer) Upload(ctx context.Context, file string) error {
	d.logger.Info("uploading", "file", file, "remote", d.remote)

	if err := d.runner.Run(ctx, "scp", file, d.remote); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("scp failed with exit code %d", exitErr.ExitCode())
		}
		return fmt.Errorf("scp failed: %w", err)
	}

	d.logger.Info("upload complete", "remote", d.remote)
	return nil
}

// PurgeCache sends DELETE to the cache URL. Any non-2xx response is an error.
// It is a no-op when no cache URL is configured.
func (d *Deployer) PurgeCache(ctx context.Context) error {
	if d.cacheURL == "" {
		d.logger.Debug("cache purge skipped", "reason", "no cache url")
		return nil
	}

	d.logger.Info("clearing cache", "url", d.cacheURL)

	req, err := http.NewRequestWithContext(ctx, http.MethodDelete, d.cacheURL, nil)
	if err != nil {
		return fmt.Errorf("failed to create cache purge request: %w", err)
	}

	resp, err := d.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to clear cache: %w", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("failed to clear cache: %d %s", resp.StatusCode, http.StatusText(resp.StatusCode))
	}

	d.logger.Info("cache cleared", "status", resp.StatusCode)
	return nil
}
