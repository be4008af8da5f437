package friends

import (
	"encoding/json"
	"fmt"
	"io"
)

// Format selects how a [Reporter] renders results.
type Format string

const (
	// FormatText prints one human-readable line per result and a summary block.
	FormatText Format = "text"

	// FormatJSON prints one JSON object per result and a final summary object,
	// for consumption by CI tooling.
	FormatJSON Format = "json"
)

// ParseFormat validates a format name. An empty name selects [FormatText].
func ParseFormat(s string) (Format, error) {
	switch Format(s) {
	case "", FormatText:
		return FormatText, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("unknown format %q (expected 'text' or 'json')", s)
	}
}

// ReporterOption configures a [Reporter].
type ReporterOption func(*Reporter)

// WithFormat selects the output format. Defaults to [FormatText].
func WithFormat(f Format) ReporterOption {
	return func(r *Reporter) {
		r.format = f
	}
}

// Reporter prints results as they arrive and tallies them.
//
// A Reporter is not safe for concurrent use; it is meant to be driven by the
// single goroutine that consumes a result stream.
type Reporter struct {
	out     io.Writer
	format  Format
	summary Summary
	err     error
}

// NewReporter creates a [Reporter] writing to out.
func NewReporter(out io.Writer, opts ...ReporterOption) *Reporter {
	r := &Reporter{out: out, format: FormatText}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Start prints the run header for n endpoints. JSON output has no header.
func (r *Reporter) Start(n int) {
	if r.format == FormatJSON {
		return
	}
	r.printf("Checking %d sites...\n\n", n)
}

// Report prints one result and counts it.
func (r *Reporter) Report(res CheckResult) {
	r.summary.Add(res)

	if r.format == FormatJSON {
		r.writeJSON(jsonResult{CheckResult: res, ElapsedMS: res.ElapsedMillis()})
		return
	}
	r.printf("%s\n", FormatResult(res))
}

// Consume reports every result from results until the channel is closed and
// returns the running summary.
func (r *Reporter) Consume(results <-chan CheckResult) Summary {
	for res := range results {
		r.Report(res)
	}
	return r.summary
}

// Finish prints the summary block and returns the summary.
func (r *Reporter) Finish() Summary {
	s := r.summary

	if r.format == FormatJSON {
		r.writeJSON(jsonSummary{Summary: s, Healthy: s.Healthy()})
		return s
	}

	r.printf("\n--- Summary ---\n")
	r.printf("✅ OK: %d\n", s.OK)
	r.printf("🔀 Redirects: %d\n", s.Redirects)
	r.printf("⏱️  Timeouts: %d\n", s.Timeouts)
	r.printf("❌ Errors: %d\n", s.Errors)
	return s
}

// Summary returns the counts of the results reported so far.
func (r *Reporter) Summary() Summary {
	return r.summary
}

// Err returns the first write error, if any.
func (r *Reporter) Err() error {
	return r.err
}

// FormatResult renders a single result as one human-readable line.
func FormatResult(res CheckResult) string {
	elapsed := fmt.Sprintf(" (%dms)", res.ElapsedMillis())

	switch res.Status {
	case StatusOK:
		return fmt.Sprintf("✅ %s: OK%s", res.Name, elapsed)
	case StatusTimeout:
		return fmt.Sprintf("⏱️  %s: TIMEOUT%s", res.Name, elapsed)
	case StatusRedirect:
		return fmt.Sprintf("🔀 %s: %d -> %s%s", res.Name, res.StatusCode, res.RedirectURL, elapsed)
	case StatusError:
		if res.StatusCode != 0 {
			return fmt.Sprintf("❌ %s: HTTP %d%s", res.Name, res.StatusCode, elapsed)
		}
		return fmt.Sprintf("❌ %s: %s%s", res.Name, res.Error, elapsed)
	default:
		return fmt.Sprintf("? %s: %s%s", res.Name, res.Status, elapsed)
	}
}

type jsonResult struct {
	CheckResult
	ElapsedMS int64 `json:"elapsed_ms"`
}

type jsonSummary struct {
	Summary Summary `json:"summary"`
	Healthy bool    `json:"healthy"`
}

func (r *Reporter) writeJSON(v any) {
	if r.err != nil {
		return
	}
	enc := json.NewEncoder(r.out)
	enc.SetEscapeHTML(false)
	// Encode appends the newline that separates records
	if err := enc.Encode(v); err != nil {
		r.err = fmt.Errorf("failed to write report: %w", err)
	}
}

func (r *Reporter) printf(format string, args ...any) {
	if r.err != nil {
		return
	}
	if _, err := fmt.Fprintf(r.out, format, args...); err != nil {
		r.err = fmt.Errorf("failed to write report: %w", err)
	}
}
