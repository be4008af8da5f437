package batch

import (
	"context"
	"fmt"
	"log/slog"
	"runtime/debug"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/Eofs791/tcdw-friends/internal/probe"
)

// DefaultBatchSize is the number of probes allowed in flight at once.
const DefaultBatchSize = 5

// Prober checks a single target. [probe.Client] is the production implementation.
//
// Check must not block past its own deadline; the scheduler waits for every
// probe of a group before moving on.
type Prober interface {
	Check(ctx context.Context, target probe.Target) probe.Result
}

// Scheduler runs probes in fixed-size groups.
//
// All probes of a group run concurrently; the next group starts only after
// every probe of the current group has returned. Results are emitted per
// group, in the order the targets were given.
type Scheduler struct {
	prober    Prober
	batchSize int
	logger    *slog.Logger
}

// NewScheduler creates a [Scheduler].
//
// A batchSize below 1 falls back to [DefaultBatchSize]. A nil logger falls
// back to slog.Default().
func NewScheduler(prober Prober, batchSize int, logger *slog.Logger) *Scheduler {
	if batchSize < 1 {
		batchSize = DefaultBatchSize
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		prober:    prober,
		batchSize: batchSize,
		logger:    logger,
	}
}

// BatchSize returns the effective group size.
func (s *Scheduler) BatchSize() int {
	return s.batchSize
}

// Run starts checking targets in the background and returns the results channel.
//
// Hidden targets are dropped before scheduling and produce no result. The
// channel is closed after the last group has been emitted. A group's results
// are sent only after the whole group joined. Once ctx is done, a send that
// would block ends the run early and the channel is closed.
func (s *Scheduler) Run(ctx context.Context, targets []probe.Target) <-chan probe.Result {
	visible := Visible(targets)
	groups := Partition(visible, s.batchSize)
	results := make(chan probe.Result, s.batchSize)

	go func() {
		defer close(results)

		for i, group := range groups {
			s.logger.Debug("checking group",
				"group", i,
				"groups", len(groups),
				"size", len(group),
			)
			for _, result := range s.runGroup(ctx, group) {
				select {
				case results <- result:
				case <-ctx.Done():
					s.logger.Debug("run abandoned", "group", i, "error", ctx.Err())
					return
				}
			}
		}
	}()

	return results
}

// RunAll checks targets and collects every result, preserving target order.
func (s *Scheduler) RunAll(ctx context.Context, targets []probe.Target) []probe.Result {
	var all []probe.Result
	for result := range s.Run(ctx, targets) {
		all = append(all, result)
	}
	return all
}

// runGroup probes every target of the group concurrently and joins them.
// The returned slice is in submission order.
func (s *Scheduler) runGroup(ctx context.Context, group []probe.Target) []probe.Result {
	out := make([]probe.Result, len(group))

	// probes report failures as data, so the group never sees an error
	// and no sibling is cancelled
	var g errgroup.Group
	for i, target := range group {
		g.Go(func() error {
			out[i] = s.safeCheck(ctx, target)
			return nil
		})
	}
	_ = g.Wait()

	return out
}

// safeCheck calls the prober with panic recovery.
// A panic becomes an error result carrying a correlation ID; the stack trace
// is logged with the same ID.
func (s *Scheduler) safeCheck(ctx context.Context, target probe.Target) (result probe.Result) {
	defer func() {
		if r := recover(); r != nil {
			correlationID := uuid.NewString()

			s.logger.Error("probe panic",
				"correlation_id", correlationID,
				"endpoint", target.Name,
				"panic", fmt.Sprintf("%v", r),
				"stack", string(debug.Stack()),
			)

			result = probe.Result{
				Name:   target.Name,
				URL:    target.URL,
				Status: probe.StatusError,
				Error:  fmt.Sprintf("probe panic (correlation_id: %s)", correlationID),
			}
		}
	}()
	return s.prober.Check(ctx, target)
}

// Visible returns the targets that are not hidden, in their original order.
func Visible(targets []probe.Target) []probe.Target {
	visible := make([]probe.Target, 0, len(targets))
	for _, t := range targets {
		if !t.Hidden {
			visible = append(visible, t)
		}
	}
	return visible
}

// Partition splits targets into consecutive groups of at most size elements.
// The last group may be shorter. A size below 1 is treated as 1.
func Partition(targets []probe.Target, size int) [][]probe.Target {
	if size < 1 {
		size = 1
	}
	groups := make([][]probe.Target, 0, (len(targets)+size-1)/size)
	for start := 0; start < len(targets); start += size {
		end := min(start+size, len(targets))
		groups = append(groups, targets[start:end])
	}
	return groups
}
