// Package telemetry collects hierarchical timings for bulk table operations.
//
// Collectors travel through a context.Context, so instrumented code does not
// change its signature to be measured. When no collector is attached, a no-op
// collector is used.
//
// Example usage:
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	ids, err := table.AddLines(ctx, r)
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/intern/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector records timers and reports them.
type Collector interface {
	// Start begins timing an operation. End the returned Timer when the
	// operation completes. Timers started before it ends nest under it.
	Start(name string) Timer

	// Report writes the collected timings to w. styles may be nil.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation's timing.
type Timer interface {
	// End stops the timer and records the duration.
	End()

	// Add records n more items processed by the operation.
	Add(n int)
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from context.
// If no collector is present, returns a collector that does nothing.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
