package report

import (
	"context"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/google/uuid"

	"errsift/internal/classify"
)

// Handler is the caller-facing classification entry point. It classifies
// occurrences, assembles records and hands them to the sink. Every method is
// safe for concurrent use and never lets a fault reach the caller:
// instrumentation must be strictly safer than doing nothing.
type Handler struct {
	sink  Sink
	log   *slog.Logger
	trail *Trail
	stats *Stats
	ready atomic.Bool
	wg    sync.WaitGroup
}

// Option configures a Handler.
type Option func(*Handler)

// WithLogger sets the diagnostic logger.
func WithLogger(log *slog.Logger) Option {
	return func(h *Handler) {
		if log != nil {
			h.log = log
		}
	}
}

// WithTrail sets the breadcrumb trail folded into records.
func WithTrail(t *Trail) Option {
	return func(h *Handler) {
		if t != nil {
			h.trail = t
		}
	}
}

// NewHandler creates a Handler delivering to sink. The handler starts not
// ready: deliveries degrade to diagnostic no-ops until SetReady(true).
func NewHandler(sink Sink, opts ...Option) *Handler {
	h := &Handler{
		sink:  sink,
		log:   slog.Default(),
		trail: NewTrail(0),
		stats: newStats(),
	}
	for _, o := range opts {
		o(h)
	}
	return h
}

// SetReady gates whether the sink is actually invoked.
func (h *Handler) SetReady(ready bool) {
	h.ready.Store(ready)
}

// Ready reports whether deliveries reach the sink.
func (h *Handler) Ready() bool {
	return h.ready.Load()
}

// BreadcrumbTrail returns the breadcrumb trail attached to this handler.
func (h *Handler) BreadcrumbTrail() *Trail {
	return h.trail
}

// Capture classifies one occurrence and hands the record to the sink. It
// never returns or raises an error: delivery is fire-and-forget, and faults
// while building the record fall back to a minimal record, then to a
// diagnostic log line.
func (h *Handler) Capture(ctx context.Context, occ Occurrence) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Error("error capture failed", slog.Any("panic", r), slog.String("operation", occ.Operation))
		}
	}()

	rec, ok := h.buildRecord(occ)
	if !ok {
		rec = h.fallbackRecord(occ)
	}

	metricOccurrences.WithLabelValues(rec.Category.String(), rec.Severity.String()).Inc()
	if rec.Fatal {
		metricFatal.Inc()
	}
	h.stats.observe(rec)

	information := rec.Information()
	if crumbs := h.trail.render(); len(crumbs) > 0 {
		information = append(information, crumbs...)
	}

	if !h.ready.Load() {
		metricSinkSkipped.Inc()
		h.log.Debug("sink not ready, dropping report",
			slog.String("operation", occ.Operation),
			slog.String("category", rec.Category.String()),
			slog.Bool("fatal", rec.Fatal),
		)
		return
	}

	h.deliver(ctx, rec, information)
}

// Breadcrumb records a breadcrumb on the trail and forwards it to the sink
// log channel when the sink is ready.
func (h *Handler) Breadcrumb(ctx context.Context, kind, message string) {
	h.trail.Add(kind, message)
	if !h.ready.Load() {
		return
	}
	msg := kind + ": " + message
	h.spawn(ctx, func(ctx context.Context) error {
		return h.sink.Log(ctx, msg)
	})
}

// SetCustomKey forwards a custom key to the sink when ready.
func (h *Handler) SetCustomKey(ctx context.Context, key string, value any) {
	if !h.ready.Load() {
		return
	}
	h.spawn(ctx, func(ctx context.Context) error {
		return h.sink.SetCustomKey(ctx, key, value)
	})
}

// Stats returns the handler's classification counters.
func (h *Handler) Stats() *Stats {
	return h.stats
}

// Flush waits for in-flight deliveries. Used on shutdown and in tests.
func (h *Handler) Flush() {
	h.wg.Wait()
}

// buildRecord runs the primary build attempt, containing caller faults such
// as unprintable context values.
func (h *Handler) buildRecord(occ Occurrence) (rec Record, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			h.log.Warn("record build failed, using fallback",
				slog.Any("panic", r),
				slog.String("operation", occ.Operation),
			)
			ok = false
		}
	}()
	return newRecord(occ), true
}

// fallbackRecord is the minimal record used when the full build fails:
// operation plus a fallback note, severity forced to critical.
func (h *Handler) fallbackRecord(occ Occurrence) Record {
	return Record{
		ID:       uuid.NewString(),
		Category: classify.CategoryUnexpected,
		Severity: classify.SeverityCritical,
		Fatal:    true,
		Reason:   "Error in " + occ.Operation,
		Err:      recordErr(occ),
		Stack:    occ.Stack,
		Info: map[string]string{
			"operation": occ.Operation,
			"note":      "full context assembly failed, minimal record",
		},
	}
}

// deliver hands the record to the sink without waiting for completion. Sink
// failures are counted and logged, never propagated.
func (h *Handler) deliver(ctx context.Context, rec Record, information []string) {
	h.spawn(ctx, func(ctx context.Context) error {
		return h.sink.RecordError(ctx, rec.Err, rec.Stack, rec.Fatal, rec.Reason, information)
	})
}

// spawn runs a sink call in its own goroutine with an isolated recovery path.
// The caller's cancellation is detached so an aborted request cannot cut off
// an in-flight report.
func (h *Handler) spawn(ctx context.Context, call func(context.Context) error) {
	ctx = context.WithoutCancel(ctx)
	h.wg.Add(1)
	go func() {
		defer h.wg.Done()
		defer func() {
			if r := recover(); r != nil {
				metricSinkFailures.Inc()
				h.log.Debug("sink call panicked", slog.Any("panic", r))
			}
		}()
		if err := call(ctx); err != nil {
			metricSinkFailures.Inc()
			h.log.Debug("sink call failed", slog.Any("error", err))
		}
	}()
}
