// Package hooks adapts process-level error signals, recovered panics in
// particular, into occurrences for the report handler. Each hook is a thin
// translation layer; classification stays in the core.
package hooks

import (
	"context"
	"fmt"
	"runtime/debug"

	"errsift/internal/report"
)

// Recover captures a panic as a fatal-by-default occurrence and resumes
// execution. Must be used directly in a defer statement:
//
//	defer hooks.Recover(ctx, handler, "refresh_cache")
func Recover(ctx context.Context, h *report.Handler, operation string) {
	if r := recover(); r != nil {
		h.Capture(ctx, report.Occurrence{
			Operation: operation,
			Err:       panicError(r),
			Stack:     string(debug.Stack()),
		})
	}
}

// Go runs fn in its own goroutine with panic capture, so an uncaught failure
// in background work is reported instead of killing the process.
func Go(ctx context.Context, h *report.Handler, operation string, fn func(context.Context)) {
	go func() {
		defer Recover(ctx, h, operation)
		fn(ctx)
	}()
}

// CaptureError forwards a plain error into the handler under the given
// operation label. Convenience for call sites without extra context.
func CaptureError(ctx context.Context, h *report.Handler, operation string, err error) {
	if err == nil {
		return
	}
	h.Capture(ctx, report.Occurrence{Operation: operation, Err: err})
}

// panicError converts a recovered panic value into an error.
func panicError(r any) error {
	if err, ok := r.(error); ok {
		return err
	}
	return fmt.Errorf("panic: %v", r)
}
