package report

import (
	"context"
	"log/slog"
	"sync"
)

// Sink is the narrow contract of an external crash-reporting backend. The
// handler serializes classification results into the information sequence and
// the fatal flag before delegating; everything past this interface is outside
// the core.
type Sink interface {
	// RecordError delivers one classified error report.
	RecordError(ctx context.Context, err error, stack string, fatal bool, reason string, information []string) error

	// Log delivers a diagnostic breadcrumb message.
	Log(ctx context.Context, message string) error

	// SetCustomKey attaches a key/value to subsequent reports.
	SetCustomKey(ctx context.Context, key string, value any) error
}

// LogSink writes reports to a slog.Logger. It is the local diagnostic sink
// used by default wiring and never fails.
type LogSink struct {
	log *slog.Logger
}

// NewLogSink creates a sink backed by the given logger.
func NewLogSink(log *slog.Logger) *LogSink {
	if log == nil {
		log = slog.Default()
	}
	return &LogSink{log: log}
}

// RecordError implements Sink.
func (s *LogSink) RecordError(ctx context.Context, err error, stack string, fatal bool, reason string, information []string) error {
	level := slog.LevelWarn
	if fatal {
		level = slog.LevelError
	}
	attrs := []slog.Attr{
		slog.Any("error", err),
		slog.Bool("fatal", fatal),
		slog.Any("information", information),
	}
	if stack != "" {
		attrs = append(attrs, slog.String("stack", stack))
	}
	s.log.LogAttrs(ctx, level, reason, attrs...)
	return nil
}

// Log implements Sink.
func (s *LogSink) Log(ctx context.Context, message string) error {
	s.log.LogAttrs(ctx, slog.LevelInfo, message)
	return nil
}

// SetCustomKey implements Sink.
func (s *LogSink) SetCustomKey(ctx context.Context, key string, value any) error {
	s.log.LogAttrs(ctx, slog.LevelDebug, "custom key", slog.Any(key, value))
	return nil
}

// MemorySink records everything it receives, for tests.
type MemorySink struct {
	mu       sync.Mutex
	reports  []MemoryReport
	messages []string
	keys     map[string]any
	fail     error
}

// MemoryReport is one report captured by MemorySink.
type MemoryReport struct {
	Err         error
	Stack       string
	Fatal       bool
	Reason      string
	Information []string
}

// NewMemorySink creates an empty capturing sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{keys: make(map[string]any)}
}

// FailWith makes every subsequent call return err.
func (s *MemorySink) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.fail = err
}

// RecordError implements Sink.
func (s *MemorySink) RecordError(_ context.Context, err error, stack string, fatal bool, reason string, information []string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.reports = append(s.reports, MemoryReport{
		Err:         err,
		Stack:       stack,
		Fatal:       fatal,
		Reason:      reason,
		Information: information,
	})
	return nil
}

// Log implements Sink.
func (s *MemorySink) Log(_ context.Context, message string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.messages = append(s.messages, message)
	return nil
}

// SetCustomKey implements Sink.
func (s *MemorySink) SetCustomKey(_ context.Context, key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail != nil {
		return s.fail
	}
	s.keys[key] = value
	return nil
}

// Reports returns a copy of captured reports.
func (s *MemorySink) Reports() []MemoryReport {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]MemoryReport, len(s.reports))
	copy(out, s.reports)
	return out
}

// Messages returns a copy of captured log messages.
func (s *MemorySink) Messages() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, len(s.messages))
	copy(out, s.messages)
	return out
}

// Key returns a captured custom key value.
func (s *MemorySink) Key(key string) (any, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	v, ok := s.keys[key]
	return v, ok
}
