// Package scheduler runs the periodic triage summary: a cron job that logs
// how many occurrences were classified since the previous run, per category
// and severity.
package scheduler

import (
	"context"
	"log/slog"
	"sync"

	"github.com/robfig/cron/v3"

	"errsift/internal/report"
)

// cronLogger adapts the cron logger contract to slog.
type cronLogger struct {
	logger *slog.Logger
}

func (l cronLogger) Info(msg string, keysAndValues ...interface{}) {
	l.logger.LogAttrs(context.Background(), slog.LevelDebug, msg, pairs(keysAndValues)...)
}

func (l cronLogger) Error(err error, msg string, keysAndValues ...interface{}) {
	attrs := append([]slog.Attr{slog.Any("error", err)}, pairs(keysAndValues)...)
	l.logger.LogAttrs(context.Background(), slog.LevelError, msg, attrs...)
}

func pairs(keysAndValues []interface{}) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(keysAndValues)/2)
	for i := 0; i+1 < len(keysAndValues); i += 2 {
		if key, ok := keysAndValues[i].(string); ok {
			attrs = append(attrs, slog.Any(key, keysAndValues[i+1]))
		}
	}
	return attrs
}

// Summary periodically logs classification counts from the handler's stats.
type Summary struct {
	cron  *cron.Cron
	stats *report.Stats
	log   *slog.Logger

	mu   sync.Mutex
	prev report.Snapshot
}

// NewSummary creates the summary job without starting it.
func NewSummary(stats *report.Stats, log *slog.Logger) *Summary {
	return &Summary{
		cron:  cron.New(cron.WithLogger(cronLogger{logger: log})),
		stats: stats,
		log:   log,
	}
}

// Start schedules the summary on a cron spec ("@every 10m", "0 * * * *").
func (s *Summary) Start(spec string) error {
	if _, err := s.cron.AddFunc(spec, s.run); err != nil {
		return err
	}
	s.cron.Start()
	return nil
}

// Stop halts scheduling and waits for a running job to finish.
func (s *Summary) Stop() {
	<-s.cron.Stop().Done()
}

// run logs the counts accumulated since the previous run. Quiet periods log
// nothing.
func (s *Summary) run() {
	s.mu.Lock()
	cur := s.stats.Snapshot()
	delta := diff(s.prev, cur)
	s.prev = cur
	s.mu.Unlock()

	if delta.Total == 0 {
		return
	}
	s.log.Info("triage summary",
		slog.Uint64("occurrences", delta.Total),
		slog.Uint64("fatal", delta.Fatal),
		slog.Any("by_category", delta.ByCategory),
		slog.Any("by_severity", delta.BySeverity),
	)
}

// diff returns cur minus prev; counters never decrease.
func diff(prev, cur report.Snapshot) report.Snapshot {
	out := report.Snapshot{
		Total:      cur.Total - prev.Total,
		Fatal:      cur.Fatal - prev.Fatal,
		ByCategory: make(map[string]uint64),
		BySeverity: make(map[string]uint64),
	}
	for k, v := range cur.ByCategory {
		if d := v - prev.ByCategory[k]; d > 0 {
			out.ByCategory[k] = d
		}
	}
	for k, v := range cur.BySeverity {
		if d := v - prev.BySeverity[k]; d > 0 {
			out.BySeverity[k] = d
		}
	}
	return out
}
