package report

import "sync"

// Stats accumulates classification counts for the periodic triage summary.
// Prometheus counters cover scraping; this snapshot feed covers the log-based
// summary job.
type Stats struct {
	mu         sync.Mutex
	total      uint64
	fatal      uint64
	byCategory map[string]uint64
	bySeverity map[string]uint64
}

// Snapshot is a point-in-time copy of the accumulated counts.
type Snapshot struct {
	Total      uint64
	Fatal      uint64
	ByCategory map[string]uint64
	BySeverity map[string]uint64
}

func newStats() *Stats {
	return &Stats{
		byCategory: make(map[string]uint64),
		bySeverity: make(map[string]uint64),
	}
}

func (s *Stats) observe(rec Record) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.total++
	if rec.Fatal {
		s.fatal++
	}
	s.byCategory[rec.Category.String()]++
	s.bySeverity[rec.Severity.String()]++
}

// Snapshot returns a copy of the current counts.
func (s *Stats) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := Snapshot{
		Total:      s.total,
		Fatal:      s.fatal,
		ByCategory: make(map[string]uint64, len(s.byCategory)),
		BySeverity: make(map[string]uint64, len(s.bySeverity)),
	}
	for k, v := range s.byCategory {
		out.ByCategory[k] = v
	}
	for k, v := range s.bySeverity {
		out.BySeverity[k] = v
	}
	return out
}
