package report

import (
	"fmt"
	"sync"
	"time"
)

// defaultTrailSize bounds the breadcrumb ring.
const defaultTrailSize = 20

// Breadcrumb is a lightweight trace of something that happened before an
// error occurrence: a route change, a user action, a state transition.
type Breadcrumb struct {
	Time    time.Time
	Kind    string
	Message string
}

// Trail is a bounded in-memory ring of recent breadcrumbs. Oldest entries are
// evicted first. Safe for concurrent use. Nothing is ever persisted.
type Trail struct {
	mu    sync.Mutex
	buf   []Breadcrumb
	next  int
	count int
}

// NewTrail creates a trail holding at most size breadcrumbs; size <= 0 uses
// the default.
func NewTrail(size int) *Trail {
	if size <= 0 {
		size = defaultTrailSize
	}
	return &Trail{buf: make([]Breadcrumb, size)}
}

// Add appends a breadcrumb, evicting the oldest when full.
func (t *Trail) Add(kind, message string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.buf[t.next] = Breadcrumb{Time: time.Now(), Kind: kind, Message: message}
	t.next = (t.next + 1) % len(t.buf)
	if t.count < len(t.buf) {
		t.count++
	}
}

// Recent returns breadcrumbs oldest first.
func (t *Trail) Recent() []Breadcrumb {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]Breadcrumb, 0, t.count)
	start := t.next - t.count
	if start < 0 {
		start += len(t.buf)
	}
	for i := 0; i < t.count; i++ {
		out = append(out, t.buf[(start+i)%len(t.buf)])
	}
	return out
}

// render formats breadcrumbs for a record's information sequence.
func (t *Trail) render() []string {
	recent := t.Recent()
	out := make([]string, 0, len(recent))
	for _, b := range recent {
		out = append(out, fmt.Sprintf("breadcrumb %s [%s] %s", b.Time.UTC().Format(time.RFC3339), b.Kind, b.Message))
	}
	return out
}
