package report

import (
	"time"

	"errsift/internal/classify"
)

// Occurrence is the unit of work: one caught error plus the context the
// caller had at the catch site. Constructed once and never mutated by the
// handler; the core does not persist it.
type Occurrence struct {
	// Operation is a free-text label for what was being attempted.
	Operation string

	// Err is the caught error value. May be nil for occurrences reported
	// remotely as rendered text; Message is used instead.
	Err error

	// Message is the rendered error text for remote reports. Ignored when
	// Err is set.
	Message string

	// Stack is the rendered stack trace, if any.
	Stack string

	// Endpoint is the network target involved, if any. When empty and Err
	// carries a TransportError, the endpoint is derived from its URL.
	Endpoint string

	// DataType names the payload being processed, for parsing failures.
	DataType string

	// RawPayload is the raw payload involved, if any. Only a bounded preview
	// ends up in the record.
	RawPayload string

	// ContextHint is free-text context consulted by the fatal heuristic
	// (e.g. the phase a client runtime reported the failure in).
	ContextHint string

	// Context is caller-supplied extra context, capped when assembled.
	Context map[string]any

	// Severity overrides the severity derived from the category when set.
	Severity *classify.Severity

	// Time is when the occurrence was caught. Zero means time.Now at build.
	Time time.Time
}

// message returns the rendered error text for classification and matching.
func (o Occurrence) message() string {
	if o.Err != nil {
		return o.Err.Error()
	}
	return o.Message
}
