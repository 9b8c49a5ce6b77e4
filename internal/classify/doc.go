// Package classify decides what an error occurrence is and how loudly it
// should be surfaced. It is pure: no I/O, deterministic given inputs, safe
// for concurrent use.
//
// # Classification
//
// Two classifiers cooperate. ClassifyType inspects the runtime type of an
// error value and maps five recognized families (logic, parsing, network,
// platform, file) to a Category. ClassifyPattern is the textual fallback: it
// matches the lower-cased rendered message against fixed substring lists.
// Classify combines both:
//
//	cat := classify.Classify(err)
//	sev := classify.SeverityFor(cat)
//
// A structured TransportError carries its own sub-classification (timeouts,
// connection failures, bad responses by status code, cancellation), so HTTP
// client code should wrap request failures into it rather than letting the
// classifier guess from text.
//
// # Fatal verdict
//
// IsFatal is an independent axis used to mark a report as a crash versus a
// logged event. It evaluates fixed pattern lists in strict precedence order
// (fatal message patterns, non-fatal message patterns, non-fatal stack
// origins, non-fatal context hints) and defaults to fatal, so unclassified
// failures are never silently downgraded.
package classify
