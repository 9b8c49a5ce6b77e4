// Package report turns caught errors into classified, structured records and
// hands them to a reporter sink.
//
// The Handler is the single entry point: callers build an Occurrence at the
// catch site and pass it to Capture. Classification and record assembly are
// synchronous and cheap; the hand-off to the sink is fire-and-forget with its
// own recovery path, so a failing or slow backend can never crash or block
// the code that hit the original error. A readiness flag gates the sink:
// until the application marks the handler ready, captures degrade to
// diagnostic no-ops.
//
// Record assembly is defensive in layers: the primary attempt builds the full
// context map; if that faults (an unprintable caller value, for instance) a
// minimal fallback record at critical severity is delivered instead; if even
// delivery fails, the failure is logged locally and swallowed.
package report
