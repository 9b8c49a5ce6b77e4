package classify

import "strings"

// Pattern lists are fixed, lower-cased substrings. Matching is
// case-insensitive and does not require word boundaries. Remotely reported
// occurrences come from arbitrary client runtimes, so the lists carry both
// Go runtime wording and the common mobile-runtime phrasings.

// logicPatterns match programming-error wording in rendered messages.
var logicPatterns = []string{
	"null check operator used on a null value",
	"nil pointer dereference",
	"invalid memory address",
	"is not a subtype of",
	"interface conversion",
	"index out of range",
	"slice bounds out of range",
}

// permissionPatterns match permission-denied wording.
var permissionPatterns = []string{
	"permission denied",
	"access denied",
	"operation not permitted",
}

// securityPatterns match security-related wording.
var securityPatterns = []string{
	"security",
	"unauthorized access",
	"invalid signature",
}

// databasePatterns match database failure wording.
var databasePatterns = []string{
	"database",
	"sqlite",
	"sql:",
	"constraint failed",
	"deadlock",
}

// ClassifyPattern inspects the rendered message against the fixed category
// pattern sets, first hit wins: logic, then permission/security, then
// database. The second return is false when nothing matches; the caller falls
// back to CategoryUnexpected.
func ClassifyPattern(message string) (Category, bool) {
	m := strings.ToLower(message)
	if containsAny(m, logicPatterns) {
		return CategoryLogic, true
	}
	if containsAny(m, permissionPatterns) {
		return CategoryPermission, true
	}
	if containsAny(m, securityPatterns) {
		return CategorySecurity, true
	}
	if containsAny(m, databasePatterns) {
		return CategoryDatabase, true
	}
	return CategoryUnexpected, false
}

// fatalPatterns force a fatal verdict: assertion failures, null dereference,
// type/range/argument/state errors, memory exhaustion, low-level signals.
var fatalPatterns = []string{
	"assertion failed",
	"failed assertion",
	"null check operator used on a null value",
	"nil pointer dereference",
	"invalid memory address",
	"nosuchmethoderror",
	"is not a subtype of",
	"interface conversion",
	"rangeerror",
	"index out of range",
	"slice bounds out of range",
	"argumenterror",
	"bad state",
	"invalid state",
	"out of memory",
	"stack overflow",
	"stackoverflowerror",
	"sigabrt",
	"sigsegv",
	"fatal error",
	"lateinitializationerror",
	"has not been initialized",
}

// nonFatalPatterns mark known recoverable failures: image decoding, the
// socket/TLS/DNS network family, HTTP client errors, rendering warnings,
// integration-channel failures, malformed input, optional resources.
var nonFatalPatterns = []string{
	"could not decode image",
	"invalid image data",
	"image codec",
	"socketexception",
	"connection reset",
	"connection refused",
	"connection closed",
	"broken pipe",
	"handshakeexception",
	"tls handshake",
	"certificateexception",
	"certificate verify failed",
	"connection timed out",
	"i/o timeout",
	"timeoutexception",
	"failed host lookup",
	"no such host",
	"no address associated with hostname",
	"network is unreachable",
	"software caused connection abort",
	"httpexception",
	"transporterror",
	"renderflex overflowed",
	"renderbox was not laid out",
	"vertical viewport was given unbounded height",
	"horizontal viewport was given unbounded width",
	"platformexception",
	"missingpluginexception",
	"channel-error",
	"no handler registered for",
	"formatexception",
	"unexpected character",
	"unable to load asset",
	"no file or variants found for asset",
}

// nonFatalStackPatterns mark stack origins whose failures are recoverable
// regardless of message wording.
var nonFatalStackPatterns = []string{
	"image_stream",
	"image_provider",
	"image_resolution",
	"rendering/object",
}

// nonFatalContextPatterns mark structured-context hints that the failure
// happened inside a UI phase or a hot-reload cycle.
var nonFatalContextPatterns = []string{
	"during build",
	"during layout",
	"during paint",
	"during composite",
	"during performlayout",
	"hot reload",
	"hot restart",
}

// IsFatal decides the fatal/non-fatal verdict for crash reporting. The checks
// form a precedence chain evaluated strictly in order: explicit fatal message
// patterns, then explicit non-fatal message patterns, then non-fatal stack
// origins, then non-fatal context hints. Anything unrecognized defaults to
// fatal so unknown failures stay visible.
//
// This is an independent axis from ClassifyPattern: the two rule sets overlap
// in spirit but their precedence orders differ, so they are never unified.
func IsFatal(message, stack, contextHint string) bool {
	m := strings.ToLower(message)
	if containsAny(m, fatalPatterns) {
		return true
	}
	if containsAny(m, nonFatalPatterns) {
		return false
	}
	if stack != "" && containsAny(strings.ToLower(stack), nonFatalStackPatterns) {
		return false
	}
	if contextHint != "" && containsAny(strings.ToLower(contextHint), nonFatalContextPatterns) {
		return false
	}
	return true
}

func containsAny(s string, patterns []string) bool {
	for _, p := range patterns {
		if strings.Contains(s, p) {
			return true
		}
	}
	return false
}
