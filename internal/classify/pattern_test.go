package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"errsift/internal/classify"
)

func TestClassifyPattern(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		category classify.Category
		matched  bool
	}{
		{
			name:     "null check wording is logic",
			message:  "Null check operator used on a null value",
			category: classify.CategoryLogic,
			matched:  true,
		},
		{
			name:     "subtype mismatch wording is logic",
			message:  "type 'String' is not a subtype of type 'int'",
			category: classify.CategoryLogic,
			matched:  true,
		},
		{
			name:     "nil dereference wording is logic",
			message:  "runtime error: invalid memory address or nil pointer dereference",
			category: classify.CategoryLogic,
			matched:  true,
		},
		{
			name:     "permission wording",
			message:  "open /var/secret: Permission Denied",
			category: classify.CategoryPermission,
			matched:  true,
		},
		{
			name:     "security wording",
			message:  "security context rejected the request",
			category: classify.CategorySecurity,
			matched:  true,
		},
		{
			name:     "database wording",
			message:  "DATABASE is locked",
			category: classify.CategoryDatabase,
			matched:  true,
		},
		{
			name:     "sqlite wording",
			message:  "sqlite3: UNIQUE constraint failed: users.email",
			category: classify.CategoryDatabase,
			matched:  true,
		},
		{
			name:    "unrecognized message",
			message: "something odd happened",
			matched: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := classify.ClassifyPattern(tt.message)
			assert.Equal(t, tt.matched, ok)
			if tt.matched {
				assert.Equal(t, tt.category, got)
			}
		})
	}
}

func TestClassifyPatternOrder(t *testing.T) {
	// Logic patterns are checked before permission and database patterns, so
	// a message containing both resolves to logic.
	got, ok := classify.ClassifyPattern("nil pointer dereference while opening database")
	assert.True(t, ok)
	assert.Equal(t, classify.CategoryLogic, got)
}

func TestIsFatal(t *testing.T) {
	tests := []struct {
		name    string
		message string
		stack   string
		hint    string
		fatal   bool
	}{
		{
			name:    "null check is fatal",
			message: "Null check operator used on a null value",
			fatal:   true,
		},
		{
			name:    "fatal pattern wins over non-fatal overlap",
			message: "Null check operator used on a null value after SocketException",
			fatal:   true,
		},
		{
			name:    "assertion is fatal",
			message: "Failed assertion: line 42: 'items.isNotEmpty': is not true",
			fatal:   true,
		},
		{
			name:    "out of memory is fatal",
			message: "Out of Memory while decoding response",
			fatal:   true,
		},
		{
			name:    "sigsegv is fatal",
			message: "signal: SIGSEGV received",
			fatal:   true,
		},
		{
			name:    "socket reset is not fatal",
			message: "SocketException: Connection reset",
			fatal:   false,
		},
		{
			name:    "dns failure is not fatal",
			message: "Failed host lookup: 'api.example.com'",
			fatal:   false,
		},
		{
			name:    "tls handshake is not fatal",
			message: "HandshakeException: certificate verify failed",
			fatal:   false,
		},
		{
			name:    "render overflow is not fatal",
			message: "A RenderFlex overflowed by 42 pixels on the bottom",
			fatal:   false,
		},
		{
			name:    "missing integration handler is not fatal",
			message: "MissingPluginException(No implementation found for method share)",
			fatal:   false,
		},
		{
			name:    "malformed input is not fatal",
			message: "FormatException: Unexpected character at position 7",
			fatal:   false,
		},
		{
			name:    "image stack origin is not fatal",
			message: "something odd happened",
			stack:   "#0 resolve (package:app/image_stream.dart:214)",
			fatal:   false,
		},
		{
			name:    "rendering object origin is not fatal",
			message: "something odd happened",
			stack:   "rendering/object.dart:1893",
			fatal:   false,
		},
		{
			name:  "build phase hint is not fatal",
			hint:  "thrown during build of ProfileCard",
			fatal: false,
		},
		{
			name:  "hot reload hint is not fatal",
			hint:  "hot reload in progress",
			fatal: false,
		},
		{
			name:    "unknown defaults to fatal",
			message: "something odd happened",
			stack:   "#0 main (package:app/main.dart:10)",
			hint:    "background sync",
			fatal:   true,
		},
		{
			name:    "fatal message outranks non-fatal stack origin",
			message: "fatal error: concurrent map writes",
			stack:   "image_stream.dart:100",
			fatal:   true,
		},
		{
			name:    "non-fatal message outranks fatal-looking stack",
			message: "SocketException: Connection refused",
			stack:   "assertion failed somewhere",
			fatal:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.fatal, classify.IsFatal(tt.message, tt.stack, tt.hint))
		})
	}
}

// The fatal axis and the category axis are evaluated by separate rule sets:
// a non-fatal network message still classifies by its error type.
func TestFatalAndCategoryAreIndependent(t *testing.T) {
	msg := "SocketException: Connection reset"
	assert.False(t, classify.IsFatal(msg, "", ""))

	got, ok := classify.ClassifyPattern(msg)
	assert.False(t, ok)
	assert.Equal(t, classify.CategoryUnexpected, got)
}
