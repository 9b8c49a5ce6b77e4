package classify_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"errsift/internal/classify"
)

func TestSeverityFor(t *testing.T) {
	tests := []struct {
		category classify.Category
		severity classify.Severity
	}{
		{classify.CategoryUnexpected, classify.SeverityCritical},
		{classify.CategoryLogic, classify.SeverityCritical},
		{classify.CategorySecurity, classify.SeverityCritical},
		{classify.CategoryParsing, classify.SeverityHigh},
		{classify.CategoryServer, classify.SeverityHigh},
		{classify.CategoryPermission, classify.SeverityHigh},
		{classify.CategoryDatabase, classify.SeverityHigh},
		{classify.CategoryFile, classify.SeverityHigh},
		{classify.CategoryTimeout, classify.SeverityMedium},
		{classify.CategoryNetwork, classify.SeverityMedium},
		{classify.CategoryAPI, classify.SeverityMedium},
		{classify.CategoryClient, classify.SeverityMedium},
		{classify.CategoryAuthentication, classify.SeverityMedium},
		{classify.CategoryAuthorization, classify.SeverityMedium},
		{classify.CategoryPlatform, classify.SeverityMedium},
		{classify.CategoryUserCancelled, classify.SeverityLow},
	}

	for _, tt := range tests {
		t.Run(tt.category.String(), func(t *testing.T) {
			assert.Equal(t, tt.severity, classify.SeverityFor(tt.category))
		})
	}
}

func TestSeverityForUnknownValue(t *testing.T) {
	assert.Equal(t, classify.SeverityMedium, classify.SeverityFor(classify.Category(999)))
}

func TestSeverityOrdering(t *testing.T) {
	assert.True(t, classify.SeverityLow < classify.SeverityMedium)
	assert.True(t, classify.SeverityMedium < classify.SeverityHigh)
	assert.True(t, classify.SeverityHigh < classify.SeverityCritical)
}

func TestParseSeverity(t *testing.T) {
	tests := []struct {
		in       string
		severity classify.Severity
		ok       bool
	}{
		{"low", classify.SeverityLow, true},
		{"medium", classify.SeverityMedium, true},
		{"high", classify.SeverityHigh, true},
		{"critical", classify.SeverityCritical, true},
		{"urgent", classify.SeverityMedium, false},
		{"", classify.SeverityMedium, false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := classify.ParseSeverity(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.severity, got)
		})
	}
}

func TestClassifyFallbackChain(t *testing.T) {
	// Type match first, then pattern, then unexpected.
	assert.Equal(t, classify.CategoryTimeout,
		classify.Classify(&classify.TransportError{Kind: classify.TransportReceiveTimeout}))
	assert.Equal(t, classify.CategoryDatabase,
		classify.Classify(errRendering("database is locked")))
	assert.Equal(t, classify.CategoryUnexpected,
		classify.Classify(errRendering("something odd happened")))
	assert.Equal(t, classify.CategoryUnexpected, classify.Classify(nil))
}

type errRendering string

func (e errRendering) Error() string { return string(e) }
