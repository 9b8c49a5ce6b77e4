package classify

// Severity represents how urgently an error should be surfaced.
// Values are totally ordered: SeverityLow < SeverityMedium < SeverityHigh < SeverityCritical.
type Severity int

const (
	// SeverityLow marks occurrences that need no attention (e.g. user cancellation)
	SeverityLow Severity = iota
	// SeverityMedium marks transient or environment-driven failures
	SeverityMedium
	// SeverityHigh marks failures that degrade functionality
	SeverityHigh
	// SeverityCritical marks programming errors and unclassified failures
	SeverityCritical
)

// String returns the string representation of the Severity.
func (s Severity) String() string {
	switch s {
	case SeverityLow:
		return "low"
	case SeverityMedium:
		return "medium"
	case SeverityHigh:
		return "high"
	case SeverityCritical:
		return "critical"
	default:
		return "medium"
	}
}

// ParseSeverity maps a severity name to its value. The second return is false
// for unknown names.
func ParseSeverity(s string) (Severity, bool) {
	switch s {
	case "low":
		return SeverityLow, true
	case "medium":
		return SeverityMedium, true
	case "high":
		return SeverityHigh, true
	case "critical":
		return SeverityCritical, true
	default:
		return SeverityMedium, false
	}
}

// SeverityFor derives the severity for a category. The mapping is total over
// the Category enumeration; values outside it fall back to SeverityMedium.
func SeverityFor(c Category) Severity {
	switch c {
	case CategoryUnexpected, CategoryLogic, CategorySecurity:
		return SeverityCritical
	case CategoryParsing, CategoryServer, CategoryPermission, CategoryDatabase, CategoryFile:
		return SeverityHigh
	case CategoryTimeout, CategoryNetwork, CategoryAPI, CategoryClient,
		CategoryAuthentication, CategoryAuthorization, CategoryPlatform:
		return SeverityMedium
	case CategoryUserCancelled:
		return SeverityLow
	default:
		return SeverityMedium
	}
}
