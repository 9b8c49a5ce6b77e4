package classify

// Category represents a classification outcome for an error occurrence.
// Exactly one category is assigned per occurrence; CategoryUnexpected is the
// final fallback when neither the type nor the pattern classifier matches.
type Category int

const (
	// CategoryUnexpected represents an unclassified error
	CategoryUnexpected Category = iota
	// CategoryLogic represents programming errors (bad state, failed assertions, nil dereference)
	CategoryLogic
	// CategoryParsing represents malformed input or serialization failures
	CategoryParsing
	// CategoryNetwork represents connection-level transport failures
	CategoryNetwork
	// CategoryTimeout represents connection, send or receive timeouts
	CategoryTimeout
	// CategoryServer represents upstream 5xx responses
	CategoryServer
	// CategoryAuthentication represents 401 responses
	CategoryAuthentication
	// CategoryAuthorization represents 403 responses
	CategoryAuthorization
	// CategoryClient represents other 4xx responses
	CategoryClient
	// CategoryAPI represents bad responses outside the known status ranges
	CategoryAPI
	// CategoryUserCancelled represents explicit cancellation
	CategoryUserCancelled
	// CategoryPlatform represents host-bridge or integration failures
	CategoryPlatform
	// CategoryFile represents filesystem and generic IO failures
	CategoryFile
	// CategoryPermission represents permission-denied conditions
	CategoryPermission
	// CategorySecurity represents security-related failures
	CategorySecurity
	// CategoryDatabase represents database failures
	CategoryDatabase
)

// String returns the string representation of the Category.
func (c Category) String() string {
	switch c {
	case CategoryLogic:
		return "LogicError"
	case CategoryParsing:
		return "Parsing"
	case CategoryNetwork:
		return "Network"
	case CategoryTimeout:
		return "Timeout"
	case CategoryServer:
		return "ServerError"
	case CategoryAuthentication:
		return "Authentication"
	case CategoryAuthorization:
		return "Authorization"
	case CategoryClient:
		return "ClientError"
	case CategoryAPI:
		return "APIError"
	case CategoryUserCancelled:
		return "UserCancelled"
	case CategoryPlatform:
		return "PlatformError"
	case CategoryFile:
		return "FileError"
	case CategoryPermission:
		return "Permission"
	case CategorySecurity:
		return "Security"
	case CategoryDatabase:
		return "DatabaseError"
	default:
		return "Unexpected"
	}
}
