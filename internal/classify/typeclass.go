package classify

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"net"
	"net/url"
	"os"
	"os/exec"
	"runtime"
	"strconv"
	"syscall"
	"time"
)

// ClassifyType inspects the runtime type of err and maps recognized families
// to a category. The second return is false when no family matches; the final
// CategoryUnexpected fallback belongs to the caller, after the pattern
// classifier has had its chance.
//
// Families are checked in a fixed order, logic before parsing before network
// before platform before file, so a value satisfying two groups classifies
// deterministically.
func ClassifyType(err error) (Category, bool) {
	if err == nil {
		return CategoryUnexpected, false
	}
	if isLogicError(err) {
		return CategoryLogic, true
	}
	if isParsingError(err) {
		return CategoryParsing, true
	}
	if c, ok := classifyNetwork(err); ok {
		return c, true
	}
	if isPlatformError(err) {
		return CategoryPlatform, true
	}
	if isFileError(err) {
		return CategoryFile, true
	}
	return CategoryUnexpected, false
}

// isLogicError reports programming errors: runtime faults (nil dereference,
// out-of-range index, failed type assertion) and our own invalid-state,
// invalid-argument and assertion sentinels.
func isLogicError(err error) bool {
	var re runtime.Error
	if errors.As(err, &re) {
		return true
	}
	return errors.Is(err, ErrInvalidState) ||
		errors.Is(err, ErrInvalidArgument) ||
		errors.Is(err, ErrAssertion)
}

// isParsingError reports malformed input and serialization failures.
// json.UnsupportedTypeError covers non-serializable values and
// json.UnsupportedValueError covers cyclic structures.
func isParsingError(err error) bool {
	var (
		syntaxErr  *json.SyntaxError
		typeErr    *json.UnmarshalTypeError
		unsupType  *json.UnsupportedTypeError
		unsupValue *json.UnsupportedValueError
		numErr     *strconv.NumError
		timeErr    *time.ParseError
		base64Err  base64.CorruptInputError
	)
	return errors.As(err, &syntaxErr) ||
		errors.As(err, &typeErr) ||
		errors.As(err, &unsupType) ||
		errors.As(err, &unsupValue) ||
		errors.As(err, &numErr) ||
		errors.As(err, &timeErr) ||
		errors.As(err, &base64Err)
}

// classifyNetwork resolves the network family. A structured TransportError
// carries its own sub-classification; plain socket, connection and timeout
// errors all resolve to CategoryNetwork.
func classifyNetwork(err error) (Category, bool) {
	var te *TransportError
	if errors.As(err, &te) {
		return classifyTransport(te), true
	}

	// Cancellation is not a network fault but surfaces on the same paths.
	if errors.Is(err, context.Canceled) {
		return CategoryUserCancelled, true
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return CategoryNetwork, true
	}

	var (
		opErr  *net.OpError
		dnsErr *net.DNSError
		urlErr *url.Error
		netErr net.Error
	)
	if errors.As(err, &opErr) || errors.As(err, &dnsErr) || errors.As(err, &urlErr) {
		return CategoryNetwork, true
	}
	// syscall.Errno satisfies net.Error, so the interface check is gated on
	// Timeout() to keep plain file errnos out of the network family.
	if errors.As(err, &netErr) && netErr.Timeout() {
		return CategoryNetwork, true
	}
	switch {
	case errors.Is(err, syscall.ECONNRESET),
		errors.Is(err, syscall.ECONNREFUSED),
		errors.Is(err, syscall.ECONNABORTED),
		errors.Is(err, syscall.ENETDOWN),
		errors.Is(err, syscall.ENETUNREACH),
		errors.Is(err, syscall.EHOSTUNREACH),
		errors.Is(err, syscall.EPIPE),
		errors.Is(err, syscall.ETIMEDOUT),
		errors.Is(err, net.ErrClosed):
		return CategoryNetwork, true
	}
	return CategoryUnexpected, false
}

// classifyTransport maps a transport sub-kind and status code to a category.
func classifyTransport(te *TransportError) Category {
	switch te.Kind {
	case TransportConnectionTimeout, TransportSendTimeout, TransportReceiveTimeout:
		return CategoryTimeout
	case TransportConnectionError:
		return CategoryNetwork
	case TransportCancelled:
		return CategoryUserCancelled
	case TransportBadResponse:
		switch {
		case te.StatusCode >= 500:
			return CategoryServer
		case te.StatusCode == 401:
			return CategoryAuthentication
		case te.StatusCode == 403:
			return CategoryAuthorization
		case te.StatusCode >= 400:
			return CategoryClient
		default:
			return CategoryAPI
		}
	default:
		return CategoryNetwork
	}
}

// isPlatformError reports host-bridge and external-integration failures.
func isPlatformError(err error) bool {
	var (
		integErr *IntegrationError
		execErr  *exec.Error
		exitErr  *exec.ExitError
	)
	return errors.As(err, &integErr) ||
		errors.As(err, &execErr) ||
		errors.As(err, &exitErr)
}

// isFileError reports filesystem and generic IO failures. Checked last so
// network syscall errors do not land here.
func isFileError(err error) bool {
	var (
		pathErr *fs.PathError
		linkErr *os.LinkError
		sysErr  *os.SyscallError
	)
	if errors.As(err, &pathErr) || errors.As(err, &linkErr) || errors.As(err, &sysErr) {
		return true
	}
	return errors.Is(err, fs.ErrNotExist) ||
		errors.Is(err, fs.ErrExist) ||
		errors.Is(err, fs.ErrClosed) ||
		errors.Is(err, io.ErrUnexpectedEOF) ||
		errors.Is(err, io.ErrClosedPipe)
}
