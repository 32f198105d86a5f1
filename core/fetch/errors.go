package fetch

import (
	"errors"
	"fmt"
	"net/url"
	"strings"
)

// Kind identifies which stage of a fetch failed.
type Kind int

const (
	// KindTransport means the request never produced a response
	// (DNS, refused connection, TLS, a broken body stream, cancellation).
	KindTransport Kind = iota + 1
	// KindHTTPStatus means the server answered with a non-2xx status.
	KindHTTPStatus
	// KindDecode means the body was not valid JSON.
	KindDecode
	// KindValidation means the JSON did not match the page schema.
	KindValidation
)

func (k Kind) String() string {
	switch k {
	case KindTransport:
		return "transport error"
	case KindHTTPStatus:
		return "http status error"
	case KindDecode:
		return "decode error"
	case KindValidation:
		return "validation error"
	default:
		return fmt.Sprintf("unknown error kind %d", int(k))
	}
}

// FieldError describes one schema violation.
type FieldError struct {
	Field   string
	Problem string
}

func (f FieldError) String() string {
	if f.Field == "" {
		return f.Problem
	}
	return f.Field + ": " + f.Problem
}

// Error is the single failure value returned by the fetcher.
// Exactly one Kind is set per failed call.
type Error struct {
	Kind       Kind
	URL        string
	StatusCode int          // KindHTTPStatus only
	Status     string       // e.g. "404 Not Found"
	Fields     []FieldError // KindValidation only
	Err        error        // underlying cause, if any
}

func (e *Error) Error() string {
	return e.Kind.String() + ": " + e.detail()
}

func (e *Error) detail() string {
	switch e.Kind {
	case KindHTTPStatus:
		status := e.Status
		if status == "" {
			status = fmt.Sprintf("%d", e.StatusCode)
		}
		return fmt.Sprintf("%s for url: %s", status, e.URL)
	case KindValidation:
		parts := make([]string, len(e.Fields))
		for i, f := range e.Fields {
			parts[i] = f.String()
		}
		return fmt.Sprintf("unexpected response from %s: %s", e.URL, strings.Join(parts, "; "))
	case KindDecode:
		return fmt.Sprintf("invalid JSON from %s: %v", e.URL, e.Err)
	default:
		if e.Err == nil {
			return "request to " + e.URL + " failed"
		}
		// *url.Error already names the method and URL.
		var ue *url.Error
		if errors.As(e.Err, &ue) {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", e.URL, e.Err)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// IsKind reports whether err is (or wraps) a fetch Error of the given kind.
func IsKind(err error, kind Kind) bool {
	var fe *Error
	if !errors.As(err, &fe) {
		return false
	}
	return fe.Kind == kind
}

// KindOf returns the kind of a fetch Error in err's chain, or 0.
func KindOf(err error) Kind {
	var fe *Error
	if !errors.As(err, &fe) {
		return 0
	}
	return fe.Kind
}
