package serrors

import (
	"errors"
	"net/http"
)

// KindOf returns the semantic kind carried by err, or ErrInternal when err
// (or anything it wraps) is not a semantic error.
func KindOf(err error) Kind {
	var se *Error
	if errors.As(err, &se) && se.Kind() != nil {
		return se.Kind()
	}

	var k Kind
	if errors.As(err, &k) {
		return k
	}

	return ErrInternal
}

// HTTPStatus maps a semantic kind to the HTTP status code used to report it.
func HTTPStatus(k Kind) int {
	switch k {
	case ErrNotFound:
		return http.StatusNotFound
	case ErrUnauthorized:
		return http.StatusUnauthorized
	case ErrForbidden:
		return http.StatusForbidden
	case ErrBadRequest:
		return http.StatusBadRequest
	case ErrConflict:
		return http.StatusConflict
	case ErrTimeout:
		return http.StatusGatewayTimeout
	case ErrUnavailable:
		return http.StatusServiceUnavailable
	case ErrRateLimited:
		return http.StatusTooManyRequests
	default:
		return http.StatusInternalServerError
	}
}

// defaultMessages are shown to clients when a semantic error has no message of its own.
//
//nolint: gochecknoglobals
var defaultMessages = map[Kind]string{
	ErrNotFound:     "resource not found",
	ErrUnauthorized: "unauthorized",
	ErrForbidden:    "forbidden",
	ErrBadRequest:   "bad request",
	ErrConflict:     "conflict",
	ErrInternal:     "internal error",
	ErrTimeout:      "timeout",
	ErrUnavailable:  "service unavailable",
	ErrRateLimited:  "too many requests",
}

// PublicMessage returns a message that is safe to show to clients. Internal
// errors never expose their cause; other kinds expose the message given to
// With/Wrap, falling back to a generic text for the kind.
func PublicMessage(err error) string {
	k := KindOf(err)
	if k == ErrInternal {
		return defaultMessages[ErrInternal]
	}

	var se *Error
	if errors.As(err, &se) && se.Message() != "" {
		return se.Message()
	}
	if msg, ok := defaultMessages[k]; ok {
		return msg
	}

	return k.Error()
}
