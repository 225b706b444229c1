package gerr

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

var (
	ErrTicketNotFound     = errors.New("ticket not found")
	ErrMalformedResponse  = errors.New("malformed response")
	ErrStaleResponse      = errors.New("stale response discarded")
	ErrSubmissionLimited  = errors.New("too many submissions, try again later")
	ErrInvalidTicketID    = errors.New("invalid ticket id")
	ErrUnknownStatusValue = errors.New("unknown status value")
	ErrAuthRequired       = errors.New("helpdesk session required")
)

// ServerError is a logical failure reported by the backend ({"success": false}).
type ServerError struct {
	StatusCode int
	Message    string
}

func (e *ServerError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server error (status %d)", e.StatusCode)
	}
	return e.Message
}

// ServerMessage returns the backend's error text if err carries one.
func ServerMessage(err error) (string, bool) {
	var se *ServerError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message, true
	}
	return "", false
}

// IsTransport reports whether err is a network-level failure rather than a
// server-reported or malformed response.
func IsTransport(err error) bool {
	if err == nil {
		return false
	}
	var se *ServerError
	if errors.As(err, &se) {
		return false
	}
	return !errors.Is(err, ErrMalformedResponse) && !errors.Is(err, ErrAuthRequired)
}

// ValidationError holds per-field messages keyed by JSON field name.
type ValidationError struct {
	Fields map[string]string
}

func (e *ValidationError) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for k := range e.Fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	parts := make([]string, 0, len(keys))
	for _, k := range keys {
		parts = append(parts, k+": "+e.Fields[k])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}
