package api

import (
	"errors"
	"fmt"
	"net/http"
)

// StatusCoder is implemented by errors that know which HTTP status they
// map to.
type StatusCoder interface {
	StatusCode() int
}

// ErrorStatus resolves an error to an HTTP status. Errors that carry no
// status of their own, which includes every delegate failure and
// not-found result, resolve to 500.
func ErrorStatus(err error) int {
	var sc StatusCoder
	if errors.As(err, &sc) {
		return sc.StatusCode()
	}
	return http.StatusInternalServerError
}

// HTTPError pairs a message with the status it should be served with.
type HTTPError struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func (e *HTTPError) Error() string   { return e.Message }
func (e *HTTPError) StatusCode() int { return e.Status }

// Error builds an HTTPError.
func Error(status int, message string) error {
	return &HTTPError{Status: status, Message: message}
}

// Errorf builds an HTTPError with a formatted message.
func Errorf(status int, format string, args ...any) error {
	return &HTTPError{Status: status, Message: fmt.Sprintf(format, args...)}
}

// ProblemDetail is the RFC 9457 problem document all error responses use
// on the wire. Validation failures carry one Errors entry per violated
// field.
//
//nolint:errname // RFC 9457 standard name
type ProblemDetail struct {
	Type     string            `json:"type,omitempty"`
	Title    string            `json:"title,omitempty"`
	Status   int               `json:"status"`
	Detail   string            `json:"detail,omitempty"`
	Instance string            `json:"instance,omitempty"`
	Errors   []ValidationError `json:"errors,omitempty"`
}

func (p *ProblemDetail) Error() string {
	if p.Detail != "" {
		return p.Detail
	}
	return p.Title
}

func (p *ProblemDetail) StatusCode() int { return p.Status }

// ValidationError names one field that failed validation and why. Field
// uses the name the client sent: the binding tag for parameters, the
// JSON name for body fields (dotted, with slice indexes).
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Value   any    `json:"value,omitempty"`
}

// Binding failures wrap one of these sentinels, naming the part of the
// request that could not be decoded.
var (
	ErrBindPath   = errors.New("bind path")
	ErrBindQuery  = errors.New("bind query")
	ErrBindHeader = errors.New("bind header")
	ErrBindBody   = errors.New("bind body")
)
