package api

import (
	"net/http"
	"reflect"
)

// routeInfo holds metadata for a registered operation, used for both
// request dispatch and OpenAPI generation.
type routeInfo struct {
	method  string
	pattern string
	summary string
	desc    string
	tags    []string
	status  int

	reqType  reflect.Type
	respType reflect.Type

	handler http.Handler
}

// RouteOption configures an operation at registration time.
type RouteOption func(*routeInfo)

// WithStatus sets the default HTTP status code for the response.
func WithStatus(code int) RouteOption {
	return func(ri *routeInfo) {
		ri.status = code
	}
}

// WithSummary sets the OpenAPI summary for the operation.
func WithSummary(s string) RouteOption {
	return func(ri *routeInfo) {
		ri.summary = s
	}
}

// WithDescription sets the OpenAPI description for the operation.
func WithDescription(d string) RouteOption {
	return func(ri *routeInfo) {
		ri.desc = d
	}
}

// WithTags adds OpenAPI tags to the operation.
func WithTags(tags ...string) RouteOption {
	return func(ri *routeInfo) {
		ri.tags = append(ri.tags, tags...)
	}
}
