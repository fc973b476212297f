package api

import (
	"net/http"
	"reflect"
)

// Registrar is the interface accepted by the registration functions.
// Endpoint builders take a Registrar so independent capability groups can be
// mounted onto one router in any combination.
type Registrar interface {
	addRoute(ri routeInfo)
	getErrorHandler() ErrorHandler
}

func (r *Router) getErrorHandler() ErrorHandler { return r.errorHandler }

// register is the internal generic registration function.
func register[Req, Resp any](reg Registrar, method, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	ri := routeInfo{
		method:   method,
		pattern:  pattern,
		reqType:  reflect.TypeFor[Req](),
		respType: reflect.TypeFor[Resp](),
	}

	for _, opt := range opts {
		opt(&ri)
	}

	// Default status: Void response → 204, otherwise 200.
	if ri.status == 0 {
		if ri.respType == reflect.TypeFor[Void]() {
			ri.status = http.StatusNoContent
		} else {
			ri.status = http.StatusOK
		}
	}

	ri.handler = buildHandler(h, ri.status, reg.getErrorHandler())

	reg.addRoute(ri)
}

// buildHandler wraps a typed Handler into an http.Handler. Per request it
// decodes and coerces input, runs constraint validation, invokes the
// handler, and serializes the result. Every error a handler or binder
// produces is mapped to a response here — nothing propagates past this
// boundary.
func buildHandler[Req, Resp any](h Handler[Req, Resp], defaultStatus int, errHandler ErrorHandler) http.Handler {
	writeErr := func(w http.ResponseWriter, r *http.Request, err error) {
		if errHandler != nil {
			errHandler(w, r, err)
			return
		}
		writeErrorResponse(w, err)
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		req, err := decodeRequest[Req](r)
		if err != nil {
			writeErr(w, r, Error(http.StatusBadRequest, err.Error()))
			return
		}

		// Constraint validation on struct tags. The handler never runs
		// when the input is malformed.
		if err := validateConstraints(req); err != nil {
			writeErr(w, r, err)
			return
		}

		// SelfValidator hook for checks tags cannot express.
		if sv, ok := any(req).(SelfValidator); ok {
			if err := sv.Validate(); err != nil {
				writeErr(w, r, err)
				return
			}
		}

		resp, err := h(r.Context(), req)
		if err != nil {
			writeErr(w, r, err)
			return
		}

		if _, ok := any(resp).(*Void); ok || resp == nil {
			w.WriteHeader(defaultStatus)
			return
		}

		encodeResponse(w, resp, defaultStatus)
	})
}

// Get registers a GET operation.
func Get[Req, Resp any](reg Registrar, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	register(reg, http.MethodGet, pattern, h, opts...)
}

// Post registers a POST operation.
func Post[Req, Resp any](reg Registrar, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	register(reg, http.MethodPost, pattern, h, opts...)
}

// Put registers a PUT operation.
func Put[Req, Resp any](reg Registrar, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	register(reg, http.MethodPut, pattern, h, opts...)
}

// Patch registers a PATCH operation.
func Patch[Req, Resp any](reg Registrar, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	register(reg, http.MethodPatch, pattern, h, opts...)
}

// Delete registers a DELETE operation.
func Delete[Req, Resp any](reg Registrar, pattern string, h Handler[Req, Resp], opts ...RouteOption) {
	register(reg, http.MethodDelete, pattern, h, opts...)
}
