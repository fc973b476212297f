package api

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Router holds the operation registry and implements http.Handler. Routes
// are registered at construction time and never mutated afterwards; the
// only shared state across in-flight requests is the immutable registry.
type Router struct {
	mux        *http.ServeMux
	middleware []Middleware
	routes     []routeInfo
	registered map[string]struct{}

	title   string
	version string

	errorHandler ErrorHandler

	mu sync.Mutex
}

// RouterOption configures a Router.
type RouterOption func(*Router)

// WithTitle sets the API title (used in the OpenAPI document).
func WithTitle(title string) RouterOption {
	return func(r *Router) {
		r.title = title
	}
}

// WithVersion sets the API version (used in the OpenAPI document).
func WithVersion(version string) RouterOption {
	return func(r *Router) {
		r.version = version
	}
}

// ErrorHandler is a custom error response writer.
type ErrorHandler func(w http.ResponseWriter, r *http.Request, err error)

// WithErrorHandler sets a custom error handler for the router.
func WithErrorHandler(h ErrorHandler) RouterOption {
	return func(r *Router) {
		r.errorHandler = h
	}
}

// New creates a new Router with the given options.
func New(opts ...RouterOption) *Router {
	r := &Router{
		mux:        http.NewServeMux(),
		registered: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Use adds middleware to the router. Middleware is applied in the order added.
func (r *Router) Use(mw ...Middleware) {
	r.middleware = append(r.middleware, mw...)
}

// ServeHTTP implements http.Handler.
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	handler := http.Handler(r.mux)
	for i := len(r.middleware) - 1; i >= 0; i-- {
		handler = r.middleware[i](handler)
	}
	handler.ServeHTTP(w, req)
}

// ListenAndServe starts an HTTP server on the given address.
// It blocks until the context is cancelled, then shuts down gracefully.
func (r *Router) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

// Handle mounts a plain http.Handler at the given method and pattern,
// bypassing typed registration. Meant for infrastructure endpoints like
// metrics scrape handlers; the route does not appear in the OpenAPI
// document.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	r.mux.Handle(method+" "+pattern, h)
}

// addRoute registers a routeInfo with the router's mux and stores it for
// OpenAPI generation. Two operations may never share a method+pattern pair:
// a collision panics here, at construction time, before any request is
// served.
func (r *Router) addRoute(ri routeInfo) {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := ri.method + " " + ri.pattern
	if _, ok := r.registered[key]; ok {
		panic(fmt.Sprintf("api: duplicate route registration for %q", key))
	}
	r.registered[key] = struct{}{}

	r.mux.Handle(key, ri.handler)
	r.routes = append(r.routes, ri)
}
