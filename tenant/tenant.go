// Package tenant resolves the per-request store handle from the tenant
// header. Handles are built fresh per request; the resolver only shares
// immutable service-wide options across them.
package tenant

import (
	"net/http"
	"time"

	"github.com/shopgrid/storefront-api/storefront"
)

// HeaderShopDomain is the required tenant-identifying header.
const HeaderShopDomain = "x-shop-domain"

// Options is service-wide configuration, set once at startup and applied
// read-only to every handle the resolver produces.
type Options struct {
	// CacheTTL is the lifetime hint for cached storefront data.
	CacheTTL time.Duration
}

// Factory builds a storefront client bound to one domain.
type Factory func(domain string, opts Options) storefront.Client

// Resolver turns a domain string into a fresh storefront handle. A missing
// domain is an identification failure, not a validation failure: it
// surfaces as a server error before any operation logic runs.
type Resolver struct {
	factory Factory
	opts    Options
}

// NewResolver creates a Resolver over the given client factory.
func NewResolver(factory Factory, opts Options) *Resolver {
	return &Resolver{factory: factory, opts: opts}
}

// Resolve builds a new handle for the domain. It never caches handles:
// two requests for the same domain get two independent clients.
func (r *Resolver) Resolve(domain string) (storefront.Client, error) {
	if domain == "" {
		return nil, ErrMissingDomain
	}
	return r.factory(domain, r.opts), nil
}

// IdentificationError reports a tenant-identification failure. It maps to
// a server error: an unidentified request is an operational problem, not
// bad client input.
type IdentificationError struct {
	msg string
}

// Error returns the failure message.
func (e *IdentificationError) Error() string { return e.msg }

// StatusCode returns the HTTP status for identification failures.
func (e *IdentificationError) StatusCode() int { return http.StatusInternalServerError }

// ErrMissingDomain is returned when the tenant header is absent.
var ErrMissingDomain = &IdentificationError{msg: "tenant: missing " + HeaderShopDomain + " header"}
