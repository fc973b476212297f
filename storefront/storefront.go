// Package storefront defines the outbound capability interfaces the API
// delegates to, grouped by domain area, plus the data types crossing that
// boundary. The API core depends only on these contracts; any compliant
// client can be plugged in.
package storefront

import "context"

// Client is a per-request handle scoped to one store domain. Handles are
// built fresh per request and never shared; the only state they may share
// is immutable service-wide configuration.
type Client interface {
	// Domain returns the store domain this handle is bound to.
	Domain() string

	Store() StoreService
	Products() ProductService
	Collections() CollectionService
	Checkout() CheckoutService
	Utils() UtilService
}

// StoreService exposes store-level metadata operations.
type StoreService interface {
	// Info returns store metadata. force bypasses any cache the
	// implementation maintains.
	Info(ctx context.Context, force bool) (*StoreInfo, error)

	// ClearCache invalidates cached store data. Safe to call repeatedly.
	ClearCache(ctx context.Context) error

	// Classify determines the store's vertical and audience.
	Classify(ctx context.Context, opts ModelOptions) (*StoreType, error)
}

// ProductService exposes product retrieval and enrichment operations.
type ProductService interface {
	All(ctx context.Context) ([]Product, error)
	Paginated(ctx context.Context, opts ListOptions) ([]ProductPage, error)
	Showcased(ctx context.Context) ([]Product, error)
	Filters(ctx context.Context) ([]Filter, error)

	// ByHandle returns the product with the given handle, or (nil, nil)
	// when no such product exists.
	ByHandle(ctx context.Context, handle, currency string) (*Product, error)

	Enrich(ctx context.Context, handle string, opts ModelOptions) (*EnrichedProduct, error)
	Classify(ctx context.Context, handle string, opts ModelOptions) (*ProductClassification, error)
	SEO(ctx context.Context, handle string, opts ModelOptions) (*SEOContent, error)
}

// CollectionService exposes collection retrieval operations, including
// nested product retrieval within a collection.
type CollectionService interface {
	All(ctx context.Context) ([]Collection, error)
	Paginated(ctx context.Context, opts ListOptions) ([]CollectionPage, error)
	Showcased(ctx context.Context) ([]Collection, error)

	// ByHandle returns the collection with the given handle, or (nil, nil)
	// when no such collection exists.
	ByHandle(ctx context.Context, handle string) (*Collection, error)

	Products(ctx context.Context, handle string) ([]Product, error)
	ProductsPaginated(ctx context.Context, handle string, opts ListOptions) ([]ProductPage, error)
	Slugs(ctx context.Context, handle string) ([]string, error)
}

// CheckoutService constructs checkout URLs from order payloads.
type CheckoutService interface {
	URL(ctx context.Context, order Order) (string, error)
}

// UtilService exposes domain utility operations.
type UtilService interface {
	StoreSlug(ctx context.Context) (string, error)
	ProductSlug(ctx context.Context, handle string) (string, error)
	DetectCountry(ctx context.Context) (string, error)
}
