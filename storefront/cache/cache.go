// Package cache decorates a storefront.Client with TTL caching for read
// operations. One shared Store backs all per-request handles, so cached
// data survives across requests while handles stay per-request.
package cache

import (
	"context"
	"strings"
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/shopgrid/storefront-api/storefront"
)

// Store is the shared cache backing. Entries carry their own TTL; expired
// entries are purged once a minute.
type Store struct {
	c *gocache.Cache
}

// NewStore creates an empty shared cache.
func NewStore() *Store {
	return &Store{c: gocache.New(gocache.NoExpiration, time.Minute)}
}

// Wrap returns a storefront.Client that serves read operations from the
// shared cache with the given TTL, delegating misses to inner. Write-like
// and generation operations pass through untouched.
func (s *Store) Wrap(inner storefront.Client, ttl time.Duration) storefront.Client {
	return &client{inner: inner, store: s, ttl: ttl}
}

// invalidate drops every cached entry belonging to one domain.
func (s *Store) invalidate(domain string) {
	prefix := domain + "|"
	for key := range s.c.Items() {
		if strings.HasPrefix(key, prefix) {
			s.c.Delete(key)
		}
	}
}

func cached[T any](s *Store, key string, ttl time.Duration, fetch func() (T, error)) (T, error) {
	if v, ok := s.c.Get(key); ok {
		if t, ok := v.(T); ok {
			return t, nil
		}
	}

	t, err := fetch()
	if err != nil {
		var zero T
		return zero, err
	}

	s.c.Set(key, t, ttl)
	return t, nil
}

type client struct {
	inner storefront.Client
	store *Store
	ttl   time.Duration
}

func (c *client) Domain() string { return c.inner.Domain() }

func (c *client) Store() storefront.StoreService            { return storeService{c} }
func (c *client) Products() storefront.ProductService       { return productService{c} }
func (c *client) Collections() storefront.CollectionService { return collectionService{c} }
func (c *client) Checkout() storefront.CheckoutService      { return c.inner.Checkout() }
func (c *client) Utils() storefront.UtilService             { return c.inner.Utils() }

func (c *client) key(parts ...string) string {
	return c.inner.Domain() + "|" + strings.Join(parts, "|")
}

type storeService struct{ c *client }

func (s storeService) Info(ctx context.Context, force bool) (*storefront.StoreInfo, error) {
	key := s.c.key("store", "info")
	if force {
		s.c.store.c.Delete(key)
	}
	return cached(s.c.store, key, s.c.ttl, func() (*storefront.StoreInfo, error) {
		return s.c.inner.Store().Info(ctx, force)
	})
}

func (s storeService) ClearCache(ctx context.Context) error {
	s.c.store.invalidate(s.c.inner.Domain())
	return s.c.inner.Store().ClearCache(ctx)
}

func (s storeService) Classify(ctx context.Context, opts storefront.ModelOptions) (*storefront.StoreType, error) {
	return s.c.inner.Store().Classify(ctx, opts)
}

type productService struct{ c *client }

func (s productService) All(ctx context.Context) ([]storefront.Product, error) {
	return cached(s.c.store, s.c.key("products", "all"), s.c.ttl, func() ([]storefront.Product, error) {
		return s.c.inner.Products().All(ctx)
	})
}

func (s productService) Paginated(ctx context.Context, opts storefront.ListOptions) ([]storefront.ProductPage, error) {
	return s.c.inner.Products().Paginated(ctx, opts)
}

func (s productService) Showcased(ctx context.Context) ([]storefront.Product, error) {
	return cached(s.c.store, s.c.key("products", "showcased"), s.c.ttl, func() ([]storefront.Product, error) {
		return s.c.inner.Products().Showcased(ctx)
	})
}

func (s productService) Filters(ctx context.Context) ([]storefront.Filter, error) {
	return cached(s.c.store, s.c.key("products", "filters"), s.c.ttl, func() ([]storefront.Filter, error) {
		return s.c.inner.Products().Filters(ctx)
	})
}

func (s productService) ByHandle(ctx context.Context, handle, currency string) (*storefront.Product, error) {
	return cached(s.c.store, s.c.key("product", handle, currency), s.c.ttl, func() (*storefront.Product, error) {
		return s.c.inner.Products().ByHandle(ctx, handle, currency)
	})
}

func (s productService) Enrich(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.EnrichedProduct, error) {
	return s.c.inner.Products().Enrich(ctx, handle, opts)
}

func (s productService) Classify(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.ProductClassification, error) {
	return s.c.inner.Products().Classify(ctx, handle, opts)
}

func (s productService) SEO(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.SEOContent, error) {
	return s.c.inner.Products().SEO(ctx, handle, opts)
}

type collectionService struct{ c *client }

func (s collectionService) All(ctx context.Context) ([]storefront.Collection, error) {
	return cached(s.c.store, s.c.key("collections", "all"), s.c.ttl, func() ([]storefront.Collection, error) {
		return s.c.inner.Collections().All(ctx)
	})
}

func (s collectionService) Paginated(ctx context.Context, opts storefront.ListOptions) ([]storefront.CollectionPage, error) {
	return s.c.inner.Collections().Paginated(ctx, opts)
}

func (s collectionService) Showcased(ctx context.Context) ([]storefront.Collection, error) {
	return cached(s.c.store, s.c.key("collections", "showcased"), s.c.ttl, func() ([]storefront.Collection, error) {
		return s.c.inner.Collections().Showcased(ctx)
	})
}

func (s collectionService) ByHandle(ctx context.Context, handle string) (*storefront.Collection, error) {
	return cached(s.c.store, s.c.key("collection", handle), s.c.ttl, func() (*storefront.Collection, error) {
		return s.c.inner.Collections().ByHandle(ctx, handle)
	})
}

func (s collectionService) Products(ctx context.Context, handle string) ([]storefront.Product, error) {
	return cached(s.c.store, s.c.key("collection", handle, "products"), s.c.ttl, func() ([]storefront.Product, error) {
		return s.c.inner.Collections().Products(ctx, handle)
	})
}

func (s collectionService) ProductsPaginated(ctx context.Context, handle string, opts storefront.ListOptions) ([]storefront.ProductPage, error) {
	return s.c.inner.Collections().ProductsPaginated(ctx, handle, opts)
}

func (s collectionService) Slugs(ctx context.Context, handle string) ([]string, error) {
	return cached(s.c.store, s.c.key("collection", handle, "slugs"), s.c.ttl, func() ([]string, error) {
		return s.c.inner.Collections().Slugs(ctx, handle)
	})
}
