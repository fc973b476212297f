package cache_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/storefront/cache"
	"github.com/shopgrid/storefront-api/storefront/storefronttest"
)

func countingFake(domain string, calls *int) *storefronttest.Fake {
	fake := storefronttest.New(domain)
	fake.InfoFunc = func(_ context.Context, _ bool) (*storefront.StoreInfo, error) {
		*calls++
		return &storefront.StoreInfo{Name: "Mock Store", Domain: domain}, nil
	}
	return fake
}

func TestWrap_caches_store_info(t *testing.T) {
	t.Parallel()

	var calls int
	store := cache.NewStore()
	client := store.Wrap(countingFake("mock.myshopify.com", &calls), time.Minute)

	ctx := context.Background()
	for range 3 {
		info, err := client.Store().Info(ctx, false)
		require.NoError(t, err)
		assert.Equal(t, "Mock Store", info.Name)
	}

	assert.Equal(t, 1, calls, "repeat reads within the TTL hit the cache")
}

func TestWrap_force_bypasses_cache(t *testing.T) {
	t.Parallel()

	var calls int
	store := cache.NewStore()
	client := store.Wrap(countingFake("mock.myshopify.com", &calls), time.Minute)

	ctx := context.Background()
	_, err := client.Store().Info(ctx, false)
	require.NoError(t, err)
	_, err = client.Store().Info(ctx, true)
	require.NoError(t, err)

	assert.Equal(t, 2, calls)
}

func TestWrap_clear_cache_invalidates_domain(t *testing.T) {
	t.Parallel()

	var calls int
	store := cache.NewStore()
	client := store.Wrap(countingFake("mock.myshopify.com", &calls), time.Minute)

	ctx := context.Background()
	_, err := client.Store().Info(ctx, false)
	require.NoError(t, err)

	require.NoError(t, client.Store().ClearCache(ctx))

	_, err = client.Store().Info(ctx, false)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "clear-cache drops the cached entry")
}

func TestWrap_cache_shared_across_handles_but_scoped_by_domain(t *testing.T) {
	t.Parallel()

	var aCalls, bCalls int
	store := cache.NewStore()
	ctx := context.Background()

	// Two handles for the same domain share one cache entry.
	h1 := store.Wrap(countingFake("a.myshopify.com", &aCalls), time.Minute)
	h2 := store.Wrap(countingFake("a.myshopify.com", &aCalls), time.Minute)
	_, err := h1.Store().Info(ctx, false)
	require.NoError(t, err)
	_, err = h2.Store().Info(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, 1, aCalls)

	// A different domain never sees the first domain's entries.
	other := store.Wrap(countingFake("b.myshopify.com", &bCalls), time.Minute)
	info, err := other.Store().Info(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "b.myshopify.com", info.Domain)
	assert.Equal(t, 1, bCalls)
}

func TestWrap_product_reads_cached(t *testing.T) {
	t.Parallel()

	var calls int
	fake := storefronttest.New("mock.myshopify.com")
	fake.ProductsAllFunc = func(_ context.Context) ([]storefront.Product, error) {
		calls++
		return []storefront.Product{{Handle: "aurora-lamp"}}, nil
	}

	store := cache.NewStore()
	client := store.Wrap(fake, time.Minute)

	ctx := context.Background()
	for range 2 {
		products, err := client.Products().All(ctx)
		require.NoError(t, err)
		require.Len(t, products, 1)
	}
	assert.Equal(t, 1, calls)
}

func TestWrap_passthrough_operations(t *testing.T) {
	t.Parallel()

	store := cache.NewStore()
	client := store.Wrap(storefronttest.New("mock.myshopify.com"), time.Minute)

	ctx := context.Background()

	url, err := client.Checkout().URL(ctx, storefront.Order{})
	require.NoError(t, err)
	assert.Equal(t, "https://mock.myshopify.com/checkout", url)

	slug, err := client.Utils().StoreSlug(ctx)
	require.NoError(t, err)
	assert.Equal(t, "mock", slug)
}
