package routes_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/api/apitest"
	"github.com/shopgrid/storefront-api/routes"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/storefront/storefronttest"
	"github.com/shopgrid/storefront-api/tenant"
)

const testDomain = "mock.myshopify.com"

// newRouter mounts every builder over a resolver that hands out the given
// fake for any domain.
func newRouter(fake *storefronttest.Fake) *api.Router {
	r := api.New()
	resolver := tenant.NewResolver(func(string, tenant.Options) storefront.Client {
		return fake
	}, tenant.Options{})
	routes.Mount(r, resolver)
	return r
}

func validOrder() storefront.Order {
	return storefront.Order{
		Email: "buyer@example.com",
		Items: []storefront.OrderItem{
			{ProductVariantID: "v1", Quantity: "2"},
		},
		Address: storefront.Address{
			FirstName: "Ada",
			LastName:  "Lovelace",
			Address1:  "1 Main St",
			City:      "London",
			Zip:       "N1",
			Country:   "GB",
			Province:  "London",
			Phone:     "+4400000000",
		},
	}
}

type problem struct {
	Status int `json:"status"`
	Errors []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

func TestMissingTenantHeader_is_500_on_every_route(t *testing.T) {
	t.Parallel()

	// Requests are otherwise well-formed so the failure can only come from
	// tenant identification.
	order := validOrder()
	opts := storefront.ModelOptions{}

	tests := map[string]struct {
		method string
		path   string
		body   any
	}{
		"GET /info":                                    {http.MethodGet, "/info", nil},
		"POST /info/clear-cache":                       {http.MethodPost, "/info/clear-cache", nil},
		"POST /store-type":                             {http.MethodPost, "/store-type", &opts},
		"GET /products/all":                            {http.MethodGet, "/products/all", nil},
		"GET /products/paginated":                      {http.MethodGet, "/products/paginated?page=1&limit=5", nil},
		"GET /products/showcased":                      {http.MethodGet, "/products/showcased", nil},
		"GET /products/filters":                        {http.MethodGet, "/products/filters", nil},
		"GET /products/{handle}":                       {http.MethodGet, "/products/aurora-lamp", nil},
		"POST /products/{handle}/enriched":             {http.MethodPost, "/products/aurora-lamp/enriched", &opts},
		"POST /products/{handle}/classify":             {http.MethodPost, "/products/aurora-lamp/classify", &opts},
		"POST /products/{handle}/seo":                  {http.MethodPost, "/products/aurora-lamp/seo", &opts},
		"GET /collections/all":                         {http.MethodGet, "/collections/all", nil},
		"GET /collections/paginated":                   {http.MethodGet, "/collections/paginated", nil},
		"GET /collections/showcased":                   {http.MethodGet, "/collections/showcased", nil},
		"GET /collections/{handle}":                    {http.MethodGet, "/collections/featured", nil},
		"GET /collections/{handle}/products/all":       {http.MethodGet, "/collections/featured/products/all", nil},
		"GET /collections/{handle}/products/paginated": {http.MethodGet, "/collections/featured/products/paginated", nil},
		"GET /collections/{handle}/slugs":              {http.MethodGet, "/collections/featured/slugs", nil},
		"POST /checkout/url":                           {http.MethodPost, "/checkout/url", &order},
		"GET /utils/store-slug":                        {http.MethodGet, "/utils/store-slug", nil},
		"GET /utils/product-slug":                      {http.MethodGet, "/utils/product-slug?handle=aurora-lamp", nil},
		"GET /utils/detect-country":                    {http.MethodGet, "/utils/detect-country", nil},
	}

	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			t.Parallel()

			fake := storefronttest.New(testDomain)
			c := apitest.NewClient(t, newRouter(fake))

			var status int
			switch tc.method {
			case http.MethodGet:
				status = apitest.Get[problem](t, c, tc.path).Status
			case http.MethodPost:
				body := tc.body
				status = apitest.Post[any, problem](t, c, tc.path, &body).Status
			}

			assert.Equal(t, http.StatusInternalServerError, status)
		})
	}
}

func TestGetInfo_e2e(t *testing.T) {
	t.Parallel()

	fake := storefronttest.New(testDomain)
	fake.InfoFunc = func(_ context.Context, force bool) (*storefront.StoreInfo, error) {
		assert.False(t, force)
		return &storefront.StoreInfo{Name: "Mock Store", Domain: testDomain, Country: "US"}, nil
	}

	c := apitest.NewClient(t, newRouter(fake),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[storefront.StoreInfo](t, c, "/info")
	require.Equal(t, http.StatusOK, res.Status)
	require.NotNil(t, res.Body)
	assert.Equal(t, "Mock Store", res.Body.Name)
	assert.Equal(t, testDomain, res.Body.Domain)
	assert.Equal(t, "US", res.Body.Country)
}

func TestGetInfo_force_coerced_to_bool(t *testing.T) {
	t.Parallel()

	var gotForce bool
	fake := storefronttest.New(testDomain)
	fake.InfoFunc = func(_ context.Context, force bool) (*storefront.StoreInfo, error) {
		gotForce = force
		return &storefront.StoreInfo{Name: "Mock Store", Domain: testDomain}, nil
	}

	c := apitest.NewClient(t, newRouter(fake),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[storefront.StoreInfo](t, c, "/info?force=true")
	require.Equal(t, http.StatusOK, res.Status)
	assert.True(t, gotForce)
}

func TestProductsPaginated_query_coercion(t *testing.T) {
	t.Parallel()

	var got storefront.ListOptions
	fake := storefronttest.New(testDomain)
	fake.ProductsPaginatedFunc = func(_ context.Context, opts storefront.ListOptions) ([]storefront.ProductPage, error) {
		got = opts
		return []storefront.ProductPage{{Page: opts.Page, Limit: opts.Limit}}, nil
	}

	c := apitest.NewClient(t, newRouter(fake),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[[]storefront.ProductPage](t, c, "/products/paginated?page=2&limit=10")
	require.Equal(t, http.StatusOK, res.Status)

	assert.Equal(t, 2, got.Page, "page arrives at the delegate as a number")
	assert.Equal(t, 10, got.Limit)

	require.NotNil(t, res.Body)
	require.NotEmpty(t, *res.Body)
	assert.Equal(t, 2, (*res.Body)[0].Page)
}

func TestProductByHandle(t *testing.T) {
	t.Parallel()

	c := apitest.NewClient(t, newRouter(storefronttest.New(testDomain)),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	t.Run("found", func(t *testing.T) {
		t.Parallel()

		res := apitest.Get[storefront.Product](t, c, "/products/aurora-lamp?currency=EUR")
		require.Equal(t, http.StatusOK, res.Status)
		require.NotNil(t, res.Body)
		assert.Equal(t, "aurora-lamp", res.Body.Handle)
		assert.Equal(t, "EUR", res.Body.Currency)
	})

	t.Run("absent handle is an error, never a 200 with null", func(t *testing.T) {
		t.Parallel()

		res := apitest.Get[problem](t, c, "/products/no-such-product")
		assert.Equal(t, http.StatusInternalServerError, res.Status)
	})
}

func TestCollectionByHandle_absent_is_error(t *testing.T) {
	t.Parallel()

	c := apitest.NewClient(t, newRouter(storefronttest.New(testDomain)),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[problem](t, c, "/collections/no-such-collection")
	assert.Equal(t, http.StatusInternalServerError, res.Status)
}

func TestCheckoutURL(t *testing.T) {
	t.Parallel()

	t.Run("well-formed order", func(t *testing.T) {
		t.Parallel()

		fake := storefronttest.New(testDomain)
		fake.CheckoutURLFunc = func(_ context.Context, order storefront.Order) (string, error) {
			assert.Equal(t, "buyer@example.com", order.Email)
			require.Len(t, order.Items, 1)
			assert.Equal(t, "v1", order.Items[0].ProductVariantID)
			return "https://checkout.url", nil
		}

		c := apitest.NewClient(t, newRouter(fake),
			apitest.WithDefaultHeader("x-shop-domain", testDomain))

		order := validOrder()
		type urlResp struct {
			URL string `json:"url"`
		}
		res := apitest.Post[storefront.Order, urlResp](t, c, "/checkout/url", &order)
		require.Equal(t, http.StatusOK, res.Status)
		require.NotNil(t, res.Body)
		assert.Equal(t, "https://checkout.url", res.Body.URL)
	})

	t.Run("invalid order never reaches the delegate", func(t *testing.T) {
		t.Parallel()

		fake := storefronttest.New(testDomain)
		fake.CheckoutURLFunc = func(context.Context, storefront.Order) (string, error) {
			t.Error("delegate must not run on invalid input")
			return "", nil
		}

		c := apitest.NewClient(t, newRouter(fake),
			apitest.WithDefaultHeader("x-shop-domain", testDomain))

		order := validOrder()
		order.Email = "invalid-email"
		order.Items = nil

		res := apitest.Post[storefront.Order, problem](t, c, "/checkout/url", &order)
		require.Equal(t, http.StatusBadRequest, res.Status)
		require.NotNil(t, res.Body)

		fields := make([]string, 0, len(res.Body.Errors))
		for _, fe := range res.Body.Errors {
			fields = append(fields, fe.Field)
		}
		assert.Contains(t, fields, "body.email")
		assert.Contains(t, fields, "body.items")
	})
}

func TestClearCache_idempotent(t *testing.T) {
	t.Parallel()

	c := apitest.NewClient(t, newRouter(storefronttest.New(testDomain)),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	type successResp struct {
		Success bool `json:"success"`
	}

	for range 2 {
		res := apitest.Post[struct{}, successResp](t, c, "/info/clear-cache", nil)
		require.Equal(t, http.StatusOK, res.Status)
		require.NotNil(t, res.Body)
		assert.True(t, res.Body.Success)
	}
}

func TestProductSlug_requires_handle(t *testing.T) {
	t.Parallel()

	c := apitest.NewClient(t, newRouter(storefronttest.New(testDomain)),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[problem](t, c, "/utils/product-slug")
	require.Equal(t, http.StatusBadRequest, res.Status)
	require.NotNil(t, res.Body)
	require.NotEmpty(t, res.Body.Errors)
	assert.Equal(t, "handle", res.Body.Errors[0].Field,
		"the diagnostic names the query parameter as the client sends it")

	ok := apitest.Get[map[string]string](t, c, "/utils/product-slug?handle=aurora-lamp")
	require.Equal(t, http.StatusOK, ok.Status)
	require.NotNil(t, ok.Body)
	assert.Equal(t, "mock-aurora-lamp", (*ok.Body)["slug"])
}

func TestMount_duplicate_builder_panics(t *testing.T) {
	t.Parallel()

	r := api.New()
	resolver := tenant.NewResolver(func(domain string, _ tenant.Options) storefront.Client {
		return storefronttest.New(domain)
	}, tenant.Options{})

	routes.Mount(r, resolver)

	assert.Panics(t, func() {
		routes.Store(r, resolver)
	})
}

func TestUtils_detect_country(t *testing.T) {
	t.Parallel()

	c := apitest.NewClient(t, newRouter(storefronttest.New(testDomain)),
		apitest.WithDefaultHeader("x-shop-domain", testDomain))

	res := apitest.Get[map[string]string](t, c, "/utils/detect-country")
	require.Equal(t, http.StatusOK, res.Status)
	require.NotNil(t, res.Body)
	assert.Equal(t, "US", (*res.Body)["country"])
}
