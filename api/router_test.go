package api_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopgrid/storefront-api/api"
)

func TestRouter_duplicate_route_panics(t *testing.T) {
	t.Parallel()

	handler := func(_ context.Context, _ *api.Void) (*api.Void, error) {
		return &api.Void{}, nil
	}

	r := api.New()
	api.Get(r, "/info", handler)

	assert.Panics(t, func() {
		api.Get(r, "/info", handler)
	})
}

func TestRouter_same_path_different_methods(t *testing.T) {
	t.Parallel()

	handler := func(_ context.Context, _ *api.Void) (*api.Void, error) {
		return &api.Void{}, nil
	}

	r := api.New()
	api.Get(r, "/info", handler)

	assert.NotPanics(t, func() {
		api.Post(r, "/info", handler)
	})
}

func TestRouter_literal_precedence_over_wildcard(t *testing.T) {
	t.Parallel()

	type resp struct {
		Route string `json:"route"`
	}

	r := api.New()
	api.Get(r, "/products/{handle}", func(_ context.Context, _ *api.Void) (*resp, error) {
		return &resp{Route: "wildcard"}, nil
	})
	api.Get(r, "/products/all", func(_ context.Context, _ *api.Void) (*resp, error) {
		return &resp{Route: "literal"}, nil
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	get := func(path string) string {
		req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+path, nil)
		require.NoError(t, err)
		res, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer func() { require.NoError(t, res.Body.Close()) }()

		require.Equal(t, http.StatusOK, res.StatusCode)
		var body resp
		require.NoError(t, json.NewDecoder(res.Body).Decode(&body))
		return body.Route
	}

	assert.Equal(t, "literal", get("/products/all"))
	assert.Equal(t, "wildcard", get("/products/aurora-lamp"))
}

func TestRouter_middleware_order(t *testing.T) {
	t.Parallel()

	var order []string

	mw := func(name string) api.Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	r := api.New()
	r.Use(mw("first"), mw("second"))
	api.Get(r, "/", func(_ context.Context, _ *api.Void) (*api.Void, error) {
		return &api.Void{}, nil
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, []string{"first", "second"}, order)
}

func TestRouter_Handle_raw(t *testing.T) {
	t.Parallel()

	r := api.New()
	r.Handle(http.MethodGet, "/raw", http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/raw", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, http.StatusTeapot, res.StatusCode)
}

func TestRouter_custom_error_handler(t *testing.T) {
	t.Parallel()

	r := api.New(api.WithErrorHandler(func(w http.ResponseWriter, _ *http.Request, err error) {
		http.Error(w, err.Error(), http.StatusBadGateway)
	}))
	api.Get(r, "/fail", func(_ context.Context, _ *api.Void) (*api.Void, error) {
		return nil, assert.AnError
	})

	srv := httptest.NewServer(r)
	defer srv.Close()

	req, err := http.NewRequestWithContext(context.Background(), http.MethodGet, srv.URL+"/fail", nil)
	require.NoError(t, err)
	res, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.NoError(t, res.Body.Close())

	assert.Equal(t, http.StatusBadGateway, res.StatusCode)
}
