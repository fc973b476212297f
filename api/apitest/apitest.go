// Package apitest provides typed test helpers for the api framework.
package apitest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopgrid/storefront-api/api"
)

// Client wraps an httptest.Server for convenient API testing.
type Client struct {
	Server  *httptest.Server
	headers http.Header
}

// ClientOption configures a Client.
type ClientOption func(*Client)

// WithDefaultHeader sets a header applied to every request the client sends.
func WithDefaultHeader(key, value string) ClientOption {
	return func(c *Client) {
		c.headers.Set(key, value)
	}
}

// NewClient creates a test client from a router.
func NewClient(t testing.TB, r *api.Router, opts ...ClientOption) *Client {
	t.Helper()
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)

	c := &Client{Server: srv, headers: make(http.Header)}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Option configures a single request.
type Option func(*http.Request)

// WithHeader sets a header on the request.
func WithHeader(key, value string) Option {
	return func(r *http.Request) {
		r.Header.Set(key, value)
	}
}

// Response holds a decoded API response.
type Response[T any] struct {
	Status  int
	Headers http.Header
	Body    *T
	Raw     *http.Response
}

// Get sends a typed GET request.
func Get[Resp any](t testing.TB, c *Client, path string, opts ...Option) *Response[Resp] {
	t.Helper()
	return do[Resp](t, c, http.MethodGet, path, nil, opts...)
}

// Post sends a typed POST request with a JSON body.
func Post[Req, Resp any](t testing.TB, c *Client, path string, body *Req, opts ...Option) *Response[Resp] {
	t.Helper()
	return do[Resp](t, c, http.MethodPost, path, body, opts...)
}

// Put sends a typed PUT request with a JSON body.
func Put[Req, Resp any](t testing.TB, c *Client, path string, body *Req, opts ...Option) *Response[Resp] {
	t.Helper()
	return do[Resp](t, c, http.MethodPut, path, body, opts...)
}

// Patch sends a typed PATCH request with a JSON body.
func Patch[Req, Resp any](t testing.TB, c *Client, path string, body *Req, opts ...Option) *Response[Resp] {
	t.Helper()
	return do[Resp](t, c, http.MethodPatch, path, body, opts...)
}

// Delete sends a typed DELETE request.
func Delete[Resp any](t testing.TB, c *Client, path string, opts ...Option) *Response[Resp] {
	t.Helper()
	return do[Resp](t, c, http.MethodDelete, path, nil, opts...)
}

func do[Resp any](t testing.TB, c *Client, method, path string, body any, opts ...Option) *Response[Resp] {
	t.Helper()

	var reqBody io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("apitest: marshal request body: %v", err)
		}
		reqBody = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(context.Background(), method, c.Server.URL+path, reqBody)
	if err != nil {
		t.Fatalf("apitest: create request: %v", err)
	}

	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	for key, vals := range c.headers {
		for _, v := range vals {
			req.Header.Set(key, v)
		}
	}
	for _, opt := range opts {
		opt(req)
	}

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatalf("apitest: execute request: %v", err)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			t.Errorf("apitest: close body: %v", closeErr)
		}
	}()

	result := &Response[Resp]{
		Status:  resp.StatusCode,
		Headers: resp.Header,
		Raw:     resp,
	}

	if resp.StatusCode != http.StatusNoContent && resp.ContentLength != 0 {
		var decoded Resp
		if decErr := json.NewDecoder(resp.Body).Decode(&decoded); decErr != nil && decErr != io.EOF {
			return result
		}
		result.Body = &decoded
	}

	return result
}
