// Package api is the typed endpoint registry behind the storefront service.
// Operations are expressed as Go types: request structs declare parameter
// binding and validation through struct tags, handlers never touch
// http.ResponseWriter or *http.Request, and the OpenAPI document is derived
// from the same metadata the dispatcher routes on.
//
// The handler signature:
//
//	type Handler[Req, Resp any] func(ctx context.Context, req *Req) (*Resp, error)
//
// Operations are registered with package-level generic functions:
//
//	r := api.New(api.WithTitle("Storefront API"), api.WithVersion("1.0.0"))
//	api.Get(r, "/products/{handle}", getProduct)
//	api.Post(r, "/checkout/url", checkoutURL)
//
// Request structs bind parameters with path/query/header tags and a Body
// field for JSON bodies. Query and header values are coerced from strings
// into the field's type, so `?page=2` arrives as int 2:
//
//	type listReq struct {
//	    Domain string `header:"x-shop-domain"`
//	    Page   int    `query:"page"`
//	    Limit  int    `query:"limit"`
//	}
//
// Registering two operations with the same method and pattern panics at
// construction time; the registry is immutable once serving.
package api
