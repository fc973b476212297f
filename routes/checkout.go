package routes

import (
	"context"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/tenant"
)

type checkoutRequest struct {
	Domain string `header:"x-shop-domain"`
	Body   storefront.Order
}

// Checkout registers the checkout capability group. The order body is
// validated at the boundary; the handler never runs on a malformed order.
func Checkout(reg api.Registrar, tenants *tenant.Resolver) {
	api.Post(reg, "/checkout/url", func(ctx context.Context, req *checkoutRequest) (*urlResponse, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		url, err := client.Checkout().URL(ctx, req.Body)
		if err != nil {
			return nil, err
		}
		return &urlResponse{URL: url}, nil
	}, api.WithTags("checkout"), api.WithSummary("Build a checkout URL from an order"))
}
