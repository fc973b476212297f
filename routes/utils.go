package routes

import (
	"context"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/tenant"
)

type utilRequest struct {
	Domain string `header:"x-shop-domain"`
}

type productSlugRequest struct {
	Domain string `header:"x-shop-domain"`
	Handle string `query:"handle" required:"true"`
}

// Utils registers the domain utility capability group.
func Utils(reg api.Registrar, tenants *tenant.Resolver) {
	api.Get(reg, "/utils/store-slug", func(ctx context.Context, req *utilRequest) (*slugResponse, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		slug, err := client.Utils().StoreSlug(ctx)
		if err != nil {
			return nil, err
		}
		return &slugResponse{Slug: slug}, nil
	}, api.WithTags("utils"), api.WithSummary("Derive the store slug"))

	api.Get(reg, "/utils/product-slug", func(ctx context.Context, req *productSlugRequest) (*slugResponse, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		slug, err := client.Utils().ProductSlug(ctx, req.Handle)
		if err != nil {
			return nil, err
		}
		return &slugResponse{Slug: slug}, nil
	}, api.WithTags("utils"), api.WithSummary("Derive a product slug"))

	api.Get(reg, "/utils/detect-country", func(ctx context.Context, req *utilRequest) (*countryResponse, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		country, err := client.Utils().DetectCountry(ctx)
		if err != nil {
			return nil, err
		}
		return &countryResponse{Country: country}, nil
	}, api.WithTags("utils"), api.WithSummary("Detect the store's country"))
}
