package routes

import (
	"context"
	"fmt"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/tenant"
)

type productListRequest struct {
	Domain string `header:"x-shop-domain"`
}

type productPageRequest struct {
	Domain   string `header:"x-shop-domain"`
	Page     int    `query:"page" minimum:"0"`
	Limit    int    `query:"limit" minimum:"0"`
	Currency string `query:"currency"`
}

type productRequest struct {
	Domain   string `header:"x-shop-domain"`
	Handle   string `path:"handle"`
	Currency string `query:"currency"`
}

type productModelRequest struct {
	Domain string `header:"x-shop-domain"`
	Handle string `path:"handle"`
	Body   storefront.ModelOptions
}

// Products registers the product capability group.
func Products(reg api.Registrar, tenants *tenant.Resolver) {
	api.Get(reg, "/products/all", func(ctx context.Context, req *productListRequest) (*[]storefront.Product, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		products, err := client.Products().All(ctx)
		if err != nil {
			return nil, err
		}
		return &products, nil
	}, api.WithTags("products"), api.WithSummary("List all products"))

	api.Get(reg, "/products/paginated", func(ctx context.Context, req *productPageRequest) (*[]storefront.ProductPage, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		pages, err := client.Products().Paginated(ctx, storefront.ListOptions{
			Page:     req.Page,
			Limit:    req.Limit,
			Currency: req.Currency,
		})
		if err != nil {
			return nil, err
		}
		return &pages, nil
	}, api.WithTags("products"), api.WithSummary("List products by page"))

	api.Get(reg, "/products/showcased", func(ctx context.Context, req *productListRequest) (*[]storefront.Product, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		products, err := client.Products().Showcased(ctx)
		if err != nil {
			return nil, err
		}
		return &products, nil
	}, api.WithTags("products"), api.WithSummary("List showcased products"))

	api.Get(reg, "/products/filters", func(ctx context.Context, req *productListRequest) (*[]storefront.Filter, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		filters, err := client.Products().Filters(ctx)
		if err != nil {
			return nil, err
		}
		return &filters, nil
	}, api.WithTags("products"), api.WithSummary("List product filters"))

	api.Get(reg, "/products/{handle}", func(ctx context.Context, req *productRequest) (*storefront.Product, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		product, err := client.Products().ByHandle(ctx, req.Handle, req.Currency)
		if err != nil {
			return nil, err
		}
		if product == nil {
			return nil, fmt.Errorf("%w: product %q", storefront.ErrNotFound, req.Handle)
		}
		return product, nil
	}, api.WithTags("products"), api.WithSummary("Get a product by handle"))

	api.Post(reg, "/products/{handle}/enriched", func(ctx context.Context, req *productModelRequest) (*storefront.EnrichedProduct, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		return client.Products().Enrich(ctx, req.Handle, req.Body)
	}, api.WithTags("products"), api.WithSummary("Enrich a product with generated copy"))

	api.Post(reg, "/products/{handle}/classify", func(ctx context.Context, req *productModelRequest) (*storefront.ProductClassification, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		return client.Products().Classify(ctx, req.Handle, req.Body)
	}, api.WithTags("products"), api.WithSummary("Classify a product"))

	api.Post(reg, "/products/{handle}/seo", func(ctx context.Context, req *productModelRequest) (*storefront.SEOContent, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		return client.Products().SEO(ctx, req.Handle, req.Body)
	}, api.WithTags("products"), api.WithSummary("Generate SEO content for a product"))
}
