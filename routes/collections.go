package routes

import (
	"context"
	"fmt"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/tenant"
)

type collectionListRequest struct {
	Domain string `header:"x-shop-domain"`
}

type collectionPageRequest struct {
	Domain string `header:"x-shop-domain"`
	Page   int    `query:"page" minimum:"0"`
	Limit  int    `query:"limit" minimum:"0"`
}

type collectionRequest struct {
	Domain string `header:"x-shop-domain"`
	Handle string `path:"handle"`
}

type collectionProductPageRequest struct {
	Domain string `header:"x-shop-domain"`
	Handle string `path:"handle"`
	Page   int    `query:"page" minimum:"0"`
	Limit  int    `query:"limit" minimum:"0"`
}

// Collections registers the collection capability group.
func Collections(reg api.Registrar, tenants *tenant.Resolver) {
	api.Get(reg, "/collections/all", func(ctx context.Context, req *collectionListRequest) (*[]storefront.Collection, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		collections, err := client.Collections().All(ctx)
		if err != nil {
			return nil, err
		}
		return &collections, nil
	}, api.WithTags("collections"), api.WithSummary("List all collections"))

	api.Get(reg, "/collections/paginated", func(ctx context.Context, req *collectionPageRequest) (*[]storefront.CollectionPage, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		pages, err := client.Collections().Paginated(ctx, storefront.ListOptions{
			Page:  req.Page,
			Limit: req.Limit,
		})
		if err != nil {
			return nil, err
		}
		return &pages, nil
	}, api.WithTags("collections"), api.WithSummary("List collections by page"))

	api.Get(reg, "/collections/showcased", func(ctx context.Context, req *collectionListRequest) (*[]storefront.Collection, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		collections, err := client.Collections().Showcased(ctx)
		if err != nil {
			return nil, err
		}
		return &collections, nil
	}, api.WithTags("collections"), api.WithSummary("List showcased collections"))

	api.Get(reg, "/collections/{handle}", func(ctx context.Context, req *collectionRequest) (*storefront.Collection, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		collection, err := client.Collections().ByHandle(ctx, req.Handle)
		if err != nil {
			return nil, err
		}
		if collection == nil {
			return nil, fmt.Errorf("%w: collection %q", storefront.ErrNotFound, req.Handle)
		}
		return collection, nil
	}, api.WithTags("collections"), api.WithSummary("Get a collection by handle"))

	api.Get(reg, "/collections/{handle}/products/all", func(ctx context.Context, req *collectionRequest) (*[]storefront.Product, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		products, err := client.Collections().Products(ctx, req.Handle)
		if err != nil {
			return nil, err
		}
		return &products, nil
	}, api.WithTags("collections"), api.WithSummary("List a collection's products"))

	api.Get(reg, "/collections/{handle}/products/paginated", func(ctx context.Context, req *collectionProductPageRequest) (*[]storefront.ProductPage, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		pages, err := client.Collections().ProductsPaginated(ctx, req.Handle, storefront.ListOptions{
			Page:  req.Page,
			Limit: req.Limit,
		})
		if err != nil {
			return nil, err
		}
		return &pages, nil
	}, api.WithTags("collections"), api.WithSummary("List a collection's products by page"))

	api.Get(reg, "/collections/{handle}/slugs", func(ctx context.Context, req *collectionRequest) (*[]string, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		slugs, err := client.Collections().Slugs(ctx, req.Handle)
		if err != nil {
			return nil, err
		}
		return &slugs, nil
	}, api.WithTags("collections"), api.WithSummary("List a collection's product slugs"))
}
