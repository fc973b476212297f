package routes

import (
	"context"

	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/storefront"
	"github.com/shopgrid/storefront-api/tenant"
)

type storeInfoRequest struct {
	Domain string `header:"x-shop-domain"`
	Force  bool   `query:"force" doc:"Bypass cached store data"`
}

type clearCacheRequest struct {
	Domain string `header:"x-shop-domain"`
}

type storeTypeRequest struct {
	Domain string `header:"x-shop-domain"`
	Body   storefront.ModelOptions
}

// Store registers the store-info capability group.
func Store(reg api.Registrar, tenants *tenant.Resolver) {
	api.Get(reg, "/info", func(ctx context.Context, req *storeInfoRequest) (*storefront.StoreInfo, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		return client.Store().Info(ctx, req.Force)
	}, api.WithTags("store"), api.WithSummary("Get store info"))

	api.Post(reg, "/info/clear-cache", func(ctx context.Context, req *clearCacheRequest) (*successResponse, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		if err := client.Store().ClearCache(ctx); err != nil {
			return nil, err
		}
		return &successResponse{Success: true}, nil
	}, api.WithTags("store"), api.WithSummary("Clear cached store data"))

	api.Post(reg, "/store-type", func(ctx context.Context, req *storeTypeRequest) (*storefront.StoreType, error) {
		client, err := tenants.Resolve(req.Domain)
		if err != nil {
			return nil, err
		}
		return client.Store().Classify(ctx, req.Body)
	}, api.WithTags("store"), api.WithSummary("Classify store vertical and audience"))
}
