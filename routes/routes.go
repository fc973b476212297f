// Package routes defines the API's endpoint builders. Each builder is a
// pure factory over the shared tenant resolver, registering one capability
// group; any subset can be mounted, and registering two operations on the
// same method+path panics at construction time.
package routes

import (
	"github.com/shopgrid/storefront-api/api"
	"github.com/shopgrid/storefront-api/tenant"
)

// Mount registers every capability group on the registrar.
func Mount(reg api.Registrar, tenants *tenant.Resolver) {
	Store(reg, tenants)
	Products(reg, tenants)
	Collections(reg, tenants)
	Checkout(reg, tenants)
	Utils(reg, tenants)
}

// Thin success-shape wrappers.

type successResponse struct {
	Success bool `json:"success"`
}

type urlResponse struct {
	URL string `json:"url"`
}

type slugResponse struct {
	Slug string `json:"slug"`
}

type countryResponse struct {
	Country string `json:"country"`
}
