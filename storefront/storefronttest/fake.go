// Package storefronttest provides a configurable in-memory implementation
// of storefront.Client for tests and for the dev server.
package storefronttest

import (
	"context"
	"strings"

	"github.com/shopgrid/storefront-api/storefront"
)

// Fake implements storefront.Client. Every operation is overridable via a
// function field; unset fields fall back to a small canned catalog, so a
// zero-configured Fake behaves like a real (if tiny) store.
type Fake struct {
	StoreDomain string

	InfoFunc          func(ctx context.Context, force bool) (*storefront.StoreInfo, error)
	ClearCacheFunc    func(ctx context.Context) error
	ClassifyStoreFunc func(ctx context.Context, opts storefront.ModelOptions) (*storefront.StoreType, error)

	ProductsAllFunc       func(ctx context.Context) ([]storefront.Product, error)
	ProductsPaginatedFunc func(ctx context.Context, opts storefront.ListOptions) ([]storefront.ProductPage, error)
	ProductsShowcasedFunc func(ctx context.Context) ([]storefront.Product, error)
	ProductFiltersFunc    func(ctx context.Context) ([]storefront.Filter, error)
	ProductByHandleFunc   func(ctx context.Context, handle, currency string) (*storefront.Product, error)
	ProductEnrichFunc     func(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.EnrichedProduct, error)
	ProductClassifyFunc   func(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.ProductClassification, error)
	ProductSEOFunc        func(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.SEOContent, error)

	CollectionsAllFunc       func(ctx context.Context) ([]storefront.Collection, error)
	CollectionsPaginatedFunc func(ctx context.Context, opts storefront.ListOptions) ([]storefront.CollectionPage, error)
	CollectionsShowcasedFunc func(ctx context.Context) ([]storefront.Collection, error)
	CollectionByHandleFunc   func(ctx context.Context, handle string) (*storefront.Collection, error)
	CollectionProductsFunc   func(ctx context.Context, handle string) ([]storefront.Product, error)
	CollectionProdPagedFunc  func(ctx context.Context, handle string, opts storefront.ListOptions) ([]storefront.ProductPage, error)
	CollectionSlugsFunc      func(ctx context.Context, handle string) ([]string, error)

	CheckoutURLFunc func(ctx context.Context, order storefront.Order) (string, error)

	StoreSlugFunc     func(ctx context.Context) (string, error)
	ProductSlugFunc   func(ctx context.Context, handle string) (string, error)
	DetectCountryFunc func(ctx context.Context) (string, error)
}

var _ storefront.Client = (*Fake)(nil)

// New returns a Fake bound to the given domain.
func New(domain string) *Fake {
	return &Fake{StoreDomain: domain}
}

// Domain returns the store domain this fake is bound to.
func (f *Fake) Domain() string { return f.StoreDomain }

func (f *Fake) Store() storefront.StoreService            { return storeService{f} }
func (f *Fake) Products() storefront.ProductService       { return productService{f} }
func (f *Fake) Collections() storefront.CollectionService { return collectionService{f} }
func (f *Fake) Checkout() storefront.CheckoutService      { return checkoutService{f} }
func (f *Fake) Utils() storefront.UtilService             { return utilService{f} }

// Canned catalog used whenever a function field is unset.
var (
	catalogProducts = []storefront.Product{
		{
			ID: "p1", Handle: "aurora-lamp", Title: "Aurora Lamp",
			Description: "Dimmable bedside lamp.",
			Price:       49.00, Currency: "USD",
			Tags: []string{"lighting", "featured"}, Available: true,
		},
		{
			ID: "p2", Handle: "basalt-mug", Title: "Basalt Mug",
			Description: "Stoneware mug, 350ml.",
			Price:       18.50, Currency: "USD",
			Tags: []string{"kitchen"}, Available: true,
		},
		{
			ID: "p3", Handle: "cedar-candle", Title: "Cedar Candle",
			Description: "Hand-poured cedarwood candle.",
			Price:       24.00, Currency: "USD",
			Tags: []string{"home", "featured"}, Available: false,
		},
	}

	catalogCollections = []storefront.Collection{
		{ID: "c1", Handle: "featured", Title: "Featured"},
		{ID: "c2", Handle: "new-arrivals", Title: "New Arrivals"},
	}
)

type storeService struct{ f *Fake }

func (s storeService) Info(ctx context.Context, force bool) (*storefront.StoreInfo, error) {
	if s.f.InfoFunc != nil {
		return s.f.InfoFunc(ctx, force)
	}
	return &storefront.StoreInfo{
		Name:     "Demo Store",
		Domain:   s.f.StoreDomain,
		Country:  "US",
		Currency: "USD",
	}, nil
}

func (s storeService) ClearCache(ctx context.Context) error {
	if s.f.ClearCacheFunc != nil {
		return s.f.ClearCacheFunc(ctx)
	}
	return nil
}

func (s storeService) Classify(ctx context.Context, opts storefront.ModelOptions) (*storefront.StoreType, error) {
	if s.f.ClassifyStoreFunc != nil {
		return s.f.ClassifyStoreFunc(ctx, opts)
	}
	return &storefront.StoreType{Vertical: "home-goods", Audience: "consumer"}, nil
}

type productService struct{ f *Fake }

func (s productService) All(ctx context.Context) ([]storefront.Product, error) {
	if s.f.ProductsAllFunc != nil {
		return s.f.ProductsAllFunc(ctx)
	}
	return catalogProducts, nil
}

func (s productService) Paginated(ctx context.Context, opts storefront.ListOptions) ([]storefront.ProductPage, error) {
	if s.f.ProductsPaginatedFunc != nil {
		return s.f.ProductsPaginatedFunc(ctx, opts)
	}
	return []storefront.ProductPage{{
		Page:     opts.Page,
		Limit:    opts.Limit,
		Products: catalogProducts,
		HasNext:  false,
	}}, nil
}

func (s productService) Showcased(ctx context.Context) ([]storefront.Product, error) {
	if s.f.ProductsShowcasedFunc != nil {
		return s.f.ProductsShowcasedFunc(ctx)
	}
	var out []storefront.Product
	for _, p := range catalogProducts {
		for _, tag := range p.Tags {
			if tag == "featured" {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (s productService) Filters(ctx context.Context) ([]storefront.Filter, error) {
	if s.f.ProductFiltersFunc != nil {
		return s.f.ProductFiltersFunc(ctx)
	}
	return []storefront.Filter{
		{Name: "availability", Values: []string{"in-stock", "sold-out"}},
		{Name: "tag", Values: []string{"lighting", "kitchen", "home", "featured"}},
	}, nil
}

func (s productService) ByHandle(ctx context.Context, handle, currency string) (*storefront.Product, error) {
	if s.f.ProductByHandleFunc != nil {
		return s.f.ProductByHandleFunc(ctx, handle, currency)
	}
	for _, p := range catalogProducts {
		if p.Handle == handle {
			if currency != "" {
				p.Currency = currency
			}
			return &p, nil
		}
	}
	return nil, nil
}

func (s productService) Enrich(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.EnrichedProduct, error) {
	if s.f.ProductEnrichFunc != nil {
		return s.f.ProductEnrichFunc(ctx, handle, opts)
	}
	p, err := s.ByHandle(ctx, handle, "")
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, storefront.ErrNotFound
	}
	return &storefront.EnrichedProduct{
		Product:  *p,
		Benefits: []string{"durable", "ships fast"},
		Audience: "consumer",
	}, nil
}

func (s productService) Classify(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.ProductClassification, error) {
	if s.f.ProductClassifyFunc != nil {
		return s.f.ProductClassifyFunc(ctx, handle, opts)
	}
	p, err := s.ByHandle(ctx, handle, "")
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, storefront.ErrNotFound
	}
	return &storefront.ProductClassification{
		Category:   "home-goods",
		Tags:       p.Tags,
		Confidence: 0.9,
	}, nil
}

func (s productService) SEO(ctx context.Context, handle string, opts storefront.ModelOptions) (*storefront.SEOContent, error) {
	if s.f.ProductSEOFunc != nil {
		return s.f.ProductSEOFunc(ctx, handle, opts)
	}
	p, err := s.ByHandle(ctx, handle, "")
	if err != nil {
		return nil, err
	}
	if p == nil {
		return nil, storefront.ErrNotFound
	}
	return &storefront.SEOContent{
		Title:       p.Title,
		Description: p.Description,
		Keywords:    p.Tags,
	}, nil
}

type collectionService struct{ f *Fake }

func (s collectionService) All(ctx context.Context) ([]storefront.Collection, error) {
	if s.f.CollectionsAllFunc != nil {
		return s.f.CollectionsAllFunc(ctx)
	}
	return catalogCollections, nil
}

func (s collectionService) Paginated(ctx context.Context, opts storefront.ListOptions) ([]storefront.CollectionPage, error) {
	if s.f.CollectionsPaginatedFunc != nil {
		return s.f.CollectionsPaginatedFunc(ctx, opts)
	}
	return []storefront.CollectionPage{{
		Page:        opts.Page,
		Limit:       opts.Limit,
		Collections: catalogCollections,
		HasNext:     false,
	}}, nil
}

func (s collectionService) Showcased(ctx context.Context) ([]storefront.Collection, error) {
	if s.f.CollectionsShowcasedFunc != nil {
		return s.f.CollectionsShowcasedFunc(ctx)
	}
	return catalogCollections[:1], nil
}

func (s collectionService) ByHandle(ctx context.Context, handle string) (*storefront.Collection, error) {
	if s.f.CollectionByHandleFunc != nil {
		return s.f.CollectionByHandleFunc(ctx, handle)
	}
	for _, c := range catalogCollections {
		if c.Handle == handle {
			return &c, nil
		}
	}
	return nil, nil
}

func (s collectionService) Products(ctx context.Context, handle string) ([]storefront.Product, error) {
	if s.f.CollectionProductsFunc != nil {
		return s.f.CollectionProductsFunc(ctx, handle)
	}
	return catalogProducts, nil
}

func (s collectionService) ProductsPaginated(ctx context.Context, handle string, opts storefront.ListOptions) ([]storefront.ProductPage, error) {
	if s.f.CollectionProdPagedFunc != nil {
		return s.f.CollectionProdPagedFunc(ctx, handle, opts)
	}
	return []storefront.ProductPage{{
		Page:     opts.Page,
		Limit:    opts.Limit,
		Products: catalogProducts,
		HasNext:  false,
	}}, nil
}

func (s collectionService) Slugs(ctx context.Context, handle string) ([]string, error) {
	if s.f.CollectionSlugsFunc != nil {
		return s.f.CollectionSlugsFunc(ctx, handle)
	}
	var slugs []string
	for _, p := range catalogProducts {
		slugs = append(slugs, p.Handle)
	}
	return slugs, nil
}

type checkoutService struct{ f *Fake }

func (s checkoutService) URL(ctx context.Context, order storefront.Order) (string, error) {
	if s.f.CheckoutURLFunc != nil {
		return s.f.CheckoutURLFunc(ctx, order)
	}
	return "https://" + s.f.StoreDomain + "/checkout", nil
}

type utilService struct{ f *Fake }

func (s utilService) StoreSlug(ctx context.Context) (string, error) {
	if s.f.StoreSlugFunc != nil {
		return s.f.StoreSlugFunc(ctx)
	}
	return storeSlug(s.f.StoreDomain), nil
}

func (s utilService) ProductSlug(ctx context.Context, handle string) (string, error) {
	if s.f.ProductSlugFunc != nil {
		return s.f.ProductSlugFunc(ctx, handle)
	}
	return storeSlug(s.f.StoreDomain) + "-" + handle, nil
}

func (s utilService) DetectCountry(ctx context.Context) (string, error) {
	if s.f.DetectCountryFunc != nil {
		return s.f.DetectCountryFunc(ctx)
	}
	return "US", nil
}

// storeSlug derives a slug from a store domain: strip scheme and port,
// drop the shared platform suffix, keep the first label otherwise.
func storeSlug(domain string) string {
	d := strings.TrimPrefix(domain, "https://")
	d = strings.TrimPrefix(d, "http://")
	if host, _, ok := strings.Cut(d, ":"); ok {
		d = host
	}
	if slug, ok := strings.CutSuffix(d, ".myshopify.com"); ok {
		return slug
	}
	slug, _, _ := strings.Cut(d, ".")
	return slug
}
