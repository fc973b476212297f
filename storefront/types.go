package storefront

// StoreInfo is store-level metadata.
type StoreInfo struct {
	Name        string `json:"name"`
	Domain      string `json:"domain"`
	Country     string `json:"country,omitempty"`
	Currency    string `json:"currency,omitempty"`
	Description string `json:"description,omitempty"`
}

// StoreType is the result of store classification.
type StoreType struct {
	Vertical string `json:"vertical"`
	Audience string `json:"audience"`
}

// Product is a single storefront product.
type Product struct {
	ID          string   `json:"id"`
	Handle      string   `json:"handle"`
	Title       string   `json:"title"`
	Description string   `json:"description,omitempty"`
	Price       float64  `json:"price"`
	Currency    string   `json:"currency,omitempty"`
	Images      []string `json:"images,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Available   bool     `json:"available"`
}

// ProductPage is one page of a paginated product listing. The page and
// limit fields echo the values the listing was requested with.
type ProductPage struct {
	Page     int       `json:"page"`
	Limit    int       `json:"limit"`
	Products []Product `json:"products"`
	HasNext  bool      `json:"hasNext"`
}

// Filter is a product filter dimension with its possible values.
type Filter struct {
	Name   string   `json:"name"`
	Values []string `json:"values"`
}

// EnrichedProduct is a product augmented with generated marketing copy.
type EnrichedProduct struct {
	Product  Product  `json:"product"`
	Benefits []string `json:"benefits,omitempty"`
	Audience string   `json:"audience,omitempty"`
	Tone     string   `json:"tone,omitempty"`
}

// ProductClassification is the result of classifying a single product.
type ProductClassification struct {
	Category   string   `json:"category"`
	Tags       []string `json:"tags,omitempty"`
	Confidence float64  `json:"confidence"`
}

// SEOContent is generated SEO copy for a product.
type SEOContent struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords,omitempty"`
}

// Collection is a named grouping of products.
type Collection struct {
	ID          string `json:"id"`
	Handle      string `json:"handle"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Image       string `json:"image,omitempty"`
}

// CollectionPage is one page of a paginated collection listing.
type CollectionPage struct {
	Page        int          `json:"page"`
	Limit       int          `json:"limit"`
	Collections []Collection `json:"collections"`
	HasNext     bool         `json:"hasNext"`
}

// ModelOptions tunes generation-backed operations. Zero values mean the
// implementation's defaults.
type ModelOptions struct {
	Model       string  `json:"model,omitempty"`
	Temperature float64 `json:"temperature,omitempty"`
}

// ListOptions controls paginated listings. Zero values mean the
// implementation's defaults; Currency applies to product listings only.
type ListOptions struct {
	Page     int
	Limit    int
	Currency string
}

// Order is a checkout order payload. Constraint tags drive boundary
// validation when the order arrives as a request body.
type Order struct {
	Email   string      `json:"email" required:"true" format:"email"`
	Items   []OrderItem `json:"items" required:"true" minItems:"1"`
	Address Address     `json:"address"`
}

// OrderItem is a single line of an order. Quantity is a string on the
// wire.
type OrderItem struct {
	ProductVariantID string `json:"productVariantId" required:"true"`
	Quantity         string `json:"quantity" required:"true"`
}

// Address is a checkout shipping address.
type Address struct {
	FirstName string `json:"firstName" required:"true"`
	LastName  string `json:"lastName" required:"true"`
	Address1  string `json:"address1" required:"true"`
	City      string `json:"city" required:"true"`
	Zip       string `json:"zip" required:"true"`
	Country   string `json:"country" required:"true"`
	Province  string `json:"province" required:"true"`
	Phone     string `json:"phone" required:"true"`
}
