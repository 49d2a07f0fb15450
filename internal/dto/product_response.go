package dto

// ProductNameUnavailable is the reserved product name a fallback snapshot
// carries when the catalog service is unreachable. It signals "no real
// data" and must never be priced.
const ProductNameUnavailable = "Product Unavailable"

// ProductResponse is a point-in-time snapshot of catalog data used to price
// a single order. A nil Price marks an invalid or unavailable product.
type ProductResponse struct {
	ID          int      `json:"id"`
	ProductName string   `json:"productName"`
	Price       *float64 `json:"price"`
}

// IsFallback reports whether the snapshot is synthetic fallback data rather
// than a real catalog record.
func (p ProductResponse) IsFallback() bool {
	return p.ProductName == ProductNameUnavailable
}
