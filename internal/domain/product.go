package domain

// Product is a single catalog entry. Products are owned by the external
// product table; the storefront treats them as immutable and only ever
// copies them around.
type Product struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Price       int64  `json:"price"`
	Image       string `json:"image"`
	Description string `json:"description"`
}
