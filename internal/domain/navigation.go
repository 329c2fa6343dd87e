package domain

// Page identifies one of the storefront's three views.
type Page string

const (
	PageHome    Page = "home"
	PageShop    Page = "shop"
	PageProduct Page = "product"
)

// View is the resolved navigation target returned to the client.
type View struct {
	Page        Page   `json:"page"`
	ProductID   string `json:"product_id,omitempty"`
	SearchQuery string `json:"search_query,omitempty"`
	ScrollToTop bool   `json:"scroll_to_top"`
}

// Navigate maps a page token plus optional payload to a view. A product
// navigation needs a product id; a shop navigation carries an optional search
// query and clears any active product; every other token falls back to home.
// Every transition instructs the client to scroll to the top.
func Navigate(page, value string) View {
	switch {
	case page == string(PageProduct) && value != "":
		return View{Page: PageProduct, ProductID: value, ScrollToTop: true}
	case page == string(PageShop):
		return View{Page: PageShop, SearchQuery: value, ScrollToTop: true}
	default:
		return View{Page: PageHome, ScrollToTop: true}
	}
}
