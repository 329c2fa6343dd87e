package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNavigate_ProductWithID(t *testing.T) {
	v := Navigate("product", "p42")
	assert.Equal(t, PageProduct, v.Page)
	assert.Equal(t, "p42", v.ProductID)
	assert.True(t, v.ScrollToTop)
}

func TestNavigate_ProductWithoutIDFallsBackToHome(t *testing.T) {
	v := Navigate("product", "")
	assert.Equal(t, PageHome, v.Page)
	assert.Empty(t, v.ProductID)
}

func TestNavigate_ShopWithQuery(t *testing.T) {
	v := Navigate("shop", "sneakers")
	assert.Equal(t, PageShop, v.Page)
	assert.Equal(t, "sneakers", v.SearchQuery)
	assert.Empty(t, v.ProductID)
	assert.True(t, v.ScrollToTop)
}

func TestNavigate_ShopWithoutQuery(t *testing.T) {
	v := Navigate("shop", "")
	assert.Equal(t, PageShop, v.Page)
	assert.Empty(t, v.SearchQuery)
}

func TestNavigate_UnknownPageFallsBackToHome(t *testing.T) {
	for _, page := range []string{"home", "", "checkout", "garbage"} {
		v := Navigate(page, "ignored")
		assert.Equal(t, PageHome, v.Page, "page token %q", page)
		assert.Empty(t, v.ProductID)
		assert.True(t, v.ScrollToTop)
	}
}
