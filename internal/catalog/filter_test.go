package catalog

import (
	"testing"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
	"github.com/stretchr/testify/assert"
)

func sampleProducts() []models.Product {
	return []models.Product{
		{Name: "Aura Pro Max Headphones", Category: enums.ProductCategoryElectronics},
		{Name: "Classic Chronograph Watch", Category: enums.ProductCategoryAccessories},
		{Name: "Ergo-Aluminum Laptop Stand", Category: enums.ProductCategoryElectronics},
		{Name: "Pro-Grip Yoga Mat", Category: enums.ProductCategoryWellness},
	}
}

func TestFilterBySearchTerm(t *testing.T) {
	got := Filter(sampleProducts(), "pro", "")
	names := productNames(got)
	assert.Equal(t, []string{"Aura Pro Max Headphones", "Pro-Grip Yoga Mat"}, names)
}

func TestFilterSearchIsCaseInsensitive(t *testing.T) {
	got := Filter(sampleProducts(), "CHRONOGRAPH", "")
	assert.Len(t, got, 1)
	assert.Equal(t, "Classic Chronograph Watch", got[0].Name)
}

func TestFilterByCategory(t *testing.T) {
	got := Filter(sampleProducts(), "", "Electronics")
	names := productNames(got)
	assert.Equal(t, []string{"Aura Pro Max Headphones", "Ergo-Aluminum Laptop Stand"}, names)
}

func TestFilterAllCategoryMatchesEverything(t *testing.T) {
	got := Filter(sampleProducts(), "", enums.CategoryAll)
	assert.Len(t, got, 4)
}

func TestFilterCombined(t *testing.T) {
	got := Filter(sampleProducts(), "pro", "Wellness")
	assert.Len(t, got, 1)
	assert.Equal(t, "Pro-Grip Yoga Mat", got[0].Name)
}

func TestFilterNoMatches(t *testing.T) {
	got := Filter(sampleProducts(), "submarine", "")
	assert.Empty(t, got)
	assert.NotNil(t, got)
}

func productNames(products []models.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}
	return names
}
