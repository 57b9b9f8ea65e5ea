package catalog

import (
	"strings"

	"github.com/aura-commerce/ministore-backend/pkg/db/models"
	"github.com/aura-commerce/ministore-backend/pkg/enums"
)

// Filter narrows a product list by search term and category. The search term
// matches the product name case-insensitively; the "All" category (or an
// empty one) matches everything. Input order is preserved.
func Filter(products []models.Product, search string, category string) []models.Product {
	needle := strings.ToLower(strings.TrimSpace(search))
	matchAll := category == "" || category == enums.CategoryAll

	out := make([]models.Product, 0, len(products))
	for _, p := range products {
		if needle != "" && !strings.Contains(strings.ToLower(p.Name), needle) {
			continue
		}
		if !matchAll && string(p.Category) != category {
			continue
		}
		out = append(out, p)
	}
	return out
}
