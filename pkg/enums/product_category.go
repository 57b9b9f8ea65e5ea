package enums

import "fmt"

// ProductCategory represents the canonical catalog categories.
type ProductCategory string

const (
	ProductCategoryElectronics ProductCategory = "Electronics"
	ProductCategoryLifestyle   ProductCategory = "Lifestyle"
	ProductCategoryAccessories ProductCategory = "Accessories"
	ProductCategoryWellness    ProductCategory = "Wellness"
	ProductCategoryHome        ProductCategory = "Home"
)

// CategoryAll is the filter sentinel that matches every category. It is never
// stored on a product.
const CategoryAll = "All"

var validProductCategories = []ProductCategory{
	ProductCategoryElectronics,
	ProductCategoryLifestyle,
	ProductCategoryAccessories,
	ProductCategoryWellness,
	ProductCategoryHome,
}

// ProductCategories returns the full category set in display order.
func ProductCategories() []ProductCategory {
	out := make([]ProductCategory, len(validProductCategories))
	copy(out, validProductCategories)
	return out
}

// String implements fmt.Stringer.
func (c ProductCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known ProductCategory.
func (c ProductCategory) IsValid() bool {
	for _, candidate := range validProductCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseProductCategory converts raw input into a ProductCategory.
func ParseProductCategory(value string) (ProductCategory, error) {
	for _, candidate := range validProductCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product category %q", value)
}
