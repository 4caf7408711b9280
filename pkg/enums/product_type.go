package enums

import "fmt"

// ProductType distinguishes the coarse catalog groups.
type ProductType string

const (
	ProductTypeLiquor   ProductType = "liquor"
	ProductTypeFood     ProductType = "food"
	ProductTypeBeverage ProductType = "beverage"
)

var validProductTypes = []ProductType{
	ProductTypeLiquor,
	ProductTypeFood,
	ProductTypeBeverage,
}

// String implements fmt.Stringer.
func (p ProductType) String() string {
	return string(p)
}

// IsValid reports whether the value matches a known ProductType.
func (p ProductType) IsValid() bool {
	for _, candidate := range validProductTypes {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParseProductType converts raw input into a ProductType.
func ParseProductType(value string) (ProductType, error) {
	for _, candidate := range validProductTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid product type %q", value)
}

// FoodCategoryMeat is the food category that requires a cooking term
// before garnish customization.
const FoodCategoryMeat = "carnes"
