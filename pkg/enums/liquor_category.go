package enums

import "fmt"

// LiquorCategory represents the liquor families the accompaniment rules
// dispatch on. Derived from product names, never persisted.
type LiquorCategory string

const (
	LiquorCategoryRon        LiquorCategory = "RON"
	LiquorCategoryTequila    LiquorCategory = "TEQUILA"
	LiquorCategoryBrandy     LiquorCategory = "BRANDY"
	LiquorCategoryWhisky     LiquorCategory = "WHISKY"
	LiquorCategoryVodka      LiquorCategory = "VODKA"
	LiquorCategoryGinebra    LiquorCategory = "GINEBRA"
	LiquorCategoryMezcal     LiquorCategory = "MEZCAL"
	LiquorCategoryCognac     LiquorCategory = "COGNAC"
	LiquorCategoryDigestivos LiquorCategory = "DIGESTIVOS"
	LiquorCategoryEspumosos  LiquorCategory = "ESPUMOSOS"
	LiquorCategoryOtro       LiquorCategory = "OTRO"
)

var validLiquorCategories = []LiquorCategory{
	LiquorCategoryRon,
	LiquorCategoryTequila,
	LiquorCategoryBrandy,
	LiquorCategoryWhisky,
	LiquorCategoryVodka,
	LiquorCategoryGinebra,
	LiquorCategoryMezcal,
	LiquorCategoryCognac,
	LiquorCategoryDigestivos,
	LiquorCategoryEspumosos,
	LiquorCategoryOtro,
}

// String implements fmt.Stringer.
func (c LiquorCategory) String() string {
	return string(c)
}

// IsValid reports whether the value is a known LiquorCategory.
func (c LiquorCategory) IsValid() bool {
	for _, candidate := range validLiquorCategories {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseLiquorCategory converts raw input into a LiquorCategory.
func ParseLiquorCategory(value string) (LiquorCategory, error) {
	for _, candidate := range validLiquorCategories {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid liquor category %q", value)
}
