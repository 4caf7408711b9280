package enums

import "fmt"

// CookingTerm captures the doneness choices for meat products.
type CookingTerm string

const (
	CookingTermMedio       CookingTerm = "medio"
	CookingTermTresCuartos CookingTerm = "tres-cuartos"
	CookingTermBienCocido  CookingTerm = "bien-cocido"
)

var validCookingTerms = []CookingTerm{
	CookingTermMedio,
	CookingTermTresCuartos,
	CookingTermBienCocido,
}

// String implements fmt.Stringer.
func (c CookingTerm) String() string {
	return string(c)
}

// IsValid reports whether the value matches a known CookingTerm.
func (c CookingTerm) IsValid() bool {
	for _, candidate := range validCookingTerms {
		if candidate == c {
			return true
		}
	}
	return false
}

// ParseCookingTerm converts raw input into a CookingTerm.
func ParseCookingTerm(value string) (CookingTerm, error) {
	for _, candidate := range validCookingTerms {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid cooking term %q", value)
}

// Display returns the ticket wording for the term.
func (c CookingTerm) Display() string {
	switch c {
	case CookingTermMedio:
		return "Término ½"
	case CookingTermTresCuartos:
		return "Término ¾"
	case CookingTermBienCocido:
		return "Bien Cocido"
	}
	return string(c)
}
