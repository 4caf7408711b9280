package enums

import "fmt"

// PriceTier defines the serving units a product is sold in.
type PriceTier string

const (
	PriceTierBottle PriceTier = "bottle"
	PriceTierLiter  PriceTier = "liter"
	PriceTierCup    PriceTier = "cup"
	PriceTierSingle PriceTier = "single"
)

var validPriceTiers = []PriceTier{
	PriceTierBottle,
	PriceTierLiter,
	PriceTierCup,
	PriceTierSingle,
}

// String implements fmt.Stringer.
func (p PriceTier) String() string {
	return string(p)
}

// IsValid reports whether the value matches a known PriceTier.
func (p PriceTier) IsValid() bool {
	for _, candidate := range validPriceTiers {
		if candidate == p {
			return true
		}
	}
	return false
}

// ParsePriceTier converts raw input into a PriceTier.
func ParsePriceTier(value string) (PriceTier, error) {
	for _, candidate := range validPriceTiers {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid price tier %q", value)
}

// Prefix returns the display prefix prepended to customized line item names.
func (p PriceTier) Prefix() string {
	switch p {
	case PriceTierBottle:
		return "Botella"
	case PriceTierLiter:
		return "Litro"
	case PriceTierCup:
		return "Copa"
	}
	return ""
}
