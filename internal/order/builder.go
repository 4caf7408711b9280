package order

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/angelmondragon/cantina-pos-backend/internal/accompaniments"
	"github.com/angelmondragon/cantina-pos-backend/internal/selection"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
)

// Customer-facing ticket phrases.
const (
	customizationNone      = "Sin acompañamientos"
	customizationAllIn     = "Con todos los ingredientes"
	garnishStandard        = "Guarnición estándar"
	msgSelectAccompaniment = "Por favor seleccione al menos un acompañamiento"
	msgSelectCookingTerm   = "Por favor seleccione un término de cocción primero"
)

// mlSuffix strips the bottle volume from display names ("Bacardí 750 ML").
var mlSuffix = regexp.MustCompile(`(?i)\s*\d+\s*ML`)

// BuildLiquorItem renders the confirmed selection into a line item. The
// name takes the tier prefix and loses any ML suffix; the customization
// text follows the precedence boost, counted options, Ninguno, then the
// tier phrasing for single choices.
func BuildLiquorItem(name string, price float64, tier enums.PriceTier, state *selection.State) (LineItem, error) {
	if !state.HasSelection() {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, msgSelectAccompaniment)
	}

	displayName := strings.TrimSpace(mlSuffix.ReplaceAllString(name, ""))
	if prefix := tier.Prefix(); prefix != "" {
		displayName = prefix + " " + displayName
	}

	return LineItem{
		Name:           displayName,
		Price:          price,
		Customizations: []string{liquorCustomization(tier, state)},
	}, nil
}

func liquorCustomization(tier enums.PriceTier, state *selection.State) string {
	switch tier {
	case enums.PriceTierLiter:
		return "Mezclador: " + firstSelected(state)
	case enums.PriceTierCup:
		return "Estilo: " + firstSelected(state)
	}

	if state.HasBoost() {
		return "Con: " + accompaniments.OptionBoost
	}
	if counts := state.Counts(); len(counts) > 0 {
		parts := make([]string, 0, len(counts))
		for _, count := range counts {
			parts = append(parts, fmt.Sprintf("%dx %s", count.Count, count.Name))
		}
		return "Con: " + strings.Join(parts, ", ")
	}
	if state.HasNone() {
		return customizationNone
	}
	return "Con: " + strings.Join(state.Selected(), ", ")
}

func firstSelected(state *selection.State) string {
	if selected := state.Selected(); len(selected) > 0 {
		return selected[0]
	}
	return accompaniments.OptionNone
}

// BuildDirectBottleItem covers the bottles that skip customization
// entirely (HIPNOTIQ and BAILEYS digestivos, espumosos).
func BuildDirectBottleItem(name string, price float64) LineItem {
	return LineItem{
		Name:           "Botella " + name,
		Price:          price,
		Customizations: []string{customizationNone},
	}
}

// BuildBeverageItem covers plain beverages, which carry no customization.
func BuildBeverageItem(name string, price float64) LineItem {
	return LineItem{Name: name, Price: price, Customizations: []string{}}
}

// BuildFoodItem renders a food order. An empty removal list keeps all
// ingredients.
func BuildFoodItem(name string, price float64, removedIngredients string) LineItem {
	customization := customizationAllIn
	if trimmed := strings.TrimSpace(removedIngredients); trimmed != "" {
		customization = "Sin: " + trimmed
	}
	return LineItem{Name: name, Price: price, Customizations: []string{customization}}
}

// BuildMeatItem renders a meat order. The cooking term is mandatory and
// precedes the garnish customization.
func BuildMeatItem(name string, price float64, state *selection.State, garnishModifications string) (LineItem, error) {
	term, ok := state.CookingTerm()
	if !ok {
		return LineItem{}, pkgerrors.New(pkgerrors.CodeValidation, msgSelectCookingTerm)
	}

	garnish := garnishStandard
	if trimmed := strings.TrimSpace(garnishModifications); trimmed != "" {
		garnish = "Guarnición: " + trimmed
	}

	return LineItem{
		Name:           name,
		Price:          price,
		Customizations: []string{"Término: " + term.Display(), garnish},
	}, nil
}
