package order

import (
	"reflect"
	"testing"

	"github.com/angelmondragon/cantina-pos-backend/internal/accompaniments"
	"github.com/angelmondragon/cantina-pos-backend/internal/selection"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
)

func bottleState(t *testing.T, options []string, picks ...string) *selection.State {
	t.Helper()
	state := selection.New(accompaniments.OptionSet{
		Options: options,
		Policy:  accompaniments.PolicyDefault,
		Message: accompaniments.MessageDefault,
	})
	for _, option := range picks {
		if err := state.Increment(option); err != nil {
			t.Fatalf("increment %s: %v", option, err)
		}
	}
	return state
}

func TestBuildLiquorItemBottleCounts(t *testing.T) {
	state := bottleState(t, []string{"Mineral", "Coca"}, "Coca", "Mineral", "Coca")

	item, err := BuildLiquorItem("Bacardí Blanco 750 ML", 950, enums.PriceTierBottle, state)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Name != "Botella Bacardí Blanco" {
		t.Fatalf("unexpected name %q", item.Name)
	}
	want := []string{"Con: 2x Coca, 1x Mineral"}
	if !reflect.DeepEqual(item.Customizations, want) {
		t.Fatalf("unexpected customizations %v", item.Customizations)
	}
}

func TestBuildLiquorItemNinguno(t *testing.T) {
	state := selection.New(accompaniments.OptionSet{
		Options: []string{accompaniments.OptionNone},
		Policy:  accompaniments.PolicyDefault,
	})
	if err := state.Choose(accompaniments.OptionNone); err != nil {
		t.Fatalf("choose: %v", err)
	}

	item, err := BuildLiquorItem("Zambuca Clásico", 800, enums.PriceTierBottle, state)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Customizations[0] != "Sin acompañamientos" {
		t.Fatalf("unexpected customization %q", item.Customizations[0])
	}
}

func TestBuildLiquorItemBoost(t *testing.T) {
	state := selection.New(accompaniments.OptionSet{
		Options: []string{"Botella de Agua", "Mineral"},
		Policy:  accompaniments.PolicyJagerBottle,
	})
	if err := state.Choose(accompaniments.OptionBoost); err != nil {
		t.Fatalf("choose boost: %v", err)
	}

	item, err := BuildLiquorItem("Jägermeister 700 ML", 1100, enums.PriceTierBottle, state)
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if item.Name != "Botella Jägermeister" {
		t.Fatalf("unexpected name %q", item.Name)
	}
	if item.Customizations[0] != "Con: 2 Boost" {
		t.Fatalf("unexpected customization %q", item.Customizations[0])
	}
}

func TestBuildLiquorItemTierPhrasing(t *testing.T) {
	state := selection.New(accompaniments.OptionSet{
		Options: []string{"Paloma", "Derecho"},
		Policy:  accompaniments.PolicyExclusive,
	})
	if err := state.Choose("Paloma"); err != nil {
		t.Fatalf("choose: %v", err)
	}

	liter, err := BuildLiquorItem("Tequila Herradura", 600, enums.PriceTierLiter, state)
	if err != nil {
		t.Fatalf("build liter: %v", err)
	}
	if liter.Name != "Litro Tequila Herradura" {
		t.Fatalf("unexpected liter name %q", liter.Name)
	}
	if liter.Customizations[0] != "Mezclador: Paloma" {
		t.Fatalf("unexpected liter customization %q", liter.Customizations[0])
	}

	cup, err := BuildLiquorItem("Tequila Herradura", 90, enums.PriceTierCup, state)
	if err != nil {
		t.Fatalf("build cup: %v", err)
	}
	if cup.Customizations[0] != "Estilo: Paloma" {
		t.Fatalf("unexpected cup customization %q", cup.Customizations[0])
	}
}

func TestBuildLiquorItemRejectsEmptySelection(t *testing.T) {
	state := selection.New(accompaniments.OptionSet{
		Options: []string{"Mineral"},
		Policy:  accompaniments.PolicyDefault,
	})

	_, err := BuildLiquorItem("Ron Añejo", 500, enums.PriceTierBottle, state)
	if err == nil {
		t.Fatalf("expected rejection for empty selection")
	}
	appErr := pkgerrors.As(err)
	if appErr == nil || appErr.Message() != "Por favor seleccione al menos un acompañamiento" {
		t.Fatalf("unexpected error %v", err)
	}
}

func TestBuildDirectBottleItem(t *testing.T) {
	item := BuildDirectBottleItem("Moët & Chandon", 2400)
	if item.Name != "Botella Moët & Chandon" {
		t.Fatalf("unexpected name %q", item.Name)
	}
	if item.Customizations[0] != "Sin acompañamientos" {
		t.Fatalf("unexpected customization %q", item.Customizations[0])
	}
}

func TestBuildFoodItem(t *testing.T) {
	all := BuildFoodItem("Pizza Hawaiana", 220, "")
	if all.Customizations[0] != "Con todos los ingredientes" {
		t.Fatalf("unexpected customization %q", all.Customizations[0])
	}

	custom := BuildFoodItem("Pizza Hawaiana", 220, "  piña  ")
	if custom.Customizations[0] != "Sin: piña" {
		t.Fatalf("unexpected customization %q", custom.Customizations[0])
	}
}

func TestBuildMeatItem(t *testing.T) {
	state := selection.New(accompaniments.OptionSet{})

	if _, err := BuildMeatItem("Arrachera", 380, state, ""); err == nil {
		t.Fatalf("expected cooking term requirement")
	}

	state.SetCookingTerm(enums.CookingTermTresCuartos)
	item, err := BuildMeatItem("Arrachera", 380, state, "")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	want := []string{"Término: Término ¾", "Guarnición estándar"}
	if !reflect.DeepEqual(item.Customizations, want) {
		t.Fatalf("unexpected customizations %v", item.Customizations)
	}

	modified, err := BuildMeatItem("Arrachera", 380, state, "sin ensalada")
	if err != nil {
		t.Fatalf("build: %v", err)
	}
	if modified.Customizations[1] != "Guarnición: sin ensalada" {
		t.Fatalf("unexpected garnish %q", modified.Customizations[1])
	}
}
