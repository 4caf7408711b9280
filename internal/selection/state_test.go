package selection

import (
	"testing"

	"github.com/angelmondragon/cantina-pos-backend/internal/accompaniments"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
)

func defaultSet() accompaniments.OptionSet {
	return accompaniments.OptionSet{
		Options: []string{"Mineral", "Coca", "Manzana", "Ninguno"},
		Policy:  accompaniments.PolicyDefault,
		Message: accompaniments.MessageDefault,
	}
}

func specialSet() accompaniments.OptionSet {
	return accompaniments.OptionSet{
		Options: []string{"Jugo de Uva", "Jugo de Mango", "Mineral", "Quina"},
		Policy:  accompaniments.PolicySpecialBottle,
		Message: accompaniments.MessageSpecial,
	}
}

func jagerSet() accompaniments.OptionSet {
	return accompaniments.OptionSet{
		Options: []string{"Botella de Agua", "Mineral"},
		Policy:  accompaniments.PolicyJagerBottle,
		Message: accompaniments.MessageJager,
	}
}

func TestIncrementPreservesInsertionOrder(t *testing.T) {
	state := New(defaultSet())
	for _, option := range []string{"Coca", "Mineral", "Coca", "Manzana"} {
		if err := state.Increment(option); err != nil {
			t.Fatalf("increment %s: %v", option, err)
		}
	}

	counts := state.Counts()
	if len(counts) != 3 {
		t.Fatalf("expected 3 counted options, got %d", len(counts))
	}
	wantOrder := []string{"Coca", "Mineral", "Manzana"}
	for i, want := range wantOrder {
		if counts[i].Name != want {
			t.Fatalf("position %d: got %s, want %s", i, counts[i].Name, want)
		}
	}
	if counts[0].Count != 2 {
		t.Fatalf("expected Coca count 2, got %d", counts[0].Count)
	}
}

func TestIncrementRejectsBeyondCap(t *testing.T) {
	state := New(defaultSet())
	for i := 0; i < 5; i++ {
		if err := state.Increment("Mineral"); err != nil {
			t.Fatalf("increment %d: %v", i, err)
		}
	}

	err := state.Increment("Mineral")
	if err == nil {
		t.Fatalf("expected rejection past the cap")
	}
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Code() != pkgerrors.CodeStateConflict {
		t.Fatalf("expected state conflict, got %v", err)
	}
	if got := state.DisplayTotal(); got != 5 {
		t.Fatalf("rejected increment must not change the total, got %d", got)
	}
}

func TestIncrementRejectsUnknownOption(t *testing.T) {
	state := New(defaultSet())
	if err := state.Increment("Refresco Inventado"); err == nil {
		t.Fatalf("expected rejection for option outside the set")
	}
	if err := state.Increment("Ninguno"); err == nil {
		t.Fatalf("Ninguno is chosen, never counted")
	}
}

func TestDecrementFloorsAtZeroAndDropsOption(t *testing.T) {
	state := New(defaultSet())
	if err := state.Increment("Coca"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	state.Decrement("Coca")
	state.Decrement("Coca")

	if len(state.Counts()) != 0 {
		t.Fatalf("expected empty counts after draining, got %v", state.Counts())
	}
	if state.HasSelection() {
		t.Fatalf("drained selection must not be confirmable")
	}
}

func TestChooseNoneClearsCounts(t *testing.T) {
	state := New(defaultSet())
	if err := state.Increment("Coca"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	if err := state.Choose("Ninguno"); err != nil {
		t.Fatalf("choose: %v", err)
	}

	if !state.HasNone() {
		t.Fatalf("expected Ninguno sentinel")
	}
	if len(state.Counts()) != 0 {
		t.Fatalf("choosing Ninguno must clear counts")
	}
	if got := state.DisplayTotal(); got != 0 {
		t.Fatalf("expected zero total, got %d", got)
	}
}

func TestSpecialBottleWeightedTotal(t *testing.T) {
	state := New(specialSet())
	if err := state.Increment("Jugo de Uva"); err != nil {
		t.Fatalf("increment juice: %v", err)
	}
	if got := state.DisplayTotal(); got != 2 {
		t.Fatalf("juices weigh double, got %d", got)
	}

	// Two juices and no sodas is a complete shape: a third pick of any
	// soda must be rejected.
	if err := state.Increment("Jugo de Uva"); err != nil {
		t.Fatalf("second juice: %v", err)
	}
	if err := state.Increment("Mineral"); err == nil {
		t.Fatalf("sodas are locked out after two juices")
	}
}

func TestJagerBoostExclusivity(t *testing.T) {
	state := New(jagerSet())
	if err := state.Increment("Mineral"); err != nil {
		t.Fatalf("increment: %v", err)
	}

	err := state.Choose("2 Boost")
	if err == nil {
		t.Fatalf("boost requires zero sodas")
	}
	if appErr := pkgerrors.As(err); appErr == nil || appErr.Message() != "Para seleccionar los Boost debe dejar los refrescos en 0" {
		t.Fatalf("unexpected rejection: %v", err)
	}

	state.Decrement("Mineral")
	if err := state.Choose("2 Boost"); err != nil {
		t.Fatalf("choose boost: %v", err)
	}
	if !state.HasBoost() {
		t.Fatalf("expected boost sentinel")
	}
	if got := state.DisplayTotal(); got != 0 {
		t.Fatalf("boost zeroes the displayed total, got %d", got)
	}

	// Counting a soda again drops the boost.
	if err := state.Increment("Mineral"); err != nil {
		t.Fatalf("increment after boost: %v", err)
	}
	if state.HasBoost() {
		t.Fatalf("incrementing must clear the boost sentinel")
	}
}

func TestExclusiveChoiceReplacesPrevious(t *testing.T) {
	set := accompaniments.OptionSet{
		Options: []string{"Toronja", "Mineral", "Paloma"},
		Policy:  accompaniments.PolicyExclusive,
		Message: accompaniments.MessageLiter,
	}
	state := New(set)

	if err := state.Increment("Toronja"); err == nil {
		t.Fatalf("exclusive sets have no counters")
	}
	if err := state.Choose("Toronja"); err != nil {
		t.Fatalf("choose: %v", err)
	}
	if err := state.Choose("Paloma"); err != nil {
		t.Fatalf("re-choose: %v", err)
	}

	selected := state.Selected()
	if len(selected) != 1 || selected[0] != "Paloma" {
		t.Fatalf("expected single choice Paloma, got %v", selected)
	}
}

func TestResetClearsEverything(t *testing.T) {
	state := New(defaultSet())
	if err := state.Increment("Coca"); err != nil {
		t.Fatalf("increment: %v", err)
	}
	state.SetCookingTerm(enums.CookingTermMedio)
	state.Reset()

	if state.HasSelection() {
		t.Fatalf("expected empty selection after reset")
	}
	if _, ok := state.CookingTerm(); ok {
		t.Fatalf("expected cooking term cleared")
	}
}
