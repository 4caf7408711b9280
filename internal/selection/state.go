package selection

import (
	"github.com/angelmondragon/cantina-pos-backend/internal/accompaniments"
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	pkgerrors "github.com/angelmondragon/cantina-pos-backend/pkg/errors"
)

// Spanish rejection messages surfaced to clients.
const (
	msgBoostNeedsZeroSodas = "Para seleccionar los Boost debe dejar los refrescos en 0"
	msgLimitReached        = "Límite de acompañamientos alcanzado"
	msgUnknownOption       = "Opción no disponible para este producto"
)

// OptionCount is one counted accompaniment. Insertion order is preserved
// because the ticket text lists options in the order they were picked.
type OptionCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// State tracks one in-progress product customization. Not safe for
// concurrent use; the owning session serializes access.
type State struct {
	set         accompaniments.OptionSet
	order       []string
	counts      map[string]int
	selected    []string
	cookingTerm *enums.CookingTerm
}

// New starts a selection against the resolved option set.
func New(set accompaniments.OptionSet) *State {
	return &State{
		set:    set,
		counts: make(map[string]int),
	}
}

// Set returns the option set backing this selection.
func (s *State) Set() accompaniments.OptionSet {
	return s.set
}

func (s *State) hasOption(option string) bool {
	for _, candidate := range s.set.Options {
		if candidate == option {
			return true
		}
	}
	return false
}

// Increment adds one unit of option. Illegal increments leave the state
// untouched and return a rejection the caller can surface.
func (s *State) Increment(option string) error {
	if !s.hasOption(option) || option == accompaniments.OptionNone {
		return pkgerrors.New(pkgerrors.CodeValidation, msgUnknownOption)
	}
	if s.set.Policy == accompaniments.PolicyExclusive {
		return pkgerrors.New(pkgerrors.CodeValidation, msgUnknownOption)
	}

	// Picking a counter drops any exclusive sentinel first.
	s.clearSentinels()

	juices, sodas := s.Totals()
	if !accompaniments.CanIncrement(s.set.Policy, option, juices, sodas) {
		return pkgerrors.New(pkgerrors.CodeStateConflict, msgLimitReached)
	}

	if _, seen := s.counts[option]; !seen {
		s.order = append(s.order, option)
	}
	s.counts[option]++
	return nil
}

// Decrement removes one unit of option, flooring at zero. Options that
// reach zero drop out of the ordered list.
func (s *State) Decrement(option string) {
	s.clearSentinels()
	count, ok := s.counts[option]
	if !ok || count == 0 {
		return
	}
	if count == 1 {
		delete(s.counts, option)
		for i, name := range s.order {
			if name == option {
				s.order = append(s.order[:i], s.order[i+1:]...)
				break
			}
		}
		return
	}
	s.counts[option] = count - 1
}

// Choose picks an exclusive option: the single liter/cup serving style,
// Ninguno, or the Jäger boost. Choosing clears all counts.
func (s *State) Choose(option string) error {
	switch {
	case option == accompaniments.OptionBoost && s.set.Policy == accompaniments.PolicyJagerBottle:
		if _, sodas := s.Totals(); sodas > 0 {
			return pkgerrors.New(pkgerrors.CodeStateConflict, msgBoostNeedsZeroSodas)
		}
	case option == accompaniments.OptionNone && s.hasOption(accompaniments.OptionNone):
	case s.set.Policy == accompaniments.PolicyExclusive && s.hasOption(option):
	default:
		return pkgerrors.New(pkgerrors.CodeValidation, msgUnknownOption)
	}

	s.resetCounts()
	s.selected = []string{option}
	return nil
}

// SetCookingTerm records the doneness choice for meat products.
func (s *State) SetCookingTerm(term enums.CookingTerm) {
	s.cookingTerm = &term
}

// CookingTerm returns the chosen term, if any.
func (s *State) CookingTerm() (enums.CookingTerm, bool) {
	if s.cookingTerm == nil {
		return "", false
	}
	return *s.cookingTerm, true
}

// Counts returns the counted options in insertion order.
func (s *State) Counts() []OptionCount {
	out := make([]OptionCount, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, OptionCount{Name: name, Count: s.counts[name]})
	}
	return out
}

// Selected returns the exclusive choices (Ninguno, 2 Boost, or the single
// liter/cup style).
func (s *State) Selected() []string {
	return append([]string(nil), s.selected...)
}

// HasBoost reports whether the Jäger boost sentinel is active.
func (s *State) HasBoost() bool {
	for _, choice := range s.selected {
		if choice == accompaniments.OptionBoost {
			return true
		}
	}
	return false
}

// HasNone reports whether Ninguno was explicitly chosen.
func (s *State) HasNone() bool {
	for _, choice := range s.selected {
		if choice == accompaniments.OptionNone {
			return true
		}
	}
	return false
}

// HasSelection reports whether the selection can be confirmed.
func (s *State) HasSelection() bool {
	if len(s.selected) > 0 {
		return true
	}
	for _, count := range s.counts {
		if count > 0 {
			return true
		}
	}
	return false
}

// Totals splits the current counts into juices and sodas.
func (s *State) Totals() (juices, sodas int) {
	for option, count := range s.counts {
		if accompaniments.IsJuice(option) {
			juices += count
		} else {
			sodas += count
		}
	}
	return juices, sodas
}

// DisplayTotal is the running total shown next to the counters. Juices
// weigh double on special bottles; the boost sentinel zeroes it.
func (s *State) DisplayTotal() int {
	if s.HasBoost() {
		return 0
	}
	return accompaniments.WeightedCount(s.set.Policy, s.counts)
}

// Reset clears the whole selection, cooking term included.
func (s *State) Reset() {
	s.resetCounts()
	s.selected = nil
	s.cookingTerm = nil
}

func (s *State) resetCounts() {
	s.order = nil
	s.counts = make(map[string]int)
}

func (s *State) clearSentinels() {
	s.selected = nil
}
