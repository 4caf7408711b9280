package accompaniments

import (
	"strings"

	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	"github.com/angelmondragon/cantina-pos-backend/pkg/normalize"
)

// Policy names the limit rule that governs an option set.
type Policy string

const (
	// PolicyDefault caps the combined count at five.
	PolicyDefault Policy = "default"
	// PolicyOnlySodas caps sodas at five and forbids juices.
	PolicyOnlySodas Policy = "only-sodas"
	// PolicySpecialBottle enforces the juice/soda combination shapes.
	PolicySpecialBottle Policy = "special-bottle"
	// PolicyJagerBottle counts sodas against five with an exclusive boost choice.
	PolicyJagerBottle Policy = "jager-bottle"
	// PolicyExclusive allows exactly one choice (liter and cup servings).
	PolicyExclusive Policy = "exclusive"
)

// MaxDrinkCount is the combined accompaniment cap.
const MaxDrinkCount = 5

// OptionSet is the resolved accompaniment offer for one product/tier pair.
type OptionSet struct {
	Options []string `json:"options"`
	Policy  Policy   `json:"policy"`
	Message string   `json:"message"`
}

// juiceKeywords flag an option as a juice. Matching is fold-insensitive.
var juiceKeywords = []string{"PIÑA", "UVA", "NARANJA", "ARANDANO", "MANGO", "DURAZNO", "JUGO"}

// IsJuice reports whether the option counts as a juice for limit rules.
func IsJuice(option string) bool {
	folded := normalize.Fold(option)
	for _, keyword := range juiceKeywords {
		if strings.Contains(folded, normalize.Fold(keyword)) {
			return true
		}
	}
	return false
}

// IsSpecialBottle reports whether the product follows the juice/soda
// combination shapes: every VODKA and GINEBRA bottle, and the three
// special RON products.
func IsSpecialBottle(category enums.LiquorCategory, productName string) bool {
	switch category {
	case enums.LiquorCategoryVodka, enums.LiquorCategoryGinebra:
		return true
	case enums.LiquorCategoryRon:
		folded := normalize.Fold(productName)
		for _, name := range specialBottleProducts {
			if strings.Contains(folded, name) {
				return true
			}
		}
	}
	return false
}

// IsJagerBottle reports whether the product enters the boost mode.
func IsJagerBottle(category enums.LiquorCategory, tier enums.PriceTier, productName string) bool {
	return category == enums.LiquorCategoryDigestivos &&
		tier == enums.PriceTierBottle &&
		strings.Contains(normalize.Fold(productName), "JAGERMEISTER")
}

// IsDirectBottle reports whether the bottle skips customization and goes
// straight to the cart: HIPNOTIQ and BAILEYS digestivos, and every
// espumoso bottle.
func IsDirectBottle(category enums.LiquorCategory, tier enums.PriceTier, productName string) bool {
	if tier != enums.PriceTierBottle {
		return false
	}
	switch category {
	case enums.LiquorCategoryEspumosos:
		return true
	case enums.LiquorCategoryDigestivos:
		folded := normalize.Fold(productName)
		for _, name := range directBottleDigestivos {
			if strings.Contains(folded, name) {
				return true
			}
		}
	}
	return false
}

// OptionsFor resolves the accompaniment offer for a product. Precedence:
// special products, then Jäger bottles, then the digestivo dispatch, then
// espumosos, then the per-category tier tables, then the generic fallback.
func OptionsFor(category enums.LiquorCategory, tier enums.PriceTier, productName string) OptionSet {
	folded := normalize.Fold(productName)

	if set, ok := specialProductSet(folded, tier); ok {
		return set
	}

	if IsJagerBottle(category, tier, productName) {
		return OptionSet{
			Options: append([]string(nil), jagerBottleOptions...),
			Policy:  PolicyJagerBottle,
			Message: MessageJager,
		}
	}

	if category == enums.LiquorCategoryDigestivos {
		return digestivoSet(folded, tier)
	}

	if category == enums.LiquorCategoryEspumosos {
		return OptionSet{
			Options: []string{OptionNone},
			Policy:  tierPolicy(tier, PolicyDefault),
			Message: MessageNoRefrescos,
		}
	}

	switch tier {
	case enums.PriceTierLiter:
		return exclusiveSet(lookupOptions(literOptions, category), MessageLiter)
	case enums.PriceTierCup:
		return exclusiveSet(lookupOptions(cupOptions, category), MessageCup)
	}

	options := lookupOptions(bottleOptions, category)
	return OptionSet{
		Options: options,
		Policy:  bottlePolicy(category, productName, options),
		Message: bottleMessage(category, options),
	}
}

func specialProductSet(foldedName string, tier enums.PriceTier) (OptionSet, bool) {
	for _, rule := range specialProductRules {
		if !strings.Contains(foldedName, rule.key) {
			continue
		}
		if tier == enums.PriceTierBottle {
			return OptionSet{
				Options: append([]string(nil), rule.bottle...),
				Policy:  PolicySpecialBottle,
				Message: MessageSpecial,
			}, true
		}
		return exclusiveSet(append([]string(nil), rule.mixed...), tierMessage(tier)), true
	}
	return OptionSet{}, false
}

func digestivoSet(foldedName string, tier enums.PriceTier) OptionSet {
	switch tier {
	case enums.PriceTierBottle:
		for _, rule := range digestivoBottleOptions {
			if strings.Contains(foldedName, rule.key) {
				return OptionSet{
					Options: append([]string(nil), rule.options...),
					Policy:  PolicyDefault,
					Message: MessageDigestivo,
				}
			}
		}
		return OptionSet{
			Options: []string{OptionNone},
			Policy:  PolicyDefault,
			Message: MessageNoRefrescos,
		}
	case enums.PriceTierCup:
		for _, rule := range digestivoCupOptions {
			if strings.Contains(foldedName, rule.key) {
				message := MessageCup
				if rule.key == "BAILEYS" {
					message = MessageBaileysCup
				}
				return exclusiveSet(append([]string(nil), rule.options...), message)
			}
		}
		return exclusiveSet(append([]string(nil), digestivoCupDefault...), MessageCup)
	default:
		return exclusiveSet(lookupOptions(literOptions, enums.LiquorCategoryDigestivos), MessageLiter)
	}
}

func exclusiveSet(options []string, message string) OptionSet {
	return OptionSet{Options: options, Policy: PolicyExclusive, Message: message}
}

func tierPolicy(tier enums.PriceTier, bottle Policy) Policy {
	if tier == enums.PriceTierLiter || tier == enums.PriceTierCup {
		return PolicyExclusive
	}
	return bottle
}

func tierMessage(tier enums.PriceTier) string {
	if tier == enums.PriceTierCup {
		return MessageCup
	}
	return MessageLiter
}

func lookupOptions(table map[enums.LiquorCategory][]string, category enums.LiquorCategory) []string {
	if options, ok := table[category]; ok {
		return append([]string(nil), options...)
	}
	return append([]string(nil), defaultOptions...)
}

func bottlePolicy(category enums.LiquorCategory, productName string, options []string) Policy {
	if IsSpecialBottle(category, productName) {
		return PolicySpecialBottle
	}
	if onlySodas(options) {
		return PolicyOnlySodas
	}
	return PolicyDefault
}

func bottleMessage(category enums.LiquorCategory, options []string) string {
	if category == enums.LiquorCategoryVodka || category == enums.LiquorCategoryGinebra {
		return MessageSpecial
	}
	if onlySodas(options) {
		return MessageOnlySodas
	}
	return MessageDefault
}

// onlySodas reports whether the list is a non-empty soda-only offer.
func onlySodas(options []string) bool {
	if len(options) == 0 {
		return false
	}
	for _, option := range options {
		if option == OptionNone || IsJuice(option) {
			return false
		}
	}
	return true
}

// CanIncrement checks whether one more unit of option is allowed given the
// current juice and soda totals. Special bottles simulate the increment and
// accept only the three valid combination shapes.
func CanIncrement(policy Policy, option string, juices, sodas int) bool {
	isJuice := IsJuice(option)
	switch policy {
	case PolicyOnlySodas:
		return !isJuice && sodas < MaxDrinkCount
	case PolicySpecialBottle:
		newJuices, newSodas := juices, sodas
		if isJuice {
			newJuices++
		} else {
			newSodas++
		}
		return (newJuices <= 2 && newSodas == 0) ||
			(newJuices == 0 && newSodas <= MaxDrinkCount) ||
			(newJuices == 1 && newSodas <= 2)
	default:
		return juices+sodas < MaxDrinkCount
	}
}

// WeightedCount returns the displayed total for the given counts. Juices
// weigh double under the special bottle rules (a juice is a full pitcher).
func WeightedCount(policy Policy, counts map[string]int) int {
	total := 0
	for option, count := range counts {
		multiplier := 1
		if policy == PolicySpecialBottle && IsJuice(option) {
			multiplier = 2
		}
		total += count * multiplier
	}
	return total
}
