package liquor

import (
	"strings"

	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
	"github.com/angelmondragon/cantina-pos-backend/pkg/normalize"
)

type brandRule struct {
	brand    string
	category enums.LiquorCategory
}

// brandRules maps well-known brands to their category. Order matters: the
// first matching brand wins, so broader substrings stay below narrower ones.
var brandRules = []brandRule{
	{"BACARDI", enums.LiquorCategoryRon},
	{"HAVANA", enums.LiquorCategoryRon},
	{"MATUSALEM", enums.LiquorCategoryRon},
	{"APPLETON ESTATE", enums.LiquorCategoryRon},
	{"CAPITAN MORGAN", enums.LiquorCategoryRon},
	{"ZACAPA 23", enums.LiquorCategoryRon},
	{"MALIBU", enums.LiquorCategoryRon},

	{"CUERVO", enums.LiquorCategoryTequila},
	{"DON JULIO", enums.LiquorCategoryTequila},
	{"HERRADURA", enums.LiquorCategoryTequila},
	{"MAESTRO DOBEL DIAMANTE", enums.LiquorCategoryTequila},
	{"TRADICIONAL", enums.LiquorCategoryTequila},

	{"BUCHANAN", enums.LiquorCategoryWhisky},
	{"CHIVAS", enums.LiquorCategoryWhisky},
	{"JACK DANIELS", enums.LiquorCategoryWhisky},
	{"BLACK & WHITE", enums.LiquorCategoryWhisky},
	{"J.W.", enums.LiquorCategoryWhisky},

	{"ABSOLUT", enums.LiquorCategoryVodka},
	{"GREY GOOSE", enums.LiquorCategoryVodka},
	{"SMIRNOFF", enums.LiquorCategoryVodka},
	{"STOLICHNAYA", enums.LiquorCategoryVodka},

	{"TORRES", enums.LiquorCategoryBrandy},
	{"FUNDADOR", enums.LiquorCategoryBrandy},
	{"CARLOS I", enums.LiquorCategoryBrandy},
	{"TERRY CENTENARIO", enums.LiquorCategoryBrandy},

	{"BOMBAY", enums.LiquorCategoryGinebra},
	{"TANQUERAY", enums.LiquorCategoryGinebra},
	{"BEEFEATER", enums.LiquorCategoryGinebra},
	{"HENDRICK", enums.LiquorCategoryGinebra},
	{"MONKEY 47", enums.LiquorCategoryGinebra},
	{"THE BOTANIST", enums.LiquorCategoryGinebra},

	{"400 CONEJOS", enums.LiquorCategoryMezcal},
	{"AMARAS", enums.LiquorCategoryMezcal},
	{"MONTELOBOS", enums.LiquorCategoryMezcal},
	{"UNION", enums.LiquorCategoryMezcal},
	{"TRIPAS DE MAGUEY", enums.LiquorCategoryMezcal},

	{"REMY MARTIN", enums.LiquorCategoryCognac},
	{"HENNESSY", enums.LiquorCategoryCognac},
	{"MARTELL", enums.LiquorCategoryCognac},
	{"COURVOISIER", enums.LiquorCategoryCognac},

	{"HIPNOTIQ", enums.LiquorCategoryDigestivos},
	{"LICOR 43", enums.LiquorCategoryDigestivos},
	{"JAGERMEISTER", enums.LiquorCategoryDigestivos},
	{"BAILEYS", enums.LiquorCategoryDigestivos},
	{"CADENAS DULCE", enums.LiquorCategoryDigestivos},
	{"ZAMBUCA", enums.LiquorCategoryDigestivos},

	{"MOET", enums.LiquorCategoryEspumosos},
	{"CHANDON", enums.LiquorCategoryEspumosos},
	{"TAITTINGER", enums.LiquorCategoryEspumosos},
	{"VEUVE CLICQUOT", enums.LiquorCategoryEspumosos},
}

type fallbackRule struct {
	keyword  string
	category enums.LiquorCategory
}

var fallbackRules = []fallbackRule{
	{"RON", enums.LiquorCategoryRon},
	{"TEQUILA", enums.LiquorCategoryTequila},
	{"WHISKY", enums.LiquorCategoryWhisky},
	{"VODKA", enums.LiquorCategoryVodka},
	{"BRANDY", enums.LiquorCategoryBrandy},
	{"GINEBRA", enums.LiquorCategoryGinebra},
	{"GIN", enums.LiquorCategoryGinebra},
	{"MEZCAL", enums.LiquorCategoryMezcal},
	{"COGNAC", enums.LiquorCategoryCognac},
	{"DIGESTIVO", enums.LiquorCategoryDigestivos},
	{"ESPUMOSO", enums.LiquorCategoryEspumosos},
}

// Classify resolves the liquor category for a product name. Matching is
// accent and case insensitive: literal overrides first, then the brand
// table, then category keywords. Unrecognized names fall back to OTRO.
func Classify(productName string) enums.LiquorCategory {
	folded := normalize.Fold(productName)

	if strings.Contains(folded, "MALIBU") {
		return enums.LiquorCategoryRon
	}
	if strings.Contains(folded, "TRIPAS DE MAGUEY") {
		return enums.LiquorCategoryMezcal
	}

	for _, rule := range brandRules {
		if strings.Contains(folded, rule.brand) {
			return rule.category
		}
	}

	for _, rule := range fallbackRules {
		if strings.Contains(folded, rule.keyword) {
			return rule.category
		}
	}

	return enums.LiquorCategoryOtro
}
