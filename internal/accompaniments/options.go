package accompaniments

import (
	"github.com/angelmondragon/cantina-pos-backend/pkg/enums"
)

// Spanish customer-facing messages. These travel to clients verbatim.
const (
	MessageSpecial     = "Puedes elegir: 2 Jarras de jugo ó 5 Refrescos ó 1 Jarra de jugo y 2 Refrescos"
	MessageOnlySodas   = "Puedes elegir hasta 5 refrescos"
	MessageDefault     = "Puedes elegir hasta 5 acompañamientos"
	MessageNoRefrescos = "Este producto no incluye refrescos"
	MessageDigestivo   = "Seleccione acompañamiento:"
	MessageBaileysCup  = "Acompañamientos para copa"
	MessageJager       = "Puedes elegir 5 Refrescos ó 2 Boost"
	MessageLiter       = "Elija una opción para acompañar su litro:"
	MessageCup         = "Cada copa se sirve con 1 ½ oz del destilado que elija."
)

// OptionNone is the explicit no-accompaniment choice.
const OptionNone = "Ninguno"

// OptionBoost is the exclusive Jägermeister bottle choice.
const OptionBoost = "2 Boost"

// bottleOptions holds the per-category accompaniment lists for full bottles.
var bottleOptions = map[enums.LiquorCategory][]string{
	enums.LiquorCategoryRon:     {"Mineral", "Coca", "Manzana"},
	enums.LiquorCategoryTequila: {"Mineral", "Toronja", "Botella de Agua", "Coca"},
	enums.LiquorCategoryBrandy:  {"Mineral", "Coca", "Manzana"},
	enums.LiquorCategoryWhisky:  {"Mineral", "Manzana", "Ginger ale", "Botella de Agua"},
	enums.LiquorCategoryVodka:   {"Jugo de Piña", "Jugo de Uva", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Durazno", "Mineral", "Quina"},
	enums.LiquorCategoryGinebra: {"Jugo de Piña", "Jugo de Uva", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Durazno", "Mineral", "Quina"},
	enums.LiquorCategoryMezcal:  {"Mineral", "Toronja"},
	enums.LiquorCategoryCognac:  {"Mineral", "Coca", "Manzana", "Botella de Agua"},
}

var defaultOptions = []string{"Mineral", "Agua", "Coca", "Manzana"}

// literOptions and cupOptions carry the tier variants of the category lists.
var literOptions = map[enums.LiquorCategory][]string{
	enums.LiquorCategoryRon:        {"Mineral", "Manzana", "Coca", "Mineral-Coca", "Mineral-Manzana", "Pintado-Coca", "Pintado-Manzana"},
	enums.LiquorCategoryTequila:    {"Toronja", "Mineral", "Coca", "Toronja-Mineral", "Paloma"},
	enums.LiquorCategoryBrandy:     {"Coca", "Manzana", "Mineral", "Mineral-Coca", "Mineral-Manzana"},
	enums.LiquorCategoryWhisky:     {"Mineral", "Manzana", "Ginger ale", "Botella de Agua", "Mineral-Ginger", "Mineral-Manzana"},
	enums.LiquorCategoryVodka:      {"Jugo de Piña", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Uva", "Jugo de Durazno", "Mineral", "Tonic"},
	enums.LiquorCategoryGinebra:    {"Jugo de Piña", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Uva", "Jugo de Durazno", "Mineral", "Tonic"},
	enums.LiquorCategoryMezcal:     {"Mineral", "Toronja"},
	enums.LiquorCategoryCognac:     {"Puesto-Mineral", "Puesto-Coca", "Puesto-Manzana"},
	enums.LiquorCategoryEspumosos:  {OptionNone},
	enums.LiquorCategoryDigestivos: {"Mineral", "Botella de Agua"},
}

var cupOptions = map[enums.LiquorCategory][]string{
	enums.LiquorCategoryRon:       {"Mineral", "Manzana", "Coca", "Mineral-Coca", "Mineral-Manzana", "Pintado-Coca", "Pintado-Manzana"},
	enums.LiquorCategoryTequila:   {"Toronja", "Mineral", "Coca", "Toronja-Mineral", "Bandera", "Paloma", "Derecho"},
	enums.LiquorCategoryBrandy:    {"Coca", "Manzana", "Mineral", "Mineral-Coca", "Mineral-Manzana", "Paris"},
	enums.LiquorCategoryWhisky:    {"Mineral", "Manzana", "Ginger ale", "Botella de Agua", "Rocas", "Mineral-Manzana", "Mineral-Ginger"},
	enums.LiquorCategoryVodka:     {"Jugo de Piña", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Uva", "Jugo de Durazno", "Mineral", "Tonic"},
	enums.LiquorCategoryGinebra:   {"Jugo de Piña", "Jugo de Naranja", "Jugo de Arándano", "Jugo de Mango", "Jugo de Uva", "Jugo de Durazno", "Mineral", "Tonic"},
	enums.LiquorCategoryMezcal:    {"Derecho Naranja y Sal de gusano", "Toronja"},
	enums.LiquorCategoryCognac:    {"Puesto-Mineral", "Puesto-Coca", "Puesto-Manzana", "Rocas", "Paris"},
	enums.LiquorCategoryEspumosos: {OptionNone},
}

// specialBottleProducts are the only RON products that get the juice/soda
// combination rules. VODKA and GINEBRA always do.
var specialBottleProducts = []string{"BACARDI MANGO", "BACARDI RASPBERRY", "MALIBU"}

type specialProductRule struct {
	key    string
	bottle []string
	mixed  []string // liter and cup share one list
}

var specialProductRules = []specialProductRule{
	{
		key:    "BACARDI MANGO",
		bottle: []string{"Sprite", "Mineral", "Quina", "Jugo de Mango", "Jugo de Arándano"},
		mixed:  []string{"Sprite", "Mineral", "Tonic", "Jugo de Mango", "Jugo de Arándano"},
	},
	{
		key:    "BACARDI RASPBERRY",
		bottle: []string{"Sprite", "Mineral", "Quina", "Jugo de Mango", "Jugo de Arándano"},
		mixed:  []string{"Sprite", "Mineral", "Tonic", "Jugo de Mango", "Jugo de Arándano"},
	},
	{
		key:    "MALIBU",
		bottle: []string{"Sprite", "Mineral", "Jugo de Piña"},
		mixed:  []string{"Sprite", "Mineral", "Jugo de Piña", "Mineral-Piña"},
	},
}

// digestivoBottleOptions maps digestivo bottle brands that still carry
// accompaniments. Any other digestivo bottle only offers Ninguno.
var digestivoBottleOptions = []struct {
	key     string
	options []string
}{
	{"LICOR 43", []string{"Botella de Agua", "Mineral"}},
	{"CADENAS DULCE", []string{"Botella de Agua", "Mineral"}},
	{"ZAMBUCA NEGRO", []string{"Botella de Agua", "Mineral"}},
}

// digestivoCupOptions maps digestivo brands to their cup serving styles.
var digestivoCupOptions = []struct {
	key     string
	options []string
}{
	{"LICOR 43", []string{"Coñaquera Chaser Mineral", "Rocas"}},
	{"JAGERMEISTER", []string{"Derecho"}},
	{"BAILEYS", []string{"Rocas"}},
	{"CADENAS DULCE", []string{"Coñaquera Chaser Mineral", "Rocas"}},
	{"ZAMBUCA NEGRO", []string{"Coñaquera Chaser Mineral-Moscas", "Coñaquera Chaser Mineral", "Rocas"}},
}

var digestivoCupDefault = []string{"Mineral", "Botella de Agua"}

// jagerBottleOptions are the counted options in the Jäger boost mode.
var jagerBottleOptions = []string{"Botella de Agua", "Mineral"}

// directBottleDigestivos skip customization entirely when sold by the bottle.
var directBottleDigestivos = []string{"HIPNOTIQ", "BAILEYS"}
