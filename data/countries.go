// Package data holds the static country allow-list and demonym table
// consumed read-only by the country resolution engine.
package data

import "strings"

// AfricanCountries is the closed allow-list of countries the resolver is
// permitted to return. Order matters: it is the documented tie-break order
// for mention-frequency resolution.
var AfricanCountries = []string{
	"Algeria",
	"Angola",
	"Benin",
	"Botswana",
	"Burkina Faso",
	"Burundi",
	"Cabo Verde",
	"Cameroon",
	"Central African Republic",
	"Chad",
	"Comoros",
	"Congo",
	"Democratic Republic of the Congo",
	"Djibouti",
	"Egypt",
	"Equatorial Guinea",
	"Eritrea",
	"Eswatini",
	"Ethiopia",
	"Gabon",
	"Gambia",
	"Ghana",
	"Guinea",
	"Guinea-Bissau",
	"Ivory Coast",
	"Kenya",
	"Lesotho",
	"Liberia",
	"Libya",
	"Madagascar",
	"Malawi",
	"Mali",
	"Mauritania",
	"Mauritius",
	"Morocco",
	"Mozambique",
	"Namibia",
	"Niger",
	"Nigeria",
	"Rwanda",
	"Sao Tome and Principe",
	"Senegal",
	"Seychelles",
	"Sierra Leone",
	"Somalia",
	"South Africa",
	"South Sudan",
	"Sudan",
	"Tanzania",
	"Togo",
	"Tunisia",
	"Uganda",
	"Zambia",
	"Zimbabwe",
}

// AfricanDemonyms maps each allow-listed country to its nationality
// adjective. The resolver builds the reverse (demonym -> country) view.
var AfricanDemonyms = map[string]string{
	"Algeria":                          "Algerian",
	"Angola":                           "Angolan",
	"Benin":                            "Beninese",
	"Botswana":                         "Motswana",
	"Burkina Faso":                     "Burkinabe",
	"Burundi":                          "Burundian",
	"Cabo Verde":                       "Cape Verdean",
	"Cameroon":                         "Cameroonian",
	"Central African Republic":         "Central African",
	"Chad":                             "Chadian",
	"Comoros":                          "Comoran",
	"Congo":                            "Congolese",
	"Democratic Republic of the Congo": "Congolese (DRC)",
	"Djibouti":                         "Djiboutian",
	"Egypt":                            "Egyptian",
	"Equatorial Guinea":                "Equatoguinean",
	"Eritrea":                          "Eritrean",
	"Eswatini":                         "Swazi",
	"Ethiopia":                         "Ethiopian",
	"Gabon":                            "Gabonese",
	"Gambia":                           "Gambian",
	"Ghana":                            "Ghanaian",
	"Guinea":                           "Guinean",
	"Guinea-Bissau":                    "Bissau-Guinean",
	"Ivory Coast":                      "Ivorian",
	"Kenya":                            "Kenyan",
	"Lesotho":                          "Basotho",
	"Liberia":                          "Liberian",
	"Libya":                            "Libyan",
	"Madagascar":                       "Malagasy",
	"Malawi":                           "Malawian",
	"Mali":                             "Malian",
	"Mauritania":                       "Mauritanian",
	"Mauritius":                        "Mauritian",
	"Morocco":                          "Moroccan",
	"Mozambique":                       "Mozambican",
	"Namibia":                          "Namibian",
	"Niger":                            "Nigerien",
	"Nigeria":                          "Nigerian",
	"Rwanda":                           "Rwandan",
	"Sao Tome and Principe":            "Sao Tomean",
	"Senegal":                          "Senegalese",
	"Seychelles":                       "Seychellois",
	"Sierra Leone":                     "Sierra Leonean",
	"Somalia":                          "Somali",
	"South Africa":                     "South African",
	"South Sudan":                      "South Sudanese",
	"Sudan":                            "Sudanese",
	"Tanzania":                         "Tanzanian",
	"Togo":                             "Togolese",
	"Tunisia":                          "Tunisian",
	"Uganda":                           "Ugandan",
	"Zambia":                           "Zambian",
	"Zimbabwe":                         "Zimbabwean",
}

// CountryAliases maps alternate lower-cased spellings seen in scraped text
// to the canonical allow-list name.
var CountryAliases = map[string]string{
	"cote d'ivoire":       "Ivory Coast",
	"côte d'ivoire":       "Ivory Coast",
	"dr congo":            "Democratic Republic of the Congo",
	"drc":                 "Democratic Republic of the Congo",
	"cape verde":          "Cabo Verde",
	"swaziland":           "Eswatini",
	"republic of congo":   "Congo",
	"republic of the congo": "Congo",
	"the gambia":          "Gambia",
}

// Canonical returns the allow-list spelling for a country token, or ""
// when the token is not a recognized African country.
func Canonical(name string) string {
	for _, c := range AfricanCountries {
		if strings.EqualFold(c, name) {
			return c
		}
	}
	if c, ok := CountryAliases[strings.ToLower(name)]; ok {
		return c
	}
	return ""
}

// IsAfricanCountry reports whether name is on the allow-list (any casing
// or known alias).
func IsAfricanCountry(name string) bool {
	return Canonical(name) != ""
}
