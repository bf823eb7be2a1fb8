// Package geo joins municipality aggregates onto boundary features for
// choropleth rendering.
package geo

// displayNames maps source spelling (upper case, no diacritics) to the
// spelling used by the IBGE municipal boundary dataset.
var displayNames = map[string]string{
	"ALECRIM":                 "Alecrim",
	"ALEGRIA":                 "Alegria",
	"BOA VISTA DO BURICA":     "Boa Vista do Buricá",
	"CAMPINA DAS MISSOES":     "Campina das Missões",
	"CANDIDO GODOI":           "Cândido Godói",
	"DOUTOR MAURICIO CARDOSO": "Doutor Maurício Cardoso",
	"GIRUA":                   "Giruá",
	"HORIZONTINA":             "Horizontina",
	"INDEPENDENCIA":           "Independência",
	"NOVA CANDELARIA":         "Nova Candelária",
	"NOVO MACHADO":            "Novo Machado",
	"PORTO LUCENA":            "Porto Lucena",
	"PORTO MAUA":              "Porto Mauá",
	"PORTO VERA CRUZ":         "Porto Vera Cruz",
	"SANTA ROSA":              "Santa Rosa",
	"SANTO CRISTO":            "Santo Cristo",
	"SAO JOSE DO INHACORA":    "São José do Inhacorá",
	"SAO PAULO DAS MISSOES":   "São Paulo das Missões",
	"SENADOR SALGADO FILHO":   "Senador Salgado Filho",
	"TRES DE MAIO":            "Três de Maio",
	"TUCUNDUVA":               "Tucunduva",
	"TUPARENDI":               "Tuparendi",
}

var sourceNames = func() map[string]string {
	m := make(map[string]string, len(displayNames))
	for src, disp := range displayNames {
		m[disp] = src
	}
	return m
}()

// DisplayName returns the boundary-dataset spelling of a source municipality
// name. Unknown names are returned unchanged.
func DisplayName(source string) string {
	if d, ok := displayNames[source]; ok {
		return d
	}
	return source
}

// SourceName is the inverse of DisplayName.
func SourceName(display string) string {
	if s, ok := sourceNames[display]; ok {
		return s
	}
	return display
}
