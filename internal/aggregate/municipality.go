// Package aggregate derives per-municipality counts from translated detail
// records.
package aggregate

import (
	"sort"

	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

// Table is the municipality aggregate. Raw holds every municipality that
// appeared in the input, canonical or not; Rows is the fixed-membership view
// with one row per canonical municipality, sorted by name.
type Table struct {
	Rows []model.MunicipalityRow
	Raw  map[string]model.MunicipalityRow
}

// Row returns the canonical row for name.
func (t *Table) Row(name string) (model.MunicipalityRow, bool) {
	i := sort.Search(len(t.Rows), func(i int) bool { return t.Rows[i].Municipality >= name })
	if i < len(t.Rows) && t.Rows[i].Municipality == name {
		return t.Rows[i], true
	}
	return model.MunicipalityRow{}, false
}

// Indicators returns the 0/1 pathogen indicators of a single record.
func Indicators(d model.DetailRecord) model.MunicipalityRow {
	r := model.MunicipalityRow{Municipality: d.Municipality}
	r.COVID = flag(d.Classification == normalize.LabelCOVID)
	r.InfluenzaA = flag(d.FluType == normalize.LabelInfluenzaA)
	r.InfluenzaAH1N1 = flag(d.FluASubtype == normalize.LabelH1N1)
	r.InfluenzaAH3N2 = flag(d.FluASubtype == normalize.LabelH3N2)
	r.InfluenzaB = flag(d.FluType == normalize.LabelInfluenzaB)
	r.InfluenzaBVictoria = flag(d.FluBLineage == normalize.LabelVictoria)
	r.InfluenzaBYamagata = flag(d.FluBLineage == normalize.LabelYamagata)
	r.VSR = flag(normalize.IsAffirmative(d.RSV))
	r.Adeno = flag(normalize.IsAffirmative(d.Adeno))
	r.Rino = flag(normalize.IsAffirmative(d.Rhino))
	r.ComputeTotal()
	return r
}

// ByMunicipality sums the indicators of every record per municipality and
// left-joins the result onto the canonical municipality list.
func ByMunicipality(details []model.DetailRecord) *Table {
	raw := make(map[string]model.MunicipalityRow)
	for _, d := range details {
		ind := Indicators(d)
		acc := raw[d.Municipality]
		acc.Municipality = d.Municipality
		acc.COVID += ind.COVID
		acc.InfluenzaA += ind.InfluenzaA
		acc.InfluenzaAH1N1 += ind.InfluenzaAH1N1
		acc.InfluenzaAH3N2 += ind.InfluenzaAH3N2
		acc.InfluenzaB += ind.InfluenzaB
		acc.InfluenzaBVictoria += ind.InfluenzaBVictoria
		acc.InfluenzaBYamagata += ind.InfluenzaBYamagata
		acc.VSR += ind.VSR
		acc.Adeno += ind.Adeno
		acc.Rino += ind.Rino
		acc.ComputeTotal()
		raw[d.Municipality] = acc
	}

	rows := make([]model.MunicipalityRow, 0, len(model.CanonicalMunicipalities))
	for _, name := range model.CanonicalMunicipalities {
		row, ok := raw[name]
		if !ok {
			row = model.MunicipalityRow{Municipality: name}
		}
		rows = append(rows, row)
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Municipality < rows[j].Municipality })

	return &Table{Rows: rows, Raw: raw}
}

func flag(b bool) int64 {
	if b {
		return 1
	}
	return 0
}
