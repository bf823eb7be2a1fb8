package model

import "strconv"

// MunicipalityRow holds pathogen case counts for one municipality.
// Subtype and lineage columns are informational; Total only sums the
// parent-level indicators.
type MunicipalityRow struct {
	Municipality       string `parquet:"municipality"`
	COVID              int64  `parquet:"covid"`
	InfluenzaA         int64  `parquet:"influenza_a"`
	InfluenzaAH1N1     int64  `parquet:"influenza_a_h1n1"`
	InfluenzaAH3N2     int64  `parquet:"influenza_a_h3n2"`
	InfluenzaB         int64  `parquet:"influenza_b"`
	InfluenzaBVictoria int64  `parquet:"influenza_b_victoria"`
	InfluenzaBYamagata int64  `parquet:"influenza_b_yamagata"`
	VSR                int64  `parquet:"vsr"`
	Adeno              int64  `parquet:"adeno"`
	Rino               int64  `parquet:"rino"`
	Total              int64  `parquet:"total"`
}

// ComputeTotal sets Total from the parent-level indicator counts.
func (r *MunicipalityRow) ComputeTotal() {
	r.Total = r.COVID + r.InfluenzaA + r.InfluenzaB + r.VSR + r.Adeno + r.Rino
}

// MunicipalityColumns returns the export header for MunicipalityRow, in the
// same order as AllMetrics with the municipality name first.
func MunicipalityColumns() []string {
	cols := make([]string, 0, len(AllMetrics)+1)
	cols = append(cols, "MUNICIPIO")
	for _, m := range AllMetrics {
		cols = append(cols, m.Name)
	}
	return cols
}

// Values returns the row values in MunicipalityColumns order.
func (r MunicipalityRow) Values() []string {
	vals := make([]string, 0, len(AllMetrics)+1)
	vals = append(vals, r.Municipality)
	for _, m := range AllMetrics {
		vals = append(vals, strconv.FormatInt(m.Value(r), 10))
	}
	return vals
}

// Metric is one selectable count column of MunicipalityRow.
type Metric struct {
	Name  string // e.g. "COVID"
	Value func(MunicipalityRow) int64
}

// AllMetrics lists the aggregate columns in canonical order.
var AllMetrics = []Metric{
	{Name: "COVID", Value: func(r MunicipalityRow) int64 { return r.COVID }},
	{Name: "INFLUENZA_A", Value: func(r MunicipalityRow) int64 { return r.InfluenzaA }},
	{Name: "INFLUENZA_A_H1N1", Value: func(r MunicipalityRow) int64 { return r.InfluenzaAH1N1 }},
	{Name: "INFLUENZA_A_H3N2", Value: func(r MunicipalityRow) int64 { return r.InfluenzaAH3N2 }},
	{Name: "INFLUENZA_B", Value: func(r MunicipalityRow) int64 { return r.InfluenzaB }},
	{Name: "INFLUENZA_B_VICTORIA", Value: func(r MunicipalityRow) int64 { return r.InfluenzaBVictoria }},
	{Name: "INFLUENZA_B_YAMAGATA", Value: func(r MunicipalityRow) int64 { return r.InfluenzaBYamagata }},
	{Name: "VSR", Value: func(r MunicipalityRow) int64 { return r.VSR }},
	{Name: "ADENO", Value: func(r MunicipalityRow) int64 { return r.Adeno }},
	{Name: "RINO", Value: func(r MunicipalityRow) int64 { return r.Rino }},
	{Name: "TOTAL", Value: func(r MunicipalityRow) int64 { return r.Total }},
}

// MetricByName returns the Metric with the given name, or ok=false.
func MetricByName(name string) (Metric, bool) {
	for _, m := range AllMetrics {
		if m.Name == name {
			return m, true
		}
	}
	return Metric{}, false
}

// MetricNames returns the names of AllMetrics.
func MetricNames() []string {
	names := make([]string, len(AllMetrics))
	for i, m := range AllMetrics {
		names[i] = m.Name
	}
	return names
}

// DeathCell is one cell of the municipality × classification death table.
type DeathCell struct {
	Municipality   string
	Classification string
	Deaths         int64
}

// DeathColumns returns the export header for DeathCell rows.
func DeathColumns() []string {
	return []string{"Município", "Classificação final", "Óbitos"}
}

// Values returns the row values in DeathColumns order.
func (c DeathCell) Values() []string {
	return []string{c.Municipality, c.Classification, strconv.FormatInt(c.Deaths, 10)}
}

// ConsolidatedRow splits cases and deaths by a single virus type per record.
type ConsolidatedRow struct {
	Municipality    string
	CasesCOVID      int64
	CasesInfluenza  int64
	CasesVSR        int64
	DeathsCOVID     int64
	DeathsInfluenza int64
	DeathsVSR       int64
}

// ConsolidatedColumns returns the export header for ConsolidatedRow.
func ConsolidatedColumns() []string {
	return []string{
		"Município",
		"Casos COVID",
		"Casos INFLUENZA",
		"Casos VSR",
		"Óbitos COVID",
		"Óbitos INFLUENZA",
		"Óbitos VSR",
	}
}

// Values returns the row values in ConsolidatedColumns order.
func (r ConsolidatedRow) Values() []string {
	return []string{
		r.Municipality,
		strconv.FormatInt(r.CasesCOVID, 10),
		strconv.FormatInt(r.CasesInfluenza, 10),
		strconv.FormatInt(r.CasesVSR, 10),
		strconv.FormatInt(r.DeathsCOVID, 10),
		strconv.FormatInt(r.DeathsInfluenza, 10),
		strconv.FormatInt(r.DeathsVSR, 10),
	}
}
