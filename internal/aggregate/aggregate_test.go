package aggregate

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

func detail(raw model.RawRecord) model.DetailRecord {
	d, _ := normalize.ToDetailRecord(raw)
	return d
}

func TestByMunicipality_AlwaysCanonicalMembership(t *testing.T) {
	for name, input := range map[string][]model.DetailRecord{
		"empty": nil,
		"one":   {detail(model.RawRecord{"ID_MN_RESI": "ALECRIM", "CLASSI_FIN": "5"})},
	} {
		t.Run(name, func(t *testing.T) {
			tbl := ByMunicipality(input)
			require.Len(t, tbl.Rows, 22)

			seen := make(map[string]int)
			for i, row := range tbl.Rows {
				seen[row.Municipality]++
				if i > 0 {
					assert.Less(t, tbl.Rows[i-1].Municipality, row.Municipality)
				}
			}
			for _, m := range model.CanonicalMunicipalities {
				assert.Equal(t, 1, seen[m], m)
			}
		})
	}
}

func TestByMunicipality_SantaRosaCOVID(t *testing.T) {
	tbl := ByMunicipality([]model.DetailRecord{detail(model.RawRecord{
		"CLASSI_FIN": "5", "ID_RG_RESI": "014 CRS", "UTI": "1", "DT_SAIDUTI": "",
		"ID_MN_RESI": "SANTA ROSA", "NM_PACIENT": "X",
	})})

	row, ok := tbl.Row("SANTA ROSA")
	require.True(t, ok)
	assert.Equal(t, int64(1), row.COVID)
	assert.Equal(t, int64(1), row.Total)

	other, ok := tbl.Row("GIRUA")
	require.True(t, ok)
	assert.Equal(t, model.MunicipalityRow{Municipality: "GIRUA"}, other)
}

func TestByMunicipality_SubtypesDoNotDoubleCount(t *testing.T) {
	records := []model.DetailRecord{
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "CLASSI_FIN": "1", "TP_FLU_PCR": "1", "PCR_FLUASU": "1"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "CLASSI_FIN": "1", "TP_FLU_PCR": "1", "PCR_FLUASU": "2"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "CLASSI_FIN": "1", "TP_FLU_PCR": "2", "PCR_FLUBLI": "1"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "CLASSI_FIN": "1", "TP_FLU_PCR": "2", "PCR_FLUBLI": "2"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "CLASSI_FIN": "2", "PCR_VSR": "1", "PCR_ADENO": "1", "PCR_RINO": "1"}),
	}

	row, ok := ByMunicipality(records).Row("GIRUA")
	require.True(t, ok)

	want := model.MunicipalityRow{
		Municipality:       "GIRUA",
		InfluenzaA:         2,
		InfluenzaAH1N1:     1,
		InfluenzaAH3N2:     1,
		InfluenzaB:         2,
		InfluenzaBVictoria: 1,
		InfluenzaBYamagata: 1,
		VSR:                1,
		Adeno:              1,
		Rino:               1,
		Total:              7,
	}
	if diff := cmp.Diff(want, row); diff != "" {
		t.Errorf("GIRUA row mismatch (-want +got):\n%s", diff)
	}
}

func TestByMunicipality_TotalInvariant(t *testing.T) {
	codes := []string{"", "1", "2", "5", "9"}
	var records []model.DetailRecord
	for i, m := range model.CanonicalMunicipalities {
		for j := 0; j < 12; j++ {
			records = append(records, detail(model.RawRecord{
				"ID_MN_RESI": m,
				"CLASSI_FIN": codes[(i+j)%len(codes)],
				"TP_FLU_PCR": codes[(i*j)%len(codes)],
				"PCR_FLUASU": codes[(i+2*j)%len(codes)],
				"PCR_FLUBLI": codes[(2*i+j)%len(codes)],
				"PCR_VSR":    codes[j%len(codes)],
				"PCR_ADENO":  codes[(j+1)%len(codes)],
				"PCR_RINO":   codes[(i+3)%len(codes)],
			}))
		}
	}

	for _, row := range ByMunicipality(records).Rows {
		assert.Equal(t, row.COVID+row.InfluenzaA+row.InfluenzaB+row.VSR+row.Adeno+row.Rino, row.Total, row.Municipality)
	}
}

func TestByMunicipality_NonCanonicalKeptInRawOnly(t *testing.T) {
	tbl := ByMunicipality([]model.DetailRecord{
		detail(model.RawRecord{"ID_MN_RESI": "SANTA ROZA", "CLASSI_FIN": "5"}),
		detail(model.RawRecord{"ID_MN_RESI": "SANTA ROSA", "CLASSI_FIN": "5"}),
	})

	raw, ok := tbl.Raw["SANTA ROZA"]
	require.True(t, ok)
	assert.Equal(t, int64(1), raw.COVID)

	_, ok = tbl.Row("SANTA ROZA")
	assert.False(t, ok)
	assert.Len(t, tbl.Rows, 22)
	for _, row := range tbl.Rows {
		assert.NotEqual(t, "SANTA ROZA", row.Municipality)
	}
}

func TestIndicators_PathogenTruthiness(t *testing.T) {
	for _, v := range []string{"Sim", "sim", "1", "yes", " SIM "} {
		ind := Indicators(model.DetailRecord{RSV: v, Adeno: v, Rhino: v})
		assert.Equal(t, int64(1), ind.VSR, v)
		assert.Equal(t, int64(1), ind.Adeno, v)
		assert.Equal(t, int64(1), ind.Rino, v)
	}
	for _, v := range []string{"", " ", "2", "9", "Não"} {
		ind := Indicators(model.DetailRecord{RSV: v})
		assert.Zero(t, ind.VSR, v)
	}
}

func TestDeaths_GiruaCOVID(t *testing.T) {
	tbl := Deaths([]model.DetailRecord{
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "EVOLUCAO": "2", "CLASSI_FIN": "5"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "EVOLUCAO": "3", "CLASSI_FIN": "5"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "EVOLUCAO": "1", "CLASSI_FIN": "5"}),
		detail(model.RawRecord{"ID_MN_RESI": "GIRUA", "EVOLUCAO": "2", "CLASSI_FIN": ""}),
	})

	assert.Equal(t, int64(1), tbl.Lookup("GIRUA", "SRAG por Covid-19"))
	assert.Equal(t, int64(1), tbl.Lookup("GIRUA", "Suspeito"))
	assert.Equal(t, int64(2), tbl.Total("GIRUA"))
	assert.Zero(t, tbl.Lookup("SANTA ROSA", "SRAG por Covid-19"))

	want := []model.DeathCell{
		{Municipality: "GIRUA", Classification: "SRAG por Covid-19", Deaths: 1},
		{Municipality: "GIRUA", Classification: "Suspeito", Deaths: 1},
	}
	assert.Equal(t, want, tbl.Cells())
}

func TestConsolidate(t *testing.T) {
	rows := Consolidate([]model.DetailRecord{
		detail(model.RawRecord{"ID_MN_RESI": "HORIZONTINA", "CLASSI_FIN": "5", "EVOLUCAO": "2"}),
		detail(model.RawRecord{"ID_MN_RESI": "HORIZONTINA", "CLASSI_FIN": "5"}),
		detail(model.RawRecord{"ID_MN_RESI": "HORIZONTINA", "CLASSI_FIN": "1", "EVOLUCAO": "2"}),
		detail(model.RawRecord{"ID_MN_RESI": "HORIZONTINA", "CLASSI_FIN": "5", "PCR_VSR": "1"}),
		detail(model.RawRecord{"ID_MN_RESI": "HORIZONTINA", "CLASSI_FIN": "4"}),
		detail(model.RawRecord{"ID_MN_RESI": "ELSEWHERE", "CLASSI_FIN": "5"}),
	})
	require.Len(t, rows, 22)

	var got model.ConsolidatedRow
	for _, r := range rows {
		if r.Municipality == "HORIZONTINA" {
			got = r
		}
	}
	want := model.ConsolidatedRow{
		Municipality:    "HORIZONTINA",
		CasesCOVID:      2,
		CasesInfluenza:  1,
		CasesVSR:        1,
		DeathsCOVID:     1,
		DeathsInfluenza: 1,
	}
	assert.Equal(t, want, got)
}
