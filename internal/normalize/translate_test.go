package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/gyeh/sragstats/internal/model"
)

func TestCodeTables(t *testing.T) {
	cases := []struct {
		table CodeTable
		code  string
		want  string
	}{
		{Criterion, "1", "laboratorial"},
		{Criterion, "2", "clinico-epidemiologico"},
		{Criterion, "3", "clinico"},
		{Criterion, "4", "clinico-imagem"},
		{ICU, "1", "Sim"},
		{ICU, "2", "Não"},
		{ICU, "9", "Ignorado"},
		{Classification, "1", "SRAG por influenza"},
		{Classification, "2", "SRAG por outro vírus respiratório"},
		{Classification, "3", "SRAG por outro agente etiológico"},
		{Classification, "4", "SRAG não especificado"},
		{Classification, "5", "SRAG por Covid-19"},
		{Evolution, "1", "Cura"},
		{Evolution, "2", "Óbito"},
		{Evolution, "3", "Óbito por outras causas"},
		{Evolution, "9", "Ignorado"},
		{PCRResult, "1", "Detectável"},
		{PCRResult, "2", "Não detectável"},
		{PCRResult, "3", "Inconclusivo"},
		{PCRResult, "4", "Não realizado"},
		{PCRResult, "5", "Aguardando resultado"},
		{PCRResult, "9", "Ignorado"},
		{FluType, "1", "Influenza A"},
		{FluType, "2", "Influenza B"},
		{FluASubtype, "1", "Influenza A (H1N1)"},
		{FluASubtype, "2", "Influenza A (H3N2)"},
		{FluASubtype, "3", "não subtipado"},
		{FluASubtype, "4", "não subtipável"},
		{FluASubtype, "5", "Inconclusivo"},
		{FluASubtype, "6", "Outro"},
		{FluBLineage, "1", "Victoria"},
		{FluBLineage, "2", "Yamagata"},
		{FluBLineage, "3", "não realizado"},
		{FluBLineage, "4", "Inconclusivo"},
		{FluBLineage, "5", "Outro"},
		{Pathogen, "1", "Sim"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, c.table.Translate(c.code), "%s code %q", c.table.Field, c.code)
	}
}

func TestTranslate_EmptyCodeAsymmetry(t *testing.T) {
	assert.Equal(t, "Suspeito", Classification.Translate(""))
	assert.Equal(t, "Aguardando", Evolution.Translate(""))

	for _, tbl := range []CodeTable{Criterion, ICU, PCRResult, FluType, FluASubtype, FluBLineage, Pathogen} {
		assert.Equal(t, "", tbl.Translate(""), tbl.Field)
	}
}

func TestTranslate_UnmappedPassesThrough(t *testing.T) {
	all := []CodeTable{Criterion, ICU, Classification, Evolution, PCRResult, FluType, FluASubtype, FluBLineage, Pathogen}
	for _, tbl := range all {
		for _, code := range []string{"7", "99", "X", " ", "1 "} {
			got := tbl.Translate(code)
			assert.Equal(t, code, got, "%s code %q", tbl.Field, code)
			assert.Equal(t, got, tbl.Translate(got), "translation of an unmapped code is idempotent")
		}
	}
	assert.Equal(t, "2", Pathogen.Translate("2"))
	assert.Equal(t, "9", Pathogen.Translate("9"))
}

func TestIsAffirmative(t *testing.T) {
	for _, v := range []string{"Sim", "sim", " SIM ", "yes", "1", " 1"} {
		assert.True(t, IsAffirmative(v), v)
	}
	for _, v := range []string{"", " ", "2", "Não", "9", "si"} {
		assert.False(t, IsAffirmative(v), v)
	}
}

func TestObserve(t *testing.T) {
	assert.Equal(t, Presence{Value: "", Present: false}, Observe(""))
	assert.Equal(t, Presence{Value: " ", Present: true}, Observe(" "))
	assert.Equal(t, Presence{Value: "5", Present: true}, Observe("5"))
}

func TestToDetailRecord(t *testing.T) {
	rec := model.RawRecord{
		model.FieldPatientName:      "X",
		model.FieldMunicipality:     "GIRUA",
		model.FieldNotificationDate: "15/03/2021",
		model.FieldCriterion:        "1",
		model.FieldICU:              "1",
		model.FieldClassification:   "5",
		model.FieldEvolution:        "",
		model.FieldPCRResult:        "1",
		model.FieldRSV:              "1",
		model.FieldPara1:            " ",
	}

	d, notified := ToDetailRecord(rec)
	if assert.NotNil(t, notified) {
		assert.Equal(t, "2021-03-15", d.NotificationDate)
	}
	assert.Equal(t, "GIRUA", d.Municipality)
	assert.Equal(t, "laboratorial", d.Criterion)
	assert.Equal(t, "Sim", d.ICU)
	assert.Equal(t, "SRAG por Covid-19", d.Classification)
	assert.Equal(t, "Aguardando", d.Evolution)
	assert.Equal(t, "Detectável", d.PCRResult)
	assert.Equal(t, "Sim", d.RSV)
	assert.Equal(t, " ", d.Para1)
	assert.Equal(t, "", d.Adeno)
}
