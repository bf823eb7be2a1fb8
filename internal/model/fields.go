package model

// Source column names as they appear in the SIVEP-Gripe dBase extracts.
const (
	FieldPatientName      = "NM_PACIENT"
	FieldRegion           = "ID_RG_RESI"
	FieldMunicipality     = "ID_MN_RESI"
	FieldNotificationDate = "DT_NOTIFIC"
	FieldSymptomOnset     = "DT_SIN_PRI"
	FieldCriterion        = "CRITERIO"
	FieldICU              = "UTI"
	FieldICUDischarge     = "DT_SAIDUTI"
	FieldClassification   = "CLASSI_FIN"
	FieldEvolution        = "EVOLUCAO"
	FieldEvolutionDate    = "DT_EVOLUCA"
	FieldPCRResult        = "PCR_RESUL"
	FieldFluType          = "TP_FLU_PCR"
	FieldFluASubtype      = "PCR_FLUASU"
	FieldFluBLineage      = "PCR_FLUBLI"
	FieldRSV              = "PCR_VSR"
	FieldPara1            = "PCR_PARA1"
	FieldPara2            = "PCR_PARA2"
	FieldPara3            = "PCR_PARA3"
	FieldPara4            = "PCR_PARA4"
	FieldAdeno            = "PCR_ADENO"
	FieldRhino            = "PCR_RINO"
)

// Region is the residence region code every view is restricted to.
const Region = "014 CRS"

// RequiredFields must all be present in a table for it to contribute to any
// collection. Laboratory and secondary date columns are optional and read as
// empty when a table predates them.
var RequiredFields = []string{
	FieldPatientName,
	FieldRegion,
	FieldMunicipality,
	FieldNotificationDate,
	FieldICU,
	FieldICUDischarge,
	FieldClassification,
	FieldEvolution,
}

// CanonicalMunicipalities lists the municipalities of the 14th regional health
// coordination in source spelling. Aggregates always carry one row per entry.
var CanonicalMunicipalities = []string{
	"ALECRIM",
	"ALEGRIA",
	"BOA VISTA DO BURICA",
	"CAMPINA DAS MISSOES",
	"CANDIDO GODOI",
	"DOUTOR MAURICIO CARDOSO",
	"GIRUA",
	"HORIZONTINA",
	"INDEPENDENCIA",
	"NOVA CANDELARIA",
	"NOVO MACHADO",
	"PORTO LUCENA",
	"PORTO MAUA",
	"PORTO VERA CRUZ",
	"SANTA ROSA",
	"SANTO CRISTO",
	"SAO JOSE DO INHACORA",
	"SAO PAULO DAS MISSOES",
	"SENADOR SALGADO FILHO",
	"TRES DE MAIO",
	"TUCUNDUVA",
	"TUPARENDI",
}

// IsCanonicalMunicipality reports whether name is one of CanonicalMunicipalities.
func IsCanonicalMunicipality(name string) bool {
	for _, m := range CanonicalMunicipalities {
		if m == name {
			return true
		}
	}
	return false
}
