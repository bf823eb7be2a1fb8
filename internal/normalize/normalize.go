package normalize

import (
	"time"

	"github.com/gyeh/sragstats/internal/model"
)

// ToDetailRecord translates every coded field of rec and projects it onto the
// detail schema. The parsed notification date is returned alongside so the
// caller can sort on it; it is nil when the source date is empty or
// unparseable.
func ToDetailRecord(rec model.RawRecord) (model.DetailRecord, *time.Time) {
	notified := ParseDate(rec.Get(model.FieldNotificationDate))

	return model.DetailRecord{
		PatientName:      rec.Get(model.FieldPatientName),
		Municipality:     rec.Get(model.FieldMunicipality),
		NotificationDate: FormatDate(notified),
		SymptomOnsetDate: rec.Get(model.FieldSymptomOnset),
		Criterion:        Criterion.Translate(rec.Get(model.FieldCriterion)),
		ICU:              ICU.Translate(rec.Get(model.FieldICU)),
		ICUDischargeDate: rec.Get(model.FieldICUDischarge),
		Classification:   Classification.Translate(rec.Get(model.FieldClassification)),
		Evolution:        Evolution.Translate(rec.Get(model.FieldEvolution)),
		EvolutionDate:    rec.Get(model.FieldEvolutionDate),
		PCRResult:        PCRResult.Translate(rec.Get(model.FieldPCRResult)),
		FluType:          FluType.Translate(rec.Get(model.FieldFluType)),
		FluASubtype:      FluASubtype.Translate(rec.Get(model.FieldFluASubtype)),
		FluBLineage:      FluBLineage.Translate(rec.Get(model.FieldFluBLineage)),
		RSV:              Pathogen.Translate(rec.Get(model.FieldRSV)),
		Para1:            Pathogen.Translate(rec.Get(model.FieldPara1)),
		Para2:            Pathogen.Translate(rec.Get(model.FieldPara2)),
		Para3:            Pathogen.Translate(rec.Get(model.FieldPara3)),
		Para4:            Pathogen.Translate(rec.Get(model.FieldPara4)),
		Adeno:            Pathogen.Translate(rec.Get(model.FieldAdeno)),
		Rhino:            Pathogen.Translate(rec.Get(model.FieldRhino)),
	}, notified
}
