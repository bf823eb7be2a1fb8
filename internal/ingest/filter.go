package ingest

import (
	"sort"

	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

// Raw codes the ICU watch predicate matches on.
const (
	codeConfirmedCOVID = "5"
	codeInICU          = "1"
)

// IsICUWatch reports whether rec is a confirmed COVID-19 patient of the
// monitored region who entered ICU and has no discharge date. A non-empty
// discharge value excludes the record whether or not it parses as a date.
func IsICUWatch(rec model.RawRecord) bool {
	return rec.Get(model.FieldClassification) == codeConfirmedCOVID &&
		rec.Get(model.FieldRegion) == model.Region &&
		rec.Get(model.FieldICU) == codeInICU &&
		!normalize.Observe(rec.Get(model.FieldICUDischarge)).Present
}

// CheckFields returns a MissingFieldError for the first required column
// absent from fields.
func CheckFields(file string, fields []string) error {
	have := make(map[string]struct{}, len(fields))
	for _, f := range fields {
		have[f] = struct{}{}
	}
	for _, req := range model.RequiredFields {
		if _, ok := have[req]; !ok {
			return &MissingFieldError{File: file, Field: req}
		}
	}
	return nil
}

// ICUSubset projects ICU watch records onto the patient list, drops
// duplicate rows and orders the result by municipality. Records keep their
// collection order within a municipality.
func ICUSubset(records []model.RawRecord) []model.ICUPatient {
	seen := make(map[string]struct{}, len(records))
	out := make([]model.ICUPatient, 0, len(records))
	for _, rec := range records {
		p := model.ICUPatient{
			PatientName:      rec.Get(model.FieldPatientName),
			Municipality:     rec.Get(model.FieldMunicipality),
			NotificationDate: rec.Get(model.FieldNotificationDate),
		}
		key := normalize.RowHash(map[string]string{
			model.FieldPatientName:      p.PatientName,
			model.FieldMunicipality:     p.Municipality,
			model.FieldNotificationDate: p.NotificationDate,
		})
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, p)
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Municipality < out[j].Municipality
	})
	return out
}
