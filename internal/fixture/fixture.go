// Package fixture builds synthetic SIVEP-Gripe extracts for tests and for
// the mkfixture command.
package fixture

import (
	"archive/zip"
	"bytes"
	"fmt"

	"github.com/gyeh/sragstats/internal/dbf"
	"github.com/gyeh/sragstats/internal/model"
)

// Columns is the full column set written by Table, in file order.
var Columns = []string{
	model.FieldPatientName,
	model.FieldRegion,
	model.FieldMunicipality,
	model.FieldNotificationDate,
	model.FieldSymptomOnset,
	model.FieldCriterion,
	model.FieldICU,
	model.FieldICUDischarge,
	model.FieldClassification,
	model.FieldEvolution,
	model.FieldEvolutionDate,
	model.FieldPCRResult,
	model.FieldFluType,
	model.FieldFluASubtype,
	model.FieldFluBLineage,
	model.FieldRSV,
	model.FieldPara1,
	model.FieldPara2,
	model.FieldPara3,
	model.FieldPara4,
	model.FieldAdeno,
	model.FieldRhino,
}

const columnWidth = 40

// File is one entry of a zip archive.
type File struct {
	Name string
	Data []byte
}

// Record builds a raw record from alternating field/value pairs.
func Record(kv ...string) model.RawRecord {
	if len(kv)%2 != 0 {
		panic("fixture.Record: odd number of arguments")
	}
	rec := make(model.RawRecord, len(kv)/2)
	for i := 0; i < len(kv); i += 2 {
		rec[kv[i]] = kv[i+1]
	}
	return rec
}

// ICUCase is a confirmed COVID-19 patient of the monitored region still in
// ICU, notified on date (day-first).
func ICUCase(name, municipality, date string) model.RawRecord {
	return Record(
		model.FieldPatientName, name,
		model.FieldRegion, model.Region,
		model.FieldMunicipality, municipality,
		model.FieldNotificationDate, date,
		model.FieldICU, "1",
		model.FieldClassification, "5",
	)
}

// Table encodes records as a dBase table carrying columns.
func Table(columns []string, records []model.RawRecord) ([]byte, error) {
	var buf bytes.Buffer
	if err := dbf.Write(&buf, dbf.CharFields(columnWidth, columns...), records); err != nil {
		return nil, fmt.Errorf("write table: %w", err)
	}
	return buf.Bytes(), nil
}

// Zip packs files into a zip archive, in order.
func Zip(files ...File) ([]byte, error) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range files {
		w, err := zw.Create(f.Name)
		if err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
		if _, err := w.Write(f.Data); err != nil {
			return nil, fmt.Errorf("zip entry %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("close zip: %w", err)
	}
	return buf.Bytes(), nil
}
