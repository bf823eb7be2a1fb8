package ingest

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/sragstats/internal/fixture"
	"github.com/gyeh/sragstats/internal/model"
)

func TestIsICUWatch(t *testing.T) {
	tests := []struct {
		name   string
		modify func(model.RawRecord)
		want   bool
	}{
		{"matches", func(model.RawRecord) {}, true},
		{"other classification", func(r model.RawRecord) { r[model.FieldClassification] = "1" }, false},
		{"other region", func(r model.RawRecord) { r[model.FieldRegion] = "017 CRS" }, false},
		{"not in ICU", func(r model.RawRecord) { r[model.FieldICU] = "2" }, false},
		{"discharged", func(r model.RawRecord) { r[model.FieldICUDischarge] = "03/02/2021" }, false},
		{"garbage discharge still excludes", func(r model.RawRecord) { r[model.FieldICUDischarge] = "??" }, false},
		{"blank discharge is present", func(r model.RawRecord) { r[model.FieldICUDischarge] = " " }, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := fixture.ICUCase("X", "SANTA ROSA", "01/02/2021")
			tt.modify(rec)
			assert.Equal(t, tt.want, IsICUWatch(rec))
		})
	}
}

func TestCheckFields(t *testing.T) {
	require.NoError(t, CheckFields("a.dbf", fixture.Columns))

	var cols []string
	for _, c := range fixture.Columns {
		if c != model.FieldICUDischarge {
			cols = append(cols, c)
		}
	}
	err := CheckFields("a.dbf", cols)
	var mfe *MissingFieldError
	require.True(t, errors.As(err, &mfe))
	assert.Equal(t, "a.dbf", mfe.File)
	assert.Equal(t, model.FieldICUDischarge, mfe.Field)

	assert.NoError(t, CheckFields("b.dbf", model.RequiredFields), "laboratory columns are optional")
}

func TestICUSubset_DedupesAndSortsByMunicipality(t *testing.T) {
	recs := []model.RawRecord{
		fixture.ICUCase("ANA", "TUPARENDI", "01/02/2021"),
		fixture.ICUCase("BRUNO", "GIRUA", "02/02/2021"),
		fixture.ICUCase("ANA", "TUPARENDI", "01/02/2021"),
		fixture.ICUCase("CARLA", "GIRUA", "03/02/2021"),
		fixture.ICUCase("ANA", "TUPARENDI", "05/02/2021"),
	}
	// Columns outside the projection do not keep duplicates apart.
	recs[2][model.FieldEvolution] = "1"

	got := ICUSubset(recs)
	want := []model.ICUPatient{
		{PatientName: "BRUNO", Municipality: "GIRUA", NotificationDate: "02/02/2021"},
		{PatientName: "CARLA", Municipality: "GIRUA", NotificationDate: "03/02/2021"},
		{PatientName: "ANA", Municipality: "TUPARENDI", NotificationDate: "01/02/2021"},
		{PatientName: "ANA", Municipality: "TUPARENDI", NotificationDate: "05/02/2021"},
	}
	assert.Equal(t, want, got)
}
