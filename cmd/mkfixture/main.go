// mkfixture writes a synthetic SIVEP-Gripe zip archive for local runs.
// Records cycle through the regional municipalities, classifications,
// outcomes and laboratory results so every report has non-zero cells.
// Usage: go run ./cmd/mkfixture --out testdata/srag-sample.zip --rows 500
package main

import (
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/gyeh/sragstats/internal/fixture"
	"github.com/gyeh/sragstats/internal/model"
)

func main() {
	out := flag.String("out", "testdata/srag-sample.zip", "output zip archive")
	rows := flag.Int("rows", 500, "records per table")
	years := flag.Int("years", 2, "number of yearly tables, starting at 2021")
	seed := flag.Int64("seed", 1, "random seed")
	corrupt := flag.Bool("corrupt", false, "also add an unreadable table to the archive")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))

	var files []fixture.File
	for y := 0; y < *years; y++ {
		year := 2021 + y
		recs := make([]model.RawRecord, *rows)
		for i := range recs {
			recs[i] = synthesize(rng, year, i)
		}
		data, err := fixture.Table(fixture.Columns, recs)
		if err != nil {
			fmt.Fprintf(os.Stderr, "build table: %v\n", err)
			os.Exit(1)
		}
		files = append(files, fixture.File{Name: fmt.Sprintf("SRAG%d.dbf", year), Data: data})
	}
	if *corrupt {
		files = append(files, fixture.File{Name: "CORROMPIDO.dbf", Data: []byte("not a dbase table")})
	}

	data, err := fixture.Zip(files...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "build archive: %v\n", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "write archive: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %d tables x %d records to %s (%d bytes)\n", len(files), *rows, *out, len(data))
}

var (
	classifications = []string{"1", "2", "3", "4", "5", "5", "5", ""}
	evolutions      = []string{"1", "1", "2", "3", "9", ""}
	pcrResults      = []string{"1", "2", "3", "4", "5", "9", ""}
	otherRegions    = []string{"017 CRS", "012 CRS"}
)

// synthesize builds one record. Roughly one in ten falls outside the region,
// and a few carry dates that do not parse.
func synthesize(rng *rand.Rand, year, i int) model.RawRecord {
	region := model.Region
	if rng.Intn(10) == 0 {
		region = otherRegions[rng.Intn(len(otherRegions))]
	}
	municipality := model.CanonicalMunicipalities[rng.Intn(len(model.CanonicalMunicipalities))]
	notified := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC).AddDate(0, 0, rng.Intn(365))
	notifiedText := notified.Format("02/01/2006")
	if rng.Intn(50) == 0 {
		notifiedText = "99/99/9999"
	}

	classification := pick(rng, classifications)
	rec := fixture.Record(
		model.FieldPatientName, fmt.Sprintf("PACIENTE %d-%04d", year, i),
		model.FieldRegion, region,
		model.FieldMunicipality, municipality,
		model.FieldNotificationDate, notifiedText,
		model.FieldSymptomOnset, notified.AddDate(0, 0, -rng.Intn(10)).Format("02/01/2006"),
		model.FieldCriterion, pick(rng, []string{"1", "2", "3", "4"}),
		model.FieldICU, pick(rng, []string{"1", "1", "2", "9"}),
		model.FieldClassification, classification,
		model.FieldEvolution, pick(rng, evolutions),
		model.FieldPCRResult, pick(rng, pcrResults),
	)
	if rec[model.FieldICU] == "1" && rng.Intn(2) == 0 {
		rec[model.FieldICUDischarge] = notified.AddDate(0, 0, 7+rng.Intn(14)).Format("02/01/2006")
	}
	if rec[model.FieldEvolution] != "" {
		rec[model.FieldEvolutionDate] = notified.AddDate(0, 0, 10+rng.Intn(30)).Format("02/01/2006")
	}

	switch classification {
	case "1":
		rec[model.FieldFluType] = pick(rng, []string{"1", "2"})
		if rec[model.FieldFluType] == "1" {
			rec[model.FieldFluASubtype] = pick(rng, []string{"1", "2", "3", "4", "5", "6"})
		} else {
			rec[model.FieldFluBLineage] = pick(rng, []string{"1", "2", "3", "4", "5"})
		}
	case "2":
		for _, f := range []string{model.FieldRSV, model.FieldAdeno, model.FieldRhino, model.FieldPara1} {
			if rng.Intn(3) == 0 {
				rec[f] = "1"
			}
		}
	}
	return rec
}

func pick(rng *rand.Rand, vals []string) string {
	return vals[rng.Intn(len(vals))]
}
