// Package export writes the run's views to an output directory.
package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"

	"github.com/gyeh/sragstats/internal/ingest"
	"github.com/gyeh/sragstats/internal/model"
)

// Artifact file names.
const (
	ICUFile                 = "pacientes_uti.csv"
	MunicipalityFile        = "casos_municipio.csv"
	ConsolidatedFile        = "casos_obitos_municipio.csv"
	DeathsFile              = "obitos_municipio.csv"
	DetailFile              = "dados_detalhados.csv"
	DetailParquetFile       = "dados_detalhados.parquet"
	MunicipalityParquetFile = "casos_municipio.parquet"
	MapFile                 = "mapa.geojson"
)

// WriteFile creates path and fills it with write. The file is removed when
// write fails so no partial artifact is left behind.
func WriteFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", filepath.Base(path), err)
	}
	if err := write(f); err != nil {
		f.Close()
		os.Remove(path)
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("close %s: %w", filepath.Base(path), err)
	}
	return nil
}

// WriteAll writes every CSV view of res into dir, plus Parquet copies of the
// detail and municipality tables when parquet is set. It returns the paths
// written.
func WriteAll(log zerolog.Logger, dir string, res *ingest.Result, parquet bool) ([]string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	type artifact struct {
		name  string
		rows  int
		write func(io.Writer) error
	}
	deaths := res.Deaths.Cells()
	artifacts := []artifact{
		{ICUFile, len(res.ICU), func(w io.Writer) error {
			return WriteCSV(w, model.ICUColumns(), res.ICU)
		}},
		{MunicipalityFile, len(res.Aggregate.Rows), func(w io.Writer) error {
			return WriteCSV(w, model.MunicipalityColumns(), res.Aggregate.Rows)
		}},
		{ConsolidatedFile, len(res.Consolidated), func(w io.Writer) error {
			return WriteCSV(w, model.ConsolidatedColumns(), res.Consolidated)
		}},
		{DeathsFile, len(deaths), func(w io.Writer) error {
			return WriteCSV(w, model.DeathColumns(), deaths)
		}},
		{DetailFile, len(res.Detail), func(w io.Writer) error {
			return WriteCSV(w, model.DetailColumns(), res.Detail)
		}},
	}
	if parquet {
		artifacts = append(artifacts,
			artifact{DetailParquetFile, len(res.Detail), func(w io.Writer) error {
				return WriteParquet(w, res.Detail)
			}},
			artifact{MunicipalityParquetFile, len(res.Aggregate.Rows), func(w io.Writer) error {
				return WriteParquet(w, res.Aggregate.Rows)
			}},
		)
	}

	written := make([]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := filepath.Join(dir, a.name)
		if err := WriteFile(path, a.write); err != nil {
			return written, err
		}
		log.Info().Str("file", a.name).Int("rows", a.rows).Msg("artifact written")
		written = append(written, path)
	}
	return written, nil
}
