package ingest

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/gyeh/sragstats/internal/archive"
	"github.com/gyeh/sragstats/internal/dbf"
	"github.com/gyeh/sragstats/internal/normalize"
)

// UploadInfo identifies one archive handed to the pipeline.
type UploadInfo struct {
	Name   string
	Path   string
	SHA256 string
	Size   int64
}

// LoadUploads reads every archive path into memory, in argument order.
func LoadUploads(log zerolog.Logger, paths []string) ([]archive.Upload, []UploadInfo, error) {
	uploads := make([]archive.Upload, 0, len(paths))
	infos := make([]UploadInfo, 0, len(paths))
	for _, p := range paths {
		data, err := os.ReadFile(p)
		if err != nil {
			return nil, nil, fmt.Errorf("read upload: %w", err)
		}
		info := UploadInfo{
			Name:   filepath.Base(p),
			Path:   p,
			SHA256: normalize.BytesHash(data),
			Size:   int64(len(data)),
		}
		log.Info().
			Str("upload", info.Name).
			Str("sha256", info.SHA256).
			Int64("bytes", info.Size).
			Msg("upload loaded")
		uploads = append(uploads, archive.Upload{Name: info.Name, Data: data})
		infos = append(infos, info)
	}
	return uploads, infos, nil
}

// TablePlan describes one table found during a dry run.
type TablePlan struct {
	Upload  string
	File    string
	Fields  int
	Records int
	Err     error // nil when the table would contribute
}

// PlanResult is the outcome of a dry run.
type PlanResult struct {
	Tables   []TablePlan
	Warnings []Warning
	Duration time.Duration
}

// Plan extracts and parses every upload without filtering or aggregating,
// reporting which tables would contribute and why others would be skipped.
// The workspace is released before Plan returns.
func Plan(ctx context.Context, log zerolog.Logger, clock clockwork.Clock, uploads []archive.Upload, tempDir, runID string) (res *PlanResult, err error) {
	start := clock.Now()
	if len(uploads) == 0 {
		return nil, ErrNoUploads
	}

	ws, err := archive.Acquire(tempDir, runID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if relErr := ws.Release(); relErr != nil {
			log.Warn().Err(relErr).Msg("workspace release failed")
		}
	}()

	res = &PlanResult{}
	readable := 0
	for _, up := range uploads {
		if _, err := ws.Extract(up); err != nil {
			res.Warnings = append(res.Warnings, Warning{Source: up.Name, Err: err})
			continue
		}
		readable++
	}
	if readable == 0 {
		return res, ErrNoReadableUploads
	}

	for _, tf := range ws.Tables() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		tp := TablePlan{Upload: tf.Upload, File: tf.Name()}
		table, err := dbf.Open(tf.Path)
		if err == nil {
			tp.Fields = len(table.Fields)
			tp.Records = len(table.Records)
			err = CheckFields(tf.Name(), table.FieldNames())
		}
		if err != nil {
			tp.Err = err
			res.Warnings = append(res.Warnings, Warning{Source: tf.Name(), Err: err})
		}
		res.Tables = append(res.Tables, tp)
	}

	res.Duration = clock.Since(start)
	return res, nil
}
