package ingest

import (
	"context"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog"

	"github.com/gyeh/sragstats/internal/archive"
	"github.com/gyeh/sragstats/internal/dbf"
	"github.com/gyeh/sragstats/internal/model"
)

// SourcedRecord is a raw record tagged with the table it was read from.
type SourcedRecord struct {
	File   string
	Record model.RawRecord
}

// TableStats describes what one extracted table contributed.
type TableStats struct {
	Upload  string
	File    string
	Records int
	ICU     int
	Skipped string // warning kind when the table was skipped
}

// Collections is the result of folding every extracted table into the full
// and ICU watch record sets. It is built once per run and not mutated after.
type Collections struct {
	Full     []SourcedRecord
	ICU      []model.RawRecord
	Tables   []TableStats
	Warnings []Warning
	Duration time.Duration
}

// Parsed returns the number of tables that contributed records.
func (c *Collections) Parsed() int {
	n := 0
	for _, t := range c.Tables {
		if t.Skipped == "" {
			n++
		}
	}
	return n
}

// Collect reads tables in order and accumulates their records. A table that
// cannot be parsed or lacks a required field is skipped with a warning; it
// never aborts the batch. ctx is checked between tables.
func Collect(ctx context.Context, log zerolog.Logger, clock clockwork.Clock, tables []archive.TableFile) (*Collections, error) {
	start := clock.Now()
	c := &Collections{}

	for _, tf := range tables {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		c = collectTable(log, c, tf)
	}

	c.Duration = clock.Since(start)
	log.Info().
		Int("tables", len(c.Tables)).
		Int("tables_parsed", c.Parsed()).
		Int("records", len(c.Full)).
		Int("icu_records", len(c.ICU)).
		Dur("duration", c.Duration).
		Msg("collect complete")
	return c, nil
}

func collectTable(log zerolog.Logger, c *Collections, tf archive.TableFile) *Collections {
	stats := TableStats{Upload: tf.Upload, File: tf.Name()}

	skip := func(err error) *Collections {
		w := Warning{Source: tf.Name(), Err: err}
		stats.Skipped = w.Kind()
		log.Warn().Err(err).Str("upload", tf.Upload).Str("file", tf.Name()).Msg("table skipped")
		c.Tables = append(c.Tables, stats)
		c.Warnings = append(c.Warnings, w)
		return c
	}

	table, err := dbf.Open(tf.Path)
	if err != nil {
		return skip(err)
	}
	if err := CheckFields(tf.Name(), table.FieldNames()); err != nil {
		return skip(err)
	}

	for _, rec := range table.Records {
		c.Full = append(c.Full, SourcedRecord{File: tf.Name(), Record: rec})
		if IsICUWatch(rec) {
			c.ICU = append(c.ICU, rec)
			stats.ICU++
		}
	}
	stats.Records = len(table.Records)
	c.Tables = append(c.Tables, stats)

	log.Debug().
		Str("upload", tf.Upload).
		Str("file", tf.Name()).
		Int("records", stats.Records).
		Int("icu_records", stats.ICU).
		Msg("table collected")
	return c
}
