package ingest

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jonboulle/clockwork"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"

	"github.com/gyeh/sragstats/internal/aggregate"
	"github.com/gyeh/sragstats/internal/archive"
	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/observability"
)

// Options configures a Pipeline. Zero values are usable.
type Options struct {
	TempDir  string              // parent of the extraction workspace
	Clock    clockwork.Clock     // real clock when nil
	Registry *prometheus.Registry // fresh registry when nil
}

// Pipeline runs one ingest invocation end to end. It holds no record state
// between runs; each Run starts from the raw uploads.
type Pipeline struct {
	log      zerolog.Logger
	clock    clockwork.Clock
	tempDir  string
	registry *prometheus.Registry
	metrics  *observability.Metrics
}

// New creates a Pipeline and registers its metrics.
func New(log zerolog.Logger, opts Options) *Pipeline {
	if opts.Clock == nil {
		opts.Clock = clockwork.NewRealClock()
	}
	if opts.Registry == nil {
		opts.Registry = prometheus.NewRegistry()
	}
	return &Pipeline{
		log:      log,
		clock:    opts.Clock,
		tempDir:  opts.TempDir,
		registry: opts.Registry,
		metrics:  observability.NewMetrics(opts.Registry),
	}
}

// Registry returns the registry holding the run metrics.
func (p *Pipeline) Registry() *prometheus.Registry {
	return p.registry
}

// Result holds every view derived by one run.
type Result struct {
	RunID        string
	ICU          []model.ICUPatient
	Detail       []model.DetailRecord
	Aggregate    *aggregate.Table
	Deaths       *aggregate.DeathTable
	Consolidated []model.ConsolidatedRow
	Tables       []TableStats
	Warnings     []Warning
	Summary      model.RunSummary
}

// Run executes the pipeline: extract → collect → filter → detail →
// aggregate. The extraction workspace is released before Run returns, on
// every path. Only a run in which no upload can be read fails outright; all
// per-upload and per-table problems become warnings.
func (p *Pipeline) Run(ctx context.Context, uploads []archive.Upload) (res *Result, err error) {
	totalStart := p.clock.Now()
	runID := uuid.NewString()
	log := p.log.With().Str("run_id", runID).Logger()

	if len(uploads) == 0 {
		return nil, &PipelineError{Phase: "extract", Err: ErrNoUploads}
	}

	ws, err := archive.Acquire(p.tempDir, runID)
	if err != nil {
		return nil, &PipelineError{Phase: "workspace", Err: err}
	}
	defer func() {
		if relErr := ws.Release(); relErr != nil {
			log.Error().Err(relErr).Msg("workspace release failed")
			if err == nil {
				err = &PipelineError{Phase: "workspace", Err: relErr}
			}
		}
	}()

	res = &Result{RunID: runID}
	res.Summary.RunID = runID

	// Phase 1: Extract
	log.Info().Int("uploads", len(uploads)).Str("workspace", ws.Dir()).Msg("extracting uploads")
	for _, up := range uploads {
		if err := ctx.Err(); err != nil {
			return nil, &PipelineError{Phase: "extract", Err: err}
		}
		tables, exErr := ws.Extract(up)
		if exErr != nil {
			p.metrics.UploadsFailed.Inc()
			res.Summary.UploadsFailed++
			p.warn(log, res, Warning{Source: up.Name, Err: exErr})
			continue
		}
		p.metrics.UploadsRead.Inc()
		res.Summary.UploadsRead++
		log.Info().Str("upload", up.Name).Int("tables", len(tables)).Msg("upload extracted")
	}
	if res.Summary.UploadsRead == 0 {
		return nil, &PipelineError{Phase: "extract", Err: ErrNoReadableUploads}
	}

	// Phase 2: Collect
	coll, err := Collect(ctx, log, p.clock, ws.Tables())
	if err != nil {
		return nil, &PipelineError{Phase: "collect", Err: err}
	}
	for _, w := range coll.Warnings {
		p.metrics.TablesSkipped.WithLabelValues(w.Kind()).Inc()
		res.Warnings = append(res.Warnings, w)
	}
	res.Tables = coll.Tables
	res.Summary.TablesParsed = coll.Parsed()
	res.Summary.TablesSkipped = len(coll.Tables) - coll.Parsed()
	res.Summary.RecordsRead = int64(len(coll.Full))
	res.Summary.DurationCollect = coll.Duration
	p.metrics.TablesParsed.Add(float64(res.Summary.TablesParsed))
	p.metrics.RecordsRead.Add(float64(res.Summary.RecordsRead))

	// Phase 3: Transform
	transformStart := p.clock.Now()
	res.ICU = ICUSubset(coll.ICU)
	res.Detail = BuildDetail(coll.Full, func(w Warning) {
		res.Summary.DateWarnings++
		p.metrics.DateWarnings.Inc()
		p.warn(log, res, w)
	})
	res.Aggregate = aggregate.ByMunicipality(res.Detail)
	for name, row := range res.Aggregate.Raw {
		if !model.IsCanonicalMunicipality(name) {
			log.Info().Str("municipality", name).Int64("total", row.Total).
				Msg("municipality outside the canonical list left out of the aggregate")
		}
	}
	res.Deaths = aggregate.Deaths(res.Detail)
	res.Consolidated = aggregate.Consolidate(res.Detail)
	res.Summary.DurationTransform = p.clock.Since(transformStart)

	res.Summary.RecordsRegion = int64(len(res.Detail))
	res.Summary.ICUPatients = len(res.ICU)
	p.metrics.RecordsRegion.Add(float64(res.Summary.RecordsRegion))
	p.metrics.ICUPatients.Set(float64(res.Summary.ICUPatients))

	res.Summary.DurationTotal = p.clock.Since(totalStart)
	p.metrics.RunDuration.Set(res.Summary.DurationTotal.Seconds())
	p.metrics.LastRunTime.Set(float64(p.clock.Now().Unix()))

	log.Info().
		Int("uploads_read", res.Summary.UploadsRead).
		Int("uploads_failed", res.Summary.UploadsFailed).
		Int("tables_parsed", res.Summary.TablesParsed).
		Int("tables_skipped", res.Summary.TablesSkipped).
		Int64("records_read", res.Summary.RecordsRead).
		Int64("records_region", res.Summary.RecordsRegion).
		Int("icu_patients", res.Summary.ICUPatients).
		Int("warnings", len(res.Warnings)).
		Str("total_duration", res.Summary.DurationTotal.String()).
		Msg("ingest pipeline complete")

	return res, nil
}

func (p *Pipeline) warn(log zerolog.Logger, res *Result, w Warning) {
	log.Warn().Err(w.Err).Str("source", w.Source).Str("kind", w.Kind()).Msg("warning")
	res.Warnings = append(res.Warnings, w)
}

// Summarize renders a one-line description of a warning list for the CLI.
func Summarize(ws []Warning) string {
	counts := make(map[string]int)
	for _, w := range ws {
		counts[w.Kind()]++
	}
	return fmt.Sprintf("%d corrupt archive(s), %d malformed table(s), %d table(s) missing fields, %d unparseable date(s)",
		counts[KindCorruptArchive], counts[KindMalformedSource], counts[KindMissingField], counts[KindDateParse])
}
