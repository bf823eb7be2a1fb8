package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/gyeh/sragstats/internal/config"
	"github.com/gyeh/sragstats/internal/exitcode"
	"github.com/gyeh/sragstats/internal/export"
	"github.com/gyeh/sragstats/internal/geo"
	"github.com/gyeh/sragstats/internal/ingest"
	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/observability"
)

var runCmd = &cobra.Command{
	Use:   "run <archive.zip>...",
	Short: "Process archives and write reports",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runRun,
}

func init() {
	f := runCmd.Flags()
	f.StringVar(&cfg.OutputDir, "out", "", "Output directory for reports (required)")
	f.StringSliceVar(&cfg.Formats, "format", nil, "Export formats: csv, parquet (default csv)")
	f.StringVar(&cfg.Metric, "metric", "", "Aggregate column joined onto the map (default TOTAL)")
	f.StringVar(&cfg.Boundaries, "boundaries", "", "GeoJSON municipality boundaries to join the metric onto")
	f.StringVar(&cfg.NameProperty, "name-property", "", "Feature property holding the municipality name (default name)")
	f.StringVar(&cfg.ValueProperty, "value-property", "", "Feature property the metric is written to (default: metric name)")
	f.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write run metrics in Prometheus text format to this file")
	rootCmd.AddCommand(runCmd)
}

func runRun(cmd *cobra.Command, args []string) error {
	log, err := setup(args)
	if err != nil {
		log.Error().Err(err).Msg("config load failed")
		os.Exit(exitcode.UsageError)
	}
	if err := cfg.ValidateWithOutput(); err != nil {
		log.Error().Err(err).Msg("config validation failed")
		os.Exit(exitcode.UsageError)
	}

	uploads, _, err := ingest.LoadUploads(log, cfg.Archives)
	if err != nil {
		log.Error().Err(err).Msg("failed to read archives")
		os.Exit(exitcode.ValidationError)
	}

	p := ingest.New(log, ingest.Options{TempDir: cfg.TempDir})
	res, err := p.Run(context.Background(), uploads)
	if err != nil {
		var pe *ingest.PipelineError
		if errors.As(err, &pe) {
			log.Error().Err(pe.Err).Str("phase", pe.Phase).Msg("pipeline failed")
			switch pe.Phase {
			case "extract":
				os.Exit(exitcode.ValidationError)
			case "workspace":
				os.Exit(exitcode.WorkspaceError)
			default:
				os.Exit(exitcode.TransformError)
			}
		}
		log.Error().Err(err).Msg("pipeline failed")
		os.Exit(exitcode.TransformError)
	}

	written, err := export.WriteAll(log, cfg.OutputDir, res, cfg.HasFormat(config.FormatParquet))
	if err != nil {
		log.Error().Err(err).Msg("export failed")
		os.Exit(exitcode.ExportError)
	}

	if cfg.Boundaries != "" {
		path, err := writeMap(log, res)
		if err != nil {
			log.Error().Err(err).Msg("map export failed")
			os.Exit(exitcode.ExportError)
		}
		written = append(written, path)
	}

	if cfg.MetricsFile != "" {
		if err := observability.WriteTextfile(cfg.MetricsFile, p.Registry()); err != nil {
			log.Warn().Err(err).Msg("metrics not written")
		}
	}

	fmt.Printf("Run %s: %d ICU patients, %d region records, %d reports written to %s (%.1fs)\n",
		res.RunID, res.Summary.ICUPatients, res.Summary.RecordsRegion, len(written),
		cfg.OutputDir, res.Summary.DurationTotal.Seconds())

	if len(res.Warnings) > 0 {
		fmt.Printf("Completed with warnings: %s\n", ingest.Summarize(res.Warnings))
		for _, w := range res.Warnings {
			fmt.Printf("  %s\n", w)
		}
		os.Exit(exitcode.PartialSuccess)
	}
	return nil
}

// writeMap joins the selected metric onto the boundary features and writes
// the result next to the other reports.
func writeMap(log zerolog.Logger, res *ingest.Result) (string, error) {
	metric, _ := model.MetricByName(cfg.Metric)
	fc, err := geo.LoadBoundaries(cfg.Boundaries)
	if err != nil {
		return "", err
	}

	values := geo.Join(res.Aggregate.Rows, metric)
	unmatched := geo.Inject(fc, values, cfg.NameProperty, cfg.ValueProperty)
	for _, name := range unmatched {
		log.Warn().
			Str("feature", name).
			Str("source_name", geo.SourceName(name)).
			Msg("boundary feature has no aggregate row, using 0")
	}

	path := filepath.Join(cfg.OutputDir, export.MapFile)
	err = export.WriteFile(path, func(w io.Writer) error {
		return geo.WriteBoundaries(w, fc)
	})
	if err != nil {
		return "", err
	}
	log.Info().
		Str("file", export.MapFile).
		Str("metric", metric.Name).
		Int("features", len(fc.Features)).
		Int("unmatched", len(unmatched)).
		Msg("map written")
	return path, nil
}
