package observability

import (
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
)

// Metrics holds the Prometheus collectors for one pipeline invocation.
type Metrics struct {
	UploadsRead   prometheus.Counter
	UploadsFailed prometheus.Counter
	TablesParsed  prometheus.Counter
	TablesSkipped *prometheus.CounterVec // labels: reason={malformed,missing_field}
	RecordsRead   prometheus.Counter
	RecordsRegion prometheus.Counter
	ICUPatients   prometheus.Gauge
	DateWarnings  prometheus.Counter
	RunDuration   prometheus.Gauge
	LastRunTime   prometheus.Gauge
}

// NewMetrics creates the run metrics and registers them with reg.
func NewMetrics(reg prometheus.Registerer) *Metrics {
	m := &Metrics{
		UploadsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "uploads_read_total",
			Help:      "Archives extracted successfully.",
		}),
		UploadsFailed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "uploads_failed_total",
			Help:      "Archives that could not be read.",
		}),
		TablesParsed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "tables_parsed_total",
			Help:      "dBase tables that contributed records.",
		}),
		TablesSkipped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "tables_skipped_total",
			Help:      "dBase tables skipped, by reason.",
		}, []string{"reason"}),
		RecordsRead: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "records_read_total",
			Help:      "Records read from all contributing tables.",
		}),
		RecordsRegion: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "records_region_total",
			Help:      "Records residing in the monitored region.",
		}),
		ICUPatients: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srag",
			Name:      "icu_watch_patients",
			Help:      "Confirmed COVID-19 patients currently in ICU.",
		}),
		DateWarnings: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "srag",
			Name:      "date_parse_warnings_total",
			Help:      "Notification dates that could not be parsed.",
		}),
		RunDuration: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srag",
			Name:      "run_duration_seconds",
			Help:      "Wall time of the last pipeline run.",
		}),
		LastRunTime: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: "srag",
			Name:      "last_run_timestamp_seconds",
			Help:      "Unix time the last pipeline run finished.",
		}),
	}

	reg.MustRegister(
		m.UploadsRead,
		m.UploadsFailed,
		m.TablesParsed,
		m.TablesSkipped,
		m.RecordsRead,
		m.RecordsRegion,
		m.ICUPatients,
		m.DateWarnings,
		m.RunDuration,
		m.LastRunTime,
	)

	return m
}

// WriteTextfile writes every metric gathered by g to path in the Prometheus
// text format, for pickup by a node_exporter textfile collector.
func WriteTextfile(path string, g prometheus.Gatherer) error {
	if err := prometheus.WriteToTextfile(path, g); err != nil {
		return fmt.Errorf("write metrics textfile: %w", err)
	}
	return nil
}
