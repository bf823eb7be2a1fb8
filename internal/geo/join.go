package geo

import (
	"github.com/gyeh/sragstats/internal/model"
)

// Join maps each aggregate row's display name to the selected metric.
func Join(rows []model.MunicipalityRow, metric model.Metric) map[string]int64 {
	out := make(map[string]int64, len(rows))
	for _, r := range rows {
		out[DisplayName(r.Municipality)] = metric.Value(r)
	}
	return out
}

// Value returns the joined value for a boundary feature name, 0 when absent.
func Value(values map[string]int64, name string) int64 {
	return values[name]
}
