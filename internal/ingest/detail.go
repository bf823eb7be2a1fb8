package ingest

import (
	"sort"
	"time"

	"github.com/gyeh/sragstats/internal/model"
	"github.com/gyeh/sragstats/internal/normalize"
)

// BuildDetail restricts records to the monitored region, translates every
// coded field and orders the result by notification date. Records without a
// usable date are kept after all dated records, in collection order. Dates
// that are present but unparseable are reported through warn.
func BuildDetail(records []SourcedRecord, warn func(Warning)) []model.DetailRecord {
	type keyed struct {
		detail   model.DetailRecord
		notified *time.Time
	}

	rows := make([]keyed, 0, len(records))
	for _, sr := range records {
		if sr.Record.Get(model.FieldRegion) != model.Region {
			continue
		}
		d, notified := normalize.ToDetailRecord(sr.Record)
		raw := sr.Record.Get(model.FieldNotificationDate)
		if notified == nil && normalize.Observe(raw).Present && warn != nil {
			warn(Warning{
				Source: sr.File,
				Err: &DateParseWarning{
					File:    sr.File,
					Patient: d.PatientName,
					Value:   raw,
				},
			})
		}
		rows = append(rows, keyed{detail: d, notified: notified})
	}

	sort.SliceStable(rows, func(i, j int) bool {
		a, b := rows[i].notified, rows[j].notified
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		default:
			return a.Before(*b)
		}
	})

	out := make([]model.DetailRecord, len(rows))
	for i, r := range rows {
		out[i] = r.detail
	}
	return out
}
