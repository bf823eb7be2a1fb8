package model

import "time"

// RunSummary captures metrics from a single pipeline invocation.
type RunSummary struct {
	RunID             string
	UploadsRead       int
	UploadsFailed     int
	TablesParsed      int
	TablesSkipped     int
	RecordsRead       int64
	RecordsRegion     int64
	ICUPatients       int
	DateWarnings      int
	DurationCollect   time.Duration
	DurationTransform time.Duration
	DurationTotal     time.Duration
}
