package ingest

import (
	"errors"
	"fmt"

	"github.com/gyeh/sragstats/internal/archive"
	"github.com/gyeh/sragstats/internal/dbf"
)

var (
	// ErrNoUploads is returned when a run is started without any archive.
	ErrNoUploads = errors.New("no uploads given")
	// ErrNoReadableUploads is returned when every upload failed to extract.
	ErrNoReadableUploads = errors.New("no upload could be read")
)

// PipelineError wraps an error with the phase where it occurred.
type PipelineError struct {
	Phase string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("%s: %s", e.Phase, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}

// MissingFieldError reports a table lacking a column the filters depend on.
// The table is skipped; other tables in the batch still contribute.
type MissingFieldError struct {
	File  string
	Field string
}

func (e *MissingFieldError) Error() string {
	return fmt.Sprintf("%s: missing field %s", e.File, e.Field)
}

// DateParseWarning reports a notification date that could not be parsed.
// The record is kept with no sort key and ordered after every dated record.
type DateParseWarning struct {
	File    string
	Patient string
	Value   string
}

func (e *DateParseWarning) Error() string {
	return fmt.Sprintf("%s: unparseable notification date %q for %s", e.File, e.Value, e.Patient)
}

// Warning kinds, also used as metric labels.
const (
	KindCorruptArchive  = "corrupt_archive"
	KindMalformedSource = "malformed"
	KindMissingField    = "missing_field"
	KindDateParse       = "date_parse"
	KindOther           = "other"
)

// Warning is a non-fatal problem surfaced to the caller.
type Warning struct {
	Source string // upload or table name
	Err    error
}

// Kind classifies the warning by its underlying error type.
func (w Warning) Kind() string {
	var (
		corrupt   *archive.CorruptArchiveError
		malformed *dbf.MalformedSourceError
		missing   *MissingFieldError
		date      *DateParseWarning
	)
	switch {
	case errors.As(w.Err, &corrupt):
		return KindCorruptArchive
	case errors.As(w.Err, &malformed):
		return KindMalformedSource
	case errors.As(w.Err, &missing):
		return KindMissingField
	case errors.As(w.Err, &date):
		return KindDateParse
	default:
		return KindOther
	}
}

func (w Warning) String() string {
	return fmt.Sprintf("%s [%s]: %v", w.Source, w.Kind(), w.Err)
}
