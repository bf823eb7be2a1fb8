package export

import (
	"encoding/csv"
	"fmt"
	"io"
)

// Row is anything that renders itself as one CSV record.
type Row interface {
	Values() []string
}

// WriteCSV writes header followed by one record per row. Output is UTF-8
// with no byte order mark.
func WriteCSV[T Row](w io.Writer, header []string, rows []T) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for i, r := range rows {
		vals := r.Values()
		if len(vals) != len(header) {
			return fmt.Errorf("row %d: %d values for %d columns", i+1, len(vals), len(header))
		}
		if err := cw.Write(vals); err != nil {
			return fmt.Errorf("write csv row %d: %w", i+1, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
