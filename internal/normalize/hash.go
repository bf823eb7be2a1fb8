package normalize

import (
	"crypto/sha256"
	"fmt"
	"sort"
)

// BytesHash computes the hex-encoded SHA-256 of data.
func BytesHash(data []byte) string {
	return fmt.Sprintf("%x", sha256.Sum256(data))
}

// RowHash computes a stable key over the full content of a row, so two rows
// hash equal iff they have the same columns and values.
// Fields are sorted by key name then concatenated with null separators.
func RowHash(fields map[string]string) string {
	keys := make([]string, 0, len(fields))
	for k := range fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	h := sha256.New()
	for _, k := range keys {
		h.Write([]byte(k))
		h.Write([]byte{0})
		h.Write([]byte(fields[k]))
		h.Write([]byte{0})
	}
	return string(h.Sum(nil))
}
