package dbf

import (
	"bufio"
	"encoding/binary"
	"fmt"
	"io"
	"strings"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"

	"github.com/gyeh/sragstats/internal/model"
)

// Write encodes records as a dBase III table with the given columns.
// Values are encoded as ISO-8859-1; characters outside it are replaced.
// Memo columns are not supported.
func Write(w io.Writer, fields []Field, records []model.RawRecord) error {
	recordLen := 1
	for _, f := range fields {
		if f.Type == 'M' {
			return fmt.Errorf("field %s: memo columns are not supported", f.Name)
		}
		if len(f.Name) > 10 {
			return fmt.Errorf("field %s: name longer than 10 bytes", f.Name)
		}
		if f.Length <= 0 || f.Length > 254 {
			return fmt.Errorf("field %s: invalid length %d", f.Name, f.Length)
		}
		recordLen += f.Length
	}
	headerLen := headerSize + len(fields)*descriptorSize + 1

	bw := bufio.NewWriter(w)

	hdr := make([]byte, headerSize)
	hdr[0] = 0x03
	hdr[1], hdr[2], hdr[3] = 124, 1, 1
	binary.LittleEndian.PutUint32(hdr[4:8], uint32(len(records)))
	binary.LittleEndian.PutUint16(hdr[8:10], uint16(headerLen))
	binary.LittleEndian.PutUint16(hdr[10:12], uint16(recordLen))
	bw.Write(hdr)

	for _, f := range fields {
		d := make([]byte, descriptorSize)
		copy(d[:11], f.Name)
		d[11] = f.Type
		d[16] = byte(f.Length)
		d[17] = byte(f.Decimals)
		bw.Write(d)
	}
	bw.WriteByte(fieldTerminator)

	enc := encoding.ReplaceUnsupported(charmap.ISO8859_1.NewEncoder())
	for i, rec := range records {
		bw.WriteByte(' ')
		for _, f := range fields {
			val, err := enc.String(rec[f.Name])
			if err != nil {
				return fmt.Errorf("record %d field %s: encode: %w", i+1, f.Name, err)
			}
			if len(val) > f.Length {
				val = val[:f.Length]
			}
			pad := strings.Repeat(" ", f.Length-len(val))
			if f.Type == 'N' || f.Type == 'F' {
				bw.WriteString(pad + val)
			} else {
				bw.WriteString(val + pad)
			}
		}
	}
	bw.WriteByte(eofMarker)

	return bw.Flush()
}

// CharFields builds character columns of a common width, a convenience for
// writing fixtures.
func CharFields(width int, names ...string) []Field {
	fields := make([]Field, len(names))
	for i, n := range names {
		fields[i] = Field{Name: n, Type: 'C', Length: width}
	}
	return fields
}
