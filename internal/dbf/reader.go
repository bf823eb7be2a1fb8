package dbf

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"golang.org/x/text/encoding/charmap"

	"github.com/gyeh/sragstats/internal/model"
)

const (
	headerSize      = 32
	descriptorSize  = 32
	fieldTerminator = 0x0D
	eofMarker       = 0x1A
	deletedFlag     = '*'
)

// Field describes one column of a dBase table.
type Field struct {
	Name     string
	Type     byte // C, N, F, D, L, M, ...
	Length   int
	Decimals int
}

// Table is a fully decoded dBase file.
type Table struct {
	Path    string
	Fields  []Field
	Records []model.RawRecord
}

// FieldNames returns column names in declaration order.
func (t *Table) FieldNames() []string {
	names := make([]string, len(t.Fields))
	for i, f := range t.Fields {
		names[i] = f.Name
	}
	return names
}

// Open reads and decodes the table at path. Text is decoded as ISO-8859-1.
// A missing memo companion (.dbt/.fpt) is not an error; memo fields then
// read as empty.
func Open(path string) (*Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &MalformedSourceError{File: filepath.Base(path), Err: err}
	}

	memo, err := openMemo(path)
	if err != nil {
		return nil, &MalformedSourceError{File: filepath.Base(path), Err: err}
	}

	t, err := Parse(data, memo)
	if err != nil {
		return nil, &MalformedSourceError{File: filepath.Base(path), Err: err}
	}
	t.Path = path
	return t, nil
}

// Parse decodes a dBase table from memory. memo may be nil.
func Parse(data []byte, memo *Memo) (*Table, error) {
	if len(data) < headerSize+1 {
		return nil, fmt.Errorf("file too short for dbase header (%d bytes)", len(data))
	}
	if !knownVersion(data[0]) {
		return nil, fmt.Errorf("unknown dbase version byte 0x%02x", data[0])
	}

	numRecords := int(binary.LittleEndian.Uint32(data[4:8]))
	headerLen := int(binary.LittleEndian.Uint16(data[8:10]))
	recordLen := int(binary.LittleEndian.Uint16(data[10:12]))

	if headerLen < headerSize+1 || headerLen > len(data) {
		return nil, fmt.Errorf("invalid header length %d", headerLen)
	}

	fields, err := parseDescriptors(data[headerSize:headerLen])
	if err != nil {
		return nil, err
	}

	width := 1
	for _, f := range fields {
		width += f.Length
	}
	if width != recordLen {
		return nil, fmt.Errorf("record length %d does not match field widths %d", recordLen, width)
	}

	body := data[headerLen:]
	if need := numRecords * recordLen; len(body) < need {
		return nil, fmt.Errorf("truncated: header declares %d records, found %d", numRecords, len(body)/recordLen)
	}

	dec := charmap.ISO8859_1.NewDecoder()
	t := &Table{Fields: fields, Records: make([]model.RawRecord, 0, numRecords)}

	for i := 0; i < numRecords; i++ {
		raw := body[i*recordLen : (i+1)*recordLen]
		if raw[0] == eofMarker {
			break
		}
		if raw[0] == deletedFlag {
			continue
		}

		rec := make(model.RawRecord, len(fields))
		off := 1
		for _, f := range fields {
			cell := raw[off : off+f.Length]
			off += f.Length

			val, err := decodeCell(f, cell, memo)
			if err != nil {
				return nil, fmt.Errorf("record %d field %s: %w", i+1, f.Name, err)
			}
			text, err := dec.Bytes(val)
			if err != nil {
				return nil, fmt.Errorf("record %d field %s: decode: %w", i+1, f.Name, err)
			}
			rec[f.Name] = string(text)
		}
		t.Records = append(t.Records, rec)
	}

	return t, nil
}

func parseDescriptors(b []byte) ([]Field, error) {
	var fields []Field
	for off := 0; ; off += descriptorSize {
		if off >= len(b) {
			return nil, errors.New("field descriptor terminator not found")
		}
		if b[off] == fieldTerminator {
			break
		}
		if off+descriptorSize > len(b) {
			return nil, errors.New("field descriptor truncated")
		}
		d := b[off : off+descriptorSize]
		name := d[:11]
		if i := bytes.IndexByte(name, 0); i >= 0 {
			name = name[:i]
		}
		f := Field{
			Name:     strings.TrimSpace(string(name)),
			Type:     d[11],
			Length:   int(d[16]),
			Decimals: int(d[17]),
		}
		if f.Name == "" || f.Length == 0 {
			return nil, fmt.Errorf("invalid field descriptor at offset %d", off)
		}
		fields = append(fields, f)
	}
	if len(fields) == 0 {
		return nil, errors.New("table declares no fields")
	}
	return fields, nil
}

func decodeCell(f Field, cell []byte, memo *Memo) ([]byte, error) {
	switch f.Type {
	case 'C':
		return bytes.TrimRight(cell, " \x00"), nil
	case 'M':
		if memo == nil {
			return nil, nil
		}
		block, ok := memoBlock(cell)
		if !ok {
			return nil, nil
		}
		return memo.Text(block)
	default:
		return bytes.TrimSpace(bytes.Trim(cell, "\x00")), nil
	}
}

// memoBlock reads a memo pointer: ten ASCII digits in dBase III/IV files,
// a four-byte little-endian integer in Visual FoxPro files.
func memoBlock(cell []byte) (int, bool) {
	if len(cell) == 4 {
		n := int(binary.LittleEndian.Uint32(cell))
		return n, n > 0
	}
	s := strings.TrimSpace(string(bytes.Trim(cell, "\x00")))
	if s == "" {
		return 0, false
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return 0, false
	}
	return n, true
}

func knownVersion(v byte) bool {
	switch v {
	case 0x02, 0x03, 0x04, 0x05, 0x30, 0x31, 0x32, 0x43, 0x63, 0x83, 0x8B, 0x8E, 0xCB, 0xF5, 0xFB:
		return true
	}
	return false
}
