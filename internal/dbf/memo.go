package dbf

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

const dbaseBlockSize = 512

// Memo holds the content of a .dbt or .fpt companion file.
type Memo struct {
	data      []byte
	blockSize int
	foxpro    bool
}

// NewMemo wraps memo file content. foxpro selects the .fpt block layout.
func NewMemo(data []byte, foxpro bool) *Memo {
	m := &Memo{data: data, blockSize: dbaseBlockSize, foxpro: foxpro}
	if foxpro && len(data) >= 8 {
		if bs := int(binary.BigEndian.Uint16(data[6:8])); bs > 0 {
			m.blockSize = bs
		}
	}
	return m
}

// Text returns the memo stored at block.
func (m *Memo) Text(block int) ([]byte, error) {
	start := block * m.blockSize
	if start >= len(m.data) {
		return nil, fmt.Errorf("memo block %d beyond end of memo file", block)
	}
	b := m.data[start:]

	if m.foxpro {
		if len(b) < 8 {
			return nil, fmt.Errorf("memo block %d truncated", block)
		}
		n := int(binary.BigEndian.Uint32(b[4:8]))
		if 8+n > len(b) {
			return nil, fmt.Errorf("memo block %d truncated", block)
		}
		return bytes.TrimRight(b[8:8+n], " \x00"), nil
	}

	// dBase IV blocks carry a FF FF 08 00 marker and a length.
	if len(b) >= 8 && b[0] == 0xFF && b[1] == 0xFF && b[2] == 0x08 && b[3] == 0x00 {
		n := int(binary.LittleEndian.Uint32(b[4:8]))
		if n < 8 || n > len(b) {
			return nil, fmt.Errorf("memo block %d truncated", block)
		}
		return b[8:n], nil
	}

	if i := bytes.IndexByte(b, eofMarker); i >= 0 {
		b = b[:i]
	}
	return bytes.TrimRight(b, " \x00"), nil
}

// openMemo loads the companion memo file of a table, or returns nil when none exists.
func openMemo(tablePath string) (*Memo, error) {
	base := strings.TrimSuffix(tablePath, filepath.Ext(tablePath))
	for _, ext := range []string{".dbt", ".DBT", ".fpt", ".FPT"} {
		data, err := os.ReadFile(base + ext)
		if os.IsNotExist(err) {
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("read memo file: %w", err)
		}
		return NewMemo(data, strings.EqualFold(ext, ".fpt")), nil
	}
	return nil, nil
}
