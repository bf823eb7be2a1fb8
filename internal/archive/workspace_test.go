package archive

import (
	"archive/zip"
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func zipOf(t *testing.T, files map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, body := range files {
		w, err := zw.Create(name)
		require.NoError(t, err)
		_, err = w.Write([]byte(body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())
	return buf.Bytes()
}

func TestExtract_ListsTablesSortedByName(t *testing.T) {
	ws, err := Acquire(t.TempDir(), "run")
	require.NoError(t, err)
	defer ws.Release()

	_, err = ws.Extract(Upload{Name: "b.zip", Data: zipOf(t, map[string]string{
		"SRAG2022.DBF": "x",
		"notes.txt":    "ignored",
	})})
	require.NoError(t, err)

	found, err := ws.Extract(Upload{Name: "a.zip", Data: zipOf(t, map[string]string{
		"sub/SRAG2020.dbf": "x",
		"SRAG2021.dbf":     "x",
		"SRAG2021.dbt":     "memo",
	})})
	require.NoError(t, err)
	assert.Len(t, found, 2)

	var names []string
	for _, tf := range ws.Tables() {
		names = append(names, tf.Name())
		assert.FileExists(t, tf.Path)
	}
	assert.Equal(t, []string{"SRAG2020.dbf", "SRAG2021.dbf", "SRAG2022.DBF"}, names)
}

func TestExtract_SameNameKeepsUploadOrder(t *testing.T) {
	ws, err := Acquire(t.TempDir(), "run")
	require.NoError(t, err)
	defer ws.Release()

	for _, up := range []string{"first.zip", "second.zip"} {
		_, err := ws.Extract(Upload{Name: up, Data: zipOf(t, map[string]string{"SRAG.dbf": up})})
		require.NoError(t, err)
	}

	tables := ws.Tables()
	require.Len(t, tables, 2)
	assert.Equal(t, "first.zip", tables[0].Upload)
	assert.Equal(t, "second.zip", tables[1].Upload)
}

func TestExtract_CorruptArchive(t *testing.T) {
	ws, err := Acquire(t.TempDir(), "run")
	require.NoError(t, err)
	defer ws.Release()

	_, err = ws.Extract(Upload{Name: "broken.zip", Data: []byte("not a zip")})
	var cae *CorruptArchiveError
	require.True(t, errors.As(err, &cae))
	assert.Equal(t, "broken.zip", cae.Upload)
	assert.Empty(t, ws.Tables())
}

func TestExtract_RejectsEscapingEntries(t *testing.T) {
	ws, err := Acquire(t.TempDir(), "run")
	require.NoError(t, err)
	defer ws.Release()

	_, err = ws.Extract(Upload{Name: "evil.zip", Data: zipOf(t, map[string]string{"../../evil.dbf": "x"})})
	var cae *CorruptArchiveError
	assert.True(t, errors.As(err, &cae))
	assert.Empty(t, ws.Tables())
}

func TestRelease_RemovesEverything(t *testing.T) {
	parent := t.TempDir()
	ws, err := Acquire(parent, "run")
	require.NoError(t, err)

	_, err = ws.Extract(Upload{Name: "a.zip", Data: zipOf(t, map[string]string{"SRAG.dbf": "x"})})
	require.NoError(t, err)
	dir := ws.Dir()
	assert.DirExists(t, dir)

	require.NoError(t, ws.Release())
	_, statErr := os.Stat(dir)
	assert.True(t, os.IsNotExist(statErr))
	require.NoError(t, ws.Release())

	entries, err := os.ReadDir(parent)
	require.NoError(t, err)
	assert.Empty(t, entries)

	_, err = ws.Extract(Upload{Name: "late.zip", Data: zipOf(t, nil)})
	assert.Error(t, err)
	_, statErr = os.Stat(filepath.Join(dir, "1"))
	assert.True(t, os.IsNotExist(statErr))
}

func TestExtract_RepeatedEntryNamesKeepEveryCopy(t *testing.T) {
	ws, err := Acquire(t.TempDir(), "run")
	require.NoError(t, err)
	defer ws.Release()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, e := range []struct{ name, body string }{
		{"SRAG2021.dbf", "first"},
		{"SRAG2021.dbt", "first memo"},
		{"SRAG2021.dbf", "second"},
		{"SRAG2021.dbt", "second memo"},
	} {
		w, err := zw.Create(e.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(e.body))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	found, err := ws.Extract(Upload{Name: "dup.zip", Data: buf.Bytes()})
	require.NoError(t, err)
	require.Len(t, found, 2)
	assert.NotEqual(t, found[0].Path, found[1].Path)

	tables := ws.Tables()
	require.Len(t, tables, 2)
	for i, want := range []string{"first", "second"} {
		data, err := os.ReadFile(tables[i].Path)
		require.NoError(t, err)
		assert.Equal(t, want, string(data))

		memo, err := os.ReadFile(filepath.Join(filepath.Dir(tables[i].Path), "SRAG2021.dbt"))
		require.NoError(t, err)
		assert.Equal(t, want+" memo", string(memo))
	}
}
