package archive

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

// Upload is one archive blob as received from the caller.
type Upload struct {
	Name string
	Data []byte
}

// CorruptArchiveError reports an upload that is not a readable zip archive.
type CorruptArchiveError struct {
	Upload string
	Err    error
}

func (e *CorruptArchiveError) Error() string {
	return fmt.Sprintf("corrupt archive %s: %s", e.Upload, e.Err)
}

func (e *CorruptArchiveError) Unwrap() error {
	return e.Err
}

// TableFile is a .dbf file extracted into a workspace.
type TableFile struct {
	Upload string // name of the archive it came from
	Path   string
	order  int
}

// Name returns the base file name.
func (f TableFile) Name() string {
	return filepath.Base(f.Path)
}

// Workspace is a temporary extraction area scoped to one pipeline run.
// Every Workspace must be released; Release removes everything extracted.
type Workspace struct {
	dir     string
	uploads int
	tables  []TableFile
}

// Acquire creates a new workspace under parent (os.TempDir when empty).
func Acquire(parent, runID string) (*Workspace, error) {
	dir, err := os.MkdirTemp(parent, "srag-"+runID+"-")
	if err != nil {
		return nil, fmt.Errorf("create workspace: %w", err)
	}
	return &Workspace{dir: dir}, nil
}

// Dir returns the workspace root.
func (w *Workspace) Dir() string {
	return w.dir
}

// Release removes the workspace and all extracted files. Safe to call twice.
func (w *Workspace) Release() error {
	if w.dir == "" {
		return nil
	}
	err := os.RemoveAll(w.dir)
	w.dir = ""
	w.tables = nil
	if err != nil {
		return fmt.Errorf("release workspace: %w", err)
	}
	return nil
}

// Extract unpacks up into its own subdirectory and returns the tables it
// contained. A blob that is not a zip archive, or whose entries cannot be
// read, yields a *CorruptArchiveError; files already written for it are
// removed so it contributes nothing. Entries sharing a name are all kept and
// returned in archive order.
func (w *Workspace) Extract(up Upload) ([]TableFile, error) {
	if w.dir == "" {
		return nil, fmt.Errorf("workspace released")
	}

	zr, err := zip.NewReader(bytes.NewReader(up.Data), int64(len(up.Data)))
	if err != nil {
		return nil, &CorruptArchiveError{Upload: up.Name, Err: err}
	}

	w.uploads++
	dest := filepath.Join(w.dir, strconv.Itoa(w.uploads))
	if err := os.MkdirAll(dest, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}

	var found []TableFile
	seen := make(map[string]bool)
	for _, zf := range zr.File {
		path, err := entryPath(dest, zf.Name)
		if err != nil {
			os.RemoveAll(dest)
			return nil, &CorruptArchiveError{Upload: up.Name, Err: err}
		}
		if zf.FileInfo().IsDir() {
			continue
		}
		// A repeated entry name goes to its own numbered directory so both
		// copies are read. The k-th repeat of a table and of its memo land
		// in the same directory.
		for k := 1; seen[path]; k++ {
			path, _ = entryPath(filepath.Join(dest, "dup"+strconv.Itoa(k)), zf.Name)
		}
		seen[path] = true
		if err := extractFile(zf, path); err != nil {
			os.RemoveAll(dest)
			return nil, &CorruptArchiveError{Upload: up.Name, Err: err}
		}
		if strings.EqualFold(filepath.Ext(path), ".dbf") {
			found = append(found, TableFile{Upload: up.Name, Path: path, order: w.uploads})
		}
	}

	w.tables = append(w.tables, found...)
	return found, nil
}

// Tables returns every extracted table, sorted by file name; tables sharing
// a name keep upload order.
func (w *Workspace) Tables() []TableFile {
	out := make([]TableFile, len(w.tables))
	copy(out, w.tables)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Name() != out[j].Name() {
			return out[i].Name() < out[j].Name()
		}
		return out[i].order < out[j].order
	})
	return out
}

// entryPath resolves a zip entry name under dest, rejecting names that
// would escape it.
func entryPath(dest, name string) (string, error) {
	path := filepath.Join(dest, filepath.FromSlash(name))
	rel, err := filepath.Rel(dest, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return "", fmt.Errorf("entry %q escapes archive root", name)
	}
	return path, nil
}

func extractFile(zf *zip.File, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create dir for %s: %w", zf.Name, err)
	}
	rc, err := zf.Open()
	if err != nil {
		return fmt.Errorf("open entry %s: %w", zf.Name, err)
	}
	defer rc.Close()

	out, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", zf.Name, err)
	}
	if _, err := io.Copy(out, rc); err != nil {
		out.Close()
		return fmt.Errorf("extract %s: %w", zf.Name, err)
	}
	return out.Close()
}
