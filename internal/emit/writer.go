package emit

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/sviosdi/svldoc/internal/foundation/errors"
)

// Generated files are published with the site, so they are world-readable.
const (
	FileMode os.FileMode = 0o644
	DirMode  os.FileMode = 0o755
)

// Writer writes files below a root directory and records their relative
// paths in a report.
type Writer struct {
	root   string
	report *Report
}

// NewWriter returns a writer rooted at root that records into report.
func NewWriter(root string, report *Report) *Writer {
	return &Writer{root: filepath.Clean(root), report: report}
}

// Root returns the output directory.
func (w *Writer) Root() string { return w.root }

// Write stores data at rel (slash separated) below the root.
func (w *Writer) Write(rel string, data []byte) error {
	p := filepath.Join(w.root, filepath.FromSlash(rel))
	if err := WriteFileAtomic(p, data); err != nil {
		return errors.WrapError(err, errors.CategoryFileSystem, "failed to write output file").
			WithContext("path", p).
			Build()
	}
	w.report.Files = append(w.report.Files, filepath.ToSlash(rel))
	return nil
}

// WriteFileAtomic writes data to a temporary sibling of path and renames it
// into place with FileMode, creating parent directories as needed. The mode
// is set explicitly so that the process umask does not narrow it.
func WriteFileAtomic(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), DirMode); err != nil {
		return fmt.Errorf("ensure directory: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, FileMode); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Chmod(tmp, FileMode); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("set file mode: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("atomic rename: %w", err)
	}
	return nil
}
