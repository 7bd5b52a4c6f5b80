// Package export writes rendered charts and pages to disk.
package export

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Directory and file permissions for exported reports.
const (
	dirPerm  = 0o750
	filePerm = 0o600
)

// ErrNothingToSave is returned when Save is given a nil renderable.
var ErrNothingToSave = errors.New("nothing to save")

// Renderable is anything that can write itself as HTML.
type Renderable interface {
	Render(w io.Writer) error
}

// Save renders r to path, creating parent directories as needed. The write
// goes through a temp file in the same directory so a failed render never
// leaves a truncated report behind.
func Save(r Renderable, path string, log *slog.Logger) error {
	if r == nil {
		return ErrNothingToSave
	}

	if log == nil {
		log = slog.Default()
	}

	dir := filepath.Dir(path)

	err := os.MkdirAll(dir, dirPerm)
	if err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}

	tmpName := tmp.Name()

	renderErr := r.Render(tmp)

	closeErr := tmp.Close()

	if renderErr != nil {
		os.Remove(tmpName)

		return fmt.Errorf("render %s: %w", path, renderErr)
	}

	if closeErr != nil {
		os.Remove(tmpName)

		return fmt.Errorf("close temp file: %w", closeErr)
	}

	err = os.Chmod(tmpName, filePerm)
	if err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("chmod %s: %w", tmpName, err)
	}

	err = os.Rename(tmpName, path)
	if err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("rename to %s: %w", path, err)
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("stat %s: %w", path, err)
	}

	log.Info("saved report",
		slog.String("path", path),
		slog.String("size", humanize.Bytes(uint64(info.Size()))))

	return nil
}
