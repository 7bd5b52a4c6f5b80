package export_test

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/insper-data/insperplot/pkg/export"
)

type stubRenderable struct {
	content string
	err     error
}

func (s stubRenderable) Render(w io.Writer) error {
	if s.err != nil {
		return s.err
	}

	_, err := w.Write([]byte(s.content))

	return err
}

func TestSave_WritesFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "reports", "out.html")

	var buf bytes.Buffer
	log := slog.New(slog.NewTextHandler(&buf, nil))

	err := export.Save(stubRenderable{content: "<html>ok</html>"}, path, log)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>ok</html>", string(data))

	// The save is logged with a human-readable size.
	assert.Contains(t, buf.String(), "saved report")
	assert.Contains(t, buf.String(), "out.html")
}

func TestSave_NilRenderable(t *testing.T) {
	t.Parallel()

	err := export.Save(nil, filepath.Join(t.TempDir(), "out.html"), nil)
	assert.ErrorIs(t, err, export.ErrNothingToSave)
}

func TestSave_RenderFailureLeavesNoFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	renderErr := errors.New("boom")

	err := export.Save(stubRenderable{err: renderErr}, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.ErrorIs(t, err, renderErr)
	assert.NoFileExists(t, path)
}

func TestSave_OverwritesExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "out.html")
	require.NoError(t, os.WriteFile(path, []byte("old"), 0o600))

	err := export.Save(stubRenderable{content: "new"}, path, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "new", string(data))
}
