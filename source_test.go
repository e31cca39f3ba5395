package kbuildminer

import (
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/KernelHaven/KbuildMinerExtractor/internal/testutil"
)

func TestFileSource(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "pcs.txt")
	content := "a.c: A\n"
	testutil.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	r, name, err := File(path).Open()
	testutil.NoError(t, err)
	defer r.Close()

	testutil.Equal(t, path, name)
	data, err := io.ReadAll(r)
	testutil.NoError(t, err)
	testutil.Equal(t, content, string(data))
}

func TestFileSourceMissing(t *testing.T) {
	_, _, err := File(filepath.Join(t.TempDir(), "missing.txt")).Open()
	testutil.Error(t, err)
}

func TestBytesSource(t *testing.T) {
	src := Bytes("inline", []byte("a.c: A\n"))

	r, name, err := src.Open()
	testutil.NoError(t, err)
	defer r.Close()

	testutil.Equal(t, "inline", name)
	data, _ := io.ReadAll(r)
	testutil.Equal(t, "a.c: A\n", string(data))

	// A Bytes source can be opened again.
	r2, _, err := src.Open()
	testutil.NoError(t, err)
	defer r2.Close()
	data, _ = io.ReadAll(r2)
	testutil.Equal(t, "a.c: A\n", string(data))
}

func TestReaderSource(t *testing.T) {
	r, name, err := Reader("stream", strings.NewReader("x")).Open()
	testutil.NoError(t, err)
	testutil.Equal(t, "stream", name)
	testutil.NoError(t, r.Close(), "plain readers get a no-op closer")
}

type closeRecorder struct {
	io.Reader
	closed bool
}

func (c *closeRecorder) Close() error {
	c.closed = true
	return nil
}

func TestReaderSourceKeepsCloser(t *testing.T) {
	rec := &closeRecorder{Reader: strings.NewReader("x")}
	r, _, err := Reader("stream", rec).Open()
	testutil.NoError(t, err)
	testutil.NoError(t, r.Close())
	testutil.True(t, rec.closed, "underlying closer should be preserved")
}
