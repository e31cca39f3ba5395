package kbuildminer

import (
	"bytes"
	"io"
	"os"
)

// Source supplies the KbuildMiner output line stream to Convert.
type Source interface {
	// Open returns the line stream and a display name for diagnostics.
	// The caller closes the reader after the full stream is consumed or
	// on early termination.
	Open() (io.ReadCloser, string, error)
}

// --- File source ---

type fileSource struct {
	path string
}

// File creates a Source reading KbuildMiner output from a file.
// The file is opened lazily when conversion starts.
func File(path string) Source {
	return &fileSource{path: path}
}

func (s *fileSource) Open() (io.ReadCloser, string, error) {
	f, err := os.Open(s.path)
	if err != nil {
		return nil, s.path, err
	}
	return f, s.path, nil
}

// --- Bytes source ---

type bytesSource struct {
	name string
	data []byte
}

// Bytes creates a Source reading KbuildMiner output from memory.
// The name is used in diagnostics.
func Bytes(name string, data []byte) Source {
	return &bytesSource{name: name, data: data}
}

func (s *bytesSource) Open() (io.ReadCloser, string, error) {
	return io.NopCloser(bytes.NewReader(s.data)), s.name, nil
}

// --- Reader source ---

type readerSource struct {
	name string
	r    io.Reader
}

// Reader creates a Source wrapping an already-open stream.
// The name is used in diagnostics. If r is an io.ReadCloser, Convert
// closes it when done; otherwise closing is a no-op.
func Reader(name string, r io.Reader) Source {
	return &readerSource{name: name, r: r}
}

func (s *readerSource) Open() (io.ReadCloser, string, error) {
	if rc, ok := s.r.(io.ReadCloser); ok {
		return rc, s.name, nil
	}
	return io.NopCloser(s.r), s.name, nil
}
