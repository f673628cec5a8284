// Package filesystem provides a virtualized abstraction layer for all filesystem operations.
//
// It utilizes the afero library to allow switching between OS-level and in-memory filesystem backends.
package filesystem

import (
	"io"
	"os"

	"github.com/spf13/afero"
)

// Stdin is the path that Open resolves to the process standard input.
const Stdin = "-"

var (
	backend           = afero.Afero{Fs: afero.NewOsFs()}
	stdin   io.Reader = os.Stdin
)

// API returns the active afero.Afero instance for filesystem interaction.
func API() afero.Afero {
	return backend
}

// SetOsFs restores the filesystem backend to the native operating system implementation.
func SetOsFs() {
	backend = afero.Afero{Fs: afero.NewOsFs()}
}

// SetMemMapFs initializes a volatile in-memory filesystem backend for unit testing.
func SetMemMapFs() {
	backend = afero.Afero{Fs: afero.NewMemMapFs()}
}

// SetStdin replaces the reader returned by Open for the Stdin path.
func SetStdin(r io.Reader) {
	stdin = r
}

// Open returns a reader for path through the active backend.
// An empty path or Stdin reads from standard input; closing it is a no-op.
func Open(path string) (io.ReadCloser, error) {
	if path == "" || path == Stdin {
		return io.NopCloser(stdin), nil
	}
	return backend.Open(path)
}
