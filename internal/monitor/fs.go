package monitor

import (
	"io"
	"os"
)

// FileSystem is the subset of file operations the watcher needs, so tests
// can replace it
type FileSystem interface {
	Stat(name string) (os.FileInfo, error)
	Open(name string) (io.ReadCloser, error)
}

// OSFileSystem implements FileSystem using os package
type OSFileSystem struct{}

// Stat calls os.Stat
func (OSFileSystem) Stat(name string) (os.FileInfo, error) {
	return os.Stat(name)
}

// Open calls os.Open
func (OSFileSystem) Open(name string) (io.ReadCloser, error) {
	return os.Open(name)
}
