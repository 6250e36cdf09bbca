package scan

import (
	"os"
)

// FileSystem is the interface used to read dictionaries, address lists and config files.
type FileSystem interface {
	ReadFile(name string) ([]byte, error)
}

// FileSystemImpl is the implementation for FileSystem on top of the OS.
type FileSystemImpl struct {
}

// ReadFile reads the whole named file.
func (fs *FileSystemImpl) ReadFile(name string) ([]byte, error) {
	return os.ReadFile(name)
}
