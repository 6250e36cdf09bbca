package dictionary

import (
	"errors"
	"os"
)

type mockFileSystem struct {
	files          map[string]string
	readFileCalled int
}

func (m *mockFileSystem) ReadFile(name string) (data []byte, err error) {
	m.readFileCalled++
	content, ok := m.files[name]
	if !ok {
		err = &os.PathError{Op: "open", Path: name, Err: errors.New("no such file or directory")}
		return
	}
	data = []byte(content)
	return
}
