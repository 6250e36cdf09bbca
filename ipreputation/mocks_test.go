package ipreputation

import (
	"errors"
)

type mockFileSystem struct {
	readFileCalled int
	content        string
}

func (m *mockFileSystem) ReadFile(fileName string) (data []byte, err error) {
	m.readFileCalled++
	if m.content == "" {
		err = errors.New("file does not exist")
	} else {
		data = []byte(m.content)
	}
	return
}
