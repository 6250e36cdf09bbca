package logging

import (
	"errors"
	"time"
)

type mockFile struct {
	Content string
	Closed  bool
}

func (fs *mockFile) Append(content []byte) (err error) {
	fs.Content = fs.Content + string(content)
	return nil
}

func (fs *mockFile) Close() error {
	fs.Closed = true
	return nil
}

type mockFileSystem struct {
	fmap    map[string]LogFile
	dirs    []string
	failDir bool
}

func (fs *mockFileSystem) MkDir(name string) error {
	if fs.failDir {
		return errors.New("permission denied")
	}
	fs.dirs = append(fs.dirs, name)
	return nil
}

func (fs *mockFileSystem) Open(name string) (f LogFile, err error) {
	f = &mockFile{}
	fs.fmap[name] = f
	return f, nil
}

func (fs *mockFileSystem) Get(name string) (content string) {
	return fs.fmap[name].(*mockFile).Content
}

func fixedTime() time.Time {
	return time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)
}
