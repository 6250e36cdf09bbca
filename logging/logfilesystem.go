package logging

import (
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// LogFile is the interface to handle log file append
type LogFile interface {
	Append(content []byte) (err error)
	Close() error
}

// LogFileSystem is the interface to handle log file directory creation and file open/append
type LogFileSystem interface {
	MkDir(dirname string) error
	Open(name string) (f LogFile, err error)
}

// LogFileImpl is a log file that rotates itself once it grows past MaxSize megabytes.
type LogFileImpl struct {
	l *lumberjack.Logger
}

// Append writes the bytes at the end of the current log file
func (f *LogFileImpl) Append(content []byte) (err error) {
	_, err = f.l.Write(content)
	return
}

// Close closes the current log file
func (f *LogFileImpl) Close() error {
	return f.l.Close()
}

// LogFileSystemImpl is the implementation for log file interface
type LogFileSystemImpl struct {
	MaxSize    int
	MaxBackups int
	MaxAge     int
}

// NewLogFileSystem creates a log file system with the rotation settings used for results logs.
func NewLogFileSystem() *LogFileSystemImpl {
	return &LogFileSystemImpl{
		MaxSize:    10, // megabytes
		MaxBackups: 5,
		MaxAge:     28, // days
	}
}

// MkDir creates a directory named path, along with any necessary parents. If path is already a directory, MkDir does nothing.
func (fs *LogFileSystemImpl) MkDir(name string) error {
	return os.MkdirAll(name, 0755)
}

// Open gets a rotating handle on the file; the file is created on the first write if it does not exist.
func (fs *LogFileSystemImpl) Open(name string) (LogFile, error) {
	return &LogFileImpl{
		l: &lumberjack.Logger{
			Filename:   name,
			MaxSize:    fs.MaxSize,
			MaxBackups: fs.MaxBackups,
			MaxAge:     fs.MaxAge,
			LocalTime:  true,
			Compress:   true,
		},
	}, nil
}
