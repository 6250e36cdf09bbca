package logging

import (
	"encoding/json"
	"io"
	"path/filepath"
	"scanv/scan"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// FileResultsLogger is a results logger backed by a file. Nothing may be logged to it after Close.
type FileResultsLogger interface {
	scan.ResultsLogger
	io.Closer
}

type filelogResultsLogger struct {
	file         LogFile
	logger       zerolog.Logger
	writelogline chan []byte
	writeDone    chan bool
	writerExited chan struct{}
	closeOnce    sync.Once
	now          func() time.Time
}

// NewFileResultsLogger creates a results logger that writes one JSON object per line to the file at path.
func NewFileResultsLogger(fileSystem LogFileSystem, logger zerolog.Logger, path string) (FileResultsLogger, error) {
	r := &filelogResultsLogger{logger: logger, now: time.Now}

	dir := filepath.Dir(path)
	err := fileSystem.MkDir(dir)
	if err != nil {
		logger.Error().Err(err).Str("path", dir).Msg("Failed to create the directory while initializing")
		return nil, err
	}

	r.file, err = fileSystem.Open(path)
	if err != nil {
		logger.Error().Err(err).Str("file", path).Msg("Failed to open the file at initiation")
		return nil, err
	}

	r.writelogline = make(chan []byte)
	r.writeDone = make(chan bool)
	r.writerExited = make(chan struct{})
	go func() {
		defer close(r.writerExited)
		for v := range r.writelogline {
			if err := r.file.Append(append(v, '\n')); err != nil {
				r.logger.Error().Err(err).Msg("Failed to append to results log")
			}
			r.writeDone <- true
		}
	}()

	return r, nil
}

func (l *filelogResultsLogger) FindingDispatched(runID string, f scan.Finding) {
	l.write(&findingLogEntry{
		Time:          l.now().Format(timestampLayout),
		OperationName: operationName,
		Category:      findingCategory,
		Properties: findingLogEntryProperty{
			RunID:    runID,
			RuleName: f.RuleName,
			ClientIP: f.ClientAddress,
			Message:  f.Description,
			Action:   f.Result.String(),
		},
	})
}

func (l *filelogResultsLogger) RuleFaulted(runID string, ruleName string, err error) {
	l.write(&faultLogEntry{
		Time:          l.now().Format(timestampLayout),
		OperationName: operationName,
		Category:      faultCategory,
		Properties: faultLogEntryProperty{
			RunID:    runID,
			RuleName: ruleName,
			Message:  err.Error(),
		},
	})
}

func (l *filelogResultsLogger) SourceUnavailable(runID string, err error) {
	l.write(&faultLogEntry{
		Time:          l.now().Format(timestampLayout),
		OperationName: operationName,
		Category:      faultCategory,
		Properties: faultLogEntryProperty{
			RunID:   runID,
			Message: err.Error(),
		},
	})
}

func (l *filelogResultsLogger) RunCompleted(s scan.RunSummary) {
	l.write(&runLogEntry{
		Time:          l.now().Format(timestampLayout),
		OperationName: operationName,
		Category:      runCategory,
		Properties:    newRunLogEntryProperty(s),
	})
}

// Close stops the writer goroutine and closes the file.
func (l *filelogResultsLogger) Close() (err error) {
	l.closeOnce.Do(func() {
		close(l.writelogline)
		<-l.writerExited
		err = l.file.Close()
	})
	return
}

func (l *filelogResultsLogger) write(entry interface{}) {
	bb, err := json.Marshal(entry)
	if err != nil {
		l.logger.Error().Err(err).Msg("Error while marshaling JSON results log")
		return
	}

	l.writelogline <- bb
	<-l.writeDone
}
