// Copyright 2026 The Lightrender Authors. All rights reserved.

// Package log provides leveled, named loggers for the rendering core.
// Consumers may subscribe to log records through AddSink.
package log

import (
	"io"
	"os"
	"sync"
	"time"

	"github.com/op/go-logging"
)

type Level logging.Level

// The levels that can be passed to the SetLevel function.
const (
	Debug Level = iota
	Info
	Notice
	Warning
	Error
)

// The logger format.
var format = logging.MustStringFormatter(
	`%{color}[%{time:15:04:05.000}] [%{module}] [%{level}]%{color:reset} %{message}`,
)

// The internal leveled logger backend.
var leveledBackend logging.LeveledBackend

// The logger interface.
type Logger interface {
	Debug(v ...interface{})
	Debugf(format string, v ...interface{})

	Notice(v ...interface{})
	Noticef(format string, v ...interface{})

	Info(v ...interface{})
	Infof(format string, v ...interface{})

	Warning(v ...interface{})
	Warningf(format string, v ...interface{})

	Error(v ...interface{})
	Errorf(format string, v ...interface{})
}

// Record is the subscriber-facing view of one log entry.
type Record struct {
	Time    time.Time
	Level   Level
	Module  string
	Message string
}

// Sink receives every record that passes the level filter.
// Sinks run synchronously on the logging goroutine.
type Sink func(Record)

var (
	sinkMu sync.Mutex
	sinks  []Sink
)

// AddSink registers a subscriber for log records.
// Registration may happen from any goroutine.
func AddSink(s Sink) {
	sinkMu.Lock()
	defer sinkMu.Unlock()
	sinks = append(sinks, s)
}

// fanout forwards records to registered sinks after the primary
// backend has handled them.
type fanout struct {
	next logging.Backend
}

func (f fanout) Log(level logging.Level, calldepth int, rec *logging.Record) error {
	err := f.next.Log(level, calldepth+1, rec)
	sinkMu.Lock()
	subs := sinks
	sinkMu.Unlock()
	if len(subs) > 0 {
		r := Record{
			Time:    rec.Time,
			Level:   fromBackendLevel(level),
			Module:  rec.Module,
			Message: rec.Message(),
		}
		for _, s := range subs {
			s(r)
		}
	}
	return err
}

func fromBackendLevel(level logging.Level) Level {
	switch level {
	case logging.DEBUG:
		return Debug
	case logging.INFO:
		return Info
	case logging.NOTICE:
		return Notice
	case logging.WARNING:
		return Warning
	}
	return Error
}

// New creates a new named logger.
func New(name string) Logger {
	return logging.MustGetLogger(name)
}

// SetSink overrides the backend output sink.
func SetSink(sink io.Writer) {
	backend := logging.NewLogBackend(sink, "", 0)
	backendWithFormatter := logging.NewBackendFormatter(backend, format)
	leveledBackend = logging.AddModuleLevel(fanout{backendWithFormatter})
	leveledBackend.SetLevel(logging.INFO, "")
	logging.SetBackend(leveledBackend)
}

// SetLevel sets logger verbosity.
func SetLevel(level Level) {
	var loggerLevel logging.Level

	switch level {
	case Debug:
		loggerLevel = logging.DEBUG
	case Info:
		loggerLevel = logging.INFO
	case Notice:
		loggerLevel = logging.NOTICE
	case Warning:
		loggerLevel = logging.WARNING
	case Error:
		loggerLevel = logging.ERROR
	}

	leveledBackend.SetLevel(loggerLevel, "")
}

func init() {
	SetSink(os.Stderr)
	SetLevel(Notice)
}
