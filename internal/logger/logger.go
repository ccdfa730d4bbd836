/*
Copyright 2026 Benny Powers. All rights reserved.
Use of this source code is governed by the GPLv3
license that can be found in the LICENSE file.
*/

// Package logger provides the leveled logger handed to the command-line tools.
//
// There is no process-wide level: each run builds one Logger from a Level it
// decided on, and passes it to whatever needs to log.
package logger

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// Level is a named verbosity threshold.
type Level string

// Levels accepted on the command line, from most to least verbose.
const (
	LevelInfo    Level = "info"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
	LevelFatal   Level = "fatal"
	LevelNone    Level = "none"
)

// ParseLevel maps a level name to a Level. Unknown names disable logging.
func ParseLevel(name string) Level {
	switch l := Level(strings.ToLower(strings.TrimSpace(name))); l {
	case LevelInfo, LevelWarning, LevelError, LevelFatal:
		return l
	default:
		return LevelNone
	}
}

func (l Level) hclog() hclog.Level {
	switch l {
	case LevelInfo:
		return hclog.Info
	case LevelWarning:
		return hclog.Warn
	// hclog has no fatal level; Logger.Error filters itself at LevelFatal.
	case LevelError, LevelFatal:
		return hclog.Error
	default:
		return hclog.Off
	}
}

// Logger writes leveled messages to a single output.
type Logger struct {
	level Level
	log   hclog.Logger
}

// New creates a logger writing to w. A nil writer means stderr.
func New(w io.Writer, level Level) *Logger {
	if w == nil {
		w = os.Stderr
	}
	return &Logger{
		level: level,
		log: hclog.New(&hclog.LoggerOptions{
			Name:            "cahute",
			Level:           level.hclog(),
			Output:          w,
			DisableTime:     true,
			IncludeLocation: false,
		}),
	}
}

// Info logs an informational message.
func (l *Logger) Info(format string, args ...any) {
	l.log.Info(fmt.Sprintf(format, args...))
}

// Warn logs a warning message.
func (l *Logger) Warn(format string, args ...any) {
	l.log.Warn(fmt.Sprintf(format, args...))
}

// Error logs an error message. Errors are dropped at the fatal level.
func (l *Logger) Error(format string, args ...any) {
	if l.level == LevelFatal {
		return
	}
	l.log.Error(fmt.Sprintf(format, args...))
}

// Fatal logs an error that ends the run.
func (l *Logger) Fatal(format string, args ...any) {
	l.log.Error(fmt.Sprintf(format, args...), "fatal", true)
}
