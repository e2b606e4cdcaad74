// Package logging provides the leveled, optionally colored batch logger.
// It is a thin wrapper over logrus: a dispatch hook owns all writing so that
// console lines carry ANSI colors while the optional log file gets plain
// text, and errors land on stderr.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/J22Melody/transcription/internal/config"
	"github.com/J22Melody/transcription/internal/term"
)

// successField marks entries logged via [Logger.Success] so the hook can
// render them as SUCCESS instead of INFO.
const successField = "success"

// Logger provides leveled logging with an optional file sink.
type Logger struct {
	log  *logrus.Logger
	file *os.File
}

// NewLogger configures colors from cfg and optionally opens cfg.LogFile.
// Call Close() when done if LogFile was set.
func NewLogger(cfg *config.Config) (*Logger, error) {
	term.Configure(cfg.ColorMode)

	l := logrus.New()
	l.SetOutput(io.Discard) // the dispatch hook owns all writing
	l.SetLevel(logrus.InfoLevel)
	if cfg.Verbose {
		l.SetLevel(logrus.DebugLevel)
	}

	var f *os.File
	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0o755); err != nil {
			return nil, err
		}
		var err error
		f, err = os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
		if err != nil {
			return nil, err
		}
	}
	l.AddHook(&dispatchHook{file: f})

	return &Logger{log: l, file: f}, nil
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

// Info logs at INFO level (blue).
func (l *Logger) Info(format string, args ...interface{}) {
	l.log.Infof(format, args...)
}

// Success logs at SUCCESS level (green).
func (l *Logger) Success(format string, args ...interface{}) {
	l.log.WithField(successField, true).Infof(format, args...)
}

// Warn logs at WARN level (yellow).
func (l *Logger) Warn(format string, args ...interface{}) {
	l.log.Warnf(format, args...)
}

// Error logs at ERROR level (red), also to stderr.
func (l *Logger) Error(format string, args ...interface{}) {
	l.log.Errorf(format, args...)
}

// Debug logs at DEBUG level (cyan); suppressed unless Verbose was set.
func (l *Logger) Debug(format string, args ...interface{}) {
	l.log.Debugf(format, args...)
}

// dispatchHook formats and writes every entry: colored to the console
// (stderr for errors), plain to the log file when one is open. logrus
// serializes hook invocations, so no extra locking is needed here.
type dispatchHook struct {
	file *os.File
}

func (h *dispatchHook) Levels() []logrus.Level {
	return logrus.AllLevels
}

func (h *dispatchHook) Fire(e *logrus.Entry) error {
	label, color := describe(e)
	ts := e.Time.Format("2006-01-02 15:04:05")

	out := os.Stdout
	if e.Level <= logrus.ErrorLevel {
		out = os.Stderr
	}

	plain := ts + " [" + label + "] " + e.Message + "\n"
	if color != "" {
		fmt.Fprint(out, ts+" "+color+"["+label+"]"+term.NC+" "+e.Message+"\n")
	} else {
		fmt.Fprint(out, plain)
	}
	if h.file != nil {
		fmt.Fprint(h.file, plain)
	}
	return nil
}

// describe maps a logrus entry to the level label and ANSI color used on
// the console.
func describe(e *logrus.Entry) (string, string) {
	if ok, _ := e.Data[successField].(bool); ok {
		return "SUCCESS", term.Green
	}
	switch e.Level {
	case logrus.DebugLevel:
		return "DEBUG", term.Cyan
	case logrus.WarnLevel:
		return "WARN", term.Yellow
	case logrus.ErrorLevel, logrus.FatalLevel, logrus.PanicLevel:
		return "ERROR", term.Red
	default:
		return "INFO", term.Blue
	}
}
