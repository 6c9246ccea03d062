package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// LogFilePath is the path to the diorama log file, relative to the working directory
// (project root when run via go run ./cmd/diorama).
const LogFilePath = "logs/diorama.txt"

// Logger is a slog logger whose records go to stderr and are appended to a file on disk.
type Logger struct {
	*slog.Logger
	file *os.File
}

// New returns a logger at the given level ("debug", "info", "warn", "error"; anything
// else means info). If path cannot be opened the logger writes to stderr only.
func New(path, level string) *Logger {
	var w io.Writer = os.Stderr
	l := &Logger{}
	if path != "" {
		_ = os.MkdirAll(filepath.Dir(path), 0755)
		f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err == nil {
			l.file = f
			w = io.MultiWriter(os.Stderr, f)
		}
	}
	l.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)}))
	return l
}

// Close closes the log file, if one was opened.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	return l.file.Close()
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(s)); err != nil {
		return slog.LevelInfo
	}
	return lvl
}

// OrDiscard returns l, or a logger that drops everything when l is nil.
// Packages that accept an optional logger call this once in their constructor.
func OrDiscard(l *slog.Logger) *slog.Logger {
	if l == nil {
		return slog.New(slog.DiscardHandler)
	}
	return l
}
