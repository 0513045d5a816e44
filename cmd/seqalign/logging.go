package main

import (
	"fmt"
	"io"
	"log/slog"
)

type leveler struct {
	level int
}

func (l leveler) Level() slog.Level {
	switch {
	case l.level <= 0:
		return slog.LevelError
	case l.level == 1:
		return slog.LevelWarn
	case l.level == 2:
		return slog.LevelInfo
	default:
		return slog.LevelDebug
	}
}

// newLogger creates a text or json slog logger writing to w.
func newLogger(w io.Writer, level int, format string) (*slog.Logger, error) {
	opts := &slog.HandlerOptions{Level: leveler{level: level}}
	switch format {
	case "", "text":
		return slog.New(slog.NewTextHandler(w, opts)), nil
	case "json":
		return slog.New(slog.NewJSONHandler(w, opts)), nil
	}
	return nil, fmt.Errorf("log format %q: %w", format, errBadConfig)
}
