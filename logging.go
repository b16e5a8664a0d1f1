package main

import (
	"io"
	"log/slog"
	"os"

	"charcanvas/canvas"
)

// setupLogging installs the canvas package logger. Batch runs log to
// stderr. The viewer owns the terminal, so it only logs when debug output
// was asked for, and then to a file in the save directory.
func setupLogging(config *Config, verbose, interactive bool) (func() error, error) {
	level := config.LogLevel
	if verbose {
		level = slog.LevelDebug
	}
	noop := func() error { return nil }

	if !interactive {
		canvas.SetLogger(newLogger(os.Stderr, level))
		return noop, nil
	}
	if level > slog.LevelDebug {
		return noop, nil
	}

	file, err := os.OpenFile(config.GetSavePath(logFileName), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
	if err != nil {
		return nil, err
	}
	canvas.SetLogger(newLogger(file, level))
	return file.Close, nil
}

func newLogger(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}
