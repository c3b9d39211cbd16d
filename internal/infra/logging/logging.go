package logging

import (
	"io"
	"log/slog"
	"os"
)

// SetupJSON sets slog's default logger to use JSON output at the given level.
// debug forces slog.LevelDebug regardless of level.
func SetupJSON(level slog.Level, debug bool) *slog.Logger {
	return setup(os.Stdout, level, debug)
}

func setup(w io.Writer, level slog.Level, debug bool) *slog.Logger {
	if debug {
		level = slog.LevelDebug
	}

	logger := slog.New(
		slog.NewJSONHandler(w, &slog.HandlerOptions{Level: level}),
	)
	slog.SetDefault(logger)

	return logger
}
