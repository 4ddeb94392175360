package app

import (
	"log/slog"
	"os"

	"driver-dispatch-service/internal/logx"
)

// NewLogger builds the process-wide structured logger: JSON to stdout,
// info level. Debug output is reserved for the pprof/debug surface.
func NewLogger() logx.Logger {
	h := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo})
	return logx.NewSlogAdapter(slog.New(h))
}
