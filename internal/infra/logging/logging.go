package logging

import (
	"io"
	"log/slog"

	"github.com/mdashfaqhussain/atm-asignment/internal/app/atm"
)

// Setup setups logger configuration. Logs are written to w so that prompt output on stdout stays readable.
func Setup(cfg atm.Config, w io.Writer) {
	level := slog.LevelInfo
	if cfg.InitDebug {
		level = slog.LevelDebug
	}

	opts := &slog.HandlerOptions{Level: level}

	var handler slog.Handler
	switch cfg.LogFormat {
	case "json":
		handler = slog.NewJSONHandler(w, opts)
	default:
		handler = slog.NewTextHandler(w, opts)
	}

	slog.SetDefault(slog.New(handler))
	slog.Debug("Initializing debug level logging")
}
