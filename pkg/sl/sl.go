package sl

import (
	"io"
	"os"

	"github.com/sagikazarmark/slog-shim"
)

const (
	envLocal = "local"
	envDev   = "dev"
	envProd  = "prod"
)

func Error(err error) slog.Attr {
	return slog.Attr{
		Key:   "err",
		Value: slog.StringValue(err.Error()),
	}
}

// SetupLogger builds the process logger for the given environment.
// Unknown environments log like prod.
func SetupLogger(env string) *slog.Logger {
	return NewLogger(env, os.Stdout)
}

func NewLogger(env string, w io.Writer) *slog.Logger {
	switch env {
	case envLocal:
		return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case envDev:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelDebug}))
	default:
		return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo}))
	}
}
