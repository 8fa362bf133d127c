package logger

import (
	"io"
	"log/slog"
	"os"

	"github.com/lmittmann/tint"
)

// Options configures New.
type Options struct {
	// Writer defaults to os.Stdout.
	Writer    io.Writer
	Level     slog.Leveler
	AddSource bool
	// JSON selects the JSON handler; otherwise tint writes coloured text.
	JSON bool
}

// New builds the application logger.
func New(opts Options) *slog.Logger {
	if opts.Writer == nil {
		opts.Writer = os.Stdout
	}
	if opts.Level == nil {
		opts.Level = slog.LevelInfo
	}

	var handler slog.Handler
	if opts.JSON {
		handler = slog.NewJSONHandler(opts.Writer, &slog.HandlerOptions{
			AddSource: opts.AddSource,
			Level:     opts.Level,
		})
	} else {
		handler = tint.NewHandler(opts.Writer, &tint.Options{
			AddSource:  opts.AddSource,
			Level:      opts.Level,
			TimeFormat: "2006-01-02 15:04:05",
		})
	}
	return slog.New(handler)
}

// Component returns a child logger tagged with the component name.
func Component(l *slog.Logger, name string) *slog.Logger {
	if l == nil {
		l = Discard()
	}
	return l.With(slog.String("component", name))
}

// Discard returns a logger that drops every record. Used by tests and as the
// fallback when no logger is injected.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
