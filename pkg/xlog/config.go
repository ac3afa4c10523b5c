package xlog

import (
	"io"
	"log/slog"
	"os"

	"gopkg.in/natefinch/lumberjack.v2"
)

// NewConfig returns the default logging configuration.
func NewConfig() Config {
	return Config{
		Level:     slog.LevelInfo,
		Format:    "text",
		Writer:    os.Stderr,
		MaxSizeMB: 30,
	}
}

// Config configures how log records are rendered and where they go.
type Config struct {
	// Level is the minimum level emitted, defaults to LevelInfo.
	Level slog.Level
	// AddSource emits the file and line of the logging call.
	AddSource bool
	// Format selects the console encoding, one of ["text", "json"].
	Format string
	// Writer is the console output, defaults to os.Stderr.
	Writer io.Writer

	// Path enables additional JSON output to a rotated log file when
	// non-empty.
	Path string
	// MaxSizeMB is the size a log file may reach before rotation.
	MaxSizeMB int
	// MaxAge is the number of days rotated files are kept, 0 keeps all.
	MaxAge int
	// MaxBackups is the number of rotated files kept, 0 keeps all.
	MaxBackups int
}

func (c Config) buildHandler(level *slog.LevelVar) slog.Handler {
	opts := &slog.HandlerOptions{
		AddSource: c.AddSource,
		Level:     level,
	}
	console := c.Writer
	if console == nil {
		console = os.Stderr
	}

	handlers := []slog.Handler{}
	if c.Format == "json" {
		handlers = append(handlers, slog.NewJSONHandler(console, opts))
	} else {
		handlers = append(handlers, slog.NewTextHandler(console, opts))
	}
	if c.Path != "" {
		fw := &lumberjack.Logger{
			Filename:   c.Path,
			MaxSize:    c.MaxSizeMB,
			MaxAge:     c.MaxAge,
			MaxBackups: c.MaxBackups,
		}
		handlers = append(handlers, slog.NewJSONHandler(fw, opts))
	}
	if len(handlers) == 1 {
		return handlers[0]
	}
	return multiHandler(handlers)
}
