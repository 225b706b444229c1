package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Config struct {
	Level     int  `mapstructure:"level"`
	AddSource bool `mapstructure:"add_source"`
	// File receives the log instead of stdout when set.
	File string `mapstructure:"file"`
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New builds the JSON logger. The returned closer releases the log file.
func New(c *Config) (*slog.Logger, io.Closer, error) {
	var (
		w      io.Writer = os.Stdout
		closer io.Closer = nopCloser{}
	)
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, fmt.Errorf("can't open log file %s: %w", c.File, err)
		}
		w, closer = f, f
	}
	return NewWithWriter(c, w), closer, nil
}

// NewWithWriter builds the JSON logger on w.
func NewWithWriter(c *Config, w io.Writer) *slog.Logger {
	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level:     slog.Level(c.Level),
		AddSource: c.AddSource,
	}))
}

// Discard is a logger that drops everything.
func Discard() *slog.Logger {
	return slog.New(slog.NewJSONHandler(io.Discard, nil))
}
