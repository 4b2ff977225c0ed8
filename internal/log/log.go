// Package log configures the process wide slog logger from command line
// flags.
package log

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/lmittmann/tint"
	"github.com/mattn/go-isatty"
	"github.com/spf13/pflag"
	"github.com/zeebo/errs"
)

// Error is the class of errors returned by this package.
var Error = errs.Class("log")

// Flags holds the logging flag values.
type Flags struct {
	Format string
	Level  string
}

// RegisterFlags adds --log-fmt and --log-level to fs.
func RegisterFlags(fs *pflag.FlagSet) *Flags {
	f := &Flags{}

	fs.StringVar(&f.Format, "log-fmt", "auto", "log format: auto, tint, json or logfmt")
	fs.StringVar(&f.Level, "log-level", "warn", "log level: debug, info, warn or error")

	return f
}

// Init installs the default logger writing to stderr.
func (f *Flags) Init() (err error) {
	defer Error.WrapP(&err)

	logger, err := f.Logger(os.Stderr)
	if err != nil {
		return err
	}

	slog.SetDefault(logger)

	return nil
}

// Logger returns a logger writing to w.
func (f *Flags) Logger(w io.Writer) (*slog.Logger, error) {
	level, err := Level(f.Level)
	if err != nil {
		return nil, err
	}

	handler, err := Handler(f.Format, w, level)
	if err != nil {
		return nil, err
	}

	return slog.New(handler), nil
}

// Level maps a level name to a slog.Level.
func Level(level string) (slog.Level, error) {
	switch strings.ToLower(strings.TrimSpace(level)) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	}

	return 0, Error.New("invalid log-level %q: expected debug, info, warn, or error", level)
}

// Handler returns a handler for the format. "auto" selects tint when w is a
// terminal and logfmt otherwise.
func Handler(format string, w io.Writer, level slog.Level) (slog.Handler, error) {
	normalized := strings.ToLower(strings.TrimSpace(format))
	if normalized == "auto" {
		normalized = "logfmt"
		if terminal(w) {
			normalized = "tint"
		}
	}

	opts := &slog.HandlerOptions{Level: level}

	switch normalized {
	case "tint":
		return tint.NewHandler(w, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
			NoColor:    !terminal(w),
		}), nil
	case "json":
		return slog.NewJSONHandler(w, opts), nil
	case "logfmt":
		return slog.NewTextHandler(w, opts), nil
	}

	return nil, Error.New("invalid log-fmt %q: expected auto, tint, json or logfmt", format)
}

func terminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}

	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
