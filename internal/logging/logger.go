package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

// Detox log levels mapped onto slog. Verbose and trace sit between and below
// the standard slog levels.
const (
	LevelTrace   = slog.LevelDebug - 4
	LevelDebug   = slog.LevelDebug
	LevelVerbose = slog.LevelDebug + 2
	LevelInfo    = slog.LevelInfo
	LevelWarn    = slog.LevelWarn
	LevelError   = slog.LevelError
	LevelFatal   = slog.LevelError + 4
)

var levelNames = map[string]slog.Level{
	"trace":   LevelTrace,
	"debug":   LevelDebug,
	"verbose": LevelVerbose,
	"info":    LevelInfo,
	"warn":    LevelWarn,
	"error":   LevelError,
	"fatal":   LevelFatal,
}

// ParseLevel converts a --loglevel value into a slog level.
// An empty name yields LevelInfo.
func ParseLevel(name string) (slog.Level, error) {
	if name == "" {
		return LevelInfo, nil
	}
	level, ok := levelNames[strings.ToLower(name)]
	if !ok {
		return LevelInfo, fmt.Errorf("unknown log level %q", name)
	}
	return level, nil
}

// New creates a configured application logger.
// It writes to Stderr so the test runner keeps Stdout to itself.
// It standardizes common keys (e.g., "error" -> "err").
func New(level slog.Level) *slog.Logger {
	return NewWithWriter(os.Stderr, level)
}

// NewWithWriter is New with an explicit destination.
func NewWithWriter(w io.Writer, level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: level,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Standardize 'error' key to 'err'
			if a.Key == "error" {
				a.Key = "err"
			}
			if a.Key == slog.LevelKey && len(groups) == 0 {
				if lvl, ok := a.Value.Any().(slog.Level); ok {
					a.Value = slog.StringValue(levelName(lvl))
				}
			}
			return a
		},
	}))
}

// NewNop returns a no-op logger.
func NewNop() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func levelName(l slog.Level) string {
	switch l {
	case LevelTrace:
		return "TRACE"
	case LevelVerbose:
		return "VERBOSE"
	case LevelFatal:
		return "FATAL"
	}
	return l.String()
}
