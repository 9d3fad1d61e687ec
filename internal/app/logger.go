package app

import (
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/lifelog-timeline/internal/config"
)

// secretKeys are attribute names whose values never reach the log, whatever
// group they are nested in.
var secretKeys = map[string]bool{
	"password":      true,
	"access_token":  true,
	"code":          true,
	"code_verifier": true,
	"authorization": true,
	"jwt_secret":    true,
}

// NewLogger builds the process logger from LogConfig, installs it as the
// slog default and returns it. Records go to stderr tagged with the build
// version.
func NewLogger(cfg config.LogConfig) *slog.Logger {
	logger := newLogger(os.Stderr, cfg).With(slog.String("version", Version))
	slog.SetDefault(logger)
	return logger
}

func newLogger(w io.Writer, cfg config.LogConfig) *slog.Logger {
	text := strings.EqualFold(cfg.Format, "text")
	opts := &slog.HandlerOptions{
		Level:       parseLevel(cfg.Level),
		AddSource:   text,
		ReplaceAttr: replaceAttr,
	}
	if text {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// replaceAttr stamps records in UTC, since entries span time zones, and
// masks secrets.
func replaceAttr(groups []string, a slog.Attr) slog.Attr {
	if len(groups) == 0 && a.Key == slog.TimeKey && a.Value.Kind() == slog.KindTime {
		return slog.Time(slog.TimeKey, a.Value.Time().UTC().Truncate(time.Millisecond))
	}
	if secretKeys[strings.ToLower(a.Key)] {
		return slog.String(a.Key, "[redacted]")
	}
	return a
}

// parseLevel accepts the slog level names, with offsets such as "debug+2".
// Anything unparsable logs at info.
func parseLevel(s string) slog.Level {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return slog.LevelInfo
	}
	return lvl
}
