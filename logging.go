package main

import (
	"io"
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// newLogger builds the root logger. Service decorators log at debug level, so
// they only show up when cfg.Level is "debug".
func newLogger(cfg LogConfig, w io.Writer) log.Logger {
	var logger log.Logger
	if strings.ToLower(cfg.Format) == "json" {
		logger = log.NewJSONLogger(log.NewSyncWriter(w))
	} else {
		logger = log.NewLogfmtLogger(log.NewSyncWriter(w))
	}
	logger = log.With(logger, "ts", log.DefaultTimestampUTC, "caller", log.DefaultCaller)

	return level.NewFilter(logger, levelOption(cfg.Level))
}

func levelOption(l string) level.Option {
	switch strings.ToLower(l) {
	case "debug":
		return level.AllowDebug()
	case "warn", "warning":
		return level.AllowWarn()
	case "error":
		return level.AllowError()
	case "none":
		return level.AllowNone()
	default:
		return level.AllowInfo()
	}
}
