// Package logger builds configured log/slog loggers.
//
// New applies functional options on top of sane defaults (JSON format, info
// level, stdout) and returns a ready *slog.Logger:
//
//	log := logger.New(
//	    logger.WithFormat(logger.FormatText),
//	    logger.WithLevel(slog.LevelDebug),
//	    logger.WithAttr(slog.String("service", "catalogd")),
//	)
//
// Invalid formats panic at construction so misconfiguration stops startup
// instead of surfacing mid-request.
package logger
