package middleware

import (
	"log/slog"

	"github.com/vango-dev/forge/pkg/forge"
)

// Logging wraps host so that creations and attachments are logged at debug
// level and failures at warn level.
func Logging(host forge.TreeHost, logger *slog.Logger) forge.TreeHost {
	if logger == nil {
		logger = slog.Default()
	}
	return Observe(host, &logObserver{logger: logger})
}

type logObserver struct {
	logger *slog.Logger
}

func (l *logObserver) CreateElement(tag string) func(error) {
	return func(err error) {
		if err != nil {
			l.logger.Warn("element rejected", "tag", tag, "error", err)
			return
		}
		l.logger.Debug("element created", "tag", tag)
	}
}

func (l *logObserver) AppendChild(parent, child string) func(error) {
	return func(err error) {
		if err != nil {
			l.logger.Warn("append failed", "parent", parent, "child", child, "error", err)
			return
		}
		l.logger.Debug("child appended", "parent", parent, "child", child)
	}
}
