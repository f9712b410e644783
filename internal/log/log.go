// Package log carries the logrus entry used by lazywinapi through a
// [context.Context], and formats field values for structured output.
package log

import (
	"context"

	"github.com/containerd/log"
	"github.com/sirupsen/logrus"
)

// L is the default log entry, used when a context carries none.
var L = log.L

// G returns the log entry stored in ctx, or [L] if there is none.
func G(ctx context.Context) *logrus.Entry {
	if ctx == nil {
		return L
	}
	return log.G(ctx)
}

// WithLogger returns a copy of ctx that carries entry.
func WithLogger(ctx context.Context, entry *logrus.Entry) context.Context {
	return log.WithLogger(ctx, entry)
}

// SetLevel parses level and applies it to the standard logrus logger.
func SetLevel(level string) error {
	lvl, err := logrus.ParseLevel(level)
	if err != nil {
		return err
	}
	logrus.SetLevel(lvl)
	return nil
}
