package current

import (
	"context"

	"github.com/rs/zerolog"
)

var logger *zerolog.Logger
var disabledLogger = zerolog.Ctx(context.Background())

// SetLogger assigns the global logger. It may only be called once per process.
func SetLogger(l *zerolog.Logger) {
	if logger != nil {
		panic("cannot call SetLogger twice")
	}
	if l == nil {
		panic("l must not be nil")
	}

	logger = l
}

// Logger returns the logger associated with ctx or the global logger assigned with SetLogger. If neither exists a
// disabled logger is returned.
//
// zerolog.Ctx provides similar functionality, however this method prefers our global logger over a disabled logger
// when ctx does not have one.
func Logger(ctx context.Context) *zerolog.Logger {
	l := zerolog.Ctx(ctx)
	if l != disabledLogger {
		return l
	}

	if logger == nil {
		return disabledLogger
	}

	return logger
}

func WithLogger(ctx context.Context, l *zerolog.Logger) context.Context {
	return l.WithContext(ctx)
}
