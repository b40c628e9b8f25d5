// Package logging provides the shared zerolog logger. Failures inside the
// device pipeline are reported here and the pipeline continues with degraded
// data instead of propagating the fault.
package logging

import (
	"os"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

var (
	mu     sync.Mutex
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen}).
		With().Timestamp().Logger().
		Level(zerolog.InfoLevel)
)

// SetVerbose switches the global level between info and debug.
func SetVerbose(v bool) {
	mu.Lock()
	defer mu.Unlock()
	if v {
		logger = logger.Level(zerolog.DebugLevel)
	} else {
		logger = logger.Level(zerolog.InfoLevel)
	}
}

func Error(format string, args ...any) {
	logger.Error().Msgf(format, args...)
}

func Warn(format string, args ...any) {
	logger.Warn().Msgf(format, args...)
}

func Info(format string, args ...any) {
	logger.Info().Msgf(format, args...)
}

func Debug(format string, args ...any) {
	logger.Debug().Msgf(format, args...)
}
