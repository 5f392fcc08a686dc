package wiz

import (
	"os"

	"github.com/rs/zerolog"
)

// logger receives recoverable-condition diagnostics (degraded configuration,
// size adjustments). Nothing is ever logged from inside the draw loop.
var logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
	With().Timestamp().Str("lib", "wiz").Logger()

// SetLogger replaces the package logger. Pass a disabled logger
// (zerolog.Nop()) to silence diagnostics entirely.
func SetLogger(l zerolog.Logger) {
	logger = l
}
