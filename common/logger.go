// Package common holds ambient infrastructure shared by every package in the
// module: the process-wide logger and the generic injectable-singleton
// registry used for sound tables, the dhātupāṭha and the meter library.
package common

import (
	"os"

	"github.com/rs/zerolog"
)

// logger is the package-level logger shared by the whole module. Packages
// call GetLogger() rather than holding their own zerolog.Logger so that a
// single SetLogger call (typically in main or in a test's TestMain) governs
// every component uniformly.
var logger zerolog.Logger

func init() {
	logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger().Level(zerolog.WarnLevel)
}

// SetLogger replaces the package-level logger. Callers typically install a
// zerolog.Nop() logger in tests that don't care about log output, or a
// level-filtered console writer in production.
func SetLogger(l zerolog.Logger) {
	logger = l
}

// GetLogger returns the current package-level logger.
func GetLogger() zerolog.Logger {
	return logger
}
