package logger

import (
	"os"

	"github.com/rs/zerolog"
)

// New builds the application logger. In dev the output is human-readable;
// everywhere else it is JSON lines on stdout.
func New(env string) zerolog.Logger {
	if env == "dev" {
		return zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()
	}
	return zerolog.New(os.Stdout).With().Timestamp().Logger()
}
