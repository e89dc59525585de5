package infra

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
)

// Logger is the logging handle threaded through the application. It
// aliases zerolog.Logger so packages outside infra take a logger without
// importing zerolog themselves.
type Logger = zerolog.Logger

// NewLogger builds the process logger: JSON to stdout at info level, or
// human-readable console output at debug level in development.
func NewLogger(appEnv string) zerolog.Logger {
	var out io.Writer = os.Stdout
	level := zerolog.InfoLevel
	if appEnv == "development" {
		level = zerolog.DebugLevel
		out = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).Level(level).With().Timestamp().Logger()
}
