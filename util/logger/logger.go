package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// InitLogger installs the global zerolog logger. Development gets a console
// writer, everything else JSON lines on stdout.
func InitLogger(appEnv string, level string) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix

	var output io.Writer = os.Stdout
	if appEnv == "development" {
		output = zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
	}

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
	SetLogLevel(level)
}

// SetLogLevel applies level, falling back to info when it does not parse.
func SetLogLevel(level string) {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil || parsed == zerolog.NoLevel {
		parsed = zerolog.InfoLevel
		log.Debug().Str("loglevel", parsed.String()).Msg("no usable log level configured, using default")
	}

	zerolog.SetGlobalLevel(parsed)
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}
