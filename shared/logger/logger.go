package logger

import (
	"io"
	"lodging/config"
	"lodging/shared/constant"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/rs/zerolog/pkgerrors"
)

// InitLogger installs a human readable console logger at trace level. It is
// called before configuration is loaded so config errors are still visible.
func InitLogger() {
	install(zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339})
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Trace().Msg("logger initialized")
}

func install(output io.Writer) {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.ErrorStackMarshaler = pkgerrors.MarshalStack

	log.Logger = zerolog.New(output).With().Timestamp().Logger()
}

// Configure applies the configured level and switches to JSON lines outside development.
func Configure(cfg *config.Config) {
	if cfg.Server.Env != "" && cfg.Server.Env != constant.ServerEnvDevelopment {
		install(os.Stdout)
	}

	SetLogLevel(cfg)
}

// SetLogLevel parses cfg.Server.LogLevel, falling back to trace when it is invalid.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil {
		level = zerolog.TraceLevel
	}

	zerolog.SetGlobalLevel(level)

	log.Trace().Str("loglevel", level.String()).Bool("fallback", err != nil).Msg("log level set")
}

// ErrorWithStack logs err together with the stack of the caller.
func ErrorWithStack(err error) {
	if err == nil {
		return
	}

	log.Error().Stack().Err(errors.WithStack(err)).Msg(err.Error())
}
