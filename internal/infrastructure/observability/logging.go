package observability

import (
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// NewLogger configures a zerolog logger using the provided format and level.
func NewLogger(format, level string) zerolog.Logger {
	return newLogger(os.Stdout, format, level)
}

func newLogger(w io.Writer, format, level string) zerolog.Logger {
	zerolog.TimeFieldFormat = time.RFC3339
	lvl, err := zerolog.ParseLevel(strings.ToLower(strings.TrimSpace(level)))
	if err != nil || lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)

	out := w
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "console", "text":
		out = zerolog.ConsoleWriter{Out: w, TimeFormat: time.RFC3339}
	}
	return zerolog.New(out).With().Timestamp().Str("service", "payment_gateway").Logger()
}

// SetGlobalLogger installs logger as the package-level logger and as the fallback for
// contexts that carry none, so log.Ctx never returns a disabled logger.
func SetGlobalLogger(logger zerolog.Logger) {
	log.Logger = logger
	zerolog.DefaultContextLogger = &log.Logger
}

// StripeLogger adapts zerolog to the Stripe SDK leveled logger.
type StripeLogger struct {
	Logger zerolog.Logger
}

func (l StripeLogger) Debugf(format string, v ...interface{}) {
	l.Logger.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l StripeLogger) Infof(format string, v ...interface{}) {
	l.Logger.Debug().Str("component", "stripe").Msgf(format, v...)
}

func (l StripeLogger) Warnf(format string, v ...interface{}) {
	l.Logger.Warn().Str("component", "stripe").Msgf(format, v...)
}

func (l StripeLogger) Errorf(format string, v ...interface{}) {
	l.Logger.Error().Str("component", "stripe").Msgf(format, v...)
}
