package constants

import (
	"io"
	"os"

	"github.com/rs/zerolog"
)

type Log struct {
	zerolog.Logger
}

var Logger = NewLogger(os.Stderr, zerolog.InfoLevel)

func NewLogger(w io.Writer, level zerolog.Level) Log {
	out := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05", NoColor: true}
	return Log{zerolog.New(out).Level(level).With().Timestamp().Logger()}
}

func (l *Log) SetLevel(level zerolog.Level) {
	l.Logger = l.Logger.Level(level)
}

func (l *Log) InfoLog(msg string) {
	l.Info().Msg(msg)
}

func (l *Log) DebugLog(msg string) {
	l.Debug().Msg(msg)
}

func (l *Log) ErrorLog(err error) {
	l.Error().Err(err).Msg("")
}
