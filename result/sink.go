package result

import "github.com/rs/zerolog"

// Sink accepts leveled log entries.
type Sink interface {
	Log(level Level, msg string)
}

// SinkFunc adapts a plain function to Sink.
type SinkFunc func(level Level, msg string)

func (f SinkFunc) Log(level Level, msg string) {
	f(level, msg)
}

// Discard drops every entry.
var Discard Sink = SinkFunc(func(Level, string) {})

// ZerologSink writes entries through a zerolog logger.
type ZerologSink struct {
	logger zerolog.Logger
}

func NewZerologSink(logger zerolog.Logger) *ZerologSink {
	return &ZerologSink{logger: logger}
}

func (s *ZerologSink) Log(level Level, msg string) {
	s.logger.WithLevel(ZerologLevel(level)).Msg(msg)
}

// ZerologLevel maps a Level onto zerolog's levels.
func ZerologLevel(level Level) zerolog.Level {
	switch level {
	case LevelInfo:
		return zerolog.InfoLevel
	case LevelWarning:
		return zerolog.WarnLevel
	default:
		return zerolog.ErrorLevel
	}
}
