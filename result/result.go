// Package result provides the leveled, formatted result value that every
// subsystem returns in place of raw status codes.
package result

import (
	"fmt"
	"strings"
)

// Level is the severity a failure is logged at.
type Level int

const (
	LevelInfo Level = iota
	LevelWarning
	LevelError
)

func (l Level) String() string {
	switch l {
	case LevelInfo:
		return "info"
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	default:
		return fmt.Sprintf("Level(%d)", int(l))
	}
}

// Template is a pre-built failure description. Arity is the number of
// substitutable fields in Format.
type Template struct {
	Level     Level
	Format    string
	Arity     int
	MultiLine bool
}

// NewTemplate builds a Template. multiLine results are logged one entry per
// line.
func NewTemplate(level Level, format string, arity int, multiLine bool) Template {
	return Template{
		Level:     level,
		Format:    format,
		Arity:     arity,
		MultiLine: multiLine,
	}
}

// With formats the template into a failure. Missing arguments are rendered
// empty and surplus arguments are dropped so the message always matches Arity.
func (t Template) With(args ...string) Result {
	fields := make([]any, t.Arity)
	for i := range fields {
		if i < len(args) {
			fields[i] = args[i]
		} else {
			fields[i] = ""
		}
	}
	return Result{
		failed:    true,
		level:     t.Level,
		message:   fmt.Sprintf(t.Format, fields...),
		multiLine: t.MultiLine,
	}
}

// Result is either a success (the zero value) or a leveled failure message.
type Result struct {
	failed    bool
	level     Level
	message   string
	multiLine bool
}

// OK returns the success result.
func OK() Result {
	return Result{}
}

// Failed builds an ad-hoc failure outside of any template.
func Failed(level Level, message string) Result {
	return Result{failed: true, level: level, message: message}
}

// Success reports whether r is the success value.
func (r Result) Success() bool {
	return !r.failed
}

func (r Result) Level() Level {
	return r.level
}

func (r Result) Message() string {
	return r.message
}

func (r Result) MultiLine() bool {
	return r.multiLine
}

func (r Result) String() string {
	if !r.failed {
		return "success"
	}
	return r.level.String() + ": " + r.message
}

// Log writes a failure to sink and returns r unchanged. Successes are not
// written. Multi-line results are written one entry per line.
func (r Result) Log(sink Sink) Result {
	if !r.failed || sink == nil {
		return r
	}
	if r.multiLine {
		for _, line := range strings.Split(r.message, "\n") {
			sink.Log(r.level, line)
		}
		return r
	}
	sink.Log(r.level, r.message)
	return r
}

// Err returns nil for a success and a *Failure otherwise.
func (r Result) Err() error {
	if !r.failed {
		return nil
	}
	return &Failure{Result: r}
}

// Failure carries a failed Result through code that speaks error.
type Failure struct {
	Result Result
}

func (f *Failure) Error() string {
	return f.Result.message
}
