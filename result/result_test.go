package result

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

type entry struct {
	level Level
	msg   string
}

type recordingSink struct {
	entries []entry
}

func (s *recordingSink) Log(level Level, msg string) {
	s.entries = append(s.entries, entry{level, msg})
}

func TestOKIsSuccess(t *testing.T) {
	r := OK()
	if !r.Success() {
		t.Fatal("OK() should be a success")
	}
	if r.Err() != nil {
		t.Fatalf("Err() = %v, want nil", r.Err())
	}
	var zero Result
	if !zero.Success() {
		t.Fatal("zero Result should be a success")
	}
}

func TestTemplateWith(t *testing.T) {
	tmpl := NewTemplate(LevelError, "Vulkan error (%s):\n%s", 2, false)
	r := tmpl.With("VK_ERROR_UNKNOWN", "context")
	if r.Success() {
		t.Fatal("template result should be a failure")
	}
	if r.Level() != LevelError {
		t.Errorf("Level() = %v, want error", r.Level())
	}
	want := "Vulkan error (VK_ERROR_UNKNOWN):\ncontext"
	if r.Message() != want {
		t.Errorf("Message() = %q, want %q", r.Message(), want)
	}
}

func TestTemplateWithArityMismatch(t *testing.T) {
	tmpl := NewTemplate(LevelWarning, "%s/%s", 2, false)
	if got := tmpl.With("a").Message(); got != "a/" {
		t.Errorf("missing args: got %q", got)
	}
	if got := tmpl.With("a", "b", "c").Message(); got != "a/b" {
		t.Errorf("surplus args: got %q", got)
	}
}

func TestLogSingleLine(t *testing.T) {
	sink := &recordingSink{}
	r := NewTemplate(LevelError, "x (%s):\n%s", 2, false).With("a", "b").Log(sink)
	if len(sink.entries) != 1 {
		t.Fatalf("got %d entries, want 1", len(sink.entries))
	}
	if sink.entries[0].msg != r.Message() {
		t.Errorf("logged %q, want %q", sink.entries[0].msg, r.Message())
	}
}

func TestLogMultiLine(t *testing.T) {
	sink := &recordingSink{}
	NewTemplate(LevelWarning, "%s\n%s", 2, true).With("one", "two").Log(sink)
	if len(sink.entries) != 2 {
		t.Fatalf("got %d entries, want 2", len(sink.entries))
	}
	if sink.entries[0].msg != "one" || sink.entries[1].msg != "two" {
		t.Errorf("unexpected entries %+v", sink.entries)
	}
	if sink.entries[1].level != LevelWarning {
		t.Errorf("level = %v, want warning", sink.entries[1].level)
	}
}

func TestLogSuccessWritesNothing(t *testing.T) {
	sink := &recordingSink{}
	OK().Log(sink)
	if len(sink.entries) != 0 {
		t.Fatalf("success should not be logged, got %+v", sink.entries)
	}
}

func TestErrCarriesResult(t *testing.T) {
	r := Failed(LevelError, "out of memory")
	err := r.Err()
	var f *Failure
	if !errors.As(err, &f) {
		t.Fatalf("Err() = %T, want *Failure", err)
	}
	if f.Result.Message() != "out of memory" {
		t.Errorf("Failure.Result.Message() = %q", f.Result.Message())
	}
	if err.Error() != "out of memory" {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestZerologSink(t *testing.T) {
	var buf bytes.Buffer
	sink := NewZerologSink(zerolog.New(&buf))
	sink.Log(LevelWarning, "layer message")
	out := buf.String()
	if !strings.Contains(out, `"level":"warn"`) {
		t.Errorf("missing warn level in %s", out)
	}
	if !strings.Contains(out, "layer message") {
		t.Errorf("missing message in %s", out)
	}
}
