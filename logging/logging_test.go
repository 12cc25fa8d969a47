package logging

import "testing"

func TestDefaultLoggerIsNoOp(t *testing.T) {
	SetLogger(nil)
	// Must not panic with no logger installed.
	Debug("test", "k", "v")
	Warn("test", "k", "v")
}

func TestSetLoggerReceivesEvents(t *testing.T) {
	var gotLevel Level
	var gotMsg string
	SetLogger(func(level Level, msg string, keyvals ...interface{}) {
		gotLevel = level
		gotMsg = msg
	})
	defer SetLogger(nil)

	Warn("something happened", "key", "value")
	if gotLevel != WarnLevel {
		t.Errorf("got level %q, want %q", gotLevel, WarnLevel)
	}
	if gotMsg != "something happened" {
		t.Errorf("got msg %q", gotMsg)
	}
}

func TestSetLoggerNilRestoresNoOp(t *testing.T) {
	called := false
	SetLogger(func(Level, string, ...interface{}) { called = true })
	SetLogger(nil)
	Debug("x")
	if called {
		t.Error("expected nil logger to replace the previous one, not call it")
	}
}
