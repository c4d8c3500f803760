package logging

import (
	"os"
	"path/filepath"
	"testing"
)

func TestHelpersSafeBeforeInit(t *testing.T) {
	if Logger != nil {
		t.Skip("logger already initialized")
	}
	Info("no logger yet")
	Debug("no logger yet")
	Warn("no logger yet")
	Error("no logger yet")
	if l := WithPrefix("session"); l != nil {
		t.Error("expected nil sub-logger before Init")
	}
}

func TestInitCreatesLogFile(t *testing.T) {
	t.Setenv("HOME", t.TempDir())

	if err := Init(); err != nil {
		t.Fatalf("Init failed: %v", err)
	}
	t.Cleanup(Close)

	home, err := os.UserHomeDir()
	if err != nil {
		t.Fatalf("UserHomeDir failed: %v", err)
	}
	entries, err := os.ReadDir(filepath.Join(home, ".gamerec", "logs"))
	if err != nil {
		t.Fatalf("expected a log directory: %v", err)
	}
	if len(entries) == 0 {
		t.Fatal("expected a log file")
	}

	Info("started", "session", "test")
	if WithPrefix("session") == nil {
		t.Error("expected a prefixed sub-logger after Init")
	}
}
