package logging

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"go.uber.org/zap"
)

func TestNewProductionDisablesDebug(t *testing.T) {
	logger, err := New(ModeProduction, "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("production logger must not log debug")
	}
}

func TestNewDevelopmentEnablesDebug(t *testing.T) {
	logger, err := New("development", "")
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	if !logger.Core().Enabled(zap.DebugLevel) {
		t.Fatal("development logger must log debug")
	}
}

func TestInitWritesRotatedFile(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "app.log")

	flush, err := Init(ModeProduction, filename)
	if err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	zap.S().Infow("product created", "id", "abc")
	flush()

	data, err := os.ReadFile(filename)
	if err != nil {
		t.Fatalf("reading log file: %v", err)
	}
	if !strings.Contains(string(data), `"msg":"product created"`) {
		t.Fatalf("expected JSON entry in log file, got %s", data)
	}
}
