package logger_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/scriptdeck/quickload/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func TestLogger_WritesToConfiguredOutput(t *testing.T) {
	l, ok := logger.New().(*logger.Logger)
	if !ok {
		t.Fatal("New did not return *logger.Logger")
	}

	var buf bytes.Buffer
	l.SetOutput(&buf)

	l.Info("cache loaded")
	l.Warn("discarding unreadable cache")
	l.Error(zerr.New("disk full"))

	out := buf.String()
	for _, want := range []string{"cache loaded", "discarding unreadable cache", "disk full"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}
