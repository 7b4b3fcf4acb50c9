package logger

import (
	"bytes"
	"strings"
	"testing"
)

func TestNewRespectsVerbose(t *testing.T) {
	var quiet bytes.Buffer
	New(&quiet, false).Debug("hidden", "path", "app")
	if quiet.Len() != 0 {
		t.Fatalf("debug record leaked without verbose: %q", quiet.String())
	}

	var loud bytes.Buffer
	New(&loud, true).Debug("wrote file", "path", "app/main.py")
	if !strings.Contains(loud.String(), "wrote file") || !strings.Contains(loud.String(), "path=app/main.py") {
		t.Fatalf("unexpected output: %q", loud.String())
	}
}
