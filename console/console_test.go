//go:build !js || !wasm

package console

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestLevelsRouteThroughLogger(t *testing.T) {
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	Log("mounted", "counter")
	Debug("fetch settled", 1)
	Warn("stale", "response")
	Error("boom")

	out := buf.String()
	for _, want := range []string{
		`level=INFO msg="mounted counter"`,
		`level=DEBUG msg="fetch settled 1"`,
		`level=WARN msg="stale response"`,
		`level=ERROR msg=boom`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected output to contain %q, got:\n%s", want, out)
		}
	}
}
