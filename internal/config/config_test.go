package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widgets.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing config: %v", err)
	}
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Errorf("defaults mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_FileOverridesDefaults(t *testing.T) {
	path := writeFile(t, `
api:
  base_url: http://localhost:9000
  status_path: /user/{id}
  timeout: 250ms
widgets:
  detail_user_ids: [3, 4]
twin:
  enabled: true
  latency: 15ms
log:
  level: debug
  format: text
`)
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	want := Default()
	want.API.BaseURL = "http://localhost:9000"
	want.API.StatusPath = "/user/{id}"
	want.API.Timeout = 250 * time.Millisecond
	want.Widgets.DetailUserIDs = []int{3, 4}
	want.Twin.Enabled = true
	want.Twin.Latency = 15 * time.Millisecond
	want.Log = Log{Level: "debug", Format: "text"}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{"bad yaml", "api: [", "parsing config"},
		{"path without id", "api:\n  profile_path: /users\n", "must contain {id}"},
		{"negative id", "widgets:\n  profile_user_id: -1\n", "must be positive"},
		{"bad detail id", "widgets:\n  detail_user_ids: [1, 0]\n", "not a positive id"},
		{"bad level", "log:\n  level: loud\n", "invalid log level"},
		{"bad format", "log:\n  format: xml\n", "log.format"},
		{"bad port", "twin:\n  port: 70000\n", "out of range"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeFile(t, tt.content))
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error containing %q, got %v", tt.wantErr, err)
			}
		})
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected error for missing file")
	}
}

func TestParse_FlagsOverrideFile(t *testing.T) {
	path := writeFile(t, "api:\n  base_url: http://from-file\nwidgets:\n  clicks: 9\n")
	t.Setenv("PORT", "")

	cfg, err := Parse("userdemo", []string{
		"-config", path,
		"-api", "http://from-flag",
		"-users", "2, 5,7",
		"-twin",
		"-port", "8181",
		"-verbose",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	if cfg.API.BaseURL != "http://from-flag" {
		t.Errorf("expected flag base URL, got %s", cfg.API.BaseURL)
	}
	if cfg.Widgets.Clicks != 9 {
		t.Errorf("expected clicks from file (9), got %d", cfg.Widgets.Clicks)
	}
	if diff := cmp.Diff([]int{2, 5, 7}, cfg.Widgets.DetailUserIDs); diff != "" {
		t.Errorf("ids mismatch (-want +got):\n%s", diff)
	}
	if !cfg.Twin.Enabled || cfg.Twin.Port != 8181 {
		t.Errorf("expected twin on 8181, got %+v", cfg.Twin)
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("expected debug level, got %s", cfg.Log.Level)
	}
}

func TestParse_PortFromEnv(t *testing.T) {
	t.Setenv("PORT", "7070")
	cfg, err := Parse("usertwin", nil)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if cfg.Twin.Port != 7070 {
		t.Errorf("expected port 7070, got %d", cfg.Twin.Port)
	}

	t.Setenv("PORT", "seventy")
	if _, err := Parse("usertwin", nil); err == nil {
		t.Error("expected error for invalid PORT")
	}
}

func TestParse_BadIDs(t *testing.T) {
	if _, err := Parse("userdemo", []string{"-users", "1,x"}); err == nil {
		t.Error("expected error for non-numeric id")
	}
}

func TestParseLevel(t *testing.T) {
	l, err := ParseLevel("warn")
	if err != nil || l != slog.LevelWarn {
		t.Errorf("expected warn, got %v (%v)", l, err)
	}
	if Default().NewLogger() == nil {
		t.Error("expected logger")
	}
}
