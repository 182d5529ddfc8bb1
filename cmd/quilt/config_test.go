package main

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadConfig(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		want    Config
		wantErr string
	}{
		{
			name: "full",
			yaml: "margin: 12\nborder: 0.5\ndebug: true\nworkers: 3\nlog_level: debug\n",
			want: Config{Margin: 12, Border: 0.5, Debug: true, Workers: 3, LogLevel: "debug"},
		},
		{
			name: "partial keeps defaults",
			yaml: "debug: true\n",
			want: Config{Border: 0.2, Debug: true, LogLevel: "info"},
		},
		{
			name:    "border out of range",
			yaml:    "border: 1.5\n",
			wantErr: "border",
		},
		{
			name:    "bad level",
			yaml:    "log_level: chatty\n",
			wantErr: "log_level",
		},
		{
			name:    "malformed",
			yaml:    "margin: [1, 2\n",
			wantErr: "parse",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadConfig(writeFile(t, "quilt.yaml", tt.yaml))
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("LoadConfig() error = %v, want mention of %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("LoadConfig() mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	if _, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Error("LoadConfig() of a missing file succeeded")
	}
}

func TestConfig_Level(t *testing.T) {
	cfg := DefaultConfig()
	cfg.LogLevel = "warn"
	level, err := cfg.Level()
	if err != nil || level != slog.LevelWarn {
		t.Errorf("Level() = %v, %v; want WARN", level, err)
	}
}

func TestConfig_MarginFor(t *testing.T) {
	half := func(b float64, h int) int { return int(b * float64(h/2)) }

	cfg := Config{Border: 0.5}
	if got := cfg.MarginFor(40, half); got != 10 {
		t.Errorf("MarginFor from border = %d, want 10", got)
	}
	cfg.Margin = 3
	if got := cfg.MarginFor(40, half); got != 3 {
		t.Errorf("MarginFor with margin = %d, want 3", got)
	}
}
