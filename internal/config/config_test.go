package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultValidates(t *testing.T) {
	cfg := Default()
	if err := cfg.normalize(); err != nil {
		t.Fatalf("normalize: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("default config should validate: %v", err)
	}
}

func TestLoadOverridesDefaults(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "config.toml")
	content := `
[paths]
catalog_path = "` + filepath.Join(dir, "episodes.csv") + `"

[fetch]
timeout_seconds = 5
request_delay_ms = 0

[logging]
level = "debug"
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Fetch.TimeoutSeconds != 5 {
		t.Errorf("timeout = %d, want 5", cfg.Fetch.TimeoutSeconds)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Fetch.UserAgent != DefaultUserAgent {
		t.Errorf("user agent should keep default, got %q", cfg.Fetch.UserAgent)
	}
	if cfg.Merge.PlaceholderPattern != DefaultPlaceholderPattern {
		t.Errorf("placeholder pattern should keep default, got %q", cfg.Merge.PlaceholderPattern)
	}
}

func TestLoadMissingExplicitPath(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "bad timeout",
			content: "[fetch]\ntimeout_seconds = -1\n",
			wantErr: "timeout_seconds",
		},
		{
			name:    "bad level",
			content: "[logging]\nlevel = \"loud\"\n",
			wantErr: "logging.level",
		},
		{
			name:    "bad pattern",
			content: "[merge]\nplaceholder_pattern = \"[\"\n",
			wantErr: "placeholder_pattern",
		},
		{
			name:    "bad start date",
			content: "[fetch]\nstart_date = \"May 6\"\n",
			wantErr: "start_date",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatalf("write config: %v", err)
			}
			_, err := Load(path)
			if err == nil {
				t.Fatal("expected validation error")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q does not mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPathHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("no home dir: %v", err)
	}
	got, err := expandPath("~/x/y")
	if err != nil {
		t.Fatalf("expandPath: %v", err)
	}
	want := filepath.Join(home, "x", "y")
	if got != want {
		t.Errorf("expandPath = %q, want %q", got, want)
	}
}

func TestCreateSampleRefusesOverwrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	written, err := CreateSample(path)
	if err != nil {
		t.Fatalf("CreateSample: %v", err)
	}
	if written != path {
		t.Errorf("written path = %q, want %q", written, path)
	}
	if _, err := CreateSample(path); err == nil {
		t.Fatal("expected error when file exists")
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("sample config should load: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		t.Fatalf("sample config should validate: %v", err)
	}
}
