package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLoadMissingFileYieldsDefaults(t *testing.T) {
	cfg, _, exists, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if exists {
		t.Error("exists = true for missing file")
	}
	defaults := Default()
	if cfg.Logging.Level != defaults.Logging.Level || cfg.Search.TimeoutSeconds != defaults.Search.TimeoutSeconds {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
}

func TestLoadParsesAndNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[logging]
level = "DEBUG"

[search]
timeout_seconds = 30

[images]
scale_width = 800
`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, resolved, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !exists || resolved == "" {
		t.Errorf("resolved = %q, exists = %v", resolved, exists)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Level = %q, want normalized %q", cfg.Logging.Level, "debug")
	}
	if cfg.Search.TimeoutSeconds != 30 {
		t.Errorf("TimeoutSeconds = %d, want 30", cfg.Search.TimeoutSeconds)
	}
	if cfg.Images.ScaleWidth != 800 {
		t.Errorf("ScaleWidth = %d, want 800", cfg.Images.ScaleWidth)
	}
	// Unset sections keep their defaults.
	if cfg.Search.BaseURL != defaultSearchBaseURL {
		t.Errorf("BaseURL = %q, want default", cfg.Search.BaseURL)
	}
}

func TestLoadRejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    string
	}{
		{"bad level", "[logging]\nlevel = \"loud\"\n", "logging.level"},
		{"bad format", "[logging]\nformat = \"xml\"\n", "logging.format"},
		{"bad timeout", "[search]\ntimeout_seconds = -1\n", "search.timeout_seconds"},
		{"bad scale width", "[images]\nscale_width = -5\n", "images.scale_width"},
		{"cache without path", "[cache]\nenabled = true\npath = \"\"\n", "cache.path"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "config.toml")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			_, _, _, err := Load(path)
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Load error = %v, want mention of %s", err, tt.want)
			}
		})
	}
}

func TestCreateSampleIsLoadable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "config.toml")
	if err := CreateSample(path); err != nil {
		t.Fatalf("CreateSample failed: %v", err)
	}
	cfg, _, exists, err := Load(path)
	if err != nil {
		t.Fatalf("Load of sample failed: %v", err)
	}
	if !exists {
		t.Error("sample config not found after CreateSample")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("sample config invalid: %v", err)
	}
}

func TestExpandPathHome(t *testing.T) {
	expanded, err := ExpandPath("~/some/file.db")
	if err != nil {
		t.Fatalf("ExpandPath failed: %v", err)
	}
	if strings.HasPrefix(expanded, "~") || !filepath.IsAbs(expanded) {
		t.Errorf("ExpandPath = %q, want absolute path", expanded)
	}
}
