package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestDuration_UnmarshalText(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected time.Duration
		wantErr  bool
	}{
		{"seconds", "30s", 30 * time.Second, false},
		{"minutes", "5m", 5 * time.Minute, false},
		{"complex", "1h30m", 90 * time.Minute, false},
		{"milliseconds", "100ms", 100 * time.Millisecond, false},
		{"invalid", "invalid", 0, true},
		{"empty", "", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalText([]byte(tt.input))

			if (err != nil) != tt.wantErr {
				t.Errorf("UnmarshalText() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if !tt.wantErr && d.Duration != tt.expected {
				t.Errorf("UnmarshalText() = %v, want %v", d.Duration, tt.expected)
			}
		})
	}
}

func TestDuration_MarshalText(t *testing.T) {
	d := Duration{30 * time.Second}
	result, err := d.MarshalText()

	if err != nil {
		t.Fatalf("MarshalText() error = %v", err)
	}
	if string(result) != "30s" {
		t.Errorf("MarshalText() = %v, want 30s", string(result))
	}
}

func TestLoad_TOML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlw.toml")

	content := `
[general]
log_level = "debug"

[jokes]
base_url = "http://localhost:9999"
timeout = "3s"

[greet]
repeat = 2
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogLevel != "debug" {
		t.Errorf("LogLevel = %v, want debug", cfg.General.LogLevel)
	}
	if cfg.Jokes.BaseURL != "http://localhost:9999" {
		t.Errorf("Jokes.BaseURL = %v, want http://localhost:9999", cfg.Jokes.BaseURL)
	}
	if cfg.Jokes.Timeout.Duration != 3*time.Second {
		t.Errorf("Jokes.Timeout = %v, want 3s", cfg.Jokes.Timeout.Duration)
	}
	if cfg.Greet.Repeat != 2 {
		t.Errorf("Greet.Repeat = %v, want 2", cfg.Greet.Repeat)
	}

	// Untouched sections fall back to defaults
	if cfg.Scrape.URL != "https://example.com" {
		t.Errorf("Scrape.URL = %v, want default", cfg.Scrape.URL)
	}
}

func TestLoad_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "mlw.yaml")

	content := `
general:
  log_format: json
scrape:
  url: http://localhost:8123
  timeout: 2s
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if cfg.General.LogFormat != "json" {
		t.Errorf("LogFormat = %v, want json", cfg.General.LogFormat)
	}
	if cfg.Scrape.URL != "http://localhost:8123" {
		t.Errorf("Scrape.URL = %v, want http://localhost:8123", cfg.Scrape.URL)
	}
	if cfg.Scrape.Timeout.Duration != 2*time.Second {
		t.Errorf("Scrape.Timeout = %v, want 2s", cfg.Scrape.Timeout.Duration)
	}
}

func TestLoad_Missing(t *testing.T) {
	_, err := Load("/nonexistent/mlw.toml")
	if err == nil {
		t.Error("Load() should fail for a missing file")
	}
}

func TestLoad_Invalid(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "broken.toml")

	if err := os.WriteFile(path, []byte("not [ valid toml"), 0644); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Error("Load() should fail for invalid TOML")
	}
}

func TestApplyDefaults(t *testing.T) {
	var cfg Config
	cfg.applyDefaults()

	if cfg.General.Name != "meinLERNWERK" {
		t.Errorf("Name = %v, want meinLERNWERK", cfg.General.Name)
	}
	if cfg.Greet.Repeat != 1 {
		t.Errorf("Greet.Repeat = %v, want 1", cfg.Greet.Repeat)
	}
	if cfg.Jokes.BaseURL != "https://official-joke-api.appspot.com" {
		t.Errorf("Jokes.BaseURL = %v, want joke API default", cfg.Jokes.BaseURL)
	}
	if cfg.Jokes.Timeout.Duration != 10*time.Second {
		t.Errorf("Jokes.Timeout = %v, want 10s", cfg.Jokes.Timeout.Duration)
	}
	if cfg.Notes.Path != filepath.Join("./data", "notes.db") {
		t.Errorf("Notes.Path = %v, want data/notes.db", cfg.Notes.Path)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("MLW_TEST_DIR", "/tmp/mlw-test")

	cfg := Config{}
	cfg.General.DataDir = "$MLW_TEST_DIR"
	cfg.applyDefaults()
	cfg.expandEnvVars()

	if cfg.General.DataDir != "/tmp/mlw-test" {
		t.Errorf("DataDir = %v, want /tmp/mlw-test", cfg.General.DataDir)
	}
}
