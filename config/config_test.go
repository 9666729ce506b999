// SPDX-License-Identifier: EPL-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func isolate(t *testing.T) string {
	t.Helper()

	dir := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", dir)
	t.Setenv("HOME", dir)
	for _, k := range []string{"AUDIOINFO_OUTPUT", "AUDIOINFO_VERBOSE", "AUDIOINFO_ON_ERROR", "AUDIOINFO_WORKERS"} {
		t.Setenv(k, "")
	}
	return dir
}

func writeConfig(t *testing.T, xdg, body string) {
	t.Helper()

	dir := filepath.Join(xdg, "audioinfo")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "config.toml"), []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	isolate(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Output != DefaultOutput || cfg.Verbose || cfg.OnError != "abort" || cfg.Workers != 1 {
		t.Errorf("Load() = %+v, want defaults", cfg)
	}
}

func TestLoad_File(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, `
output = "~/reports/music.txt"
verbose = true
on_error = "skip"
workers = 4
`)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if want := filepath.Join(xdg, "reports", "music.txt"); cfg.Output != want {
		t.Errorf("Output = %q, want %q", cfg.Output, want)
	}
	if !cfg.Verbose || cfg.OnError != "skip" || cfg.Workers != 4 {
		t.Errorf("Load() = %+v, want verbose/skip/4", cfg)
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, `
verbose = true
workers = 4
`)
	t.Setenv("AUDIOINFO_VERBOSE", "false")
	t.Setenv("AUDIOINFO_WORKERS", "2")
	t.Setenv("AUDIOINFO_OUTPUT", "/tmp/out.txt")
	t.Setenv("AUDIOINFO_ON_ERROR", "skip")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.Verbose || cfg.Workers != 2 || cfg.Output != "/tmp/out.txt" || cfg.OnError != "skip" {
		t.Errorf("Load() = %+v, want env values", cfg)
	}
}

func TestLoad_BadValues(t *testing.T) {
	tests := []struct {
		name string
		key  string
		val  string
	}{
		{name: "workers not a number", key: "AUDIOINFO_WORKERS", val: "many"},
		{name: "workers zero", key: "AUDIOINFO_WORKERS", val: "0"},
		{name: "verbose not a bool", key: "AUDIOINFO_VERBOSE", val: "loud"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			t.Setenv(tt.key, tt.val)

			if _, err := Load(); err == nil {
				t.Errorf("Load() error = nil, want error for %s=%q", tt.key, tt.val)
			}
		})
	}
}

func TestLoad_BrokenFile(t *testing.T) {
	xdg := isolate(t)
	writeConfig(t, xdg, "workers = [")

	if _, err := Load(); err == nil {
		t.Error("Load() error = nil, want TOML error")
	}
}
