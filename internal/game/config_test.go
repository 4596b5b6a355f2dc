package game

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettings_MissingFileUsesDefaults(t *testing.T) {
	got, err := LoadSettings(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("missing file should not error: %v", err)
	}
	if got != DefaultSettings() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestLoadSettings_EmptyPathUsesDefaults(t *testing.T) {
	got, err := LoadSettings("")
	if err != nil {
		t.Fatal(err)
	}
	if got != DefaultSettings() {
		t.Fatalf("got %+v, want defaults", got)
	}
}

func TestLoadSettings_OverlaysFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingershot.toml")
	data := `
[window]
width = 1920

[player]
name = "ada"

[tracker]
detect-every = 1

[audio]
enabled = false
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.WindowW != 1920 {
		t.Fatalf("width = %d, want 1920", got.WindowW)
	}
	if got.WindowH != 720 {
		t.Fatalf("absent height = %d, want default 720", got.WindowH)
	}
	if got.PlayerName != "ada" {
		t.Fatalf("name = %q, want ada", got.PlayerName)
	}
	if got.DetectEvery != 1 {
		t.Fatalf("detect-every = %d, want 1", got.DetectEvery)
	}
	if got.AudioEnabled {
		t.Fatal("audio should be off")
	}
	if got.DBPath != "fingershot.db" {
		t.Fatalf("db path = %q, want default", got.DBPath)
	}
}

func TestLoadSettings_RejectsNonsenseValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingershot.toml")
	data := `
[window]
width = -5

[tracker]
detect-every = 0
`
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := LoadSettings(path)
	if err != nil {
		t.Fatal(err)
	}
	if got.WindowW != 1280 || got.DetectEvery != 2 {
		t.Fatalf("out-of-range values should fall back to defaults, got %+v", got)
	}
}

func TestLoadSettings_MalformedFileErrors(t *testing.T) {
	path := filepath.Join(t.TempDir(), "fingershot.toml")
	if err := os.WriteFile(path, []byte("[window\nwidth="), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadSettings(path); err == nil {
		t.Fatal("malformed TOML should error")
	}
}
