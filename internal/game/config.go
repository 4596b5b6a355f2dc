package game

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Settings are the host-level options read from fingershot.toml. Fields
// are pointers so an absent key keeps its default; gameplay constants
// are not configurable — tuning lives in source where the tests pin it.
type Settings struct {
	Window  WindowSettings  `toml:"window"`
	Player  PlayerSettings  `toml:"player"`
	Tracker TrackerSettings `toml:"tracker"`
	Audio   AudioSettings   `toml:"audio"`
	Scores  ScoreSettings   `toml:"scores"`
}

type WindowSettings struct {
	Width  *int `toml:"width"`
	Height *int `toml:"height"`
}

type PlayerSettings struct {
	Name *string `toml:"name"`
}

type TrackerSettings struct {
	// DetectEvery runs the classification pipeline on every Nth frame.
	// Purely a throughput knob; every component tolerates stale gesture
	// results.
	DetectEvery *int `toml:"detect-every"`
}

type AudioSettings struct {
	Enabled *bool `toml:"enabled"`
}

type ScoreSettings struct {
	// Path of the local leaderboard database.
	DBPath *string `toml:"db-path"`
}

// DefaultSettings are the values used when the file or a key is absent.
func DefaultSettings() ResolvedSettings {
	return ResolvedSettings{
		WindowW:      1280,
		WindowH:      720,
		PlayerName:   "player",
		DetectEvery:  2,
		AudioEnabled: true,
		DBPath:       "fingershot.db",
	}
}

// ResolvedSettings is the flattened, default-filled form the game
// consumes.
type ResolvedSettings struct {
	WindowW, WindowH int
	PlayerName       string
	DetectEvery      int
	AudioEnabled     bool
	DBPath           string
}

// LoadSettings reads the TOML settings file and overlays it on the
// defaults. A missing file is not an error; a malformed one is.
func LoadSettings(path string) (ResolvedSettings, error) {
	out := DefaultSettings()
	if path == "" {
		return out, nil
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return out, nil
		}
		return out, fmt.Errorf("stat settings: %w", err)
	}

	var s Settings
	if _, err := toml.DecodeFile(path, &s); err != nil {
		return out, fmt.Errorf("decode settings: %w", err)
	}
	out.apply(s)
	return out, nil
}

func (r *ResolvedSettings) apply(s Settings) {
	if s.Window.Width != nil && *s.Window.Width > 0 {
		r.WindowW = *s.Window.Width
	}
	if s.Window.Height != nil && *s.Window.Height > 0 {
		r.WindowH = *s.Window.Height
	}
	if s.Player.Name != nil && *s.Player.Name != "" {
		r.PlayerName = *s.Player.Name
	}
	if s.Tracker.DetectEvery != nil && *s.Tracker.DetectEvery > 0 {
		r.DetectEvery = *s.Tracker.DetectEvery
	}
	if s.Audio.Enabled != nil {
		r.AudioEnabled = *s.Audio.Enabled
	}
	if s.Scores.DBPath != nil && *s.Scores.DBPath != "" {
		r.DBPath = *s.Scores.DBPath
	}
}
