package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/kettleworth/fingershot/internal/game"
	"github.com/kettleworth/fingershot/internal/leaderboard"
)

func main() {
	var settingsPath string
	flag.StringVar(&settingsPath, "settings", "fingershot.toml", "settings file path")
	flag.Parse()

	settings, err := game.LoadSettings(settingsPath)
	if err != nil {
		log.Fatal(err)
	}

	store, err := leaderboard.Open(settings.DBPath)
	if err != nil {
		// The game runs fine without the board; just say so.
		log.Printf("leaderboard disabled: %v", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	ebiten.SetWindowTitle("Fingershot")
	ebiten.SetWindowSize(settings.WindowW, settings.WindowH)
	if err := ebiten.RunGame(game.New(settings, nil, store)); err != nil {
		log.Fatal(err)
	}
}
