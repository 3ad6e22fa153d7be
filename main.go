package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/ball-string/internal/config"
	"github.com/iburimskiy/ball-string/internal/game"
	"github.com/iburimskiy/ball-string/internal/sound"
)

func main() {
	log.SetPrefix("ballstring: ")

	cfg, err := config.Load()
	if err != nil {
		fatal(cfg.Window.Title, err)
	}

	click, err := sound.New(cfg.Feedback)
	if err != nil {
		log.Printf("sound disabled: %v", err)
		click = nil
	}

	log.Printf("starting %dx%d, vibrate=%v (%v), sound=%v, counter=%v",
		cfg.Window.Width, cfg.Window.Height,
		cfg.Feedback.Vibrate, cfg.Feedback.VibrateDuration,
		click != nil, cfg.Counter.Enabled)

	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)

	g := game.New(cfg, click)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(cfg.Window.Title, err)
	}
}

// fatal logs err, shows it in a dialog and exits.
func fatal(title string, err error) {
	log.Printf("fatal: %v", err)
	if title == "" {
		title = "Ball String"
	}
	_ = zenity.Error(err.Error(), zenity.Title(title))
	os.Exit(1)
}
