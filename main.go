package main

import (
	"errors"
	"log"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/bokeh/internal/config"
	"github.com/iburimskiy/bokeh/internal/game"
)

func main() {
	settings, err := config.Profile(config.Basic)
	if err != nil {
		fatal(err)
	}
	log.Printf("loaded profile %q: %d particles/s, color %s", config.Basic, int(settings.EmissionRate), settings.Color)

	g, err := game.NewGame(settings)
	if err != nil {
		fatal(err)
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle(config.WindowTitle)
	ebiten.SetTPS(config.TPS)

	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		fatal(err)
	}
}

// fatal logs err, shows it in a native dialog and exits.
func fatal(err error) {
	log.Printf("bokeh: %v", err)
	if dErr := zenity.Error(err.Error(), zenity.Title("Bokeh"), zenity.ErrorIcon); dErr != nil {
		log.Printf("bokeh: error dialog: %v", dErr)
	}
	os.Exit(1)
}
