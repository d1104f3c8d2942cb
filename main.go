package main

import (
	"flag"
	"log"

	"github.com/automoto/dunkball/client"
	"github.com/automoto/dunkball/config"
	"github.com/automoto/dunkball/shared/logging"
	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML file overlaid on the default configuration")
	level := flag.String("log", "info", "Log level (debug, info, warn, error)")
	drawHands := flag.Bool("hands", false, "Outline hand sensors")
	flag.Parse()

	if *configPath != "" {
		if err := config.Load(*configPath); err != nil {
			log.Fatalf("Failed to load config: %v", err)
		}
	}
	if *drawHands {
		config.Debug.DrawHands = true
	}

	logger, err := logging.New(logging.Options{Level: *level})
	if err != nil {
		log.Fatalf("Failed to create logger: %v", err)
	}
	defer logger.Sync() //nolint:errcheck

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("dunkball")
	ebiten.SetTPS(config.Physics.TickRate)

	if err := ebiten.RunGame(client.NewGame()); err != nil {
		log.Fatal(err)
	}
}
