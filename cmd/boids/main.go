// Command boids runs the flocking simulation in an ebiten window.
package main

import (
	"flag"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/lao-tseu-is-alive/go-boids-simulation/pkg/simulation"
)

func main() {
	configFile := flag.String("config", "", "path to a JSON config file (defaults apply when empty)")
	schemaFile := flag.String("schema", "config.schema.json", "path to the config JSON schema")
	flag.Parse()

	cfg := simulation.DefaultConfig()
	if *configFile != "" {
		loaded, err := simulation.LoadConfig(*configFile, *schemaFile)
		if err != nil {
			log.Fatalf("loading config: %v", err)
		}
		cfg = loaded
	}

	flock, err := simulation.NewFlock(cfg)
	if err != nil {
		log.Fatalf("creating flock: %v", err)
	}

	ebiten.SetWindowSize(int(cfg.WorldWidth), int(cfg.WorldHeight))
	ebiten.SetWindowTitle("Boids")
	if err := ebiten.RunGame(newGame(flock)); err != nil {
		log.Fatal(err)
	}
}
