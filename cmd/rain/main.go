//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"
	"os"
	"time"

	"collatz-rain/internal/app"
	"collatz-rain/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if cfg.File != "" {
		if err := cfg.LoadFile(cfg.File, flag.CommandLine); err != nil {
			log.Fatal(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Fatal(err)
	}

	starts := log.New(os.Stdout, "", 0)
	ec, err := cfg.Engine(starts)
	if err != nil {
		log.Fatal(err)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	painter := render.NewPainter(ec.Width, ec.Height, ec.CellPx, uint8(cfg.TrailAlpha), cfg.Tail, cfg.Decay)
	game := app.New(ec, painter, seed)

	ebiten.SetWindowTitle("collatz-rain — " + ec.Mode)
	ebiten.SetTPS(cfg.TPS)
	ebiten.SetWindowSize(ec.Width, ec.Height)

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
