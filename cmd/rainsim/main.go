package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"collatz-rain/internal/app"
	"collatz-rain/internal/core"
	"collatz-rain/internal/rain"
)

func main() {
	cfg := app.NewConfig()
	cfg.Bind(flag.CommandLine)
	steps := flag.Int("steps", 3600, "number of ticks to simulate")
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
		seed = 1337
	}

	field, err := rain.New(ec, core.NewRNG(seed), nil)
	if err != nil {
		log.Fatal(err)
	}
	field.Reset(0)

	dt := 1.0 / float64(cfg.TPS)
	nowMS := int64(0)
	stepMS := int64(1000 / cfg.TPS)
	for i := 0; i < *steps; i++ {
		nowMS += stepMS
		if err := field.Tick(dt, nowMS); err != nil {
			log.Fatal(err)
		}
	}

	st := field.Stats()
	fmt.Printf("%s: %d ticks over %d columns\n", ec.Mode, *steps, field.Cols())
	fmt.Printf("  active %d (peak %d, target %d)\n", field.Active(), st.Peak, field.Target())
	fmt.Printf("  seeds %d, children %d, removed %d\n", st.Seeds, st.Children, st.Removed)
}
