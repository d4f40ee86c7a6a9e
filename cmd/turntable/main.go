package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"turntable/internal/config"
	"turntable/internal/game"
)

func main() {
	log.SetFlags(log.Ltime)

	configPath := flag.String("config", "", "JSON settings file")
	radius := flag.Float64("radius", 0, "turntable radius, overrides the config")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "usage: %s [flags] <model file>\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			log.Fatal(err)
		}
		cfg = loaded
	}
	if *radius > 0 {
		cfg.Turntable.Radius = float32(*radius)
	}

	g := game.New(cfg, flag.Arg(0))
	if err := g.Run(); err != nil {
		log.Fatal(err)
	}
}
