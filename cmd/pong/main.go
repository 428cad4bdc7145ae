package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/diegok/pong/internal/app"
	"github.com/diegok/pong/internal/config"
	"github.com/diegok/pong/internal/game"
	"github.com/diegok/pong/internal/window"
)

func main() {
	cfg, err := config.ParseArgs(os.Args[1:])
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			printUsage()
			return
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		printUsage()
		os.Exit(1)
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	sim := game.NewSimulation(cfg.Game.Params(), game.RandomVectors(rand.New(rand.NewSource(seed))))

	if cfg.Terminal {
		err = app.NewApp(cfg, sim).Run()
	} else {
		err = window.Run(cfg, sim)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage:")
	fmt.Fprintln(os.Stderr, "  pong [options]")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Options:")
	fmt.Fprintln(os.Stderr, "  --terminal          Play in the terminal instead of a window")
	fmt.Fprintln(os.Stderr, "  --config <file>     Tuning file (.yaml, .yml or .toml)")
	fmt.Fprintln(os.Stderr, "  --width <n>         Initial window width (default: 800)")
	fmt.Fprintln(os.Stderr, "  --height <n>        Initial window height (default: 600)")
	fmt.Fprintln(os.Stderr, "  --title <text>      Window title (default: Pong)")
	fmt.Fprintln(os.Stderr, "  --seed <n>          Serve direction seed (default: time based)")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Controls:")
	fmt.Fprintln(os.Stderr, "  Left paddle  W / S      Right paddle  I / K      Quit  Esc")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Examples:")
	fmt.Fprintln(os.Stderr, "  pong")
	fmt.Fprintln(os.Stderr, "  pong --terminal")
	fmt.Fprintln(os.Stderr, "  pong --config pong.yaml --width 1280 --height 720")
}
