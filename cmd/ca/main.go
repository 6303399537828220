//go:build ebiten

package main

import (
	"errors"
	"flag"
	"log"

	"mad-life/internal/app"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	engine, err := cfg.Build()
	if err != nil {
		log.Fatal(err)
	}
	ctl := app.NewController(engine, cfg.Scale, cfg.TPS)
	ctl.SetDensity(cfg.Density)
	game := app.New(ctl, cfg.Scale)

	ebiten.SetWindowTitle("mad-life: " + engine.Rule().String())
	ebiten.SetWindowSize(ctl.ScreenSize(app.HUDWidth))

	if err := ebiten.RunGame(game); err != nil && !errors.Is(err, ebiten.Termination) {
		log.Fatal(err)
	}
}
