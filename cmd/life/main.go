package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	"mad-life/internal/app"
	"mad-life/internal/render"
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("life: ")

	cfg := app.NewConfig()
	if err := cfg.LoadEnv(); err != nil {
		log.Fatal(err)
	}
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := run(cfg, os.Stdout); err != nil {
		log.Fatal(err)
	}
}

// run advances the configured board cfg.Generations times, writing text
// frames to out.
func run(cfg *app.Config, out io.Writer) error {
	engine, err := cfg.Build()
	if err != nil {
		return err
	}
	ctl := app.NewController(engine, cfg.Scale, cfg.TPS)
	log.Printf("%dx%d %s pattern=%s seed=%d generations=%d", cfg.Rows, cfg.Cols, engine.Rule(), cfg.Pattern, cfg.Seed, cfg.Generations)

	if err := writeFrame(out, ctl); err != nil {
		return err
	}
	for ctl.Generation() < cfg.Generations {
		ctl.Tick()
		gen := ctl.Generation()
		last := gen == cfg.Generations
		died := ctl.Engine().Population() == 0
		if last || died || (cfg.Every > 0 && gen%cfg.Every == 0) {
			if err := writeFrame(out, ctl); err != nil {
				return err
			}
		}
		if died && !last {
			log.Printf("population died out at generation %d", gen)
			return nil
		}
	}
	log.Printf("done: generation %d population %d", ctl.Generation(), ctl.Engine().Population())
	return nil
}

func writeFrame(out io.Writer, ctl *app.Controller) error {
	e := ctl.Engine()
	title := fmt.Sprintf("generation %d population %d", ctl.Generation(), e.Population())
	return render.WriteFrame(out, title, e.Grid())
}
