package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"dungeonforge/pkg/dungeon"
	"dungeonforge/pkg/dungeon/config"
	"dungeonforge/pkg/dungeon/layout"
	"dungeonforge/pkg/engine/input"
	"dungeonforge/pkg/render/ebitenview"
	"dungeonforge/pkg/render/tui"
)

func initGotext() {
	gotext.Configure("locales", "en_US", "default")
}

// loadParams reads the HCL config file if one was given, otherwise defaults.
func loadParams(path string) (*config.Params, error) {
	if path == "" {
		p := config.Defaults()
		p.Clamp()
		return p, nil
	}
	return config.LoadFile(path)
}

// pickGenerator resolves a generator name from the command line.
func pickGenerator(name string) (layout.LayoutGenerator, error) {
	switch name {
	case "", "graph":
		return layout.GraphGrowth, nil
	case "walk":
		return layout.RandomWalk, nil
	default:
		return nil, fmt.Errorf("unknown generator %q (want graph or walk)", name)
	}
}

func main() {
	configPath := flag.String("config", "", "path to an HCL config file with a dungeon block")
	seed := flag.Int64("seed", 0, "rng seed for reproducible dungeons (0 = random)")
	generatorName := flag.String("generator", "graph", "topology generator: graph or walk")
	rendererName := flag.String("renderer", "tui", "renderer backend: tui or ebiten")
	once := flag.Bool("once", false, "generate and print a single dungeon, then exit")
	flag.Parse()

	initGotext()

	params, err := loadParams(*configPath)
	if err != nil {
		log.Fatalf("%v", err)
	}

	layoutGen, err := pickGenerator(*generatorName)
	if err != nil {
		log.Fatalf("%v", err)
	}

	gen := dungeon.New()
	gen.SetLayoutGenerator(layoutGen)
	if *seed != 0 {
		gen.SetSeed(*seed)
	}

	if *rendererName == "ebiten" {
		viewer := ebitenview.New(gen, params)
		if err := viewer.Run(); err != nil {
			log.Fatalf("%v", err)
		}
		return
	}

	renderer := tui.New()
	for {
		if _, err := gen.GenerateDungeon(params, renderer); err != nil {
			log.Fatalf("%v", err)
		}
		renderer.Render(os.Stdout)

		if *once {
			return
		}
		fmt.Printf("\n[r] %s  [q] %s\n", gotext.Get("regenerate"), gotext.Get("quit"))
		for {
			key := input.GetKey()
			if key == "q" {
				return
			}
			if key == "r" {
				break
			}
		}
	}
}
