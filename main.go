package main

import (
	"flag"
	"log"
	"os"

	"github.com/leonelquinteros/gotext"

	"abtestbed/pkg/game/config"
	"abtestbed/pkg/game/devtools"
	"abtestbed/pkg/game/gameplay"
	"abtestbed/pkg/game/renderer"
	ebitenrenderer "abtestbed/pkg/game/renderer/ebiten"
	"abtestbed/pkg/game/renderer/tui"
)

func initGettext(cfg *config.Config) {
	gotext.Configure(cfg.LocaleDir, cfg.Locale, "default")
}

func selectRenderer(cfg *config.Config) renderer.Renderer {
	switch cfg.Renderer {
	case config.RendererEbiten:
		return ebitenrenderer.New(float64(cfg.Scale))
	default:
		return tui.New()
	}
}

func main() {
	cfg := config.Default()
	cfg.Bind(flag.CommandLine)
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	initGettext(cfg)

	session, err := gameplay.NewSession(cfg)
	if err != nil {
		log.Fatalf("could not build the arena: %v", err)
	}
	defer session.Close()

	if cfg.Dump {
		snap := session.Snapshot()
		devtools.DumpSnapshot(os.Stdout, &snap)
		return
	}

	renderer.SetRenderer(selectRenderer(cfg))
	if err := renderer.Run(session); err != nil {
		log.Fatalf("renderer: %v", err)
	}
}
