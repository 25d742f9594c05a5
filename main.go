package main

import (
	"flag"
	"log"

	"github.com/automoto/badmonkey/assets"
	"github.com/automoto/badmonkey/config"
	"github.com/automoto/badmonkey/fonts"
	"github.com/automoto/badmonkey/network"
	"github.com/automoto/badmonkey/scenes"
	"github.com/automoto/badmonkey/shared/protocol"
	"github.com/automoto/badmonkey/sim"
	"github.com/hajimehoshi/ebiten/v2"
)

const version = "0.1.0"

type Game struct {
	scene scenes.Scene
	shell *scenes.Shell
}

func (g *Game) Update() error {
	return g.scene.Update()
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.scene.Draw(screen)
}

func (g *Game) Layout(width, height int) (int, int) {
	return int(config.World.ViewWidth), int(config.World.ViewHeight)
}

func main() {
	connect := flag.String("connect", "", "Server address (host:port); empty plays locally")
	pilot := flag.Bool("pilot", true, "Drive the heroes when connected")
	name := flag.String("name", "Player", "Player name sent to the server")
	seed := flag.Int64("seed", 0, "Simulation seed (0 = configured seed)")
	tuning := flag.String("tuning", "", "YAML tuning overrides, reloaded on save")
	endpoint := flag.String("dialogue", "", "Dialogue proxy endpoint (empty = local heuristic)")
	skip := flag.Bool("skip-intro", false, "Start straight in the level")
	flag.Parse()

	if *tuning != "" {
		if err := config.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *seed == 0 {
		*seed = config.Sim.Seed
	}
	if *endpoint == "" {
		*endpoint = config.Dialogue.Endpoint
	}

	if err := fonts.LoadDefaults(config.UI.HUDFontSize, config.UI.TitleFontSize, config.UI.SmallFontSize); err != nil {
		log.Fatalf("Failed to load fonts: %v", err)
	}

	shell, err := scenes.NewShell(scenes.OpenSettings("badmonkey"))
	if err != nil {
		log.Fatalf("Failed to build widgets: %v", err)
	}
	g := &Game{shell: shell}
	if *connect != "" {
		// Register network components for client-side deserialization
		if err := protocol.RegisterComponents(); err != nil {
			log.Fatalf("Failed to register network components: %v", err)
		}
		client := network.NewClient()
		client.Connect(*connect, version, *name, *pilot)
		defer client.Disconnect()
		g.scene = scenes.NewRemoteScene(g.shell, client)
	} else {
		local := scenes.NewLocalScene(g.shell, sim.Options{
			Seed:         *seed,
			Plan:         sim.LoadPlan(assets.FS(), *seed),
			Dialogue:     sim.NewDialogueClient(*endpoint),
			StartInLevel: *skip,
		}, *tuning)
		defer local.Close()
		g.scene = local
	}

	ebiten.SetWindowSize(config.C.Width, config.C.Height)
	ebiten.SetWindowTitle("Bad Monkey")
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeOnlyFullscreenEnabled)
	ebiten.SetFullscreen(g.shell.Settings.Fullscreen)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}
