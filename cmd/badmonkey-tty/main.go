package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/automoto/badmonkey/assets"
	"github.com/automoto/badmonkey/components"
	cfg "github.com/automoto/badmonkey/config"
	"github.com/automoto/badmonkey/network"
	"github.com/automoto/badmonkey/shared/messages"
	"github.com/automoto/badmonkey/shared/protocol"
	"github.com/automoto/badmonkey/sim"
	"github.com/automoto/badmonkey/tty"
	"github.com/gdamore/tcell/v2"
)

const version = "0.1.0"

// source is where frames come from: a local simulation or a server.
type source interface {
	step(dt float64, in components.IntentData) (sim.View, []components.Event)
	close()
}

type localSource struct {
	sim *sim.Simulation
}

func (s *localSource) step(dt float64, in components.IntentData) (sim.View, []components.Event) {
	events := s.sim.Step(dt, in)
	return s.sim.Snapshot(), events
}

func (s *localSource) close() {}

type remoteSource struct {
	client  *network.Client
	replica *network.Replica
}

func (s *remoteSource) step(dt float64, in components.IntentData) (sim.View, []components.Event) {
	if snap := s.client.LatestSnapshot(); snap != nil {
		s.replica.Apply(*snap)
	}
	s.replica.Advance(dt, s.client.TickRate())
	if s.client.Pilot() {
		if err := s.client.SendInput(messages.FromIntent(in)); err != nil {
			log.Printf("Warning: Could not send input: %v", err)
		}
	}
	return s.replica.View(), network.CueEvents(s.client.DrainCues())
}

func (s *remoteSource) close() {
	s.client.Disconnect()
}

func main() {
	connect := flag.String("connect", "", "Server address (host:port); empty plays locally")
	pilot := flag.Bool("pilot", true, "Drive the heroes when connected")
	name := flag.String("name", "Player", "Player name sent to the server")
	seed := flag.Int64("seed", 0, "Simulation seed (0 = configured seed)")
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	endpoint := flag.String("dialogue", "", "Dialogue proxy endpoint (empty = local heuristic)")
	autopilot := flag.Bool("autopilot", false, "Let the bot play locally")
	logPath := flag.String("log", "", "Write log output to this file")
	flag.Parse()

	// The terminal belongs to tcell; logs go to a file or nowhere.
	if *logPath != "" {
		f, err := os.Create(*logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Failed to open log: %v\n", err)
			os.Exit(1)
		}
		defer f.Close()
		log.SetOutput(f)
	}

	if *tuning != "" {
		if err := cfg.LoadTuning(*tuning); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to load tuning: %v\n", err)
			os.Exit(1)
		}
	}
	if *seed == 0 {
		*seed = cfg.Sim.Seed
	}
	if *endpoint == "" {
		*endpoint = cfg.Dialogue.Endpoint
	}

	var src source
	if *connect != "" {
		if err := protocol.RegisterComponents(); err != nil {
			fmt.Fprintf(os.Stderr, "Failed to register network components: %v\n", err)
			os.Exit(1)
		}
		client := network.NewClient()
		client.Connect(*connect, version, *name, *pilot)
		src = &remoteSource{client: client, replica: network.NewReplica()}
	} else {
		src = &localSource{sim: sim.New(sim.Options{
			Seed:       *seed,
			Plan:       sim.LoadPlan(assets.FS(), *seed),
			Dialogue:   sim.NewDialogueClient(*endpoint),
			Autopilot:  *autopilot,
			Difficulty: cfg.BotDifficultyNormal,
		})}
	}
	defer src.close()

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize: %v\n", err)
		os.Exit(1)
	}
	defer screen.Fini()

	run(screen, src)
}

func run(screen tcell.Screen, src source) {
	dt := 1.0 / 60
	ticker := time.NewTicker(time.Second / 60)
	defer ticker.Stop()

	eventChan := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	}()

	var keys tty.Keys
	var view sim.View
	for {
		select {
		case ev := <-eventChan:
			switch ev := ev.(type) {
			case *tcell.EventKey:
				if !keys.Handle(ev, typing(view)) {
					return
				}
			case *tcell.EventResize:
				screen.Sync()
			}

		case <-ticker.C:
			var events []components.Event
			view, events = src.step(dt, keys.Intent(dt, typing(view)))
			for _, e := range events {
				if e.Kind == components.EventKO || e.Kind == components.EventBossSpawned {
					_ = screen.Beep()
					break
				}
			}
			tty.Draw(screen, view)
			screen.Show()
		}
	}
}

func typing(v sim.View) bool {
	return v.Dialogue.Active && v.Dialogue.Step == components.DialoguePrompt
}
