package main

import (
	"flag"
	"log"
	"os"
	"sort"

	"github.com/automoto/badmonkey/assets"
	"github.com/automoto/badmonkey/components"
	cfg "github.com/automoto/badmonkey/config"
	"github.com/automoto/badmonkey/sim"
)

func main() {
	seed := flag.Int64("seed", 0, "First seed (0 = configured seed)")
	runs := flag.Int("runs", 1, "Number of runs; run i uses seed+i")
	minutes := flag.Float64("minutes", 0, "Frame limit per run in simulated minutes (0 = level time plus a minute)")
	tickRate := flag.Int("tickrate", 60, "Simulated frames per second")
	difficulty := flag.Int("difficulty", int(cfg.BotDifficultyNormal), "Autopilot difficulty 0-2")
	tuning := flag.String("tuning", "", "YAML tuning overrides")
	verbose := flag.Bool("v", false, "Log event counts for every run")
	flag.Parse()

	if *tuning != "" {
		if err := cfg.LoadTuning(*tuning); err != nil {
			log.Fatalf("Failed to load tuning: %v", err)
		}
	}
	if *seed == 0 {
		*seed = cfg.Sim.Seed
	}
	if *tickRate <= 0 {
		log.Fatalf("Tick rate must be positive, got %d", *tickRate)
	}
	limit := *minutes * 60
	if limit <= 0 {
		limit = cfg.World.LevelTime + 60
	}
	frames := int(limit * float64(*tickRate))
	dt := 1 / float64(*tickRate)

	wins := 0
	for i := 0; i < *runs; i++ {
		s := *seed + int64(i)
		r := sim.Run(sim.Options{
			Seed:       s,
			Plan:       sim.LoadPlan(assets.FS(), s),
			Difficulty: cfg.BotDifficulty(*difficulty),
		}, frames, dt)

		outcome := "timeout"
		switch r.Outcome {
		case components.OutcomeVictory:
			outcome = "victory"
			wins++
		case components.OutcomeDefeat:
			outcome = "defeat: " + r.Reason
		}
		log.Printf("seed %d: %s after %.1fs (wave %d, %d kills, boss spawned %v, boss defeated %v)",
			r.Seed, outcome, r.Elapsed, r.Wave, r.Kills, r.BossSpawned, r.BossDefeated)
		if *verbose {
			logEvents(r.Events)
		}
	}

	log.Printf("%d/%d runs won", wins, *runs)
	if wins < *runs {
		os.Exit(1)
	}
}

func logEvents(counts map[components.EventKind]int) {
	kinds := make([]components.EventKind, 0, len(counts))
	for k := range counts {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i] < kinds[j] })
	for _, k := range kinds {
		log.Printf("  %-16s %d", k, counts[k])
	}
}
