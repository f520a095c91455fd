package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"runtime"
	"sync"
	"time"

	"github.com/Carmen-Shannon/automation/tools/worker"
	"github.com/Carmen-Shannon/oxy-pong/common"
	"github.com/Carmen-Shannon/oxy-pong/pong"
)

// soakConfig is one batch of headless matches.
type soakConfig struct {
	matches  int
	points   uint32
	dt       float32
	maxSteps int
	workers  int
	width    float32
	height   float32
	seed     uint64
}

func main() {
	cfg := soakConfig{}
	flag.IntVar(&cfg.matches, "matches", 64, "number of matches to play")
	points := flag.Uint("points", 11, "score that ends a match")
	dt := flag.Float64("dt", 1000.0/240.0, "fixed step in milliseconds")
	flag.IntVar(&cfg.maxSteps, "max-steps", 2_000_000, "step budget per match")
	flag.IntVar(&cfg.workers, "workers", 0, "concurrent matches, 0 for one per CPU")
	width := flag.Float64("width", 1280, "arena width")
	height := flag.Float64("height", 720, "arena height")
	flag.Uint64Var(&cfg.seed, "seed", 1, "base seed; match i uses (seed, i)")
	flag.Parse()

	cfg.points = uint32(*points)
	cfg.dt = float32(*dt)
	cfg.width = float32(*width)
	cfg.height = float32(*height)

	start := time.Now()
	results, err := runSoak(cfg)
	if err != nil {
		log.Fatalf("soak failed: %v", err)
	}

	var left, right, unfinished int
	var rallies uint64
	for i, res := range results {
		log.Printf("[Soak] match %d: %d : %d, %d rallies, %d steps", i, res.Left, res.Right, res.Rallies, res.Steps)
		rallies += res.Rallies
		switch {
		case !res.Finished:
			unfinished++
		case res.Winner() == pong.SideLeft:
			left++
		default:
			right++
		}
	}
	log.Printf("[Soak] %d matches in %v: left %d, right %d, unfinished %d, %d rallies",
		len(results), time.Since(start).Round(time.Millisecond), left, right, unfinished, rallies)
}

// runSoak plays cfg.matches autopilot matches on a worker pool. Match i is seeded with
// (cfg.seed, i) so every result is reproducible on its own.
func runSoak(cfg soakConfig) ([]pong.MatchResult, error) {
	games := make([]pong.Game, cfg.matches)
	for i := range games {
		g, err := pong.NewGame(cfg.width, cfg.height,
			pong.WithAutopilot(true),
			pong.WithRand(rand.New(rand.NewPCG(cfg.seed, uint64(i)))),
		)
		if err != nil {
			return nil, err
		}
		games[i] = g
	}

	results := make([]pong.MatchResult, cfg.matches)
	pool := worker.NewDynamicWorkerPool(common.Coalesce(cfg.workers, runtime.NumCPU()), cfg.matches, time.Second)
	defer pool.Stop()

	var wg sync.WaitGroup
	for i, g := range games {
		wg.Add(1)
		pool.SubmitTask(worker.Task{
			ID:      i,
			Payload: g,
			Do: func() (any, error) {
				defer wg.Done()
				results[i] = pong.PlayMatch(g, cfg.points, cfg.dt, cfg.maxSteps)
				return results[i], nil
			},
		})
	}
	wg.Wait()
	return results, nil
}
