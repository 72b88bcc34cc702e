// Command dodge-bench runs sessions headless with random input and reports
// frame timings and memory use.
package main

import (
	"context"
	"flag"
	"fmt"
	"math/rand/v2"
	"os"
	"runtime"
	"time"

	"github.com/plus3/dodge/config"
	"github.com/plus3/dodge/game"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/logging"
	"github.com/plus3/dodge/sim"
	"go.uber.org/zap"
)

// frameStep is the simulated time per frame. The sessions' clock advances by
// frameStep each frame, not by wall time.
const frameStep = time.Second / 60

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "dodge-bench: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	duration := flag.Duration("duration", 10*time.Second, "The total duration the benchmark should run for.")
	configPath := flag.String("config", "", "Path to a TOML config file.")
	initialBlocks := flag.Int("blocks", 0, "Override the initial block count.")
	spawnInterval := flag.Float64("spawn-interval", 0, "Override the spawn interval in seconds.")
	restart := flag.Bool("restart", true, "Start a new session when the player is destroyed.")
	seed := flag.Uint64("seed", 1, "Seed for the sessions and the input generator.")
	gcPauseMetrics := flag.Bool("gc-pause-metrics", false, "Enable detailed GC pause metrics in the report.")
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}
		cfg = loaded
	}
	if *initialBlocks > 0 {
		cfg.Blocks.InitialCount = *initialBlocks
	}
	if *spawnInterval > 0 {
		cfg.Blocks.SpawnIntervalSeconds = *spawnInterval
	}
	cfg.Seed = *seed

	log, err := logging.New(cfg.Logging)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer log.Sync()

	report := &Report{
		Duration:       *duration,
		InitialBlocks:  cfg.Blocks.InitialCount,
		SpawnInterval:  cfg.Blocks.SpawnInterval(),
		Variant:        cfg.Blocks.Variant,
		GCPauseMetrics: *gcPauseMetrics,
		UpdateTime: Stats{
			Samples: make([]time.Duration, 0),
		},
	}

	driver := newRandomInput(rand.New(rand.NewPCG(*seed, *seed+1)))
	runtime.ReadMemStats(&report.MemStatsStart)

	log.Info("running benchmark", zap.Duration("duration", *duration))
	ctx, cancel := context.WithTimeout(context.Background(), *duration)
	defer cancel()

	clock := sim.NewManualClock(time.Now())
	newSession := func() (*game.Session, error) {
		return game.NewSession(cfg, game.WithLogger(log.Named("session")), game.WithClock(clock))
	}

	startTime := time.Now()
	session, err := newSession()
	if err != nil {
		return err
	}
	report.Sessions = 1

Loop:
	for {
		select {
		case <-ctx.Done():
			break Loop
		default:
		}

		if session.Over() {
			if !*restart {
				break Loop
			}
			report.record(session)
			cfg.Seed++
			if session, err = newSession(); err != nil {
				return err
			}
			report.Sessions++
		}

		clock.Advance(frameStep)
		lastFrame := time.Now()
		if err := session.Step(frameStep.Seconds(), driver.Next()); err != nil {
			return err
		}
		report.UpdateTime.Samples = append(report.UpdateTime.Samples, time.Since(lastFrame))
	}

	report.record(session)
	report.TotalTime = time.Since(startTime)
	report.UpdateTime.Finalize()
	runtime.ReadMemStats(&report.MemStatsEnd)

	log.Info("benchmark finished",
		zap.Int("sessions", report.Sessions),
		zap.Int64("frames", report.TotalFrames),
	)

	fmt.Println("\n--- Dodge Benchmark Report ---")
	if err := report.Generate(os.Stdout); err != nil {
		return fmt.Errorf("generate report: %w", err)
	}
	fmt.Println("--- End of Report ---")
	return nil
}

// randomInput holds each direction for a random number of frames and taps
// teleport now and then.
type randomInput struct {
	rng   *rand.Rand
	held  input.State
	hold  int
	latch input.Latch
}

func newRandomInput(rng *rand.Rand) *randomInput {
	return &randomInput{rng: rng}
}

func (r *randomInput) Next() input.State {
	if r.hold <= 0 {
		r.held = input.State{
			Up:    r.rng.IntN(3) == 0,
			Down:  r.rng.IntN(3) == 0,
			Left:  r.rng.IntN(3) == 0,
			Right: r.rng.IntN(3) == 0,
		}
		r.hold = 5 + r.rng.IntN(30)
	}
	r.hold--

	in := r.held
	in.Teleport = r.latch.Update(r.rng.IntN(20) == 0)
	return in
}
