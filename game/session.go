// Package game wires the simulation together. A Session owns the world, the
// spawn pool, the random source and the scheduler for one play-through.
package game

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/plus3/dodge/config"
	"github.com/plus3/dodge/geom"
	"github.com/plus3/dodge/input"
	"github.com/plus3/dodge/sim"
	"github.com/plus3/dodge/spawn"
	"github.com/plus3/dodge/systems"
	"go.uber.org/zap"
)

// ErrPoolTooSmall is returned when spawned-slot tracking is on and the pool
// cannot hold the initial blocks.
var ErrPoolTooSmall = errors.New("spawn pool smaller than initial block count")

// Option configures a Session at construction.
type Option func(*Session)

// WithClock sets the wall clock used for the spawn interval.
func WithClock(clock sim.Clock) Option {
	return func(s *Session) { s.clock = clock }
}

// WithLogger sets the session logger.
func WithLogger(log *zap.Logger) Option {
	return func(s *Session) { s.log = log }
}

// WithPool replaces the pool built from the screen edges. It forces the pool
// variant regardless of configuration.
func WithPool(pool *spawn.Pool) Option {
	return func(s *Session) { s.pool = pool }
}

// WithRand replaces the seeded random source.
func WithRand(rng spawn.Rand) Option {
	return func(s *Session) { s.rng = rng }
}

// Session is one play-through: a world with its player and blocks, the
// spawn pool, the random source and the scheduler that steps them. The
// exported systems are exposed for their counters.
type Session struct {
	cfg       *config.Config
	world     *sim.World
	scheduler *sim.Scheduler
	clock     sim.Clock
	pool      *spawn.Pool
	rng       spawn.Rand
	seed      uint64
	log       *zap.Logger

	Controller *systems.PlayerController
	Spawner    *systems.BlockSpawner
	Collisions *systems.CollisionDetector
}

// NewSession validates cfg, places the player and the initial blocks, and
// registers the systems in frame order: player, periodic spawner, block
// motion, collision.
func NewSession(cfg *config.Config, opts ...Option) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	s := &Session{cfg: cfg}
	for _, opt := range opts {
		opt(s)
	}
	if s.clock == nil {
		s.clock = sim.RealClock{}
	}
	if s.log == nil {
		s.log = zap.NewNop()
	}
	if s.rng == nil {
		s.seed = cfg.Seed
		if s.seed == 0 {
			s.seed = rand.Uint64()
		}
		s.rng = rand.New(rand.NewPCG(s.seed, s.seed^0x9e3779b97f4a7c15))
	}

	bounds := geom.V(cfg.Screen.Width, cfg.Screen.Height)
	blockSize := geom.V(cfg.Blocks.Width, cfg.Blocks.Height)

	if s.pool == nil && cfg.Blocks.Variant == config.VariantPool {
		s.pool = spawn.Build(bounds, blockSize)
	}
	if s.pool != nil {
		s.pool.TrackSpawned = s.pool.TrackSpawned || cfg.Blocks.TrackSpawned
		if s.pool.TrackSpawned && s.pool.Available() < cfg.Blocks.InitialCount {
			return nil, fmt.Errorf("%w: %d free slots, %d blocks",
				ErrPoolTooSmall, s.pool.Available(), cfg.Blocks.InitialCount)
		}
	}

	s.world = sim.NewWorld(bounds)
	if _, err := s.world.SpawnPlayer(sim.Player{
		Size:             geom.V(cfg.Player.Width, cfg.Player.Height),
		Velocity:         cfg.Player.Speed,
		TeleportDistance: cfg.Player.TeleportDistance,
		Color:            cfg.Player.Color.RGBA(),
	}); err != nil {
		return nil, fmt.Errorf("spawn player: %w", err)
	}

	s.Controller = &systems.PlayerController{WrapAfterTeleport: cfg.Player.WrapAfterTeleport}
	s.Spawner = &systems.BlockSpawner{
		Pool: s.pool,
		Rand: s.rng,
		Template: sim.Block{
			Size:     blockSize,
			Velocity: cfg.Blocks.Speed,
		},
		InitialColor: cfg.Blocks.InitialColor.RGBA(),
		RuntimeColor: cfg.Blocks.RuntimeColor.RGBA(),
		Log:          s.log.Named("spawner"),
	}
	s.Collisions = &systems.CollisionDetector{Log: s.log.Named("collision")}

	if err := s.Spawner.SpawnInitial(s.world, cfg.Blocks.InitialCount); err != nil {
		return nil, fmt.Errorf("spawn initial blocks: %w", err)
	}

	s.scheduler = sim.NewScheduler(s.world, s.clock)
	s.scheduler.Register(s.Controller)
	s.scheduler.RegisterFixed(s.Spawner, cfg.Blocks.SpawnInterval())
	s.scheduler.Register(systems.BlockMotion{})
	s.scheduler.Register(s.Collisions)

	s.log.Info("session started",
		zap.Uint64("seed", s.seed),
		zap.String("variant", s.variant()),
		zap.Int("blocks", s.world.BlockCount()),
		zap.Duration("spawn_interval", cfg.Blocks.SpawnInterval()),
	)
	return s, nil
}

func (s *Session) variant() string {
	if s.pool != nil {
		return config.VariantPool
	}
	return config.VariantUniform
}

// Register appends a system that runs after the game systems each frame.
func (s *Session) Register(system sim.System) {
	s.scheduler.Register(system)
}

// Step advances the session by one frame of dt seconds. Once the player has
// been destroyed the session is finished and Step does nothing.
func (s *Session) Step(dt float64, in input.State) error {
	if s.world.Over() {
		return nil
	}
	return s.scheduler.Once(dt, in)
}

// Run drives frames from a ticker until ctx is done, a system fails or the
// player is destroyed.
func (s *Session) Run(ctx context.Context, interval time.Duration, source func() input.State) error {
	if s.world.Over() {
		return nil
	}
	return s.scheduler.Run(ctx, interval, source)
}

// Over reports whether the player has been destroyed.
func (s *Session) Over() bool {
	return s.world.Over()
}

// World exposes the session's world for read access by hosts and tests.
func (s *Session) World() *sim.World {
	return s.world
}

// Pool returns the spawn pool, nil for the uniform variant.
func (s *Session) Pool() *spawn.Pool {
	return s.pool
}

// Stats returns scheduler timings.
func (s *Session) Stats() *sim.SchedulerStats {
	return s.scheduler.GetStats()
}

// Seed returns the seed of the built-in random source, 0 when WithRand was used.
func (s *Session) Seed() uint64 {
	return s.seed
}

// Config returns the configuration the session was built from.
func (s *Session) Config() *config.Config {
	return s.cfg
}
