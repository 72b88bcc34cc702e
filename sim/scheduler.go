package sim

import (
	"context"
	"errors"
	"fmt"
	"math"
	"reflect"
	"time"

	"github.com/plus3/dodge/input"
)

// ErrInvalidDelta is returned by Once for a negative or non-finite delta.
var ErrInvalidDelta = errors.New("invalid frame delta")

// SchedulerStats provides statistics about scheduler execution.
type SchedulerStats struct {
	SystemCount     int
	TotalExecutions int64
	Frames          int64
	Systems         []SystemStats
}

// SystemStats provides execution statistics for a single system.
type SystemStats struct {
	Name           string
	Interval       time.Duration // zero for systems that run every frame
	ExecutionCount int64
	MinDuration    time.Duration
	MaxDuration    time.Duration
	AvgDuration    time.Duration
	LastDuration   time.Duration
	TotalDuration  time.Duration
}

type systemStatsInternal struct {
	name           string
	executionCount int64
	minDuration    time.Duration
	maxDuration    time.Duration
	totalDuration  time.Duration
	lastDuration   time.Duration
}

type scheduledSystem struct {
	system System
	gate   *FixedInterval
	stats  systemStatsInternal
}

// Scheduler runs systems against a World in registration order.
type Scheduler struct {
	world   *World
	clock   Clock
	systems []*scheduledSystem
	frames  int64
}

// NewScheduler creates a scheduler for world reading wall-clock time from clock.
func NewScheduler(world *World, clock Clock) *Scheduler {
	return &Scheduler{
		world: world,
		clock: clock,
	}
}

// Register adds a system that runs every frame.
func (s *Scheduler) Register(system System) {
	s.register(system, nil)
}

// RegisterFixed adds a system that runs once for every step of wall-clock
// time elapsed since registration. Several runs happen in one frame when the
// host falls behind.
func (s *Scheduler) RegisterFixed(system System, step time.Duration) {
	s.register(system, NewFixedInterval(step, s.clock.Now()))
}

func (s *Scheduler) register(system System, gate *FixedInterval) {
	systemType := reflect.TypeOf(system)
	if systemType.Kind() == reflect.Ptr {
		systemType = systemType.Elem()
	}

	s.systems = append(s.systems, &scheduledSystem{
		system: system,
		gate:   gate,
		stats: systemStatsInternal{
			name:        systemType.Name(),
			minDuration: time.Duration(1<<63 - 1),
		},
	})
}

// Once executes all registered systems for one frame of dt seconds and then
// flushes the frame's commands. It returns the first error a system reported
// through UpdateFrame.Fail; in that case the frame's commands are discarded
// and the intervals gated systems consumed this frame become due again.
// Changes that systems made directly to the World before the failure are kept.
func (s *Scheduler) Once(dt float64, in input.State) error {
	if dt < 0 || math.IsNaN(dt) || math.IsInf(dt, 0) {
		return fmt.Errorf("%w: %v", ErrInvalidDelta, dt)
	}

	frame := newUpdateFrame(dt, s.clock.Now(), in, s.world)
	s.frames++

	consumed := make([]int, 0, len(s.systems))
	for _, entry := range s.systems {
		runs := 1
		if entry.gate != nil {
			runs = entry.gate.Due(frame.Now)
		}
		consumed = append(consumed, runs)

		for range runs {
			s.execute(entry, frame)
			if err := frame.Err(); err != nil {
				s.release(consumed)
				return err
			}
		}
	}

	frame.Commands.Flush(s.world)
	return nil
}

// release hands back the gated runs of a failed frame. consumed holds the run
// count of each system reached, in registration order.
func (s *Scheduler) release(consumed []int) {
	for i, runs := range consumed {
		if gate := s.systems[i].gate; gate != nil {
			gate.release(runs)
		}
	}
}

func (s *Scheduler) execute(entry *scheduledSystem, frame *UpdateFrame) {
	start := time.Now()
	entry.system.Execute(frame)
	duration := time.Since(start)

	stats := &entry.stats
	stats.executionCount++
	stats.lastDuration = duration
	stats.totalDuration += duration

	if duration < stats.minDuration {
		stats.minDuration = duration
	}
	if duration > stats.maxDuration {
		stats.maxDuration = duration
	}
}

// Run executes frames at the given interval until the context is cancelled,
// a system fails, or the world is over. Frame deltas are measured with the
// scheduler's clock and input is sampled from source once per frame.
func (s *Scheduler) Run(ctx context.Context, interval time.Duration, source func() input.State) error {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	lastTime := s.clock.Now()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			now := s.clock.Now()
			dt := now.Sub(lastTime).Seconds()
			lastTime = now

			if err := s.Once(dt, source()); err != nil {
				return err
			}
			if s.world.Over() {
				return nil
			}
		}
	}
}

// GetStats returns statistics about system execution.
func (s *Scheduler) GetStats() *SchedulerStats {
	stats := &SchedulerStats{
		SystemCount: len(s.systems),
		Frames:      s.frames,
		Systems:     make([]SystemStats, len(s.systems)),
	}

	var totalExecs int64
	for i, entry := range s.systems {
		internal := entry.stats
		avgDuration := time.Duration(0)
		minDuration := time.Duration(0)
		if internal.executionCount > 0 {
			avgDuration = internal.totalDuration / time.Duration(internal.executionCount)
			minDuration = internal.minDuration
		}

		var interval time.Duration
		if entry.gate != nil {
			interval = entry.gate.Step()
		}

		stats.Systems[i] = SystemStats{
			Name:           internal.name,
			Interval:       interval,
			ExecutionCount: internal.executionCount,
			MinDuration:    minDuration,
			MaxDuration:    internal.maxDuration,
			AvgDuration:    avgDuration,
			LastDuration:   internal.lastDuration,
			TotalDuration:  internal.totalDuration,
		}
		totalExecs += internal.executionCount
	}

	stats.TotalExecutions = totalExecs
	return stats
}
