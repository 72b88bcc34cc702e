package main

import (
	"bytes"
	"math/rand/v2"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatsFinalize(t *testing.T) {
	s := Stats{Samples: []time.Duration{3 * time.Millisecond, time.Millisecond, 2 * time.Millisecond}}
	s.Finalize()

	assert.Equal(t, time.Millisecond, s.Min)
	assert.Equal(t, 3*time.Millisecond, s.Max)
	assert.Equal(t, 2*time.Millisecond, s.Avg)

	var empty Stats
	empty.Finalize()
	assert.Zero(t, empty.Avg)
}

func TestReportGenerate(t *testing.T) {
	r := &Report{
		Duration:       time.Second,
		InitialBlocks:  5,
		SpawnInterval:  2 * time.Second,
		Variant:        "pool",
		Sessions:       3,
		Deaths:         2,
		TotalFrames:    600,
		GCPauseMetrics: true,
	}

	var buf bytes.Buffer
	require.NoError(t, r.Generate(&buf))

	out := buf.String()
	assert.Contains(t, out, "- **Sessions:** 3")
	assert.Contains(t, out, "- **Player Deaths:** 2")
	assert.Contains(t, out, "- **Total Frames:** 600")
	assert.Contains(t, out, "- **Placement:** pool")
	assert.Contains(t, out, "## GC Pause Durations")
}

func TestRandomInputTeleportIsAnEdge(t *testing.T) {
	driver := newRandomInput(rand.New(rand.NewPCG(1, 2)))

	prev := false
	for range 1000 {
		in := driver.Next()
		if prev {
			assert.False(t, in.Teleport, "teleport fired on consecutive frames")
		}
		prev = in.Teleport
	}
}
