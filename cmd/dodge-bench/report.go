package main

import (
	"fmt"
	"io"
	"runtime"
	"text/template"
	"time"

	"github.com/plus3/dodge/game"
)

type Report struct {
	// Configuration
	Duration      time.Duration
	InitialBlocks int
	SpawnInterval time.Duration
	Variant       string

	// Results
	Sessions       int
	Deaths         int
	TotalFrames    int64
	MaxBlocks      int
	Spawned        int
	Skipped        int
	Teleports      int
	TotalTime      time.Duration
	UpdateTime     Stats
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

// record adds the totals of a finished or interrupted session.
func (r *Report) record(session *game.Session) {
	if session.Over() {
		r.Deaths++
	}
	r.TotalFrames += session.Stats().Frames
	r.MaxBlocks = max(r.MaxBlocks, session.World().BlockCount())
	r.Spawned += session.Spawner.Spawned
	r.Skipped += session.Spawner.Skipped
	r.Teleports += session.Controller.Teleports
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

const reportTemplate = `
# Dodge Benchmark Report

## Configuration
- **Run Duration:** {{.Duration}}
- **Initial Blocks:** {{.InitialBlocks}}
- **Spawn Interval:** {{.SpawnInterval}}
- **Placement:** {{.Variant}}

## Sessions
- **Sessions:** {{.Sessions}}
- **Player Deaths:** {{.Deaths}}
- **Largest Block Count:** {{.MaxBlocks}}
- **Blocks Spawned:** {{.Spawned}} ({{.Skipped}} skipped)
- **Teleports:** {{.Teleports}}

## Performance Results
- **Total Frames:** {{.TotalFrames}}
- **Total Time:** {{.TotalTime}}
- **Update Time (Frame):**
  - **Avg:** {{.UpdateTime.Avg}}
  - **Min:** {{.UpdateTime.Min}}
  - **Max:** {{.UpdateTime.Max}}

## Memory Usage
- Heap Alloc:     {{mb .MemStatsStart.HeapAlloc}} MB (start) -> {{mb .MemStatsEnd.HeapAlloc}} MB (end)
- Total Alloc:    {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}} bytes
- Num GC:         {{usub .MemStatsEnd.NumGC .MemStatsStart.NumGC}}
{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{ns (usub64 .MemStatsEnd.PauseTotalNs .MemStatsStart.PauseTotalNs)}}
{{end}}`

func (r *Report) Generate(w io.Writer) error {
	fm := template.FuncMap{
		"mb": func(v uint64) string {
			return fmt.Sprintf("%.2f", float64(v)/1024/1024)
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"usub64": func(a, b uint64) uint64 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
