// Package spawn decides where new blocks enter the screen and which way they
// travel.
package spawn

import (
	"fmt"
	"math"

	"github.com/plus3/dodge/geom"
)

// Orientation selects one of the two lists in a Pool.
type Orientation uint8

const (
	// Vertical slots sit on the top and bottom edges; blocks move up or down.
	Vertical Orientation = iota
	// Horizontal slots sit on the left and right edges; blocks move left or right.
	Horizontal
)

func (o Orientation) String() string {
	switch o {
	case Vertical:
		return "vertical"
	case Horizontal:
		return "horizontal"
	}
	return fmt.Sprintf("Orientation(%d)", uint8(o))
}

// SpawnInfo is one candidate slot.
type SpawnInfo struct {
	Location  geom.Vec2
	Direction geom.Direction
	Spawned   bool
}

// EmptyPoolError is returned when no unspawned slot is left for an orientation.
type EmptyPoolError struct {
	Orientation Orientation
}

func (e *EmptyPoolError) Error() string {
	return fmt.Sprintf("spawn pool: no free %s slot", e.Orientation)
}

// Rand is the random source used for picking. *math/rand/v2.Rand satisfies it.
type Rand interface {
	IntN(n int) int
	Float64() float64
}

// Pool holds the precomputed spawn slots.
//
// By default a picked slot is not marked as spawned, so slots are reused
// indefinitely. Set TrackSpawned to consume each slot once.
type Pool struct {
	TrackSpawned bool

	vertical   []SpawnInfo
	horizontal []SpawnInfo
}

// NewPool builds a pool from explicit slot lists. The slices are copied.
func NewPool(vertical, horizontal []SpawnInfo) *Pool {
	return &Pool{
		vertical:   append([]SpawnInfo(nil), vertical...),
		horizontal: append([]SpawnInfo(nil), horizontal...),
	}
}

// Build lays out slots along the four edges of a screen of size bounds, one
// block width apart. Blocks entering from the top move down, from the bottom
// up, from the left right and from the right left.
func Build(bounds, blockSize geom.Vec2) *Pool {
	halfW, halfH := bounds.X/2, bounds.Y/2
	pool := &Pool{}

	for _, x := range edgeSlots(bounds.X, blockSize.X) {
		pool.vertical = append(pool.vertical,
			SpawnInfo{Location: geom.V(x, halfH), Direction: geom.Down},
			SpawnInfo{Location: geom.V(x, -halfH), Direction: geom.Up},
		)
	}

	for _, y := range edgeSlots(bounds.Y, blockSize.Y) {
		pool.horizontal = append(pool.horizontal,
			SpawnInfo{Location: geom.V(-halfW, y), Direction: geom.Right},
			SpawnInfo{Location: geom.V(halfW, y), Direction: geom.Left},
		)
	}

	return pool
}

// MaxEdgeSlots caps the number of slots laid out along one edge.
const MaxEdgeSlots = 4096

// edgeSlots returns the centres of as many size-wide cells as fit across
// extent, centred on the origin, at most MaxEdgeSlots.
func edgeSlots(extent, size float64) []float64 {
	if !(size > 0) || !(extent > 0) {
		return nil
	}

	n := int(math.Min(math.Floor(extent/size), MaxEdgeSlots))
	if n == 0 {
		return []float64{0}
	}

	first := -float64(n-1) * size / 2
	slots := make([]float64, n)
	for i := range slots {
		slots[i] = first + float64(i)*size
	}
	return slots
}

func (p *Pool) list(o Orientation) []SpawnInfo {
	if o == Horizontal {
		return p.horizontal
	}
	return p.vertical
}

// Slots returns a copy of the slots for one orientation.
func (p *Pool) Slots(o Orientation) []SpawnInfo {
	return append([]SpawnInfo(nil), p.list(o)...)
}

// Capacity returns the total number of slots.
func (p *Pool) Capacity() int {
	return len(p.vertical) + len(p.horizontal)
}

// Available returns the number of slots not marked as spawned.
func (p *Pool) Available() int {
	n := 0
	for _, o := range []Orientation{Vertical, Horizontal} {
		for _, info := range p.list(o) {
			if !info.Spawned {
				n++
			}
		}
	}
	return n
}

// Pick chooses an orientation uniformly and then a free slot of it uniformly.
// It does not fall back to the other orientation when the chosen one is empty.
func (p *Pool) Pick(rng Rand) (SpawnInfo, error) {
	o := Vertical
	if rng.IntN(2) == 1 {
		o = Horizontal
	}
	return p.PickFrom(o, rng)
}

// PickFrom chooses a free slot of the given orientation uniformly.
func (p *Pool) PickFrom(o Orientation, rng Rand) (SpawnInfo, error) {
	list := p.list(o)

	free := 0
	for _, info := range list {
		if !info.Spawned {
			free++
		}
	}
	if free == 0 {
		return SpawnInfo{}, &EmptyPoolError{Orientation: o}
	}

	target := rng.IntN(free)
	for i := range list {
		if list[i].Spawned {
			continue
		}
		if target > 0 {
			target--
			continue
		}

		chosen := list[i]
		if p.TrackSpawned {
			list[i].Spawned = true
		}
		return chosen, nil
	}

	panic("unreachable: free slot count out of sync")
}

// RandomPlacement returns a slot anywhere on screen with a uniformly chosen
// direction. It is the placement used when no pool is configured.
func RandomPlacement(bounds geom.Vec2, rng Rand) SpawnInfo {
	x := (rng.Float64() - 0.5) * bounds.X
	y := (rng.Float64() - 0.5) * bounds.Y
	return SpawnInfo{
		Location:  geom.V(x, y),
		Direction: geom.RandomDirection(rng),
	}
}
