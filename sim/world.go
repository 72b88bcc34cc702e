package sim

import (
	"errors"
	"fmt"
	"iter"

	"github.com/plus3/dodge/geom"
)

// ErrPlayerDestroyed is returned when the player is requested after the
// collision that ended the session.
var ErrPlayerDestroyed = errors.New("player destroyed")

// MissingPlayerError reports a broken exactly-one-player invariant.
type MissingPlayerError struct {
	Found int
}

func (e *MissingPlayerError) Error() string {
	return fmt.Sprintf("expected exactly one player, found %d", e.Found)
}

// World owns every entity of a session. It holds a single player slot and an
// append-only set of blocks.
type World struct {
	bounds geom.Vec2

	player    *Player
	playerId  EntityId
	destroyed bool

	blocks *BlockStore
	nextId EntityId
}

// WorldStats summarises a World for diagnostics.
type WorldStats struct {
	BlockCount  int
	BlockChunks int
	PlayerAlive bool
	Over        bool
	NextId      EntityId
}

// NewWorld creates an empty world for a screen of the given size.
func NewWorld(bounds geom.Vec2) *World {
	return &World{
		bounds: bounds,
		blocks: NewBlockStore(),
		nextId: 1,
	}
}

// Bounds returns the screen size.
func (w *World) Bounds() geom.Vec2 {
	return w.bounds
}

func (w *World) allocId() EntityId {
	id := w.nextId
	w.nextId++
	return id
}

// SpawnPlayer fills the player slot. A world holds at most one player over
// its lifetime, so a second call fails even after the first was destroyed.
func (w *World) SpawnPlayer(p Player) (EntityId, error) {
	if w.player != nil {
		return 0, &MissingPlayerError{Found: 2}
	}
	if w.destroyed {
		return 0, fmt.Errorf("spawn player: %w", ErrPlayerDestroyed)
	}

	w.player = &p
	w.playerId = w.allocId()
	return w.playerId, nil
}

// Player returns the live player, if any.
func (w *World) Player() (*Player, bool) {
	return w.player, w.player != nil
}

// PlayerId returns the id assigned by SpawnPlayer, or 0.
func (w *World) PlayerId() EntityId {
	return w.playerId
}

// RequirePlayer returns the live player or the error explaining its absence.
func (w *World) RequirePlayer() (*Player, error) {
	if w.player != nil {
		return w.player, nil
	}
	if w.destroyed {
		return nil, ErrPlayerDestroyed
	}
	return nil, &MissingPlayerError{Found: 0}
}

// DestroyPlayer empties the player slot. It reports false if there was no
// live player.
func (w *World) DestroyPlayer() bool {
	if w.player == nil {
		return false
	}
	w.player = nil
	w.destroyed = true
	return true
}

// Over reports whether the player has been destroyed.
func (w *World) Over() bool {
	return w.destroyed
}

// SpawnBlock adds a block and returns its id.
func (w *World) SpawnBlock(b Block) EntityId {
	id := w.allocId()
	w.blocks.Append(id, b)
	return id
}

// Block returns the block with the given id, or nil.
func (w *World) Block(id EntityId) *Block {
	return w.blocks.Get(id)
}

// Blocks iterates every block in spawn order.
func (w *World) Blocks() iter.Seq2[EntityId, *Block] {
	return w.blocks.All()
}

// BlockCount returns the number of blocks.
func (w *World) BlockCount() int {
	return w.blocks.Len()
}

// CollectStats gathers a WorldStats snapshot.
func (w *World) CollectStats() WorldStats {
	return WorldStats{
		BlockCount:  w.blocks.Len(),
		BlockChunks: w.blocks.Chunks(),
		PlayerAlive: w.player != nil,
		Over:        w.destroyed,
		NextId:      w.nextId,
	}
}
