package sim

import (
	"iter"

	"github.com/kamstrup/intmap"
)

const blockChunkSize = 64

type blockSlot struct {
	id    EntityId
	block Block
}

// BlockStore keeps blocks in fixed-size chunks so that pointers handed out by
// Get and All stay valid while the store grows. Blocks are never removed.
type BlockStore struct {
	chunks [][blockChunkSize]blockSlot
	index  *intmap.Map[EntityId, int]
	count  int
}

// NewBlockStore creates an empty store.
func NewBlockStore() *BlockStore {
	return &BlockStore{
		index: intmap.New[EntityId, int](256),
	}
}

// Append stores b under id and returns its slot.
func (s *BlockStore) Append(id EntityId, b Block) int {
	slot := s.count
	chunkIdx := slot / blockChunkSize
	if chunkIdx >= len(s.chunks) {
		s.chunks = append(s.chunks, [blockChunkSize]blockSlot{})
	}

	s.chunks[chunkIdx][slot%blockChunkSize] = blockSlot{id: id, block: b}
	s.index.Put(id, slot)
	s.count++
	return slot
}

// Get returns the block stored under id, or nil.
func (s *BlockStore) Get(id EntityId) *Block {
	slot, ok := s.index.Get(id)
	if !ok {
		return nil
	}
	return s.at(slot)
}

func (s *BlockStore) at(slot int) *Block {
	return &s.chunks[slot/blockChunkSize][slot%blockChunkSize].block
}

// Len returns the number of stored blocks.
func (s *BlockStore) Len() int {
	return s.count
}

// Chunks returns the number of allocated chunks.
func (s *BlockStore) Chunks() int {
	return len(s.chunks)
}

// All iterates blocks in spawn order.
func (s *BlockStore) All() iter.Seq2[EntityId, *Block] {
	return func(yield func(EntityId, *Block) bool) {
		for i := 0; i < s.count; i++ {
			entry := &s.chunks[i/blockChunkSize][i%blockChunkSize]
			if !yield(entry.id, &entry.block) {
				return
			}
		}
	}
}
