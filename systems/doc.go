// Package systems implements the per-frame behaviour of the game: moving the
// player from input, spawning blocks, moving blocks and detecting the
// collision that ends the session.
//
// Each type here is a sim.System. The free functions they are built on
// (MovePlayer, Advance, Check) work on plain entities and are used directly
// in tests.
package systems

import "go.uber.org/zap"

func loggerOrNop(log *zap.Logger) *zap.Logger {
	if log == nil {
		return zap.NewNop()
	}
	return log
}
