package geom

// Wrap applies the toroidal screen rule to pos for an entity with the given
// half-extents inside a screen of size bounds centred on the origin.
//
// Each axis is checked on its own. Once the entity has fully left the screen
// on one side it is placed exactly on the opposite edge; the overshoot is
// discarded.
func Wrap(pos, half, bounds Vec2) Vec2 {
	pos.X = wrapAxis(pos.X, half.X, bounds.X/2)
	pos.Y = wrapAxis(pos.Y, half.Y, bounds.Y/2)
	return pos
}

func wrapAxis(p, half, edge float64) float64 {
	switch {
	case p > edge+half:
		return -edge
	case p < -(edge + half):
		return edge
	}
	return p
}
