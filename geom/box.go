package geom

import "math"

// Box is an axis-aligned bounding box described by its centre and full size.
type Box struct {
	Center Vec2
	Size   Vec2
}

// Overlaps reports whether b and o intersect. Touching edges do not count.
func (b Box) Overlaps(o Box) bool {
	dx := math.Abs(b.Center.X - o.Center.X)
	dy := math.Abs(b.Center.Y - o.Center.Y)
	return dx < (b.Size.X+o.Size.X)/2 && dy < (b.Size.Y+o.Size.Y)/2
}
