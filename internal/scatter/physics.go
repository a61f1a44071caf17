package scatter

// stepPhysics advances every item by one tick: repulsion impulse,
// explicit Euler integration, wall handling, then damping. One call per
// rendered frame; the tuning assumes no wall-clock scaling.
func (s *Session) stepPhysics() {
	for i := range s.items {
		it := &s.items[i]
		s.repel(it)
		it.X += it.VX
		it.Y += it.VY
		s.collideWalls(it)
		it.VX *= s.params.Damping
		it.VY *= s.params.Damping
	}
}

// collideWalls reflects velocity and clamps position at the container
// edges. Walls sit half an item in from each edge so the item's own
// extent never leaves the container.
func (s *Session) collideWalls(it *Item) {
	minX, maxX := wallSpan(it.W, s.boundsW)
	if it.X < minX {
		it.X = minX
		it.VX = -it.VX * s.params.Bounce
	} else if it.X > maxX {
		it.X = maxX
		it.VX = -it.VX * s.params.Bounce
	}

	minY, maxY := wallSpan(it.H, s.boundsH)
	if it.Y < minY {
		it.Y = minY
		it.VY = -it.VY * s.params.Bounce
	} else if it.Y > maxY {
		it.Y = maxY
		it.VY = -it.VY * s.params.Bounce
	}
}

// clampIntoBounds pins an item's position inside the walls without
// touching velocity. Used when the container resizes underneath a
// dismantled item.
func (s *Session) clampIntoBounds(it *Item) {
	minX, maxX := wallSpan(it.W, s.boundsW)
	if it.X < minX {
		it.X = minX
	} else if it.X > maxX {
		it.X = maxX
	}
	minY, maxY := wallSpan(it.H, s.boundsH)
	if it.Y < minY {
		it.Y = minY
	} else if it.Y > maxY {
		it.Y = maxY
	}
}

// wallSpan returns the valid center range along one axis. When the item
// is wider than the container the walls collapse to the container's
// midpoint.
func wallSpan(size, dim float64) (lo, hi float64) {
	lo, hi = size/2, dim-size/2
	if hi < lo {
		mid := dim / 2
		return mid, mid
	}
	return lo, hi
}
