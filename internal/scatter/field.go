package scatter

import "math"

// repel adds the pointer impulse to one item's velocity. The force
// decays linearly from full strength at the pointer to zero at the
// field radius, directed from the pointer toward the item. An item
// sitting exactly on the pointer gets no impulse; there is no direction
// to push it in.
func (s *Session) repel(it *Item) {
	if !s.pointerOn {
		return
	}
	dx := it.X - s.pointerX
	dy := it.Y - s.pointerY
	dist := math.Hypot(dx, dy)
	if dist == 0 || dist >= s.params.RepelRadius {
		return
	}
	force := s.params.RepelStrength * (s.params.RepelRadius - dist) / s.params.RepelRadius
	it.VX += force * s.params.ImpulseStep * (dx / dist)
	it.VY += force * s.params.ImpulseStep * (dy / dist)
}
