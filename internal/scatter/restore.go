package scatter

import "time"

// restoreState tracks one in-flight restore: a transition per item plus
// the barrier every caller waits on. Items complete independently; the
// barrier closes only when the last one lands.
type restoreState struct {
	done  chan struct{}
	anims []restoreAnim
}

// restoreAnim interpolates one item from where the simulation left it
// back to its recorded slot.
type restoreAnim struct {
	fromX, fromY float64
	start        time.Time
	dur          time.Duration
	landed       bool
}

// stepRestore advances every in-flight transition to now. Returns true
// once all items have landed on their targets.
func (s *Session) stepRestore(now time.Time) bool {
	all := true
	for i := range s.restore.anims {
		a := &s.restore.anims[i]
		if a.landed {
			continue
		}
		it := &s.items[i]
		t := 1.0
		if a.dur > 0 {
			t = float64(now.Sub(a.start)) / float64(a.dur)
		}
		if t >= 1 {
			it.X, it.Y = it.origin.targetX, it.origin.targetY
			a.landed = true
			continue
		}
		e := smoothstep(t)
		it.X = lerp(a.fromX, it.origin.targetX, e)
		it.Y = lerp(a.fromY, it.origin.targetY, e)
		all = false
	}
	return all
}

// smoothstep is the restore easing curve: slow in, slow out, monotonic
// on [0, 1].
func smoothstep(t float64) float64 {
	if t <= 0 {
		return 0
	}
	if t >= 1 {
		return 1
	}
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 { return a + (b-a)*t }
