package ui

import "time"

// revealPhase is a section's entrance state.
type revealPhase uint8

const (
	revealHidden revealPhase = iota
	revealFaint
	revealShown
)

const (
	revealStagger = 80 * time.Millisecond
	revealFade    = 120 * time.Millisecond
)

// reveal staggers a view's sections into sight the first time the view
// has a size. Each section waits revealStagger longer than the previous
// one, shows faint for revealFade, then lands at full style. With skip
// set everything is shown immediately.
type reveal struct {
	start   time.Time
	started bool
	skip    bool
}

// begin starts the clock on the first call; later calls are no-ops.
func (r *reveal) begin(now time.Time) {
	if !r.started {
		r.started = true
		r.start = now
	}
}

// phase returns the entrance phase for the numbered section.
func (r *reveal) phase(section int, now time.Time) revealPhase {
	if r.skip {
		return revealShown
	}
	if !r.started {
		return revealHidden
	}
	elapsed := now.Sub(r.start) - time.Duration(section)*revealStagger
	switch {
	case elapsed < 0:
		return revealHidden
	case elapsed < revealFade:
		return revealFaint
	default:
		return revealShown
	}
}

// animating reports whether any of n sections is still entering.
func (r *reveal) animating(n int, now time.Time) bool {
	if r.skip || !r.started || n == 0 {
		return false
	}
	return r.phase(n-1, now) != revealShown
}
