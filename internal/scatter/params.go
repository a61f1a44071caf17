package scatter

import "time"

// Params tune the simulation. The defaults are the canonical tuning,
// sized for roughly sixty steps per second; hosts working in coarser
// coordinate spaces typically rescale the repulsion pair and keep the
// rest.
type Params struct {
	// RepelRadius is the pointer distance inside which items feel the
	// repulsion field.
	RepelRadius float64
	// RepelStrength scales the field; the impulse decays linearly to
	// zero at RepelRadius.
	RepelStrength float64
	// ImpulseStep converts field force into a per-tick velocity delta.
	ImpulseStep float64
	// Damping multiplies velocity once per tick.
	Damping float64
	// Bounce scales the inverted velocity component on wall contact.
	Bounce float64
	// BurstMin and BurstMax bound the initial outward speed, in
	// distance units per tick.
	BurstMin float64
	BurstMax float64
	// ExitDelay is the countdown between the pointer leaving (or the
	// window blurring) and the automatic restore.
	ExitDelay time.Duration
	// RestoreIn is each item's transition duration back to its slot.
	RestoreIn time.Duration
}

// DefaultParams returns the canonical tuning.
func DefaultParams() Params {
	return Params{
		RepelRadius:   110,
		RepelStrength: 220,
		ImpulseStep:   0.016,
		Damping:       0.992,
		Bounce:        0.9,
		BurstMin:      1.0,
		BurstMax:      2.1,
		ExitDelay:     5 * time.Second,
		RestoreIn:     700 * time.Millisecond,
	}
}
