package ann

// DefaultSeed is the seed historically used for weight initialization.
const DefaultSeed uint32 = 12345

// Rand is a small linear congruential generator used for weight
// initialization. It is an explicit stream object: its state advances with
// every draw and persists across repeated initializations from the same
// stream, so callers that need reproducible runs must seed a stream per
// attempt.
//
// The recurrence is seed = seed*1103515245 + 12345, mapped to [0, 1) via
// ((seed/65536) mod 32768)/32768.
type Rand struct {
	seed uint32
}

// NewRand returns a stream starting at the given seed.
func NewRand(seed uint32) *Rand {
	return &Rand{seed: seed}
}

// Seed resets the stream to the given seed.
func (r *Rand) Seed(seed uint32) {
	r.seed = seed
}

// Float32 draws the next uniform value in [0, 1).
func (r *Rand) Float32() float32 {
	r.seed = r.seed*1103515245 + 12345
	return float32((r.seed/65536)%32768) / 32768
}
