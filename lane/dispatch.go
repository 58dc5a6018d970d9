package lane

import "os"

// DispatchLevel identifies the instruction set the lane width was sized for.
type DispatchLevel int

const (
	DispatchScalar DispatchLevel = iota
	DispatchSSE2
	DispatchNEON
	DispatchAVX2
	DispatchAVX512
)

var (
	currentLevel DispatchLevel
	currentWidth int // vector width in bytes
	currentName  string
)

// CurrentLevel returns the dispatch level selected at init.
func CurrentLevel() DispatchLevel {
	return currentLevel
}

// CurrentWidth returns the vector width in bytes selected at init.
func CurrentWidth() int {
	return currentWidth
}

// CurrentName returns a human-readable name for the dispatch level.
func CurrentName() string {
	return currentName
}

// NoSimdEnv reports whether LANE_NO_SIMD is set, forcing scalar mode.
func NoSimdEnv() bool {
	return os.Getenv("LANE_NO_SIMD") != ""
}

func setScalarMode() {
	currentLevel = DispatchScalar
	currentWidth = 16 // 16-byte vectors even in scalar mode for consistency
	currentName = "scalar"
}
