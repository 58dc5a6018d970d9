//go:build arm64

package lane

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	// NEON is baseline for all arm64 CPUs.
	currentLevel = DispatchNEON
	currentWidth = 16
	currentName = "neon"
}
