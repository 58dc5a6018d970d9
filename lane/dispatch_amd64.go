//go:build amd64

package lane

import "github.com/klauspost/cpuid/v2"

func init() {
	if NoSimdEnv() {
		setScalarMode()
		return
	}

	detectCPUFeatures()
}

func detectCPUFeatures() {
	switch {
	case cpuid.CPU.Supports(cpuid.AVX512F, cpuid.AVX512VL, cpuid.AVX512BW):
		currentLevel = DispatchAVX512
		currentWidth = 64
		currentName = "avx512"
	case cpuid.CPU.Supports(cpuid.AVX2):
		currentLevel = DispatchAVX2
		currentWidth = 32
		currentName = "avx2"
	default:
		// SSE2 is baseline for all amd64 CPUs.
		currentLevel = DispatchSSE2
		currentWidth = 16
		currentName = "sse2"
	}
}
