//go:build !amd64 && !arm64

package lane

func init() {
	// Other architectures fall back to scalar mode for now.
	setScalarMode()
}
