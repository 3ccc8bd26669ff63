//go:build fft_restricted

package fft

// Restricted build for embedded targets: Bluestein's algorithm is
// unavailable, so non-power-of-two lengths fail with
// ErrNonPowerOfTwoRestricted, and the parallel helpers always run the
// serial path.
const (
	restrictedMode  = true
	parallelEnabled = false
)
