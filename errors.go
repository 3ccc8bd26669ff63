package fft

import "errors"

// Sentinel errors returned by the transform entry points. Callers match
// them with errors.Is; wrapped variants carry argument context in the
// message only.
var (
	// ErrEmptyInput is returned when a required buffer has length 0.
	ErrEmptyInput = errors.New("fft: empty input")

	// ErrNonPowerOfTwoRestricted is returned for non-power-of-two
	// lengths when the library is built with the fft_restricted tag and
	// Bluestein's algorithm is unavailable.
	ErrNonPowerOfTwoRestricted = errors.New("fft: non-power-of-two length in restricted build")

	// ErrMismatchedLengths is returned when two arguments that must
	// agree in length (input/output, spectrum/signal, scratch/axis) do
	// not.
	ErrMismatchedLengths = errors.New("fft: mismatched lengths")

	// ErrInvalidStride is returned when a stride is zero or the buffer
	// length is incompatible with the stride and element count.
	ErrInvalidStride = errors.New("fft: invalid stride")

	// ErrInvalidHopSize is returned when an STFT hop is zero or exceeds
	// the window length.
	ErrInvalidHopSize = errors.New("fft: invalid hop size")

	// ErrInvalidValue is returned for structurally nonsensical
	// arguments, such as an odd length passed to the real FFT.
	ErrInvalidValue = errors.New("fft: invalid value")

	// ErrOverflow is returned when the product of multidimensional
	// sizes would exceed the address space.
	ErrOverflow = errors.New("fft: size overflow")
)
