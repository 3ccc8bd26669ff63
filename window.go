package fft

import "math"

// Window selects an analysis window shape.
type Window int

const (
	Rectangular Window = iota
	Hanning
	Hamming
	Blackman
	BlackmanHarris
)

// windowValue evaluates the window at sample i of n.
func windowValue(window Window, i, n int) float64 {
	if n < 2 {
		return 1.0
	}
	x := float64(i) / float64(n-1)
	switch window {
	case Hanning:
		return 0.5 * (1 - math.Cos(2*math.Pi*x))
	case Hamming:
		return 0.54 - 0.46*math.Cos(2*math.Pi*x)
	case Blackman:
		return 0.42 - 0.5*math.Cos(2*math.Pi*x) + 0.08*math.Cos(4*math.Pi*x)
	case BlackmanHarris:
		return 0.35875 - 0.48829*math.Cos(2*math.Pi*x) +
			0.14128*math.Cos(4*math.Pi*x) - 0.01168*math.Cos(6*math.Pi*x)
	default:
		return 1.0
	}
}

// MakeWindow returns the n window coefficients for the given shape,
// ready to hand to STFT and ISTFT.
func MakeWindow[F Float](window Window, n int) []F {
	w := make([]F, n)
	for i := range w {
		w[i] = F(windowValue(window, i, n))
	}
	return w
}

// ApplyWindow multiplies x by the specified window function in place
// and returns it.
func ApplyWindow[C Complex](x []C, window Window) []C {
	n := len(x)
	for i := range x {
		x[i] *= C(complex(windowValue(window, i, n), 0))
	}
	return x
}

// PowerSpectrum computes |X[k]|^2 for each bin of the transform
// result.
func PowerSpectrum[C Complex](x []C) []float64 {
	result := make([]float64, len(x))
	switch v := any(x).(type) {
	case []complex64:
		for i := range v {
			re, im := float64(real(v[i])), float64(imag(v[i]))
			result[i] = re*re + im*im
		}
	case []complex128:
		for i := range v {
			re, im := real(v[i]), imag(v[i])
			result[i] = re*re + im*im
		}
	}
	return result
}
