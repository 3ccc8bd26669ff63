package fft

// Strategy selects the kernel used by FFTWithStrategy. The labels are
// historical: Radix2 and SplitRadix both resolve to the Stockham
// radix-2 path with precomputed twiddles, and only Radix4 runs a
// distinct kernel. Auto defers the choice to the planner.
type Strategy int

const (
	// Auto lets the planner choose; the zero value.
	Auto Strategy = iota
	// Radix2 runs the standard dispatcher path.
	Radix2
	// Radix4 runs the decimation-in-time radix-4 kernel for lengths
	// that are powers of four, falling back to the dispatcher
	// otherwise.
	Radix4
	// SplitRadix runs the Stockham auto-sort kernel.
	SplitRadix
)

// String returns the strategy label.
func (s Strategy) String() string {
	switch s {
	case Radix2:
		return "Radix2"
	case Radix4:
		return "Radix4"
	case SplitRadix:
		return "SplitRadix"
	default:
		return "Auto"
	}
}

// FFTWithStrategy computes the in-place forward transform of x with an
// explicit kernel choice. All strategies are functionally equivalent;
// they differ only in memory access pattern and speed.
func (e *Engine[C]) FFTWithStrategy(x []C, strategy Strategy) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if n == 1 {
		return nil
	}
	if strategy == Auto {
		strategy = e.planner.PlanStrategy(n)
	}
	switch strategy {
	case Radix2:
		return e.FFT(x)
	case Radix4:
		return e.FFTRadix4(x)
	case SplitRadix:
		return e.StockhamFFT(x)
	default:
		return e.FFT(x)
	}
}

// FFTMixedRadix factors n and routes 2- and 4-smooth lengths to the
// matching radix kernel; anything with other prime factors goes
// through the dispatcher, which handles it with Bluestein's algorithm.
func (e *Engine[C]) FFTMixedRadix(x []C) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if n == 1 {
		return nil
	}
	factors := factorize(n)
	allPow4 := true
	for _, f := range factors {
		if f != 4 {
			allPow4 = false
			break
		}
	}
	if allPow4 {
		return e.FFTRadix4(x)
	}
	allPow2 := true
	for _, f := range factors {
		if f != 2 && f != 4 {
			allPow2 = false
			break
		}
	}
	if allPow2 {
		return e.StockhamFFT(x)
	}
	return e.FFT(x)
}

// factorize returns the prime factorization of n with 4 emitted in
// place of pairs of 2s so the mixed-radix router can recognize pure
// radix-4 lengths. The 4s come first, followed by the remaining
// factors in nondecreasing order (12 yields [4 3]).
func factorize(n int) []int {
	var factors []int
	for n%4 == 0 {
		factors = append(factors, 4)
		n /= 4
	}
	for _, p := range []int{2, 3, 5} {
		for n%p == 0 {
			factors = append(factors, p)
			n /= p
		}
	}
	for f := 7; f*f <= n; f += 2 {
		for n%f == 0 {
			factors = append(factors, f)
			n /= f
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}
