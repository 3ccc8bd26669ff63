package fft

import "math/bits"

// butterfly4 combines four inputs into the size-4 DFT:
// (a+c)+(b+d), (a-c)+j(b-d), (a+c)-(b+d), (a-c)-j(b-d) with j = (0,-1).
func butterfly4[C Complex](a, b, c, d C) (C, C, C, C) {
	t0 := a + c
	t1 := a - c
	t2 := b + d
	t3 := (b - d) * C(complex(0, -1))
	return t0 + t2, t1 + t3, t0 - t2, t1 - t3
}

// FFTRadix4 computes the in-place forward transform with a classical
// decimation-in-time radix-4 kernel: a base-4 digit-reversal
// permutation followed by log4(n) passes of 4-point butterflies with
// twiddles read from the planner's table. It requires n to be a power of four; other lengths
// fall back to the dispatcher. Kept primarily as a benchmark
// comparator for the Stockham path, to which it is functionally
// equivalent.
func (e *Engine[C]) FFTRadix4(x []C) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if !IsPow2(n) || bits.TrailingZeros(uint(n))%2 != 0 {
		return e.FFT(x)
	}
	if n == 1 {
		return nil
	}

	// Digit reversal in base 4: unravel indices two bits at a time.
	digits := bits.TrailingZeros(uint(n)) / 2
	for i := 1; i < n; i++ {
		j := 0
		for d, v := 0, i; d < digits; d++ {
			j = j<<2 | v&3
			v >>= 2
		}
		if i < j {
			x[i], x[j] = x[j], x[i]
		}
	}

	for length := 4; length <= n; length <<= 2 {
		if length == 4 {
			for i := 0; i < n; i += 4 {
				x[i], x[i+1], x[i+2], x[i+3] = butterfly4(x[i], x[i+1], x[i+2], x[i+3])
			}
			continue
		}
		twiddles := e.planner.Twiddles(length)
		quarter := length / 4
		half := length / 2
		for i := 0; i < n; i += length {
			for j := 0; j < quarter; j++ {
				w1, w2 := twiddles[j], twiddles[2*j]
				var w3 C
				if 3*j < half {
					w3 = twiddles[3*j]
				} else {
					w3 = -twiddles[3*j-half]
				}
				a := x[i+j]
				b := x[i+j+quarter] * w1
				c := x[i+j+2*quarter] * w2
				d := x[i+j+3*quarter] * w3
				a, b, c, d = butterfly4(a, b, c, d)
				x[i+j] = a
				x[i+j+quarter] = b
				x[i+j+2*quarter] = c
				x[i+j+3*quarter] = d
			}
		}
	}
	return nil
}
