package fft

import "math"

// Straight-line kernels for the four smallest power-of-two sizes.
// These terminate the dispatcher's recursion: they are the only places
// where radix structure is hard-coded, and they avoid both the
// bit-reversal permutation and twiddle-table lookups entirely.
// Callers guarantee the exact length.

func fft2[C Complex](x []C) {
	a, b := x[0], x[1]
	x[0] = a + b
	x[1] = a - b
}

func fft4[C Complex](x []C) {
	a0, a1, a2, a3 := x[0], x[1], x[2], x[3]

	b0 := a0 + a2
	b1 := a1 + a3
	b2 := a0 - a2
	b3 := a1 - a3

	x[0] = b0 + b1
	x[2] = b0 - b1
	t := b3 * C(complex(0, -1))
	x[1] = b2 + t
	x[3] = b2 - t
}

func fft8[C Complex](x []C) {
	var even, odd [4]C
	for i := 0; i < 4; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	fft4(even[:])
	fft4(odd[:])
	for k := 0; k < 4; k++ {
		t := odd[k] * expi[C](-2*math.Pi*float64(k)/8)
		x[k] = even[k] + t
		x[k+4] = even[k] - t
	}
}

func fft16[C Complex](x []C) {
	var even, odd [8]C
	for i := 0; i < 8; i++ {
		even[i] = x[2*i]
		odd[i] = x[2*i+1]
	}
	fft8(even[:])
	fft8(odd[:])
	for k := 0; k < 8; k++ {
		t := odd[k] * expi[C](-2*math.Pi*float64(k)/16)
		x[k] = even[k] + t
		x[k+8] = even[k] - t
	}
}
