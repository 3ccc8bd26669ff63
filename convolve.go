package fft

import "sync"

// FFT-based convolution. These helpers ride on the complex engine and
// exist both as a user-facing feature and as the pattern the Bluestein
// path instantiates internally: transform, pointwise multiply, inverse
// transform.

// Convolve computes the discrete convolution of x and y.
// Pads x and y to the next power of 2 from len(x)+len(y)-1.
func Convolve[C Complex](x, y []C) ([]C, error) {
	if len(x) == 0 && len(y) == 0 {
		return nil, nil
	}
	n := len(x) + len(y) - 1
	N := NextPow2(n)
	x = ZeroPad(x, N)
	y = ZeroPad(y, N)
	err := FastConvolve(x, y)
	return x[:n], err
}

// FastConvolve computes the discrete convolution of x and y and stores
// the result in x, while erasing y (setting it to 0s). Since this does
// no padding of its own, x and y are assumed to already be 0-padded
// for at least half their length, and their shared length must be a
// power of two.
func FastConvolve[C Complex](x, y []C) error {
	if len(x) == 0 && len(y) == 0 {
		return nil
	}
	if len(x) != len(y) {
		return ErrMismatchedLengths
	}
	if !IsPow2(len(x)) {
		return ErrInvalidValue
	}
	eng := NewEngine[C]()
	return convolve(eng, x, y)
}

// FastMultiConvolve computes the discrete convolution of many arrays
// using a hierarchical FFT algorithm, storing the result in the first
// section of the input and writing 0s to the remainder. The arrays
// must be pre-padded to a power-of-two length n, X is their
// concatenation, and the array count must also be a power of two.
// multithread fans the per-level convolutions out to one engine per
// worker, which can slow things down for small inputs.
func FastMultiConvolve[C Complex](X []C, n int, multithread bool) error {
	N := len(X)
	if n <= 0 || N%n != 0 {
		return ErrMismatchedLengths
	}
	if !IsPow2(n) || !IsPow2(N/n) {
		return ErrInvalidValue
	}
	for ; n != N; n <<= 1 {
		n2 := n << 1
		if multithread && parallelEnabled {
			var mu sync.Mutex
			var firstErr error
			pairs := N / n2
			parallelChunks(pairs, func(lo, hi int) {
				eng := NewEngine[C]()
				for i := lo; i < hi; i++ {
					if e := convolve(eng, X[i*n2:i*n2+n], X[i*n2+n:i*n2+n2]); e != nil {
						mu.Lock()
						if firstErr == nil {
							firstErr = e
						}
						mu.Unlock()
						return
					}
				}
			})
			if firstErr != nil {
				return firstErr
			}
		} else {
			eng := NewEngine[C]()
			for i := 0; i < N; i += n2 {
				if err := convolve(eng, X[i:i+n], X[i+n:i+n2]); err != nil {
					return err
				}
			}
		}
	}
	return nil
}

// convolve does the actual work of convolutions.
func convolve[C Complex](e *Engine[C], x, y []C) error {
	if err := e.FFT(x); err != nil {
		return err
	}
	if err := e.FFT(y); err != nil {
		return err
	}
	for i := 0; i < len(x); i++ {
		x[i] *= y[i]
		y[i] = 0
	}
	return e.IFFT(x)
}
