package fft

import "math"

//go:generate sh -c "go run gen_twiddles.go > twiddles_gen.go"

// Planner caches the precomputed state an engine needs: half-length
// twiddle tables keyed by transform length, Bluestein chirp/kernel
// pairs for non-power-of-two lengths, and a grow-only scratch buffer.
//
// Tables are immutable once published and may be shared by reference;
// the scratch buffer is owned exclusively by the planner and must not
// be retained past the operation it was borrowed for. A planner is not
// safe for concurrent mutation.
type Planner[C Complex] struct {
	twiddles  map[int][]C
	bluestein map[int]bluesteinPair[C]
	scratch   []C
}

type bluesteinPair[C Complex] struct {
	chirp     []C
	kernelFFT []C
}

// NewPlanner returns an empty planner. Tables are built lazily on
// first use.
func NewPlanner[C Complex]() *Planner[C] {
	return &Planner[C]{
		twiddles:  make(map[int][]C),
		bluestein: make(map[int]bluesteinPair[C]),
	}
}

// Twiddles returns the twiddle table for transform length n: a slice
// of n/2 entries where entry k is exp(-2*pi*i*k/n). For lengths on the
// static menu the generated table is returned directly; otherwise the
// table is built once by iterative rotation with the primitive root,
// which avoids n/2 sin/cos evaluations and keeps the rounding error
// small and monotone. n must be at least 2; callers short-circuit
// length 1.
func (p *Planner[C]) Twiddles(n int) []C {
	if t, ok := p.twiddles[n]; ok {
		return t
	}
	if t := staticTwiddlesFor[C](n); t != nil {
		p.twiddles[n] = t
		return t
	}
	half := n / 2
	table := make([]C, half)
	ang := -2 * math.Pi / float64(n)
	sinStep, cosStep := math.Sincos(ang)
	wre, wim := 1.0, 0.0
	for k := range table {
		table[k] = C(complex(wre, wim))
		tmp := wre
		wre = wre*cosStep - wim*sinStep
		wim = wim*cosStep + tmp*sinStep
	}
	p.twiddles[n] = table
	return table
}

// staticTwiddlesFor maps the generated tables onto the requested
// element type without copying.
func staticTwiddlesFor[C Complex](n int) []C {
	var zero C
	switch any(zero).(type) {
	case complex128:
		if t := staticTwiddles64(n); t != nil {
			return any(t).([]C)
		}
	case complex64:
		if t := staticTwiddles32(n); t != nil {
			return any(t).([]C)
		}
	}
	return nil
}

// Bluestein returns the cached chirp sequence and pre-transformed
// convolution kernel for length n, building both on first use. The
// chirp has length n with chirp[i] = exp(-i*pi*i^2/n); the kernel is
// its conjugate mirrored into a buffer of length m = NextPow2(2n-1)
// and forward-transformed once. Unavailable in restricted builds.
func (p *Planner[C]) Bluestein(n int) (chirp, kernelFFT []C) {
	if pair, ok := p.bluestein[n]; ok {
		return pair.chirp, pair.kernelFFT
	}
	m := NextPow2(2*n - 1)
	chirp = make([]C, n)
	kernel := make([]C, m)
	for i := 0; i < n; i++ {
		// i*i mod 2n keeps the angle argument small; exp(i*pi*q/n) is
		// 2n-periodic in q.
		q := (i * i) % (2 * n)
		ang := math.Pi * float64(q) / float64(n)
		chirp[i] = expi[C](-ang)
		kernel[i] = expi[C](ang)
	}
	for i := 1; i < n; i++ {
		kernel[m-i] = kernel[i]
	}
	// The kernel length is a power of two, so this cannot fail.
	eng := NewEngineWithPlanner(p)
	if err := eng.FFT(kernel); err != nil {
		panic("fft: bluestein kernel transform: " + err.Error())
	}
	p.bluestein[n] = bluesteinPair[C]{chirp: chirp, kernelFFT: kernel}
	return chirp, kernel
}

// Scratch returns a slice of at least n elements backed by the
// planner's reusable buffer, growing it as needed. The buffer never
// shrinks. The returned slice is invalidated by the next transform on
// the same planner.
func (p *Planner[C]) Scratch(n int) []C {
	if cap(p.scratch) < n {
		p.scratch = make([]C, n)
	}
	return p.scratch[:n:cap(p.scratch)]
}

// takeScratch removes the reusable buffer from the planner so the
// caller can hold it across a nested transform without the inner
// transform aliasing it. Pair with putScratch on every exit path.
func (p *Planner[C]) takeScratch(n int) []C {
	s := p.scratch
	p.scratch = nil
	if cap(s) < n {
		s = make([]C, n)
	}
	return s[:n]
}

// putScratch returns a taken buffer, keeping whichever of the two
// candidate buffers is larger so capacity stays monotone.
func (p *Planner[C]) putScratch(s []C) {
	if cap(s) > cap(p.scratch) {
		p.scratch = s[:cap(s)]
	}
}

// PlanStrategy chooses a strategy for length n: SplitRadix for powers
// of two greater than one, Auto (dispatcher's choice) otherwise.
func (p *Planner[C]) PlanStrategy(n int) Strategy {
	if n > 1 && IsPow2(n) {
		return SplitRadix
	}
	return Auto
}
