package fft

import (
	"math/bits"
	"runtime"
	"strconv"
	"sync/atomic"
	"testing"

	algofft "github.com/MeKo-Christian/algo-fft"
	ktyefft "github.com/ktye/fft"
	dspfft "github.com/mjibson/go-dsp/fft"
	gonumfft "gonum.org/v1/gonum/dsp/fourier"
	scientificfft "scientificgo.org/fft"
)

var benchmarks = []struct {
	size int
	name string
}{
	{4, "Tiny (4)"},
	{128, "Small (128)"},
	{4096, "Medium (4096)"},
	{131072, "Large (131072)"},
	{4194304, "Huge (4194304)"},
}

func BenchmarkSlowFFT(b *testing.B) {
	for _, bm := range benchmarks {
		if bm.size > 10000 {
			// Don't run sizes too big for slow
			continue
		}
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				slowFFT(x)
			}
		})
	}
}

func BenchmarkFFT(b *testing.B) {
	for _, bm := range benchmarks {
		eng := NewEngine[complex128]()
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.FFT(x)
			}
		})
	}
}

func BenchmarkFFT32(b *testing.B) {
	for _, bm := range benchmarks {
		eng := NewEngine[complex64]()
		x := complex64Rand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.FFT(x)
			}
		})
	}
}

func BenchmarkIFFT(b *testing.B) {
	for _, bm := range benchmarks {
		eng := NewEngine[complex128]()
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.IFFT(x)
			}
		})
	}
}

func BenchmarkFFTParallelEngines(b *testing.B) {
	for _, bm := range benchmarks {
		procs := runtime.GOMAXPROCS(0)
		x := complexRand(bm.size * procs)

		b.Run(bm.name, func(b *testing.B) {
			var idx uint64
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			b.RunParallel(func(pb *testing.PB) {
				eng := NewEngine[complex128]()
				i := int(atomic.AddUint64(&idx, 1)-1) % procs
				y := x[i*bm.size : (i+1)*bm.size]
				for pb.Next() {
					eng.FFT(y)
				}
			})
		})
	}
}

func BenchmarkFFTRadix4(b *testing.B) {
	for _, bm := range benchmarks {
		if bits.TrailingZeros(uint(bm.size))%2 != 0 {
			// Radix-4 wants powers of four
			continue
		}
		eng := NewEngine[complex128]()
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.FFTWithStrategy(x, Radix4)
			}
		})
	}
}

func BenchmarkFFTStack(b *testing.B) {
	for _, bm := range benchmarks {
		if bm.size > 4096 {
			continue
		}
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				FFTStack(x)
			}
		})
	}
}

func BenchmarkBluestein(b *testing.B) {
	// Worst-case lengths for the chirp path: just past a power of two.
	for _, size := range []int{129, 1025, 4097} {
		eng := NewEngine[complex128]()
		x := complexRand(size)
		eng.FFT(x)

		b.Run(strconv.Itoa(size), func(b *testing.B) {
			b.SetBytes(int64(size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				eng.FFT(x)
			}
		})
	}
}

func BenchmarkRFFT(b *testing.B) {
	for _, bm := range benchmarks {
		p := NewRfftPlanner[complex128]()
		eng := NewEngine[complex128]()
		x := floatRand(bm.size)
		out := make([]complex128, bm.size/2+1)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				RFFT(p, eng, x, out)
			}
		})
	}
}

func BenchmarkSTFT(b *testing.B) {
	eng := NewEngine[complex128]()
	signal := floatRand(1 << 16)
	window := MakeWindow[float64](Hanning, 1024)
	count := NumFrames(len(signal), 256)
	frames := make([][]complex128, count)
	for i := range frames {
		frames[i] = make([]complex128, 1024)
	}
	b.SetBytes(int64(len(signal) * 8))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		STFT(eng, signal, window, 256, frames)
	}
}

// Reference library benchmarks, for comparison.

func BenchmarkKtyeFFT(b *testing.B) {
	for _, bm := range benchmarks {
		if bm.size > 1048576 {
			// Max size for ktye's fft
			continue
		}
		f, err := ktyefft.New(bm.size)
		if err != nil {
			b.Errorf("fft.New error: %v", err)
		}
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				f.Transform(x)
			}
		})
	}
}

func BenchmarkGoDSPFFT(b *testing.B) {
	for _, bm := range benchmarks {
		dspfft.EnsureRadix2Factors(bm.size)
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				dspfft.FFT(x)
			}
		})
	}
}

func BenchmarkGonumFFT(b *testing.B) {
	for _, bm := range benchmarks {
		fft := gonumfft.NewCmplxFFT(bm.size)
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				fft.Coefficients(x, x)
			}
		})
	}
}

func BenchmarkScientificFFT(b *testing.B) {
	for _, bm := range benchmarks {
		x := complexRand(bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 16))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				scientificfft.Fft(x, false)
			}
		})
	}
}

func BenchmarkAlgoFFT32(b *testing.B) {
	for _, bm := range benchmarks {
		plan, err := algofft.NewPlan32(bm.size)
		if err != nil {
			b.Errorf("algo-fft NewPlan32 error: %v", err)
		}
		x := complex64Rand(bm.size)
		out := make([]complex64, bm.size)

		b.Run(bm.name, func(b *testing.B) {
			b.SetBytes(int64(bm.size * 8))
			b.ResetTimer()
			for i := 0; i < b.N; i++ {
				plan.Forward(out, x)
			}
		})
	}
}
