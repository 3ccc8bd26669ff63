package fft

import (
	"os"
	"runtime"
	"strconv"
	"sync"
	"sync/atomic"
	"time"
)

// Coarse parallelism. A single heuristic decides whether a transform
// is large enough to split across a pool of goroutines: parallelize
// when each worker would handle at least
// max(L1_bytes/elemSize, perCoreWork, blockSize) elements. Every
// quantity can be tuned by environment variable or setter; unset
// values fall back to defaults and a one-shot calibration probe that
// measures memory copy throughput. Parallelism never changes results
// beyond rounding; it is purely a performance lever.

const (
	defaultParCacheBytes  = 32 * 1024
	defaultParPerCoreWork = 4096
	defaultParBlockSize   = 1024

	// The heuristic counts complex64 elements, the smaller of the two
	// precisions, so the threshold is conservative for complex128.
	parBytesPerElem = 8
)

// Programmatic overrides; zero means "use the environment or default".
var (
	parThresholdOverride   atomic.Int64
	parCacheBytesOverride  atomic.Int64
	parPerCoreWorkOverride atomic.Int64
	parBlockSizeOverride   atomic.Int64
	parThreadsOverride     atomic.Int64
)

// SetParallelFFTThreshold sets a custom minimum length for parallel
// processing. Passing 0 reverts to GOFFT_PAR_FFT_THRESHOLD when that
// is set, and to the built-in heuristic otherwise.
func SetParallelFFTThreshold(n int) { parThresholdOverride.Store(int64(n)) }

// SetParallelFFTL1Cache sets the assumed per-core L1 data cache size
// in bytes. Passing 0 reverts to the environment value or default.
func SetParallelFFTL1Cache(bytes int) { parCacheBytesOverride.Store(int64(bytes)) }

// SetParallelFFTPerCoreWork sets the minimum number of complex points
// each worker must process before the parallel path engages. Passing 0
// reverts to the environment value or default.
func SetParallelFFTPerCoreWork(points int) { parPerCoreWorkOverride.Store(int64(points)) }

// SetParallelFFTThreads bounds the worker count. Passing 0 reverts to
// the environment value or the logical CPU count.
func SetParallelFFTThreads(n int) { parThreadsOverride.Store(int64(n)) }

// SetParallelFFTBlockSize sets the granularity used when splitting
// work among workers. Passing 0 reverts to the environment value or
// default.
func SetParallelFFTBlockSize(n int) { parBlockSizeOverride.Store(int64(n)) }

type parallelEnv struct {
	threshold   int
	cacheBytes  int
	perCoreWork int
	blockSize   int
	threads     int
	calibrated  int
}

var (
	parEnvOnce sync.Once
	parEnvVal  parallelEnv
)

func envInt(name string, fallback int) int {
	if v, err := strconv.Atoi(os.Getenv(name)); err == nil && v > 0 {
		return v
	}
	return fallback
}

func loadParallelEnv() parallelEnv {
	parEnvOnce.Do(func() {
		parEnvVal = parallelEnv{
			threshold:   envInt("GOFFT_PAR_FFT_THRESHOLD", 0),
			cacheBytes:  envInt("GOFFT_PAR_FFT_CACHE_BYTES", defaultParCacheBytes),
			perCoreWork: envInt("GOFFT_PAR_FFT_PER_CORE_WORK", defaultParPerCoreWork),
			blockSize:   envInt("GOFFT_PAR_FFT_BLOCK_SIZE", defaultParBlockSize),
			threads:     envInt("GOFFT_PAR_FFT_THREADS", max(runtime.NumCPU(), 1)),
			calibrated:  calibratedPerCoreWork(),
		}
	})
	return parEnvVal
}

var calibrationOnce sync.Once
var calibrationVal int

// calibratedPerCoreWork measures memory copy throughput once and
// derives the number of complex points a core moves per second, as a
// floor for the per-core work tunable.
func calibratedPerCoreWork() int {
	calibrationOnce.Do(func() {
		const n = 1 << 20
		a := make([]byte, n)
		b := make([]byte, n)
		start := time.Now()
		copy(b, a)
		elapsed := time.Since(start).Nanoseconds()
		if elapsed < 1 {
			elapsed = 1
		}
		elems := n / parBytesPerElem
		calibrationVal = max(int(int64(elems)*1_000_000_000/elapsed), defaultParPerCoreWork)
	})
	return calibrationVal
}

func parallelFFTThreads() int {
	if v := parThreadsOverride.Load(); v > 0 {
		return int(v)
	}
	return loadParallelEnv().threads
}

func parallelFFTBlockSize() int {
	if v := parBlockSizeOverride.Load(); v > 0 {
		return int(v)
	}
	return loadParallelEnv().blockSize
}

// shouldParallelizeFFT reports whether a transform of n elements is
// worth splitting. An explicit threshold override wins; otherwise the
// threshold is computed from the cache hint, the per-core work floor,
// the block size and the thread count.
func shouldParallelizeFFT(n int) bool {
	if !parallelEnabled {
		return false
	}
	env := loadParallelEnv()
	threshold := env.threshold
	if v := parThresholdOverride.Load(); v > 0 {
		threshold = int(v)
	}
	if threshold > 0 {
		return n >= threshold
	}
	cacheBytes := env.cacheBytes
	if v := parCacheBytesOverride.Load(); v > 0 {
		cacheBytes = int(v)
	}
	perCoreWork := env.perCoreWork
	if v := parPerCoreWorkOverride.Load(); v > 0 {
		perCoreWork = int(v)
	}
	perCoreWork = max(perCoreWork, env.calibrated)
	cacheElems := cacheBytes / parBytesPerElem
	perCoreMin := max(cacheElems, max(perCoreWork, parallelFFTBlockSize()))
	return n >= perCoreMin*parallelFFTThreads()
}

// FFTParallel computes the forward transform on the shared default
// engine. The transform itself runs serially whether or not the input
// clears the parallel heuristic; only the element-wise conjugation and
// scaling sweeps of IFFTParallel are split across goroutines.
func FFTParallel[C Complex](x []C) error {
	return transformParallel(x, false)
}

// IFFTParallel is the inverse analogue of FFTParallel.
func IFFTParallel[C Complex](x []C) error {
	return transformParallel(x, true)
}

func transformParallel[C Complex](x []C, inverse bool) error {
	n := len(x)
	if n == 0 {
		return ErrEmptyInput
	}
	if n == 1 {
		return nil
	}
	if !shouldParallelizeFFT(n) {
		if inverse {
			return IFFT(x)
		}
		return FFT(x)
	}
	// Coarse split: the conjugation and scaling sweeps of the inverse
	// parallelize over chunks; the transform itself stays serial.
	if inverse {
		parallelChunks(n, func(lo, hi int) { conjugate(x[lo:hi]) })
		if err := FFT(x); err != nil {
			return err
		}
		s := 1 / float64(n)
		parallelChunks(n, func(lo, hi int) {
			conjugate(x[lo:hi])
			scale(x[lo:hi], s)
		})
		return nil
	}
	return FFT(x)
}

// parallelChunks runs fn over contiguous index ranges, one goroutine
// per worker.
func parallelChunks(n int, fn func(lo, hi int)) {
	workers := min(parallelFFTThreads(), n)
	if workers < 2 {
		fn(0, n)
		return
	}
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * n / workers
		hi := (w + 1) * n / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(lo, hi int) {
			defer wg.Done()
			fn(lo, hi)
		}(lo, hi)
	}
	wg.Wait()
}

// BatchParallel transforms every slice in batches, fanning the batch
// out to one engine per worker when the total element count clears the
// heuristic. Each worker owns its planner; only the immutable static
// twiddle tables are shared between them.
func BatchParallel[C Complex](batches [][]C) error {
	total := 0
	for _, b := range batches {
		total += len(b)
	}
	if !shouldParallelizeFFT(total) || len(batches) < 2 {
		return Batch(NewEngine[C](), batches)
	}
	workers := min(parallelFFTThreads(), len(batches))
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * len(batches) / workers
		hi := (w + 1) * len(batches) / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			eng := NewEngine[C]()
			for _, b := range batches[lo:hi] {
				if err := eng.FFT(b); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}

// FFT2DParallel is FFT2D with the row and column sweeps fanned out to
// per-worker engines when the volume clears the heuristic. Results
// match the serial path within rounding.
func FFT2DParallel[C Complex](data []C, rows, cols int, scratch []C) error {
	if rows < 0 || cols < 0 {
		return ErrInvalidValue
	}
	if rows == 0 || cols == 0 {
		return nil
	}
	total, ok := mulSizes(rows, cols)
	if !ok {
		return ErrOverflow
	}
	if len(data) != total {
		return ErrMismatchedLengths
	}
	if len(scratch) != rows {
		return ErrMismatchedLengths
	}
	if !shouldParallelizeFFT(total) {
		return NewEngine[C]().FFT2D(data, rows, cols, scratch)
	}

	workers := min(parallelFFTThreads(), rows)
	errs := make([]error, workers)
	var wg sync.WaitGroup
	for w := 0; w < workers; w++ {
		lo := w * rows / workers
		hi := (w + 1) * rows / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			eng := NewEngine[C]()
			for r := lo; r < hi; r++ {
				if err := eng.FFT(data[r*cols : (r+1)*cols]); err != nil {
					errs[w] = err
					return
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}

	workers = min(parallelFFTThreads(), cols)
	errs = make([]error, workers)
	for w := 0; w < workers; w++ {
		lo := w * cols / workers
		hi := (w + 1) * cols / workers
		if lo == hi {
			continue
		}
		wg.Add(1)
		go func(w, lo, hi int) {
			defer wg.Done()
			eng := NewEngine[C]()
			col := make([]C, rows)
			for c := lo; c < hi; c++ {
				for r := 0; r < rows; r++ {
					col[r] = data[r*cols+c]
				}
				if err := eng.FFT(col); err != nil {
					errs[w] = err
					return
				}
				for r := 0; r < rows; r++ {
					data[r*cols+c] = col[r]
				}
			}
		}(w, lo, hi)
	}
	wg.Wait()
	for _, err := range errs {
		if err != nil {
			return err
		}
	}
	return nil
}
