package fft

import (
	"math"
	"math/bits"
)

// Multidimensional transforms by separability: the N-dimensional DFT
// factorizes into 1-D DFTs along each axis, in any order, so a 2-D or
// 3-D volume is swept axis by axis with the 1-D engine. Contiguous
// axes transform in place; strided axes gather into caller-provided
// scratch and scatter back.

// mulSizes multiplies two dimension sizes, reporting overflow.
func mulSizes(a, b int) (int, bool) {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	if hi != 0 || lo > uint64(math.MaxInt) {
		return 0, false
	}
	return int(lo), true
}

// FFT2D transforms a row-major rows x cols volume in place: one
// length-cols FFT per row, then one length-rows FFT per column through
// the scratch buffer, which must have length rows. Zero-sized
// dimensions are a no-op.
func (e *Engine[C]) FFT2D(data []C, rows, cols int, scratch []C) error {
	return e.fft2d(data, rows, cols, scratch, e.FFT)
}

// IFFT2D is the inverse analogue of FFT2D.
func (e *Engine[C]) IFFT2D(data []C, rows, cols int, scratch []C) error {
	return e.fft2d(data, rows, cols, scratch, e.IFFT)
}

func (e *Engine[C]) fft2d(data []C, rows, cols int, scratch []C, transform func([]C) error) error {
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
	for r := 0; r < rows; r++ {
		if err := transform(data[r*cols : (r+1)*cols]); err != nil {
			return err
		}
	}
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			scratch[r] = data[r*cols+c]
		}
		if err := transform(scratch); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			data[r*cols+c] = scratch[r]
		}
	}
	return nil
}

// Scratch3D bundles the per-axis gather buffers for FFT3D. Tube, Row
// and Col must have lengths depth, rows and cols respectively.
type Scratch3D[C Complex] struct {
	Tube []C
	Row  []C
	Col  []C
}

// NewScratch3D allocates gather buffers for a depth x rows x cols
// volume.
func NewScratch3D[C Complex](depth, rows, cols int) Scratch3D[C] {
	return Scratch3D[C]{
		Tube: make([]C, depth),
		Row:  make([]C, rows),
		Col:  make([]C, cols),
	}
}

// FFT3D transforms a row-major depth x rows x cols volume in place,
// sweeping tubes (depth axis), then rows, then the contiguous column
// axis. Zero-sized dimensions are a no-op.
func (e *Engine[C]) FFT3D(data []C, depth, rows, cols int, scratch Scratch3D[C]) error {
	return e.fft3d(data, depth, rows, cols, scratch, e.FFT)
}

// IFFT3D is the inverse analogue of FFT3D.
func (e *Engine[C]) IFFT3D(data []C, depth, rows, cols int, scratch Scratch3D[C]) error {
	return e.fft3d(data, depth, rows, cols, scratch, e.IFFT)
}

func (e *Engine[C]) fft3d(data []C, depth, rows, cols int, scratch Scratch3D[C], transform func([]C) error) error {
	if depth < 0 || rows < 0 || cols < 0 {
		return ErrInvalidValue
	}
	if depth == 0 || rows == 0 || cols == 0 {
		return nil
	}
	plane, ok := mulSizes(rows, cols)
	if !ok {
		return ErrOverflow
	}
	total, ok := mulSizes(depth, plane)
	if !ok {
		return ErrOverflow
	}
	if len(data) != total {
		return ErrMismatchedLengths
	}
	if len(scratch.Tube) != depth || len(scratch.Row) != rows || len(scratch.Col) != cols {
		return ErrMismatchedLengths
	}

	// Depth axis: stride rows*cols.
	for r := 0; r < rows; r++ {
		for c := 0; c < cols; c++ {
			base := r*cols + c
			for d := 0; d < depth; d++ {
				scratch.Tube[d] = data[d*plane+base]
			}
			if err := transform(scratch.Tube); err != nil {
				return err
			}
			for d := 0; d < depth; d++ {
				data[d*plane+base] = scratch.Tube[d]
			}
		}
	}
	// Row axis: stride cols.
	for d := 0; d < depth; d++ {
		for c := 0; c < cols; c++ {
			base := d*plane + c
			for r := 0; r < rows; r++ {
				scratch.Row[r] = data[base+r*cols]
			}
			if err := transform(scratch.Row); err != nil {
				return err
			}
			for r := 0; r < rows; r++ {
				data[base+r*cols] = scratch.Row[r]
			}
		}
	}
	// Column axis is contiguous: transform the slices directly.
	for d := 0; d < depth; d++ {
		for r := 0; r < rows; r++ {
			base := d*plane + r*cols
			if err := transform(data[base : base+cols]); err != nil {
				return err
			}
		}
	}
	return nil
}
