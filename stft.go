package fft

// Short-time Fourier transform: frames of length W are cut from the
// signal every H samples, multiplied by the analysis window, and
// transformed. The inverse accumulates windowed inverse transforms by
// overlap-add and divides by the summed squared window, which makes
// the reconstruction exact wherever the accumulated weight clears a
// small threshold, for any window and hop with H <= W.

// colaEps is the weight threshold below which overlap-add output is
// left at zero instead of being divided by a vanishing normalizer.
const colaEps = 1e-8

// NumFrames returns the frame count an STFT of a length-n signal
// produces at the given hop.
func NumFrames(n, hop int) int {
	if hop <= 0 {
		return 0
	}
	return (n + hop - 1) / hop
}

// STFT fills frames[f] with the transform of the windowed frame
// starting at sample f*hop, zero-padding past the end of the signal.
// frames must hold at least NumFrames(len(signal), hop) slices of
// length len(window) each.
func STFT[F Float, C Complex](e *Engine[C], signal, window []F, hop int, frames [][]C) error {
	w := len(window)
	if w == 0 {
		return ErrInvalidValue
	}
	if hop <= 0 || hop > w {
		return ErrInvalidHopSize
	}
	count := NumFrames(len(signal), hop)
	if len(frames) < count {
		return ErrMismatchedLengths
	}
	for f := 0; f < count; f++ {
		frame := frames[f]
		if len(frame) != w {
			return ErrMismatchedLengths
		}
		fillFrame(signal, window, f*hop, frame)
		if err := e.FFT(frame); err != nil {
			return err
		}
	}
	return nil
}

// fillFrame writes the windowed, zero-padded samples starting at start
// into the complex frame.
func fillFrame[F Float, C Complex](signal, window []F, start int, frame []C) {
	switch out := any(frame).(type) {
	case []complex64:
		for i := range window {
			var x F
			if start+i < len(signal) {
				x = signal[start+i] * window[i]
			}
			out[i] = complex(float32(x), 0)
		}
	case []complex128:
		for i := range window {
			var x F
			if start+i < len(signal) {
				x = signal[start+i] * window[i]
			}
			out[i] = complex(float64(x), 0)
		}
	}
}

// overlapAdd inverse-transforms nothing itself; it accumulates the
// windowed real part of time into acc at the frame offset and the
// squared window into weight.
func overlapAdd[C Complex, F Float](time []C, window []F, start int, acc, weight []F) {
	switch v := any(time).(type) {
	case []complex64:
		for i := range window {
			if start+i >= len(acc) {
				break
			}
			acc[start+i] += F(real(v[i])) * window[i]
			weight[start+i] += window[i] * window[i]
		}
	case []complex128:
		for i := range window {
			if start+i >= len(acc) {
				break
			}
			acc[start+i] += F(real(v[i])) * window[i]
			weight[start+i] += window[i] * window[i]
		}
	}
}

// ISTFT reconstructs a signal from STFT frames by windowed
// overlap-add into out, using weight as the normalization accumulator.
// out must hold at least hop*(F-1)+W samples and weight at least
// len(out). Both buffers are zeroed first; positions whose accumulated
// weight stays below the threshold are left at zero.
func ISTFT[F Float, C Complex](e *Engine[C], frames [][]C, window []F, hop int, out, weight []F) error {
	w := len(window)
	if w == 0 {
		return ErrInvalidValue
	}
	if hop <= 0 || hop > w {
		return ErrInvalidHopSize
	}
	if len(frames) == 0 {
		return ErrEmptyInput
	}
	need := hop*(len(frames)-1) + w
	if len(out) < need || len(weight) < len(out) {
		return ErrMismatchedLengths
	}
	clear(out)
	clear(weight[:len(out)])

	buf := make([]C, w)
	for f, frame := range frames {
		if len(frame) != w {
			return ErrMismatchedLengths
		}
		copy(buf, frame)
		if err := e.IFFT(buf); err != nil {
			return err
		}
		overlapAdd(buf, window, f*hop, out, weight)
	}
	normalizeOLA(out, weight)
	return nil
}

// normalizeOLA divides the accumulator by the weight wherever the
// weight is significant.
func normalizeOLA[F Float](acc, weight []F) {
	for i := range acc {
		if weight[i] > colaEps {
			acc[i] /= weight[i]
		} else {
			acc[i] = 0
		}
	}
}

// STFTStream produces STFT frames one at a time, holding its position
// between calls. Frames are produced strictly in order and the stream
// is not restartable.
type STFTStream[F Float, C Complex] struct {
	e      *Engine[C]
	signal []F
	window []F
	hop    int
	pos    int
}

// NewSTFTStream validates the parameters and returns a stream at
// position zero.
func NewSTFTStream[F Float, C Complex](e *Engine[C], signal, window []F, hop int) (*STFTStream[F, C], error) {
	if len(window) == 0 {
		return nil, ErrInvalidValue
	}
	if hop <= 0 || hop > len(window) {
		return nil, ErrInvalidHopSize
	}
	return &STFTStream[F, C]{e: e, signal: signal, window: window, hop: hop}, nil
}

// NextFrame fills out with the next frame's spectrum and advances the
// position by one hop. It reports false once the signal is exhausted.
// out must have the window length exactly.
func (s *STFTStream[F, C]) NextFrame(out []C) (bool, error) {
	if len(out) != len(s.window) {
		return false, ErrMismatchedLengths
	}
	if s.pos >= len(s.signal) {
		return false, nil
	}
	fillFrame(s.signal, s.window, s.pos, out)
	if err := s.e.FFT(out); err != nil {
		return false, err
	}
	s.pos += s.hop
	return true, nil
}

// ISTFTStream reconstructs a signal incrementally. Each PushFrame
// overlap-adds one inverse-transformed frame and returns the next hop
// samples whose weight can no longer change; Flush returns the
// remaining W-H tail.
type ISTFTStream[F Float, C Complex] struct {
	e      *Engine[C]
	window []F
	hop    int
	acc    []F
	weight []F
	buf    []C
	pos    int
}

// NewISTFTStream validates the parameters and returns an empty
// accumulator.
func NewISTFTStream[F Float, C Complex](e *Engine[C], window []F, hop int) (*ISTFTStream[F, C], error) {
	w := len(window)
	if w == 0 {
		return nil, ErrInvalidValue
	}
	if hop <= 0 || hop > w {
		return nil, ErrInvalidHopSize
	}
	size := w + 2*hop
	return &ISTFTStream[F, C]{
		e:      e,
		window: window,
		hop:    hop,
		acc:    make([]F, size),
		weight: make([]F, size),
		buf:    make([]C, w),
	}, nil
}

// PushFrame overlap-adds one spectrum frame and returns the hop newly
// finalized samples, already weight-normalized. The returned slice
// aliases the stream's accumulator and is valid until the next call.
func (s *ISTFTStream[F, C]) PushFrame(frame []C) ([]F, error) {
	w := len(s.window)
	if len(frame) != w {
		return nil, ErrMismatchedLengths
	}
	if need := s.pos + w; need > len(s.acc) {
		s.acc = append(s.acc, make([]F, need-len(s.acc))...)
		s.weight = append(s.weight, make([]F, need-len(s.weight))...)
	}
	copy(s.buf, frame)
	if err := s.e.IFFT(s.buf); err != nil {
		return nil, err
	}
	overlapAdd(s.buf, s.window, s.pos, s.acc, s.weight)

	start, end := s.pos, s.pos+s.hop
	normalizeOLA(s.acc[start:end], s.weight[start:end])
	s.pos += s.hop
	return s.acc[start:end], nil
}

// Flush finalizes and returns the W-H samples still pending after the
// last pushed frame. The stream must not be reused afterwards.
func (s *ISTFTStream[F, C]) Flush() []F {
	start := s.pos
	end := start + len(s.window) - s.hop
	if end > len(s.acc) {
		end = len(s.acc)
	}
	if start >= end {
		return nil
	}
	normalizeOLA(s.acc[start:end], s.weight[start:end])
	return s.acc[start:end]
}
