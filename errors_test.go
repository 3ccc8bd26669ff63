package fft

import (
	"errors"
	"testing"
)

func TestErrorTagsDistinct(t *testing.T) {
	// Every error kind must be distinguishable without string parsing,
	// in particular the restricted-mode error from the length
	// mismatches that callers may want to handle differently.
	all := []error{
		ErrEmptyInput,
		ErrNonPowerOfTwoRestricted,
		ErrMismatchedLengths,
		ErrInvalidStride,
		ErrInvalidHopSize,
		ErrInvalidValue,
		ErrOverflow,
	}
	for i, a := range all {
		for j, b := range all {
			if (i == j) != errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v), got: %v", a, b, i == j)
			}
		}
	}
}

func TestErrorMessages(t *testing.T) {
	for _, err := range []error{ErrEmptyInput, ErrOverflow, ErrInvalidStride} {
		if err.Error() == "" {
			t.Errorf("error %v has an empty message", err)
		}
	}
}
