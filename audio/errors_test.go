// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"errors"
	"fmt"
	"testing"
)

func TestErrInvalidDstSize(t *testing.T) {
	t.Parallel()

	expectedMsg := "dst size must be multiple of channels"
	if ErrInvalidDstSize.Error() != expectedMsg {
		t.Errorf("ErrInvalidDstSize.Error() = %q, want %q", ErrInvalidDstSize.Error(), expectedMsg)
	}
}

func TestErrors_Distinct(t *testing.T) {
	t.Parallel()

	errs := []error{
		ErrInvalidDstSize,
		ErrIO,
		ErrDecode,
		ErrFormatMismatch,
		ErrWrite,
		ErrEmptyBuffer,
		ErrInvalidSettings,
		ErrUnsupportedFormat,
	}

	for i, a := range errs {
		for j, b := range errs {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

func TestErrors_Wrapping(t *testing.T) {
	t.Parallel()

	wrapped := fmt.Errorf("append out.wav: %w: 44100 Hz != 48000 Hz", ErrFormatMismatch)
	if !errors.Is(wrapped, ErrFormatMismatch) {
		t.Error("errors.Is() failed for wrapped ErrFormatMismatch")
	}

	joined := errors.Join(ErrWrite, errors.New("additional context"))
	if !errors.Is(joined, ErrWrite) {
		t.Error("errors.Is() failed for joined ErrWrite")
	}
}
