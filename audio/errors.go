// SPDX-License-Identifier: EPL-2.0

package audio

import "errors"

var (
	ErrInvalidDstSize = errors.New("dst size must be multiple of channels")

	// ErrIO reports a failure to open, create, rename or close a file.
	ErrIO = errors.New("i/o error")
	// ErrDecode reports a malformed or unsupported input stream.
	ErrDecode = errors.New("decode error")
	// ErrFormatMismatch reports an append target whose spec differs from the data.
	ErrFormatMismatch = errors.New("format mismatch")
	// ErrWrite reports a sample that could not be encoded.
	ErrWrite = errors.New("write error")

	ErrEmptyBuffer       = errors.New("buffer holds no samples")
	ErrInvalidSettings   = errors.New("invalid settings")
	ErrUnsupportedFormat = errors.New("unsupported audio format")
)
