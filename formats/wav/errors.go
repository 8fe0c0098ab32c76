// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"

	gowav "github.com/go-audio/wav"
)

var (
	ErrNotWavFile       = errors.New("not a WAV file")
	ErrOnlyPCMSupported = errors.New("only integer PCM supported")
	ErrSampleOutOfRange = errors.New("sample out of range")

	// ErrPCMChunkNotFound is returned for a WAV file without a data chunk.
	ErrPCMChunkNotFound = gowav.ErrPCMChunkNotFound
)
