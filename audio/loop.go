package audio

import (
	"fmt"
	"math"

	goaudio "github.com/go-audio/audio"
)

// LoopSamples returns the number of interleaved samples covering seconds of
// audio at sampleRate with the given channel count.
func LoopSamples(seconds float64, sampleRate, channels int) int {
	return int(math.Ceil(seconds * float64(sampleRate) * float64(channels)))
}

// LoopExtend returns a new buffer holding exactly LoopSamples(loopDuration)
// samples taken cyclically from buf. Shorter inputs repeat, longer inputs are
// truncated; the cut may land in the middle of a cycle.
//
// A duration whose sample count does not end on a frame boundary fails with
// ErrInvalidDstSize.
func LoopExtend(buf *goaudio.IntBuffer, loopDuration float64) (*goaudio.IntBuffer, error) {
	if err := validateBuffer(buf); err != nil {
		return nil, err
	}
	if len(buf.Data) == 0 {
		return nil, ErrEmptyBuffer
	}

	channels := buf.Format.NumChannels
	target := max(LoopSamples(loopDuration, buf.Format.SampleRate, channels), 0)
	if target%channels != 0 {
		return nil, fmt.Errorf("%w: %v s at %d Hz is %d samples, not whole %d-channel frames",
			ErrInvalidDstSize, loopDuration, buf.Format.SampleRate, target, channels)
	}

	out := make([]int, target)
	for written := 0; written < target; {
		written += copy(out[written:], buf.Data)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: buf.Format.NumChannels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data:           out,
		SourceBitDepth: buf.SourceBitDepth,
	}, nil
}
