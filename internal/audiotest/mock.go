// SPDX-License-Identifier: EPL-2.0

package audiotest

import (
	"io"
	"math"
)

// Source is a test helper that generates integer PCM for testing.
// It implements the audio.Source interface (without importing it to avoid cycles).
type Source struct {
	sampleRate  int
	channels    int
	bitDepth    int
	totalFrames int
	generated   int // frames generated so far
	waveform    func(frame int, channel int) int

	// ReadErr, when set, is returned once every frame has been produced
	// instead of io.EOF.
	ReadErr error
	closed  bool
}

// NewSource creates a new 16-bit test source of totalFrames frames.
// waveform is a function that generates sample values given frame index and channel.
func NewSource(sampleRate, channels, totalFrames int, waveform func(frame int, channel int) int) *Source {
	return &Source{
		sampleRate:  sampleRate,
		channels:    channels,
		bitDepth:    16,
		totalFrames: totalFrames,
		waveform:    waveform,
	}
}

// NewSliceSource replays interleaved samples. len(samples) must be a
// multiple of channels.
func NewSliceSource(sampleRate, channels int, samples []int) *Source {
	return NewSource(sampleRate, channels, len(samples)/channels, func(frame int, channel int) int {
		return samples[frame*channels+channel]
	})
}

// NewSilentSource creates a source that generates silence (all zeros).
func NewSilentSource(sampleRate, channels, totalFrames int) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(int, int) int {
		return 0
	})
}

// NewConstantSource creates a source with a constant value.
func NewConstantSource(sampleRate, channels, totalFrames int, value int) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(int, int) int {
		return value
	})
}

// NewSineSource creates a source that generates a full-scale 16-bit sine wave.
func NewSineSource(sampleRate, channels, totalFrames int, frequency float64) *Source {
	return NewSource(sampleRate, channels, totalFrames, func(frame int, channel int) int {
		t := float64(frame) / float64(sampleRate)
		return int(math.Round(math.Sin(2*math.Pi*frequency*t) * 32767))
	})
}

func (s *Source) SampleRate() int { return s.sampleRate }
func (s *Source) Channels() int   { return s.channels }
func (s *Source) BitDepth() int   { return s.bitDepth }

func (s *Source) Close() error {
	s.closed = true
	return nil
}

// Closed reports whether Close was called.
func (s *Source) Closed() bool { return s.closed }

func (s *Source) ReadSamples(dst []int) (int, error) {
	if s.generated >= s.totalFrames {
		if s.ReadErr != nil {
			return 0, s.ReadErr
		}
		return 0, io.EOF
	}

	framesToWrite := min(len(dst)/s.channels, s.totalFrames-s.generated)

	for frame := range framesToWrite {
		for ch := range s.channels {
			dst[frame*s.channels+ch] = s.waveform(s.generated+frame, ch)
		}
	}

	s.generated += framesToWrite
	return framesToWrite * s.channels, nil
}
