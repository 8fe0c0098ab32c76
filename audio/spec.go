// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"fmt"

	goaudio "github.com/go-audio/audio"
)

// SampleFormat is the encoding of a sample inside a WAV container.
type SampleFormat int

const (
	Int SampleFormat = iota
	Float
)

func (f SampleFormat) String() string {
	switch f {
	case Int:
		return "int"
	case Float:
		return "float"
	}
	return fmt.Sprintf("SampleFormat(%d)", int(f))
}

// Spec describes the layout of PCM data in a container.
type Spec struct {
	SampleRate    int
	Channels      int
	BitsPerSample int
	Format        SampleFormat
}

// SpecOf returns the spec of buf written as integer PCM at bitDepth.
func SpecOf(buf *goaudio.IntBuffer, bitDepth int) Spec {
	return Spec{
		SampleRate:    buf.Format.SampleRate,
		Channels:      buf.Format.NumChannels,
		BitsPerSample: bitDepth,
		Format:        Int,
	}
}

// Equal reports whether every field of s and o matches.
func (s Spec) Equal(o Spec) bool {
	return s == o
}

func (s Spec) String() string {
	return fmt.Sprintf("%d Hz, %d ch, %d-bit %s", s.SampleRate, s.Channels, s.BitsPerSample, s.Format)
}

// Frames returns the number of frames held by buf.
func Frames(buf *goaudio.IntBuffer) int {
	if buf == nil || buf.Format == nil || buf.Format.NumChannels < 1 {
		return 0
	}
	return len(buf.Data) / buf.Format.NumChannels
}

// Seconds returns the playing time of buf.
func Seconds(buf *goaudio.IntBuffer) float64 {
	if buf == nil || buf.Format == nil || buf.Format.SampleRate <= 0 {
		return 0
	}
	return float64(Frames(buf)) / float64(buf.Format.SampleRate)
}

func validateBuffer(buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing format", ErrEmptyBuffer)
	}
	if buf.Format.NumChannels < 1 {
		return fmt.Errorf("channel count %d: %w", buf.Format.NumChannels, ErrInvalidDstSize)
	}
	if len(buf.Data)%buf.Format.NumChannels != 0 {
		return ErrInvalidDstSize
	}
	return nil
}
