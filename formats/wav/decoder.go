// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"bytes"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/cutblanc/audio"
)

const (
	formatPCM = 1
)

type wavSource struct {
	d          *gowav.Decoder
	sampleRate int
	channels   int
	bitDepth   int
	buf        *goaudio.IntBuffer
	remaining  int // samples left in the data chunk
}

func (s *wavSource) SampleRate() int { return s.sampleRate }
func (s *wavSource) Channels() int   { return s.channels }
func (s *wavSource) BitDepth() int   { return s.bitDepth }
func (s *wavSource) Close() error    { return nil }

func (s *wavSource) ReadSamples(dst []int) (int, error) {
	if s.remaining <= 0 {
		return 0, io.EOF
	}
	if len(dst) == 0 {
		return 0, nil
	}

	// The chunk reader is not bounded, so chunks after the PCM data would
	// otherwise decode as samples.
	s.buf.Data = dst[:min(len(dst), s.remaining)]
	n, err := s.d.PCMBuffer(s.buf)
	if err != nil {
		return 0, fmt.Errorf("%w: %w", audio.ErrDecode, err)
	}
	if n <= 0 {
		s.remaining = 0
		return 0, io.EOF
	}
	s.remaining -= n

	// 8-bit WAV stores unsigned samples centred on 128.
	if s.bitDepth == 8 {
		for i := range n {
			dst[i] -= 128
		}
	}

	return n, nil
}

type Decoder struct{}

// Decode parses the WAV header from r and returns a Source over its PCM
// data. Readers that cannot seek are buffered in memory first.
func (Decoder) Decode(r io.Reader) (audio.Source, error) {
	rs, ok := r.(io.ReadSeeker)
	if !ok {
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
		}
		rs = bytes.NewReader(data)
	}

	d, spec, err := readHeader(rs)
	if err != nil {
		return nil, err
	}

	if err := d.FwdToPCM(); err != nil || d.PCMChunk == nil {
		return nil, ErrPCMChunkNotFound
	}

	return &wavSource{
		d:          d,
		sampleRate: spec.SampleRate,
		channels:   spec.Channels,
		bitDepth:   spec.BitsPerSample,
		buf:        &goaudio.IntBuffer{},
		remaining:  d.PCMSize / (spec.BitsPerSample / 8),
	}, nil
}

// ReadSpec reads the format of the WAV file in rs without touching its
// samples.
func ReadSpec(rs io.ReadSeeker) (audio.Spec, error) {
	_, spec, err := readHeader(rs)
	return spec, err
}

func readHeader(rs io.ReadSeeker) (*gowav.Decoder, audio.Spec, error) {
	d := gowav.NewDecoder(rs)
	d.ReadInfo()
	if err := d.Err(); err != nil {
		return nil, audio.Spec{}, fmt.Errorf("%w: %w", ErrNotWavFile, err)
	}
	if d.NumChans < 1 || d.SampleRate == 0 {
		return nil, audio.Spec{}, ErrNotWavFile
	}

	if d.WavAudioFormat != formatPCM {
		return nil, audio.Spec{}, fmt.Errorf("audio format %d: %w", d.WavAudioFormat, ErrOnlyPCMSupported)
	}
	if !supportedBitDepth(int(d.BitDepth)) {
		return nil, audio.Spec{}, fmt.Errorf("%d-bit: %w", d.BitDepth, ErrOnlyPCMSupported)
	}

	return d, audio.Spec{
		SampleRate:    int(d.SampleRate),
		Channels:      int(d.NumChans),
		BitsPerSample: int(d.BitDepth),
		Format:        audio.Int,
	}, nil
}

func supportedBitDepth(bits int) bool {
	switch bits {
	case 8, 16, 24, 32:
		return true
	}
	return false
}
