package audio

import (
	"errors"
	"fmt"
	"io"

	goaudio "github.com/go-audio/audio"
)

// DefaultBufferSize is the number of samples requested per ReadSamples call
// by ReadAll when no size is given.
const DefaultBufferSize = 4096

const maxConsecutiveEmptyReads = 100

// ReadAll drains src into a single in-memory PCM buffer.
//
// bufferSize is rounded down to a multiple of the channel count; values
// smaller than one frame fall back to DefaultBufferSize. The returned buffer
// keeps the source's sample rate, channel count and bit depth.
//
// ReadAll does not close src.
func ReadAll(src Source, bufferSize int) (*goaudio.IntBuffer, error) {
	channels := src.Channels()
	if channels < 1 {
		return nil, fmt.Errorf("channel count %d: %w", channels, ErrDecode)
	}
	if src.SampleRate() <= 0 {
		return nil, fmt.Errorf("sample rate %d: %w", src.SampleRate(), ErrDecode)
	}

	if bufferSize < channels {
		bufferSize = DefaultBufferSize
	}
	bufferSize -= bufferSize % channels
	if bufferSize == 0 {
		bufferSize = channels
	}

	out := &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  src.SampleRate(),
		},
		Data:           make([]int, 0, bufferSize),
		SourceBitDepth: src.BitDepth(),
	}
	buf := make([]int, bufferSize)

	empty := 0
	for {
		n, err := src.ReadSamples(buf)
		if n > 0 {
			out.Data = append(out.Data, buf[:n]...)
			empty = 0
		} else if err == nil {
			empty++
			if empty >= maxConsecutiveEmptyReads {
				return nil, fmt.Errorf("read samples: %w", io.ErrNoProgress)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("read samples: %w", err)
		}
	}

	// A source cut short mid-frame leaves a partial frame behind.
	out.Data = out.Data[:len(out.Data)-len(out.Data)%channels]

	return out, nil
}
