// SPDX-License-Identifier: EPL-2.0

package audio

import (
	goaudio "github.com/go-audio/audio"
)

// TrimOptions controls TrimSilence.
type TrimOptions struct {
	// Threshold is the largest absolute sample value still counted as silence.
	Threshold int
	// MinRun is the length in frames from which a silent run is collapsed.
	MinRun int
	// FlushTrailing keeps a short silent run that reaches the end of the
	// input. Without it every trailing run is dropped.
	FlushTrailing bool
}

// TrimSilence scans buf frame by frame and returns a new buffer without its
// long silent runs.
//
// A frame is silent when every channel is within opts.Threshold. Each
// non-silent frame closes the run of silent frames before it: a run shorter
// than opts.MinRun is copied along with the closing frame, a longer one is
// dropped and only the closing frame is kept. A run that is still open when
// the input ends has no closing frame and is dropped, unless
// opts.FlushTrailing is set and the run is short.
func TrimSilence(buf *goaudio.IntBuffer, opts TrimOptions) (*goaudio.IntBuffer, error) {
	if err := validateBuffer(buf); err != nil {
		return nil, err
	}

	channels := buf.Format.NumChannels
	total := Frames(buf)
	data := buf.Data
	out := make([]int, 0, len(data))

	count := 0
	for f := range total {
		if silentFrame(data[f*channels:(f+1)*channels], opts.Threshold) {
			count++
			continue
		}

		if count < opts.MinRun {
			out = append(out, data[(f-count)*channels:(f+1)*channels]...)
		} else {
			out = append(out, data[f*channels:(f+1)*channels]...)
		}
		count = 0
	}

	if opts.FlushTrailing && count > 0 && count < opts.MinRun {
		out = append(out, data[(total-count)*channels:]...)
	}

	return &goaudio.IntBuffer{
		Format: &goaudio.Format{
			NumChannels: channels,
			SampleRate:  buf.Format.SampleRate,
		},
		Data:           out,
		SourceBitDepth: buf.SourceBitDepth,
	}, nil
}

func silentFrame(frame []int, threshold int) bool {
	for _, v := range frame {
		if v > threshold || v < -threshold {
			return false
		}
	}
	return true
}
