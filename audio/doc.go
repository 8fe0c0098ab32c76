// SPDX-License-Identifier: EPL-2.0

// Package audio provides the in-memory PCM primitives used by cutblanc.
//
// This package contains the core building blocks:
//   - Source interface for decoded audio input
//   - ReadAll to drain a Source into a buffer
//   - ApplyFade, LoopExtend and TrimSilence transforms
//   - Format registry for decoder registration by file extension
//
// # Source Interface
//
// Every decoder in the formats packages returns a Source:
//
//	type Source interface {
//	    SampleRate() int
//	    Channels() int
//	    BitDepth() int
//	    ReadSamples(dst []int) (int, error)
//	    Close() error
//	}
//
// Samples are signed integers at the source's bit depth, interleaved by
// channel. A frame is one sample per channel.
//
// # Buffers
//
// Transforms operate on *audio.IntBuffer from github.com/go-audio/audio.
// ApplyFade works in place. LoopExtend and TrimSilence return new buffers and
// leave their input untouched.
//
//	buf, err := audio.ReadAll(src, audio.DefaultBufferSize)
//	err = audio.ApplyFade(buf, 1.0)
//	buf, err = audio.LoopExtend(buf, 10.0)
//
// # Silence
//
// A frame is silent when every channel's magnitude is at or below the
// threshold. Runs of silent frames shorter than MinRun are kept; longer runs
// collapse to nothing, leaving the loud frame that ends them.
//
//	out, err := audio.TrimSilence(buf, audio.TrimOptions{Threshold: 100, MinRun: 1000})
//
// # Format Registry
//
//	registry := audio.NewRegistry()
//	registry.Register("wav", wav.Decoder{})
//	decoder, err := registry.Lookup("input.wav")
package audio
