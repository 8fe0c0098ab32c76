// SPDX-License-Identifier: EPL-2.0

// Package vorbis provides Ogg Vorbis audio file decoding.
//
// This package uses github.com/jfreymuth/oggvorbis to decode Ogg Vorbis files.
// cutblanc accepts Vorbis input wherever it accepts MP3.
//
// # Decoding Vorbis Files
//
//	file, _ := os.Open("audio.ogg")
//	source, err := vorbis.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int, 4096)
//	n, err := source.ReadSamples(buf)
//
// # Output Format
//
//   - Sample format: signed 16-bit integers, rounded from the decoder's floats
//   - Channels: Depends on file (mono or stereo typically)
//   - Sample rate: Depends on file (commonly 44.1kHz or 48kHz)
//
// ReadSamples only returns whole frames, so a destination shorter than one
// frame reads nothing.
package vorbis
