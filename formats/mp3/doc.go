// SPDX-License-Identifier: EPL-2.0

// Package mp3 provides MP3 audio file decoding.
//
// This package uses github.com/hajimehoshi/go-mp3 to decode MP3 files into
// an audio.Source.
//
// # Decoding MP3 Files
//
//	file, _ := os.Open("audio.mp3")
//	source, err := mp3.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf, err := audio.ReadAll(source, audio.DefaultBufferSize)
//
// # Output Format
//
//   - Sample format: signed 16-bit integers
//   - Channels: always 2, mono files are duplicated to both channels
//   - Sample rate: taken from the first frame of the stream
//
// A stream that ends in the middle of a frame is treated as ending after the
// last complete frame. Any other decoder failure wraps audio.ErrDecode.
//
// # Limitations
//
//   - MP3 writing is not supported (decoding only)
//   - Mono streams cannot be decoded as mono: go-mp3 always outputs stereo,
//     so a mono file yields a 2-channel Source
//   - Sample rate changes after the first frame are not tracked
package mp3
