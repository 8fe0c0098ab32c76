// SPDX-License-Identifier: EPL-2.0

// Package wav provides WAV audio file decoding and encoding.
//
// Container parsing and encoding are handled by github.com/go-audio/wav;
// this package adapts them to audio.Source and adds whole-file create and
// append operations.
//
// # Supported Formats
//
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Any channel count
//   - Any sample rate
//
// IEEE float WAV files are rejected with ErrOnlyPCMSupported.
//
// # Decoding WAV Files
//
//	file, _ := os.Open("audio.wav")
//	source, err := wav.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples are signed integers at the file's bit depth. 8-bit files, which
// store unsigned bytes, are shifted to be centred on zero.
//
// # Writing WAV Files
//
//	spec := audio.Spec{SampleRate: 44100, Channels: 2, BitsPerSample: 16, Format: audio.Int}
//	err := wav.Create("out.wav", spec, buf)
//	appended, err := wav.Write("out.wav", spec, more)
//
// Create and Append write to a temporary file in the destination directory
// and rename it into place. Append requires the existing file's spec to equal
// the new data's spec and fails with audio.ErrFormatMismatch otherwise.
//
// Samples are never clipped: a value outside the target bit depth fails with
// ErrSampleOutOfRange, wrapped in audio.ErrWrite.
package wav
