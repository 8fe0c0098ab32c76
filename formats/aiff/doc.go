// SPDX-License-Identifier: EPL-2.0

// Package aiff provides AIFF (Audio Interchange File Format) decoding.
//
// This package uses github.com/go-audio/aiff to decode AIFF files into an
// audio.Source. cutblanc accepts AIFF input wherever it accepts WAV.
//
// # Supported Formats
//
//   - Integer PCM at 8, 16, 24 and 32 bits
//   - Mono and multi-channel
//   - Any sample rate
//
// # Decoding AIFF Files
//
//	file, _ := os.Open("audio.aif")
//	source, err := aiff.Decoder{}.Decode(file)
//	if err != nil {
//	    // Handle error
//	}
//
//	buf := make([]int, 4096)
//	n, err := source.ReadSamples(buf)
//
// Samples keep the file's bit depth, so a 24-bit file yields values in
// [-8388608, 8388607]. Byte order is handled by the decoder.
//
// # Error Handling
//
//   - ErrNotAiffFile: The input is not a valid AIFF file
//   - ErrUnsupportedBitDepth: Sample size is not 8, 16, 24 or 32 bits
//   - ErrUnsupportedAiffLayout: The file declares no channels or sample rate
//
// # Limitations
//
//   - AIFF writing is not supported (decoding only)
//   - AIFF-C compressed files are not supported
package aiff
