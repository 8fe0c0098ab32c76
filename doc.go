// SPDX-License-Identifier: EPL-2.0

// Package cutblanc prepares audio clips: it removes long silences from PCM
// recordings and turns short compressed clips into fixed-length looped WAV
// files.
//
// Both pipelines run through a Processor:
//
//	p, err := cutblanc.NewProcessor(cutblanc.DefaultSettings(), logger)
//	if err != nil {
//		return err
//	}
//
//	// WAV or AIFF in, WAV out. An existing output is appended to.
//	err = p.Cut("take.wav", "clean.wav")
//
//	// MP3 or Ogg Vorbis in, 10 s of faded and looped 16-bit WAV out.
//	err = p.Convert("jingle.mp3", "jingle.wav")
//
// The whole input is decoded into memory before it is processed. Errors wrap
// the sentinels of the audio package, such as audio.ErrIO, audio.ErrDecode,
// audio.ErrFormatMismatch and audio.ErrWrite, so callers can test them with
// errors.Is.
package cutblanc
