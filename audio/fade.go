// SPDX-License-Identifier: EPL-2.0

package audio

import (
	"math"

	goaudio "github.com/go-audio/audio"
)

// FadeFrames returns the length in frames of a fade lasting seconds at sampleRate.
func FadeFrames(seconds float64, sampleRate int) int {
	return int(math.Ceil(seconds * float64(sampleRate)))
}

// ApplyFade shapes buf in place with a linear fade-in over its first
// FadeFrames(fadeDuration) frames and a linear fade-out over its last ones.
//
// Frame i of the fade-in is scaled by i/fade, so the very first frame is
// silenced. Frame i of the fade-out is scaled by (total-i)/fade, so the last
// frame keeps 1/fade of its amplitude. Scaled values are rounded half away
// from zero.
//
// When the buffer is shorter than two fades the ramps overlap and both
// factors apply to the frames they share. A fade longer than the whole
// buffer is applied only to the frames that exist.
func ApplyFade(buf *goaudio.IntBuffer, fadeDuration float64) error {
	if err := validateBuffer(buf); err != nil {
		return err
	}

	fade := FadeFrames(fadeDuration, buf.Format.SampleRate)
	if fade <= 0 {
		return nil
	}

	channels := buf.Format.NumChannels
	total := Frames(buf)

	for i := range min(fade, total) {
		scaleFrame(buf.Data, i, channels, float64(i)/float64(fade))
	}

	for i := max(total-fade, 0); i < total; i++ {
		scaleFrame(buf.Data, i, channels, float64(total-i)/float64(fade))
	}

	return nil
}

func scaleFrame(data []int, frame, channels int, factor float64) {
	base := frame * channels
	for c := range channels {
		data[base+c] = int(math.Round(float64(data[base+c]) * factor))
	}
}
