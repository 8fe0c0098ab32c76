// SPDX-License-Identifier: EPL-2.0

package cutblanc

import (
	"fmt"
	"log/slog"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/cutblanc/audio"
	"github.com/ik5/cutblanc/formats/wav"
	"github.com/ik5/cutblanc/internal/logging"
)

// Convert decodes the compressed file at input, fades it in and out, loops
// it to the configured duration and writes it to output as a new integer PCM
// WAV file. Sample rate and channel count are those of the decoded input;
// MP3 input always decodes as stereo, so a mono MP3 becomes a stereo WAV.
func (p *Processor) Convert(input, output string) error {
	buf, err := p.decodeFile(p.convertFormats, input)
	if err != nil {
		return err
	}

	if err := audio.ApplyFade(buf, p.settings.FadeDuration); err != nil {
		return fmt.Errorf("fade %s: %w", input, err)
	}

	looped, err := audio.LoopExtend(buf, p.settings.LoopDuration)
	if err != nil {
		return fmt.Errorf("loop %s: %w", input, err)
	}

	requantize(looped, p.settings.OutputBitDepth)

	p.logger.Debug("writing file",
		logging.Path(output),
		slog.Int("bit_depth", p.settings.OutputBitDepth),
		logging.Seconds(audio.Seconds(looped)),
	)

	if err := wav.Create(output, audio.SpecOf(looped, p.settings.OutputBitDepth), looped); err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	p.logger.Info("conversion completed", logging.Path(output))

	return nil
}

// requantize shifts every sample of buf from its source bit depth to bits.
// Narrowing truncates the low bits.
func requantize(buf *goaudio.IntBuffer, bits int) {
	from := buf.SourceBitDepth
	if from == 0 || from == bits {
		return
	}

	switch {
	case bits > from:
		shift := bits - from
		for i, v := range buf.Data {
			buf.Data[i] = v << shift
		}
	default:
		shift := from - bits
		for i, v := range buf.Data {
			buf.Data[i] = v >> shift
		}
	}

	buf.SourceBitDepth = bits
}
