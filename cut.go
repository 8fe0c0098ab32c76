// SPDX-License-Identifier: EPL-2.0

package cutblanc

import (
	"fmt"
	"log/slog"

	"github.com/ik5/cutblanc/audio"
	"github.com/ik5/cutblanc/formats/wav"
	"github.com/ik5/cutblanc/internal/logging"
)

// Cut removes the long silent runs of the PCM file at input and writes what
// is left to output. When output already exists the samples are appended to
// it, which requires its sample rate, channel count and bit depth to match
// the input's.
func (p *Processor) Cut(input, output string) error {
	buf, err := p.decodeFile(p.cutFormats, input)
	if err != nil {
		return err
	}

	p.logger.Info("cutting silences",
		slog.Int("threshold", p.settings.SilenceThreshold),
		slog.Int("min_run", p.settings.MinSilenceRun),
	)

	out, err := audio.TrimSilence(buf, p.settings.trimOptions())
	if err != nil {
		return fmt.Errorf("trim %s: %w", input, err)
	}

	p.logger.Info("trimmed",
		slog.Float64("from_seconds", audio.Seconds(buf)),
		slog.Float64("to_seconds", audio.Seconds(out)),
		slog.Int("removed_frames", audio.Frames(buf)-audio.Frames(out)),
	)

	appended, err := wav.Write(output, audio.SpecOf(out, buf.SourceBitDepth), out)
	if err != nil {
		return fmt.Errorf("write %s: %w", output, err)
	}

	if appended {
		p.logger.Info("appended to", logging.Path(output))
	} else {
		p.logger.Info("created", logging.Path(output))
	}

	p.logger.Info("done")

	return nil
}
