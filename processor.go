// SPDX-License-Identifier: EPL-2.0

package cutblanc

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/cutblanc/audio"
	"github.com/ik5/cutblanc/formats/aiff"
	"github.com/ik5/cutblanc/formats/mp3"
	"github.com/ik5/cutblanc/formats/vorbis"
	"github.com/ik5/cutblanc/formats/wav"
	"github.com/ik5/cutblanc/internal/logging"
)

// Processor runs the convert and cut pipelines with a fixed set of settings.
// A Processor holds no per-call state and may be reused.
type Processor struct {
	settings Settings
	logger   *slog.Logger

	// input formats per pipeline, the first one registered is used for
	// paths without an extension
	convertFormats *audio.Registry
	cutFormats     *audio.Registry
}

// NewProcessor validates settings and returns a Processor. A nil logger
// discards all output.
func NewProcessor(settings Settings, logger *slog.Logger) (*Processor, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logging.NewNop()
	}

	convertFormats := audio.NewRegistry()
	convertFormats.Register("mp3", mp3.Decoder{})
	convertFormats.Register("ogg", vorbis.Decoder{})

	cutFormats := audio.NewRegistry()
	cutFormats.Register("wav", wav.Decoder{})
	cutFormats.Register("aiff", aiff.Decoder{})
	cutFormats.Register("aif", aiff.Decoder{})

	return &Processor{
		settings:       settings,
		logger:         logger,
		convertFormats: convertFormats,
		cutFormats:     cutFormats,
	}, nil
}

// Settings returns the settings p was built with.
func (p *Processor) Settings() Settings {
	return p.settings
}

// decodeFile reads the whole of path through the decoder registered for its
// extension.
func (p *Processor) decodeFile(formats *audio.Registry, path string) (*goaudio.IntBuffer, error) {
	dec, err := formats.Lookup(path)
	if err != nil {
		return nil, err
	}

	p.logger.Info("opening file", logging.Path(path))

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	src, err := dec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	defer closeSource(src, p.logger)

	buf, err := audio.ReadAll(src, audio.DefaultBufferSize)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}

	p.logger.Debug("decoded input",
		logging.Path(path),
		slog.Int("sample_rate", buf.Format.SampleRate),
		slog.Int("channels", buf.Format.NumChannels),
		slog.Int("bit_depth", buf.SourceBitDepth),
		logging.Seconds(audio.Seconds(buf)),
	)

	return buf, nil
}

func closeSource(c io.Closer, logger *slog.Logger) {
	if err := c.Close(); err != nil {
		logger.Warn("close source", logging.Error(err))
	}
}
