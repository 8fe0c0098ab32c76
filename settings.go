// SPDX-License-Identifier: EPL-2.0

package cutblanc

import (
	"fmt"

	"github.com/ik5/cutblanc/audio"
)

// Settings holds the fixed parameters of both pipelines.
type Settings struct {
	// Silence detection
	SilenceThreshold     int  // largest absolute sample value counted as silence
	MinSilenceRun        int  // frames; runs this long or longer are removed
	FlushTrailingSilence bool // keep a short silent run at the end of the input

	// Conversion
	FadeDuration   float64 // seconds
	LoopDuration   float64 // seconds
	OutputBitDepth int
}

// DefaultSettings returns the settings cutblanc runs with.
func DefaultSettings() Settings {
	return Settings{
		SilenceThreshold: 100,
		MinSilenceRun:    1000,
		FadeDuration:     1.0,
		LoopDuration:     10.0,
		OutputBitDepth:   16,
	}
}

// Validate checks if the settings are usable.
func (s Settings) Validate() error {
	if s.SilenceThreshold < 0 {
		return fmt.Errorf("%w: silence threshold must be non-negative", audio.ErrInvalidSettings)
	}

	if s.MinSilenceRun <= 0 {
		return fmt.Errorf("%w: minimum silence run must be positive", audio.ErrInvalidSettings)
	}

	if s.FadeDuration <= 0 {
		return fmt.Errorf("%w: fade duration must be positive", audio.ErrInvalidSettings)
	}

	if s.LoopDuration <= 0 {
		return fmt.Errorf("%w: loop duration must be positive", audio.ErrInvalidSettings)
	}

	switch s.OutputBitDepth {
	case 8, 16, 24, 32:
	default:
		return fmt.Errorf("%w: output bit depth %d", audio.ErrInvalidSettings, s.OutputBitDepth)
	}

	return nil
}

func (s Settings) trimOptions() audio.TrimOptions {
	return audio.TrimOptions{
		Threshold:     s.SilenceThreshold,
		MinRun:        s.MinSilenceRun,
		FlushTrailing: s.FlushTrailingSilence,
	}
}
