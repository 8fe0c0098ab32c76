// SPDX-License-Identifier: EPL-2.0

package wav

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"
	gowav "github.com/go-audio/wav"

	"github.com/ik5/cutblanc/audio"
)

const defaultFileMode fs.FileMode = 0o644

// Encode writes buf to w as a complete WAV stream laid out as spec.
//
// buf must carry spec's sample rate and channel count. Every sample must fit
// spec.BitsPerSample as a signed integer; the first one that does not fails
// with ErrSampleOutOfRange and nothing is encoded.
func Encode(w io.WriteSeeker, spec audio.Spec, buf *goaudio.IntBuffer) error {
	if err := checkSpec(spec); err != nil {
		return err
	}
	if err := checkBuffer(spec, buf); err != nil {
		return err
	}

	out := buf
	if spec.BitsPerSample == 8 {
		out = toUnsigned8(buf)
	}

	enc := gowav.NewEncoder(w, spec.SampleRate, spec.BitsPerSample, spec.Channels, formatPCM)
	if err := enc.Write(out); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrWrite, err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrWrite, err)
	}

	return nil
}

// Create writes buf to a new WAV file at path, replacing any file already
// there. The file appears only once it is completely written.
func Create(path string, spec audio.Spec, buf *goaudio.IntBuffer) error {
	return writeFile(path, defaultFileMode, func(w io.WriteSeeker) error {
		return Encode(w, spec, buf)
	})
}

// Append adds buf after the samples already stored in the WAV file at path.
//
// The file's spec must equal spec, otherwise Append fails with
// audio.ErrFormatMismatch. The existing samples and buf are written to a
// temporary file next to path which is then renamed over it, so a failed
// append leaves the existing file untouched.
func Append(path string, spec audio.Spec, buf *goaudio.IntBuffer) error {
	existing, mode, err := readFile(path)
	if err != nil {
		return err
	}

	have := audio.SpecOf(existing, existing.SourceBitDepth)
	if !have.Equal(spec) {
		return fmt.Errorf("%w: %s has %s, data is %s", audio.ErrFormatMismatch, path, have, spec)
	}
	if err := checkBuffer(spec, buf); err != nil {
		return err
	}

	merged := &goaudio.IntBuffer{
		Format:         existing.Format,
		Data:           make([]int, 0, len(existing.Data)+len(buf.Data)),
		SourceBitDepth: spec.BitsPerSample,
	}
	merged.Data = append(merged.Data, existing.Data...)
	merged.Data = append(merged.Data, buf.Data...)

	return writeFile(path, mode, func(w io.WriteSeeker) error {
		return Encode(w, spec, merged)
	})
}

// Write appends buf to the WAV file at path when it exists and creates it
// otherwise. appended reports which of the two happened.
func Write(path string, spec audio.Spec, buf *goaudio.IntBuffer) (appended bool, err error) {
	_, err = os.Stat(path)
	switch {
	case err == nil:
		return true, Append(path, spec, buf)
	case errors.Is(err, fs.ErrNotExist):
		return false, Create(path, spec, buf)
	default:
		return false, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
}

func readFile(path string) (*goaudio.IntBuffer, fs.FileMode, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer f.Close()

	info, err := f.Stat()
	if err != nil {
		return nil, 0, fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	src, err := Decoder{}.Decode(f)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}
	defer src.Close()

	buf, err := audio.ReadAll(src, audio.DefaultBufferSize)
	if err != nil {
		return nil, 0, fmt.Errorf("read %s: %w", path, err)
	}

	return buf, info.Mode().Perm(), nil
}

func writeFile(path string, mode fs.FileMode, write func(io.WriteSeeker) error) (err error) {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	defer func() {
		if err != nil {
			_ = tmp.Close()
			_ = os.Remove(tmp.Name())
		}
	}()

	if err = write(tmp); err != nil {
		return err
	}
	if err = tmp.Chmod(mode); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}
	if err = os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("%w: %w", audio.ErrIO, err)
	}

	return nil
}

func checkSpec(spec audio.Spec) error {
	if spec.Format != audio.Int || !supportedBitDepth(spec.BitsPerSample) {
		return fmt.Errorf("%s: %w", spec, ErrOnlyPCMSupported)
	}
	if spec.SampleRate <= 0 || spec.Channels < 1 {
		return fmt.Errorf("%w: invalid spec %s", audio.ErrWrite, spec)
	}
	return nil
}

func checkBuffer(spec audio.Spec, buf *goaudio.IntBuffer) error {
	if buf == nil || buf.Format == nil {
		return fmt.Errorf("%w: missing format", audio.ErrEmptyBuffer)
	}
	if buf.Format.NumChannels != spec.Channels || buf.Format.SampleRate != spec.SampleRate {
		return fmt.Errorf("%w: buffer is %d Hz, %d ch, want %s",
			audio.ErrFormatMismatch, buf.Format.SampleRate, buf.Format.NumChannels, spec)
	}
	if len(buf.Data)%spec.Channels != 0 {
		return audio.ErrInvalidDstSize
	}

	lo, hi := -(1 << (spec.BitsPerSample - 1)), 1<<(spec.BitsPerSample-1)-1
	for i, v := range buf.Data {
		if v < lo || v > hi {
			return fmt.Errorf("%w: %w: sample %d is %d, %d-bit range is [%d, %d]",
				audio.ErrWrite, ErrSampleOutOfRange, i, v, spec.BitsPerSample, lo, hi)
		}
	}

	return nil
}

func toUnsigned8(buf *goaudio.IntBuffer) *goaudio.IntBuffer {
	data := make([]int, len(buf.Data))
	for i, v := range buf.Data {
		data[i] = v + 128
	}
	return &goaudio.IntBuffer{Format: buf.Format, Data: data, SourceBitDepth: 8}
}
