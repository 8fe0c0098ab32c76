// SPDX-License-Identifier: EPL-2.0

package wav_test

import (
	"fmt"
	"os"
	"path/filepath"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/cutblanc/audio"
	"github.com/ik5/cutblanc/formats/wav"
)

// Example_roundTrip shows encoding and then decoding.
func Example_roundTrip() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	spec := audio.Spec{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Format: audio.Int}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{-1000, -500, 0, 500, 1000},
	}

	path := filepath.Join(dir, "roundtrip.wav")
	if err := wav.Create(path, spec, buf); err != nil {
		fmt.Printf("Encode error: %v\n", err)
		return
	}

	f, err := os.Open(path)
	if err != nil {
		fmt.Println(err)
		return
	}
	defer f.Close()

	source, err := wav.Decoder{}.Decode(f)
	if err != nil {
		fmt.Printf("Decode error: %v\n", err)
		return
	}

	recovered, err := audio.ReadAll(source, audio.DefaultBufferSize)
	if err != nil {
		fmt.Println(err)
		return
	}

	fmt.Printf("Sample rate: %d Hz\n", source.SampleRate())
	fmt.Printf("Recovered: %v\n", recovered.Data)
	// Output:
	// Sample rate: 8000 Hz
	// Recovered: [-1000 -500 0 500 1000]
}

// Example_append shows Write creating a file and then appending to it.
func Example_append() {
	dir, err := os.MkdirTemp("", "wav-example")
	if err != nil {
		fmt.Println(err)
		return
	}
	defer os.RemoveAll(dir)

	spec := audio.Spec{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Format: audio.Int}
	path := filepath.Join(dir, "out.wav")

	for _, data := range [][]int{{1, 2}, {3, 4, 5}} {
		buf := &goaudio.IntBuffer{
			Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
			Data:   data,
		}
		appended, err := wav.Write(path, spec, buf)
		if err != nil {
			fmt.Println(err)
			return
		}
		fmt.Printf("appended=%v\n", appended)
	}

	info, _ := os.Stat(path)
	fmt.Printf("File size: %d bytes\n", info.Size())
	// Output:
	// appended=false
	// appended=true
	// File size: 54 bytes
}

// Example_outOfRange shows that samples are never clipped.
func Example_outOfRange() {
	spec := audio.Spec{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Format: audio.Int}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   []int{40000},
	}

	err := wav.Create(filepath.Join(os.TempDir(), "never-written.wav"), spec, buf)
	fmt.Println(err != nil)
	// Output: true
}
