package audio

import (
	"testing"

	goaudio "github.com/go-audio/audio"
)

func TestSpec_Equal(t *testing.T) {
	t.Parallel()

	base := Spec{SampleRate: 44100, Channels: 2, BitsPerSample: 16, Format: Int}

	tests := []struct {
		name  string
		other Spec
		want  bool
	}{
		{"same", base, true},
		{"rate", Spec{48000, 2, 16, Int}, false},
		{"channels", Spec{44100, 1, 16, Int}, false},
		{"bits", Spec{44100, 2, 24, Int}, false},
		{"format", Spec{44100, 2, 16, Float}, false},
	}

	for _, tt := range tests {
		if got := base.Equal(tt.other); got != tt.want {
			t.Errorf("%s: Equal(%v) = %v, want %v", tt.name, tt.other, got, tt.want)
		}
	}
}

func TestSpec_String(t *testing.T) {
	t.Parallel()

	got := Spec{SampleRate: 48000, Channels: 2, BitsPerSample: 16, Format: Int}.String()
	want := "48000 Hz, 2 ch, 16-bit int"
	if got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}

	if got := SampleFormat(7).String(); got != "SampleFormat(7)" {
		t.Errorf("SampleFormat(7).String() = %q", got)
	}
}

func TestSpecOf(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format:         &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		SourceBitDepth: 24,
	}

	want := Spec{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Format: Int}
	if got := SpecOf(buf, 16); got != want {
		t.Errorf("SpecOf() = %v, want %v", got, want)
	}
}

func TestFramesAndSeconds(t *testing.T) {
	t.Parallel()

	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 2, SampleRate: 4},
		Data:   make([]int, 16),
	}

	if got := Frames(buf); got != 8 {
		t.Errorf("Frames() = %d, want 8", got)
	}
	if got := Seconds(buf); got != 2 {
		t.Errorf("Seconds() = %v, want 2", got)
	}
	if got := Frames(nil); got != 0 {
		t.Errorf("Frames(nil) = %d, want 0", got)
	}
	if got := Seconds(nil); got != 0 {
		t.Errorf("Seconds(nil) = %v, want 0", got)
	}
}
