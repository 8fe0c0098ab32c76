package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	goaudio "github.com/go-audio/audio"

	"github.com/ik5/cutblanc/audio"
	"github.com/ik5/cutblanc/formats/wav"
)

func writeInput(t *testing.T, path string, data ...int) {
	t.Helper()

	spec := audio.Spec{SampleRate: 8000, Channels: 1, BitsPerSample: 16, Format: audio.Int}
	buf := &goaudio.IntBuffer{
		Format: &goaudio.Format{NumChannels: 1, SampleRate: 8000},
		Data:   data,
	}
	if err := wav.Create(path, spec, buf); err != nil {
		t.Fatalf("wav.Create(%s) error = %v", path, err)
	}
}

func assertUsage(t *testing.T, out string) {
	t.Helper()

	for _, want := range []string{
		"USAGE",
		"[ACTION] [input_file] [output_file]",
		"to cut silences",
		"to convert a mp3 to wav",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("usage missing %q:\n%s", want, out)
		}
	}
}

func TestRun_Usage(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{"no args", nil},
		{"unknown action", []string{"split", "in.wav", "out.wav"}},
		{"cut without output", []string{"cut", "in.wav"}},
		{"convert with extra arg", []string{"convert", "a.mp3", "b.wav", "c.wav"}},
		{"unknown flag", []string{"cut", "--fast", "in.wav", "out.wav"}},
		{"help action", []string{"help"}},
		{"help action with paths", []string{"help", "in.wav", "out.wav"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run(%q) = %d, want 1", tt.args, code)
			}
			assertUsage(t, stdout.String())
			if stderr.Len() != 0 {
				t.Errorf("stderr = %q, want empty", stderr.String())
			}
		})
	}
}

func TestRun_HelpFlags(t *testing.T) {
	t.Parallel()

	tests := [][]string{
		{"--help"},
		{"-h"},
		{"cut", "--help"},
		{"convert", "-h", "in.mp3", "out.wav"},
	}

	for _, args := range tests {
		t.Run(strings.Join(args, " "), func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			if code := run(args, &stdout, &stderr); code != 1 {
				t.Errorf("run(%q) = %d, want 1", args, code)
			}
			assertUsage(t, stdout.String())
			if n := strings.Count(stdout.String(), "ACTIONS"); n != 1 {
				t.Errorf("usage printed %d times, want once", n)
			}
		})
	}
}

func TestRun_Cut(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeInput(t, in, append(make([]int, 1500), 5000)...)

	var stdout, stderr bytes.Buffer
	if code := run([]string{"cut", in, out}, &stdout, &stderr); code != 0 {
		t.Fatalf("run(cut) = %d, want 0; stderr:\n%s", code, stderr.String())
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() != 46 {
		t.Errorf("output size = %d, want 46", info.Size())
	}

	logs := stderr.String()
	if !strings.Contains(logs, "INFO done") {
		t.Errorf("logs missing completion:\n%s", logs)
	}
	if strings.Contains(logs, "DEBUG") {
		t.Errorf("debug logs without --verbose:\n%s", logs)
	}
}

func TestRun_CutVerboseFlushTrailing(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	in := filepath.Join(dir, "in.wav")
	out := filepath.Join(dir, "out.wav")
	writeInput(t, in, 5000, 0, 0)

	var stdout, stderr bytes.Buffer
	code := run([]string{"-v", "cut", "--flush-trailing", in, out}, &stdout, &stderr)
	if code != 0 {
		t.Fatalf("run(cut) = %d, want 0; stderr:\n%s", code, stderr.String())
	}

	if !strings.Contains(stderr.String(), "DEBUG decoded input") {
		t.Errorf("verbose logs missing debug line:\n%s", stderr.String())
	}

	info, err := os.Stat(out)
	if err != nil {
		t.Fatalf("output not written: %v", err)
	}
	if info.Size() != 44+3*2 {
		t.Errorf("output size = %d, want %d", info.Size(), 44+3*2)
	}
}

func TestRun_Errors(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	garbage := filepath.Join(dir, "clip.mp3")
	if err := os.WriteFile(garbage, []byte("no frames in here"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name string
		args []string
	}{
		{"cut missing input", []string{"cut", filepath.Join(dir, "missing.wav"), filepath.Join(dir, "out.wav")}},
		{"convert invalid mp3", []string{"convert", garbage, filepath.Join(dir, "clip.wav")}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			if code := run(tt.args, &stdout, &stderr); code != 1 {
				t.Errorf("run(%q) = %d, want 1", tt.args, code)
			}
			if !strings.Contains(stderr.String(), "Error: ") {
				t.Errorf("stderr = %q, want an Error: line", stderr.String())
			}
			if strings.Contains(stdout.String(), "USAGE") {
				t.Errorf("usage printed for a runtime error:\n%s", stdout.String())
			}
		})
	}
}
