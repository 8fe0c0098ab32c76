// Command cutblanc removes long silences from WAV recordings and turns short
// MP3 clips into ten second looped WAV files.
//
// Usage:
//
//	cutblanc [flags] <action> <input_file> <output_file>
//
// Actions:
//
//	cut      - remove silent runs from a WAV or AIFF file, appending to an existing output
//	convert  - fade and loop an MP3 or Ogg Vorbis file into a 16-bit WAV file
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command line args and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cmd, ctx := newRootCommand(stdout, stderr)
	cmd.SetArgs(args)

	if err := cmd.Execute(); err != nil {
		if errors.Is(err, errUsage) {
			printUsage(stdout)
			return 1
		}
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return 1
	}

	// A help flag is not a valid invocation either.
	if ctx.helpShown {
		return 1
	}

	return 0
}
