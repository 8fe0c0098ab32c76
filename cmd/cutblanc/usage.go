package main

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
)

func printUsage(w io.Writer) {
	bold := lipgloss.NewRenderer(w).NewStyle().Bold(true)

	fmt.Fprintf(w, "%s:\n", bold.Render("USAGE"))
	fmt.Fprintf(w, "    %s [ACTION] [input_file] [output_file]\n", bold.Render("cutblanc"))
	fmt.Fprintf(w, "%s:\n", bold.Render("ACTIONS"))
	fmt.Fprintf(w, "    %s      to cut silences\n", bold.Render("- cut"))
	fmt.Fprintf(w, "    %s  to convert a mp3 to wav\n", bold.Render("- convert"))
	fmt.Fprintf(w, "%s:\n", bold.Render("FLAGS"))
	fmt.Fprintf(w, "    %s     print debug logs\n", bold.Render("-v, --verbose"))
	fmt.Fprintf(w, "    %s  keep a short trailing silence (cut)\n", bold.Render("--flush-trailing"))
}
