package main

import (
	"errors"
	"io"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/ik5/cutblanc"
	"github.com/ik5/cutblanc/internal/logging"
)

// errUsage makes run print the usage text and fail.
var errUsage = errors.New("invalid usage")

type commandContext struct {
	verbose bool
	stderr  io.Writer

	// helpShown is set when a help flag printed the usage text
	helpShown bool
}

func newRootCommand(stdout, stderr io.Writer) (*cobra.Command, *commandContext) {
	ctx := &commandContext{stderr: stderr}

	root := &cobra.Command{
		Use:           "cutblanc",
		Short:         "Cut silences from WAV files and convert MP3 clips to looped WAV",
		Args:          cobra.ArbitraryArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(*cobra.Command, []string) error {
			return errUsage
		},
	}
	root.CompletionOptions.DisableDefaultCmd = true
	root.SetOut(stdout)
	root.SetErr(stderr)
	root.SetHelpFunc(func(c *cobra.Command, _ []string) {
		ctx.helpShown = true
		printUsage(c.OutOrStdout())
	})
	// "help" is not an action, so it takes the usage path like any other.
	root.SetHelpCommand(&cobra.Command{
		Use:    "help",
		Hidden: true,
		Args:   cobra.ArbitraryArgs,
		RunE: func(*cobra.Command, []string) error {
			return errUsage
		},
	})
	root.SetFlagErrorFunc(func(*cobra.Command, error) error {
		return errUsage
	})

	root.PersistentFlags().BoolVarP(&ctx.verbose, "verbose", "v", false, "print debug logs")

	root.AddCommand(newCutCommand(ctx))
	root.AddCommand(newConvertCommand(ctx))

	return root, ctx
}

// actionArgs accepts exactly an input and an output path.
func actionArgs(_ *cobra.Command, args []string) error {
	if len(args) != 2 {
		return errUsage
	}
	return nil
}

func (c *commandContext) logger() *slog.Logger {
	level := "info"
	if c.verbose {
		level = "debug"
	}
	return logging.New(logging.Options{Level: level, Writer: c.stderr})
}

func (c *commandContext) processor(settings cutblanc.Settings) (*cutblanc.Processor, error) {
	return cutblanc.NewProcessor(settings, c.logger())
}
