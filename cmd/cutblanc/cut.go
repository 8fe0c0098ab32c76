package main

import (
	"github.com/spf13/cobra"

	"github.com/ik5/cutblanc"
)

func newCutCommand(ctx *commandContext) *cobra.Command {
	var flushTrailing bool

	cmd := &cobra.Command{
		Use:   "cut <input_file> <output_file>",
		Short: "Remove long silences, appending to the output when it exists",
		Args:  actionArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			settings := cutblanc.DefaultSettings()
			settings.FlushTrailingSilence = flushTrailing

			p, err := ctx.processor(settings)
			if err != nil {
				return err
			}
			return p.Cut(args[0], args[1])
		},
	}

	cmd.Flags().BoolVar(&flushTrailing, "flush-trailing", false, "keep a short silent run at the end of the input")

	return cmd
}
