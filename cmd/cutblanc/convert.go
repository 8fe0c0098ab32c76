package main

import (
	"github.com/spf13/cobra"

	"github.com/ik5/cutblanc"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert <input_file> <output_file>",
		Short: "Fade and loop an MP3 clip into a 10 second WAV file",
		Args:  actionArgs,
		RunE: func(_ *cobra.Command, args []string) error {
			p, err := ctx.processor(cutblanc.DefaultSettings())
			if err != nil {
				return err
			}
			return p.Convert(args[0], args[1])
		},
	}
}
