package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vearutop/pfm"
)

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info file...",
		Short: "Print image metadata",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()
			for _, p := range args {
				img, err := pfm.Open(p)
				if err != nil {
					warn(out, p, err)
					continue
				}
				fmt.Fprintf(out, "%s: [ %d x %d ] iters = %s, scale = %v, %s\n",
					p, img.Width, img.Height, iterations(img), img.Scale, pfm.OrderFromScale(img.Scale))
			}
			return nil
		},
	}
}
