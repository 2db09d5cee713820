package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/vearutop/pfm"
)

func newRMSECmd() *cobra.Command {
	var relative bool

	cmd := &cobra.Command{
		Use:   "rmse reference file...",
		Short: "Print the luminance RMSE of each file against the reference",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			ref, err := pfm.Open(args[0])
			if err != nil {
				return err
			}

			for _, p := range args[1:] {
				img, err := pfm.Open(p)
				if err != nil {
					warn(out, p, err)
					continue
				}
				m, err := pfm.Compare(img, ref)
				if err != nil {
					fmt.Fprintf(out, "%s -> %v\n", p, err)
					continue
				}
				if relative {
					fmt.Fprintf(out, "%s: RMSE = %v, relative = %v\n", p, m.RMSE, m.RelativeRMSE)
					continue
				}
				fmt.Fprintf(out, "%s: RMSE = %v\n", p, m.RMSE)
			}

			return nil
		},
	}

	cmd.Flags().BoolVar(&relative, "relative", false, "also print RMSE relative to the brightest reference pixel")

	return cmd
}
