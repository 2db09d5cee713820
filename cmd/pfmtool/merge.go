package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"github.com/vearutop/pfm"
)

func newMergeCmd() *cobra.Command {
	var (
		output         string
		allowTruncated bool
	)

	cmd := &cobra.Command{
		Use:   "merge [-o output.pfm] file...",
		Short: "Average partial renders weighted by their iteration counts",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			var opts []func(*pfm.DecodeOptions)
			if allowTruncated {
				opts = append(opts, pfm.AllowTruncated)
			}

			img, err := pfm.MergeFiles(args, func(path string, in *pfm.Image, err error) {
				if err != nil {
					warn(out, path, err)
					return
				}
				fmt.Fprintf(out, "reading: %s [ %d x %d ] iters = %s\n", path, in.Width, in.Height, iterations(in))
			}, opts...)
			if err != nil {
				return err
			}
			if img.IsEmpty() {
				return errors.New("no readable images")
			}

			fmt.Fprintf(out, "writing: %s [ %d x %d ] iters = %s\n", output, img.Width, img.Height, iterations(img))
			return img.Save(output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "output.pfm", "output file, a .zst suffix enables compression")
	cmd.Flags().BoolVar(&allowTruncated, "allow-truncated", false, "zero-fill truncated pixel payloads instead of skipping the file")

	return cmd
}

func warn(w io.Writer, path string, err error) {
	switch {
	case errors.Is(err, pfm.ErrNotFound):
		fmt.Fprintf(w, "warn: file '%s' does not exist\n", path)
	case errors.Is(err, pfm.ErrGeometryMismatch):
		fmt.Fprintf(w, "warn: file '%s' has different dimensions\n", path)
	case errors.Is(err, pfm.ErrTruncatedPayload):
		fmt.Fprintf(w, "warn: file '%s' is truncated\n", path)
	default:
		fmt.Fprintf(w, "warn: file '%s' is not a PF file\n", path)
	}
}

func iterations(img *pfm.Image) string {
	if img.Iterations == 0 {
		return "unspecified"
	}
	return fmt.Sprint(img.Iterations)
}
