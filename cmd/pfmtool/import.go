package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vearutop/pfm"
)

func newImportCmd() *cobra.Command {
	var (
		inPath, outPath string
		iters           int
		srgb            bool
	)

	cmd := &cobra.Command{
		Use:   "import -i input.tiff -o output.pfm",
		Short: "Convert a TIFF reference image to PF",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if inPath == "" || outPath == "" {
				return errors.New("missing required arguments")
			}
			if iters < 0 {
				return errors.New("iteration count must not be negative")
			}

			data, err := os.ReadFile(filepath.Clean(inPath))
			if err != nil {
				return err
			}
			img, err := pfm.DecodeTIFF(data, srgb)
			if err != nil {
				return err
			}
			img.Iterations = iters

			fmt.Fprintf(cmd.OutOrStdout(), "writing: %s [ %d x %d ] iters = %s\n", outPath, img.Width, img.Height, iterations(img))
			return img.Save(outPath)
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input TIFF")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output PF image")
	cmd.Flags().IntVar(&iters, "iters", 0, "iteration count annotation, 0 leaves it unspecified")
	cmd.Flags().BoolVar(&srgb, "srgb", false, "linearize sRGB-encoded input")

	return cmd
}
