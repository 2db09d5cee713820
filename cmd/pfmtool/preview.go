package main

import (
	"errors"
	"fmt"
	"image/png"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/vearutop/pfm"
)

func newPreviewCmd() *cobra.Command {
	var (
		inPath, outPath     string
		maxWidth, maxHeight uint
		exposure            float32
	)

	cmd := &cobra.Command{
		Use:   "preview -i input.pfm -o output.png",
		Short: "Render a downscaled sRGB PNG preview",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) (err error) {
			if inPath == "" || outPath == "" {
				return errors.New("missing required arguments")
			}

			img, err := pfm.Open(inPath)
			if err != nil {
				return err
			}
			thumb, err := pfm.Preview(img, maxWidth, maxHeight, exposure)
			if err != nil {
				return err
			}

			f, err := os.Create(filepath.Clean(outPath))
			if err != nil {
				return err
			}
			defer func() {
				if clErr := f.Close(); clErr != nil && err == nil {
					err = clErr
				}
			}()

			if err := png.Encode(f, thumb); err != nil {
				return err
			}

			b := thumb.Bounds()
			fmt.Fprintf(cmd.OutOrStdout(), "writing: %s [ %d x %d ]\n", outPath, b.Dx(), b.Dy())
			return nil
		},
	}

	cmd.Flags().StringVarP(&inPath, "input", "i", "", "input PF image")
	cmd.Flags().StringVarP(&outPath, "output", "o", "", "output PNG")
	cmd.Flags().UintVar(&maxWidth, "max-width", 512, "maximum preview width")
	cmd.Flags().UintVar(&maxHeight, "max-height", 512, "maximum preview height")
	cmd.Flags().Float32Var(&exposure, "exposure", 0, "exposure adjustment in stops")

	return cmd
}
