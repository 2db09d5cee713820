package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pfmtool",
		Short:         "Merge and score PF float renders",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(
		newMergeCmd(),
		newRMSECmd(),
		newInfoCmd(),
		newPreviewCmd(),
		newImportCmd(),
	)
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fail(err)
	}
}

func fail(err error) {
	fmt.Fprintln(os.Stderr, "error:", err)
	os.Exit(1)
}
