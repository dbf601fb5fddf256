package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepsearch"
)

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "dominos version %s\n", deepsearch.Version)
		},
	}
}
