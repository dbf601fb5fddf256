// Command dominos solves Post correspondence problems with the deepsearch
// engine. The exit status is the verdict: 0 FOUND, 1 NO_SOLUTION,
// 2 INCONCLUSIVE, and 3 when the problem could not be run at all.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepsearch/space"
)

const exitFailure = 3

// verdictError carries a non-FOUND verdict out of cobra as an exit status.
type verdictError struct {
	verdict space.Verdict
}

func (e verdictError) Error() string { return e.verdict.String() }

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	root := newRootCmd()
	root.SetArgs(args)
	root.SetOut(stdout)
	root.SetErr(stderr)

	err := root.Execute()
	var ve verdictError
	switch {
	case err == nil:
		return 0
	case errors.As(err, &ve):
		return int(ve.verdict)
	default:
		fmt.Fprintln(stderr, "error:", err)
		return exitFailure
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "dominos",
		Short: "Solve domino (Post correspondence) problems by bounded search",
		Long: `dominos searches for a sequence of dominos whose top and bottom strings
spell the same word. It runs breadth-first search while the frontier fits
the frontier capacity, then falls back to iterative deepening, and gives up
once the total capacity of visited states is spent.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().String("config", "", "config file (default ~/.deepsearch/config.yaml)")
	root.PersistentFlags().String("log-level", "", "log level: debug, info, warn, error")

	root.AddCommand(
		newSolveCmd(),
		newBatchCmd(),
		newVersionCmd(),
	)

	return root
}
