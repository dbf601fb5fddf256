package main

import (
	"bytes"
	"fmt"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/deepsearch/space"
)

func newBatchCmd() *cobra.Command {
	var (
		opts solveOptions
		jobs int
	)
	cmd := &cobra.Command{
		Use:   "batch FILE...",
		Short: "Solve several problem files concurrently",
		Long: `Solve several problem files concurrently, one engine per file, and print
each report under a "==> FILE <==" header in argument order. The exit status
is the worst verdict: INCONCLUSIVE over NO_SOLUTION over FOUND.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if jobs < 1 {
				return fmt.Errorf("--jobs must be at least 1, got %d", jobs)
			}
			s, err := newSolver(cmd, opts)
			if err != nil {
				return err
			}

			reports := make([]bytes.Buffer, len(args))
			verdicts := make([]space.Verdict, len(args))
			g, ctx := errgroup.WithContext(cmd.Context())
			g.SetLimit(jobs)
			for i, path := range args {
				g.Go(func() error {
					if err := ctx.Err(); err != nil {
						return err
					}
					v, err := s.solve(path, &reports[i])
					if err != nil {
						return fmt.Errorf("%s: %w", path, err)
					}
					verdicts[i] = v

					return nil
				})
			}
			if err := g.Wait(); err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			worst := space.Found
			for i, path := range args {
				fmt.Fprintf(out, "==> %s <==\n%s", path, reports[i].String())
				worst = max(worst, verdicts[i])
			}
			if err := s.writeMetrics(out); err != nil {
				return err
			}
			if worst != space.Found {
				return verdictError{verdict: worst}
			}

			return nil
		},
	}
	addSolveFlags(cmd, &opts)
	cmd.Flags().IntVar(&jobs, "jobs", 4, "number of files solved at once")

	return cmd
}
