package main

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/common/expfmt"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/deepsearch/dominos"
	"github.com/katalvlaran/deepsearch/engine"
	"github.com/katalvlaran/deepsearch/internal/config"
	"github.com/katalvlaran/deepsearch/internal/logging"
	"github.com/katalvlaran/deepsearch/metrics"
	"github.com/katalvlaran/deepsearch/problem"
	"github.com/katalvlaran/deepsearch/space"
)

type solveOptions struct {
	frontier  int
	total     int
	maxRounds int
	metrics   bool
	track     bool
}

func addSolveFlags(cmd *cobra.Command, opts *solveOptions) {
	f := cmd.Flags()
	f.IntVar(&opts.frontier, "frontier", 0, "BFS frontier capacity")
	f.IntVar(&opts.total, "total", 0, "total number of states to visit")
	f.IntVar(&opts.maxRounds, "max-rounds", 0, "cap on iterative-deepening rounds (0 = none)")
	f.BoolVar(&opts.metrics, "metrics", false, "print search metrics after the results")
	f.BoolVar(&opts.track, "track", false, "print the state after each domino of a solution")
}

func newSolveCmd() *cobra.Command {
	var opts solveOptions
	cmd := &cobra.Command{
		Use:   "solve FILE",
		Short: "Search a problem file for a matching domino sequence",
		Long: `Search a problem file for a matching domino sequence.

FILE is either the plain text format (frontier capacity, total capacity,
then one "<index> <top> <bottom>" line per domino) or YAML when it ends in
.yaml or .yml. Budgets come from the config file, then the problem file,
then the flags below, each overriding the previous.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSolver(cmd, opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			verdict, err := s.solve(args[0], out)
			if err != nil {
				return err
			}
			if err := s.writeMetrics(out); err != nil {
				return err
			}
			if verdict != space.Found {
				return verdictError{verdict: verdict}
			}

			return nil
		},
	}
	addSolveFlags(cmd, &opts)

	return cmd
}

// solver holds what every solved file shares: settings, logger and metrics.
// solve may be called from several goroutines.
type solver struct {
	cfg     *config.Config
	opts    solveOptions
	changed func(name string) bool
	logger  *slog.Logger

	reg       *prometheus.Registry
	collector *metrics.Collector
}

func newSolver(cmd *cobra.Command, opts solveOptions) (*solver, error) {
	flags := cmd.Flags()
	cfgPath, _ := flags.GetString("config")
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return nil, err
	}
	level := cfg.Logging.Level
	if l, _ := flags.GetString("log-level"); l != "" {
		level = l
	}

	s := &solver{
		cfg:     cfg,
		opts:    opts,
		changed: flags.Changed,
		logger:  logging.New(level, cmd.ErrOrStderr()),
	}
	if opts.metrics {
		s.reg = prometheus.NewRegistry()
		if s.collector, err = metrics.NewCollector(s.reg); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// budgets resolves config < problem file < flags.
func (s *solver) budgets(p *problem.Problem) (frontier, total, rounds int) {
	frontier, total, rounds = s.cfg.Search.FrontierCapacity, s.cfg.Search.TotalCapacity, s.cfg.Search.MaxRounds
	if p.FrontierCapacity != nil {
		frontier = *p.FrontierCapacity
	}
	if p.TotalCapacity != nil {
		total = *p.TotalCapacity
	}
	if s.changed("frontier") {
		frontier = s.opts.frontier
	}
	if s.changed("total") {
		total = s.opts.total
	}
	if s.changed("max-rounds") {
		rounds = s.opts.maxRounds
	}

	return frontier, total, rounds
}

// solve searches the problem at path and writes its report to w.
func (s *solver) solve(path string, w io.Writer) (space.Verdict, error) {
	p, err := problem.Load(path)
	if err != nil {
		return 0, err
	}
	sp, err := p.Space()
	if err != nil {
		return 0, fmt.Errorf("%s: %w", path, err)
	}

	frontier, total, rounds := s.budgets(p)
	logger := s.logger.With("file", path)
	engineOpts := []engine.Option{
		engine.WithFrontierCapacity(frontier),
		engine.WithTotalCapacity(total),
		engine.WithMaxRounds(rounds),
		engine.WithLogger(logger),
	}
	if s.collector != nil {
		engineOpts = append(engineOpts, engine.WithObserver(s.collector))
	}
	e, err := engine.New[dominos.State](sp, engineOpts...)
	if err != nil {
		return 0, err
	}

	logger.Info("solving", "dominos", len(sp.Dominos()),
		"frontier_capacity", frontier, "total_capacity", total, "max_rounds", rounds)
	node, verdict := e.Search()
	if err := report(w, sp, node, verdict, e.Stats(), s.opts.track); err != nil {
		return 0, err
	}

	return verdict, nil
}

func (s *solver) writeMetrics(w io.Writer) error {
	if s.reg == nil {
		return nil
	}
	families, err := s.reg.Gather()
	if err != nil {
		return fmt.Errorf("gathering metrics: %w", err)
	}
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			return fmt.Errorf("writing metrics: %w", err)
		}
	}

	return nil
}

func report(w io.Writer, sp *dominos.Space, node *space.Node[dominos.State], v space.Verdict, st engine.Stats, track bool) error {
	switch v {
	case space.Found:
		if track {
			states, err := sp.Trace(node.Path)
			if err != nil {
				return err
			}
			for i, id := range node.Path.IDs() {
				fmt.Fprintf(w, "%d: domino %d -> %s\n", i+1, id, states[i])
			}
		}
		top, bottom, err := sp.Matching(node.Path)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "FOUND path=%s top=%s bottom=%s\n", node.Path, top, bottom)
	case space.NoSolution:
		fmt.Fprintln(w, "NO_SOLUTION")
	default:
		fmt.Fprintf(w, "INCONCLUSIVE visited=%d\n", st.Visited)
	}

	return nil
}
