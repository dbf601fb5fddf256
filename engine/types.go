package engine

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/katalvlaran/deepsearch/bfs"
	"github.com/katalvlaran/deepsearch/space"
)

// Default budgets of the dominos command.
const (
	DefaultFrontierCapacity = 100
	DefaultTotalCapacity    = 1000

	// MaxFrontierCapacity bounds the memory held by the BFS queue.
	MaxFrontierCapacity = bfs.MaxFrontierCapacity
)

var (
	// ErrSpaceNil is returned when New receives a nil state space.
	ErrSpaceNil = errors.New("engine: state space is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("engine: invalid option supplied")
)

// Phase tells which strategy an Engine is running.
type Phase int

const (
	// PhaseIdle: no search has started.
	PhaseIdle Phase = iota
	// PhaseBreadth: the frontier-bounded BFS is running.
	PhaseBreadth
	// PhaseDeepening: iterative deepening over the residual frontier is running.
	PhaseDeepening
	// PhaseDone: Search returned a verdict.
	PhaseDone
)

// String returns the lower-case phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseBreadth:
		return "breadth"
	case PhaseDeepening:
		return "deepening"
	case PhaseDone:
		return "done"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// Observer receives search events. Implementations must be cheap; they run
// inline with the search. metrics.Collector is the stock implementation.
type Observer interface {
	// Visited is called once per freshly counted state.
	Visited(phase Phase)
	// FrontierExceeded is called when BFS stops on its frontier bound.
	FrontierExceeded(queued int)
	// Round is called after every iterative-deepening round.
	Round(depth, visited int)
	// Finished is called when Search returns.
	Finished(v space.Verdict, visited int)
}

type nopObserver struct{}

func (nopObserver) Visited(Phase)               {}
func (nopObserver) FrontierExceeded(int)        {}
func (nopObserver) Round(int, int)              {}
func (nopObserver) Finished(space.Verdict, int) {}

// Option configures an Engine.
type Option func(*Options)

// Options holds the budgets and collaborators of an Engine.
type Options struct {
	// FrontierCapacity is the maximum number of queued BFS nodes,
	// clamped to MaxFrontierCapacity.
	FrontierCapacity int

	// TotalCapacity is the maximum number of states counted across BFS and DFS.
	TotalCapacity int

	// MaxRounds caps iterative-deepening rounds; 0 means no cap.
	MaxRounds int

	// Logger receives phase transitions at debug level.
	Logger *slog.Logger

	// Observer receives per-state and per-round events.
	Observer Observer

	err error
}

// DefaultOptions returns the default budgets, a discarding
// logger and a no-op observer.
func DefaultOptions() Options {
	return Options{
		FrontierCapacity: DefaultFrontierCapacity,
		TotalCapacity:    DefaultTotalCapacity,
		Observer:         nopObserver{},
	}
}

// WithFrontierCapacity sets the BFS frontier bound. Values above
// MaxFrontierCapacity are clamped; negative values are rejected.
func WithFrontierCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: frontier capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.FrontierCapacity = min(n, MaxFrontierCapacity)
	}
}

// WithTotalCapacity sets the total exploration budget.
func WithTotalCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: total capacity cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.TotalCapacity = n
	}
}

// WithMaxRounds caps iterative-deepening rounds (0 = no cap).
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: max rounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithLogger sets the logger. A nil logger keeps the default.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithObserver sets the event observer. A nil observer keeps the default.
func WithObserver(obs Observer) Option {
	return func(o *Options) {
		if obs != nil {
			o.Observer = obs
		}
	}
}

// Stats is a snapshot of an Engine's bookkeeping.
type Stats struct {
	Phase            Phase
	Visited          int
	TotalCapacity    int
	FrontierCapacity int
	BFSStates        int
	DFSStates        int
	Frontier         int
	Rounds           int
}
