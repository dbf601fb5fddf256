package iddfs

import (
	"errors"
	"fmt"
)

// Sentinel errors for driver construction.
var (
	// ErrWalkerNil is returned when no DFS walker is supplied.
	ErrWalkerNil = errors.New("iddfs: dfs walker is nil")

	// ErrSessionNil is returned when no session is supplied.
	ErrSessionNil = errors.New("iddfs: session is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("iddfs: invalid option supplied")
)

// Option configures the Driver.
type Option func(*Options)

// Options holds the driver's tunables.
type Options struct {
	// MaxRounds caps the number of deepening rounds; 0 means no cap.
	// Hitting the cap reports Inconclusive.
	MaxRounds int

	// OnRound is called after each completed round with its depth bound
	// and the total visited count at the end of the round.
	OnRound func(depth, visited int)

	err error
}

// DefaultOptions returns Options with no round cap and a no-op hook.
func DefaultOptions() Options {
	return Options{
		MaxRounds: 0,
		OnRound:   func(int, int) {},
	}
}

// WithMaxRounds caps the number of rounds.
//
//	n > 0: at most n rounds
//	n == 0: no cap
//	n < 0: ErrOptionViolation
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithOnRound registers a per-round callback.
func WithOnRound(fn func(depth, visited int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}
