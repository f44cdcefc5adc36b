// Package wcc defines options, result types, and sentinel errors for the
// weakly-connected-components engine.
package wcc

import (
	"context"
	"errors"
	"fmt"
	"runtime"

	"github.com/katalvlaran/weakcc/labelstore"
	"github.com/katalvlaran/weakcc/partition"
)

// Sentinel errors for component computation.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("wcc: invalid option supplied")

	// ErrRoundLimit is returned when the round budget is exhausted before
	// convergence. The wrapped message carries the last completed round.
	ErrRoundLimit = errors.New("wcc: round limit exceeded before convergence")
)

// DefaultChunkSize is the number of edges handed to one proposal worker.
const DefaultChunkSize = 4096

// RoundInfo describes one completed propagation round.
type RoundInfo struct {
	// Round is the 1-based round number.
	Round int

	// ActiveGroups is the number of groups that entered this round.
	ActiveGroups int

	// Lowered is the number of labels lowered at this round's barrier,
	// across all active groups. Zero means the run converged.
	Lowered int
}

// Option configures component computation via functional arguments.
// An invalid Option is recorded internally and surfaced as
// ErrOptionViolation when Compute is invoked.
type Option func(*Options)

// Options holds parameters for Compute and ComputeSets.
type Options struct {
	// Ctx allows cancellation between rounds; a cancelled run surfaces
	// no partial result.
	Ctx context.Context

	// Workers bounds the parallel proposal workers per round.
	Workers int

	// ChunkSize is the number of edges per proposal work unit.
	ChunkSize int

	// MaxRounds caps the number of propagation rounds. Zero selects the
	// proven bound: the vertex count of the largest group, plus the
	// final all-quiet round that detects convergence.
	MaxRounds int

	// Store holds labels during computation. Nil selects a fresh
	// in-memory store per invocation. A caller-supplied store must be
	// empty and remains the caller's to close.
	Store labelstore.Store

	// Unknown is forwarded to the partitioner: reject or adopt edge
	// endpoints missing from their group's vertex rows.
	Unknown partition.UnknownPolicy

	// OnRound is called after each round's barrier commit.
	OnRound func(RoundInfo)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - Workers = GOMAXPROCS
//   - ChunkSize = DefaultChunkSize
//   - automatic round budget (MaxRounds == 0)
//   - fresh in-memory label store
//   - RejectUnknown referential-integrity policy
//   - no-op OnRound hook.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		Workers:   runtime.GOMAXPROCS(0),
		ChunkSize: DefaultChunkSize,
		Unknown:   partition.RejectUnknown,
		OnRound:   func(RoundInfo) {},
	}
}

// WithContext sets a custom context for cancellation between rounds.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithWorkers bounds the parallel proposal workers.
//
//	n > 0: use n workers
//	n == 0: explicit GOMAXPROCS default
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: Workers cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.Workers = runtime.GOMAXPROCS(0)
		default:
			o.Workers = n
		}
	}
}

// WithChunkSize sets the number of edges per proposal work unit, with the
// same zero-means-default and negative-is-violation contract as WithWorkers.
func WithChunkSize(n int) Option {
	return func(o *Options) {
		switch {
		case n < 0:
			o.err = fmt.Errorf("%w: ChunkSize cannot be negative (%d)", ErrOptionViolation, n)
		case n == 0:
			o.ChunkSize = DefaultChunkSize
		default:
			o.ChunkSize = n
		}
	}
}

// WithMaxRounds caps the propagation rounds. Zero restores the automatic
// bound; a negative cap is a violation.
func WithMaxRounds(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxRounds cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.MaxRounds = n
	}
}

// WithStore computes against the given label store instead of a fresh
// in-memory one. Use a labelstore.BadgerStore for label tables larger
// than working memory.
func WithStore(s labelstore.Store) Option {
	return func(o *Options) {
		if s != nil {
			o.Store = s
		}
	}
}

// WithUnknownPolicy selects how edges referencing vertices absent from
// their group are treated: partition.RejectUnknown fails the invocation,
// partition.AdoptUnknown adds the vertex.
func WithUnknownPolicy(p partition.UnknownPolicy) Option {
	return func(o *Options) {
		switch p {
		case partition.RejectUnknown, partition.AdoptUnknown:
			o.Unknown = p
		default:
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, p)
		}
	}
}

// WithOnRound registers a callback observing each completed round.
func WithOnRound(fn func(RoundInfo)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnRound = fn
		}
	}
}

// Mapping is one output row: a vertex, its final component id, and the
// group it was computed in.
type Mapping struct {
	Vertex    int64
	Component int64
	Group     partition.GroupKey
}

// Result holds the converged mapping and run statistics.
//
//   - Mappings: one row per vertex, sorted by (Group, Vertex) so equal
//     inputs always produce byte-equal output.
//   - Rounds: propagation rounds executed, including the final round that
//     observed no change.
//   - Components: number of distinct components per group.
type Result struct {
	Mappings   []Mapping
	Rounds     int
	Components map[partition.GroupKey]int
}
