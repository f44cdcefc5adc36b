// Package partition defines row types, options, and sentinel errors
// for splitting bulk graph input into per-group working sets.
package partition

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for partitioning.
var (
	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("partition: invalid option supplied")

	// ErrNilSource is returned when a nil vertex or edge source is passed.
	ErrNilSource = errors.New("partition: nil input source")

	// ErrUnknownEndpoint is returned under RejectUnknown when an edge
	// references a vertex id absent from the vertex rows of its group.
	ErrUnknownEndpoint = errors.New("partition: edge endpoint not in vertex set")

	// ErrColumnMissing is returned when a configured column is absent
	// from a record.
	ErrColumnMissing = errors.New("partition: record column missing")

	// ErrColumnType is returned when a record column holds a value of an
	// unsupported type for its role.
	ErrColumnType = errors.New("partition: record column has unsupported type")
)

// GroupKey discriminates independent subgraphs. Two rows with different
// group keys never influence each other. The zero value NoGroup denotes
// an ungrouped run where all rows share one implicit group.
type GroupKey string

// NoGroup is the GroupKey of rows that carry no discriminator.
const NoGroup GroupKey = ""

// groupKeySep separates the parts of a composite group key. Parts have
// occurrences of the separator and the escape rune escaped, so distinct
// part slices always encode to distinct keys.
const (
	groupKeySep    = "\x1f"
	groupKeyEscape = "\x1b"
)

var groupKeyEscaper = strings.NewReplacer(
	groupKeyEscape, groupKeyEscape+groupKeyEscape,
	groupKeySep, groupKeyEscape+groupKeySep,
)

// MakeGroupKey builds a GroupKey from one or more discriminator parts.
// The encoding is injective: MakeGroupKey("a","b") != MakeGroupKey("ab").
// Calling it with no parts yields NoGroup.
func MakeGroupKey(parts ...string) GroupKey {
	if len(parts) == 0 {
		return NoGroup
	}
	escaped := make([]string, len(parts))
	for i, p := range parts {
		escaped[i] = groupKeyEscaper.Replace(p)
	}
	return GroupKey(strings.Join(escaped, groupKeySep))
}

// Vertex is one row of the vertex collection: an integer identifier,
// unique within its group, plus the group it belongs to.
type Vertex struct {
	ID    int64
	Group GroupKey
}

// Edge is one row of the edge collection: an ordered (Src, Dest) pair
// treated as undirected for connectivity, plus the group it belongs to.
// Duplicate edges and self-loops are valid rows.
type Edge struct {
	Src   int64
	Dest  int64
	Group GroupKey
}

// VertexSource is a pull stream of vertex rows. Next returns the next row
// and true, or a zero row and false once the stream is exhausted.
type VertexSource interface {
	Next() (Vertex, bool, error)
}

// EdgeSource is a pull stream of edge rows, with the same Next contract
// as VertexSource.
type EdgeSource interface {
	Next() (Edge, bool, error)
}

type vertexSliceSource struct {
	rows []Vertex
	pos  int
}

func (s *vertexSliceSource) Next() (Vertex, bool, error) {
	if s.pos >= len(s.rows) {
		return Vertex{}, false, nil
	}
	v := s.rows[s.pos]
	s.pos++
	return v, true, nil
}

type edgeSliceSource struct {
	rows []Edge
	pos  int
}

func (s *edgeSliceSource) Next() (Edge, bool, error) {
	if s.pos >= len(s.rows) {
		return Edge{}, false, nil
	}
	e := s.rows[s.pos]
	s.pos++
	return e, true, nil
}

// VertexSlice adapts an in-memory slice to a VertexSource.
func VertexSlice(rows []Vertex) VertexSource { return &vertexSliceSource{rows: rows} }

// EdgeSlice adapts an in-memory slice to an EdgeSource.
func EdgeSlice(rows []Edge) EdgeSource { return &edgeSliceSource{rows: rows} }

// UnknownPolicy selects how Partition treats an edge endpoint that is
// absent from the vertex rows of the edge's group.
type UnknownPolicy int

const (
	// RejectUnknown fails the whole invocation with ErrUnknownEndpoint,
	// identifying the offending edge. Default.
	RejectUnknown UnknownPolicy = iota

	// AdoptUnknown silently adds the missing endpoint to the group's
	// vertex set, so it participates in propagation and in the output.
	AdoptUnknown
)

// Option configures partitioning via functional arguments. An invalid
// Option is recorded internally and surfaced as ErrOptionViolation when
// Partition is invoked.
type Option func(*Options)

// Options holds parameters for Partition.
type Options struct {
	// Unknown selects the referential-integrity policy toward edges
	// naming vertices absent from their group.
	Unknown UnknownPolicy

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with RejectUnknown.
func DefaultOptions() Options {
	return Options{Unknown: RejectUnknown}
}

// WithUnknownPolicy selects the referential-integrity policy.
func WithUnknownPolicy(p UnknownPolicy) Option {
	return func(o *Options) {
		switch p {
		case RejectUnknown, AdoptUnknown:
			o.Unknown = p
		default:
			o.err = fmt.Errorf("%w: unknown policy %d", ErrOptionViolation, p)
		}
	}
}

// WorkingSet is one group's share of the input: its known vertex ids
// (sorted ascending, deduplicated) and its edges in arrival order.
type WorkingSet struct {
	Group    GroupKey
	Vertices []int64
	Edges    [][2]int64
}
