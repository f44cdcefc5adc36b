// Package labelstore defines the Store contract and sentinel errors for
// label-table implementations.
package labelstore

import (
	"errors"

	"github.com/katalvlaran/weakcc/partition"
)

// Sentinel errors for label stores.
var (
	// ErrUnknownVertex is returned when an operation references a
	// (group, vertex) pair that was never initialized.
	ErrUnknownVertex = errors.New("labelstore: vertex not initialized")

	// ErrDirRequired is returned when an on-disk store is opened without
	// a directory.
	ErrDirRequired = errors.New("labelstore: directory required for on-disk store")

	// ErrClosed is returned when a store is used after Close.
	ErrClosed = errors.New("labelstore: store is closed")
)

// Store is the label table: for every (group, vertex) pair it holds the
// current best-known component label. All implementations obey the
// monotonic-decrease discipline — a label is replaced only by a strictly
// smaller value, and only through MergeMin.
type Store interface {
	// InitGroup registers group g and assigns every id the identity
	// label, label(g, id) = id. Each group is initialized at most once
	// per store instance.
	InitGroup(g partition.GroupKey, ids []int64) error

	// ReadBatch fills out with the current labels of ids in group g.
	// Safe for concurrent use with other ReadBatch and Scan calls.
	ReadBatch(g partition.GroupKey, ids []int64, out map[int64]int64) error

	// MergeMin applies proposals to group g: for each (vertex, label)
	// pair the stored label is replaced iff the proposal is strictly
	// smaller. Returns the number of labels lowered.
	MergeMin(g partition.GroupKey, proposals map[int64]int64) (int, error)

	// Scan visits every (group, vertex, label) triple. Visit order is
	// implementation-defined. Returning an error from fn aborts the scan.
	Scan(fn func(g partition.GroupKey, vertex, label int64) error) error

	// Len reports the number of (group, vertex) pairs held.
	Len() int

	// Close releases any resources behind the store.
	Close() error
}
