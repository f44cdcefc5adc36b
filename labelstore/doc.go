// Package labelstore holds the current component-label assignment for
// every (group, vertex) pair during computation.
//
// What:
//
//   - Store: the label-table contract — identity initialization
//     (label(g, v) = v), batched reads, a monotonic-min batched merge that
//     only ever lowers a label, and a full scan for result assembly.
//   - MemStore: map-backed implementation for graphs that fit in memory.
//   - BadgerStore: BadgerDB-backed implementation for label tables larger
//     than working memory, with bounded write batches.
//
// Why:
//
//   - The merge discipline is the termination argument: labels start at
//     their own vertex id, every write must be strictly smaller, and
//     int64 is well-founded, so the label population can only change a
//     finite number of times.
//   - MergeMin reports how many labels it lowered, which is exactly the
//     convergence signal the round loop needs — zero lowered labels in a
//     round means the group reached its fixpoint.
//
// Concurrency contract: ReadBatch and Scan may run concurrently with each
// other; InitGroup and MergeMin are serialized by the caller (the engine
// invokes them only at round barriers).
//
// Complexity (n = batch size):
//
//   - MemStore: ReadBatch O(n), MergeMin O(n), Scan O(total).
//   - BadgerStore: ReadBatch O(n log N), MergeMin O(n log N), Scan O(N).
//
// Errors:
//
//   - ErrUnknownVertex: a read or merge referenced a vertex that was never
//     initialized in its group.
//   - ErrDirRequired: an on-disk BadgerStore was opened without a directory.
//   - ErrClosed: the store was used after Close.
package labelstore
