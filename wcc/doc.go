// Package wcc computes weakly connected components of bulk relational
// graph data by iterative min-label propagation.
//
// What:
//
//   - Compute ingests vertex and edge rows (optionally tagged with group
//     keys) and returns, for every vertex, the smallest vertex id in its
//     weak component — the component id.
//   - ComputeSets runs the same engine over pre-partitioned working sets.
//   - Everything is expressed as bulk set operations: no per-vertex
//     pointer chasing, no assumption that a group fits any particular
//     access pattern — only batched reads and monotonic-min merges
//     against a labelstore.Store.
//
// How:
//
//	Every vertex starts with its own id as its label. Each round, every
//	edge (u, v) proposes the smaller endpoint label to the other side;
//	proposals reduce via min, and the round commits them at a barrier.
//	Reads within a round observe the previous round's labels, so edge
//	order, chunking, and worker count never change the outcome. A round
//	that lowers no label in a group freezes that group (inactive-group
//	pruning); when no group remains active, labels are projected into the
//	output mapping.
//
// Termination: labels never increase and are bounded below by the minimum
// id reachable in the group, so the loop reaches its fixpoint in at most
// D rounds, D being the diameter of the largest component — each round
// carries the component minimum at least one hop further. One extra
// all-quiet round detects the fixpoint. D never exceeds the vertex count
// of the largest group, which is the automatic round budget.
//
// Semantics:
//
//   - Edges are undirected for connectivity; duplicates and self-loops
//     are redundant proposals, never errors.
//   - Groups are fully isolated: labels key on (group, vertex), so equal
//     raw ids in different groups never merge.
//   - A vertex without edges in its group keeps its own id (singleton).
//   - Either the full converged mapping is returned or the invocation
//     fails; cancellation applies between rounds and surfaces no partial
//     state.
//
// Complexity:
//
//   - Time:   O(R·(V + E)), R ≤ diameter of the largest component + 1.
//   - Memory: O(V + E) beyond the label store; per-round proposal maps
//     are bounded by the active vertex population.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrRoundLimit: the round budget ran out before convergence.
//   - partition.ErrUnknownEndpoint (and other partition errors) for
//     malformed input, detected before any round runs.
package wcc
