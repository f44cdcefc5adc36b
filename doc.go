// Package weakcc computes weakly connected components over bulk
// relational graph data — vertex and edge tables too large or too flat
// for pointer-chasing traversals.
//
// 🚀 What is weakcc?
//
//	A set-oriented component engine that brings together:
//		• Min-label propagation: every vertex converges to the smallest
//		  vertex id reachable from it, ignoring edge direction
//		• Bulk-synchronous rounds: proposals reduce via min and commit at
//		  a barrier, so results never depend on row order or parallelism
//		• Grouped graphs: independent subgraphs, selected by a
//		  discriminator key, computed in one pass without cross-talk
//		• Pluggable label tables: in-memory maps or a BadgerDB-backed
//		  store for label populations past working memory
//
// ✨ Why choose weakcc?
//
//   - Deterministic – component id is always the minimum member id
//   - Provably terminating – at most diameter-many rounds, bounded budget
//   - Relational-friendly – column-mapped record ingestion, no graph
//     object required
//   - All-or-nothing – a failed or cancelled run surfaces no partial state
//
// Everything is organized under three subpackages:
//
//	partition/  — per-group working sets, referential-integrity policy,
//	              relational column mapping
//	labelstore/ — the (group, vertex) → label table: memory and BadgerDB
//	wcc/        — propagation rounds, convergence, result assembly
//
// Quick ASCII example:
//
//	1───2   10───11   50
//	     │
//	     3
//
//	yields components {1,2,3}→1, {10,11}→10, {50}→50.
//
// Dive into the per-package docs and examples/ for full walkthroughs.
//
//	go get github.com/katalvlaran/weakcc
package weakcc
