// Package partition splits bulk vertex and edge rows into independent
// per-group working sets, ready for component computation.
//
// What:
//
//   - Vertex and Edge row types keyed by integer identifiers, each optionally
//     tagged with a GroupKey discriminator (composite keys supported via
//     MakeGroupKey).
//   - Partition consumes vertex/edge streams (slices or pull sources) and emits
//     one WorkingSet per distinct group, never mixing groups even when raw
//     vertex identifiers collide across them.
//   - A relational adapter (Schema, VerticesFromRecords, EdgesFromRecords)
//     maps generic column-addressed records onto the typed row model.
//
// Why:
//
//   - Component labels are scoped to (group, vertex); building that scoping
//     once, up front, keeps every downstream pass free of cross-group checks.
//   - Referential integrity is decided here, before any computation: edges
//     naming a vertex absent from their group's vertex rows are either
//     rejected (RejectUnknown, the default) or silently adopted
//     (AdoptUnknown). The choice is explicit, never implicit.
//
// Membership note: a vertex belongs to the group named by its own vertex row.
// Edges never re-group a vertex; a vertex without edges in its group stays a
// singleton of that group. This is a property of the row representation, not
// a defect.
//
// Complexity:
//
//   - Partition: O(V + E) time, O(V + E) memory for the working sets.
//
// Errors:
//
//   - ErrOptionViolation: an invalid Option was supplied.
//   - ErrNilSource: a nil vertex or edge source was supplied.
//   - ErrUnknownEndpoint: an edge references a vertex id absent from its
//     group under RejectUnknown.
//   - ErrColumnMissing, ErrColumnType: relational adapter failures, reported
//     with the offending record index and column name.
package partition
