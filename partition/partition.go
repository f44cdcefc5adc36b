package partition

import (
	"fmt"
	"sort"
)

// builder accumulates one group's rows while streaming input.
type builder struct {
	group    GroupKey
	vertices map[int64]struct{}
	edges    [][2]int64
}

func newBuilder(g GroupKey) *builder {
	return &builder{group: g, vertices: make(map[int64]struct{})}
}

// Partition consumes the vertex and edge streams and returns one
// WorkingSet per distinct group key, sorted by group key. Vertices within
// a set are sorted ascending and deduplicated; edges keep arrival order.
//
// Under RejectUnknown (default) an edge whose endpoint has no vertex row
// in the edge's group fails the call with ErrUnknownEndpoint, naming the
// edge. Under AdoptUnknown the endpoint is added to the group instead.
//
// Time: O(V + E + V log V), Memory: O(V + E).
func Partition(vs VertexSource, es EdgeSource, opts ...Option) ([]WorkingSet, error) {
	if vs == nil || es == nil {
		return nil, ErrNilSource
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	groups := make(map[GroupKey]*builder)
	at := func(g GroupKey) *builder {
		b, ok := groups[g]
		if !ok {
			b = newBuilder(g)
			groups[g] = b
		}
		return b
	}

	// Vertex rows declare group membership; duplicates collapse silently.
	for row := 0; ; row++ {
		v, ok, err := vs.Next()
		if err != nil {
			return nil, fmt.Errorf("partition: vertex row %d: %w", row, err)
		}
		if !ok {
			break
		}
		at(v.Group).vertices[v.ID] = struct{}{}
	}

	// Edge rows join the group named by their own key. Endpoints are
	// checked against that group only; a matching id in another group
	// does not satisfy the reference.
	for row := 0; ; row++ {
		e, ok, err := es.Next()
		if err != nil {
			return nil, fmt.Errorf("partition: edge row %d: %w", row, err)
		}
		if !ok {
			break
		}
		b := at(e.Group)
		for _, end := range [2]int64{e.Src, e.Dest} {
			if _, known := b.vertices[end]; known {
				continue
			}
			if o.Unknown == RejectUnknown {
				return nil, fmt.Errorf("%w: edge row %d (%d,%d) endpoint %d in group %q",
					ErrUnknownEndpoint, row, e.Src, e.Dest, end, e.Group)
			}
			b.vertices[end] = struct{}{}
		}
		b.edges = append(b.edges, [2]int64{e.Src, e.Dest})
	}

	sets := make([]WorkingSet, 0, len(groups))
	for _, b := range groups {
		ids := make([]int64, 0, len(b.vertices))
		for id := range b.vertices {
			ids = append(ids, id)
		}
		sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })
		sets = append(sets, WorkingSet{Group: b.group, Vertices: ids, Edges: b.edges})
	}
	sort.Slice(sets, func(i, j int) bool { return sets[i].Group < sets[j].Group })

	return sets, nil
}
