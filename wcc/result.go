package wcc

import (
	"sort"

	"github.com/katalvlaran/weakcc/labelstore"
	"github.com/katalvlaran/weakcc/partition"
)

// assemble projects the converged label table into the output mapping,
// sorted by (group, vertex), and counts distinct components per group.
func assemble(store labelstore.Store, rounds int) (*Result, error) {
	mappings := make([]Mapping, 0, store.Len())
	err := store.Scan(func(g partition.GroupKey, vertex, label int64) error {
		mappings = append(mappings, Mapping{Vertex: vertex, Component: label, Group: g})
		return nil
	})
	if err != nil {
		return nil, err
	}
	sort.Slice(mappings, func(i, j int) bool {
		if mappings[i].Group != mappings[j].Group {
			return mappings[i].Group < mappings[j].Group
		}
		return mappings[i].Vertex < mappings[j].Vertex
	})

	components := make(map[partition.GroupKey]int)
	seen := make(map[int64]struct{})
	for i, m := range mappings {
		if i > 0 && m.Group != mappings[i-1].Group {
			seen = make(map[int64]struct{})
		}
		if _, ok := seen[m.Component]; !ok {
			seen[m.Component] = struct{}{}
			components[m.Group]++
		}
	}

	return &Result{Mappings: mappings, Rounds: rounds, Components: components}, nil
}
