package wcc

import (
	"fmt"

	"github.com/katalvlaran/weakcc/labelstore"
	"github.com/katalvlaran/weakcc/partition"
)

// Compute partitions the vertex and edge rows into per-group working
// sets and runs min-label propagation to convergence. The result maps
// every vertex to the minimum vertex id of its weak component, scoped to
// its group.
//
// Input rows are treated as a read-only snapshot; running Compute twice
// on the same snapshot — in any row order, with any worker count —
// yields identical results.
func Compute(vertices []partition.Vertex, edges []partition.Edge, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	sets, err := partition.Partition(
		partition.VertexSlice(vertices),
		partition.EdgeSlice(edges),
		partition.WithUnknownPolicy(o.Unknown),
	)
	if err != nil {
		return nil, err
	}
	return computeSets(sets, o)
}

// ComputeSets runs the engine over working sets produced by
// partition.Partition, for callers that stream their input or reuse a
// partitioning across stores.
func ComputeSets(sets []partition.WorkingSet, opts ...Option) (*Result, error) {
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	return computeSets(sets, o)
}

func buildOptions(opts []Option) (Options, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o, o.err
}

func computeSets(sets []partition.WorkingSet, o Options) (*Result, error) {
	store := o.Store
	if store == nil {
		mem := labelstore.NewMemStore()
		defer mem.Close()
		store = mem
	}

	// Identity labels; groups without edges are born converged.
	var active []*groupRun
	largest := 0
	for _, set := range sets {
		if err := store.InitGroup(set.Group, set.Vertices); err != nil {
			return nil, err
		}
		if len(set.Vertices) > largest {
			largest = len(set.Vertices)
		}
		if len(set.Edges) > 0 {
			active = append(active, newGroupRun(set))
		}
	}

	// Worst case, the minimum travels one hop per round along the longest
	// shortest path, so `largest` rounds of change suffice; one more
	// observes quiescence.
	budget := o.MaxRounds
	if budget == 0 {
		budget = largest + 1
	}

	rounds := 0
	for len(active) > 0 {
		select {
		case <-o.Ctx.Done():
			return nil, fmt.Errorf("wcc: aborted after round %d: %w", rounds, o.Ctx.Err())
		default:
		}
		if rounds >= budget {
			return nil, fmt.Errorf("%w: budget %d, last completed round %d", ErrRoundLimit, budget, rounds)
		}

		// Propose in parallel against the previous round's labels, then
		// commit each group at the barrier.
		if err := proposeAll(active, store, o); err != nil {
			return nil, err
		}
		lowered := 0
		still := make([]*groupRun, 0, len(active))
		for _, gr := range active {
			changed, err := store.MergeMin(gr.group, gr.proposals)
			if err != nil {
				return nil, err
			}
			lowered += changed
			if changed > 0 {
				still = append(still, gr)
			}
		}
		rounds++
		o.OnRound(RoundInfo{Round: rounds, ActiveGroups: len(active), Lowered: lowered})
		active = still
	}

	return assemble(store, rounds)
}
