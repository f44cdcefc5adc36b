package wcc

import (
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/weakcc/labelstore"
	"github.com/katalvlaran/weakcc/partition"
)

// groupRun is one active group's round state: its edges and the proposal
// map being reduced for the current round.
type groupRun struct {
	group     partition.GroupKey
	edges     [][2]int64
	proposals map[int64]int64
	mu        sync.Mutex
}

func newGroupRun(set partition.WorkingSet) *groupRun {
	return &groupRun{group: set.Group, edges: set.Edges}
}

// proposeAll computes one round of proposals for every active group.
// Work units are (group, edge-chunk) pairs fanned out over a bounded
// errgroup; chunk-local maps reduce into the group map under its lock.
// Reduction is via min, so any fan-out and any completion order produce
// the same proposal set. The store is only read here; labels still show
// the previous round.
func proposeAll(active []*groupRun, store labelstore.Store, o Options) error {
	eg := new(errgroup.Group)
	eg.SetLimit(o.Workers)

	for _, gr := range active {
		gr.proposals = make(map[int64]int64)
		for lo := 0; lo < len(gr.edges); lo += o.ChunkSize {
			hi := lo + o.ChunkSize
			if hi > len(gr.edges) {
				hi = len(gr.edges)
			}
			gr, chunk := gr, gr.edges[lo:hi]
			eg.Go(func() error {
				local, err := proposeChunk(gr.group, chunk, store)
				if err != nil {
					return err
				}
				gr.mu.Lock()
				for v, p := range local {
					propose(gr.proposals, v, p)
				}
				gr.mu.Unlock()
				return nil
			})
		}
	}
	return eg.Wait()
}

// proposeChunk reads the chunk's endpoint labels in one batch and emits,
// per edge, the smaller endpoint label toward the larger side. Equal
// labels (including self-loops) propose nothing.
func proposeChunk(g partition.GroupKey, chunk [][2]int64, store labelstore.Store) (map[int64]int64, error) {
	idset := make(map[int64]struct{}, len(chunk)*2)
	for _, e := range chunk {
		idset[e[0]] = struct{}{}
		idset[e[1]] = struct{}{}
	}
	ids := make([]int64, 0, len(idset))
	for id := range idset {
		ids = append(ids, id)
	}

	labels := make(map[int64]int64, len(ids))
	if err := store.ReadBatch(g, ids, labels); err != nil {
		return nil, err
	}

	local := make(map[int64]int64)
	for _, e := range chunk {
		lu, lv := labels[e[0]], labels[e[1]]
		switch {
		case lu < lv:
			propose(local, e[1], lu)
		case lv < lu:
			propose(local, e[0], lv)
		}
	}
	return local, nil
}

// propose records label p for vertex v unless a smaller proposal exists.
func propose(m map[int64]int64, v, p int64) {
	if cur, ok := m[v]; !ok || p < cur {
		m[v] = p
	}
}
