package wcc_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/katalvlaran/weakcc/partition"
	"github.com/katalvlaran/weakcc/wcc"
)

// BenchmarkCompute_Star measures the best case: a hub graph converging in
// two rounds regardless of size.
func BenchmarkCompute_Star(b *testing.B) {
	const n = 10000
	vs := make([]partition.Vertex, n)
	es := make([]partition.Edge, 0, n-1)
	for i := int64(0); i < n; i++ {
		vs[i] = partition.Vertex{ID: i}
		if i > 0 {
			es = append(es, partition.Edge{Src: 0, Dest: i})
		}
	}

	b.ReportAllocs()
	b.SetBytes(int64(len(vs) + len(es)))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := wcc.Compute(vs, es); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompute_RandomSparse measures a seeded sparse graph with the
// usual short-diameter shape of random graphs.
func BenchmarkCompute_RandomSparse(b *testing.B) {
	const (
		n = 5000
		e = 20000
	)
	rng := rand.New(rand.NewSource(1))
	vs := make([]partition.Vertex, n)
	for i := int64(0); i < n; i++ {
		vs[i] = partition.Vertex{ID: i}
	}
	es := make([]partition.Edge, e)
	for i := range es {
		es[i] = partition.Edge{Src: rng.Int63n(n), Dest: rng.Int63n(n)}
	}

	b.ReportAllocs()
	b.SetBytes(int64(n + e))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := wcc.Compute(vs, es); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkCompute_ManyGroups measures group fan-out: many small
// independent subgraphs in one pass.
func BenchmarkCompute_ManyGroups(b *testing.B) {
	const (
		groups  = 200
		perSize = 50
	)
	var vs []partition.Vertex
	var es []partition.Edge
	for gi := 0; gi < groups; gi++ {
		g := partition.MakeGroupKey("g", strconv.Itoa(gi))
		for i := int64(0); i < perSize; i++ {
			vs = append(vs, partition.Vertex{ID: i, Group: g})
			if i > 0 {
				es = append(es, partition.Edge{Src: i - 1, Dest: i, Group: g})
			}
		}
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := wcc.Compute(vs, es); err != nil {
			b.Fatal(err)
		}
	}
}
