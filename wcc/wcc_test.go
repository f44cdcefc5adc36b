package wcc_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/weakcc/labelstore"
	"github.com/katalvlaran/weakcc/partition"
	"github.com/katalvlaran/weakcc/wcc"
)

func vertexRows(g partition.GroupKey, ids ...int64) []partition.Vertex {
	rows := make([]partition.Vertex, len(ids))
	for i, id := range ids {
		rows[i] = partition.Vertex{ID: id, Group: g}
	}
	return rows
}

func edgeRows(g partition.GroupKey, pairs ...[2]int64) []partition.Edge {
	rows := make([]partition.Edge, len(pairs))
	for i, p := range pairs {
		rows[i] = partition.Edge{Src: p[0], Dest: p[1], Group: g}
	}
	return rows
}

// componentOf flattens a result into group → vertex → component.
func componentOf(res *wcc.Result) map[partition.GroupKey]map[int64]int64 {
	out := make(map[partition.GroupKey]map[int64]int64)
	for _, m := range res.Mappings {
		byV, ok := out[m.Group]
		if !ok {
			byV = make(map[int64]int64)
			out[m.Group] = byV
		}
		byV[m.Vertex] = m.Component
	}
	return out
}

// TestCompute_Errors verifies option and input validation.
func TestCompute_Errors(t *testing.T) {
	_, err := wcc.Compute(nil, nil, wcc.WithWorkers(-1))
	require.ErrorIs(t, err, wcc.ErrOptionViolation)

	_, err = wcc.Compute(nil, nil, wcc.WithChunkSize(-5))
	require.ErrorIs(t, err, wcc.ErrOptionViolation)

	_, err = wcc.Compute(nil, nil, wcc.WithMaxRounds(-1))
	require.ErrorIs(t, err, wcc.ErrOptionViolation)

	_, err = wcc.Compute(nil, nil, wcc.WithUnknownPolicy(partition.UnknownPolicy(7)))
	require.ErrorIs(t, err, wcc.ErrOptionViolation)

	// referential integrity is checked before any round runs
	_, err = wcc.Compute(
		vertexRows(partition.NoGroup, 1),
		edgeRows(partition.NoGroup, [2]int64{1, 99}),
	)
	require.ErrorIs(t, err, partition.ErrUnknownEndpoint)
}

// TestCompute_Empty covers the zero-input invocation.
func TestCompute_Empty(t *testing.T) {
	res, err := wcc.Compute(nil, nil)
	require.NoError(t, err)
	require.Empty(t, res.Mappings)
	require.Zero(t, res.Rounds)
	require.Empty(t, res.Components)
}

// TestCompute_AdoptUnknown checks that adopted endpoints join the output.
func TestCompute_AdoptUnknown(t *testing.T) {
	res, err := wcc.Compute(
		vertexRows(partition.NoGroup, 5),
		edgeRows(partition.NoGroup, [2]int64{5, 2}),
		wcc.WithUnknownPolicy(partition.AdoptUnknown),
	)
	require.NoError(t, err)
	require.Equal(t, []wcc.Mapping{
		{Vertex: 2, Component: 2},
		{Vertex: 5, Component: 2},
	}, res.Mappings)
}

// TestCompute_Cancelled ensures a cancelled context aborts between rounds
// with no partial result.
func TestCompute_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res, err := wcc.Compute(
		vertexRows(partition.NoGroup, 1, 2),
		edgeRows(partition.NoGroup, [2]int64{1, 2}),
		wcc.WithContext(ctx),
	)
	require.ErrorIs(t, err, context.Canceled)
	require.Nil(t, res)
}

// TestCompute_RoundLimit exhausts the budget on a long chain.
func TestCompute_RoundLimit(t *testing.T) {
	var vs []partition.Vertex
	var es []partition.Edge
	for i := int64(0); i < 10; i++ {
		vs = append(vs, partition.Vertex{ID: i})
		if i > 0 {
			es = append(es, partition.Edge{Src: i - 1, Dest: i})
		}
	}

	_, err := wcc.Compute(vs, es, wcc.WithMaxRounds(2))
	require.ErrorIs(t, err, wcc.ErrRoundLimit)

	// the automatic budget always suffices
	res, err := wcc.Compute(vs, es)
	require.NoError(t, err)
	for _, m := range res.Mappings {
		require.Equal(t, int64(0), m.Component)
	}
}

// TestCompute_OnRound observes convergence through the round hook.
func TestCompute_OnRound(t *testing.T) {
	var infos []wcc.RoundInfo
	res, err := wcc.Compute(
		vertexRows(partition.NoGroup, 1, 2, 3),
		edgeRows(partition.NoGroup, [2]int64{1, 2}, [2]int64{2, 3}),
		wcc.WithOnRound(func(ri wcc.RoundInfo) { infos = append(infos, ri) }),
	)
	require.NoError(t, err)
	require.Len(t, infos, res.Rounds)
	require.Zero(t, infos[len(infos)-1].Lowered, "final round must observe no change")
	for i, ri := range infos {
		require.Equal(t, i+1, ri.Round)
	}
}

// TestCompute_BadgerStore runs the engine against the out-of-core store.
func TestCompute_BadgerStore(t *testing.T) {
	store, err := labelstore.OpenBadger(labelstore.BadgerConfig{InMemory: true})
	require.NoError(t, err)
	defer func() { require.NoError(t, store.Close()) }()

	res, err := wcc.Compute(
		vertexRows(partition.NoGroup, 10, 11, 12, 13),
		edgeRows(partition.NoGroup,
			[2]int64{10, 11}, [2]int64{10, 12}, [2]int64{11, 12},
			[2]int64{11, 13}, [2]int64{12, 13}, [2]int64{13, 10}),
		wcc.WithStore(store),
	)
	require.NoError(t, err)
	for _, m := range res.Mappings {
		require.Equal(t, int64(10), m.Component)
	}
}

// TestCompute_DuplicatesAndLoops checks that redundant rows change nothing.
func TestCompute_DuplicatesAndLoops(t *testing.T) {
	plain, err := wcc.Compute(
		vertexRows(partition.NoGroup, 1, 2),
		edgeRows(partition.NoGroup, [2]int64{1, 2}),
	)
	require.NoError(t, err)

	noisy, err := wcc.Compute(
		vertexRows(partition.NoGroup, 1, 2),
		edgeRows(partition.NoGroup,
			[2]int64{1, 2}, [2]int64{2, 1}, [2]int64{1, 2},
			[2]int64{1, 1}, [2]int64{2, 2}),
	)
	require.NoError(t, err)
	require.Equal(t, plain.Mappings, noisy.Mappings)
}
