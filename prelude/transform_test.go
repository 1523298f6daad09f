package prelude_test

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-prelude/prelude"
)

// corpus is the fixed set of sequences the law tests run over.
var corpus = [][]int{
	{},
	{7},
	{3, 1, 2},
	{5, 5, 5},
	{1, 2, 1, 3, 2},
	{-4, 9, 0, 9, -4, 7},
	{10, 9, 8, 7, 6, 5, 4, 3, 2, 1},
}

func isEven(n int) bool { return n%2 == 0 }

func square(n int) int { return n * n }

// ─── Each ─────────────────────────────────────────────────────────────────────

func TestEach(t *testing.T) {
	var seen []int
	got, err := prelude.Each([]int{1, 2, 3}, func(n int) { seen = append(seen, n) })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
	assert.Equal(t, []int{1, 2, 3}, seen)
}

func TestEachEmpty(t *testing.T) {
	calls := 0
	got, err := prelude.Each([]string{}, func(string) { calls++ })
	require.NoError(t, err)
	assert.Empty(t, got)
	assert.Zero(t, calls)
}

// ─── Filter / Reject / Partition ──────────────────────────────────────────────

func TestFilter(t *testing.T) {
	got, err := prelude.Filter([]int{1, 2, 3, 4}, isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, got)
}

func TestReject(t *testing.T) {
	got, err := prelude.Reject([]int{1, 2, 3, 4}, isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)
}

func TestFilterRejectCoverSequence(t *testing.T) {
	for _, s := range corpus {
		kept, err := prelude.Filter(s, isEven)
		require.NoError(t, err)
		dropped, err := prelude.Reject(s, isEven)
		require.NoError(t, err)
		assert.Equal(t, len(s), prelude.Len(kept)+prelude.Len(dropped), "sequence %v", s)
	}
}

func TestFilterPreservesOrder(t *testing.T) {
	got, err := prelude.Filter([]string{"pear", "fig", "plum", "kiwi", "peach"}, func(s string) bool {
		return strings.HasPrefix(s, "p")
	})
	require.NoError(t, err)
	assert.Equal(t, []string{"pear", "plum", "peach"}, got)
}

func TestPartition(t *testing.T) {
	kept, rejected, err := prelude.Partition([]int{1, 2, 3, 4, 5}, isEven)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 4}, kept)
	assert.Equal(t, []int{1, 3, 5}, rejected)

	for _, s := range corpus {
		kept, rejected, err := prelude.Partition(s, isEven)
		require.NoError(t, err)
		wantKept, _ := prelude.Filter(s, isEven)
		wantRejected, _ := prelude.Reject(s, isEven)
		assert.Equal(t, wantKept, kept, "sequence %v", s)
		assert.Equal(t, wantRejected, rejected, "sequence %v", s)
	}
}

// ─── Map ──────────────────────────────────────────────────────────────────────

func TestMap(t *testing.T) {
	got, err := prelude.Map([]int{1, 2, 3}, square)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 4, 9}, got)
}

func TestMapChangesType(t *testing.T) {
	got, err := prelude.Map([]string{"a", "bb", "ccc"}, func(s string) int { return len(s) })
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3}, got)
}

func TestMapIdentityLaw(t *testing.T) {
	for _, s := range corpus {
		got, err := prelude.Map(s, prelude.ID[int])
		require.NoError(t, err)
		assert.Equal(t, s, got)
	}
}

func TestMapPreservesLength(t *testing.T) {
	for _, s := range corpus {
		got, err := prelude.Map(s, func(int) string { return "x" })
		require.NoError(t, err)
		assert.Len(t, got, len(s))
	}
}

// ─── Reverse ──────────────────────────────────────────────────────────────────

func TestReverse(t *testing.T) {
	assert.Equal(t, []int{3, 2, 1}, prelude.Reverse([]int{1, 2, 3}))
	assert.Empty(t, prelude.Reverse([]int{}))
}

func TestReverseInvolution(t *testing.T) {
	for _, s := range corpus {
		assert.Equal(t, s, prelude.Reverse(prelude.Reverse(s)))
	}
}

// ─── Sort ─────────────────────────────────────────────────────────────────────

func TestSort(t *testing.T) {
	assert.Equal(t, []int{1, 2, 3, 4, 5}, prelude.Sort([]int{5, 3, 1, 4, 2}))
	assert.Equal(t, []string{"a", "b", "c"}, prelude.Sort([]string{"c", "a", "b"}))
	assert.Empty(t, prelude.Sort([]float64{}))
}

func TestSortIsOrderedPermutation(t *testing.T) {
	for _, s := range corpus {
		got := prelude.Sort(s)
		assert.ElementsMatch(t, s, got, "sequence %v", s)
		assert.True(t, slices.IsSorted(got), "Sort(%v) = %v", s, got)
	}
}

func TestSortFunc(t *testing.T) {
	type user struct {
		name string
		age  int
	}
	users := []user{{"carol", 41}, {"alice", 29}, {"bob", 35}}
	got, err := prelude.SortFunc(users, func(a, b user) bool { return a.age < b.age })
	require.NoError(t, err)
	names, _ := prelude.Map(got, func(u user) string { return u.name })
	assert.Equal(t, []string{"alice", "bob", "carol"}, names)
}

func TestSortFuncEqualElementsKeepOrder(t *testing.T) {
	type pair struct{ key, tag int }
	in := []pair{{2, 0}, {1, 1}, {2, 2}, {1, 3}}
	got, err := prelude.SortFunc(in, func(a, b pair) bool { return a.key < b.key })
	require.NoError(t, err)
	assert.Equal(t, []pair{{1, 1}, {1, 3}, {2, 0}, {2, 2}}, got)
}

// ─── Unique ───────────────────────────────────────────────────────────────────

func TestUnique(t *testing.T) {
	assert.Equal(t, []int{1, 3, 2}, prelude.Unique([]int{1, 2, 1, 3, 2}))
	assert.Equal(t, []string{"b", "a"}, prelude.Unique([]string{"a", "b", "a"}))
	assert.Equal(t, []int{4, 5}, prelude.Unique([]int{4, 5}))
	assert.Equal(t, []int{5}, prelude.Unique([]int{5, 5, 5}))
	assert.Empty(t, prelude.Unique([]int{}))
}

func TestUniqueHasNoDuplicates(t *testing.T) {
	for _, s := range corpus {
		got := prelude.Unique(s)
		seen := map[int]bool{}
		for _, n := range got {
			assert.False(t, seen[n], "Unique(%v) = %v repeats %d", s, got, n)
			seen[n] = true
		}
		for _, n := range s {
			assert.True(t, seen[n], "Unique(%v) = %v lost %d", s, got, n)
		}
	}
}

func TestUniqueBy(t *testing.T) {
	got, err := prelude.UniqueBy([]string{"Go", "rust", "GO", "Rust", "zig"}, strings.ToLower)
	require.NoError(t, err)
	assert.Equal(t, []string{"GO", "Rust", "zig"}, got)
}

// ─── Argument validation ──────────────────────────────────────────────────────

func TestNilFunctionIsInvalidArgument(t *testing.T) {
	xs := []int{1, 2, 3}

	_, err := prelude.Each[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.Filter[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.Reject[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.Map[int, string](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.Find[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, _, err = prelude.Partition[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.SortFunc[int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.UniqueBy[int, int](xs, nil)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)

	_, err = prelude.Reduce[int, int](xs, nil, 0)
	assert.ErrorIs(t, err, prelude.ErrInvalidArgument)
}

func TestInvalidArgumentNamesOperation(t *testing.T) {
	_, err := prelude.Filter[int](nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Filter")
}

// ─── Immutability ─────────────────────────────────────────────────────────────

func TestInputsAreNotMutated(t *testing.T) {
	for _, s := range corpus {
		before := slices.Clone(s)

		prelude.Reverse(s)
		prelude.Sort(s)
		prelude.Unique(s)
		prelude.Take(s, 2)
		prelude.Tail(s)
		_, _ = prelude.Filter(s, isEven)
		_, _ = prelude.Reject(s, isEven)
		_, _ = prelude.Map(s, square)
		_, _ = prelude.Each(s, func(int) {})

		assert.Equal(t, before, s)
	}
}
