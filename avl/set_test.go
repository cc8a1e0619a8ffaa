// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl_test

import (
	"slices"
	"sort"
	"testing"
	"testing/quick"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

func TestEmptySet(t *testing.T) {
	tree := avl.FromSlice([]int{})

	assert.True(t, tree.IsEmpty(), "empty")
	assert.Equal(t, 0, tree.Count(), "count")
	assert.Equal(t, 0, tree.Height(), "height")
	assert.Equal(t, 0, tree.BalanceFactor(), "balance")
	assert.Empty(t, tree.Values(), "values")
	assert.Nil(t, tree.Check(), "check")

	_, ok := tree.Iter().Next()
	assert.False(t, ok, "next on empty")
	_, ok = tree.First()
	assert.False(t, ok, "first on empty")
	_, ok = tree.Last()
	assert.False(t, ok, "last on empty")
	assert.False(t, tree.Contains(0), "contains on empty")
}

func TestBalancedInsert(t *testing.T) {
	tree := avl.New[int]()
	for _, v := range []int{5, 3, 8, 1, 4, 7, 9} {
		assert.True(t, tree.Insert(v), "insert: %d", v)
	}

	assert.Equal(t, []int{1, 3, 4, 5, 7, 8, 9}, tree.Values(), "values")
	bf := tree.BalanceFactor()
	assert.True(t, bf >= -1 && bf <= 1, "root balance: %d", bf)
	assert.Equal(t, 3, tree.Height(), "height")
	assert.Equal(t, uint64(0), tree.Rotations(), "rotations")
	assert.Nil(t, tree.Check(), "check")
}

func TestAscendingInsert(t *testing.T) {
	tree := avl.FromSlice([]int{1, 2, 3, 4, 5})

	assert.Equal(t, []int{1, 2, 3, 4, 5}, tree.Values(), "values")
	assert.Nil(t, tree.Check(), "check")
	assert.True(t, tree.Rotations() > 0, "no rotations")
}

func TestDuplicateInsert(t *testing.T) {
	tree := avl.New[int]()

	assert.True(t, tree.Insert(5), "first insert")
	assert.False(t, tree.Insert(5), "second insert")
	assert.Equal(t, []int{5}, tree.Values(), "values")
	assert.Equal(t, 1, tree.Count(), "count")
}

func TestInsertAll(t *testing.T) {
	tree := avl.New[string]()
	n := tree.InsertAll("pear", "apple", "fig", "apple", "pear")

	assert.Equal(t, 3, n, "added")
	assert.Equal(t, []string{"apple", "fig", "pear"}, tree.Values(), "values")
}

func TestCollect(t *testing.T) {
	input := []int{9, 2, 7, 2, 4, 9, 1}

	tree := avl.Collect(slices.Values(input))
	assert.Equal(t, []int{1, 2, 4, 7, 9}, tree.Values(), "values")

	// reverse order
	reverse := avl.CollectFunc(slices.Values(input), func(a int, b int) int {
		return b - a
	})
	assert.Equal(t, []int{9, 7, 4, 2, 1}, reverse.Values(), "reversed values")
	assert.Nil(t, reverse.Check(), "check")
}

func TestAllStopsEarly(t *testing.T) {
	tree := avl.FromSlice([]int{6, 2, 8, 4, 10})

	seen := []int{}
	for v := range tree.All() {
		if v > 5 {
			break
		}
		seen = append(seen, v)
	}
	assert.Equal(t, []int{2, 4}, seen, "partial range")
	assert.Equal(t, []int{2, 4, 6, 8, 10}, slices.Collect(tree.All()), "full range")
}

func TestIteratorExhausted(t *testing.T) {
	tree := avl.FromSlice([]int{2, 1, 3})
	it := tree.Iter()

	for _, expected := range []int{1, 2, 3} {
		v, ok := it.Next()
		assert.True(t, ok, "next: %d", expected)
		assert.Equal(t, expected, v, "value")
	}
	for i := 0; i < 3; i += 1 {
		_, ok := it.Next()
		assert.False(t, ok, "next after end: %d", i)
	}
}

func TestIteratorsAreIndependent(t *testing.T) {
	tree := avl.FromSlice([]int{4, 2, 6, 1, 3, 5, 7})

	a := tree.Iter()
	b := tree.Iter()

	a.Next()
	a.Next()
	v, _ := b.Next()
	assert.Equal(t, 1, v, "second iterator starts at lowest")
	v, _ = a.Next()
	assert.Equal(t, 3, v, "first iterator continues")
}

func TestModifiedDuringIteration(t *testing.T) {
	tree := avl.FromSlice([]int{1, 2, 3})
	it := tree.Iter()
	it.Next()

	// a duplicate does not modify the set
	tree.Insert(2)
	_, ok := it.Next()
	assert.True(t, ok, "next after duplicate")

	tree.Insert(4)
	assert.PanicsWithValue(t, fault.ErrModifiedDuringIteration, func() {
		it.Next()
	}, "next after insert")
}

// the iterator must match a recursive in-order walk
func TestIteratorMatchesRecursiveWalk(t *testing.T) {
	f := func(input []int16) bool {
		tree := avl.FromSlice(input)
		expected := []int16{}
		for v := range tree.All() {
			expected = append(expected, v)
		}
		return slices.Equal(expected, tree.Values()) && len(expected) == tree.Count()
	}
	if err := quick.Check(f, nil); nil != err {
		t.Error(err)
	}
}

// iterating the set matches a sorted, de-duplicated copy of the input
func TestIteratorParity(t *testing.T) {
	f := func(input []uint) bool {
		tree := avl.FromSlice(input)

		reference := make(map[uint]struct{})
		for _, v := range input {
			reference[v] = struct{}{}
		}
		expected := make([]uint, 0, len(reference))
		for v := range reference {
			expected = append(expected, v)
		}
		sort.Slice(expected, func(i int, j int) bool { return expected[i] < expected[j] })

		return slices.Equal(expected, tree.Values()) && nil == tree.Check()
	}
	if err := quick.Check(f, nil); nil != err {
		t.Error(err)
	}
}

// insert returns true exactly when a membership test would fail
func TestInsertParity(t *testing.T) {
	f := func(existing []uint8, x uint8) bool {
		tree := avl.FromSlice(existing)
		reference := make(map[uint8]struct{})
		for _, v := range existing {
			reference[v] = struct{}{}
		}

		_, present := reference[x]
		return tree.Insert(x) == !present && tree.Contains(x) && nil == tree.Check()
	}
	if err := quick.Check(f, nil); nil != err {
		t.Error(err)
	}
}

// balance and stored heights are correct after every single insert
func TestInvariantsAfterEveryInsert(t *testing.T) {
	f := func(input []int32) bool {
		tree := avl.New[int32]()
		for _, v := range input {
			tree.Insert(v)
			if nil != tree.Check() {
				return false
			}
		}
		return true
	}
	if err := quick.Check(f, nil); nil != err {
		t.Error(err)
	}
}
