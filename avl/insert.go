// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"
	"iter"
)

// Insert - add a value to the set
//
// returns false and leaves the tree unchanged if an equal value is
// already present
func (tree *Set[T]) Insert(value T) bool {
	added := tree.insert(value, &tree.root)
	if added {
		tree.count += 1
		tree.generation += 1
	}
	return added
}

// internal routine for insert
//
// heights and balance are only touched on the way back up after a
// new leaf was actually created
func (tree *Set[T]) insert(value T, pp **node[T]) bool {
	p := *pp
	if nil == p { // insert new node
		*pp = &node[T]{
			value:  value,
			height: 1,
		}
		return true
	}

	added := false
	switch c := tree.compare(value, p.value); {
	case c < 0:
		added = tree.insert(value, &p.left)
	case c > 0:
		added = tree.insert(value, &p.right)
	default:
		return false
	}

	if added {
		p.updateHeight()
		if n := rebalance(pp); n > 0 {
			tree.rotations.Add(uint64(n))
		}
	}
	return added
}

// InsertAll - insert each value in turn, returns the number added
func (tree *Set[T]) InsertAll(values ...T) int {
	n := 0
	for _, v := range values {
		if tree.Insert(v) {
			n += 1
		}
	}
	return n
}

// FromSlice - create a set from the values, dropping duplicates
func FromSlice[T cmp.Ordered](values []T) *Set[T] {
	tree := New[T]()
	tree.InsertAll(values...)
	return tree
}

// Collect - create a set from a sequence, dropping duplicates
func Collect[T cmp.Ordered](seq iter.Seq[T]) *Set[T] {
	return CollectFunc(seq, cmp.Compare[T])
}

// CollectFunc - create a set ordered by compare from a sequence,
// dropping duplicates
func CollectFunc[T any](seq iter.Seq[T], compare CompareFunc[T]) *Set[T] {
	tree := NewFunc(compare)
	for v := range seq {
		tree.Insert(v)
	}
	return tree
}
