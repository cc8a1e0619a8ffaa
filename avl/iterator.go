// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"iter"

	"github.com/bitmark-inc/avlset/fault"
)

// Iterator - ascending traversal of a set
//
// not restartable; once Next returns false it always will
type Iterator[T any] struct {
	tree       *Set[T]
	current    *node[T]   // sub-tree still to be visited
	ancestors  []*node[T] // nodes whose value and right sub-tree are pending
	generation uint64
}

// Iter - create an iterator positioned before the lowest value
func (tree *Set[T]) Iter() *Iterator[T] {
	return &Iterator[T]{
		tree:       tree,
		current:    tree.root,
		ancestors:  make([]*node[T], 0, tree.Height()),
		generation: tree.generation,
	}
}

// Next - return the next value in ascending order
//
// returns false when there are no more values
func (it *Iterator[T]) Next() (T, bool) {
	if it.generation != it.tree.generation {
		fault.Panicf(fault.ErrModifiedDuringIteration, "iterator: generation: %d  set generation: %d", it.generation, it.tree.generation)
	}

	for {
		p := it.current
		if nil != p {
			if nil != p.left {
				it.ancestors = append(it.ancestors, p)
				it.current = p.left
				continue
			}
			// right may be nil, which moves to the empty state
			it.current = p.right
			return p.value, true
		}

		n := len(it.ancestors)
		if 0 == n {
			var zero T
			return zero, false
		}
		p = it.ancestors[n-1]
		it.ancestors[n-1] = nil
		it.ancestors = it.ancestors[:n-1]
		it.current = p.right
		return p.value, true
	}
}

// All - range over the values in ascending order
func (tree *Set[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		it := tree.Iter()
		for {
			v, ok := it.Next()
			if !ok || !yield(v) {
				return
			}
		}
	}
}

// Values - all values as an ascending slice
func (tree *Set[T]) Values() []T {
	values := make([]T, 0, tree.count)
	it := tree.Iter()
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		values = append(values, v)
	}
	return values
}
