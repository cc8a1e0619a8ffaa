// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"cmp"

	"github.com/bitmark-inc/avlset/counter"
)

// CompareFunc - a total order on T
//
// returns negative if a < b, zero if a == b and positive if a > b
type CompareFunc[T any] func(a, b T) int

// Set - type to hold the root node of a tree
type Set[T any] struct {
	root       *node[T]
	compare    CompareFunc[T]
	count      int
	generation uint64          // changes on every successful insert
	rotations  counter.Counter // total single rotations
}

// New - create an initially empty set of naturally ordered values
func New[T cmp.Ordered]() *Set[T] {
	return NewFunc[T](cmp.Compare[T])
}

// NewFunc - create an initially empty set ordered by compare
func NewFunc[T any](compare CompareFunc[T]) *Set[T] {
	return &Set[T]{
		root:    nil,
		compare: compare,
		count:   0,
	}
}

// IsEmpty - true if set contains no values
func (tree *Set[T]) IsEmpty() bool {
	return nil == tree.root
}

// Count - number of values currently in the set
func (tree *Set[T]) Count() int {
	return tree.count
}

// Height - height of the tree, zero when empty
func (tree *Set[T]) Height() int {
	return height(tree.root)
}

// BalanceFactor - balance factor of the root node, zero when empty
func (tree *Set[T]) BalanceFactor() int {
	if nil == tree.root {
		return 0
	}
	return tree.root.balanceFactor()
}

// Rotations - total number of single rotations performed by inserts
//
// a double rotation counts as two
func (tree *Set[T]) Rotations() uint64 {
	return tree.rotations.Uint64()
}
