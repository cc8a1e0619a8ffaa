// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// a node in the tree
type node[T any] struct {
	left   *node[T] // left sub-tree
	right  *node[T] // right sub-tree
	value  T        // ordering and data
	height int      // height of this sub-tree, leaf = 1
}

// height of a possibly empty sub-tree
func height[T any](p *node[T]) int {
	if nil == p {
		return 0
	}
	return p.height
}

func (p *node[T]) leftHeight() int {
	return height(p.left)
}

func (p *node[T]) rightHeight() int {
	return height(p.right)
}

// recompute from the children, which must already be correct
func (p *node[T]) updateHeight() {
	p.height = 1 + max(p.leftHeight(), p.rightHeight())
}

// positive: left heavy, negative: right heavy
func (p *node[T]) balanceFactor() int {
	return p.leftHeight() - p.rightHeight()
}

// rotateLeft - promote the right child of *pp
//
//	    p              r
//	   / \            / \
//	  a   r    →     p   c
//	     / \        / \
//	    b   c      a   b
//
// returns false without change if there is no right child
func rotateLeft[T any](pp **node[T]) bool {
	p := *pp
	if nil == p || nil == p.right {
		return false
	}
	r := p.right

	p.right = r.left
	r.left = p

	p.updateHeight()
	r.updateHeight()

	*pp = r
	return true
}

// rotateRight - promote the left child of *pp, mirror of rotateLeft
//
// returns false without change if there is no left child
func rotateRight[T any](pp **node[T]) bool {
	p := *pp
	if nil == p || nil == p.left {
		return false
	}
	l := p.left

	p.left = l.right
	l.right = p

	p.updateHeight()
	l.updateHeight()

	*pp = l
	return true
}

// rebalance - restore the balance of *pp whose children are balanced
// and whose height is up to date
//
// returns the number of single rotations performed
func rebalance[T any](pp **node[T]) int {
	p := *pp
	switch bf := p.balanceFactor(); bf {

	case -2: // right branch is too high
		rotations := 0
		if +1 == p.right.balanceFactor() {
			// double RL rotation
			mustRotate(rotateRight(&p.right), "right")
			rotations += 1
		}
		mustRotate(rotateLeft(pp), "left")
		return rotations + 1

	case +2: // left branch is too high
		rotations := 0
		if -1 == p.left.balanceFactor() {
			// double LR rotation
			mustRotate(rotateLeft(&p.left), "left")
			rotations += 1
		}
		mustRotate(rotateRight(pp), "right")
		return rotations + 1

	case -1, 0, +1:
		return 0

	default:
		fault.Panicf(fault.ErrBalanceFactor, "rebalance: balance factor: %d", bf)
	}
	return 0
}

// a rotation inside rebalance can only fail on a corrupt tree
func mustRotate(ok bool, direction string) {
	if !ok {
		fault.Panicf(fault.ErrRotationMissingChild, "rebalance: rotate %s: missing child", direction)
	}
}
