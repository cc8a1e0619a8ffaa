// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

// Contains - true if a value equal to the argument is in the set
func (tree *Set[T]) Contains(value T) bool {
	p := tree.root
	for nil != p {
		switch c := tree.compare(value, p.value); {
		case c < 0:
			p = p.left
		case c > 0:
			p = p.right
		default:
			return true
		}
	}
	return false
}

// First - return the lowest value, false if the set is empty
func (tree *Set[T]) First() (T, bool) {
	p := tree.root
	if nil == p {
		var zero T
		return zero, false
	}
	for nil != p.left {
		p = p.left
	}
	return p.value, true
}

// Last - return the highest value, false if the set is empty
func (tree *Set[T]) Last() (T, bool) {
	p := tree.root
	if nil == p {
		var zero T
		return zero, false
	}
	for nil != p.right {
		p = p.right
	}
	return p.value, true
}
