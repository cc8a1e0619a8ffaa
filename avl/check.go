// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"github.com/bitmark-inc/avlset/fault"
)

// Check - verify ordering, stored heights, balance and count
//
// returns nil for a consistent tree
func (tree *Set[T]) Check() error {
	_, n, err := tree.check(tree.root, nil, nil)
	if nil != err {
		return err
	}
	if n != tree.count {
		return fault.ErrCountMismatch
	}
	return nil
}

// internal: consistency checker, all values in p must lie strictly
// between low and high when those are present
//
// returns the computed height and number of nodes
func (tree *Set[T]) check(p *node[T], low *T, high *T) (int, int, error) {
	if nil == p {
		return 0, 0, nil
	}
	if nil != low && tree.compare(p.value, *low) <= 0 {
		return 0, 0, fault.ErrOrderViolation
	}
	if nil != high && tree.compare(p.value, *high) >= 0 {
		return 0, 0, fault.ErrOrderViolation
	}

	lh, ln, err := tree.check(p.left, low, &p.value)
	if nil != err {
		return 0, 0, err
	}
	rh, rn, err := tree.check(p.right, &p.value, high)
	if nil != err {
		return 0, 0, err
	}

	h := 1 + max(lh, rh)
	if h != p.height {
		return 0, 0, fault.ErrHeightMismatch
	}
	if bf := lh - rh; bf < -1 || bf > 1 {
		return 0, 0, fault.ErrUnbalanced
	}
	return h, 1 + ln + rn, nil
}
