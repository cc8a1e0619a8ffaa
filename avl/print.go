// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package avl

import (
	"fmt"
	"io"
)

// to control the print routine
type branch int

const (
	root  branch = iota
	left  branch = iota
	right branch = iota
)

// Print - display an ASCII graphic representation of the tree
//
// the right sub-tree is drawn above a node and the left below it;
// returns the maximum depth of the tree
func (tree *Set[T]) Print(w io.Writer, withHeights bool) int {
	return printTree(w, tree.root, "", root, withHeights)
}

// internal print - returns the maximum depth of the tree
func printTree[T any](w io.Writer, tree *node[T], prefix string, br branch, withHeights bool) int {
	if nil == tree {
		return 0
	}
	rd := 0
	ld := 0
	if nil != tree.right {
		t := "       "
		if left == br {
			t = "|      "
		}
		rd = printTree(w, tree.right, prefix+t, right, withHeights)
	}
	switch br {
	case root:
		fmt.Fprintf(w, "%s|------+ ", prefix)
	case left:
		fmt.Fprintf(w, "%s\\------+ ", prefix)
	case right:
		fmt.Fprintf(w, "%s/------+ ", prefix)
	}
	if withHeights {
		fmt.Fprintf(w, "%v h:%d %+d\n", tree.value, tree.height, tree.balanceFactor())
	} else {
		fmt.Fprintf(w, "%v\n", tree.value)
	}
	if nil != tree.left {
		t := "       "
		if right == br {
			t = "|      "
		}
		ld = printTree(w, tree.left, prefix+t, left, withHeights)
	}
	if rd > ld {
		return 1 + rd
	}
	return 1 + ld
}
