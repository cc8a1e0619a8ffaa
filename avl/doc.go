// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package avl - an ordered set held in an AVL balanced tree
//
// Note: an individual set is not thread safe, so either access only
//       in a single go routine or use mutex/rwmutex to restrict
//       access.
//
// Each node caches the height of its sub-tree (an empty sub-tree has
// height zero, a leaf has height one) and the balance factor is the
// left height minus the right height.  After every insert the path
// back to the root is re-balanced with single or double rotations so
// that no balance factor leaves the range -1…+1.
//
// Values are unique; inserting a value that compares equal to one
// already present leaves the set untouched.  There is no delete.
//
// Iteration is in ascending order using an explicit stack of pending
// ancestors, so an iterator holds at most Height() nodes.  The set
// must not be modified while an iterator is in use; doing so panics
// on the next step of the iterator.
package avl
