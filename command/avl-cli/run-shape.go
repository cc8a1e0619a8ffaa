// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/ingest"
)

func runShape(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrRequiredValues
	}

	set := avl.New[int64]()
	for i, arg := range c.Args() {
		value, err := ingest.ParseInteger(arg)
		if nil != err {
			return fmt.Errorf("argument %d: %q: %w", i+1, arg, err)
		}
		added := set.Insert(value)
		if m.verbose && !added {
			fmt.Fprintf(m.e, "duplicate: %d\n", value)
		}
	}

	return shape(m.w, set, c.Bool("heights"))
}

func shape[T any](w io.Writer, set *avl.Set[T], withHeights bool) error {
	depth := set.Print(w, withHeights)
	fmt.Fprintf(w, "count: %d  height: %d  depth: %d  rotations: %d\n", set.Count(), set.Height(), depth, set.Rotations())
	return set.Check()
}
