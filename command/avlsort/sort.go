// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/ingest"
)

// inline values first, then configured inputs then command-line
// files; stdin if there is nothing else
func makeSources(options *Configuration, arguments []string) ([]ingest.Source, error) {
	sources := make([]ingest.Source, 0, 1+len(options.Inputs)+len(arguments))

	if len(options.Values) > 0 {
		sources = append(sources, ingest.NewListSource("configuration", options.Values))
	}

	files := make([]string, 0, len(options.Inputs)+len(arguments))
	files = append(files, options.Inputs...)
	files = append(files, arguments...)

	for _, fileName := range files {
		if "-" == fileName {
			sources = append(sources, ingest.NewReaderSource("stdin", os.Stdin))
			continue
		}
		src, err := ingest.NewFileSource(fileName)
		if nil != err {
			closeSources(sources)
			return nil, fmt.Errorf("%s: %w", fileName, err)
		}
		sources = append(sources, src)
	}

	if 0 == len(sources) {
		sources = append(sources, ingest.NewReaderSource("stdin", os.Stdin))
	}
	return sources, nil
}

// release any files held by sources
func closeSources(sources []ingest.Source) {
	for _, src := range sources {
		if c, ok := src.(io.Closer); ok {
			c.Close()
		}
	}
}

// load all sources into the set and write the ordered values
//
// the tree drawing, check result and summary go to diagnostics
// unless it is nil
func sortValues[T any](log *logger.L, options *Configuration, sources []ingest.Source, parse ingest.Parser[T], set *avl.Set[T], out io.Writer, diagnostics io.Writer) error {

	total := ingest.Statistics{}
	for _, src := range sources {
		stats, err := ingest.Load(log, src, parse, set)
		if nil != err {
			return err
		}
		total.Add(stats)
	}

	w := bufio.NewWriter(out)
	for v := range set.All() {
		if _, err := fmt.Fprintln(w, v); nil != err {
			return err
		}
	}
	if err := w.Flush(); nil != err {
		return err
	}

	log.Infof("values: %d  height: %d  rotations: %d", set.Count(), set.Height(), set.Rotations())

	if options.PrintTree && nil != diagnostics {
		depth := set.Print(diagnostics, true)
		log.Debugf("printed depth: %d", depth)
	}

	if options.Check {
		if err := set.Check(); nil != err {
			log.Criticalf("tree check failed: %s", err)
			return err
		}
		log.Info("tree check passed")
	}

	if nil != diagnostics {
		fmt.Fprintf(diagnostics, "read: %d  unique: %d  duplicates: %d  height: %d  rotations: %d\n",
			total.Read, total.Added, total.Duplicates, set.Height(), set.Rotations())
	}
	return nil
}
