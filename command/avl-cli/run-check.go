// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/ingest"
)

type checkResult struct {
	Files         []string          `json:"files"`
	Statistics    ingest.Statistics `json:"statistics"`
	Count         int               `json:"count"`
	Height        int               `json:"height"`
	BalanceFactor int               `json:"balanceFactor"`
	Rotations     uint64            `json:"rotations"`
	First         string            `json:"first,omitempty"`
	Last          string            `json:"last,omitempty"`
	Check         string            `json:"check"`
}

func runCheck(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	if 0 == c.NArg() {
		return ErrRequiredFileName
	}

	result, err := checkFiles(c.Args())
	if nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, result)
	}

	fmt.Fprintf(m.w, "files:          %d\n", len(result.Files))
	fmt.Fprintf(m.w, "read:           %d\n", result.Statistics.Read)
	fmt.Fprintf(m.w, "duplicates:     %d\n", result.Statistics.Duplicates)
	fmt.Fprintf(m.w, "count:          %d\n", result.Count)
	fmt.Fprintf(m.w, "height:         %d\n", result.Height)
	fmt.Fprintf(m.w, "balance factor: %+d\n", result.BalanceFactor)
	fmt.Fprintf(m.w, "rotations:      %d\n", result.Rotations)
	if m.verbose && result.Count > 0 {
		fmt.Fprintf(m.w, "first:          %q\n", result.First)
		fmt.Fprintf(m.w, "last:           %q\n", result.Last)
	}
	fmt.Fprintf(m.w, "check:          %s\n", result.Check)
	return nil
}

// load every file into one set of strings and verify the tree
func checkFiles(fileNames []string) (*checkResult, error) {

	log := logger.New("check")

	set := avl.New[string]()
	result := &checkResult{
		Files: fileNames,
	}

	for _, name := range fileNames {
		src, err := ingest.NewFileSource(name)
		if nil != err {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		stats, err := ingest.Load(log, src, ingest.ParseString, set)
		result.Statistics.Add(stats)
		if nil != err {
			return nil, err
		}
	}

	result.Count = set.Count()
	result.Height = set.Height()
	result.BalanceFactor = set.BalanceFactor()
	result.Rotations = set.Rotations()
	result.First, _ = set.First()
	result.Last, _ = set.Last()

	result.Check = "ok"
	if err := set.Check(); nil != err {
		log.Criticalf("check failed: %s", err)
		result.Check = err.Error()
	}

	return result, nil
}
