// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"sort"
	"time"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

type parityResult struct {
	Seed      uint64 `json:"seed"`
	Inserts   int    `json:"inserts"`
	Unique    int    `json:"unique"`
	Height    int    `json:"height"`
	Rotations uint64 `json:"rotations"`
}

func runParity(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	count := c.Int("count")
	if count <= 0 {
		return ErrPositiveCount
	}
	limit := c.Int("range")
	if limit <= 0 {
		return ErrPositiveRange
	}
	seed := c.Uint64("seed")
	if 0 == seed {
		seed = uint64(time.Now().UnixNano())
	}

	if m.verbose {
		fmt.Fprintf(m.e, "inserts: %d\n", count)
		fmt.Fprintf(m.e, "range:   %d\n", limit)
		fmt.Fprintf(m.e, "seed:    %d\n", seed)
	}

	result, err := parity(count, limit, seed)
	if nil != err {
		return err
	}

	if m.json {
		return printJson(m.w, result)
	}
	fmt.Fprintf(m.w, "seed: %d  inserts: %d  unique: %d  height: %d  rotations: %d\n",
		result.Seed, result.Inserts, result.Unique, result.Height, result.Rotations)
	return nil
}

// insert pseudo-random integers into both a set and a map and compare
// the results after every insert and at the end
func parity(count int, limit int, seed uint64) (*parityResult, error) {

	log := logger.New("parity")

	rng := rand.New(rand.NewPCG(seed, seed>>1))
	set := avl.New[int]()
	reference := make(map[int]struct{})

	for i := 0; i < count; i += 1 {
		value := rng.IntN(limit)
		_, present := reference[value]
		reference[value] = struct{}{}

		if set.Insert(value) == present {
			log.Errorf("seed: %d  insert[%d]: %d  already present: %t", seed, i, value, present)
			return nil, fault.ErrParityMismatch
		}
	}

	expected := make([]int, 0, len(reference))
	for value := range reference {
		expected = append(expected, value)
	}
	sort.Slice(expected, func(i, j int) bool {
		return expected[i] < expected[j]
	})

	if !slices.Equal(expected, set.Values()) {
		log.Errorf("seed: %d  sequence differs from reference", seed)
		return nil, fault.ErrParityMismatch
	}
	if err := set.Check(); nil != err {
		log.Errorf("seed: %d  check error: %s", seed, err)
		return nil, err
	}

	log.Infof("seed: %d  inserts: %d  unique: %d  rotations: %d", seed, count, set.Count(), set.Rotations())

	return &parityResult{
		Seed:      seed,
		Inserts:   count,
		Unique:    set.Count(),
		Height:    set.Height(),
		Rotations: set.Rotations(),
	}, nil
}
