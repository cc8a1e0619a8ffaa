// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/ingest"
)

func TestSortStrings(t *testing.T) {
	options := newConfiguration()
	options.Check = true
	options.PrintTree = true

	sources := []ingest.Source{
		ingest.NewListSource("one", []string{"pear", "apple", "fig"}),
		ingest.NewListSource("two", []string{"fig", "banana"}),
	}

	out := &bytes.Buffer{}
	diagnostics := &bytes.Buffer{}
	err := sortValues(logger.New(logCategory), options, sources, ingest.ParseString, avl.New[string](), out, diagnostics)
	assert.Nil(t, err, "sort error")

	assert.Equal(t, "apple\nbanana\nfig\npear\n", out.String(), "output")
	assert.Contains(t, diagnostics.String(), "read: 5  unique: 4  duplicates: 1", "summary")
	assert.Contains(t, diagnostics.String(), "|------+ ", "tree drawing")
}

func TestSortNumeric(t *testing.T) {
	options := newConfiguration()

	sources := []ingest.Source{
		ingest.NewListSource("numbers", []string{"10", "-3", "2", "10", "100"}),
	}

	out := &bytes.Buffer{}
	err := sortValues(logger.New(logCategory), options, sources, ingest.ParseInteger, avl.New[int64](), out, nil)
	assert.Nil(t, err, "sort error")
	assert.Equal(t, "-3\n2\n10\n100\n", out.String(), "numeric order")
}

func TestSortParseFailure(t *testing.T) {
	options := newConfiguration()

	sources := []ingest.Source{
		ingest.NewListSource("numbers", []string{"1", "two"}),
	}

	out := &bytes.Buffer{}
	err := sortValues(logger.New(logCategory), options, sources, ingest.ParseInteger, avl.New[int64](), out, nil)
	assert.True(t, errors.Is(err, fault.ErrInvalidValue), "error: %v", err)
	assert.Equal(t, "", out.String(), "no output")
}

func TestMakeSources(t *testing.T) {
	directory := t.TempDir()
	a := filepath.Join(directory, "a.txt")
	b := filepath.Join(directory, "b.txt")
	assert.Nil(t, os.WriteFile(a, []byte("x\n"), 0600))
	assert.Nil(t, os.WriteFile(b, []byte("y\n"), 0600))

	options := newConfiguration()
	options.Values = []string{"v"}
	options.Inputs = []string{a}

	sources, err := makeSources(options, []string{b, "-"})
	assert.Nil(t, err, "sources error")
	defer closeSources(sources)
	assert.Equal(t, 4, len(sources), "source count")

	names := []string{}
	for _, s := range sources {
		names = append(names, s.Name())
	}
	assert.Equal(t, []string{"configuration", a, b, "stdin"}, names, "source order")

	sources, err = makeSources(newConfiguration(), nil)
	assert.Nil(t, err, "stdin error")
	assert.Equal(t, 1, len(sources), "stdin only")
	assert.Equal(t, "stdin", sources[0].Name(), "stdin name")

	_, err = makeSources(newConfiguration(), []string{filepath.Join(directory, "missing.txt")})
	assert.True(t, errors.Is(err, fault.ErrNoSuchInput), "missing input: %v", err)
}

func TestMakeSourcesClosesOnError(t *testing.T) {
	const fdDirectory = "/proc/self/fd"
	if _, err := os.Stat(fdDirectory); nil != err {
		t.Skipf("cannot count descriptors: %s", err)
	}
	openFiles := func() int {
		entries, err := os.ReadDir(fdDirectory)
		assert.Nil(t, err, "read descriptors")
		return len(entries)
	}

	directory := t.TempDir()
	a := filepath.Join(directory, "a.txt")
	assert.Nil(t, os.WriteFile(a, []byte("x\n"), 0600))
	missing := filepath.Join(directory, "missing.txt")

	before := openFiles()
	for i := 0; i < 20; i += 1 {
		sources, err := makeSources(newConfiguration(), []string{a, a, missing})
		assert.Nil(t, sources, "no sources on error")
		assert.True(t, errors.Is(err, fault.ErrNoSuchInput), "missing input: %v", err)
	}
	assert.Equal(t, before, openFiles(), "descriptors still open")
}

func TestSetupCommandWithFiles(t *testing.T) {
	// command words followed by more arguments are input files
	assert.False(t, processSetupCommand("avlsort", []string{"v", "a.txt"}), "v with a file")
	assert.False(t, processSetupCommand("avlsort", []string{"help", "b.txt"}), "help with a file")
	assert.False(t, processSetupCommand("avlsort", []string{"sort", "v"}), "explicit sort")
	assert.False(t, processSetupCommand("avlsort", []string{"data.txt"}), "plain file")

	assert.True(t, processSetupCommand("avlsort", []string{"version"}), "version alone")
}
