// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest

import (
	"bufio"
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/avlset/fault"
)

//go:generate mockgen -destination=mocks/source.go -package=mocks github.com/bitmark-inc/avlset/ingest Source

// Source - a stream of textual values
//
// Read returns io.EOF after the last value
type Source interface {
	Name() string
	Read() (string, error)
}

// ReaderSource - one value per line
//
// leading and trailing space is removed, blank lines and lines
// starting with '#' are skipped
type ReaderSource struct {
	name    string
	scanner *bufio.Scanner
	closer  io.Closer
	line    int
}

// NewReaderSource - values from an open reader
func NewReaderSource(name string, r io.Reader) *ReaderSource {
	return &ReaderSource{
		name:    name,
		scanner: bufio.NewScanner(r),
	}
}

// NewFileSource - values from a file, which is closed at the end or
// by Close
func NewFileSource(fileName string) (*ReaderSource, error) {
	f, err := os.Open(fileName)
	if nil != err {
		if os.IsNotExist(err) {
			return nil, fault.ErrNoSuchInput
		}
		return nil, err
	}
	s := NewReaderSource(fileName, f)
	s.closer = f
	return s, nil
}

// Name - file or stream name for messages
func (s *ReaderSource) Name() string {
	return s.name
}

// Line - number of the line last read
func (s *ReaderSource) Line() int {
	return s.line
}

// Read - next non-blank, non-comment line
func (s *ReaderSource) Read() (string, error) {
	for s.scanner.Scan() {
		s.line += 1
		item := strings.TrimSpace(s.scanner.Text())
		if "" == item || '#' == item[0] {
			continue
		}
		return item, nil
	}
	err := s.scanner.Err()
	s.Close()
	if nil != err {
		return "", err
	}
	return "", io.EOF
}

// Close - release the underlying file, safe to call more than once
//
// a source built on a plain reader does not close that reader
func (s *ReaderSource) Close() error {
	if nil == s.closer {
		return nil
	}
	err := s.closer.Close()
	s.closer = nil
	return err
}

// ListSource - values from memory, e.g. a configuration file
type ListSource struct {
	name   string
	values []string
	index  int
}

// NewListSource - values from a list
func NewListSource(name string, values []string) *ListSource {
	return &ListSource{
		name:   name,
		values: values,
	}
}

// Name - list name for messages
func (s *ListSource) Name() string {
	return s.name
}

// Read - next value from the list
func (s *ListSource) Read() (string, error) {
	if s.index >= len(s.values) {
		return "", io.EOF
	}
	v := s.values[s.index]
	s.index += 1
	return v, nil
}
