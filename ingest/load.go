// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest

import (
	"fmt"
	"io"
	"strconv"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
)

// Parser - convert the text of a value
type Parser[T any] func(string) (T, error)

// ParseString - values are the text itself
func ParseString(s string) (string, error) {
	return s, nil
}

// ParseInteger - values are signed decimal integers
func ParseInteger(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if nil != err {
		return 0, fault.ErrInvalidValue
	}
	return n, nil
}

// Statistics - result of loading a source
type Statistics struct {
	Read       int `json:"read"`
	Added      int `json:"added"`
	Duplicates int `json:"duplicates"`
}

// Add - accumulate another source's statistics
func (s *Statistics) Add(other Statistics) {
	s.Read += other.Read
	s.Added += other.Added
	s.Duplicates += other.Duplicates
}

// Load - insert every value of a source into a set
//
// stops at the first read or parse error, values read before the
// error remain in the set
//
// a source that is also an io.Closer is closed before returning
func Load[T any](log *logger.L, src Source, parse Parser[T], set *avl.Set[T]) (Statistics, error) {
	if c, ok := src.(io.Closer); ok {
		defer c.Close()
	}

	stats := Statistics{}

	log.Debugf("load from: %q", src.Name())
	for {
		item, err := src.Read()
		if io.EOF == err {
			break
		}
		if nil != err {
			log.Errorf("read: %q  error: %s", src.Name(), err)
			return stats, err
		}
		stats.Read += 1

		value, err := parse(item)
		if nil != err {
			log.Errorf("parse: %q item[%d]: %q  error: %s", src.Name(), stats.Read, item, err)
			return stats, fmt.Errorf("%s: item %d: %q: %w", src.Name(), stats.Read, item, err)
		}

		if set.Insert(value) {
			stats.Added += 1
		} else {
			stats.Duplicates += 1
			log.Tracef("duplicate: %q", item)
		}
	}
	log.Infof("loaded: %q  read: %d  added: %d  duplicates: %d", src.Name(), stats.Read, stats.Added, stats.Duplicates)
	return stats, nil
}
