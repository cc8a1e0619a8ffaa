// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/fault"
)

const (
	logFile  = "avl-cli.log"
	logCount = 2
	logSize  = 1024 * 1024
)

var (
	logStarted   bool
	logTemporary string // removed by stopLogging
)

// start the logger once per process
func startLogging(directory string, verbose bool) error {
	if logStarted {
		return nil
	}

	if "" == directory {
		d, err := os.MkdirTemp("", "avl-cli-")
		if nil != err {
			return err
		}
		directory = d
		logTemporary = d
	} else if err := os.MkdirAll(directory, 0700); nil != err {
		return err
	}

	level := "critical"
	if verbose {
		level = "info"
	}

	logging := logger.Configuration{
		Directory: directory,
		File:      logFile,
		Size:      logSize,
		Count:     logCount,
		Console:   verbose,
		Levels: map[string]string{
			logger.DefaultTag: level,
		},
	}
	if err := logger.Initialise(logging); nil != err {
		return err
	}
	logStarted = true

	if err := fault.Initialise(); nil != err && fault.ErrAlreadyInitialised != err {
		return err
	}
	return nil
}

// flush the log and remove any temporary directory
func stopLogging() {
	if !logStarted {
		return
	}
	fault.Finalise()
	logger.Finalise()
	logStarted = false
	if "" != logTemporary {
		_ = os.RemoveAll(logTemporary)
		logTemporary = ""
	}
}
