// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

import (
	"fmt"
	"os"
	"runtime"
	"time"

	"github.com/bitmark-inc/logger"
)

// hold a logger channel
var log *logger.L

// Initialise - setup a log channel for last attempt to log something
func Initialise() error {
	if nil != log {
		return ErrAlreadyInitialised
	}
	log = logger.New("PANIC")
	if nil == log {
		return ErrInvalidLoggerChannel
	}
	return nil
}

// Finalise - flush any data
func Finalise() {
	if nil != log {
		log.Flush()
	}
}

// Criticalf - log a formatted string with arguments like fmt.Sprintf()
func Criticalf(format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
}

// Panicf - log then panic with a formatted message
//
// the panic value is the error so callers may recover and compare
func Panicf(err error, format string, arguments ...interface{}) {
	if _, file, line, ok := runtime.Caller(1); ok {
		a := make([]interface{}, 2, 2+len(arguments))
		a[0] = file
		a[1] = line
		a = append(a, arguments...)
		internalCriticalf("(%q:%d) "+format, a...)
	} else {
		internalCriticalf(format, arguments...)
	}
	if nil != log {
		time.Sleep(100 * time.Millisecond) // to allow logging output
	}
	panic(err)
}

// internal routines to handle uninitialised logger channel
func internalCriticalf(format string, arguments ...interface{}) {
	if nil == log {
		fmt.Fprintf(os.Stderr, "*** "+format+"\n", arguments...)
	} else {
		log.Criticalf(format, arguments...)
		log.Flush() // make sure log file is saved
	}
}
