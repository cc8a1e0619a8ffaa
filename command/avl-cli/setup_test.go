// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
)

func TestMain(m *testing.M) {
	setupTestLogger()
	rc := m.Run()
	teardownTestLogger()
	os.Exit(rc)
}

func setupTestLogger() {
	removeFiles()
	_ = os.Mkdir(testingDirName, 0700)

	logging := logger.Configuration{
		Directory: testingDirName,
		File:      "testing.log",
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "critical",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
	logStarted = true
}

func teardownTestLogger() {
	stopLogging()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}

// run the application with captured output
func runApp(args ...string) (string, string, error) {
	out := &bytes.Buffer{}
	messages := &bytes.Buffer{}
	app := newApp(out, messages)
	err := app.Run(append([]string{"avl-cli"}, args...))
	return out.String(), messages.String(), err
}
