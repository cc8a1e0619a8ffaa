// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ingest_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
)

const (
	testingDirName = "testing"
	logCategory    = "testing"
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
}

func teardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	_ = os.RemoveAll(testingDirName)
}
