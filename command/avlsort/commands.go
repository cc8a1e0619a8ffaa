// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/bitmark-inc/exitwithstatus"

	"github.com/bitmark-inc/avlset/fault"
)

// sample written by create-config
const sampleConfiguration = `-- avlsort.conf  -*- mode: lua -*-

local M = {}

-- relative paths below are from this directory
-- "." is the directory containing this file
M.data_directory = "."

-- compare values as signed integers instead of text
M.numeric = false

-- files to read, one value per line
M.inputs = {
    -- "values.txt",
}

-- values included before any input file
M.values = {
}

-- output file, "" or "-" for stdout
M.output = ""

-- draw the tree on stderr after sorting
M.print_tree = false

-- verify order, heights and balance after sorting
M.check = false

M.logging = {
    size = 1048576,
    count = 10,

    -- set to true to log to console
    console = false,

    -- set the logging level for various modules
    -- modules not overridden with get the value from DEFAULT
    -- the default value for DEFAULT is "critical"
    levels = {
        DEFAULT = "info",
        -- main = "debug",
    },
}

return M
`

// setup command handler
//
// commands that run without reading the configuration file
func processSetupCommand(program string, arguments []string) bool {

	command := "help"
	if len(arguments) > 0 {
		command = arguments[0]
		arguments = arguments[1:]
	}

	switch command {
	case "create-config", "cc":
		if len(arguments) < 1 {
			exitwithstatus.Message("%s: create-config: missing file name", program)
		}
		fileName := arguments[0]
		if err := createConfiguration(fileName); nil != err {
			fmt.Printf("create configuration: %q error: %s\n", fileName, err)
			exitwithstatus.Exit(1)
		}
		fmt.Printf("created configuration: %q\n", fileName)

	case "sort", "run":
		return false // continue processing

	case "config-test", "cfg":
		return false // defer processing until configuration is read

	case "version", "v":
		if len(arguments) > 0 {
			return false // a list of input files
		}
		fmt.Printf("%s\n", version)

	default:
		// any other argument is an input file
		if "help" != command && "h" != command && "?" != command {
			return false
		}
		if len(arguments) > 0 {
			return false // a list of input files
		}
		fmt.Printf("usage: %s [--help] [--verbose] [--quiet] [--config-file=FILE] [--define=NAME=VALUE] [--numeric] [--tree] [--check] [--output=FILE] [[command|help] arguments...]\n", program)

		fmt.Printf("supported commands:\n\n")
		fmt.Printf("  help                       (h)      - display this message\n\n")
		fmt.Printf("  version                    (v)      - display version string\n\n")

		fmt.Printf("  create-config FILE         (cc)     - write a sample configuration to FILE\n")
		fmt.Printf("\n")

		fmt.Printf("  config-test                (cfg)    - just check the configuration file\n")
		fmt.Printf("\n")

		fmt.Printf("  sort [FILE...]             (run)    - print the unique values of the inputs in order\n")
		fmt.Printf("                                        same as giving only file names\n")
		fmt.Printf("                                        no inputs at all reads stdin\n")
		fmt.Printf("                                        use this form for a file named like a command\n")
		fmt.Printf("\n")
	}

	return true
}

// configuration command handler
//
// commands that only inspect the configuration
func processConfigCommand(arguments []string, options *Configuration) bool {

	switch arguments[0] {
	case "config-test", "cfg":
		b, err := json.MarshalIndent(options, "", "  ")
		if nil != err {
			exitwithstatus.Message("config-test: JSON error: %s", err)
		}
		fmt.Printf("configuration: %s\n", b)
		return true

	default:
		return false
	}
}

// write the sample, never replacing an existing file
func createConfiguration(fileName string) error {
	f, err := os.OpenFile(fileName, os.O_WRONLY|os.O_EXCL|os.O_CREATE, 0600)
	if nil != err {
		if os.IsExist(err) {
			return fault.ErrConfigFileExists
		}
		return err
	}
	defer f.Close()

	_, err = f.WriteString(sampleConfiguration)
	return err
}
