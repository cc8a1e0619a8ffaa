// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"io"
	"os"
	"strings"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/bitmark-inc/getoptions"
	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/avl"
	"github.com/bitmark-inc/avlset/fault"
	"github.com/bitmark-inc/avlset/ingest"
)

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// main program
func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	flags := []getoptions.Option{
		{Long: "help", HasArg: getoptions.NO_ARGUMENT, Short: 'h'},
		{Long: "verbose", HasArg: getoptions.NO_ARGUMENT, Short: 'v'},
		{Long: "quiet", HasArg: getoptions.NO_ARGUMENT, Short: 'q'},
		{Long: "version", HasArg: getoptions.NO_ARGUMENT, Short: 'V'},
		{Long: "config-file", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'c'},
		{Long: "define", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'D'},
		{Long: "numeric", HasArg: getoptions.NO_ARGUMENT, Short: 'n'},
		{Long: "tree", HasArg: getoptions.NO_ARGUMENT, Short: 't'},
		{Long: "check", HasArg: getoptions.NO_ARGUMENT, Short: 'k'},
		{Long: "output", HasArg: getoptions.REQUIRED_ARGUMENT, Short: 'o'},
	}

	program, options, arguments, err := getoptions.GetOS(flags)
	if nil != err {
		exitwithstatus.Message("%s: getoptions error: %s", program, err)
	}

	if len(options["version"]) > 0 {
		processSetupCommand(program, []string{"version"})
		return
	}

	if len(options["help"]) > 0 {
		processSetupCommand(program, []string{"help"})
		return
	}

	// these commands do not require the configuration
	if len(arguments) > 0 && processSetupCommand(program, arguments) {
		return
	}

	if len(options["config-file"]) > 1 {
		exitwithstatus.Message("%s: only one config-file option is allowed, %d were detected", program, len(options["config-file"]))
	}

	variables := make(map[string]string)
	for _, d := range options["define"] {
		s := strings.SplitN(d, "=", 2)
		if 2 != len(s) || "" == s[0] {
			exitwithstatus.Message("%s: define: %q is not of the form NAME=VALUE", program, d)
		}
		variables[s[0]] = s[1]
	}

	// read options and parse the configuration file
	theConfiguration := (*Configuration)(nil)
	if 1 == len(options["config-file"]) {
		configurationFile := options["config-file"][0]
		theConfiguration, err = getConfiguration(configurationFile, variables)
		if nil != err {
			exitwithstatus.Message("%s: failed to read configuration from: %q  error: %s", program, configurationFile, err)
		}
	} else {
		theConfiguration, err = defaultConfiguration()
		if nil != err {
			exitwithstatus.Message("%s: default configuration error: %s", program, err)
		}
	}

	// command line overrides
	if len(options["numeric"]) > 0 {
		theConfiguration.Numeric = true
	}
	if len(options["tree"]) > 0 {
		theConfiguration.PrintTree = true
	}
	if len(options["check"]) > 0 {
		theConfiguration.Check = true
	}
	if len(options["output"]) > 0 {
		theConfiguration.Output = options["output"][0]
	}
	if len(options["verbose"]) > 0 {
		theConfiguration.Logging.Console = true
	}
	quiet := len(options["quiet"]) > 0

	// these commands require the configuration and
	// perform enquiries on the configuration
	if len(arguments) > 0 && processConfigCommand(arguments, theConfiguration) {
		return
	}

	// remaining arguments are input files
	if len(arguments) > 0 && ("sort" == arguments[0] || "run" == arguments[0]) {
		arguments = arguments[1:]
	}

	// start logging
	if err = os.MkdirAll(theConfiguration.Logging.Directory, 0700); nil != err {
		exitwithstatus.Message("%s: log directory: %q creation failed, error: %s", program, theConfiguration.Logging.Directory, err)
	}
	if err = logger.Initialise(theConfiguration.Logging.convert()); nil != err {
		exitwithstatus.Message("%s: logger setup failed with error: %s", program, err)
	}
	defer logger.Finalise()

	if err = fault.Initialise(); nil != err {
		exitwithstatus.Message("%s: fault setup failed with error: %s", program, err)
	}
	defer fault.Finalise()

	// create a logger channel for the main program
	log := logger.New("main")
	defer log.Info("finished")
	log.Info("starting…")
	log.Infof("version: %s", version)
	log.Debugf("theConfiguration: %v", theConfiguration)

	sources, err := makeSources(theConfiguration, arguments)
	if nil != err {
		log.Criticalf("input error: %s", err)
		exitwithstatus.Message("%s: input error: %s", program, err)
	}
	defer closeSources(sources)

	out := os.Stdout
	if "" != theConfiguration.Output && "-" != theConfiguration.Output {
		out, err = os.Create(theConfiguration.Output)
		if nil != err {
			log.Criticalf("output: %q error: %s", theConfiguration.Output, err)
			exitwithstatus.Message("%s: output: %q error: %s", program, theConfiguration.Output, err)
		}
		defer out.Close()
	}

	var diagnostics io.Writer = os.Stderr
	if quiet {
		diagnostics = nil
	}

	if theConfiguration.Numeric {
		err = sortValues(log, theConfiguration, sources, ingest.ParseInteger, avl.New[int64](), out, diagnostics)
	} else {
		err = sortValues(log, theConfiguration, sources, ingest.ParseString, avl.New[string](), out, diagnostics)
	}
	if nil != err {
		log.Criticalf("sort error: %s", err)
		exitwithstatus.Message("%s: error: %s", program, err)
	}
}
