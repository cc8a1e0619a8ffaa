// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/avlset/configuration"
)

// basic defaults (directories and files are relative to the "DataDirectory" from Configuration file)
const (
	defaultDataDirectory = "." // same directory as the config file

	defaultLogDirectory = "log"
	defaultLogFile      = "avlsort.log"
	defaultLogCount     = 10          //  number of log files retained
	defaultLogSize      = 1024 * 1024 // rotate when <logfile> exceeds this size
)

// to hold log levels
type LoglevelMap map[string]string

// path expanded or calculated defaults
var (
	defaultLogLevels = LoglevelMap{
		"main":            "info",
		logger.DefaultTag: "critical",
	}
)

// LoggingType - log settings, converted to logger.Configuration
type LoggingType struct {
	Directory string      `gluamapper:"directory" json:"directory"`
	File      string      `gluamapper:"file" json:"file"`
	Size      int         `gluamapper:"size" json:"size"`
	Count     int         `gluamapper:"count" json:"count"`
	Console   bool        `gluamapper:"console" json:"console"`
	Levels    LoglevelMap `gluamapper:"levels" json:"levels"`
}

// Configuration - everything the Lua file can set
type Configuration struct {
	DataDirectory string      `gluamapper:"data_directory" json:"data_directory"`
	Numeric       bool        `gluamapper:"numeric" json:"numeric"`
	Inputs        []string    `gluamapper:"inputs" json:"inputs"`
	Values        []string    `gluamapper:"values" json:"values"`
	Output        string      `gluamapper:"output" json:"output"`
	PrintTree     bool        `gluamapper:"print_tree" json:"print_tree"`
	Check         bool        `gluamapper:"check" json:"check"`
	Logging       LoggingType `gluamapper:"logging" json:"logging"`
}

func (l LoggingType) convert() logger.Configuration {
	return logger.Configuration{
		Directory: l.Directory,
		File:      l.File,
		Size:      l.Size,
		Count:     l.Count,
		Console:   l.Console,
		Levels:    l.Levels,
	}
}

func newConfiguration() *Configuration {
	levels := make(LoglevelMap, len(defaultLogLevels))
	for k, v := range defaultLogLevels {
		levels[k] = v
	}

	return &Configuration{
		DataDirectory: defaultDataDirectory,
		Numeric:       false,
		Inputs:        []string{},
		Values:        []string{},
		Output:        "", // stdout

		Logging: LoggingType{
			Directory: defaultLogDirectory,
			File:      defaultLogFile,
			Size:      defaultLogSize,
			Count:     defaultLogCount,
			Console:   false,
			Levels:    levels,
		},
	}
}

// configuration used when no file is given, relative to the
// current directory
func defaultConfiguration() (*Configuration, error) {
	options := newConfiguration()

	currentDirectory, err := os.Getwd()
	if nil != err {
		return nil, err
	}
	options.DataDirectory = currentDirectory
	options.Logging.Directory = filepath.Join(os.TempDir(), "avlsort")
	return options, nil
}

// will read decode and verify the configuration
func getConfiguration(configurationFileName string, variables map[string]string) (*Configuration, error) {

	configurationFileName, err := filepath.Abs(filepath.Clean(configurationFileName))
	if nil != err {
		return nil, err
	}

	// absolute path to the main directory
	dataDirectory, _ := filepath.Split(configurationFileName)

	options := newConfiguration()

	if err := configuration.ParseConfigurationFile(configurationFileName, options, variables); err != nil {
		return nil, err
	}

	// ensure absolute data directory
	if "" == options.DataDirectory || "~" == options.DataDirectory {
		return nil, fmt.Errorf("Path: %q is not a valid directory", options.DataDirectory)
	} else if "." == options.DataDirectory {
		options.DataDirectory = dataDirectory // same directory as the configuration file
	} else {
		options.DataDirectory = filepath.Clean(options.DataDirectory)
	}

	// this directory must exist - i.e. must be created prior to running
	if fileInfo, err := os.Stat(options.DataDirectory); nil != err {
		return nil, err
	} else if !fileInfo.IsDir() {
		return nil, fmt.Errorf("Path: %q is not a directory", options.DataDirectory)
	}

	// force all relevant items to be absolute paths
	// if not, assign them to the data directory
	for i, f := range options.Inputs {
		if "-" != f {
			options.Inputs[i] = ensureAbsolute(options.DataDirectory, f)
		}
	}
	if "" != options.Output && "-" != options.Output {
		options.Output = ensureAbsolute(options.DataDirectory, options.Output)
	}
	options.Logging.Directory = ensureAbsolute(options.DataDirectory, options.Logging.Directory)

	return options, nil
}

// ensure the path is absolute
func ensureAbsolute(directory string, filePath string) string {
	if !filepath.IsAbs(filePath) {
		filePath = filepath.Join(directory, filePath)
	}
	return filepath.Clean(filePath)
}
