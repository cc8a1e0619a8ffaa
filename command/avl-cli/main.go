// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"io"
	"os"

	"github.com/bitmark-inc/exitwithstatus"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/avlset/version"
)

type metadata struct {
	verbose bool
	json    bool
	e       io.Writer
	w       io.Writer
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := newApp(os.Stdout, os.Stderr)
	err := app.Run(os.Args)
	stopLogging()

	if nil != err {
		fmt.Fprintf(app.ErrWriter, "terminated with error: %s\n", err)
		exitwithstatus.Exit(1)
	}
}

func newApp(w io.Writer, e io.Writer) *cli.App {

	app := cli.NewApp()
	app.Name = "avl-cli"
	app.Usage = "exercise and inspect AVL ordered sets"
	app.Version = version.Version
	app.HideVersion = true

	app.Writer = w
	app.ErrWriter = e

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.BoolFlag{
			Name:  "json, j",
			Usage: " output results as JSON",
		},
		cli.StringFlag{
			Name:  "log-directory, l",
			Value: "",
			Usage: " keep log files in `DIR` [temporary directory]",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "parity",
			Usage:     "insert random integers and compare with a reference set",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "count, n",
					Value: 10000,
					Usage: " number of inserts `COUNT`",
				},
				cli.IntFlag{
					Name:  "range, r",
					Value: 1000,
					Usage: " values are chosen from 0…`LIMIT`-1",
				},
				cli.Uint64Flag{
					Name:  "seed, s",
					Value: 0,
					Usage: " random `SEED`, 0 picks one from the clock",
				},
			},
			Action: runParity,
		},
		{
			Name:      "shape",
			Usage:     "insert integers in the order given and draw the tree",
			ArgsUsage: "*VALUE...",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "heights, H",
					Usage: " show height and balance factor of each node",
				},
			},
			Action: runShape,
		},
		{
			Name:      "check",
			Usage:     "load text files into a set and verify the tree",
			ArgsUsage: "*FILE...",
			Action:    runCheck,
		},
		{
			Name:  "version",
			Usage: "display avl-cli version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version.Version)
				return nil
			},
		},
	}

	app.Before = func(c *cli.Context) error {

		verbose := c.GlobalBool("verbose")

		c.App.Metadata["config"] = &metadata{
			verbose: verbose,
			json:    c.GlobalBool("json"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}

		// to suppress logging for certain commands
		command := c.Args().Get(0)
		if "" == command || "version" == command || "help" == command || "h" == command {
			return nil
		}

		return startLogging(c.GlobalString("log-directory"), verbose)
	}

	return app
}
