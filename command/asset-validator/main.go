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
	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetsettle/configuration"
	"github.com/bitmark-inc/assetsettle/contract"
	"github.com/bitmark-inc/assetsettle/storage"
)

type metadata struct {
	config   *configuration.Configuration
	contract *contract.Contract
	store    *storage.Store
	log      *logger.L
	verbose  bool
	e        io.Writer
	w        io.Writer
}

// set by the linker: go build -ldflags "-X main.version=M.N" ./...
var version = "zero" // do not change this value

// commands that can run without a configuration file
var standalone = map[string]bool{
	"":        true,
	"help":    true,
	"h":       true,
	"version": true,
	"decode":  true,
	"fill":    true,
}

func main() {
	// ensure exit handler is first
	defer exitwithstatus.Handler()

	app := cli.NewApp()
	app.Name = "asset-validator"
	app.Usage = "validate asset order settlement transactions"
	app.Version = version
	app.HideVersion = true

	app.Writer = os.Stdout
	app.ErrWriter = os.Stderr

	app.Flags = []cli.Flag{
		cli.BoolFlag{
			Name:  "verbose, v",
			Usage: " verbose result",
		},
		cli.StringFlag{
			Name:  "config-file, c",
			Value: "",
			Usage: " configuration `FILE`",
		},
	}
	app.Commands = []cli.Command{
		{
			Name:      "decode",
			Usage:     "decode asset metadata",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "metadata, m",
					Value: "",
					Usage: "*metadata `HEX` from the last output",
				},
			},
			Action: runDecode,
		},
		{
			Name:      "fill",
			Usage:     "compute a partial fill",
			ArgsUsage: "\n   (* = required)",
			Flags: []cli.Flag{
				cli.StringFlag{
					Name:  "original, o",
					Value: "",
					Usage: "*value locked by the order in whole `COINS` e.g. 1.25",
				},
				cli.Uint64Flag{
					Name:  "total, t",
					Usage: "*units wanted by the order `UNITS`",
				},
				cli.Uint64Flag{
					Name:  "paid, p",
					Usage: "*units paid by the filler `UNITS`",
				},
				cli.StringFlag{
					Name:  "pricing, P",
					Value: "",
					Usage: " pricing `MODE` [integer|legacy-float] (default: from configuration or integer)",
				},
			},
			Action: runFill,
		},
		{
			Name:      "validate",
			Usage:     "validate the last transaction of each file against the store",
			ArgsUsage: "FILE...\n   each FILE is a JSON array of transactions",
			Flags: []cli.Flag{
				cli.BoolFlag{
					Name:  "save, s",
					Usage: " store the transactions of files that validate",
				},
			},
			Action: runValidate,
		},
		{
			Name:      "store",
			Usage:     "add transactions to the store without validation",
			ArgsUsage: "FILE...\n   each FILE is a JSON array of transactions",
			Action:    runStore,
		},
		{
			Name:   "watch",
			Usage:  "validate and store transaction files written to the watch directory",
			Action: runWatch,
		},
		{
			Name:  "version",
			Usage: "display asset-validator version",
			Action: func(c *cli.Context) error {
				fmt.Fprintf(c.App.Writer, "%s\n", version)
				return nil
			},
		},
	}

	// read the configuration
	app.Before = func(c *cli.Context) error {

		m := &metadata{
			verbose: c.GlobalBool("verbose"),
			e:       c.App.ErrWriter,
			w:       c.App.Writer,
		}
		c.App.Metadata["config"] = m

		// to suppress reading config file if certain commands
		file := c.GlobalString("config-file")
		if "" == file && standalone[c.Args().Get(0)] {
			return nil
		}

		if "" == file {
			return fmt.Errorf("a config-file is required for: %q", c.Args().Get(0))
		}
		if m.verbose {
			fmt.Fprintf(m.e, "reading config file: %s\n", file)
		}

		return m.setup(file)
	}

	// release resources
	app.After = func(c *cli.Context) error {
		m, ok := c.App.Metadata["config"].(*metadata)
		if ok {
			m.finalise()
		}
		return nil
	}

	err := app.Run(os.Args)
	if nil != err {
		exitwithstatus.Message("terminated with error: %s", err)
	}
}

// start logging, the contract and the store
func (m *metadata) setup(file string) error {
	theConfiguration, err := configuration.Get(file)
	if nil != err {
		return fmt.Errorf("failed to read configuration from: %q  error: %s", file, err)
	}
	m.config = theConfiguration

	if err = logger.Initialise(theConfiguration.Logging); nil != err {
		return fmt.Errorf("logger setup failed with error: %s", err)
	}

	// create a logger channel for the main program
	m.log = logger.New("main")
	m.log.Info("starting…")
	m.log.Infof("version: %s", version)
	m.log.Debugf("theConfiguration: %v", theConfiguration)

	key, err := theConfiguration.Contract.Key()
	if nil != err {
		return err
	}
	m.contract, err = contract.New(key)
	if nil != err {
		m.log.Criticalf("contract error: %s", err)
		return err
	}
	m.log.Infof("escrow address: %s", m.contract.EscrowAddress())
	m.log.Infof("pricing: %s", theConfiguration.PricingMode())

	m.log.Infof("database: %q", theConfiguration.Database.Name)
	m.store, err = storage.Open(theConfiguration.Database.Name, storage.ReadWrite, logger.New("storage"))
	if nil != err {
		m.log.Criticalf("storage initialise error: %s", err)
		return err
	}
	return nil
}

func (m *metadata) finalise() {
	if nil != m.store {
		m.store.Close()
		m.store = nil
	}
	if nil != m.log {
		m.log.Info("finished")
		logger.Finalise()
		m.log = nil
	}
}
