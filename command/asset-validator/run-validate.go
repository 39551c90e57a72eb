// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetsettle/settlement"
)

type validateReply struct {
	File   string             `json:"file"`
	Valid  bool               `json:"valid"`
	Error  string             `json:"error,omitempty"`
	Report *settlement.Report `json:"report,omitempty"`
}

func (m *metadata) processor() *processor {
	return &processor{
		store:   m.store,
		scripts: m.contract,
		log:     logger.New("validator"),
	}
}

func runValidate(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := c.Args()
	if 0 == len(files) {
		return ErrNoFiles
	}

	p := m.processor()
	save := c.Bool("save")
	rejected := 0

	for _, file := range files {
		if m.verbose {
			fmt.Fprintf(m.e, "validate: %s\n", file)
		}

		reply := validateReply{
			File: file,
		}
		report, err := p.process(file, save)
		if nil != err {
			reply.Error = err.Error()
			rejected += 1
		} else {
			reply.Valid = true
			reply.Report = report
		}
		if err := printJson(m.w, reply); nil != err {
			return err
		}
	}

	if 0 != rejected {
		return fmt.Errorf("%d of %d files rejected", rejected, len(files))
	}
	return nil
}

func runStore(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	files := c.Args()
	if 0 == len(files) {
		return ErrNoFiles
	}

	p := m.processor()
	for _, file := range files {
		txs, err := readTransactions(file)
		if nil != err {
			return fmt.Errorf("file: %q  error: %s", file, err)
		}
		if err := p.save(txs, nil); nil != err {
			return fmt.Errorf("file: %q  error: %s", file, err)
		}
		if m.verbose {
			fmt.Fprintf(m.e, "stored: %d transactions from: %s\n", len(txs), file)
		}
	}
	return nil
}
