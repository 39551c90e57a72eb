// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/bitmark-inc/logger"
	"github.com/urfave/cli"
)

func runWatch(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	log := logger.New("watcher")
	w, err := newDirWatcher(m.config.Watch, m.processor(), log)
	if nil != err {
		return err
	}
	defer w.Stop()

	m.log.Infof("watching: %q", m.config.Watch)
	if err := w.Start(); nil != err {
		return err
	}

	// wait for a signal
	ch := make(chan os.Signal, 1)
	signal.Notify(ch, syscall.SIGINT, syscall.SIGTERM)
	for {
		select {
		case sig := <-ch:
			m.log.Infof("received signal: %v", sig)
			return nil
		case fileName := <-w.processed:
			m.log.Infof("processed: %q  accepted: %d  rejected: %d", fileName, w.accepted.Uint64(), w.rejected.Uint64())
		}
	}
}
