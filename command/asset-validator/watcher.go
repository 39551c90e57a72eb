// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bitmark-inc/logger"
	"github.com/fsnotify/fsnotify"

	"github.com/bitmark-inc/assetsettle/background"
	"github.com/bitmark-inc/assetsettle/counter"
	"github.com/bitmark-inc/assetsettle/fault"
)

const (
	transactionSuffix = ".json"
	acceptedSuffix    = ".accepted"
	rejectedSuffix    = ".rejected"
)

// watches a directory for transaction files
type dirWatcher struct {
	log       *logger.L
	watcher   *fsnotify.Watcher
	directory string
	p         *processor
	processed chan string
	bg        *background.T
	accepted  counter.Counter
	rejected  counter.Counter
}

func newDirWatcher(directory string, p *processor, log *logger.L) (*dirWatcher, error) {
	directory, err := filepath.Abs(filepath.Clean(directory))
	if nil != err {
		log.Errorf("parse directory %s error: %v", directory, err)
		return nil, err
	}

	info, err := os.Stat(directory)
	if nil != err {
		return nil, err
	}
	if !info.IsDir() {
		return nil, fault.ErrInvalidDataDirectory
	}

	watcher, err := fsnotify.NewWatcher()
	if nil != err {
		log.Errorf("new watcher with error: %s", err)
		return nil, err
	}

	return &dirWatcher{
		log:       log,
		watcher:   watcher,
		directory: directory,
		p:         p,
		processed: make(chan string, 10),
	}, nil
}

// Start - process files already present then follow new ones
func (w *dirWatcher) Start() error {
	err := w.watcher.Add(w.directory)
	if nil != err {
		w.log.Errorf("watcher add error: %v, abort", err)
		return err
	}

	matches, err := filepath.Glob(filepath.Join(w.directory, "*"+transactionSuffix))
	if nil != err {
		return err
	}
	for _, fileName := range matches {
		w.handle(fileName)
	}

	w.bg = background.Start(background.Processes{w}, nil)
	return nil
}

// Stop - end the event loop and release the watcher
func (w *dirWatcher) Stop() {
	if nil != w.bg {
		w.bg.Stop()
	}
	w.watcher.Close()
	if w.allAccepted() {
		w.log.Infof("accepted: %d  none rejected", w.accepted.Uint64())
	} else {
		w.log.Warnf("accepted: %d  rejected: %d", w.accepted.Uint64(), w.rejected.Uint64())
	}
}

// true until some file is rejected
func (w *dirWatcher) allAccepted() bool {
	return w.rejected.IsZero()
}

// Run - the event loop
func (w *dirWatcher) Run(args interface{}, shutdown <-chan struct{}) {
	w.log.Info("starting…")
	defer w.log.Info("stopped")
	for {
		select {
		case <-shutdown:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.log.Debugf("file event: %v", event)
			if watcherEventFileChange(event) {
				w.handle(event.Name)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.Errorf("watcher error: %s", err)
		}
	}
}

// validate one file and rename it by the outcome
//
// a file that cannot be read or parsed is left in place, a later
// write will trigger another attempt
func (w *dirWatcher) handle(fileName string) {
	if !strings.HasSuffix(fileName, transactionSuffix) {
		return
	}

	txs, err := readTransactions(fileName)
	if nil != err {
		w.log.Debugf("incomplete: %q  error: %s", fileName, err)
		return
	}

	suffix := acceptedSuffix
	report, err := w.p.validate(txs)
	if nil != err {
		w.log.Warnf("rejected: %q  error: %s", fileName, err)
		suffix = rejectedSuffix
		w.rejected.Increment()
	} else if err := w.p.save(txs, report); nil != err {
		w.log.Errorf("save: %q  error: %s", fileName, err)
		return
	} else {
		w.log.Infof("accepted: %q  tx: %s  subtype: %s", fileName, report.TxId, report.Subtype)
		w.accepted.Increment()
	}

	target := strings.TrimSuffix(fileName, transactionSuffix) + suffix
	if err := os.Rename(fileName, target); nil != err {
		w.log.Errorf("rename: %q  error: %s", fileName, err)
		return
	}
	w.notify(target)
}

// report a processed file without blocking
func (w *dirWatcher) notify(fileName string) {
	if len(w.processed) == cap(w.processed) {
		w.log.Infof("processed channel full, discard event: %s", fileName)
		return
	}
	w.processed <- fileName
}

func watcherEventFileChange(event fsnotify.Event) bool {
	return event.Op&fsnotify.Create == fsnotify.Create ||
		event.Op&fsnotify.Write == fsnotify.Write
}
