// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/json"
	"io/ioutil"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/settlement"
	"github.com/bitmark-inc/assetsettle/storage"
)

// validates transaction files against a store
type processor struct {
	store   *storage.Store
	scripts ledger.Scripts
	log     *logger.L
}

// read a JSON array of transactions
//
// a transaction without an id is given the digest of its packed form
func readTransactions(fileName string) ([]*ledger.Transaction, error) {
	b, err := ioutil.ReadFile(fileName)
	if nil != err {
		return nil, err
	}

	txs := []*ledger.Transaction{}
	err = json.Unmarshal(b, &txs)
	if nil != err {
		return nil, err
	}
	if 0 == len(txs) {
		return nil, ErrNoTransactions
	}

	for _, tx := range txs {
		if nil == tx {
			return nil, ErrNoTransactions
		}
		if tx.Id.IsEmpty() {
			if _, err := tx.Seal(); nil != err {
				return nil, err
			}
		}
	}
	return txs, nil
}

// validate the last transaction, the others are only used to resolve
// its inputs ahead of the store
func (p *processor) validate(txs []*ledger.Transaction) (*settlement.Report, error) {
	if 0 == len(txs) {
		return nil, ErrNoTransactions
	}
	if nil == p.store {
		return nil, ErrStoreNotOpen
	}

	last := len(txs) - 1
	local := ledger.Collection{}
	local.Add(txs[:last]...)

	ctx := eval.Context{
		Ledger:  ledger.Resolvers{local, p.store},
		Scripts: p.scripts,
		Log:     p.log,
	}
	return settlement.Validate(ctx, txs[last])
}

// add the transactions to the store and record a validated create
func (p *processor) save(txs []*ledger.Transaction, report *settlement.Report) error {
	if nil == p.store {
		return ErrStoreNotOpen
	}
	for _, tx := range txs {
		if err := p.store.Put(tx); nil != err {
			return err
		}
		p.log.Debugf("stored: %s", tx.Id)
	}

	if nil != report && assetrecord.Create == report.Subtype {
		if err := p.store.PutAsset(report.AssetId, report.Metadata.Name); nil != err {
			return err
		}
		p.log.Infof("asset: %s  name: %q", report.AssetId, report.Metadata.Name)
	}
	return nil
}

// validate a file, saving it if it passes
func (p *processor) process(fileName string, save bool) (*settlement.Report, error) {
	txs, err := readTransactions(fileName)
	if nil != err {
		p.log.Errorf("read: %q  error: %s", fileName, err)
		return nil, err
	}

	report, err := p.validate(txs)
	if nil != err {
		p.log.Warnf("rejected: %q  error: %s", fileName, err)
		return nil, err
	}
	p.log.Infof("accepted: %q  tx: %s  subtype: %s", fileName, report.TxId, report.Subtype)

	if save {
		if err := p.save(txs, report); nil != err {
			p.log.Errorf("save: %q  error: %s", fileName, err)
			return report, err
		}
	}
	return report, nil
}
