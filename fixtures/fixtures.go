// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fixtures - shared test data for the asset validators
package fixtures

import (
	"bytes"
	"fmt"
	"os"

	"github.com/bitmark-inc/logger"
	"golang.org/x/crypto/ed25519"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/contract"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
)

const (
	dir         = "testing"
	LogCategory = "testing"
)

var (
	// Contract - the default asset contract
	Contract = contract.Default()

	// Owner - creator of orders
	Owner = account.NewED25519(bytes.Repeat([]byte{0x11}, ed25519.PublicKeySize), false)

	// Filler - counterparty of orders
	Filler = account.NewED25519(bytes.Repeat([]byte{0x22}, ed25519.PublicKeySize), false)
)

// SetupTestLogger - start logging into a scratch directory
func SetupTestLogger() {
	removeFiles()
	_ = os.Mkdir(dir, 0700)

	logging := logger.Configuration{
		Directory: dir,
		File:      fmt.Sprintf("%s.log", LogCategory),
		Size:      1048576,
		Count:     10,
		Console:   false,
		Levels: map[string]string{
			logger.DefaultTag: "debug",
		},
	}

	// start logging
	_ = logger.Initialise(logging)
}

// TeardownTestLogger - stop logging and remove the scratch directory
func TeardownTestLogger() {
	logger.Finalise()
	removeFiles()
}

func removeFiles() {
	err := os.RemoveAll(dir)
	if nil != err {
		fmt.Println("remove dir with error: ", err)
	}
}

// Context - validation context over a set of transactions
func Context(log *logger.L, txs ...*ledger.Transaction) eval.Context {
	c := ledger.Collection{}
	c.Add(txs...)
	return eval.Context{
		Ledger:  c,
		Scripts: Contract,
		Log:     log,
	}
}

// Seal - build a transaction and compute its id
func Seal(inputs []ledger.Input, outputs ...ledger.Output) *ledger.Transaction {
	tx := &ledger.Transaction{
		Inputs:  inputs,
		Outputs: outputs,
	}
	if _, err := tx.Seal(); nil != err {
		panic(err)
	}
	return tx
}

// Spend - contract input spending an output of tx
func Spend(tx *ledger.Transaction, index uint32) ledger.Input {
	return ledger.Input{
		Previous:  ledger.Outpoint{TxId: tx.Id, Index: index},
		ScriptSig: Contract.ScriptSig([]byte{0x01}),
	}
}

// Fund - plain input from an unknown transaction
func Fund(label string) ledger.Input {
	return ledger.Input{
		Previous:  ledger.Outpoint{TxId: merkle.NewDigest([]byte(label)), Index: 0},
		ScriptSig: []byte{0x47, 0x30, 0x44},
	}
}

// Asset - contract controlled output for an account
func Asset(value uint64, owner *account.Account) ledger.Output {
	return ledger.Output{
		Value:  value,
		Script: Contract.ContractScript(owner.Bytes()),
	}
}

// Escrow - output at the unspendable escrow address
func Escrow(value uint64) ledger.Output {
	return ledger.Output{
		Value:  value,
		Script: Contract.EscrowScript(),
	}
}

// Plain - output paying an account directly
func Plain(value uint64, owner *account.Account) ledger.Output {
	return ledger.Output{
		Value:  value,
		Script: contract.PlainScript(owner.Bytes()),
	}
}

// Metadata - the trailing data output
func Metadata(packed assetrecord.Packed) ledger.Output {
	return ledger.Output{
		Value:  0,
		Script: contract.DataScript(packed),
	}
}

// Order - metadata output for any subtype referring to an asset
func Order(subtype assetrecord.Subtype, assetId merkle.Digest, price uint64, creator *account.Account) ledger.Output {
	packed, err := assetrecord.EncodeOrder(subtype, assetId, merkle.Digest{}, price, creator)
	if nil != err {
		panic(err)
	}
	return Metadata(packed)
}

// Swap - metadata output for the exchange subtypes
func Swap(subtype assetrecord.Subtype, assetId merkle.Digest, assetId2 merkle.Digest, price uint64, creator *account.Account) ledger.Output {
	packed, err := assetrecord.EncodeOrder(subtype, assetId, assetId2, price, creator)
	if nil != err {
		panic(err)
	}
	return Metadata(packed)
}

// Create - a create transaction minting units to the owner
func Create(units uint64, label string) *ledger.Transaction {
	return CreateBy(Owner, units, label)
}

// CreateBy - a create transaction minting units to creator
func CreateBy(creator *account.Account, units uint64, label string) *ledger.Transaction {
	packed, err := assetrecord.EncodeCreate(creator, label, "")
	if nil != err {
		panic(err)
	}
	return Seal(
		[]ledger.Input{Fund(label)},
		Asset(units, creator),
		Plain(10000, creator),
		Metadata(packed),
	)
}
