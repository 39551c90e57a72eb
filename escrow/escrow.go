// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package escrow - validate inputs that spend an order's escrow output
//
// every order keeps its escrow at output 0 of the offer transaction,
// locked to the unspendable contract address
package escrow

import (
	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/vout"
)

// the input spending the order escrow in a fill
const orderInput = 1

// Escrow - a validated escrow input and the order it belongs to
type Escrow struct {
	Value           uint64                // value of the escrow output
	Units           uint64                // asset units held, sell offers only
	Source          *ledger.Transaction   // the offer transaction
	Metadata        *assetrecord.Metadata // the offer's metadata
	ContractAddress account.Address       // creator's contract controlled address
	CreatorAddress  account.Address       // creator's plain address
}

// ValidateInput - check that an input spends a valid escrow output
func ValidateInput(ctx eval.Context, tx *ledger.Transaction, inputIndex int) (*Escrow, error) {
	if len(tx.Inputs) < 2 {
		return nil, ctx.Invalid(fault.ErrNotEnoughInputs, "tx: %s  inputs: %d", tx.Id, len(tx.Inputs))
	}
	input, ok := tx.Input(inputIndex)
	if !ok {
		return nil, ctx.Invalid(fault.ErrInputIndexOutOfRange, "tx: %s  input: %d", tx.Id, inputIndex)
	}

	if 0 != input.Previous.Index {
		return nil, ctx.Invalid(fault.ErrEscrowNotFirstOutput, "tx: %s  input: %d  spends: %s/%d", tx.Id, inputIndex, input.Previous.TxId, input.Previous.Index)
	}

	source, ok := ctx.Ledger.Transaction(input.Previous.TxId)
	if !ok {
		return nil, ctx.Invalid(fault.ErrMissingInputTransaction, "tx: %s  input: %d  source: %s", tx.Id, inputIndex, input.Previous.TxId)
	}

	escrowOutput, ok := source.Output(0)
	if !ok {
		return nil, ctx.Invalid(fault.ErrInvalidEscrowAddress, "source: %s  has no outputs", source.Id)
	}
	address, ok := ctx.Scripts.Address(escrowOutput.Script)
	if !ok || ctx.Scripts.EscrowAddress() != address {
		return nil, ctx.Invalid(fault.ErrInvalidEscrowAddress, "source: %s  output 0 address: %s", source.Id, address)
	}

	m, err := vout.Metadata(ctx, source)
	if nil != err {
		return nil, ctx.Invalid(fault.ErrMissingCreator, "source: %s  metadata: %s", source.Id, err)
	}
	if _, err := m.CreatorAccount(); nil != err {
		return nil, ctx.Invalid(fault.ErrMissingCreator, "source: %s  creator: %s", source.Id, err)
	}

	if 0 == escrowOutput.Value {
		return nil, ctx.Invalid(fault.ErrZeroEscrowValue, "source: %s", source.Id)
	}

	return &Escrow{
		Value:           escrowOutput.Value,
		Source:          source,
		Metadata:        m,
		ContractAddress: ctx.Scripts.ContractAddress(m.Creator),
		CreatorAddress:  ctx.Scripts.PlainAddress(m.Creator),
	}, nil
}

// ValidateBuyOffer - input 1 must spend the coin escrow of a buy offer for assetId
func ValidateBuyOffer(ctx eval.Context, tx *ledger.Transaction, assetId merkle.Digest) (*Escrow, error) {
	e, err := ValidateInput(ctx, tx, orderInput)
	if nil != err {
		return nil, err
	}

	if ledger.ContractControlled != ctx.Scripts.Kind(e.Source.Outputs[0].Script) {
		return nil, ctx.Invalid(fault.ErrEscrowNotContract, "source: %s", e.Source.Id)
	}
	if !e.Metadata.Subtype.IsBuyOffer() {
		return nil, ctx.Invalid(fault.ErrNotBuyOffer, "source: %s  subtype: %s", e.Source.Id, e.Metadata.Subtype)
	}
	if assetId != e.Metadata.AssetId {
		return nil, ctx.Invalid(fault.ErrAssetMismatch, "source: %s  asset: %s  expected: %s", e.Source.Id, e.Metadata.AssetId, assetId)
	}

	ctx.Debugf("buy offer: %s  asset: %s  coins: %d  units wanted: %d", e.Source.Id, assetId, e.Value, e.Metadata.Price)
	return e, nil
}

// ValidateSellOffer - input 1 must spend the asset escrow of a sell offer for assetId
//
// the subtype is not checked directly, the classifier only finds units
// at output 0 for the subtypes that escrow them
func ValidateSellOffer(ctx eval.Context, tx *ledger.Transaction, assetId merkle.Digest) (*Escrow, error) {
	e, err := ValidateInput(ctx, tx, orderInput)
	if nil != err {
		return nil, err
	}

	units := vout.Units(ctx, e.Source, 0, assetId)
	if 0 == units {
		return nil, ctx.Invalid(fault.ErrNotSellOffer, "source: %s  asset: %s", e.Source.Id, assetId)
	}
	e.Units = units

	ctx.Debugf("sell offer: %s  asset: %s  units: %d  coins asked: %d", e.Source.Id, assetId, units, e.Metadata.Price)
	return e, nil
}
