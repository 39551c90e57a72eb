// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package settlement

import (
	"bytes"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/conservation"
	"github.com/bitmark-inc/assetsettle/escrow"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fill"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/vout"
)

// output positions of a fill transaction
const (
	remainderOutput = 0 // what stays in escrow
	fillerOutput    = 1 // what the filler receives
	ownerOutput     = 2 // what the order owner receives
	fillOutputs     = 4 // the three above and the metadata
)

// ValidateFillBuy - a fill of a buy offer
//
//   vin.0  funding
//   vin.1  the buy offer's coin escrow
//   vin.2+ the filler's asset units
//
//   vout.0 coins still offered, back at the escrow address
//   vout.1 coins paid to the filler
//   vout.2 units delivered to the owner's contract address
//   last   metadata with the units still wanted
func ValidateFillBuy(ctx eval.Context, tx *ledger.Transaction) (*Report, error) {
	m, err := fillMetadata(ctx, tx, assetrecord.FillBuy)
	if nil != err {
		return nil, err
	}
	r := &Report{TxId: tx.Id, Subtype: m.Subtype, AssetId: m.AssetId, Metadata: m}
	if err := validateFillBuy(ctx, tx, m, r); nil != err {
		return nil, err
	}
	return r, nil
}

func validateFillBuy(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata, r *Report) error {
	if len(tx.Outputs) < fillOutputs {
		return ctx.Invalid(fault.ErrNotEnoughOutputs, "tx: %s  outputs: %d", tx.Id, len(tx.Outputs))
	}

	e, err := escrow.ValidateBuyOffer(ctx, tx, m.AssetId)
	if nil != err {
		return err
	}
	if err := sameCreator(ctx, tx, m, e); nil != err {
		return err
	}
	if err := paidTo(ctx, tx, ownerOutput, e.ContractAddress); nil != err {
		return err
	}
	if err := remainderInEscrow(ctx, tx, m.Price); nil != err {
		return err
	}

	remaining := tx.Outputs[remainderOutput].Value
	received := tx.Outputs[fillerOutput].Value
	paid := tx.Outputs[ownerOutput].Value
	prices, err := fill.ValidateRemainder(m.Price, remaining, e.Value, received, paid, e.Metadata.Price)
	r.Prices = &prices
	if nil != err {
		return ctx.Invalid(err, "tx: %s  units wanted: %d of %d  coins: %d of %d  paid: %d  unit: %s  received: %s", tx.Id, m.Price, e.Metadata.Price, remaining, e.Value, paid, prices.Unit, prices.Received)
	}
	ctx.Debugf("fill buy: tx: %s  coins: %d  units: %d  remainder unit price: %s", tx.Id, received, paid, prices.Remaining)

	totals, err := conservation.Check(ctx, tx, 2, m.AssetId)
	r.Totals = append(r.Totals, totals)
	return err
}

// ValidateFillSell - a fill of a sell offer
//
//   vin.0  funding
//   vin.1  the sell offer's asset escrow
//
//   vout.0 units still offered, back at the escrow address
//   vout.1 units delivered to the filler
//   vout.2 coins paid to the owner's plain address
//   last   metadata with the coins still asked
func ValidateFillSell(ctx eval.Context, tx *ledger.Transaction) (*Report, error) {
	m, err := fillMetadata(ctx, tx, assetrecord.FillSell)
	if nil != err {
		return nil, err
	}
	r := &Report{TxId: tx.Id, Subtype: m.Subtype, AssetId: m.AssetId, Metadata: m}
	if err := validateFillSell(ctx, tx, m, r); nil != err {
		return nil, err
	}
	return r, nil
}

func validateFillSell(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata, r *Report) error {
	if len(tx.Outputs) < fillOutputs {
		return ctx.Invalid(fault.ErrNotEnoughOutputs, "tx: %s  outputs: %d", tx.Id, len(tx.Outputs))
	}

	e, err := escrow.ValidateSellOffer(ctx, tx, m.AssetId)
	if nil != err {
		return err
	}
	if err := sameCreator(ctx, tx, m, e); nil != err {
		return err
	}
	if err := paidTo(ctx, tx, ownerOutput, e.CreatorAddress); nil != err {
		return err
	}
	if err := remainderInEscrow(ctx, tx, m.Price); nil != err {
		return err
	}

	remaining := tx.Outputs[remainderOutput].Value
	received := tx.Outputs[fillerOutput].Value
	paid := tx.Outputs[ownerOutput].Value
	prices, err := fill.ValidateRemainder(m.Price, remaining, e.Units, received, paid, e.Metadata.Price)
	r.Prices = &prices
	if nil != err {
		return ctx.Invalid(err, "tx: %s  coins asked: %d of %d  units: %d of %d  paid: %d  unit: %s  received: %s", tx.Id, m.Price, e.Metadata.Price, remaining, e.Units, paid, prices.Unit, prices.Received)
	}
	ctx.Debugf("fill sell: tx: %s  units: %d  coins: %d  remainder unit price: %s", tx.Id, received, paid, prices.Remaining)

	totals, err := conservation.Check(ctx, tx, 1, m.AssetId)
	r.Totals = append(r.Totals, totals)
	return err
}

func fillMetadata(ctx eval.Context, tx *ledger.Transaction, subtype assetrecord.Subtype) (*assetrecord.Metadata, error) {
	m, err := vout.Metadata(ctx, tx)
	if nil != err {
		return nil, ctx.Invalid(fault.ErrNotAssetTransaction, "tx: %s  metadata: %s", tx.Id, err)
	}
	if subtype != m.Subtype {
		return nil, ctx.Invalid(fault.ErrInvalidSubtype, "tx: %s  subtype: %s  expected: %s", tx.Id, m.Subtype, subtype)
	}
	return m, nil
}

// the fill must carry the creator of the order forward
func sameCreator(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata, e *escrow.Escrow) error {
	if 0 == len(m.Creator) || !bytes.Equal(m.Creator, e.Metadata.Creator) {
		return ctx.Invalid(fault.ErrCreatorMismatch, "tx: %s  order: %s", tx.Id, e.Source.Id)
	}
	return nil
}

func paidTo(ctx eval.Context, tx *ledger.Transaction, index int, expected account.Address) error {
	address, ok := ctx.Scripts.Address(tx.Outputs[index].Script)
	if !ok || expected != address {
		return ctx.Invalid(fault.ErrOutputAddressMismatch, "tx: %s  output: %d  address: %s  expected: %s", tx.Id, index, address, expected)
	}
	return nil
}

// while the order is open the remainder goes back to escrow
func remainderInEscrow(ctx eval.Context, tx *ledger.Transaction, stillOpen uint64) error {
	if 0 == stillOpen {
		return nil
	}
	return paidTo(ctx, tx, remainderOutput, ctx.Scripts.EscrowAddress())
}
