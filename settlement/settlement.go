// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package settlement - validate a whole asset transaction by its subtype
package settlement

import (
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/conservation"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fill"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/vout"
)

// Report - what was checked for an accepted transaction
type Report struct {
	TxId     merkle.Digest         `json:"txId"`
	Subtype  assetrecord.Subtype   `json:"subtype"`
	AssetId  merkle.Digest         `json:"assetId"`
	Totals   []conservation.Totals `json:"totals,omitempty"`
	Prices   *fill.Prices          `json:"prices,omitempty"`
	Metadata *assetrecord.Metadata `json:"metadata"`
}

// Validate - decode the metadata of tx and apply the rules of its subtype
func Validate(ctx eval.Context, tx *ledger.Transaction) (*Report, error) {
	m, err := vout.Metadata(ctx, tx)
	if nil != err {
		return nil, ctx.Invalid(fault.ErrNotAssetTransaction, "tx: %s  metadata: %s", tx.Id, err)
	}

	r := &Report{
		TxId:     tx.Id,
		Subtype:  m.Subtype,
		AssetId:  m.AssetId,
		Metadata: m,
	}

	switch m.Subtype {
	case assetrecord.Create:
		r.AssetId = tx.Id
		err = validateCreate(ctx, tx, m)

	case assetrecord.Transfer, assetrecord.CancelSell, assetrecord.CancelBuy,
		assetrecord.SellOffer:
		var totals conservation.Totals
		totals, err = conservation.Check(ctx, tx, 0, m.AssetId)
		r.Totals = append(r.Totals, totals)

	case assetrecord.SwapOffer:
		err = conserveBoth(ctx, tx, 0, m, r)

	case assetrecord.BuyOffer:
		err = validateBuyOffer(ctx, tx, m, r)

	case assetrecord.FillBuy:
		err = validateFillBuy(ctx, tx, m, r)

	case assetrecord.FillSell:
		err = validateFillSell(ctx, tx, m, r)

	case assetrecord.FillSwap:
		err = validateFillSwap(ctx, tx, m, r)

	default:
		err = ctx.Invalid(fault.ErrNotAssetTransaction, "tx: %s  subtype: %s", tx.Id, m.Subtype)
	}

	if nil != err {
		return nil, err
	}
	ctx.Debugf("accepted: tx: %s  subtype: %s  asset: %s", tx.Id, r.Subtype, r.AssetId)
	return r, nil
}

// a create mints output 0 to the creator's contract address
func validateCreate(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata) error {
	if len(tx.Outputs) < 2 {
		return ctx.Invalid(fault.ErrInvalidCreate, "tx: %s  outputs: %d", tx.Id, len(tx.Outputs))
	}
	if _, err := m.CreatorAccount(); nil != err {
		return ctx.Invalid(fault.ErrInvalidCreate, "tx: %s  creator: %s", tx.Id, err)
	}
	minted := tx.Outputs[0]
	if ledger.ContractControlled != ctx.Scripts.Kind(minted.Script) || 0 == minted.Value {
		return ctx.Invalid(fault.ErrInvalidCreate, "tx: %s  output 0: %s  value: %d", tx.Id, ctx.Scripts.Kind(minted.Script), minted.Value)
	}
	ctx.Debugf("create: tx: %s  units: %d  name: %q", tx.Id, minted.Value, m.Name)
	return nil
}

// a buy offer locks coins at the escrow address in output 0 and
// neither spends nor creates units
func validateBuyOffer(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata, r *Report) error {
	if len(tx.Outputs) < 2 {
		return ctx.Invalid(fault.ErrInvalidBuyOffer, "tx: %s  outputs: %d", tx.Id, len(tx.Outputs))
	}
	locked := tx.Outputs[0]
	if ledger.ContractControlled != ctx.Scripts.Kind(locked.Script) {
		return ctx.Invalid(fault.ErrInvalidBuyOffer, "tx: %s  output 0 is %s", tx.Id, ctx.Scripts.Kind(locked.Script))
	}
	address, _ := ctx.Scripts.Address(locked.Script)
	if ctx.Scripts.EscrowAddress() != address {
		return ctx.Invalid(fault.ErrInvalidBuyOffer, "tx: %s  output 0 address: %s", tx.Id, address)
	}
	if 0 == locked.Value {
		return ctx.Invalid(fault.ErrInvalidBuyOffer, "tx: %s  output 0 has zero value", tx.Id)
	}
	if 0 == m.Price {
		return ctx.Invalid(fault.ErrZeroOrderSize, "tx: %s  no units wanted", tx.Id)
	}

	totals, err := conservation.Check(ctx, tx, 0, m.AssetId)
	r.Totals = append(r.Totals, totals)
	return err
}

// both assets of a swap are conserved
func validateFillSwap(ctx eval.Context, tx *ledger.Transaction, m *assetrecord.Metadata, r *Report) error {
	return conserveBoth(ctx, tx, 1, m, r)
}

func conserveBoth(ctx eval.Context, tx *ledger.Transaction, firstInput int, m *assetrecord.Metadata, r *Report) error {
	for _, assetId := range []merkle.Digest{m.AssetId, m.AssetId2} {
		totals, err := conservation.Check(ctx, tx, firstInput, assetId)
		r.Totals = append(r.Totals, totals)
		if nil != err {
			return err
		}
	}
	return nil
}
