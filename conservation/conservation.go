// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package conservation - asset units are neither created nor destroyed
package conservation

import (
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/vout"
)

// Totals - classified units on each side of a transaction
type Totals struct {
	Inputs  uint64 `json:"inputs,string"`
	Outputs uint64 `json:"outputs,string"`
}

// Check - units of assetId spent by contract inputs from firstInput on
// must equal the units held by the outputs
//
// totals are returned with every result that got as far as summing
func Check(ctx eval.Context, tx *ledger.Transaction, firstInput int, assetId merkle.Digest) (Totals, error) {
	totals := Totals{}

	if firstInput < 0 {
		return totals, ctx.Invalid(fault.ErrInputIndexOutOfRange, "tx: %s  first input: %d", tx.Id, firstInput)
	}

	for i := firstInput; i < len(tx.Inputs); i += 1 {
		input := tx.Inputs[i]
		if !ctx.Scripts.IsOwnInput(input.ScriptSig) {
			continue
		}

		source, ok := ctx.Ledger.Transaction(input.Previous.TxId)
		if !ok {
			return totals, ctx.Invalid(fault.ErrMissingInputTransaction, "tx: %s  input: %d  source: %s", tx.Id, i, input.Previous.TxId)
		}

		units := vout.Units(ctx, source, int(input.Previous.Index), assetId)
		if totals.Inputs+units < totals.Inputs {
			return totals, ctx.Invalid(fault.ErrValueOverflow, "tx: %s  input: %d", tx.Id, i)
		}
		totals.Inputs += units
	}

	for i := range tx.Outputs {
		units := vout.Units(ctx, tx, i, assetId)
		if totals.Outputs+units < totals.Outputs {
			return totals, ctx.Invalid(fault.ErrValueOverflow, "tx: %s  output: %d", tx.Id, i)
		}
		totals.Outputs += units
	}

	if totals.Inputs != totals.Outputs {
		return totals, ctx.Invalid(fault.ErrAssetsNotConserved, "tx: %s  asset: %s  inputs: %d  outputs: %d", tx.Id, assetId, totals.Inputs, totals.Outputs)
	}

	ctx.Debugf("conserved: tx: %s  asset: %s  units: %d", tx.Id, assetId, totals.Inputs)
	return totals, nil
}
