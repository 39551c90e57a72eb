// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package vout - decide which outputs of a transaction hold asset units
package vout

import (
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
)

// Metadata - decode the metadata carried by the last output of tx
func Metadata(ctx eval.Context, tx *ledger.Transaction) (*assetrecord.Metadata, error) {
	last, ok := tx.LastOutput()
	if !ok || ledger.DataOnly != ctx.Scripts.Kind(last.Script) {
		return &assetrecord.Metadata{Subtype: assetrecord.SubtypeNone}, fault.ErrMissingMetadata
	}
	payload, _ := ctx.Scripts.Payload(last.Script)
	return assetrecord.Decode(payload)
}

// Units - number of units of assetId held by an output, zero if none
func Units(ctx eval.Context, tx *ledger.Transaction, index int, assetId merkle.Digest) uint64 {
	units, _, _ := Classify(ctx, tx, index, assetId)
	return units
}

// Classify - units of assetId held by an output
//
// a zero count with a nil error is a plain or foreign output; a
// metadata error means the transaction carries no decodable asset
// metadata. the decoded metadata is returned when available
func Classify(ctx eval.Context, tx *ledger.Transaction, index int, assetId merkle.Digest) (uint64, *assetrecord.Metadata, error) {
	output, ok := tx.Output(index)
	if !ok {
		return 0, nil, fault.ErrOutputIndexOutOfRange
	}

	// the metadata output never holds units
	if index == len(tx.Outputs)-1 {
		return 0, nil, nil
	}
	if ledger.ContractControlled != ctx.Scripts.Kind(output.Script) {
		return 0, nil, nil
	}

	m, err := Metadata(ctx, tx)
	if nil != err {
		ctx.Debugf("vout: %s: output: %d  metadata: %s", tx.Id, index, err)
		return 0, m, err
	}

	if holds(tx, index, assetId, m) {
		return output.Value, m, nil
	}
	return 0, m, nil
}

// the decision table by subtype family and output position
func holds(tx *ledger.Transaction, index int, assetId merkle.Digest, m *assetrecord.Metadata) bool {
	switch m.Subtype.Family() {

	case assetrecord.FamilyCreate:
		return 0 == index && assetId == tx.Id

	case assetrecord.FamilyBuy:
		// output 0 of a buy offer escrows coins
		if 0 == index {
			return false
		}
		return assetId == m.AssetId

	case assetrecord.FamilyTransfer, assetrecord.FamilySell:
		return assetId == m.AssetId

	case assetrecord.FamilyExchange:
		switch index {
		case 0, 1:
			return assetId == m.AssetId
		case 2:
			return assetId == m.AssetId2
		default:
			return false
		}

	default:
		return false
	}
}
