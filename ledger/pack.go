// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/util"
)

// byte sizes and counts
const (
	maxInputs       = 1024
	maxOutputs      = 1024
	maxScriptLength = 10000
	maxIndex        = 0xffffffff
)

// Packed - packed transactions are just a byte slice
type Packed []byte

// Pack - serialise a transaction
//
// layout: Varint64(input count) then for each input the previous
// txid (32 bytes), Varint64(index) and Varint64(length) script sig,
// then Varint64(output count) and for each output Varint64(value) and
// Varint64(length) script
//
// the id is not part of the packed form, it is the digest of it
func (tx *Transaction) Pack() (Packed, error) {
	if len(tx.Inputs) > maxInputs {
		return nil, fault.ErrTooManyInputs
	}
	if len(tx.Outputs) > maxOutputs {
		return nil, fault.ErrTooManyOutputs
	}

	buffer := util.ToVarint64(uint64(len(tx.Inputs)))
	for _, in := range tx.Inputs {
		if len(in.ScriptSig) > maxScriptLength {
			return nil, fault.ErrScriptTooLong
		}
		buffer = append(buffer, in.Previous.TxId[:]...)
		buffer = append(buffer, util.ToVarint64(uint64(in.Previous.Index))...)
		buffer = util.AppendBytes(buffer, in.ScriptSig)
	}

	buffer = append(buffer, util.ToVarint64(uint64(len(tx.Outputs)))...)
	for _, out := range tx.Outputs {
		if len(out.Script) > maxScriptLength {
			return nil, fault.ErrScriptTooLong
		}
		buffer = append(buffer, util.ToVarint64(out.Value)...)
		buffer = util.AppendBytes(buffer, out.Script)
	}
	return buffer, nil
}

// Seal - pack the transaction and set its id
func (tx *Transaction) Seal() (Packed, error) {
	packed, err := tx.Pack()
	if nil != err {
		return nil, err
	}
	tx.Id = packed.MakeId()
	return packed, nil
}

// MakeId - the transaction id of a packed transaction
func (record Packed) MakeId() merkle.Digest {
	return merkle.NewDigest(record)
}

// Unpack - turn a byte slice into a transaction
//
// returns the transaction and the number of bytes consumed
func (record Packed) Unpack() (t *Transaction, n int, e error) {

	defer func() {
		if r := recover(); nil != r {
			t = nil
			n = 0
			e = fault.ErrNotTransactionPack
		}
	}()

	inputCount, n := util.ClippedVarint64(record, 0, maxInputs)
	if 0 == n {
		return nil, 0, fault.ErrNotTransactionPack
	}

	tx := &Transaction{
		Inputs: make([]Input, inputCount),
	}
	for i := 0; i < inputCount; i += 1 {
		if len(record)-n < len(merkle.Digest{}) {
			return nil, 0, fault.ErrNotTransactionPack
		}
		copy(tx.Inputs[i].Previous.TxId[:], record[n:])
		n += len(merkle.Digest{})

		index, indexLength := util.FromVarint64(record[n:])
		if 0 == indexLength || index > maxIndex {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += indexLength
		tx.Inputs[i].Previous.Index = uint32(index)

		scriptSig, scriptLength := util.FromBytes(record[n:], 0, maxScriptLength)
		if 0 == scriptLength {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += scriptLength
		tx.Inputs[i].ScriptSig = scriptSig
	}

	outputCount, outputCountLength := util.ClippedVarint64(record[n:], 0, maxOutputs)
	if 0 == outputCountLength {
		return nil, 0, fault.ErrNotTransactionPack
	}
	n += outputCountLength

	tx.Outputs = make([]Output, outputCount)
	for i := 0; i < outputCount; i += 1 {
		value, valueLength := util.FromVarint64(record[n:])
		if 0 == valueLength {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += valueLength
		tx.Outputs[i].Value = value

		script, scriptLength := util.FromBytes(record[n:], 0, maxScriptLength)
		if 0 == scriptLength {
			return nil, 0, fault.ErrNotTransactionPack
		}
		n += scriptLength
		tx.Outputs[i].Script = script
	}

	tx.Id = record[:n].MakeId()
	return tx, n, nil
}
