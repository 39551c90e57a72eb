// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/ledger/mocks"
	"github.com/bitmark-inc/assetsettle/merkle"
)

func sample() *ledger.Transaction {
	return &ledger.Transaction{
		Inputs: []ledger.Input{
			{
				Previous:  ledger.Outpoint{TxId: merkle.NewDigest([]byte("one")), Index: 0},
				ScriptSig: ledger.Script{0xcc, 0xe3, 0x01},
			},
			{
				Previous:  ledger.Outpoint{TxId: merkle.NewDigest([]byte("two")), Index: 300},
				ScriptSig: nil,
			},
		},
		Outputs: []ledger.Output{
			{Value: 100000000, Script: ledger.Script{0xac, 0x01, 0x02}},
			{Value: 0, Script: ledger.Script{0x6a, 0xe3, 't'}},
		},
	}
}

func TestPackUnpack(t *testing.T) {
	tx := sample()
	packed, err := tx.Seal()
	assert.Nil(t, err, "seal")
	assert.Equal(t, merkle.NewDigest(packed), tx.Id, "id is digest of packed form")

	unpacked, n, err := packed.Unpack()
	assert.Nil(t, err, "unpack")
	assert.Equal(t, len(packed), n, "bytes consumed")
	assert.Equal(t, tx.Id, unpacked.Id, "id")
	assert.Equal(t, 2, len(unpacked.Inputs), "input count")
	assert.Equal(t, uint32(300), unpacked.Inputs[1].Previous.Index, "input index")
	assert.Equal(t, tx.Inputs[0].Previous.TxId, unpacked.Inputs[0].Previous.TxId, "previous txid")
	assert.Equal(t, []byte(tx.Inputs[0].ScriptSig), []byte(unpacked.Inputs[0].ScriptSig), "script sig")
	assert.Equal(t, 0, len(unpacked.Inputs[1].ScriptSig), "empty script sig")
	assert.Equal(t, tx.Outputs[0].Value, unpacked.Outputs[0].Value, "value")
	assert.Equal(t, []byte(tx.Outputs[1].Script), []byte(unpacked.Outputs[1].Script), "script")
}

func TestUnpackTruncated(t *testing.T) {
	packed, err := sample().Pack()
	assert.Nil(t, err, "pack")

	for i := 0; i < len(packed); i += 1 {
		_, n, err := packed[:i].Unpack()
		assert.Equal(t, fault.ErrNotTransactionPack, err, "truncated at %d", i)
		assert.Equal(t, 0, n, "truncated at %d", i)
	}
}

func TestPackLimits(t *testing.T) {
	tx := &ledger.Transaction{
		Outputs: []ledger.Output{{Value: 1, Script: make(ledger.Script, 10001)}},
	}
	_, err := tx.Pack()
	assert.Equal(t, fault.ErrScriptTooLong, err)

	tx = &ledger.Transaction{
		Inputs: make([]ledger.Input, 1025),
	}
	_, err = tx.Pack()
	assert.Equal(t, fault.ErrTooManyInputs, err)
}

func TestAccessors(t *testing.T) {
	tx := sample()

	last, ok := tx.LastOutput()
	assert.True(t, ok)
	assert.Equal(t, &tx.Outputs[1], last)

	_, ok = tx.Output(2)
	assert.False(t, ok, "output past end")
	_, ok = tx.Output(-1)
	assert.False(t, ok, "negative output")
	_, ok = tx.Input(1)
	assert.True(t, ok)
	_, ok = tx.Input(2)
	assert.False(t, ok, "input past end")

	var empty *ledger.Transaction
	_, ok = empty.LastOutput()
	assert.False(t, ok, "nil transaction")
}

func TestCollection(t *testing.T) {
	tx := sample()
	_, err := tx.Seal()
	assert.Nil(t, err)

	c := ledger.Collection{}
	c.Add(tx)

	found, ok := c.Transaction(tx.Id)
	assert.True(t, ok)
	assert.Equal(t, tx, found)

	_, ok = c.Transaction(merkle.Digest{})
	assert.False(t, ok)
}

func TestResolvers(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	tx := sample()
	_, err := tx.Seal()
	assert.Nil(t, err)

	local := ledger.Collection{}
	local.Add(tx)

	missing := merkle.NewDigest([]byte("missing"))
	store := mocks.NewMockResolver(ctl)
	store.EXPECT().Transaction(missing).Return(nil, false).Times(1)

	r := ledger.Resolvers{local, store}

	found, ok := r.Transaction(tx.Id)
	assert.True(t, ok, "local transaction")
	assert.Equal(t, tx, found)

	_, ok = r.Transaction(missing)
	assert.False(t, ok, "missing transaction")
}

func TestJSON(t *testing.T) {
	tx := sample()
	b, err := json.Marshal(tx)
	assert.Nil(t, err, "marshal")

	var back ledger.Transaction
	err = json.Unmarshal(b, &back)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, tx.Outputs[0].Value, back.Outputs[0].Value)
	assert.Equal(t, []byte{0xcc, 0xe3, 0x01}, []byte(back.Inputs[0].ScriptSig))
	assert.Equal(t, tx.Inputs[1].Previous, back.Inputs[1].Previous)
}
