// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package vout_test

import (
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fixtures"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/ledger/mocks"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/vout"
)

var log *logger.L

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	log = logger.New(fixtures.LogCategory)
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func TestCreate(t *testing.T) {
	tx := fixtures.Create(5000, "gold")
	ctx := fixtures.Context(log)

	assert.Equal(t, uint64(5000), vout.Units(ctx, tx, 0, tx.Id), "minted units")
	assert.Equal(t, uint64(0), vout.Units(ctx, tx, 0, merkle.NewDigest([]byte("other"))), "other asset")
	assert.Equal(t, uint64(0), vout.Units(ctx, tx, 1, tx.Id), "plain output")
	assert.Equal(t, uint64(0), vout.Units(ctx, tx, 2, tx.Id), "metadata output")

	units, m, err := vout.Classify(ctx, tx, 0, tx.Id)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5000), units)
	assert.Equal(t, assetrecord.Create, m.Subtype)
}

func TestCreateOnlyFirstOutput(t *testing.T) {
	packed, _ := assetrecord.EncodeCreate(fixtures.Owner, "x", "")
	tx := fixtures.Seal(
		[]ledger.Input{fixtures.Fund("x")},
		fixtures.Asset(10, fixtures.Owner),
		fixtures.Asset(20, fixtures.Owner),
		fixtures.Metadata(packed),
	)
	ctx := fixtures.Context(log)
	assert.Equal(t, uint64(10), vout.Units(ctx, tx, 0, tx.Id))
	assert.Equal(t, uint64(0), vout.Units(ctx, tx, 1, tx.Id), "second contract output of a create")
}

func TestBuyOfferOutputZero(t *testing.T) {
	asset := merkle.NewDigest([]byte("asset"))
	ctx := fixtures.Context(log)

	for _, subtype := range []assetrecord.Subtype{assetrecord.BuyOffer, assetrecord.FillBuy} {
		tx := fixtures.Seal(
			[]ledger.Input{fixtures.Fund("coins")},
			fixtures.Escrow(700),
			fixtures.Asset(5, fixtures.Filler),
			fixtures.Asset(9, fixtures.Owner),
			fixtures.Order(subtype, asset, 10, fixtures.Owner),
		)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 0, asset), "%s: escrowed coins are not units", subtype)
		assert.Equal(t, uint64(5), vout.Units(ctx, tx, 1, asset), "%s: output 1", subtype)
		assert.Equal(t, uint64(9), vout.Units(ctx, tx, 2, asset), "%s: output 2", subtype)
	}
}

func TestSingleAssetFamilies(t *testing.T) {
	asset := merkle.NewDigest([]byte("asset"))
	other := merkle.NewDigest([]byte("other"))
	ctx := fixtures.Context(log)

	subtypes := []assetrecord.Subtype{
		assetrecord.Transfer,
		assetrecord.CancelSell,
		assetrecord.CancelBuy,
		assetrecord.SellOffer,
		assetrecord.FillSell,
	}
	for _, subtype := range subtypes {
		tx := fixtures.Seal(
			[]ledger.Input{fixtures.Fund("coins")},
			fixtures.Escrow(40),
			fixtures.Asset(60, fixtures.Filler),
			fixtures.Plain(70, fixtures.Filler),
			fixtures.Order(subtype, asset, 10, fixtures.Owner),
		)
		assert.Equal(t, uint64(40), vout.Units(ctx, tx, 0, asset), "%s: output 0", subtype)
		assert.Equal(t, uint64(60), vout.Units(ctx, tx, 1, asset), "%s: output 1", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 2, asset), "%s: plain output", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 0, other), "%s: other asset", subtype)
	}
}

func TestExchange(t *testing.T) {
	primary := merkle.NewDigest([]byte("primary"))
	secondary := merkle.NewDigest([]byte("secondary"))
	ctx := fixtures.Context(log)

	for _, subtype := range []assetrecord.Subtype{assetrecord.SwapOffer, assetrecord.FillSwap} {
		tx := fixtures.Seal(
			[]ledger.Input{fixtures.Fund("coins")},
			fixtures.Asset(1, fixtures.Owner),
			fixtures.Asset(2, fixtures.Owner),
			fixtures.Asset(3, fixtures.Filler),
			fixtures.Asset(4, fixtures.Filler),
			fixtures.Swap(subtype, primary, secondary, 10, fixtures.Owner),
		)
		assert.Equal(t, uint64(1), vout.Units(ctx, tx, 0, primary), "%s", subtype)
		assert.Equal(t, uint64(2), vout.Units(ctx, tx, 1, primary), "%s", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 2, primary), "%s", subtype)
		assert.Equal(t, uint64(3), vout.Units(ctx, tx, 2, secondary), "%s", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 0, secondary), "%s", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 3, primary), "%s", subtype)
		assert.Equal(t, uint64(0), vout.Units(ctx, tx, 3, secondary), "%s", subtype)
	}
}

func TestMalformedMetadata(t *testing.T) {
	asset := merkle.NewDigest([]byte("asset"))
	ctx := fixtures.Context(log)

	tx := fixtures.Seal(
		[]ledger.Input{fixtures.Fund("coins")},
		fixtures.Asset(60, fixtures.Filler),
		fixtures.Metadata([]byte{assetrecord.EvalCode, 'q'}),
	)
	units, m, err := vout.Classify(ctx, tx, 0, asset)
	assert.Equal(t, uint64(0), units)
	assert.Equal(t, fault.ErrUnknownSubtype, err)
	assert.Equal(t, assetrecord.SubtypeNone, m.Subtype)

	noData := fixtures.Seal(
		[]ledger.Input{fixtures.Fund("coins")},
		fixtures.Asset(60, fixtures.Filler),
		fixtures.Asset(60, fixtures.Filler),
	)
	units, _, err = vout.Classify(ctx, noData, 0, asset)
	assert.Equal(t, uint64(0), units)
	assert.Equal(t, fault.ErrMissingMetadata, err)

	_, _, err = vout.Classify(ctx, noData, 5, asset)
	assert.Equal(t, fault.ErrOutputIndexOutOfRange, err)
}

func TestPlainOutputSkipsMetadata(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	scripts := mocks.NewMockScripts(ctl)
	tx := fixtures.Seal(
		[]ledger.Input{fixtures.Fund("coins")},
		fixtures.Plain(60, fixtures.Filler),
		fixtures.Order(assetrecord.Transfer, merkle.Digest{}, 0, nil),
	)

	// only the output kind is examined, metadata is never read
	scripts.EXPECT().Kind(tx.Outputs[0].Script).Return(ledger.Plain).Times(1)

	ctx := eval.Context{Scripts: scripts}
	units, m, err := vout.Classify(ctx, tx, 0, merkle.Digest{})
	assert.Nil(t, err)
	assert.Nil(t, m)
	assert.Equal(t, uint64(0), units)
}
