// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package conservation_test

import (
	"math"
	"os"
	"testing"

	"github.com/bitmark-inc/logger"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/conservation"
	"github.com/bitmark-inc/assetsettle/eval"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fixtures"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/ledger/mocks"
)

var log *logger.L

func TestMain(m *testing.M) {
	fixtures.SetupTestLogger()
	log = logger.New(fixtures.LogCategory)
	rc := m.Run()
	fixtures.TeardownTestLogger()
	os.Exit(rc)
}

func transfer(create *ledger.Transaction, outputs ...uint64) *ledger.Transaction {
	o := make([]ledger.Output, 0, len(outputs)+2)
	for _, v := range outputs {
		o = append(o, fixtures.Asset(v, fixtures.Filler))
	}
	o = append(o, fixtures.Plain(1000, fixtures.Owner))
	o = append(o, fixtures.Order(assetrecord.Transfer, create.Id, 0, nil))
	return fixtures.Seal(
		[]ledger.Input{fixtures.Fund("fee"), fixtures.Spend(create, 0)},
		o...,
	)
}

func TestBalanced(t *testing.T) {
	create := fixtures.Create(5000, "gold")
	tx := transfer(create, 3000, 1500, 500)
	ctx := fixtures.Context(log, create)

	totals, err := conservation.Check(ctx, tx, 0, create.Id)
	assert.Nil(t, err)
	assert.Equal(t, conservation.Totals{Inputs: 5000, Outputs: 5000}, totals)
}

func TestMutatedOutput(t *testing.T) {
	create := fixtures.Create(5000, "gold")
	ctx := fixtures.Context(log, create)

	for i := 0; i < 3; i += 1 {
		for _, delta := range []int64{-1, 1} {
			tx := transfer(create, 3000, 1500, 500)
			tx.Outputs[i].Value = uint64(int64(tx.Outputs[i].Value) + delta)

			totals, err := conservation.Check(ctx, tx, 0, create.Id)
			assert.Equal(t, fault.ErrAssetsNotConserved, err, "output: %d  delta: %d", i, delta)
			assert.Equal(t, uint64(5000), totals.Inputs)
			assert.Equal(t, uint64(int64(5000)+delta), totals.Outputs)
		}
	}
}

func TestChain(t *testing.T) {
	create := fixtures.Create(5000, "gold")
	first := transfer(create, 4000, 1000)
	second := fixtures.Seal(
		[]ledger.Input{fixtures.Fund("fee2"), fixtures.Spend(first, 0), fixtures.Spend(first, 1)},
		fixtures.Asset(5000, fixtures.Owner),
		fixtures.Order(assetrecord.Transfer, create.Id, 0, nil),
	)
	ctx := fixtures.Context(log, create, first)

	totals, err := conservation.Check(ctx, second, 0, create.Id)
	assert.Nil(t, err)
	assert.Equal(t, uint64(5000), totals.Outputs)

	// starting past the asset inputs leaves the outputs unbacked
	_, err = conservation.Check(ctx, second, 3, create.Id)
	assert.Equal(t, fault.ErrAssetsNotConserved, err)
}

func TestUnrelatedAsset(t *testing.T) {
	create := fixtures.Create(5000, "gold")
	other := fixtures.Create(10, "silver")
	ctx := fixtures.Context(log, create, other)

	// zero units of silver on either side
	totals, err := conservation.Check(ctx, transfer(create, 5000), 0, other.Id)
	assert.Nil(t, err)
	assert.Equal(t, conservation.Totals{}, totals)
}

func TestMissingInput(t *testing.T) {
	create := fixtures.Create(5000, "gold")
	ctx := fixtures.Context(log)

	_, err := conservation.Check(ctx, transfer(create, 5000), 0, create.Id)
	assert.Equal(t, fault.ErrMissingInputTransaction, err)
	assert.True(t, fault.IsErrStructure(err))

	_, err = conservation.Check(ctx, transfer(create, 5000), -1, create.Id)
	assert.Equal(t, fault.ErrInputIndexOutOfRange, err)
}

func TestOverflow(t *testing.T) {
	create := fixtures.Create(math.MaxUint64, "big")
	ctx := fixtures.Context(log, create)

	_, err := conservation.Check(ctx, transfer(create, math.MaxUint64, 1), 0, create.Id)
	assert.Equal(t, fault.ErrValueOverflow, err)
}

func TestSkipsForeignInputs(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	create := fixtures.Create(5000, "gold")
	tx := transfer(create, 5000)

	resolver := mocks.NewMockResolver(ctl)
	resolver.EXPECT().Transaction(create.Id).Return(create, true).Times(1)

	ctx := eval.Context{Ledger: resolver, Scripts: fixtures.Contract, Log: log}
	_, err := conservation.Check(ctx, tx, 0, create.Id)
	assert.Nil(t, err)
}
