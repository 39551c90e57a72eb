// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fill_test

import (
	"math"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/fill"
)

func TestComputeScenario(t *testing.T) {
	for _, mode := range []fill.Mode{fill.Integer, fill.LegacyFloat} {
		r, err := fill.Compute(100000000, 100, 40, mode)
		assert.Nil(t, err, "%s", mode)
		assert.Equal(t, uint64(40000000), r.Received, "%s: received", mode)
		assert.Equal(t, uint64(60000000), r.RemainingValue, "%s: remaining value", mode)
		assert.Equal(t, uint64(60), r.RemainingPrice, "%s: remaining price", mode)
		assert.Equal(t, uint64(40), r.Paid, "%s: paid", mode)

		p, err := fill.ValidateRemainder(r.RemainingPrice, r.RemainingValue, 100000000, r.Received, r.Paid, 100)
		assert.Nil(t, err, "%s", mode)
		assert.Equal(t, 0, p.Unit.Cmp(p.Received), "%s: prices equal", mode)
	}
}

func TestComputeFullFill(t *testing.T) {
	tests := []struct {
		orig  uint64
		total uint64
		paid  uint64
	}{
		{100000000, 100, 100},
		{100000000, 100, 150},
		{7, 3, 3},
		{math.MaxUint64, 1, 1},
		{1, math.MaxUint64, math.MaxUint64},
		{0, 10, 10},
	}
	for i, item := range tests {
		r, err := fill.Compute(item.orig, item.total, item.paid, fill.Integer)
		assert.Nil(t, err, "%d", i)
		assert.Equal(t, fill.Result{Received: item.orig, Paid: item.total}, r, "%d", i)
	}
}

func TestComputeZeroOrder(t *testing.T) {
	_, err := fill.Compute(100, 0, 0, fill.Integer)
	assert.Equal(t, fault.ErrZeroOrderSize, err)

	_, err = fill.Compute(100, 10, 0, fill.Integer)
	assert.Equal(t, fault.ErrZeroFillQuantity, err)

	_, err = fill.Compute(100, 10, 0, fill.LegacyFloat)
	assert.Equal(t, fault.ErrZeroFillQuantity, err)

	_, err = fill.Compute(100, 10, 5, fill.Mode(99))
	assert.Equal(t, fault.ErrInvalidPricingMode, err)
}

func TestComputeMonotonic(t *testing.T) {
	const orig = 100000000
	const total = 100

	previous := uint64(0)
	for paid := uint64(1); paid <= total; paid += 1 {
		r, err := fill.Compute(orig, total, paid, fill.Integer)
		if !assert.Nil(t, err, "paid: %d", paid) {
			continue
		}
		assert.True(t, r.Received >= previous, "paid: %d  received: %d < %d", paid, r.Received, previous)
		assert.Equal(t, uint64(orig), r.Received+r.RemainingValue, "paid: %d", paid)
		assert.Equal(t, uint64(total), r.Paid+r.RemainingPrice, "paid: %d", paid)
		previous = r.Received
	}
	assert.Equal(t, uint64(orig), previous, "last fill receives everything")
}

func TestComputeRoundingRejected(t *testing.T) {
	// 100 / 3 does not divide, the floored share favours the filler
	_, err := fill.Compute(100, 3, 1, fill.Integer)
	assert.Equal(t, fault.ErrPriceBelowOrder, err)
}

func TestComputeNoOverflow(t *testing.T) {
	// orig * Coin exceeds 64 bits
	const orig = 10000000000000000000
	r, err := fill.Compute(orig, 4, 1, fill.Integer)
	assert.Nil(t, err)
	assert.Equal(t, uint64(orig/4), r.Received)
	assert.Equal(t, uint64(3), r.RemainingPrice)
}

func TestValidateRemainder(t *testing.T) {
	tests := []struct {
		remainingPrice uint64
		remainingValue uint64
		orig           uint64
		received       uint64
		paid           uint64
		total          uint64
		err            error
	}{
		{60, 60000000, 100000000, 40000000, 40, 100, nil},
		{60, 59999999, 100000000, 40000001, 40, 100, nil},                           // owner favoured
		{60, 60000001, 100000000, 39999999, 40, 100, fault.ErrPriceBelowOrder},      // filler favoured by one
		{0, 0, 100000000, 100000000, 100, 100, nil},                                 // full fill
		{61, 60000000, 100000000, 40000000, 40, 100, fault.ErrUnitsNotConserved},    // units
		{60, 60000000, 100000000, 40000001, 40, 100, fault.ErrValueNotConserved},    // value
		{101, 0, 100000000, 100000000, 40, 100, fault.ErrUnitsNotConserved},         // remaining above total
		{60, 100000001, 100000000, 40000000, 40, 100, fault.ErrValueNotConserved},   // remaining above orig
		{60, 60000000, 0, 40000000, 40, 100, fault.ErrZeroFillQuantity},             // zero orig
		{60, 60000000, 100000000, 0, 40, 100, fault.ErrZeroFillQuantity},            // zero received
		{60, 60000000, 100000000, 40000000, 0, 100, fault.ErrZeroFillQuantity},      // zero paid
		{60, 60000000, 100000000, 40000000, 40, 0, fault.ErrZeroOrderSize},          // zero total
		{math.MaxUint64, 1, 2, 1, 2, 1, fault.ErrUnitsNotConserved},                 // wrapping sum
		{1, math.MaxUint64, 1, 2, 1, 2, fault.ErrValueNotConserved},                 // wrapping sum
	}

	for i, item := range tests {
		_, err := fill.ValidateRemainder(item.remainingPrice, item.remainingValue, item.orig, item.received, item.paid, item.total)
		assert.Equal(t, item.err, err, "%d", i)
	}
}

func TestValidateRemainderOneScaledUnit(t *testing.T) {
	// orig 3, total 2: unit price 150000000
	// received 1 for 1 unit gives 100000000 which is below
	_, err := fill.ValidateRemainder(1, 2, 3, 1, 1, 2)
	assert.Equal(t, fault.ErrPriceBelowOrder, err)

	// received 2 for 1 unit gives 200000000 which is above
	p, err := fill.ValidateRemainder(1, 1, 3, 2, 1, 2)
	assert.Nil(t, err)
	assert.Equal(t, 0, big.NewInt(150000000).Cmp(p.Unit), "unit: %s", p.Unit)
	assert.Equal(t, 0, big.NewInt(200000000).Cmp(p.Received), "received: %s", p.Received)
	assert.Equal(t, 0, big.NewInt(100000000).Cmp(p.Remaining), "remaining: %s", p.Remaining)
}

func TestMode(t *testing.T) {
	m, err := fill.ModeFromString("legacy-float")
	assert.Nil(t, err)
	assert.Equal(t, fill.LegacyFloat, m)

	m, err = fill.ModeFromString("")
	assert.Nil(t, err)
	assert.Equal(t, fill.Integer, m)

	_, err = fill.ModeFromString("decimal")
	assert.Equal(t, fault.ErrInvalidPricingMode, err)

	assert.Equal(t, fill.LegacyFloat, fill.ModeFor(true))
	assert.Equal(t, fill.Integer, fill.ModeFor(false))
	assert.Equal(t, "integer", fill.Integer.String())
}
