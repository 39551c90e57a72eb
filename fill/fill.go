// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fill - partial fill arithmetic of buy and sell orders
//
// an order locks orig value for total units; a fill pays some units
// and receives a share of the value. The order's average unit price
// is orig * Coin / total and a fill may never obtain a better price
// than that at the owner's expense.
package fill

import (
	"math"
	"math/big"

	"github.com/bitmark-inc/assetsettle/currency/satoshi"
	"github.com/bitmark-inc/assetsettle/fault"
)

// Coin - fixed point scale of unit prices
const Coin = satoshi.Coin

// Mode - how the received value of a partial fill is computed
type Mode int

// the pricing modes
const (
	Integer     = Mode(iota) // scaled integer unit price
	LegacyFloat              // float64 unit price, kept for existing sell fills
)

// String - the configuration name of the mode
func (m Mode) String() string {
	switch m {
	case Integer:
		return "integer"
	case LegacyFloat:
		return "legacy-float"
	default:
		return "unknown"
	}
}

// ModeFromString - parse a configuration name
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "", "integer":
		return Integer, nil
	case "legacy-float":
		return LegacyFloat, nil
	default:
		return Integer, fault.ErrInvalidPricingMode
	}
}

// ModeFor - mode selected by the legacy sell flag
func ModeFor(legacySell bool) Mode {
	if legacySell {
		return LegacyFloat
	}
	return Integer
}

// Result - the split of an order after a fill
type Result struct {
	Received       uint64 `json:"received,string"`       // value moved to the filler
	RemainingValue uint64 `json:"remainingValue,string"` // value still locked
	RemainingPrice uint64 `json:"remainingPrice,string"` // units still open
	Paid           uint64 `json:"paid,string"`           // units satisfied by this fill
}

// Prices - scaled unit prices, for diagnostics
type Prices struct {
	Unit      *big.Int `json:"unit"`      // orig * Coin / total
	Received  *big.Int `json:"received"`  // received * Coin / paid
	Remaining *big.Int `json:"remaining"` // remaining value * Coin / remaining units, nil if none
}

// Compute - split an order of orig value for total units when paid units are filled
func Compute(origValue uint64, totalUnits uint64, paidUnits uint64, mode Mode) (Result, error) {
	if 0 == totalUnits {
		return Result{}, fault.ErrZeroOrderSize
	}

	// a full fill moves everything, nothing remains to check
	if paidUnits >= totalUnits {
		return Result{Received: origValue, Paid: totalUnits}, nil
	}

	received, err := receivedValue(origValue, totalUnits, paidUnits, mode)
	if nil != err {
		return Result{}, err
	}
	r := Result{
		Received:       received,
		RemainingValue: origValue - received,
		RemainingPrice: totalUnits - paidUnits,
		Paid:           paidUnits,
	}

	if _, err := ValidateRemainder(r.RemainingPrice, r.RemainingValue, origValue, r.Received, r.Paid, totalUnits); nil != err {
		return Result{}, err
	}
	return r, nil
}

// share of orig for a partial fill, must be in 1..orig
func receivedValue(origValue uint64, totalUnits uint64, paidUnits uint64, mode Mode) (uint64, error) {
	var received *big.Int

	switch mode {
	case Integer:
		unit := UnitPrice(origValue, totalUnits)
		received = new(big.Int).SetUint64(paidUnits)
		received.Mul(received, unit)
		received.Quo(received, big.NewInt(Coin))

	case LegacyFloat:
		unitPrice := float64(origValue) / float64(totalUnits)
		f := float64(paidUnits) * unitPrice
		if f < 0 || f >= math.MaxUint64 {
			return 0, fault.ErrFillOutOfRange
		}
		received = new(big.Int).SetUint64(uint64(f))

	default:
		return 0, fault.ErrInvalidPricingMode
	}

	if 0 == received.Sign() {
		return 0, fault.ErrZeroFillQuantity
	}
	if !received.IsUint64() || received.Uint64() > origValue {
		return 0, fault.ErrFillOutOfRange
	}
	return received.Uint64(), nil
}

// ValidateRemainder - check the four order quantities after a fill
//
// requires total = remaining price + paid, orig = remaining value +
// received and that the effective price received * Coin / paid is not
// below the order price orig * Coin / total. Prices are returned for
// diagnostics whenever they could be computed.
func ValidateRemainder(remainingPrice uint64, remainingValue uint64, origValue uint64, receivedValue uint64, paidUnits uint64, totalUnits uint64) (Prices, error) {

	if 0 == totalUnits {
		return Prices{}, fault.ErrZeroOrderSize
	}
	if 0 == origValue || 0 == receivedValue || 0 == paidUnits {
		return Prices{}, fault.ErrZeroFillQuantity
	}

	if remainingPrice > totalUnits || totalUnits-remainingPrice != paidUnits {
		return Prices{}, fault.ErrUnitsNotConserved
	}
	if remainingValue > origValue || origValue-remainingValue != receivedValue {
		return Prices{}, fault.ErrValueNotConserved
	}

	p := Prices{
		Unit:     UnitPrice(origValue, totalUnits),
		Received: UnitPrice(receivedValue, paidUnits),
	}
	if 0 != remainingPrice {
		p.Remaining = UnitPrice(remainingValue, remainingPrice)
	}

	if p.Received.Cmp(p.Unit) < 0 {
		return p, fault.ErrPriceBelowOrder
	}
	return p, nil
}

// UnitPrice - value * Coin / units without overflow, units must not be zero
func UnitPrice(value uint64, units uint64) *big.Int {
	price := new(big.Int).SetUint64(value)
	price.Mul(price, big.NewInt(Coin))
	return price.Quo(price, new(big.Int).SetUint64(units))
}
