// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/assetsettle/fault"
)

// Subtype - the single byte operation tag following the marker
type Subtype byte

// enumerate the possible subtypes
// the values are the bytes carried on the wire
const (
	// null marks a blob that did not decode - never written
	SubtypeNone = Subtype(0)

	Create     = Subtype('c') // mint a new asset
	Transfer   = Subtype('t') // move existing units
	CancelSell = Subtype('x') // reclaim a sell offer
	CancelBuy  = Subtype('o') // reclaim a buy offer
	SellOffer  = Subtype('s') // units escrowed for coins
	FillSell   = Subtype('S') // partial or full fill of a sell offer
	BuyOffer   = Subtype('b') // coins escrowed for units
	FillBuy    = Subtype('B') // partial or full fill of a buy offer
	SwapOffer  = Subtype('e') // units escrowed for another asset
	FillSwap   = Subtype('E') // fill of a swap offer
)

// Family - groups of subtypes sharing a field layout
type Family int

// enumerate the families
const (
	FamilyNone = Family(iota)
	FamilyCreate
	FamilyTransfer
	FamilySell
	FamilyBuy
	FamilyExchange
)

var subtypeNames = map[Subtype]string{
	SubtypeNone: "none",
	Create:      "create",
	Transfer:    "transfer",
	CancelSell:  "cancel-sell",
	CancelBuy:   "cancel-buy",
	SellOffer:   "sell-offer",
	FillSell:    "fill-sell",
	BuyOffer:    "buy-offer",
	FillBuy:     "fill-buy",
	SwapOffer:   "swap-offer",
	FillSwap:    "fill-swap",
}

// SubtypeFromByte - map a wire byte to a subtype, SubtypeNone if unknown
func SubtypeFromByte(b byte) Subtype {
	s := Subtype(b)
	if SubtypeNone == s {
		return SubtypeNone
	}
	if _, ok := subtypeNames[s]; !ok {
		return SubtypeNone
	}
	return s
}

// SubtypeFromString - map a subtype name back to the subtype
func SubtypeFromString(name string) (Subtype, error) {
	for s, n := range subtypeNames {
		if n == name && SubtypeNone != s {
			return s, nil
		}
	}
	return SubtypeNone, fault.ErrInvalidSubtype
}

// Family - the field layout group of the subtype
func (s Subtype) Family() Family {
	switch s {
	case Create:
		return FamilyCreate
	case Transfer, CancelSell, CancelBuy:
		return FamilyTransfer
	case SellOffer, FillSell:
		return FamilySell
	case BuyOffer, FillBuy:
		return FamilyBuy
	case SwapOffer, FillSwap:
		return FamilyExchange
	default:
		return FamilyNone
	}
}

// IsValid - true for every subtype except SubtypeNone
func (s Subtype) IsValid() bool {
	return FamilyNone != s.Family()
}

// IsBuyOffer - a buy offer or its fill, output 0 of these holds coins
func (s Subtype) IsBuyOffer() bool {
	return FamilyBuy == s.Family()
}

// IsSellOffer - a sell offer or its fill
func (s Subtype) IsSellOffer() bool {
	return FamilySell == s.Family()
}

// IsExchange - carries a secondary asset id
func (s Subtype) IsExchange() bool {
	return FamilyExchange == s.Family()
}

// IsOrder - carries a price and an order creator
func (s Subtype) IsOrder() bool {
	switch s.Family() {
	case FamilySell, FamilyBuy, FamilyExchange:
		return true
	default:
		return false
	}
}

// String - the name of the subtype
func (s Subtype) String() string {
	if n, ok := subtypeNames[s]; ok {
		return n
	}
	return "none"
}

// MarshalText - subtype name for JSON
func (s Subtype) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

// UnmarshalText - subtype from its JSON name
func (s *Subtype) UnmarshalText(text []byte) error {
	subtype, err := SubtypeFromString(string(text))
	if nil != err {
		return err
	}
	*s = subtype
	return nil
}
