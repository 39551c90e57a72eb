// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package satoshi

import (
	"strconv"
	"strings"
)

// Coin - number of base units in one whole coin
const Coin = 100000000

const decimalPlaces = 8

// FromByteString - convert a string to a Satoshi value
//
// i.e. "0.00000001" will convert to uint64(1)
//
// Note: Invalid characters are simply ignored and the conversion
//       simply stops after 8 decimal places have been processed.
//       Extra decimal points will also be ignored.
func FromByteString(coins []byte) uint64 {

	s := uint64(0)
	point := false
	decimals := 0

get_digits:
	for _, b := range coins {
		if b >= '0' && b <= '9' {
			s *= 10
			s += uint64(b - '0')
			if point {
				decimals += 1
				if decimals >= decimalPlaces {
					break get_digits
				}
			}
		} else if '.' == b {
			point = true
		}
	}
	for decimals < decimalPlaces {
		s *= 10
		decimals += 1
	}

	return s
}

// ToString - render a base unit value as whole coins
//
// trailing zero decimals are dropped, i.e. uint64(110000000) gives "1.1"
func ToString(value uint64) string {
	whole := strconv.FormatUint(value/Coin, 10)
	fraction := value % Coin
	if 0 == fraction {
		return whole
	}
	f := strconv.FormatUint(fraction, 10)
	f = strings.Repeat("0", decimalPlaces-len(f)) + f
	return whole + "." + strings.TrimRight(f, "0")
}
