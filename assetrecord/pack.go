// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/util"
)

// EncodeCreate - pack the metadata of an asset creation
func EncodeCreate(creator *account.Account, name string, description string) (Packed, error) {
	if nil == creator || len(name) > maxNameLength || len(description) > maxDescriptionLength {
		return nil, fault.ErrCreateMetadataInvalid
	}

	buffer := Packed{EvalCode, byte(Create)}
	buffer = appendAccount(buffer, creator)
	buffer = appendString(buffer, name)
	buffer = appendString(buffer, description)
	return buffer, nil
}

// EncodeOrder - pack the metadata of any subtype referring to an existing asset
//
// assetId2 is only written for the exchange family; price and creator
// only for the order families
func EncodeOrder(subtype Subtype, assetId merkle.Digest, assetId2 merkle.Digest, price uint64, creator *account.Account) (Packed, error) {

	buffer := Packed{EvalCode, byte(subtype)}

	switch subtype.Family() {
	case FamilyTransfer:
		buffer = appendAssetId(buffer, assetId)

	case FamilySell, FamilyBuy:
		buffer = appendAssetId(buffer, assetId)
		buffer = appendPrice(buffer, price)
		buffer = appendAccount(buffer, creator)

	case FamilyExchange:
		buffer = appendAssetId(buffer, assetId)
		buffer = appendAssetId(buffer, assetId2)
		buffer = appendPrice(buffer, price)
		buffer = appendAccount(buffer, creator)

	default:
		return nil, fault.ErrInvalidSubtype
	}
	return buffer, nil
}

// append an asset id in wire order
func appendAssetId(buffer Packed, id merkle.Digest) Packed {
	reversed := id.Reversed()
	return append(buffer, reversed[:]...)
}

// append a fixed width little endian price
func appendPrice(buffer Packed, price uint64) Packed {
	b := make([]byte, priceLength)
	binary.LittleEndian.PutUint64(b, price)
	return append(buffer, b...)
}

// append an account to a buffer
//
// the field is prefixed by Varint64(length), a nil account is written
// as a zero length field
func appendAccount(buffer Packed, creator *account.Account) Packed {
	if nil == creator {
		return util.AppendBytes(buffer, nil)
	}
	return util.AppendBytes(buffer, creator.Bytes())
}

// append a string to a buffer
//
// the field is prefixed by Varint64(length)
func appendString(buffer Packed, s string) Packed {
	return util.AppendBytes(buffer, []byte(s))
}
