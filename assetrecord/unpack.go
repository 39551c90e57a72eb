// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"encoding/binary"

	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/merkle"
	"github.com/bitmark-inc/assetsettle/util"
)

// Decode - unpack a metadata blob
//
// decoding never fails outright: on error the returned metadata has
// SubtypeNone and the error names the reason
func Decode(blob []byte) (*Metadata, error) {
	return Packed(blob).Unpack()
}

// Unpack - turn a byte slice into metadata
func (record Packed) Unpack() (m *Metadata, e error) {

	none := &Metadata{Subtype: SubtypeNone}

	defer func() {
		if r := recover(); nil != r {
			m = none
			e = fault.ErrMetadataTruncated
		}
	}()

	if len(record) < headerLength {
		return none, fault.ErrMetadataTooShort
	}
	if EvalCode != record[0] {
		return none, fault.ErrNotAssetMarker
	}

	subtype := SubtypeFromByte(record[1])
	result := &Metadata{Subtype: subtype}
	n := headerLength

	ok := true
	switch subtype.Family() {

	case FamilyCreate:
		result.Creator, n, ok = readBytes(record, n, maxCreatorLength)
		if !ok {
			break
		}
		var name, description []byte
		name, n, ok = readBytes(record, n, maxNameLength)
		if !ok {
			break
		}
		description, n, ok = readBytes(record, n, maxDescriptionLength)
		result.Name = string(name)
		result.Description = string(description)

	case FamilyTransfer:
		result.AssetId, n, ok = readAssetId(record, n)

	case FamilySell, FamilyBuy:
		result.AssetId, n, ok = readAssetId(record, n)
		if !ok {
			break
		}
		result.Price, n, ok = readPrice(record, n)
		if !ok {
			break
		}
		result.Creator, n, ok = readBytes(record, n, maxCreatorLength)

	case FamilyExchange:
		result.AssetId, n, ok = readAssetId(record, n)
		if !ok {
			break
		}
		result.AssetId2, n, ok = readAssetId(record, n)
		if !ok {
			break
		}
		result.Price, n, ok = readPrice(record, n)
		if !ok {
			break
		}
		result.Creator, n, ok = readBytes(record, n, maxCreatorLength)

	default:
		return none, fault.ErrUnknownSubtype
	}

	if !ok {
		return none, fault.ErrMetadataTruncated
	}
	if n != len(record) {
		return none, fault.ErrMetadataTrailingData
	}
	return result, nil
}

// read an asset id stored in wire order
func readAssetId(record Packed, n int) (merkle.Digest, int, bool) {
	if len(record)-n < assetIdLength {
		return merkle.Digest{}, n, false
	}
	wire := merkle.Digest{}
	copy(wire[:], record[n:n+assetIdLength])
	return wire.Reversed(), n + assetIdLength, true
}

func readPrice(record Packed, n int) (uint64, int, bool) {
	if len(record)-n < priceLength {
		return 0, n, false
	}
	return binary.LittleEndian.Uint64(record[n : n+priceLength]), n + priceLength, true
}

// read a Varint64(length) prefixed field of at most maximum bytes
func readBytes(record Packed, n int, maximum int) ([]byte, int, bool) {
	data, count := util.FromBytes(record[n:], 0, maximum)
	if 0 == count {
		return nil, n, false
	}
	return data, n + count, true
}
