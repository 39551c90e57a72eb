// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package assetrecord

import (
	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/merkle"
)

// EvalCode - marker byte identifying the asset contract
const EvalCode = 0xe3

// byte sizes for various fields
const (
	assetIdLength        = 32
	priceLength          = 8
	maxCreatorLength     = 64
	maxNameLength        = 64
	maxDescriptionLength = 2048
	headerLength         = 2 // marker + subtype
)

// Packed - packed metadata is just a byte slice
type Packed []byte

// Metadata - the unpacked metadata blob
//
// fields not carried by the subtype are left as zero values
type Metadata struct {
	Subtype     Subtype       `json:"subtype"`
	AssetId     merkle.Digest `json:"assetId"`
	AssetId2    merkle.Digest `json:"assetId2"`
	Price       uint64        `json:"price,string"`
	Creator     []byte        `json:"-"` // encoded account bytes
	Name        string        `json:"name"`
	Description string        `json:"description"`
}

// CreatorAccount - decode the creator public key
func (m *Metadata) CreatorAccount() (*account.Account, error) {
	if nil == m || 0 == len(m.Creator) {
		return nil, fault.ErrMissingCreator
	}
	return account.AccountFromBytes(m.Creator)
}

// HasAssetId - true if the decoded subtype references an existing asset
func (m *Metadata) HasAssetId() bool {
	if nil == m {
		return false
	}
	switch m.Subtype.Family() {
	case FamilyTransfer, FamilySell, FamilyBuy, FamilyExchange:
		return true
	default:
		return false
	}
}
