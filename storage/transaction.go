// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/merkle"
)

// Put - store a transaction under its id
//
// a transaction without an id is sealed first
func (s *Store) Put(tx *ledger.Transaction) error {
	packed, err := tx.Pack()
	if nil != err {
		return err
	}
	if tx.Id.IsEmpty() {
		tx.Id = packed.MakeId()
	}
	return s.Pool.Transactions.Put(tx.Id[:], packed)
}

// Transaction - fetch and unpack a stored transaction
//
// satisfies ledger.Resolver; a corrupt record is logged and reported
// as not found
func (s *Store) Transaction(txId merkle.Digest) (*ledger.Transaction, bool) {
	packed, err := s.Pool.Transactions.Get(txId[:])
	if nil != err {
		s.log.Errorf("get: %s  error: %s", txId, err)
		return nil, false
	}
	if nil == packed {
		return nil, false
	}

	tx, _, err := ledger.Packed(packed).Unpack()
	if nil != err {
		s.log.Errorf("unpack: %s  error: %s", txId, err)
		return nil, false
	}
	tx.Id = txId
	return tx, true
}

// Has - check if a transaction is stored
func (s *Store) Has(txId merkle.Digest) bool {
	found, err := s.Pool.Transactions.Has(txId[:])
	if nil != err {
		s.log.Errorf("has: %s  error: %s", txId, err)
		return false
	}
	return found
}

// Delete - remove a transaction
func (s *Store) Delete(txId merkle.Digest) error {
	return s.Pool.Transactions.Delete(txId[:])
}

// Each - visit every stored transaction in id order
//
// the visitor returns false to stop early
func (s *Store) Each(visit func(*ledger.Transaction) bool) error {
	var unpackError error
	err := s.Pool.Transactions.Each(func(e Element) bool {
		tx, _, err := ledger.Packed(e.Value).Unpack()
		if nil != err {
			unpackError = err
			return false
		}
		err = merkle.DigestFromBytes(&tx.Id, e.Key)
		if nil != err {
			unpackError = err
			return false
		}
		return visit(tx)
	})
	if nil != err {
		return err
	}
	return unpackError
}

// PutAsset - record a validated create under its asset id
func (s *Store) PutAsset(assetId merkle.Digest, name string) error {
	if assetId.IsEmpty() {
		return fault.ErrTransactionNotFound
	}
	return s.Pool.Assets.Put(assetId[:], []byte(name))
}

// Asset - name of a recorded asset
func (s *Store) Asset(assetId merkle.Digest) (string, bool) {
	name, err := s.Pool.Assets.Get(assetId[:])
	if nil != err || nil == name {
		return "", false
	}
	return string(name), true
}
