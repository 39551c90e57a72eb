// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"github.com/syndtr/goleveldb/leveldb"
	ldb_util "github.com/syndtr/goleveldb/leveldb/util"

	"github.com/bitmark-inc/assetsettle/fault"
)

// PoolHandle - one prefixed table of a store
type PoolHandle struct {
	prefix byte
	limit  []byte
	store  *Store
}

// Element - a binary data item
type Element struct {
	Key   []byte
	Value []byte
}

// prepend the prefix onto the key
func (p *PoolHandle) prefixKey(key []byte) []byte {
	prefixedKey := make([]byte, 1, len(key)+1)
	prefixedKey[0] = p.prefix
	return append(prefixedKey, key...)
}

// Put - store a key/value bytes pair to the database
func (p *PoolHandle) Put(key []byte, value []byte) error {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.database {
		return fault.ErrDatabaseIsNotSet
	}
	prefixedKey := p.prefixKey(key)
	err := p.store.database.Put(prefixedKey, value, nil)
	if nil == err {
		p.store.cache.Set(dbPut, string(prefixedKey), value)
	}
	return err
}

// Delete - remove a key from the database
func (p *PoolHandle) Delete(key []byte) error {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.database {
		return fault.ErrDatabaseIsNotSet
	}
	prefixedKey := p.prefixKey(key)
	err := p.store.database.Delete(prefixedKey, nil)
	if nil == err {
		p.store.cache.Set(dbDelete, string(prefixedKey), nil)
	}
	return err
}

// Get - read a value for a given key
//
// returns nil if the key is not present
// this returns the cached element - copy the result if it must be modified
func (p *PoolHandle) Get(key []byte) ([]byte, error) {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.database {
		return nil, fault.ErrDatabaseIsNotSet
	}

	prefixedKey := p.prefixKey(key)
	if value, found := p.store.cache.Get(string(prefixedKey)); found {
		return value, nil
	}

	value, err := p.store.database.Get(prefixedKey, nil)
	if leveldb.ErrNotFound == err {
		return nil, nil
	}
	if nil != err {
		return nil, err
	}
	p.store.cache.Set(dbPut, string(prefixedKey), value)
	return value, nil
}

// Has - check if a key exists
func (p *PoolHandle) Has(key []byte) (bool, error) {
	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.database {
		return false, fault.ErrDatabaseIsNotSet
	}
	return p.store.database.Has(p.prefixKey(key), nil)
}

// Each - visit every element of the pool in key order
//
// the visitor returns false to stop early
func (p *PoolHandle) Each(visit func(Element) bool) error {
	maxRange := ldb_util.Range{
		Start: []byte{p.prefix}, // Start of key range, included in the range
		Limit: p.limit,          // Limit of key range, excluded from the range
	}

	p.store.RLock()
	defer p.store.RUnlock()
	if nil == p.store.database {
		return fault.ErrDatabaseIsNotSet
	}

	iter := p.store.database.NewIterator(&maxRange, nil)
	for iter.Next() {

		// contents of the returned slice must not be modified, and are
		// only valid until the next call to Next
		key := iter.Key()
		value := iter.Value()

		dataKey := make([]byte, len(key)-1) // strip the prefix
		copy(dataKey, key[1:])              // ...

		dataValue := make([]byte, len(value))
		copy(dataValue, value)

		if !visit(Element{Key: dataKey, Value: dataValue}) {
			break
		}
	}
	iter.Release()
	return iter.Error()
}
