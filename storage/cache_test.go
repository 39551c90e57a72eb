// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package storage

import (
	"bytes"
	"testing"
)

func TestCacheWriteThenRead(t *testing.T) {
	cache := newCache()

	key := "test"
	expected := []byte{'a', 'b', 'c', 'd'}

	actual, found := cache.Get(key)
	if found {
		t.Errorf("error key %s already exist value %v\n", key, actual)
	}

	cache.Set(dbPut, key, expected)
	actual, found = cache.Get(key)
	if !found || !bytes.Equal(actual, expected) {
		t.Errorf("error set key %s, expect %v but get %v\n", key, expected, actual)
	}
}

func TestCacheDeleted(t *testing.T) {
	cache := newCache()

	key := "test"
	cache.Set(dbPut, key, []byte{'a'})
	cache.Set(dbDelete, key, nil)

	if _, found := cache.Get(key); found {
		t.Errorf("error deleted key %s still found\n", key)
	}
}

func TestCacheClear(t *testing.T) {
	cache := newCache()

	key := "test"
	cache.Set(dbPut, key, []byte{'a', 'b', 'c', 'd'})
	cache.Clear()

	if _, found := cache.Get(key); found {
		t.Errorf("error key %s found after clear\n", key)
	}
}
