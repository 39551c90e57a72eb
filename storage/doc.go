// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package storage - on-disk store of ledger transactions
//
// maintain separate pools of elements in key->value form
//
// This maintains a LevelDB database split into a series of tables.
// Each table is defined by a prefix byte that is obtained from the
// prefix tag in the struct defining the available tables.
//
//
// Notes:
// 1. each separate pool has a single byte prefix (to spread the keys in LevelDB)
// 2. ++           = concatenation of byte data
// 3. txId         = transaction digest as 32 byte SHA3-256(packed data)
// 4. asset id     = txId of the creating transaction
//
// Transactions:
//
//   T ++ txId                  - known transactions
//                                data: packed transaction data
//
// Assets:
//
//   A ++ asset id              - validated creates
//                                data: asset name
//
// Version:
//
//   0x00 ++ "VERSION"          - database version (big endian uint32)
package storage
