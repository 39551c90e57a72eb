// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"github.com/bitmark-inc/assetsettle/fault"
)

// common errors - keep in alphabetic order
const (
	ErrNoFiles        = fault.InvalidError("no transaction files given")
	ErrNoTransactions = fault.InvalidError("file contains no transactions")
	ErrStoreNotOpen   = fault.ProcessError("store is not open")
)
