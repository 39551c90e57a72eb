// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package ledger - the view of the host ledger needed by asset validation
//
// transactions are read only; the Resolver finds earlier transactions
// by id and Scripts interprets spending conditions
package ledger
