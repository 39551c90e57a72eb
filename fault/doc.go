// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package fault - error instances
//
// Provides a single instance of errors to allow easy comparison
// without having to resort to partial string matches
//
// Every rejection produced by the asset validators is one of the
// values below, so the error string is the human readable reason and
// the error class tells the caller which kind of violation occurred.
package fault
