// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package eval - per call context shared by the asset validators
package eval

import (
	"fmt"

	"github.com/bitmark-inc/logger"

	"github.com/bitmark-inc/assetsettle/ledger"
)

// Context - collaborators of a single validation
//
// it holds no mutable state and is passed by value, a nil Log
// discards diagnostics
type Context struct {
	Ledger  ledger.Resolver
	Scripts ledger.Scripts
	Log     *logger.L
}

// Invalid - report a rejection and return it
//
// the detail goes to the log only, the returned error is the typed
// fault so callers can classify it
func (ctx Context) Invalid(err error, format string, arguments ...interface{}) error {
	if nil != ctx.Log {
		detail := fmt.Sprintf(format, arguments...)
		ctx.Log.Warnf("invalid: %s: %s", err, detail)
	}
	return err
}

// Debugf - diagnostic output
func (ctx Context) Debugf(format string, arguments ...interface{}) {
	if nil != ctx.Log {
		ctx.Log.Debugf(format, arguments...)
	}
}
