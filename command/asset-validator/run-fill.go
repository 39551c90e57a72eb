// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetsettle/currency/satoshi"
	"github.com/bitmark-inc/assetsettle/fill"
)

type fillReply struct {
	Mode string `json:"mode"`
	fill.Result
	ReceivedCoins  string `json:"receivedCoins"`
	RemainingCoins string `json:"remainingCoins"`
}

func runFill(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	mode := fill.Integer
	if "" != c.String("pricing") {
		var err error
		mode, err = fill.ModeFromString(c.String("pricing"))
		if nil != err {
			return err
		}
	} else if nil != m.config {
		mode = m.config.PricingMode()
	}

	if "" == c.String("original") {
		return fmt.Errorf("empty original value")
	}
	original := satoshi.FromByteString([]byte(c.String("original")))
	total := c.Uint64("total")
	paid := c.Uint64("paid")

	if m.verbose {
		fmt.Fprintf(m.e, "original: %d  total: %d  paid: %d  mode: %s\n", original, total, paid, mode)
	}

	result, err := fill.Compute(original, total, paid, mode)
	if nil != err {
		return err
	}

	return printJson(m.w, fillReply{
		Mode:           mode.String(),
		Result:         result,
		ReceivedCoins:  satoshi.ToString(result.Received),
		RemainingCoins: satoshi.ToString(result.RemainingValue),
	})
}
