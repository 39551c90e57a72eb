// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/urfave/cli"

	"github.com/bitmark-inc/assetsettle/assetrecord"
)

func runDecode(c *cli.Context) error {

	m := c.App.Metadata["config"].(*metadata)

	blob := c.String("metadata")
	if "" == blob {
		return fmt.Errorf("empty metadata")
	}

	packed, err := hex.DecodeString(blob)
	if nil != err {
		return err
	}

	if m.verbose {
		fmt.Fprintf(m.e, "metadata: %x\n", packed)
	}

	record, err := assetrecord.Decode(packed)
	if nil != err {
		return err
	}

	return printJson(m.w, record)
}
