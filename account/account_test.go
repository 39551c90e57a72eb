// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account_test

import (
	"encoding/hex"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/fault"
)

type accountTest struct {
	testnet       bool
	publicKey     []byte
	base58Account string
}

var testAccount = []accountTest{
	{
		testnet:       false,
		publicKey:     decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e"),
		base58Account: "anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLCj",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("731114267f15754a5fce4aaed8380b28aff25af7b378b011d92ef7b3f08910db"),
		base58Account: "eopaSeB7uiSVMdAmTrijq3W2MCWA5KHZrZvm5QLFGRVd3oWNe2",
	},
	{
		testnet:       true,
		publicKey:     decodeHex("cb6ff605f79deba3deb0c5122e40359a258481c151dffc176a2da5e8bc87cd2e"),
		base58Account: "fUjtNvmUJn7yJ7PVP7NT2FZbKDrudFxLVBHkwLJFgKWmGsPNVi",
	},
	{
		testnet:       false,
		publicKey:     decodeHex("0000000000000000000000000000000000000000000000000000000000000000"),
		base58Account: "a3ezwdYVEVrHwszQrYzDTCAZwUD3yKtNsCq9YhEu97bPaGAKy1",
	},
}

func TestValid(t *testing.T) {
	for i, test := range testAccount {
		a := account.NewED25519(test.publicKey, test.testnet)
		assert.Equal(t, test.base58Account, a.String(), "%d: base58", i)
		assert.Equal(t, test.testnet, a.IsTesting(), "%d: testnet", i)
		assert.Equal(t, account.ED25519, a.KeyType(), "%d: key type", i)

		b, err := account.AccountFromBytes(a.Bytes())
		assert.Nil(t, err, "%d: from bytes", i)
		assert.Equal(t, test.publicKey, b.PublicKeyBytes(), "%d: public key", i)
	}
}

func TestValidBase58(t *testing.T) {
	for i, test := range testAccount {
		a, err := account.AccountFromBase58(test.base58Account)
		if !assert.Nil(t, err, "%d: decode", i) {
			continue
		}
		assert.Equal(t, test.publicKey, a.PublicKeyBytes(), "%d: public key", i)
		assert.Equal(t, test.testnet, a.IsTesting(), "%d: testnet", i)
	}
}

func TestInvalidBase58(t *testing.T) {
	tests := []struct {
		str string
		err error
	}{
		{"3gLJjLSociTmf4kgL3ztUK;tgADFvg9yjXt1jFbEx9KgpEEAFn", fault.ErrCannotDecodeAccount},
		{"anF8SWxSRY5vnN3Bbyz9buRYW1hfCAAZxfbv8Fw9SFXaktvLDj", fault.ErrChecksumMismatch},
		{"", fault.ErrCannotDecodeAccount},
	}
	for i, test := range tests {
		_, err := account.AccountFromBase58(test.str)
		assert.Equal(t, test.err, err, "%d: %q", i, test.str)
	}
}

func TestInvalidBytes(t *testing.T) {
	key := decodeHex("60b3c6e20cfff7091a86488b1656b96ec0a2f69907e2c035175918f42c37d72e")

	tests := []struct {
		buffer []byte
		err    error
	}{
		{nil, fault.ErrNotPublicKey},
		{append([]byte{0x10}, key...), fault.ErrNotPublicKey},   // private key variant
		{append([]byte{0x01}, key...), fault.ErrInvalidKeyType}, // nothing algorithm
		{append([]byte{0x71}, key...), fault.ErrInvalidKeyType},
		{[]byte{0x11}, fault.ErrInvalidKeyLength},
		{append([]byte{0x11}, key[:31]...), fault.ErrInvalidKeyLength},
	}
	for i, test := range tests {
		_, err := account.AccountFromBytes(test.buffer)
		assert.Equal(t, test.err, err, "%d: %x", i, test.buffer)
	}
}

func TestJSON(t *testing.T) {
	type holder struct {
		Creator *account.Account `json:"creator"`
	}

	a := account.NewED25519(testAccount[0].publicKey, false)
	b, err := json.Marshal(holder{Creator: a})
	assert.Nil(t, err, "marshal")
	assert.Equal(t, `{"creator":"`+testAccount[0].base58Account+`"}`, string(b))

	var h holder
	err = json.Unmarshal(b, &h)
	assert.Nil(t, err, "unmarshal")
	assert.Equal(t, testAccount[0].publicKey, h.Creator.PublicKeyBytes())
}

func decodeHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if nil != err {
		panic(err)
	}
	return b
}
