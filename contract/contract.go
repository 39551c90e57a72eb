// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package contract

import (
	"golang.org/x/crypto/ed25519"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/assetrecord"
	"github.com/bitmark-inc/assetsettle/fault"
	"github.com/bitmark-inc/assetsettle/ledger"
	"github.com/bitmark-inc/assetsettle/util"
)

// leading opcodes of the recognised script forms
const (
	contractOpcode = 0xcc // [cc][eval code][Varint64 length][account]
	plainOpcode    = 0xac // [ac][Varint64 length][account]
	dataOpcode     = 0x6a // [6a][payload]

	maxKeyLength = 64
	seedPrefix   = "asset-contract"
)

// Contract - the asset contract identity
type Contract struct {
	evalCode    byte
	unspendable []byte // encoded account of the escrow key
}

// New - contract with an explicit escrow public key
//
// a nil key selects the key derived from the eval code
func New(unspendableKey ed25519.PublicKey) (*Contract, error) {
	if nil == unspendableKey {
		return Default(), nil
	}
	if ed25519.PublicKeySize != len(unspendableKey) {
		return nil, fault.ErrInvalidKeyLength
	}
	return &Contract{
		evalCode:    assetrecord.EvalCode,
		unspendable: account.NewED25519(unspendableKey, false).Bytes(),
	}, nil
}

// Default - contract using the derived escrow key
func Default() *Contract {
	return &Contract{
		evalCode:    assetrecord.EvalCode,
		unspendable: account.NewED25519(UnspendableKey(), false).Bytes(),
	}
}

// UnspendableKey - the escrow public key nobody holds a usable secret for
//
// it is a pure function of the eval code so every node derives the same key
func UnspendableKey() ed25519.PublicKey {
	seed := sha3.Sum256(append([]byte(seedPrefix), assetrecord.EvalCode))
	private := ed25519.NewKeyFromSeed(seed[:])
	return private.Public().(ed25519.PublicKey)
}

// EvalCode - the marker byte of this contract
func (c *Contract) EvalCode() byte {
	return c.evalCode
}

// EscrowKey - encoded account of the escrow key
func (c *Contract) EscrowKey() []byte {
	return append([]byte{}, c.unspendable...)
}

// ContractAddress - address of outputs controlled by this contract for a key
func (c *Contract) ContractAddress(publicKey []byte) account.Address {
	return account.NewAddress(account.ContractVersion, []byte{c.evalCode}, publicKey)
}

// PlainAddress - address of outputs paying directly to a key
func (c *Contract) PlainAddress(publicKey []byte) account.Address {
	return account.NewAddress(account.PlainVersion, publicKey)
}

// EscrowAddress - the deterministic unspendable escrow address
func (c *Contract) EscrowAddress() account.Address {
	return c.ContractAddress(c.unspendable)
}

// Kind - classify a spending condition
func (c *Contract) Kind(script ledger.Script) ledger.ScriptKind {
	if 0 == len(script) {
		return ledger.Other
	}
	switch script[0] {
	case contractOpcode:
		if _, ok := c.contractKey(script); ok {
			return ledger.ContractControlled
		}
	case plainOpcode:
		if _, ok := plainKey(script); ok {
			return ledger.Plain
		}
	case dataOpcode:
		return ledger.DataOnly
	}
	return ledger.Other
}

// Address - comparable address of a contract controlled or plain script
func (c *Contract) Address(script ledger.Script) (account.Address, bool) {
	if key, ok := c.contractKey(script); ok {
		return c.ContractAddress(key), true
	}
	if key, ok := plainKey(script); ok {
		return c.PlainAddress(key), true
	}
	return account.Address{}, false
}

// Payload - the data carried by a data only script
func (c *Contract) Payload(script ledger.Script) ([]byte, bool) {
	if 0 == len(script) || dataOpcode != script[0] {
		return nil, false
	}
	return script[1:], true
}

// IsOwnInput - true if the script sig satisfies a condition of this contract
func (c *Contract) IsOwnInput(scriptSig []byte) bool {
	return len(scriptSig) >= 2 && contractOpcode == scriptSig[0] && c.evalCode == scriptSig[1]
}

// ContractScript - condition controlled by this contract on behalf of a key
func (c *Contract) ContractScript(publicKey []byte) ledger.Script {
	return util.AppendBytes([]byte{contractOpcode, c.evalCode}, publicKey)
}

// EscrowScript - condition of every order escrow output
func (c *Contract) EscrowScript() ledger.Script {
	return c.ContractScript(c.unspendable)
}

// PlainScript - condition paying directly to a key
func PlainScript(publicKey []byte) ledger.Script {
	return util.AppendBytes([]byte{plainOpcode}, publicKey)
}

// DataScript - unspendable output carrying a payload
func DataScript(payload []byte) ledger.Script {
	return append(ledger.Script{dataOpcode}, payload...)
}

// ScriptSig - input data spending a contract controlled output
func (c *Contract) ScriptSig(fulfilment []byte) []byte {
	return append([]byte{contractOpcode, c.evalCode}, fulfilment...)
}

func (c *Contract) contractKey(script ledger.Script) ([]byte, bool) {
	if len(script) < 3 || contractOpcode != script[0] || c.evalCode != script[1] {
		return nil, false
	}
	return exactKey(script[2:])
}

func plainKey(script ledger.Script) ([]byte, bool) {
	if len(script) < 2 || plainOpcode != script[0] {
		return nil, false
	}
	return exactKey(script[1:])
}

// the key field must fill the rest of the script
func exactKey(buffer []byte) ([]byte, bool) {
	key, n := util.FromBytes(buffer, 1, maxKeyLength)
	if 0 == n || n != len(buffer) {
		return nil, false
	}
	return key, true
}
