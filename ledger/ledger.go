// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package ledger

import (
	"encoding/hex"

	"github.com/bitmark-inc/assetsettle/account"
	"github.com/bitmark-inc/assetsettle/merkle"
)

//go:generate mockgen -source=ledger.go -destination=mocks/ledger.go -package=mocks

// ScriptKind - classes of spending condition
type ScriptKind int

// enumerate the script kinds
const (
	Other = ScriptKind(iota)
	ContractControlled
	Plain
	DataOnly
)

// String - the name of the script kind
func (k ScriptKind) String() string {
	switch k {
	case ContractControlled:
		return "contract"
	case Plain:
		return "plain"
	case DataOnly:
		return "data"
	default:
		return "other"
	}
}

// Script - an opaque spending condition
type Script []byte

// MarshalText - hex form for JSON
func (s Script) MarshalText() ([]byte, error) {
	buffer := make([]byte, hex.EncodedLen(len(s)))
	hex.Encode(buffer, s)
	return buffer, nil
}

// UnmarshalText - from the hex form
func (s *Script) UnmarshalText(text []byte) error {
	buffer := make([]byte, hex.DecodedLen(len(text)))
	n, err := hex.Decode(buffer, text)
	if nil != err {
		return err
	}
	*s = buffer[:n]
	return nil
}

// Outpoint - reference to an output of an earlier transaction
type Outpoint struct {
	TxId  merkle.Digest `json:"txId"`
	Index uint32        `json:"index"`
}

// Input - a spent output and the data satisfying its condition
type Input struct {
	Previous  Outpoint `json:"previous"`
	ScriptSig Script   `json:"scriptSig"`
}

// Output - value locked by a spending condition
type Output struct {
	Value  uint64 `json:"value,string"`
	Script Script `json:"script"`
}

// Transaction - the parts of a ledger transaction used for validation
type Transaction struct {
	Id      merkle.Digest `json:"id"`
	Inputs  []Input       `json:"inputs"`
	Outputs []Output      `json:"outputs"`
}

// LastOutput - the output conventionally carrying metadata
func (tx *Transaction) LastOutput() (*Output, bool) {
	if nil == tx || 0 == len(tx.Outputs) {
		return nil, false
	}
	return &tx.Outputs[len(tx.Outputs)-1], true
}

// Output - bounds checked output access
func (tx *Transaction) Output(index int) (*Output, bool) {
	if nil == tx || index < 0 || index >= len(tx.Outputs) {
		return nil, false
	}
	return &tx.Outputs[index], true
}

// Input - bounds checked input access
func (tx *Transaction) Input(index int) (*Input, bool) {
	if nil == tx || index < 0 || index >= len(tx.Inputs) {
		return nil, false
	}
	return &tx.Inputs[index], true
}

// Resolver - find a confirmed or pending transaction by id
type Resolver interface {
	Transaction(txId merkle.Digest) (*Transaction, bool)
}

// Scripts - interpretation of spending conditions
type Scripts interface {
	Kind(script Script) ScriptKind
	Address(script Script) (account.Address, bool)
	Payload(script Script) ([]byte, bool)
	IsOwnInput(scriptSig []byte) bool
	ContractAddress(publicKey []byte) account.Address
	PlainAddress(publicKey []byte) account.Address
	EscrowAddress() account.Address
}

// Collection - an in memory Resolver
type Collection map[merkle.Digest]*Transaction

// Transaction - look up by id
func (c Collection) Transaction(txId merkle.Digest) (*Transaction, bool) {
	tx, ok := c[txId]
	return tx, ok
}

// Add - store transactions under their ids
func (c Collection) Add(txs ...*Transaction) {
	for _, tx := range txs {
		c[tx.Id] = tx
	}
}

// Resolvers - search each resolver in turn
type Resolvers []Resolver

// Transaction - the first match wins
func (r Resolvers) Transaction(txId merkle.Digest) (*Transaction, bool) {
	for _, resolver := range r {
		if tx, ok := resolver.Transaction(txId); ok {
			return tx, true
		}
	}
	return nil, false
}
