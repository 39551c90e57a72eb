// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package account

import (
	"bytes"

	"github.com/mr-tron/base58"
	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetsettle/fault"
)

// address layout: one version byte then the hash
const (
	addressHashLength = 20
	AddressLength     = 1 + addressHashLength
)

// address versions
const (
	PlainVersion    = 0x3c // pay to a public key
	ContractVersion = 0x1c // controlled by a contract condition
)

// Address - comparable destination derived from a script or a key
type Address [AddressLength]byte

// NewAddress - hash the concatenated data under a version byte
func NewAddress(version byte, data ...[]byte) Address {
	h := sha3.New256()
	for _, d := range data {
		h.Write(d)
	}
	digest := h.Sum(nil)

	a := Address{}
	a[0] = version
	copy(a[1:], digest[:addressHashLength])
	return a
}

// Version - the version byte of the address
func (address Address) Version() byte {
	return address[0]
}

// IsZero - true if the address was never set
func (address Address) IsZero() bool {
	return address == Address{}
}

// String - base58 encoding with a four byte checksum
func (address Address) String() string {
	checksum := sha3.Sum256(address[:])
	buffer := append(address[:], checksum[:checksumLength]...)
	return base58.Encode(buffer)
}

// GoString - for %#v
func (address Address) GoString() string {
	return "<address:" + address.String() + ">"
}

// MarshalText - convert an address to its Base58 JSON form
func (address Address) MarshalText() ([]byte, error) {
	return []byte(address.String()), nil
}

// UnmarshalText - convert a Base58 JSON form to an address
func (address *Address) UnmarshalText(s []byte) error {
	a, err := AddressFromBase58(string(s))
	if nil != err {
		return err
	}
	*address = a
	return nil
}

// AddressFromBase58 - decode and verify checksum
func AddressFromBase58(s string) (Address, error) {
	a := Address{}
	decoded, err := base58.Decode(s)
	if nil != err || AddressLength+checksumLength != len(decoded) {
		return a, fault.ErrNotAddress
	}
	checksum := sha3.Sum256(decoded[:AddressLength])
	if !bytes.Equal(checksum[:checksumLength], decoded[AddressLength:]) {
		return a, fault.ErrChecksumMismatch
	}
	copy(a[:], decoded[:AddressLength])
	return a, nil
}
