// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package merkle

import (
	"encoding/hex"
	"fmt"

	"golang.org/x/crypto/sha3"

	"github.com/bitmark-inc/assetsettle/fault"
)

// DigestLength - number of bytes in the digest
const DigestLength = 32

// Digest - type for transaction ids and asset ids
//
// stored as little endian byte array
// represented as big endian hex value for print and for JSON text
// to convert to bytes just use d[:]
type Digest [DigestLength]byte

// NewDigest - create a digest from a byte slice
func NewDigest(record []byte) Digest {
	return sha3.Sum256(record)
}

// Reversed - a copy of the digest with the byte order reversed
//
// asset ids are written to metadata in this order
func (digest Digest) Reversed() Digest {
	result := Digest{}
	for i := 0; i < DigestLength; i += 1 {
		result[i] = digest[DigestLength-1-i]
	}
	return result
}

// IsEmpty - true for the all zero digest
func (digest Digest) IsEmpty() bool {
	return digest == Digest{}
}

// String - convert a binary digest to hex string for use by the fmt package (for %s)
//
// the stored version is in little endian, but the output string is big endian
func (digest Digest) String() string {
	r := digest.Reversed()
	return hex.EncodeToString(r[:])
}

// GoString - convert a binary digest to big endian hex string for use by the fmt package (for %#v)
func (digest Digest) GoString() string {
	return "<SHA3-256:" + digest.String() + ">"
}

// Scan - convert a big endian hex representation to a digest for use by the format package scan routines
func (digest *Digest) Scan(state fmt.ScanState, verb rune) error {
	token, err := state.Token(true, func(c rune) bool {
		if c >= '0' && c <= '9' {
			return true
		}
		if c >= 'A' && c <= 'F' {
			return true
		}
		if c >= 'a' && c <= 'f' {
			return true
		}
		return false
	})
	if nil != err {
		return err
	}
	return digest.UnmarshalText(token)
}

// MarshalText - convert digest to big endian hex text
func (digest Digest) MarshalText() ([]byte, error) {
	return []byte(digest.String()), nil
}

// UnmarshalText - convert big endian hex text into a digest
func (digest *Digest) UnmarshalText(s []byte) error {
	if len(s) != hex.EncodedLen(DigestLength) {
		return fault.ErrNotLink
	}
	buffer := make([]byte, DigestLength)
	byteCount, err := hex.Decode(buffer, s)
	if nil != err {
		return err
	}
	if DigestLength != byteCount {
		return fault.ErrNotLink
	}
	for i, v := range buffer {
		digest[DigestLength-1-i] = v
	}
	return nil
}

// DigestFromBytes - convert and validate little endian binary byte slice to a digest
func DigestFromBytes(digest *Digest, buffer []byte) error {
	if DigestLength != len(buffer) {
		return fault.ErrNotLink
	}
	copy(digest[:], buffer)
	return nil
}
