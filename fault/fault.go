// SPDX-License-Identifier: ISC
// Copyright (c) 2014-2020 Bitmark Inc.
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package fault

// GenericError - error base
type GenericError string

// to allow for different classes of errors
type ExistsError GenericError
type InvalidError GenericError
type LengthError GenericError
type NotFoundError GenericError
type ProcessError GenericError
type RecordError GenericError

// classes for the asset protocol rejections
type MetadataError GenericError
type StructureError GenericError
type ConservationError GenericError
type PricingError GenericError

// common errors - keep in alphabetic order
var (
	ErrCannotDecodeAccount   = InvalidError("cannot decode account")
	ErrChecksumMismatch      = InvalidError("checksum mismatch")
	ErrConfigurationNotTable = InvalidError("configuration did not return a table")
	ErrDatabaseIsNotSet      = ProcessError("database is not set")
	ErrInvalidDataDirectory  = InvalidError("invalid data directory")
	ErrInvalidFileName       = InvalidError("file name must not contain a path")
	ErrInvalidKeyLength      = InvalidError("invalid key length")
	ErrInvalidKeyType        = InvalidError("invalid key type")
	ErrInvalidLoggerChannel  = InvalidError("invalid logger channel")
	ErrInvalidPricingMode    = InvalidError("invalid pricing mode")
	ErrInvalidStructPointer  = InvalidError("invalid struct pointer")
	ErrInvalidSubtype        = InvalidError("subtype cannot be encoded")
	ErrNotAddress            = InvalidError("not an address")
	ErrNotFoundConfigFile    = NotFoundError("configuration file is not found")
	ErrNotLink               = InvalidError("not a link")
	ErrNotPublicKey          = InvalidError("not a public key")
	ErrNotTransactionPack    = RecordError("not a transaction pack")
	ErrScriptTooLong         = LengthError("script too long")
	ErrTooManyInputs         = LengthError("too many inputs")
	ErrTooManyOutputs        = LengthError("too many outputs")
	ErrTransactionNotFound   = NotFoundError("transaction not found")
)

// MalformedMetadata: the blob on the last output cannot be decoded
var (
	ErrMetadataTooShort      = MetadataError("metadata too short")
	ErrMetadataTrailingData  = MetadataError("metadata has trailing data")
	ErrMetadataTruncated     = MetadataError("metadata field is truncated")
	ErrMissingMetadata       = MetadataError("transaction has no metadata output")
	ErrNotAssetMarker        = MetadataError("metadata marker is not the asset contract")
	ErrUnknownSubtype        = MetadataError("unknown asset subtype")
	ErrNotAssetTransaction   = MetadataError("not an asset transaction")
	ErrCreateMetadataInvalid = MetadataError("create metadata is invalid")
)

// StructuralViolation: the transaction graph does not have the expected shape
var (
	ErrAssetMismatch           = StructureError("asset id does not match the order")
	ErrCreatorMismatch         = StructureError("order creator does not match")
	ErrEscrowNotContract       = StructureError("escrow output is not contract controlled")
	ErrEscrowNotFirstOutput    = StructureError("escrow input must spend output 0")
	ErrInputIndexOutOfRange    = StructureError("input index out of range")
	ErrInvalidBuyOffer         = StructureError("invalid buy offer")
	ErrInvalidCreate           = StructureError("invalid asset create")
	ErrInvalidEscrowAddress    = StructureError("escrow output is not at the unspendable address")
	ErrMissingCreator          = StructureError("cannot recover order creator")
	ErrMissingInputTransaction = StructureError("input transaction not found")
	ErrNotBuyOffer             = StructureError("escrow input is not a buy offer")
	ErrNotEnoughInputs         = StructureError("not enough inputs for escrow")
	ErrNotEnoughOutputs        = StructureError("not enough outputs")
	ErrNotSellOffer            = StructureError("escrow input is not a sell offer")
	ErrOutputAddressMismatch   = StructureError("output paid to the wrong address")
	ErrOutputIndexOutOfRange   = StructureError("output index out of range")
	ErrZeroEscrowValue         = StructureError("escrow output has zero value")
)

// ConservationViolation: totals on both sides of a transaction or a fill disagree
var (
	ErrAssetsNotConserved = ConservationError("asset inputs and outputs differ")
	ErrFillOutOfRange     = ConservationError("fill amount out of range")
	ErrUnitsNotConserved  = ConservationError("total units differ from remaining plus paid units")
	ErrValueNotConserved  = ConservationError("original value differs from remaining plus received value")
	ErrValueOverflow      = ConservationError("value overflow")
	ErrZeroFillQuantity   = ConservationError("fill has a zero quantity")
	ErrZeroOrderSize      = ConservationError("order has zero size")
)

// PricingViolation: the effective price is worse than the order's price
var (
	ErrPriceBelowOrder = PricingError("received unit price is below the order unit price")
)

// the error interface base method
func (e GenericError) Error() string { return string(e) }

// the error interface methods
func (e ExistsError) Error() string       { return string(e) }
func (e InvalidError) Error() string      { return string(e) }
func (e LengthError) Error() string       { return string(e) }
func (e NotFoundError) Error() string     { return string(e) }
func (e ProcessError) Error() string      { return string(e) }
func (e RecordError) Error() string       { return string(e) }
func (e MetadataError) Error() string     { return string(e) }
func (e StructureError) Error() string    { return string(e) }
func (e ConservationError) Error() string { return string(e) }
func (e PricingError) Error() string      { return string(e) }

// determine the class of an error
func IsErrExists(e error) bool       { _, ok := e.(ExistsError); return ok }
func IsErrInvalid(e error) bool      { _, ok := e.(InvalidError); return ok }
func IsErrLength(e error) bool       { _, ok := e.(LengthError); return ok }
func IsErrNotFound(e error) bool     { _, ok := e.(NotFoundError); return ok }
func IsErrProcess(e error) bool      { _, ok := e.(ProcessError); return ok }
func IsErrRecord(e error) bool       { _, ok := e.(RecordError); return ok }
func IsErrMetadata(e error) bool     { _, ok := e.(MetadataError); return ok }
func IsErrStructure(e error) bool    { _, ok := e.(StructureError); return ok }
func IsErrConservation(e error) bool { _, ok := e.(ConservationError); return ok }
func IsErrPricing(e error) bool      { _, ok := e.(PricingError); return ok }

// IsRejection - true for any of the asset protocol rejection classes
func IsRejection(e error) bool {
	return IsErrMetadata(e) || IsErrStructure(e) || IsErrConservation(e) || IsErrPricing(e)
}
