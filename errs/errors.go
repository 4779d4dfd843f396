// Package errs defines the error vocabulary shared by every halotag package.
//
// Fatal conditions are reported as sentinel errors or typed errors that wrap
// them; callers match with errors.Is and errors.As. Non-fatal conditions are
// collected into a Warnings list and returned next to a successful result.
package errs

import (
	"errors"
	"fmt"
	"io"
)

// Header and dispatch errors.
var (
	ErrInvalidHeaderSize   = errors.New("invalid tag header size")
	ErrInvalidHeader       = errors.New("invalid tag header")
	ErrUnknownEngineTag    = errors.New("unknown engine tag")
	ErrUnsupportedGroup    = errors.New("unsupported tag group")
	ErrUnsupportedRevision = errors.New("unsupported revision for tag group")
	ErrNilAsset            = errors.New("nil asset")
)

// Stream and layout errors.
var (
	ErrNegativeLength     = errors.New("negative length")
	ErrLengthOverflow     = errors.New("length exceeds remaining data")
	ErrBlockCountMismatch = errors.New("block element count mismatch")
	ErrBlockHeader        = errors.New("invalid block header")
	ErrStringTooLong      = errors.New("string exceeds field width")
	ErrMissingTerminator  = errors.New("missing string terminator")
	ErrUnencodableString  = errors.New("string contains characters outside the charmap")
)

// Archive errors.
var (
	ErrInvalidArchive     = errors.New("invalid tag archive")
	ErrInvalidCompression = errors.New("invalid compression type")
	ErrHashCollision      = errors.New("tag path hash collision")
	ErrDuplicatePath      = errors.New("duplicate tag path")
	ErrInvalidPath        = errors.New("invalid tag path")
	ErrDigestMismatch     = errors.New("entry digest mismatch")
	ErrEntryNotFound      = errors.New("entry not found")
)

// DataError wraps an error that occurred at a specific byte offset of a tag.
type DataError struct {
	Offset int
	Cause  error
}

func (err DataError) Error() string {
	return fmt.Sprintf("offset %d: %s", err.Offset, err.Cause.Error())
}

func (err DataError) Unwrap() error {
	return err.Cause
}

// Truncated returns a DataError for a read past the end of the data.
func Truncated(offset int) error {
	return DataError{Offset: offset, Cause: io.ErrUnexpectedEOF}
}

// EnumError reports a wire value outside the closed set of an enum type.
type EnumError struct {
	Type  string
	Value int64
}

func (err EnumError) Error() string {
	return fmt.Sprintf("invalid %s value %d", err.Type, err.Value)
}

// ElementError wraps an error produced while coding one element of a block.
type ElementError struct {
	Block string
	Index int
	Cause error
}

func (err ElementError) Error() string {
	return fmt.Sprintf("%s[%d]: %s", err.Block, err.Index, err.Cause.Error())
}

func (err ElementError) Unwrap() error {
	return err.Cause
}

// TrailingBytesError is the warning produced when bytes remain after a
// complete decode.
type TrailingBytesError struct {
	Remaining int
}

func (err TrailingBytesError) Error() string {
	return fmt.Sprintf("%d bytes remain after decode", err.Remaining)
}

// UpgradeError reports a source value that has no mapping in the target
// revision.
type UpgradeError struct {
	Field string
	Value int64
}

func (err UpgradeError) Error() string {
	return fmt.Sprintf("upgrade: no mapping for %s value %d", err.Field, err.Value)
}
