// Copyright 2025 The tiffmeta authors
// SPDX-License-Identifier: MIT

package tiffmeta

import (
	"errors"
	"fmt"
)

var (
	errInvalidFormat = errors.New("tiffmeta: invalid format")

	// Internal sentinel panicked by streamReader to unwind out of a failed
	// read. Never escapes the package.
	errStop = errors.New("stop")
)

// IsInvalidFormat reports whether err means that the input is not a
// structurally valid TIFF. I/O errors (truncated or unreadable input) are not
// invalid format errors.
func IsInvalidFormat(err error) bool {
	return errors.Is(err, errInvalidFormat)
}

type invalidFormatError struct {
	err error
}

func (e *invalidFormatError) Error() string {
	return e.err.Error()
}

func (e *invalidFormatError) Is(target error) bool {
	return target == errInvalidFormat
}

func (e *invalidFormatError) Unwrap() error {
	return e.err
}

func newInvalidFormatErrorf(format string, args ...any) error {
	return &invalidFormatError{err: fmt.Errorf("tiffmeta: "+format, args...)}
}

// ByteOrderError is returned when the two leading bytes match neither of the
// recognized byte order markers.
type ByteOrderError struct {
	// Marker is the raw 16-bit pattern that was read.
	Marker uint16
}

func (e ByteOrderError) Error() string {
	return fmt.Sprintf("tiffmeta: invalid byte order marker 0x%04x", e.Marker)
}

func (e ByteOrderError) Is(target error) bool {
	return target == errInvalidFormat
}

// MagicError is returned when the magic field does not decode to 42 under the
// detected byte order.
type MagicError struct {
	// Magic is the value the field decoded to.
	Magic uint16
}

func (e MagicError) Error() string {
	return fmt.Sprintf("tiffmeta: invalid magic number %d", e.Magic)
}

func (e MagicError) Is(target error) bool {
	return target == errInvalidFormat
}

// UnknownTagError is returned (in strict mode) for an entry whose tag code is
// not in the registry.
type UnknownTagError struct {
	// Index is the position of the entry within the directory.
	Index int
	// Code is the raw tag code.
	Code uint16
}

func (e UnknownTagError) Error() string {
	return fmt.Sprintf("tiffmeta: entry %d: unknown tag 0x%04x", e.Index, e.Code)
}

func (e UnknownTagError) Is(target error) bool {
	return target == errInvalidFormat
}

// UnknownTagTypeError is returned (in strict mode) for an entry whose type
// code is outside 1-12.
type UnknownTagTypeError struct {
	Index int
	Code  uint16
}

func (e UnknownTagTypeError) Error() string {
	return fmt.Sprintf("tiffmeta: entry %d: unknown tag type %d", e.Index, e.Code)
}

func (e UnknownTagTypeError) Is(target error) bool {
	return target == errInvalidFormat
}
