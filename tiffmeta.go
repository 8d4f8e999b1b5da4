// Copyright 2025 The tiffmeta authors
// SPDX-License-Identifier: MIT

// Package tiffmeta decodes the binary header and primary image file directory
// (IFD) of a TIFF container, per the TIFF 6.0 specification:
//
//	https://partners.adobe.com/public/developer/en/tiff/TIFF6.pdf
//
// It establishes the byte order, validates the structural magic marker, walks
// the directory of tagged entries and materializes the scalar values that are
// stored inline. Pixel data, compression and subIFD traversal are out of
// scope.
package tiffmeta

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"
)

// UnknownPrefix is used as prefix when rendering unknown tags.
const UnknownPrefix = "UnknownTag_"

const (
	byteOrderLittleEndian = 0x4949
	byteOrderBigEndian    = 0x4d4d

	// The structural constant following the byte order marker.
	headerMagic = 42
)

const (
	defaultLimitEntries   = 5000
	defaultLimitValueSize = 10000
)

// Options contains the options for the Decode function.
type Options struct {
	// The Reader (typically a *os.File) to read the TIFF structure from.
	// It is exclusively owned by the decode operation for its duration.
	R io.ReadSeeker

	// Lenient makes entries with unknown tags or unknown type codes skipped
	// with a diagnostic instead of failing the whole load. Type and count
	// mismatches are diagnostics in both modes.
	Lenient bool

	// Warnf will be called for each diagnostic.
	Warnf func(string, ...any)

	// Timeout is the maximum time the decoder will spend on reading.
	// Mostly useful for testing.
	// If set to 0, the decoder will not time out.
	Timeout time.Duration

	// LimitEntries is the maximum directory entry count accepted.
	// Default value is 5000.
	LimitEntries uint32

	// LimitValueSize is the maximum size in bytes of a value materialized by
	// ResolveValue. Default value is 10000.
	LimitValueSize uint32
}

// Header is the validated 8-byte TIFF header.
type Header struct {
	// ByteOrder selected by the byte order marker; everything after the
	// marker is decoded with it.
	ByteOrder binary.ByteOrder
	// Marker is the raw byte order marker, 0x4949 or 0x4d4d.
	Marker uint16
	// Magic is the structural constant, always 42 after a successful decode.
	Magic uint16
	// DirectoryOffset is the absolute offset of the first directory.
	DirectoryOffset uint32
}

// Directory is the primary IFD: an ordered sequence of entries.
type Directory struct {
	// Count is the entry count as stored. In strict mode len(Entries) equals
	// Count after a successful decode; in lenient mode skipped entries make
	// it smaller.
	Count   uint16
	Entries []Entry
}

// Entry is one 12-byte (tag, type, count, value/offset) directory record.
type Entry struct {
	// Index is the position of the entry within the directory, in read order.
	Index int
	Tag   Tag
	Type  TagType
	Count uint32
	// ValueOffset is the raw 4-byte value/offset slot decoded as a uint32
	// using the directory's byte order. It is only meaningful as an absolute
	// offset when the value does not fit inline.
	ValueOffset uint32
	// Value holds the materialized scalar for single-count values that fit
	// within the 4-byte slot, nil otherwise. See Result.ResolveValue for the
	// rest.
	Value any

	// The value/offset slot exactly as stored. Inline values are left
	// justified within it.
	raw [4]byte
}

// Inline reports whether the entry's value is stored in the value/offset slot
// itself rather than referenced by offset.
func (e Entry) Inline() bool {
	size := e.Type.Size()
	return size != 0 && uint64(size)*uint64(e.Count) <= 4
}

// DiagnosticKind classifies a non-fatal finding about one entry.
type DiagnosticKind int

const (
	DiagnosticTypeMismatch DiagnosticKind = iota + 1
	DiagnosticCountMismatch
	DiagnosticUnknownTag
	DiagnosticUnknownTagType
)

func (k DiagnosticKind) String() string {
	switch k {
	case DiagnosticTypeMismatch:
		return "TypeMismatch"
	case DiagnosticCountMismatch:
		return "CountMismatch"
	case DiagnosticUnknownTag:
		return "UnknownTag"
	case DiagnosticUnknownTagType:
		return "UnknownTagType"
	default:
		return fmt.Sprintf("DiagnosticKind(%d)", int(k))
	}
}

// Diagnostic is a non-fatal validation finding, tagged with the index of the
// entry it concerns.
type Diagnostic struct {
	Kind  DiagnosticKind
	Index int
	// Tag is the resolved tag, when resolution succeeded.
	Tag     Tag
	Message string
}

// Result is the outcome of a successful decode. The header and directory are
// immutable once returned.
type Result struct {
	Header      Header
	Directory   Directory
	Diagnostics []Diagnostic

	opts Options
	r    io.ReadSeeker
}

// Decode reads the TIFF header and primary directory from opts.R.
//
// Header stage failures (bad byte order marker, bad magic, I/O errors) are
// fatal and return no result. In strict mode (the default) an unknown tag or
// type code is also fatal; in lenient mode the entry is skipped and recorded
// as a diagnostic. I/O errors are always fatal and propagated unchanged.
func Decode(opts Options) (result *Result, err error) {
	if opts.R == nil {
		return nil, fmt.Errorf("no reader provided")
	}
	if opts.Warnf == nil {
		opts.Warnf = func(string, ...any) {}
	}
	if opts.LimitEntries == 0 {
		opts.LimitEntries = defaultLimitEntries
	}
	if opts.LimitValueSize == 0 {
		opts.LimitValueSize = defaultLimitValueSize
	}

	sr := &streamReader{
		r:         opts.R,
		byteOrder: binary.BigEndian,
	}

	d := &decoder{
		streamReader: sr,
		opts:         opts,
		result:       &Result{opts: opts, r: opts.R},
	}

	errFromRecover := func(r any) error {
		if r == nil {
			return nil
		}
		if r == errStop {
			if sr.readErr != nil {
				return sr.readErr
			}
			return io.ErrUnexpectedEOF
		}
		if errp, ok := r.(error); ok {
			return errp
		}
		return fmt.Errorf("unknown panic: %v", r)
	}

	decode := func() (err2 error) {
		defer func() {
			if rerr := errFromRecover(recover()); rerr != nil {
				err2 = rerr
			}
		}()
		return d.decode()
	}

	if opts.Timeout > 0 {
		errc := make(chan error, 1)
		go func() {
			errc <- decode()
		}()
		select {
		case <-time.After(opts.Timeout):
			err = fmt.Errorf("timed out after %s", opts.Timeout)
		case err = <-errc:
		}
	} else {
		err = decode()
	}

	if err != nil {
		return nil, err
	}
	return d.result, nil
}

// DecodeFile opens path and decodes it. The file handle is released before
// DecodeFile returns, on both success and error paths, so out-of-line values
// are not reachable from the returned Result; use Decode with a caller owned
// reader when ResolveValue is needed.
func DecodeFile(path string, opts Options) (_ *Result, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	opts.R = f
	result, err := Decode(opts)
	if err != nil {
		return nil, err
	}
	result.r = nil
	return result, nil
}
