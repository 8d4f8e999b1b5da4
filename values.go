package tiffmeta

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"math"

	"golang.org/x/text/encoding/charmap"
)

// decodeInlineScalar reinterprets the raw value/offset slot as a single
// scalar, honoring the left justification rule. It returns nil for the kinds
// that never fit the slot as a single value (rational, ASCII, double) and for
// opaque bytes.
func decodeInlineScalar(typ TagType, raw [4]byte, order binary.ByteOrder) any {
	switch typ {
	case TypeByte:
		return raw[0]
	case TypeSignedByte:
		return int8(raw[0])
	case TypeShort:
		return order.Uint16(raw[:2])
	case TypeSignedShort:
		return int16(order.Uint16(raw[:2]))
	case TypeLong:
		return order.Uint32(raw[:])
	case TypeSignedLong:
		return int32(order.Uint32(raw[:]))
	case TypeFloat:
		return math.Float32frombits(order.Uint32(raw[:]))
	default:
		return nil
	}
}

// ResolveValue materializes the complete value of an entry, following the
// value offset when the value is stored out of line. Values Decode already
// resolved inline are returned as is.
//
// ASCII values come back as a string, opaque (Undefined) values as []byte,
// rationals as Rat, and multi-count values as a []any in storage order. The
// size of the value block is bounded by Options.LimitValueSize.
func (r *Result) ResolveValue(e Entry) (v any, err error) {
	if e.Value != nil {
		return e.Value, nil
	}
	if r.r == nil {
		return nil, fmt.Errorf("no reader available; use Decode with a caller owned reader to resolve values")
	}

	size := e.Type.Size()
	if size == 0 {
		return nil, UnknownTagTypeError{Index: e.Index, Code: uint16(e.Type)}
	}
	length := uint64(size) * uint64(e.Count)
	if length > uint64(r.opts.LimitValueSize) {
		return nil, newInvalidFormatErrorf("value size %d exceeds limit %d", length, r.opts.LimitValueSize)
	}

	sr := &streamReader{
		r:         r.r,
		byteOrder: r.Header.ByteOrder,
	}

	defer func() {
		if rec := recover(); rec != nil {
			if rec != errStop {
				panic(rec)
			}
			v, err = nil, sr.readErr
		}
	}()

	if length <= 4 {
		return sr.convertValues(e.Type, int(e.Count), int(length), bytes.NewReader(e.raw[:length])), nil
	}

	err = sr.preservePos(func() error {
		sr.seek(int64(e.ValueOffset))
		br, err := sr.bufferedReader(int64(length))
		if err != nil {
			return err
		}
		defer br.Close()
		v = sr.convertValues(e.Type, int(e.Count), int(length), br)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return v, nil
}

func (e *streamReader) convertValue(typ TagType, r io.Reader) any {
	switch typ {
	case TypeByte:
		return e.read1r(r)
	case TypeSignedByte:
		return int8(e.read1r(r))
	case TypeShort:
		return e.read2r(r)
	case TypeSignedShort:
		return int16(e.read2r(r))
	case TypeLong:
		return e.read4r(r)
	case TypeSignedLong:
		return e.read4sr(r)
	case TypeFloat:
		return math.Float32frombits(e.read4r(r))
	case TypeDouble:
		return math.Float64frombits(e.read8r(r))
	case TypeRational:
		n, d := e.read4r(r), e.read4r(r)
		if d == 0 {
			return math.Inf(1)
		}
		v, _ := NewRat[uint32](n, d)
		return v
	case TypeSignedRational:
		n, d := e.read4sr(r), e.read4sr(r)
		if d == 0 {
			return math.Inf(1)
		}
		v, _ := NewRat[int32](n, d)
		return v
	default:
		return nil
	}
}

func (e *streamReader) convertValues(typ TagType, count, length int, r io.Reader) any {
	if count == 0 {
		return nil
	}

	if typ == TypeASCII {
		b := e.readBytesFromRVolatile(length, r)
		return decodeASCII(b[:count])
	}

	if typ == TypeUndefined {
		b := e.readBytesFromRVolatile(length, r)
		out := make([]byte, count)
		copy(out, b[:count])
		return out
	}

	if count == 1 {
		return e.convertValue(typ, r)
	}

	values := make([]any, count)
	for i := range values {
		values[i] = e.convertValue(typ, r)
	}
	return values
}

// TIFF ASCII values are NUL terminated and, in the wild, routinely Latin-1
// rather than 7-bit ASCII.
func decodeASCII(b []byte) string {
	b = trimBytesNulls(b)
	s, err := charmap.ISO8859_1.NewDecoder().Bytes(b)
	if err != nil {
		return string(b)
	}
	return string(s)
}

func trimBytesNulls(b []byte) []byte {
	var lo, hi int
	for lo = 0; lo < len(b) && b[lo] == 0; lo++ {
	}
	for hi = len(b) - 1; hi >= 0 && b[hi] == 0; hi-- {
	}
	if lo > hi {
		return nil
	}
	return b[lo : hi+1]
}
