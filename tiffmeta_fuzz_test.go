// Copyright 2025 The tiffmeta authors
// SPDX-License-Identifier: MIT

package tiffmeta_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/gobaker/tiffmeta"
)

func FuzzDecode(f *testing.F) {
	for _, order := range []binary.ByteOrder{binary.LittleEndian, binary.BigEndian} {
		b := newTIFF(order)
		s := "fuzz seed\x00"
		b.directory(
			entrySpec{uint16(tiffmeta.TagImageWidth), uint16(tiffmeta.TypeShort), 1, b.shortValue(640)},
			entrySpec{uint16(tiffmeta.TagImageLength), uint16(tiffmeta.TypeLong), 1, b.longValue(480)},
			entrySpec{uint16(tiffmeta.TagXResolution), uint16(tiffmeta.TypeRational), 1, b.longValue(valueBlockOffset(4, 0))},
			entrySpec{uint16(tiffmeta.TagSoftware), uint16(tiffmeta.TypeASCII), uint32(len(s)), b.longValue(valueBlockOffset(4, 8))},
		)
		b.u32(300).u32(1)
		b.raw([]byte(s))
		f.Add(b.bytes())
	}
	f.Add([]byte{0x49, 0x49, 0x2a, 0x00})
	f.Add([]byte{0x4d, 0x4d})

	f.Fuzz(func(t *testing.T, data []byte) {
		fuzzDecodeBytes(t, data)
	})
}

func fuzzDecodeBytes(t *testing.T, data []byte) {
	res, err := tiffmeta.Decode(tiffmeta.Options{
		R:       bytes.NewReader(data),
		Lenient: true,
		Timeout: 600 * time.Millisecond,
	})
	if err != nil {
		if !tiffmeta.IsInvalidFormat(err) && !errors.Is(err, io.ErrUnexpectedEOF) && !strings.Contains(err.Error(), "timed out") {
			t.Fatalf("unknown error in Decode: %v %T", err, err)
		}
		return
	}

	for _, e := range res.Directory.Entries {
		if e.Value != nil {
			continue
		}
		if _, err := res.ResolveValue(e); err != nil {
			if !tiffmeta.IsInvalidFormat(err) && !errors.Is(err, io.ErrUnexpectedEOF) {
				t.Fatalf("unknown error in ResolveValue: %v %T", err, err)
			}
		}
	}
}
