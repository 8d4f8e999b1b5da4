package tiffmeta

import (
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestDecodeTagRoundTrip(t *testing.T) {
	c := qt.New(t)

	// The registry is bijective on the closed set of known tags.
	for tag := range tagNames {
		got, ok := DecodeTag(uint16(tag))
		c.Assert(ok, qt.IsTrue, qt.Commentf("tag: %s", tag))
		c.Assert(got, qt.Equals, tag)
	}
}

func TestDecodeTag(t *testing.T) {
	c := qt.New(t)

	tag, ok := DecodeTag(0x0100)
	c.Assert(ok, qt.IsTrue)
	c.Assert(tag, qt.Equals, TagImageWidth)
	c.Assert(tag.String(), qt.Equals, "ImageWidth")

	tag, ok = DecodeTag(0xdead)
	c.Assert(ok, qt.IsFalse)
	c.Assert(tag.String(), qt.Equals, "UnknownTag_0xdead")
}

func TestDecodeTagType(t *testing.T) {
	c := qt.New(t)

	for code := uint16(1); code <= 12; code++ {
		typ, ok := DecodeTagType(code)
		c.Assert(ok, qt.IsTrue, qt.Commentf("code: %d", code))
		c.Assert(uint16(typ), qt.Equals, code)
		c.Assert(typ.Size() > 0, qt.IsTrue)
	}

	for _, code := range []uint16{0, 13, 42, 0xfffe, 0xffff} {
		_, ok := DecodeTagType(code)
		c.Assert(ok, qt.IsFalse, qt.Commentf("code: %d", code))
	}
}

func TestTagTypeSize(t *testing.T) {
	c := qt.New(t)

	c.Assert(TypeByte.Size(), qt.Equals, uint32(1))
	c.Assert(TypeShort.Size(), qt.Equals, uint32(2))
	c.Assert(TypeLong.Size(), qt.Equals, uint32(4))
	c.Assert(TypeRational.Size(), qt.Equals, uint32(8))
	c.Assert(TypeDouble.Size(), qt.Equals, uint32(8))
	c.Assert(TagType(99).Size(), qt.Equals, uint32(0))
}

func TestTagTypeString(t *testing.T) {
	c := qt.New(t)

	c.Assert(TypeShort.String(), qt.Equals, "Short")
	c.Assert(TypeSignedRational.String(), qt.Equals, "SignedRational")
	c.Assert(typeShortOrLong.String(), qt.Equals, "ShortOrLong")
	c.Assert(TagType(99).String(), qt.Equals, "TagType(99)")
}

func TestTypeMatches(t *testing.T) {
	c := qt.New(t)

	// The short-or-long exception is the only cross-type equivalence.
	c.Assert(typeMatches(typeShortOrLong, TypeShort), qt.IsTrue)
	c.Assert(typeMatches(typeShortOrLong, TypeLong), qt.IsTrue)
	c.Assert(typeMatches(typeShortOrLong, TypeByte), qt.IsFalse)
	c.Assert(typeMatches(TypeShort, TypeShort), qt.IsTrue)
	c.Assert(typeMatches(TypeShort, TypeLong), qt.IsFalse)
}

func TestTagSpecs(t *testing.T) {
	c := qt.New(t)

	c.Assert(tagSpecs[TagImageWidth], qt.Equals, tagSpec{typeShortOrLong, 1})
	c.Assert(tagSpecs[TagImageLength], qt.Equals, tagSpec{typeShortOrLong, 1})
	c.Assert(tagSpecs[TagRowsPerStrip], qt.Equals, tagSpec{typeShortOrLong, 1})
	c.Assert(tagSpecs[TagStripByteCounts], qt.Equals, tagSpec{typeShortOrLong, 0})
	c.Assert(tagSpecs[TagXResolution], qt.Equals, tagSpec{TypeRational, 1})

	// Every tag with an expectation is in the registry, and the expected type
	// is either a real type or the short-or-long marker.
	for tag, spec := range tagSpecs {
		_, ok := tagNames[tag]
		c.Assert(ok, qt.IsTrue, qt.Commentf("tag: 0x%04x", uint16(tag)))
		if spec.Type != typeShortOrLong {
			c.Assert(spec.Type.Size() > 0, qt.IsTrue, qt.Commentf("tag: %s", tag))
		}
	}
}
