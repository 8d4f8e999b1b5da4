package tiffmeta

import "fmt"

// TagType is the on-disk data type of a directory entry, per the TIFF 6.0
// type catalogue (codes 1-12).
type TagType uint16

const (
	TypeByte           TagType = 1
	TypeASCII          TagType = 2
	TypeShort          TagType = 3
	TypeLong           TagType = 4
	TypeRational       TagType = 5
	TypeSignedByte     TagType = 6
	TypeUndefined      TagType = 7
	TypeSignedShort    TagType = 8
	TypeSignedLong     TagType = 9
	TypeSignedRational TagType = 10
	TypeFloat          TagType = 11
	TypeDouble         TagType = 12

	// typeShortOrLong is not an on-disk type code. It marks the tags that
	// accept either Short or Long in the expectation table.
	typeShortOrLong TagType = 0xfffe
)

// Size in bytes of a single value of each type.
var typeSizes = map[TagType]uint32{
	TypeByte:           1,
	TypeASCII:          1,
	TypeShort:          2,
	TypeLong:           4,
	TypeRational:       8,
	TypeSignedByte:     1,
	TypeUndefined:      1,
	TypeSignedShort:    2,
	TypeSignedLong:     4,
	TypeSignedRational: 8,
	TypeFloat:          4,
	TypeDouble:         8,
}

var typeNames = map[TagType]string{
	TypeByte:           "Byte",
	TypeASCII:          "ASCII",
	TypeShort:          "Short",
	TypeLong:           "Long",
	TypeRational:       "Rational",
	TypeSignedByte:     "SignedByte",
	TypeUndefined:      "Undefined",
	TypeSignedShort:    "SignedShort",
	TypeSignedLong:     "SignedLong",
	TypeSignedRational: "SignedRational",
	TypeFloat:          "Float",
	TypeDouble:         "Double",
	typeShortOrLong:    "ShortOrLong",
}

// DecodeTagType maps an on-disk type code to a TagType.
// The second return value reports whether the code is one of the twelve
// types the specification defines.
func DecodeTagType(code uint16) (TagType, bool) {
	t := TagType(code)
	_, ok := typeSizes[t]
	return t, ok
}

// Size returns the size in bytes of a single value of this type, or 0 for an
// unknown type.
func (t TagType) Size() uint32 {
	return typeSizes[t]
}

func (t TagType) String() string {
	if s, ok := typeNames[t]; ok {
		return s
	}
	return fmt.Sprintf("TagType(%d)", uint16(t))
}

// typeMatches reports whether the declared type satisfies the expected one,
// honoring the short-or-long exception.
func typeMatches(expected, declared TagType) bool {
	if expected == typeShortOrLong {
		return declared == TypeShort || declared == TypeLong
	}
	return expected == declared
}
