package tiffmeta

import (
	"encoding/binary"
	"fmt"
)

type decoder struct {
	*streamReader
	opts   Options
	result *Result
}

func (d *decoder) decode() error {
	if err := d.decodeHeader(); err != nil {
		return err
	}
	return d.decodeDirectory()
}

// decodeHeader establishes the effective byte order, validates the magic
// marker and reads the offset of the first directory. The offset itself is
// not validated here; a bad offset surfaces at the seek in decodeDirectory.
func (d *decoder) decodeHeader() error {
	// The two recognized marker patterns are byte order symmetric, so this
	// first read happens before the effective byte order is known.
	marker := d.read2()
	switch marker {
	case byteOrderLittleEndian:
		d.byteOrder = binary.LittleEndian
	case byteOrderBigEndian:
		d.byteOrder = binary.BigEndian
	default:
		return ByteOrderError{Marker: marker}
	}

	magic := d.read2()
	if magic != headerMagic {
		return MagicError{Magic: magic}
	}

	d.result.Header = Header{
		ByteOrder:       d.byteOrder,
		Marker:          marker,
		Magic:           magic,
		DirectoryOffset: d.read4(),
	}

	return nil
}

func (d *decoder) decodeDirectory() error {
	d.seek(int64(d.result.Header.DirectoryOffset))

	count := d.read2()
	if uint32(count) > d.opts.LimitEntries {
		return newInvalidFormatErrorf("entry count %d exceeds limit %d", count, d.opts.LimitEntries)
	}

	dir := Directory{
		Count:   count,
		Entries: make([]Entry, 0, count),
	}

	for i := 0; i < int(count); i++ {
		entry, err := d.decodeEntry(i)
		if err != nil {
			if !d.opts.Lenient {
				return err
			}
			d.warn(diagnosticFromErr(i, err))
			continue
		}
		dir.Entries = append(dir.Entries, entry)
	}

	d.result.Directory = dir
	return nil
}

// An entry is represented in 12 bytes:
//   - 2 bytes for the tag code
//   - 2 bytes for the type code
//   - 4 bytes for the number of values of that type
//   - 4 bytes for the value itself when it fits, left justified, otherwise
//     for the absolute offset of the value block.
func (d *decoder) decodeEntry(index int) (Entry, error) {
	tagCode := d.read2()
	typeCode := d.read2()
	count := d.read4()

	var raw [4]byte
	copy(raw[:], d.readBytesVolatile(4))

	tag, known := DecodeTag(tagCode)
	if !known {
		return Entry{}, UnknownTagError{Index: index, Code: tagCode}
	}
	typ, ok := DecodeTagType(typeCode)
	if !ok {
		return Entry{}, UnknownTagTypeError{Index: index, Code: typeCode}
	}

	entry := Entry{
		Index:       index,
		Tag:         tag,
		Type:        typ,
		Count:       count,
		ValueOffset: d.byteOrder.Uint32(raw[:]),
		raw:         raw,
	}

	if spec, ok := tagSpecs[tag]; ok {
		if !typeMatches(spec.Type, typ) {
			d.warn(Diagnostic{
				Kind:    DiagnosticTypeMismatch,
				Index:   index,
				Tag:     tag,
				Message: fmt.Sprintf("tag %s declares type %s, expected %s", tag, typ, spec.Type),
			})
		}
		if spec.Count != 0 && spec.Count != count {
			d.warn(Diagnostic{
				Kind:    DiagnosticCountMismatch,
				Index:   index,
				Tag:     tag,
				Message: fmt.Sprintf("tag %s declares count %d, expected %d", tag, count, spec.Count),
			})
		}
	}

	if count == 1 {
		entry.Value = decodeInlineScalar(typ, raw, d.byteOrder)
	}

	return entry, nil
}

func (d *decoder) warn(diag Diagnostic) {
	d.result.Diagnostics = append(d.result.Diagnostics, diag)
	d.opts.Warnf("entry %d: %s", diag.Index, diag.Message)
}

func diagnosticFromErr(index int, err error) Diagnostic {
	diag := Diagnostic{Index: index, Message: err.Error()}
	switch err.(type) {
	case UnknownTagError:
		diag.Kind = DiagnosticUnknownTag
	case UnknownTagTypeError:
		diag.Kind = DiagnosticUnknownTagType
	}
	return diag
}
