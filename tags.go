package tiffmeta

import "fmt"

// Tag is the 16-bit identifier of a directory entry.
type Tag uint16

// Baseline tags, TIFF 6.0 section 8.
const (
	TagNewSubfileType            Tag = 0x00fe
	TagSubfileType               Tag = 0x00ff
	TagImageWidth                Tag = 0x0100
	TagImageLength               Tag = 0x0101
	TagBitsPerSample             Tag = 0x0102
	TagCompression               Tag = 0x0103
	TagPhotometricInterpretation Tag = 0x0106
	TagThresholding              Tag = 0x0107
	TagCellWidth                 Tag = 0x0108
	TagCellLength                Tag = 0x0109
	TagFillOrder                 Tag = 0x010a
	TagImageDescription          Tag = 0x010e
	TagMake                      Tag = 0x010f
	TagModel                     Tag = 0x0110
	TagStripOffsets              Tag = 0x0111
	TagOrientation               Tag = 0x0112
	TagSamplesPerPixel           Tag = 0x0115
	TagRowsPerStrip              Tag = 0x0116
	TagStripByteCounts           Tag = 0x0117
	TagMinSampleValue            Tag = 0x0118
	TagMaxSampleValue            Tag = 0x0119
	TagXResolution               Tag = 0x011a
	TagYResolution               Tag = 0x011b
	TagPlanarConfiguration       Tag = 0x011c
	TagFreeOffsets               Tag = 0x0120
	TagFreeByteCounts            Tag = 0x0121
	TagGrayResponseUnit          Tag = 0x0122
	TagGrayResponseCurve         Tag = 0x0123
	TagResolutionUnit            Tag = 0x0128
	TagSoftware                  Tag = 0x0131
	TagDateTime                  Tag = 0x0132
	TagArtist                    Tag = 0x013b
	TagHostComputer              Tag = 0x013c
	TagPredictor                 Tag = 0x013d
	TagColorMap                  Tag = 0x0140
	TagExtraSamples              Tag = 0x0152
	TagSampleFormat              Tag = 0x0153
	TagCopyright                 Tag = 0x8298
)

// Colorimetry (section 20) and YCbCr (section 21) tags.
const (
	TagWhitePoint            Tag = 0x013e
	TagPrimaryChromaticities Tag = 0x013f
	TagTransferFunction      Tag = 0x012d
	TagTransferRange         Tag = 0x0156
	TagReferenceBlackWhite   Tag = 0x0214
	TagYCbCrCoefficients     Tag = 0x0211
	TagYCbCrSubsampling      Tag = 0x0212
	TagYCbCrPositioning      Tag = 0x0213
)

// TIFF/EP, extension and private tags.
const (
	TagSubIFDs                Tag = 0x014a
	TagJPEGTables             Tag = 0x015b
	TagCFARepeatPatternDim    Tag = 0x828d
	TagBatteryLevel           Tag = 0x828f
	TagIPTC                   Tag = 0x83bb
	TagInterColorProfile      Tag = 0x8773
	TagInterlace              Tag = 0x8829
	TagTimeZoneOffset         Tag = 0x882a
	TagSelfTimerMode          Tag = 0x882b
	TagNoise                  Tag = 0x920d
	TagImageNumber            Tag = 0x9211
	TagSecurityClassification Tag = 0x9212
	TagImageHistory           Tag = 0x9213
	TagEPStandardID           Tag = 0x9216
	TagXMP                    Tag = 0x02bc
	TagPhotoshop              Tag = 0x8649
	TagEXIF                   Tag = 0x8769
)

var tagNames = map[Tag]string{
	TagNewSubfileType:            "NewSubfileType",
	TagSubfileType:               "SubfileType",
	TagImageWidth:                "ImageWidth",
	TagImageLength:               "ImageLength",
	TagBitsPerSample:             "BitsPerSample",
	TagCompression:               "Compression",
	TagPhotometricInterpretation: "PhotometricInterpretation",
	TagThresholding:              "Thresholding",
	TagCellWidth:                 "CellWidth",
	TagCellLength:                "CellLength",
	TagFillOrder:                 "FillOrder",
	TagImageDescription:          "ImageDescription",
	TagMake:                      "Make",
	TagModel:                     "Model",
	TagStripOffsets:              "StripOffsets",
	TagOrientation:               "Orientation",
	TagSamplesPerPixel:           "SamplesPerPixel",
	TagRowsPerStrip:              "RowsPerStrip",
	TagStripByteCounts:           "StripByteCounts",
	TagMinSampleValue:            "MinSampleValue",
	TagMaxSampleValue:            "MaxSampleValue",
	TagXResolution:               "XResolution",
	TagYResolution:               "YResolution",
	TagPlanarConfiguration:       "PlanarConfiguration",
	TagFreeOffsets:               "FreeOffsets",
	TagFreeByteCounts:            "FreeByteCounts",
	TagGrayResponseUnit:          "GrayResponseUnit",
	TagGrayResponseCurve:         "GrayResponseCurve",
	TagResolutionUnit:            "ResolutionUnit",
	TagSoftware:                  "Software",
	TagDateTime:                  "DateTime",
	TagArtist:                    "Artist",
	TagHostComputer:              "HostComputer",
	TagPredictor:                 "Predictor",
	TagColorMap:                  "ColorMap",
	TagExtraSamples:              "ExtraSamples",
	TagSampleFormat:              "SampleFormat",
	TagCopyright:                 "Copyright",
	TagWhitePoint:                "WhitePoint",
	TagPrimaryChromaticities:     "PrimaryChromaticities",
	TagTransferFunction:          "TransferFunction",
	TagTransferRange:             "TransferRange",
	TagReferenceBlackWhite:       "ReferenceBlackWhite",
	TagYCbCrCoefficients:         "YCbCrCoefficients",
	TagYCbCrSubsampling:          "YCbCrSubsampling",
	TagYCbCrPositioning:          "YCbCrPositioning",
	TagSubIFDs:                   "SubIFDs",
	TagJPEGTables:                "JPEGTables",
	TagCFARepeatPatternDim:       "CFARepeatPatternDim",
	TagBatteryLevel:              "BatteryLevel",
	TagIPTC:                      "IPTC",
	TagInterColorProfile:         "InterColorProfile",
	TagInterlace:                 "Interlace",
	TagTimeZoneOffset:            "TimeZoneOffset",
	TagSelfTimerMode:             "SelfTimerMode",
	TagNoise:                     "Noise",
	TagImageNumber:               "ImageNumber",
	TagSecurityClassification:    "SecurityClassification",
	TagImageHistory:              "ImageHistory",
	TagEPStandardID:              "EPStandardID",
	TagXMP:                       "XMP",
	TagPhotoshop:                 "Photoshop",
	TagEXIF:                      "EXIF",
}

// tagSpec is the registry expectation for a tag. A Count of 0 means variable,
// any count accepted.
type tagSpec struct {
	Type  TagType
	Count uint32
}

// tagSpecs maps known tags to their expected type and count. Tags without an
// entry (e.g. FreeOffsets) have no expectation and are never flagged.
var tagSpecs = map[Tag]tagSpec{
	TagArtist:                    {TypeASCII, 0},
	TagBitsPerSample:             {TypeShort, 0},
	TagCellLength:                {TypeShort, 1},
	TagCellWidth:                 {TypeShort, 1},
	TagColorMap:                  {TypeShort, 0},
	TagCompression:               {TypeShort, 1},
	TagCopyright:                 {TypeASCII, 0},
	TagDateTime:                  {TypeASCII, 0},
	TagExtraSamples:              {TypeShort, 0},
	TagFillOrder:                 {TypeShort, 1},
	TagGrayResponseCurve:         {TypeShort, 0},
	TagGrayResponseUnit:          {TypeShort, 1},
	TagHostComputer:              {TypeASCII, 0},
	TagImageDescription:          {TypeASCII, 0},
	TagImageLength:               {typeShortOrLong, 1},
	TagImageWidth:                {typeShortOrLong, 1},
	TagInterColorProfile:         {TypeUndefined, 0},
	TagMake:                      {TypeASCII, 0},
	TagMaxSampleValue:            {TypeShort, 0},
	TagMinSampleValue:            {TypeShort, 0},
	TagModel:                     {TypeASCII, 0},
	TagOrientation:               {TypeShort, 1},
	TagPhotometricInterpretation: {TypeShort, 1},
	TagPlanarConfiguration:       {TypeShort, 1},
	TagPredictor:                 {TypeShort, 1},
	TagResolutionUnit:            {TypeShort, 1},
	TagRowsPerStrip:              {typeShortOrLong, 1},
	TagSampleFormat:              {TypeShort, 0},
	TagSamplesPerPixel:           {TypeShort, 1},
	TagSoftware:                  {TypeASCII, 0},
	TagStripByteCounts:           {typeShortOrLong, 0},
	TagStripOffsets:              {TypeLong, 0},
	TagSubfileType:               {TypeShort, 1},
	TagThresholding:              {TypeShort, 1},
	TagXResolution:               {TypeRational, 1},
	TagYResolution:               {TypeRational, 1},
	TagXMP:                       {TypeByte, 0},
	TagPhotoshop:                 {TypeByte, 0},
	TagEXIF:                      {TypeLong, 0},
}

// DecodeTag maps an on-disk tag code to a Tag.
// The second return value reports whether the code is in the registry.
func DecodeTag(code uint16) (Tag, bool) {
	t := Tag(code)
	_, ok := tagNames[t]
	return t, ok
}

func (t Tag) String() string {
	if s, ok := tagNames[t]; ok {
		return s
	}
	return fmt.Sprintf("%s0x%04x", UnknownPrefix, uint16(t))
}
