// Package tag defines the IPP tag, operation and status code registries.
//
// A tag is a one-byte discriminator that identifies either the type of an
// attribute value or the role of a group delimiter (RFC 8010 section 3.5).
// The registries here are closed enumerations with total mappings: a byte
// that does not name a known tag still maps to the binary fallback type so
// that messages carrying future tags remain decodable.
package tag

// Tag is a one-byte IPP tag: a group delimiter (0x00-0x0f) or a value tag
// (0x10 and above).
type Tag uint8

// Group delimiter tags (RFC 8010 section 3.5.1).
const (
	OperationAttributes   Tag = 0x01 // operation-attributes-tag
	JobAttributes         Tag = 0x02 // job-attributes-tag
	End                   Tag = 0x03 // end-of-attributes-tag
	PrinterAttributes     Tag = 0x04 // printer-attributes-tag
	UnsupportedAttributes Tag = 0x05 // unsupported-attributes-tag
)

// Out-of-band value tags (RFC 8010 section 3.5.2). These carry a
// zero-length value.
const (
	Unsupported Tag = 0x10 // unsupported
	Unknown     Tag = 0x12 // unknown
	NoValue     Tag = 0x13 // no-value
)

// Integer value tags.
const (
	Integer Tag = 0x21 // integer: 4-byte signed
	Boolean Tag = 0x22 // boolean: 1-byte
	Enum    Tag = 0x23 // enum: 4-byte signed
)

// Octet-string value tags.
const (
	OctetString    Tag = 0x30 // octetString with unspecified format
	DateTime       Tag = 0x31 // dateTime: 11-byte RFC 2579 timestamp
	Resolution     Tag = 0x32 // resolution: two 4-byte integers + unit byte
	RangeOfInteger Tag = 0x33 // rangeOfInteger: two 4-byte integers
	BegCollection  Tag = 0x34 // begCollection: opens a collection value
	TextWithLang   Tag = 0x35 // textWithLanguage
	NameWithLang   Tag = 0x36 // nameWithLanguage
	EndCollection  Tag = 0x37 // endCollection: closes a collection value
)

// Character-string value tags.
const (
	Text            Tag = 0x41 // textWithoutLanguage
	Name            Tag = 0x42 // nameWithoutLanguage
	Keyword         Tag = 0x44 // keyword
	URI             Tag = 0x45 // uri
	URIScheme       Tag = 0x46 // uriScheme
	Charset         Tag = 0x47 // charset
	NaturalLanguage Tag = 0x48 // naturalLanguage
	MimeMediaType   Tag = 0x49 // mimeMediaType
	MemberName      Tag = 0x4a // memberAttrName: names a collection member
)

// Type describes the payload shape a tag implies.
type Type uint8

const (
	TypeInvalid    Type = iota // group delimiters; not a value type
	TypeInteger                // 4-byte signed integer (integer, enum)
	TypeBoolean                // 1-byte boolean
	TypeString                 // length-prefixed UTF-8 text
	TypeDateTime               // 11-byte structured timestamp
	TypeResolution             // 9-byte resolution
	TypeRange                  // 8-byte integer range
	TypeTextLang               // text with declared language
	TypeNameLang               // name with declared language
	TypeCollection             // nested collection
	TypeVoid                   // zero-length out-of-band value
	TypeBinary                 // raw bytes: octetString and unknown tags
)

// IsDelimiter reports whether t is a group delimiter tag. The whole
// 0x00-0x0f range delimits groups; tags in that range that are not in the
// known registry still open a group, preserving forward compatibility.
func (t Tag) IsDelimiter() bool {
	return t < 0x10
}

// IsValue reports whether t is a value tag.
func (t Tag) IsValue() bool {
	return t >= 0x10
}

// IsOutOfBand reports whether t is an out-of-band value tag. The whole
// 0x10-0x1f range is reserved for out-of-band values.
func (t Tag) IsOutOfBand() bool {
	return t >= 0x10 && t < 0x20
}

// Type returns the payload type implied by t.
//
// The mapping is total: every byte value yields a type. Value tags outside
// the known registry map to TypeBinary so their payloads survive a
// decode/encode round trip untouched.
func (t Tag) Type() Type {
	if t.IsDelimiter() {
		return TypeInvalid
	}
	if t.IsOutOfBand() {
		return TypeVoid
	}

	switch t {
	case Integer, Enum:
		return TypeInteger
	case Boolean:
		return TypeBoolean
	case Text, Name, Keyword, URI, URIScheme, Charset, NaturalLanguage, MimeMediaType, MemberName:
		return TypeString
	case DateTime:
		return TypeDateTime
	case Resolution:
		return TypeResolution
	case RangeOfInteger:
		return TypeRange
	case TextWithLang:
		return TypeTextLang
	case NameWithLang:
		return TypeNameLang
	case BegCollection:
		return TypeCollection
	case EndCollection:
		return TypeVoid
	default:
		return TypeBinary
	}
}

func (t Tag) String() string {
	switch t {
	case OperationAttributes:
		return "operation-attributes-tag"
	case JobAttributes:
		return "job-attributes-tag"
	case End:
		return "end-of-attributes-tag"
	case PrinterAttributes:
		return "printer-attributes-tag"
	case UnsupportedAttributes:
		return "unsupported-attributes-tag"
	case Unsupported:
		return "unsupported"
	case Unknown:
		return "unknown"
	case NoValue:
		return "no-value"
	case Integer:
		return "integer"
	case Boolean:
		return "boolean"
	case Enum:
		return "enum"
	case OctetString:
		return "octetString"
	case DateTime:
		return "dateTime"
	case Resolution:
		return "resolution"
	case RangeOfInteger:
		return "rangeOfInteger"
	case BegCollection:
		return "begCollection"
	case TextWithLang:
		return "textWithLanguage"
	case NameWithLang:
		return "nameWithLanguage"
	case EndCollection:
		return "endCollection"
	case Text:
		return "textWithoutLanguage"
	case Name:
		return "nameWithoutLanguage"
	case Keyword:
		return "keyword"
	case URI:
		return "uri"
	case URIScheme:
		return "uriScheme"
	case Charset:
		return "charset"
	case NaturalLanguage:
		return "naturalLanguage"
	case MimeMediaType:
		return "mimeMediaType"
	case MemberName:
		return "memberAttrName"
	default:
		return "unknown-tag"
	}
}

// Units is the unit byte of a resolution value.
type Units uint8

const (
	DotsPerInch Units = 3 // dots per inch
	DotsPerCm   Units = 4 // dots per centimeter
)

func (u Units) String() string {
	switch u {
	case DotsPerInch:
		return "dpi"
	case DotsPerCm:
		return "dpcm"
	default:
		return "unknown-units"
	}
}
