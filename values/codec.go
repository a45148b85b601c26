package values

import (
	"fmt"
	"math"
	"unicode/utf8"

	"github.com/arloliu/ipp/endian"
	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/tag"
)

// MaxFieldLength is the maximum length in bytes of a single attribute name
// or value. It follows directly from the 2-byte length fields of the wire
// format.
const MaxFieldLength = math.MaxUint16

// Encode serializes v into the payload bytes of a single attribute entry.
// The 1-byte tag and 2-byte length framing around the payload belong to
// the message layer and are not produced here.
//
// Collections cannot be encoded as a flat payload: they span multiple
// entries (begCollection through endCollection) and are handled by the
// message encoder. Passing a Collection returns ErrMalformedValue.
func Encode(engine endian.EndianEngine, v Value) ([]byte, error) {
	switch val := v.(type) {
	case Integer:
		return engine.AppendUint32(nil, uint32(val)), nil //nolint:gosec
	case Enum:
		return engine.AppendUint32(nil, uint32(val)), nil //nolint:gosec
	case Boolean:
		if val {
			return []byte{1}, nil
		}

		return []byte{0}, nil
	case Text:
		return encodeString(string(val))
	case Name:
		return encodeString(string(val))
	case Keyword:
		return encodeString(string(val))
	case URI:
		return encodeString(string(val))
	case URIScheme:
		return encodeString(string(val))
	case Charset:
		return encodeString(string(val))
	case NaturalLanguage:
		return encodeString(string(val))
	case MimeMediaType:
		return encodeString(string(val))
	case TextLang:
		return encodeStringLang(engine, val.Lang, val.Text)
	case NameLang:
		return encodeStringLang(engine, val.Lang, val.Name)
	case DateTime:
		return encodeDateTime(engine, val)
	case Resolution:
		buf := engine.AppendUint32(nil, uint32(val.CrossFeed)) //nolint:gosec
		buf = engine.AppendUint32(buf, uint32(val.Feed))       //nolint:gosec

		return append(buf, byte(val.Units)), nil
	case Range:
		if val.Lower > val.Upper {
			return nil, fmt.Errorf("%w: range lower %d > upper %d",
				errs.ErrMalformedValue, val.Lower, val.Upper)
		}
		buf := engine.AppendUint32(nil, uint32(val.Lower)) //nolint:gosec

		return engine.AppendUint32(buf, uint32(val.Upper)), nil //nolint:gosec
	case Void:
		return nil, nil
	case Binary:
		if len(val.Data) > MaxFieldLength {
			return nil, fmt.Errorf("%w: %d bytes", errs.ErrValueTooLong, len(val.Data))
		}

		return val.Data, nil
	case Collection:
		return nil, fmt.Errorf("%w: collection is not a flat value", errs.ErrMalformedValue)
	default:
		return nil, fmt.Errorf("%w: unsupported value type %T", errs.ErrMalformedValue, v)
	}
}

func encodeString(s string) ([]byte, error) {
	if len(s) > MaxFieldLength {
		return nil, fmt.Errorf("%w: %d bytes", errs.ErrValueTooLong, len(s))
	}

	return []byte(s), nil
}

func encodeStringLang(engine endian.EndianEngine, lang, text string) ([]byte, error) {
	// The 2-byte sub-field length prefixes count toward the enclosing
	// value-length field, so the combined payload is what the wire caps.
	if 4+len(lang)+len(text) > MaxFieldLength {
		return nil, fmt.Errorf("%w: language plus text is %d bytes, limit %d",
			errs.ErrValueTooLong, 4+len(lang)+len(text), MaxFieldLength)
	}

	buf := engine.AppendUint16(nil, uint16(len(lang))) //nolint:gosec
	buf = append(buf, lang...)
	buf = engine.AppendUint16(buf, uint16(len(text))) //nolint:gosec

	return append(buf, text...), nil
}

func encodeDateTime(engine endian.EndianEngine, v DateTime) ([]byte, error) {
	if v.UTCDir != '+' && v.UTCDir != '-' {
		return nil, fmt.Errorf("%w: dateTime offset direction %q",
			errs.ErrMalformedValue, v.UTCDir)
	}

	buf := engine.AppendUint16(make([]byte, 0, 11), v.Year)

	return append(buf, v.Month, v.Day, v.Hour, v.Minutes, v.Seconds,
		v.Deciseconds, v.UTCDir, v.UTCHours, v.UTCMinutes), nil
}

// Decode interprets data as the payload of a value tagged t.
//
// The mapping is total over tags: value tags outside the known registry
// yield a Binary value preserving the raw bytes, so messages containing
// future tags still decode into a structurally valid document.
//
// Decode retains data in the returned value for binary variants; callers
// must not reuse the slice afterwards.
func Decode(engine endian.EndianEngine, t tag.Tag, data []byte) (Value, error) {
	switch t.Type() {
	case tag.TypeInteger:
		if len(data) != 4 {
			return nil, fmt.Errorf("%w: %s length %d, want 4", errs.ErrMalformedValue, t, len(data))
		}
		n := int32(engine.Uint32(data)) //nolint:gosec
		if t == tag.Enum {
			return Enum(n), nil
		}

		return Integer(n), nil

	case tag.TypeBoolean:
		if len(data) != 1 {
			return nil, fmt.Errorf("%w: boolean length %d, want 1", errs.ErrMalformedValue, len(data))
		}
		switch data[0] {
		case 0:
			return Boolean(false), nil
		case 1:
			return Boolean(true), nil
		default:
			return nil, fmt.Errorf("%w: boolean byte 0x%02x", errs.ErrMalformedValue, data[0])
		}

	case tag.TypeString:
		return decodeString(t, data)

	case tag.TypeTextLang, tag.TypeNameLang:
		return decodeStringLang(engine, t, data)

	case tag.TypeDateTime:
		return decodeDateTime(engine, data)

	case tag.TypeResolution:
		if len(data) != 9 {
			return nil, fmt.Errorf("%w: resolution length %d, want 9", errs.ErrMalformedValue, len(data))
		}

		return Resolution{
			CrossFeed: int32(engine.Uint32(data[0:4])), //nolint:gosec
			Feed:      int32(engine.Uint32(data[4:8])), //nolint:gosec
			Units:     tag.Units(data[8]),
		}, nil

	case tag.TypeRange:
		if len(data) != 8 {
			return nil, fmt.Errorf("%w: rangeOfInteger length %d, want 8", errs.ErrMalformedValue, len(data))
		}
		r := Range{
			Lower: int32(engine.Uint32(data[0:4])), //nolint:gosec
			Upper: int32(engine.Uint32(data[4:8])), //nolint:gosec
		}
		if r.Lower > r.Upper {
			return nil, fmt.Errorf("%w: range lower %d > upper %d", errs.ErrMalformedValue, r.Lower, r.Upper)
		}

		return r, nil

	case tag.TypeVoid:
		return decodeVoid(t, data)

	case tag.TypeBinary:
		return Binary{T: t, Data: data}, nil

	case tag.TypeCollection:
		// Collections span multiple entries; the message decoder assembles
		// them before reaching this point.
		return nil, fmt.Errorf("%w: bare %s value", errs.ErrMalformedValue, t)

	default: // tag.TypeInvalid
		return nil, fmt.Errorf("%w: delimiter tag 0x%02x in value position", errs.ErrMalformedValue, uint8(t))
	}
}

func decodeString(t tag.Tag, data []byte) (Value, error) {
	if !utf8.Valid(data) {
		return nil, fmt.Errorf("%w: %s value is not valid UTF-8", errs.ErrInvalidEncoding, t)
	}
	s := string(data)

	switch t {
	case tag.Text:
		return Text(s), nil
	case tag.Name:
		return Name(s), nil
	case tag.Keyword:
		return Keyword(s), nil
	case tag.URI:
		return URI(s), nil
	case tag.URIScheme:
		return URIScheme(s), nil
	case tag.Charset:
		return Charset(s), nil
	case tag.NaturalLanguage:
		return NaturalLanguage(s), nil
	case tag.MimeMediaType:
		return MimeMediaType(s), nil
	default:
		// memberAttrName and reserved string tags keep their raw form.
		return Binary{T: t, Data: data}, nil
	}
}

func decodeStringLang(engine endian.EndianEngine, t tag.Tag, data []byte) (Value, error) {
	if len(data) < 4 {
		return nil, fmt.Errorf("%w: %s length %d", errs.ErrMalformedValue, t, len(data))
	}

	langLen := int(engine.Uint16(data[0:2]))
	if 2+langLen+2 > len(data) {
		return nil, fmt.Errorf("%w: %s language overruns value", errs.ErrMalformedValue, t)
	}
	lang := data[2 : 2+langLen]

	textLen := int(engine.Uint16(data[2+langLen : 4+langLen]))
	if 4+langLen+textLen != len(data) {
		return nil, fmt.Errorf("%w: %s text overruns value", errs.ErrMalformedValue, t)
	}
	text := data[4+langLen:]

	if !utf8.Valid(lang) || !utf8.Valid(text) {
		return nil, fmt.Errorf("%w: %s value is not valid UTF-8", errs.ErrInvalidEncoding, t)
	}

	if t == tag.NameWithLang {
		return NameLang{Lang: string(lang), Name: string(text)}, nil
	}

	return TextLang{Lang: string(lang), Text: string(text)}, nil
}

func decodeDateTime(engine endian.EndianEngine, data []byte) (Value, error) {
	if len(data) != 11 {
		return nil, fmt.Errorf("%w: dateTime length %d, want 11", errs.ErrMalformedValue, len(data))
	}
	if data[8] != '+' && data[8] != '-' {
		return nil, fmt.Errorf("%w: dateTime offset direction 0x%02x", errs.ErrMalformedValue, data[8])
	}

	return DateTime{
		Year:        engine.Uint16(data[0:2]),
		Month:       data[2],
		Day:         data[3],
		Hour:        data[4],
		Minutes:     data[5],
		Seconds:     data[6],
		Deciseconds: data[7],
		UTCDir:      data[8],
		UTCHours:    data[9],
		UTCMinutes:  data[10],
	}, nil
}

func decodeVoid(t tag.Tag, data []byte) (Value, error) {
	if len(data) == 0 {
		return Void{T: t}, nil
	}

	switch t {
	case tag.Unsupported, tag.Unknown, tag.NoValue:
		return nil, fmt.Errorf("%w: out-of-band %s with %d payload bytes",
			errs.ErrMalformedValue, t, len(data))
	default:
		// Reserved out-of-band tags with payloads are preserved raw.
		return Binary{T: t, Data: data}, nil
	}
}
