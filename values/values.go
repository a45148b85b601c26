// Package values implements the IPP attribute value model.
//
// Each IPP value variant is a distinct Go type implementing the Value
// interface, forming a closed tagged union: Integer, Enum, Boolean, the
// character-string kinds (Text, Name, Keyword, URI, ...), DateTime,
// Resolution, Range, Collection, the out-of-band Void marker and the
// Binary fallback that preserves values carrying tags outside the known
// registry. Encode and Decode sites switch exhaustively over these types,
// so adding a variant forces every call site to be revisited.
//
// Values are immutable once placed into a message; replacing one means
// constructing a new value.
package values

import (
	"fmt"
	"strings"
	"time"

	"github.com/arloliu/ipp/tag"
)

// Value is a single IPP attribute value.
//
// Tag returns the value tag the variant encodes with by default. For the
// Binary and Void variants the tag is carried by the value itself, which
// is what preserves unknown tags across a decode/encode round trip.
type Value interface {
	Tag() tag.Tag
	String() string
}

// Integer is a 4-byte signed integer value.
type Integer int32

func (v Integer) Tag() tag.Tag   { return tag.Integer }
func (v Integer) String() string { return fmt.Sprintf("%d", int32(v)) }

// Enum is a 4-byte signed enumeration value.
type Enum int32

func (v Enum) Tag() tag.Tag   { return tag.Enum }
func (v Enum) String() string { return fmt.Sprintf("%d", int32(v)) }

// Boolean is a 1-byte boolean value.
type Boolean bool

func (v Boolean) Tag() tag.Tag { return tag.Boolean }
func (v Boolean) String() string {
	if v {
		return "true"
	}

	return "false"
}

// Text is a textWithoutLanguage value.
type Text string

func (v Text) Tag() tag.Tag   { return tag.Text }
func (v Text) String() string { return string(v) }

// Name is a nameWithoutLanguage value.
type Name string

func (v Name) Tag() tag.Tag   { return tag.Name }
func (v Name) String() string { return string(v) }

// Keyword is a keyword value.
type Keyword string

func (v Keyword) Tag() tag.Tag   { return tag.Keyword }
func (v Keyword) String() string { return string(v) }

// URI is a uri value.
type URI string

func (v URI) Tag() tag.Tag   { return tag.URI }
func (v URI) String() string { return string(v) }

// URIScheme is a uriScheme value.
type URIScheme string

func (v URIScheme) Tag() tag.Tag   { return tag.URIScheme }
func (v URIScheme) String() string { return string(v) }

// Charset is a charset value.
type Charset string

func (v Charset) Tag() tag.Tag   { return tag.Charset }
func (v Charset) String() string { return string(v) }

// NaturalLanguage is a naturalLanguage value.
type NaturalLanguage string

func (v NaturalLanguage) Tag() tag.Tag   { return tag.NaturalLanguage }
func (v NaturalLanguage) String() string { return string(v) }

// MimeMediaType is a mimeMediaType value.
type MimeMediaType string

func (v MimeMediaType) Tag() tag.Tag   { return tag.MimeMediaType }
func (v MimeMediaType) String() string { return string(v) }

// TextLang is a textWithLanguage value: text qualified by a natural
// language identifier.
type TextLang struct {
	Lang string
	Text string
}

func (v TextLang) Tag() tag.Tag   { return tag.TextWithLang }
func (v TextLang) String() string { return v.Text + " [" + v.Lang + "]" }

// NameLang is a nameWithLanguage value.
type NameLang struct {
	Lang string
	Name string
}

func (v NameLang) Tag() tag.Tag   { return tag.NameWithLang }
func (v NameLang) String() string { return v.Name + " [" + v.Lang + "]" }

// DateTime is an 11-byte RFC 2579 DateAndTime value.
type DateTime struct {
	Year        uint16
	Month       uint8 // 1-12
	Day         uint8 // 1-31
	Hour        uint8
	Minutes     uint8
	Seconds     uint8
	Deciseconds uint8
	UTCDir      byte // '+' or '-'
	UTCHours    uint8
	UTCMinutes  uint8
}

func (v DateTime) Tag() tag.Tag { return tag.DateTime }

func (v DateTime) String() string {
	return fmt.Sprintf("%04d-%02d-%02dT%02d:%02d:%02d.%d%c%02d:%02d",
		v.Year, v.Month, v.Day, v.Hour, v.Minutes, v.Seconds,
		v.Deciseconds, v.UTCDir, v.UTCHours, v.UTCMinutes)
}

// Time converts v to a time.Time in the UTC offset it carries.
func (v DateTime) Time() time.Time {
	offset := int(v.UTCHours)*3600 + int(v.UTCMinutes)*60
	if v.UTCDir == '-' {
		offset = -offset
	}
	loc := time.FixedZone("UTC", offset)

	return time.Date(int(v.Year), time.Month(v.Month), int(v.Day),
		int(v.Hour), int(v.Minutes), int(v.Seconds),
		int(v.Deciseconds)*100_000_000, loc)
}

// MakeDateTime converts a time.Time into a DateTime value.
func MakeDateTime(t time.Time) DateTime {
	_, offset := t.Zone()
	dir := byte('+')
	if offset < 0 {
		dir = '-'
		offset = -offset
	}

	return DateTime{
		Year:        uint16(t.Year()), //nolint:gosec
		Month:       uint8(t.Month()),
		Day:         uint8(t.Day()),
		Hour:        uint8(t.Hour()),
		Minutes:     uint8(t.Minute()),
		Seconds:     uint8(t.Second()),
		Deciseconds: uint8(t.Nanosecond() / 100_000_000),
		UTCDir:      dir,
		UTCHours:    uint8(offset / 3600),
		UTCMinutes:  uint8(offset % 3600 / 60),
	}
}

// Resolution is a resolution value: cross-feed and feed direction
// resolutions plus a unit code.
type Resolution struct {
	CrossFeed int32
	Feed      int32
	Units     tag.Units
}

func (v Resolution) Tag() tag.Tag { return tag.Resolution }

func (v Resolution) String() string {
	return fmt.Sprintf("%dx%d%s", v.CrossFeed, v.Feed, v.Units)
}

// Range is a rangeOfInteger value. Lower must not exceed Upper.
type Range struct {
	Lower int32
	Upper int32
}

func (v Range) Tag() tag.Tag   { return tag.RangeOfInteger }
func (v Range) String() string { return fmt.Sprintf("%d-%d", v.Lower, v.Upper) }

// Member is a named member of a collection.
type Member struct {
	Name  string
	Value Value
}

// Collection is an ordered sequence of named members, each member itself a
// value. Collections nest as a tree; the decoder bounds nesting depth.
type Collection []Member

func (v Collection) Tag() tag.Tag { return tag.BegCollection }

func (v Collection) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, m := range v {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(m.Name)
		sb.WriteByte('=')
		sb.WriteString(m.Value.String())
	}
	sb.WriteByte('}')

	return sb.String()
}

// Get returns the first member named name.
func (v Collection) Get(name string) (Value, bool) {
	for _, m := range v {
		if m.Name == name {
			return m.Value, true
		}
	}

	return nil, false
}

// Void is an out-of-band value: a tag with a zero-length payload that
// signals an attribute is present but its value is deliberately
// unspecified (unsupported, unknown, no-value).
type Void struct {
	T tag.Tag
}

func (v Void) Tag() tag.Tag   { return v.T }
func (v Void) String() string { return v.T.String() }

// Binary carries a raw (tag, bytes) pair. It represents octetString
// values as well as values with tags outside the known registry, which it
// preserves byte-for-byte for round-trip fidelity.
type Binary struct {
	T    tag.Tag
	Data []byte
}

func (v Binary) Tag() tag.Tag   { return v.T }
func (v Binary) String() string { return fmt.Sprintf("%x", v.Data) }

// Equal reports whether two values are deeply equal: same variant, same
// tag, same payload. Collections compare member-wise in order.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == b
	}
	if a.Tag() != b.Tag() {
		return false
	}

	switch av := a.(type) {
	case Collection:
		bv, ok := b.(Collection)
		if !ok || len(av) != len(bv) {
			return false
		}
		for i := range av {
			if av[i].Name != bv[i].Name || !Equal(av[i].Value, bv[i].Value) {
				return false
			}
		}

		return true
	case Binary:
		bv, ok := b.(Binary)

		return ok && string(av.Data) == string(bv.Data)
	default:
		return a == b
	}
}
