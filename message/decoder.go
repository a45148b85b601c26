package message

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"unicode/utf8"

	"github.com/arloliu/ipp/endian"
	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/internal/options"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

// DefaultMaxCollectionDepth bounds collection nesting. The wire format
// admits unbounded nesting, so the decoder enforces an explicit cap to
// bound stack usage against hostile input. No registered attribute nests
// anywhere near this deep.
const DefaultMaxCollectionDepth = 16

// Option configures a Decoder.
type Option = options.Option[*Decoder]

// WithMaxCollectionDepth overrides the collection nesting limit.
func WithMaxCollectionDepth(depth int) Option {
	return options.New(func(d *Decoder) error {
		if depth <= 0 {
			return fmt.Errorf("invalid max collection depth %d", depth)
		}
		d.maxDepth = depth

		return nil
	})
}

// WithoutPayload makes Decode leave the bytes following the terminator
// unread instead of exposing them as the message payload.
func WithoutPayload() Option {
	return options.NoError(func(d *Decoder) {
		d.withoutPayload = true
	})
}

// Decoder reads one IPP message from an io.Reader.
//
// Decoding is driven by tag sniffing: each entry's leading byte decides
// whether it opens a group, terminates the message, or carries a value.
// Because input is consumed through the reader, a decoder fed from a
// network stream naturally suspends until more bytes arrive; a short
// buffer surfaces as ErrTruncatedMessage, never as a false success.
//
// Note: The Decoder is single-use. After Decode returns, create a new
// decoder for further messages.
type Decoder struct {
	br             *bufio.Reader
	engine         endian.EndianEngine
	maxDepth       int
	withoutPayload bool
}

// NewDecoder creates a Decoder reading from r.
func NewDecoder(r io.Reader, opts ...Option) (*Decoder, error) {
	d := &Decoder{
		br:       bufio.NewReader(r),
		engine:   endian.GetBigEndianEngine(),
		maxDepth: DefaultMaxCollectionDepth,
	}
	if err := options.Apply(d, opts...); err != nil {
		return nil, err
	}

	return d, nil
}

// DecodeBytes decodes a complete message from a byte slice. Any bytes
// after the terminator become the message payload.
func DecodeBytes(data []byte, opts ...Option) (*Message, error) {
	d, err := NewDecoder(bytes.NewReader(data), opts...)
	if err != nil {
		return nil, err
	}

	return d.Decode()
}

// Decode reads the 8-byte header, then groups until the
// end-of-attributes terminator, and exposes any remaining bytes as the
// payload stream.
func (d *Decoder) Decode() (*Message, error) {
	var hdr [8]byte
	if _, err := io.ReadFull(d.br, hdr[:]); err != nil {
		return nil, trunc(err, "header")
	}

	msg := &Message{
		Version:   MakeVersion(hdr[0], hdr[1]),
		Code:      d.engine.Uint16(hdr[2:4]),
		RequestID: d.engine.Uint32(hdr[4:8]),
	}

	// curAttr points at the attribute a zero-length-name continuation
	// extends; it resets at every group boundary.
	var cur *Group
	var curAttr *Attribute

	for {
		tb, err := d.br.ReadByte()
		if err != nil {
			return nil, trunc(err, "missing end-of-attributes-tag")
		}
		t := tag.Tag(tb)

		if t == tag.End {
			break
		}

		if t.IsDelimiter() {
			msg.Groups = append(msg.Groups, Group{Tag: t})
			cur = &msg.Groups[len(msg.Groups)-1]
			curAttr = nil

			continue
		}

		if cur == nil {
			return nil, fmt.Errorf("%w: value tag %s before any group delimiter",
				errs.ErrMalformedMessage, t)
		}

		name, data, err := d.readEntryBody()
		if err != nil {
			return nil, err
		}

		var v values.Value
		switch t {
		case tag.MemberName, tag.EndCollection:
			return nil, fmt.Errorf("%w: %s outside a collection", errs.ErrMalformedMessage, t)
		case tag.BegCollection:
			// The begCollection entry's own value is ignored.
			v, err = d.readCollection(1)
		default:
			v, err = values.Decode(d.engine, t, data)
		}
		if err != nil {
			return nil, err
		}

		if name == "" {
			if curAttr == nil {
				return nil, fmt.Errorf("%w: continuation value with no preceding attribute",
					errs.ErrMalformedAttribute)
			}
			if t != curAttr.Tag() {
				return nil, fmt.Errorf("%w: continuation tag %s does not match attribute %q (%s)",
					errs.ErrMalformedAttribute, t, curAttr.Name, curAttr.Tag())
			}
			curAttr.Values = append(curAttr.Values, v)

			continue
		}

		if !utf8.ValidString(name) {
			return nil, fmt.Errorf("%w: attribute name", errs.ErrInvalidEncoding)
		}
		cur.Attrs = append(cur.Attrs, Attribute{Name: name, Values: []values.Value{v}})
		curAttr = &cur.Attrs[len(cur.Attrs)-1]
	}

	if !d.withoutPayload {
		msg.Payload = d.br
	}

	return msg, nil
}

// readEntryBody reads the name-length / name / value-length / value
// portion of an attribute entry, the tag byte having been consumed.
func (d *Decoder) readEntryBody() (string, []byte, error) {
	name, err := d.readField()
	if err != nil {
		return "", nil, err
	}
	value, err := d.readField()
	if err != nil {
		return "", nil, err
	}

	return string(name), value, nil
}

func (d *Decoder) readField() ([]byte, error) {
	var lenBuf [2]byte
	if _, err := io.ReadFull(d.br, lenBuf[:]); err != nil {
		return nil, trunc(err, "field length")
	}
	n := int(d.engine.Uint16(lenBuf[:]))
	if n == 0 {
		return nil, nil
	}

	field := make([]byte, n)
	if _, err := io.ReadFull(d.br, field); err != nil {
		return nil, trunc(err, "field content")
	}

	return field, nil
}

// readCollection consumes entries until the matching endCollection,
// assembling (member name, value) pairs. A member with several values
// appears as several members sharing a name, preserving order.
func (d *Decoder) readCollection(depth int) (values.Collection, error) {
	if depth > d.maxDepth {
		return nil, fmt.Errorf("%w: depth %d exceeds limit %d",
			errs.ErrCollectionTooDeep, depth, d.maxDepth)
	}

	var members values.Collection
	var memberName string

	for {
		tb, err := d.br.ReadByte()
		if err != nil {
			return nil, trunc(err, "collection")
		}
		t := tag.Tag(tb)

		if t.IsDelimiter() {
			return nil, fmt.Errorf("%w: delimiter tag %s inside a collection",
				errs.ErrMalformedMessage, t)
		}

		name, data, err := d.readEntryBody()
		if err != nil {
			return nil, err
		}
		if name != "" {
			return nil, fmt.Errorf("%w: named entry %q inside a collection",
				errs.ErrMalformedAttribute, name)
		}

		switch t {
		case tag.EndCollection:
			return members, nil

		case tag.MemberName:
			if len(data) == 0 {
				return nil, fmt.Errorf("%w: collection member", errs.ErrEmptyAttributeName)
			}
			if !utf8.Valid(data) {
				return nil, fmt.Errorf("%w: member name", errs.ErrInvalidEncoding)
			}
			memberName = string(data)

		case tag.BegCollection:
			if memberName == "" {
				return nil, fmt.Errorf("%w: member value before memberAttrName",
					errs.ErrMalformedAttribute)
			}
			sub, err := d.readCollection(depth + 1)
			if err != nil {
				return nil, err
			}
			members = append(members, values.Member{Name: memberName, Value: sub})

		default:
			if memberName == "" {
				return nil, fmt.Errorf("%w: member value before memberAttrName",
					errs.ErrMalformedAttribute)
			}
			v, err := values.Decode(d.engine, t, data)
			if err != nil {
				return nil, err
			}
			members = append(members, values.Member{Name: memberName, Value: v})
		}
	}
}

// trunc maps reader exhaustion onto ErrTruncatedMessage so callers can
// distinguish "need more bytes" from structural corruption.
func trunc(err error, unit string) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return fmt.Errorf("%w: %s", errs.ErrTruncatedMessage, unit)
	}

	return err
}
