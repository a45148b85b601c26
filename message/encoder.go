package message

import (
	"bytes"
	"fmt"
	"io"

	"github.com/arloliu/ipp/endian"
	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/internal/pool"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

// Encoder serializes IPP messages to an io.Writer.
//
// The header and attribute groups are assembled in a pooled buffer and
// written in one call; the document payload, if any, is then streamed
// with io.Copy and never buffered in full.
//
// Note: The Encoder is not safe for concurrent use by multiple
// goroutines.
type Encoder struct {
	w      io.Writer
	engine endian.EndianEngine
}

// NewEncoder creates an Encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{
		w:      w,
		engine: endian.GetBigEndianEngine(),
	}
}

// Encode writes msg to the underlying writer: header, groups in caller
// order, the end-of-attributes terminator, then the payload stream if
// present.
func (e *Encoder) Encode(msg *Message) error {
	buf := pool.GetMessageBuffer()
	defer pool.PutMessageBuffer(buf)

	if err := e.encodeMessage(buf, msg); err != nil {
		return err
	}

	if _, err := e.w.Write(buf.Bytes()); err != nil {
		return err
	}

	if msg.Payload != nil {
		if _, err := io.Copy(e.w, msg.Payload); err != nil {
			return err
		}
	}

	return nil
}

// EncodeBytes serializes msg, payload included, into a single byte slice.
func EncodeBytes(msg *Message) ([]byte, error) {
	var out bytes.Buffer
	if err := NewEncoder(&out).Encode(msg); err != nil {
		return nil, err
	}

	return out.Bytes(), nil
}

func (e *Encoder) encodeMessage(buf *pool.ByteBuffer, msg *Message) error {
	buf.B = append(buf.B, msg.Version.Major(), msg.Version.Minor())
	buf.B = e.engine.AppendUint16(buf.B, msg.Code)
	buf.B = e.engine.AppendUint32(buf.B, msg.RequestID)

	for _, g := range msg.Groups {
		if !g.Tag.IsDelimiter() || g.Tag == tag.End {
			return fmt.Errorf("%w: group tag 0x%02x", errs.ErrNotDelimiter, uint8(g.Tag))
		}
		_ = buf.WriteByte(byte(g.Tag))

		for _, a := range g.Attrs {
			if err := e.encodeAttribute(buf, a); err != nil {
				return err
			}
		}
	}

	_ = buf.WriteByte(byte(tag.End))

	return nil
}

// encodeAttribute writes one attribute as a named entry followed by
// zero-length-name continuation entries for the remaining values.
func (e *Encoder) encodeAttribute(buf *pool.ByteBuffer, a Attribute) error {
	if err := a.validate(); err != nil {
		return err
	}

	for i, v := range a.Values {
		name := ""
		if i == 0 {
			name = a.Name
		}
		if err := e.encodeValue(buf, name, v); err != nil {
			return fmt.Errorf("attribute %q: %w", a.Name, err)
		}
	}

	return nil
}

func (e *Encoder) encodeValue(buf *pool.ByteBuffer, name string, v values.Value) error {
	if coll, ok := v.(values.Collection); ok {
		return e.encodeCollection(buf, name, coll)
	}

	data, err := values.Encode(e.engine, v)
	if err != nil {
		return err
	}
	e.writeEntry(buf, v.Tag(), name, data)

	return nil
}

// encodeCollection writes the begCollection entry carrying the attribute
// name, memberAttrName/value entries per member, and the closing
// endCollection entry. Nested collections recurse with a zero-length
// name, as all entries inside a collection carry one.
//
// Consecutive members sharing a name are a multi-valued member: they
// emit one memberAttrName entry followed by all their values, which is
// the wire form the decoder produced them from.
func (e *Encoder) encodeCollection(buf *pool.ByteBuffer, name string, coll values.Collection) error {
	e.writeEntry(buf, tag.BegCollection, name, nil)

	prevName := ""
	for _, m := range coll {
		if m.Name == "" {
			return fmt.Errorf("%w: collection member", errs.ErrEmptyAttributeName)
		}
		if len(m.Name) > values.MaxFieldLength {
			return fmt.Errorf("%w: member name is %d bytes", errs.ErrValueTooLong, len(m.Name))
		}
		if m.Name != prevName {
			e.writeEntry(buf, tag.MemberName, "", []byte(m.Name))
			prevName = m.Name
		}

		if err := e.encodeValue(buf, "", m.Value); err != nil {
			return err
		}
	}

	e.writeEntry(buf, tag.EndCollection, "", nil)

	return nil
}

// writeEntry writes a single tag / name-length / name / value-length /
// value entry. Lengths are validated by the callers.
func (e *Encoder) writeEntry(buf *pool.ByteBuffer, t tag.Tag, name string, value []byte) {
	buf.Grow(1 + 2 + len(name) + 2 + len(value))
	_ = buf.WriteByte(byte(t))
	buf.B = e.engine.AppendUint16(buf.B, uint16(len(name))) //nolint:gosec
	buf.MustWrite([]byte(name))
	buf.B = e.engine.AppendUint16(buf.B, uint16(len(value))) //nolint:gosec
	buf.MustWrite(value)
}
