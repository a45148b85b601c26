package message

import (
	"fmt"
	"io"

	"github.com/arloliu/ipp/tag"
)

// Version packs the 1-byte major and minor protocol version fields.
type Version uint16

// DefaultVersion is IPP 1.1, the version the request builders emit.
const DefaultVersion = Version(0x0101)

// MakeVersion packs major and minor into a Version.
func MakeVersion(major, minor uint8) Version {
	return Version(uint16(major)<<8 | uint16(minor))
}

// Major returns the major version number.
func (v Version) Major() uint8 { return uint8(v >> 8) } //nolint:gosec

// Minor returns the minor version number.
func (v Version) Minor() uint8 { return uint8(v) } //nolint:gosec

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major(), v.Minor())
}

// Message is a complete IPP message: the fixed 8-byte header, the ordered
// attribute groups, and an optional opaque document payload that follows
// the end-of-attributes terminator on the wire.
//
// Code holds the operation identifier for requests and the status code
// for responses; which one applies is determined by context, not by the
// wire format. Group order is preserved exactly as supplied or decoded.
//
// Payload, when non-nil, is streamed by the encoder after the terminator
// and never buffered in full. A decoded message's Payload reads the bytes
// remaining after the terminator.
type Message struct {
	Version   Version
	Code      uint16
	RequestID uint32
	Groups    []Group
	Payload   io.Reader
}

// NewRequest creates a request message for the given operation.
func NewRequest(v Version, op tag.Op, requestID uint32) *Message {
	return &Message{Version: v, Code: uint16(op), RequestID: requestID}
}

// NewResponse creates a response message with the given status.
func NewResponse(v Version, status tag.Status, requestID uint32) *Message {
	return &Message{Version: v, Code: uint16(status), RequestID: requestID}
}

// Operation interprets the code field as an operation identifier.
func (m *Message) Operation() tag.Op { return tag.Op(m.Code) }

// Status interprets the code field as a status code.
func (m *Message) Status() tag.Status { return tag.Status(m.Code) }

// GroupsOf returns the groups carrying the given delimiter tag, in
// message order.
func (m *Message) GroupsOf(delim tag.Tag) []Group {
	var groups []Group
	for _, g := range m.Groups {
		if g.Tag == delim {
			groups = append(groups, g)
		}
	}

	return groups
}

// Attr returns the first attribute named name within groups carrying the
// given delimiter tag.
func (m *Message) Attr(delim tag.Tag, name string) (Attribute, bool) {
	for _, g := range m.Groups {
		if g.Tag != delim {
			continue
		}
		if a, ok := g.Get(name); ok {
			return a, true
		}
	}

	return Attribute{}, false
}

// Add appends an attribute to the last group carrying the given delimiter
// tag, creating the group if the message has none. Group creation order
// therefore follows first use, which keeps the caller in control of group
// ordering.
func (m *Message) Add(delim tag.Tag, a Attribute) {
	for i := len(m.Groups) - 1; i >= 0; i-- {
		if m.Groups[i].Tag == delim {
			m.Groups[i].Add(a)
			return
		}
	}
	m.Groups = append(m.Groups, Group{Tag: delim, Attrs: []Attribute{a}})
}
