package message

import (
	"fmt"

	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/tag"
)

// Group is an ordered sequence of attributes introduced by a delimiter
// tag that identifies its semantic role (operation-attributes,
// job-attributes, printer-attributes, ...).
type Group struct {
	Tag   tag.Tag
	Attrs []Attribute
}

// NewGroup constructs a group, validating that t is a delimiter tag other
// than the end-of-attributes terminator.
func NewGroup(t tag.Tag, attrs ...Attribute) (Group, error) {
	if !t.IsDelimiter() || t == tag.End {
		return Group{}, fmt.Errorf("%w: 0x%02x", errs.ErrNotDelimiter, uint8(t))
	}

	return Group{Tag: t, Attrs: attrs}, nil
}

// Get returns the first attribute named name.
func (g Group) Get(name string) (Attribute, bool) {
	for _, a := range g.Attrs {
		if a.Name == name {
			return a, true
		}
	}

	return Attribute{}, false
}

// Add appends an attribute to the group.
func (g *Group) Add(a Attribute) {
	g.Attrs = append(g.Attrs, a)
}
