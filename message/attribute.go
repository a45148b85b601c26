package message

import (
	"fmt"

	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

// Attribute is a named, ordered, non-empty sequence of values sharing one
// value tag. On the wire the second and later values are encoded as
// continuations with a zero-length name; that detail never appears here.
type Attribute struct {
	Name   string
	Values []values.Value
}

// NewAttribute constructs a validated attribute.
//
// The name must be non-empty and at most 65535 bytes. At least one value
// is required. All values must share the same tag; an out-of-band value
// (unsupported, unknown, no-value) is only permitted as the sole value.
func NewAttribute(name string, vals ...values.Value) (Attribute, error) {
	a := Attribute{Name: name, Values: vals}
	if err := a.validate(); err != nil {
		return Attribute{}, err
	}

	return a, nil
}

// MustAttribute is like NewAttribute but panics on invalid input. It is
// intended for attributes built from constants.
func MustAttribute(name string, vals ...values.Value) Attribute {
	a, err := NewAttribute(name, vals...)
	if err != nil {
		panic(err)
	}

	return a
}

func (a Attribute) validate() error {
	if a.Name == "" {
		return errs.ErrEmptyAttributeName
	}
	if len(a.Name) > values.MaxFieldLength {
		return fmt.Errorf("%w: attribute name is %d bytes", errs.ErrValueTooLong, len(a.Name))
	}
	if len(a.Values) == 0 {
		return fmt.Errorf("%w: %q", errs.ErrNoValues, a.Name)
	}

	first := a.Values[0].Tag()
	if len(a.Values) > 1 && first.IsOutOfBand() {
		return fmt.Errorf("%w: %q has an out-of-band value among %d values",
			errs.ErrMixedValueTags, a.Name, len(a.Values))
	}
	for _, v := range a.Values[1:] {
		if v.Tag() != first {
			return fmt.Errorf("%w: %q mixes %s and %s",
				errs.ErrMixedValueTags, a.Name, first, v.Tag())
		}
	}

	return nil
}

// Tag returns the value tag shared by the attribute's values.
func (a Attribute) Tag() tag.Tag {
	return a.Values[0].Tag()
}

// Equal reports whether two attributes have the same name and deeply
// equal values in the same order.
func (a Attribute) Equal(other Attribute) bool {
	if a.Name != other.Name || len(a.Values) != len(other.Values) {
		return false
	}
	for i := range a.Values {
		if !values.Equal(a.Values[i], other.Values[i]) {
			return false
		}
	}

	return true
}

func (a Attribute) String() string {
	if len(a.Values) == 1 {
		return fmt.Sprintf("%s=%s", a.Name, a.Values[0])
	}

	s := a.Name + "=["
	for i, v := range a.Values {
		if i > 0 {
			s += ","
		}
		s += v.String()
	}

	return s + "]"
}
