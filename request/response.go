package request

import (
	"fmt"
	"io"

	"github.com/arloliu/ipp/errs"
	"github.com/arloliu/ipp/message"
	"github.com/arloliu/ipp/tag"
	"github.com/arloliu/ipp/values"
)

// Response wraps a decoded response message with typed accessors for the
// status code, the status-message text and the returned attribute groups.
type Response struct {
	// Msg is the underlying decoded message.
	Msg *message.Message
}

// NewResponse wraps an already decoded message.
func NewResponse(msg *message.Message) *Response {
	return &Response{Msg: msg}
}

// Decode reads and wraps a response message from r. Response bytes may
// arrive incrementally; decoding consumes only through the
// end-of-attributes terminator, so the header and groups are usable
// before any trailing data has arrived.
func Decode(r io.Reader, opts ...message.Option) (*Response, error) {
	d, err := message.NewDecoder(r, opts...)
	if err != nil {
		return nil, err
	}
	msg, err := d.Decode()
	if err != nil {
		return nil, err
	}

	return NewResponse(msg), nil
}

// Version returns the protocol version the responder used.
func (r *Response) Version() message.Version { return r.Msg.Version }

// RequestID returns the correlation token echoed by the responder.
func (r *Response) RequestID() uint32 { return r.Msg.RequestID }

// Status returns the response status code.
func (r *Response) Status() tag.Status { return r.Msg.Status() }

// StatusClass classifies the status code. Codes outside the known ranges
// report tag.ClassUnknown; they are carried through, never rejected.
func (r *Response) StatusClass() tag.StatusClass { return r.Msg.Status().Class() }

// StatusMessage returns the optional status-message operation attribute,
// or the empty string when the responder sent none.
func (r *Response) StatusMessage() string {
	a, ok := r.Msg.Attr(tag.OperationAttributes, tag.AttrStatusMessage)
	if !ok {
		return ""
	}
	if txt, ok := a.Values[0].(values.Text); ok {
		return string(txt)
	}

	return a.Values[0].String()
}

// Groups returns the response groups carrying the given delimiter role,
// e.g. tag.JobAttributes or tag.PrinterAttributes.
func (r *Response) Groups(delim tag.Tag) []message.Group {
	return r.Msg.GroupsOf(delim)
}

// JobID extracts the job-id attribute from the job-attributes group of a
// job creation response.
func (r *Response) JobID() (int32, error) {
	a, ok := r.Msg.Attr(tag.JobAttributes, tag.AttrJobID)
	if !ok {
		return 0, fmt.Errorf("%w: %s", errs.ErrMissingAttribute, tag.AttrJobID)
	}
	id, ok := a.Values[0].(values.Integer)
	if !ok {
		return 0, fmt.Errorf("%w: %s is %s", errs.ErrInvalidAttributeType,
			tag.AttrJobID, a.Tag())
	}

	return int32(id), nil
}

// Err returns nil when the status code classifies as successful, and a
// *StatusError carrying the code and any status-message otherwise. This
// keeps "the printer rejected the request" distinct from transport and
// codec failures, which surface as their own error types.
func (r *Response) Err() error {
	if r.StatusClass() == tag.ClassSuccessful {
		return nil
	}

	return &StatusError{Code: r.Status(), StatusMessage: r.StatusMessage()}
}

// StatusError is a remote operation failure: the message decoded cleanly
// but the printer reported a non-successful status.
type StatusError struct {
	Code          tag.Status
	StatusMessage string
}

func (e *StatusError) Error() string {
	if e.StatusMessage != "" {
		return fmt.Sprintf("ipp: %s: %s", e.Code, e.StatusMessage)
	}

	return fmt.Sprintf("ipp: %s", e.Code)
}
