// Package errs defines sentinel errors shared across the ipp module.
//
// All errors are created with errors.New and wrapped at call sites with
// fmt.Errorf("%w: ...") to add context. Callers should use errors.Is to
// check error types:
//
//	msg, err := message.DecodeBytes(data)
//	if errors.Is(err, errs.ErrTruncatedMessage) {
//	    // ask the transport for more bytes
//	}
package errs

import "errors"

// Codec errors, returned while encoding or decoding wire data.
var (
	// ErrMalformedValue indicates a value whose length or content does not
	// match what its tag requires, e.g. an integer entry with a length
	// field other than 4.
	ErrMalformedValue = errors.New("malformed value")

	// ErrMalformedAttribute indicates an invalid multi-value continuation
	// sequence: a zero-length name with no preceding attribute, or a
	// continuation whose tag differs from the attribute it extends.
	ErrMalformedAttribute = errors.New("malformed attribute")

	// ErrMalformedMessage indicates a structural violation at the message
	// level: an attribute entry before any group delimiter, a collection
	// close without an open collection, or similar.
	ErrMalformedMessage = errors.New("malformed message")

	// ErrTruncatedMessage indicates the input ended before a complete
	// structural unit. Unlike ErrMalformedMessage it is retryable: in a
	// streaming setting the caller may supply more bytes and decode again.
	ErrTruncatedMessage = errors.New("truncated message")

	// ErrInvalidEncoding indicates a textual value whose bytes are not
	// valid UTF-8.
	ErrInvalidEncoding = errors.New("invalid text encoding")

	// ErrCollectionTooDeep indicates collection nesting beyond the
	// decoder's configured depth limit.
	ErrCollectionTooDeep = errors.New("collection nested too deep")

	// ErrValueTooLong indicates a name or value exceeding the 65535 byte
	// limit imposed by the 2-byte wire length fields.
	ErrValueTooLong = errors.New("value too long")
)

// Construction errors, returned while building attributes and messages.
var (
	ErrEmptyAttributeName = errors.New("empty attribute name")
	ErrNoValues           = errors.New("attribute has no values")
	ErrMixedValueTags     = errors.New("attribute values have mixed tags")
	ErrNotDelimiter       = errors.New("tag is not a group delimiter")
	ErrZeroRequestID      = errors.New("request-id must be non-zero")
	ErrInvalidURI         = errors.New("invalid target uri")
)

// Response extraction errors.
var (
	// ErrMissingAttribute indicates a response that lacks an attribute the
	// caller asked for.
	ErrMissingAttribute = errors.New("missing attribute")

	// ErrInvalidAttributeType indicates an attribute whose value is not of
	// the type the caller expected.
	ErrInvalidAttributeType = errors.New("invalid attribute type")
)
