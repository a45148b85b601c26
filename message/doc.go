// Package message implements the IPP message structure and wire codec.
//
// A Message carries a version, an operation or status code, a request-id
// and an ordered list of attribute Groups, optionally followed by an
// opaque document payload. Encoder serializes a message to an io.Writer;
// Decoder reads one from an io.Reader, suspending on short reads the way
// any reader-driven codec does, so response headers and groups can be
// interpreted before the full body has arrived.
//
// The multi-value continuation scheme of the wire format (subsequent
// values of an attribute carry a zero-length name) is confined to this
// package: in memory an attribute is simply a name plus an ordered list
// of values.
//
// Both Encoder and Decoder are single-use and not safe for concurrent use
// by multiple goroutines; encoding and decoding hold no shared state, so
// independent messages may be processed concurrently.
package message
