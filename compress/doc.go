// Package compress implements document payload compression for the IPP
// "compression" operation attribute.
//
// The registry covers the values a client can send: "none", "deflate"
// (RFC 1951) and "gzip" (RFC 1952). The fourth registered value,
// "compress" (UNIX LZW), is not implemented: modern printers do not
// advertise it and no maintained Go implementation exists.
//
// Codecs are stream-oriented because IPP documents are streamed, not
// buffered: Compress wraps the destination writer, Decompress wraps the
// source reader.
package compress
