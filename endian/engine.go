// Package endian provides byte order utilities for the IPP wire codec.
//
// IPP is big-endian throughout (RFC 8010 section 3), so most users should
// use GetBigEndianEngine():
//
//	engine := endian.GetBigEndianEngine()
//	buf = engine.AppendUint16(buf, valueLength)
//
// The EndianEngine interface combines ByteOrder and AppendByteOrder from
// encoding/binary so codecs can both read fixed-width fields and append
// them to a growing buffer without intermediate allocations.
//
// All functions in this package are safe for concurrent use. The returned
// engines are immutable and stateless.
package endian

import "encoding/binary"

// EndianEngine combines the ByteOrder and AppendByteOrder interfaces from
// encoding/binary into a single interface.
//
// It is satisfied by binary.BigEndian and binary.LittleEndian, making it
// fully compatible with existing Go code.
type EndianEngine interface {
	binary.ByteOrder
	binary.AppendByteOrder
}

// GetBigEndianEngine returns the big-endian engine used by the IPP wire
// format.
func GetBigEndianEngine() EndianEngine {
	return binary.BigEndian
}

// GetLittleEndianEngine returns the little-endian engine. The IPP wire
// format never uses it; it exists for tooling that inspects foreign data.
func GetLittleEndianEngine() EndianEngine {
	return binary.LittleEndian
}
