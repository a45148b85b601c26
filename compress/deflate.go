package compress

import (
	"io"

	"github.com/klauspost/compress/flate"
)

// DeflateCodec implements the "deflate" compression keyword (RFC 1951).
type DeflateCodec struct{}

var _ Codec = DeflateCodec{}

// NewDeflateCodec creates a deflate codec.
func NewDeflateCodec() DeflateCodec {
	return DeflateCodec{}
}

// Keyword returns "deflate".
func (DeflateCodec) Keyword() string { return KeywordDeflate }

// Compress wraps w in a flate writer at the default level.
func (DeflateCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	return flate.NewWriter(w, flate.DefaultCompression)
}

// Decompress wraps r in a flate reader.
func (DeflateCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	return flate.NewReader(r), nil
}
