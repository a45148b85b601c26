package compress

import (
	"io"

	"github.com/klauspost/compress/gzip"
)

// GzipCodec implements the "gzip" compression keyword (RFC 1952).
type GzipCodec struct{}

var _ Codec = GzipCodec{}

// NewGzipCodec creates a gzip codec.
func NewGzipCodec() GzipCodec {
	return GzipCodec{}
}

// Keyword returns "gzip".
func (GzipCodec) Keyword() string { return KeywordGzip }

// Compress wraps w in a gzip writer.
func (GzipCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	return gzip.NewWriter(w), nil
}

// Decompress wraps r in a gzip reader.
func (GzipCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	return gzip.NewReader(r)
}
