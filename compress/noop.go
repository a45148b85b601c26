package compress

import "io"

// NoOpCodec passes data through unmodified. It backs the "none"
// compression keyword and serves as a baseline in benchmarks.
type NoOpCodec struct{}

var _ Codec = NoOpCodec{}

// NewNoOpCodec creates a pass-through codec.
func NewNoOpCodec() NoOpCodec {
	return NoOpCodec{}
}

// Keyword returns "none".
func (NoOpCodec) Keyword() string { return KeywordNone }

// Compress returns w behind a no-op Close.
func (NoOpCodec) Compress(w io.Writer) (io.WriteCloser, error) {
	return nopWriteCloser{w}, nil
}

// Decompress returns r behind a no-op Close.
func (NoOpCodec) Decompress(r io.Reader) (io.ReadCloser, error) {
	return io.NopCloser(r), nil
}

type nopWriteCloser struct {
	io.Writer
}

func (nopWriteCloser) Close() error { return nil }
