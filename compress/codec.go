package compress

import (
	"fmt"
	"io"
)

// Compressor wraps a destination writer so that bytes written to the
// returned WriteCloser arrive at w compressed. Close must be called to
// flush the codec's trailing frame.
type Compressor interface {
	Compress(w io.Writer) (io.WriteCloser, error)
}

// Decompressor wraps a source reader so that reads from the returned
// ReadCloser yield the decompressed stream.
type Decompressor interface {
	Decompress(r io.Reader) (io.ReadCloser, error)
}

// Codec combines both directions of a compression algorithm and knows the
// IPP "compression" keyword it registers under.
type Codec interface {
	Compressor
	Decompressor

	// Keyword returns the IPP compression keyword, e.g. "gzip".
	Keyword() string
}

var builtinCodecs = map[string]Codec{
	KeywordNone:    NewNoOpCodec(),
	KeywordDeflate: NewDeflateCodec(),
	KeywordGzip:    NewGzipCodec(),
}

// Registered compression keywords (RFC 8011 section 5.4.32).
const (
	KeywordNone    = "none"
	KeywordDeflate = "deflate"
	KeywordGzip    = "gzip"
)

// GetCodec retrieves the built-in Codec registered for an IPP compression
// keyword.
func GetCodec(keyword string) (Codec, error) {
	if codec, ok := builtinCodecs[keyword]; ok {
		return codec, nil
	}

	return nil, fmt.Errorf("unsupported compression: %q", keyword)
}

// NewReader returns a reader yielding src compressed with the named
// codec, suitable for streaming as a document payload. Compression runs
// in a pipe goroutine, so src is consumed as the returned reader is
// drained; closing the reader early stops consumption of src.
func NewReader(keyword string, src io.Reader) (io.ReadCloser, error) {
	codec, err := GetCodec(keyword)
	if err != nil {
		return nil, err
	}
	if keyword == KeywordNone {
		return io.NopCloser(src), nil
	}

	pr, pw := io.Pipe()
	go func() {
		zw, err := codec.Compress(pw)
		if err != nil {
			pw.CloseWithError(err)
			return
		}
		if _, err := io.Copy(zw, src); err != nil {
			zw.Close()
			pw.CloseWithError(err)

			return
		}
		pw.CloseWithError(zw.Close())
	}()

	return pr, nil
}
