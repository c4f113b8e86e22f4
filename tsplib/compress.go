package tsplib

import (
	"io"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Codec identifies the compression wrapped around an instance file.
type Codec int

const (
	CodecNone Codec = iota
	CodecGzip
	CodecZstd
	CodecLZ4
)

var codecSuffixes = []struct {
	suffix string
	codec  Codec
}{
	{".gz", CodecGzip},
	{".zst", CodecZstd},
	{".lz4", CodecLZ4},
}

// CodecFor picks the codec from the file name suffix.
func CodecFor(name string) Codec {
	lower := strings.ToLower(name)
	for _, c := range codecSuffixes {
		if strings.HasSuffix(lower, c.suffix) {
			return c.codec
		}
	}

	return CodecNone
}

// trimCodecSuffix drops a recognized compression suffix from name.
func trimCodecSuffix(name string) string {
	lower := strings.ToLower(name)
	for _, c := range codecSuffixes {
		if strings.HasSuffix(lower, c.suffix) {
			return name[:len(name)-len(c.suffix)]
		}
	}

	return name
}

// NewReader wraps r with the decompressor selected by c. Closing the returned
// reader releases decoder resources but never closes r.
func NewReader(c Codec, r io.Reader) (io.ReadCloser, error) {
	switch c {
	case CodecGzip:
		return gzip.NewReader(r)
	case CodecZstd:
		dec, err := zstd.NewReader(r)
		if err != nil {
			return nil, err
		}
		return dec.IOReadCloser(), nil
	case CodecLZ4:
		return io.NopCloser(lz4.NewReader(r)), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewWriter wraps w with the compressor selected by c. Close flushes the
// compressed stream but never closes w.
func NewWriter(c Codec, w io.Writer) (io.WriteCloser, error) {
	switch c {
	case CodecGzip:
		return gzip.NewWriter(w), nil
	case CodecZstd:
		return zstd.NewWriter(w)
	case CodecLZ4:
		return lz4.NewWriter(w), nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }
