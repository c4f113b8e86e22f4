package tsplib

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/klauspost/readahead"

	"github.com/katalvlaran/tspkit/store"
	"github.com/katalvlaran/tspkit/tsp"
)

const (
	readaheadBuffers = 4
	readaheadSize    = 1 << 16
)

// Load reads the instance file at p, decompressing it by suffix. The file is
// read through a read-ahead buffer so decompression and parsing overlap with
// disk I/O on large corpora.
func Load(p string) (*tsp.Instance, error) {
	f, err := os.Open(p)
	if err != nil {
		return nil, fmt.Errorf("failed to open instance %s: %w", p, err)
	}
	defer f.Close()

	ra, err := readahead.NewReaderSize(f, readaheadBuffers, readaheadSize)
	if err != nil {
		return nil, fmt.Errorf("failed to read instance %s: %w", p, err)
	}
	defer ra.Close()

	dec, err := NewReader(CodecFor(p), ra)
	if err != nil {
		return nil, fmt.Errorf("failed to decompress instance %s: %w", p, err)
	}
	defer dec.Close()

	h, in, err := Decode(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance %s: %w", p, err)
	}

	return named(h, in, Stem(filepath.Base(p)))
}

// LoadFrom reads the instance stored under key in s.
func LoadFrom(ctx context.Context, s store.Store, key string) (*tsp.Instance, error) {
	data, err := s.Get(ctx, key)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch instance %s: %w", key, err)
	}

	dec, err := NewReader(CodecFor(key), bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decompress instance %s: %w", key, err)
	}
	defer dec.Close()

	h, in, err := Decode(dec)
	if err != nil {
		return nil, fmt.Errorf("failed to parse instance %s: %w", key, err)
	}

	return named(h, in, Stem(path.Base(key)))
}

// Stem returns the lower-cased file name without compression suffix and
// extension: "Atlanta.tsp.gz" → "atlanta".
func Stem(base string) string {
	base = trimCodecSuffix(base)
	if ext := path.Ext(base); ext != "" {
		base = base[:len(base)-len(ext)]
	}

	return strings.ToLower(base)
}

// named renames in after the file stem when the header carried no NAME.
func named(h Header, in *tsp.Instance, stem string) (*tsp.Instance, error) {
	if h.Name != "" {
		return in, nil
	}

	return tsp.NewInstance(stem, in.Points())
}

// IsInstance reports whether name looks like an instance file: a .tsp
// extension, optionally followed by a compression suffix.
func IsInstance(name string) bool {
	return strings.EqualFold(path.Ext(trimCodecSuffix(name)), ".tsp")
}
