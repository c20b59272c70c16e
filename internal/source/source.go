// Copyright 2018 Google LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package source opens DICOM inputs as seekable readers. Compressed inputs are recognised by
// their extension and decompressed into memory.
package source

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression identifies how an input file is compressed.
type Compression int

const (
	// None is an uncompressed file, read in place.
	None Compression = iota
	// Gzip is a .gz file.
	Gzip
	// XZ is a .xz file.
	XZ
	// Zstd is a .zst file.
	Zstd
)

func (c Compression) String() string {
	switch c {
	case Gzip:
		return "gzip"
	case XZ:
		return "xz"
	case Zstd:
		return "zstd"
	default:
		return "none"
	}
}

// DetectCompression returns the compression implied by the extension of path.
func DetectCompression(path string) Compression {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, ".xz"):
		return XZ
	case strings.HasSuffix(lower, ".gz"):
		return Gzip
	case strings.HasSuffix(lower, ".zst"):
		return Zstd
	default:
		return None
	}
}

type nopCloser struct {
	*bytes.Reader
}

func (nopCloser) Close() error { return nil }

// Open returns a seekable reader over the DICOM file at path. Uncompressed files are read from
// disk. Compressed files are decompressed into memory, failing when more than maxBytes would be
// held.
func Open(path string, maxBytes int64) (io.ReadSeekCloser, error) {
	compression := DetectCompression(path)

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open input: %w", err)
	}
	if compression == None {
		return f, nil
	}
	defer f.Close()

	data, err := decompress(f, compression, maxBytes)
	if err != nil {
		return nil, fmt.Errorf("%v input %s: %w", compression, path, err)
	}
	return nopCloser{bytes.NewReader(data)}, nil
}

func decompress(r io.Reader, compression Compression, maxBytes int64) ([]byte, error) {
	var reader io.Reader
	switch compression {
	case XZ:
		xzr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz reader: %w", err)
		}
		reader = xzr
	case Gzip:
		gzr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip reader: %w", err)
		}
		defer gzr.Close()
		reader = gzr
	case Zstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd reader: %w", err)
		}
		defer zr.Close()
		reader = zr
	default:
		return nil, fmt.Errorf("unsupported compression %v", compression)
	}

	var buf bytes.Buffer
	n, err := io.Copy(&buf, io.LimitReader(reader, maxBytes+1))
	if err != nil {
		return nil, err
	}
	if n > maxBytes {
		return nil, fmt.Errorf("decompressed size exceeds %d bytes", maxBytes)
	}
	return buf.Bytes(), nil
}
