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

package dicom

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/klauspost/compress/flate"
)

// Parser is the handle a LazyObject holds on its backing source. The object is its only user:
// reads go through Source, values are decoded with Decoder and character strings with TextCodec.
type Parser interface {
	// Source returns the seekable source the element headers point into
	Source() io.ReadSeeker

	// Decoder returns the decoder for the transfer syntax of the source
	Decoder() Decoder

	// TextCodec returns the codec of the character set active for the data set
	TextCodec() TextCodec
}

// StreamParser walks a DICOM file and produces the header of each top level Data Element,
// including the file meta elements. It implements both HeaderIterator and Parser. Values are
// skipped, not read, except for the Transfer Syntax UID and the Specific Character Set which
// configure the parser itself.
type StreamParser struct {
	source  io.ReadSeeker
	closer  io.Closer
	dr      *dcmReader
	size    int64
	dict    Dictionary
	logger  *slog.Logger
	pending []ElementHeader
	done    bool

	syntax    transferSyntax
	syntaxUID string
	decoder   Decoder
	codec     TextCodec
}

// NewStreamParser reads the preamble and the file meta information of source and returns a parser
// positioned on the first element. If source is an io.Closer it is closed by Close.
func NewStreamParser(source io.ReadSeeker, opts ...Option) (*StreamParser, error) {
	o := newOptions(opts)
	if o.dict == nil {
		return nil, fmt.Errorf("nil dictionary")
	}

	codec, err := NewTextCodec(o.defaultCharset)
	if err != nil {
		return nil, fmt.Errorf("default character set: %w", err)
	}

	p := &StreamParser{
		source: source,
		dict:   o.dict,
		logger: o.logger,
		codec:  codec,
	}
	if c, ok := source.(io.Closer); ok {
		p.closer = c
	}

	if p.size, err = sourceSize(source); err != nil {
		return nil, fmt.Errorf("sizing source: %w", err)
	}
	p.dr = newDcmReader(source)

	if err := readDicomSignature(p.dr); err != nil {
		return nil, err
	}
	if err := p.readMetaHeaders(); err != nil {
		return nil, fmt.Errorf("reading meta header: %w", err)
	}
	if p.syntaxUID == "" {
		return nil, fmt.Errorf("finding transfer syntax: transfer syntax not found")
	}
	p.syntax = lookupTransferSyntax(p.syntaxUID)

	if p.syntax.isDeflated() {
		if err := p.inflate(o.maxInflatedBytes); err != nil {
			return nil, fmt.Errorf("inflating data set: %w", err)
		}
	}
	p.decoder = NewDecoder(p.syntaxUID, p.dict)

	p.logger.Debug("parsed file meta information",
		"transfer_syntax", p.syntaxUID,
		"meta_elements", len(p.pending),
		"data_set_offset", p.dr.Offset())
	return p, nil
}

// Source returns the seekable source. For deflated data sets this is the inflated copy held in
// memory.
func (p *StreamParser) Source() io.ReadSeeker {
	return p.source
}

// Decoder returns the decoder for the transfer syntax of the file
func (p *StreamParser) Decoder() Decoder {
	return p.decoder
}

// TextCodec returns the codec selected by the last Specific Character Set seen so far, or the
// default character set.
func (p *StreamParser) TextCodec() TextCodec {
	return p.codec
}

// TransferSyntaxUID returns the transfer syntax declared by the file meta information
func (p *StreamParser) TransferSyntaxUID() string {
	return p.syntaxUID
}

// Close closes the source given to NewStreamParser if it is an io.Closer
func (p *StreamParser) Close() error {
	if p.closer == nil {
		return nil
	}
	return p.closer.Close()
}

func sourceSize(s io.Seeker) (int64, error) {
	size, err := s.Seek(0, io.SeekEnd)
	if err != nil {
		return 0, err
	}
	if _, err := s.Seek(0, io.SeekStart); err != nil {
		return 0, err
	}
	return size, nil
}

func readDicomSignature(r *dcmReader) error {
	if err := r.Skip(128); err != nil {
		return fmt.Errorf("skipping preamble: %w", err)
	}

	magic, err := r.String(4)
	if err != nil {
		return fmt.Errorf("reading DICOM signature: %w", err)
	}

	if magic != "DICM" {
		return fmt.Errorf("wrong DICOM signature: %q", magic)
	}

	return nil
}

// readMetaHeaders walks the group 0002 elements, which are always explicit VR little endian, and
// leaves the reader on the first element of the data set. The group ends where File Meta
// Information Group Length says it does. Files without it end the group at the first tag of
// another group.
func (p *StreamParser) readMetaHeaders() error {
	order := binary.LittleEndian
	metaEnd := int64(-1)
	for {
		start := p.dr.Offset()
		if metaEnd >= 0 && start >= metaEnd {
			return p.seek(start)
		}
		tag, err := p.dr.Tag(order)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return fmt.Errorf("reading tag: %w", err)
		}
		if !tag.IsMetadataElement() {
			return p.seek(start)
		}

		vr, err := explicitVRLittleEndian.readVR(p.dr, tag, p.dict)
		if err != nil {
			return fmt.Errorf("getting vr of %v: %w", tag, unexpectedEOF(err))
		}
		length, err := explicitVRLittleEndian.readValueLength(p.dr, vr)
		if err != nil {
			return fmt.Errorf("getting length of %v: %w", tag, unexpectedEOF(err))
		}
		header := NewElementHeader(tag, vr, length, p.dr.Offset())
		if err := p.checkExtent(header); err != nil {
			return err
		}
		p.pending = append(p.pending, header)

		switch {
		case tag == TransferSyntaxUIDTag:
			uid, err := p.dr.String(int64(length))
			if err != nil {
				return fmt.Errorf("reading transfer syntax: %w", err)
			}
			p.syntaxUID = strings.TrimRight(uid, "\x00 ")
			continue
		case tag == FileMetaInformationGroupLengthTag && length == 4 && len(p.pending) == 1:
			groupLength, err := p.dr.UInt32(order)
			if err != nil {
				return fmt.Errorf("reading group length: %w", unexpectedEOF(err))
			}
			metaEnd = p.dr.Offset() + int64(groupLength)
			continue
		}
		if err := skipValue(p.dr, header, explicitVRLittleEndian, p.dict); err != nil {
			return err
		}
	}
}

func (p *StreamParser) seek(offset int64) error {
	if _, err := p.source.Seek(offset, io.SeekStart); err != nil {
		return err
	}
	p.dr = newDcmReaderAt(p.source, offset)
	return nil
}

// inflate replaces the source by an in-memory copy where the deflated data set is stored
// inflated after the unchanged file meta information, so that offsets remain valid and the data
// set stays seekable.
func (p *StreamParser) inflate(maxBytes int64) error {
	dataSetOffset := p.dr.Offset()
	if _, err := p.source.Seek(0, io.SeekStart); err != nil {
		return err
	}

	buff := bytes.NewBuffer(make([]byte, 0, dataSetOffset))
	if _, err := io.CopyN(buff, p.source, dataSetOffset); err != nil {
		return fmt.Errorf("copying file meta information: %w", err)
	}

	fr := flate.NewReader(p.source)
	defer fr.Close()
	n, err := io.Copy(buff, io.LimitReader(fr, maxBytes+1))
	if err != nil {
		return err
	}
	if n > maxBytes {
		return fmt.Errorf("inflated data set exceeds %d bytes", maxBytes)
	}

	inflated := bytes.NewReader(buff.Bytes())
	p.source = inflated
	p.size = inflated.Size()
	return p.seek(dataSetOffset)
}

// checkExtent fails for values of defined length running past the end of the source
func (p *StreamParser) checkExtent(header ElementHeader) error {
	if header.HasUndefinedLength() {
		return nil
	}
	if end := header.Offset() + int64(header.Len()); end > p.size {
		return fmt.Errorf("value of %v ends at %d, past the end of the source at %d: %w",
			header.Tag(), end, p.size, io.ErrUnexpectedEOF)
	}
	return nil
}
