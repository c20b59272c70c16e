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
	"fmt"
	"io"
	"strings"
)

// HeaderIterator represents an iterator over the headers of a DataSet's Data Elements in the order
// in which they appear in the source. It cannot be restarted.
type HeaderIterator interface {
	// Next returns the header of the next Data Element. If there is no next Data Element, the
	// error io.EOF is returned.
	Next() (ElementHeader, error)
}

// Next returns the next element header: first the file meta elements, then the top level
// elements of the data set. Nested elements of sequences are not reported.
func (p *StreamParser) Next() (ElementHeader, error) {
	if len(p.pending) > 0 {
		header := p.pending[0]
		p.pending = p.pending[1:]
		return header, nil
	}
	if p.done {
		return ElementHeader{}, io.EOF
	}

	header, err := p.nextDataSetHeader()
	if err != nil {
		p.done = true
		return ElementHeader{}, err
	}
	return header, nil
}

func (p *StreamParser) nextDataSetHeader() (ElementHeader, error) {
	start := p.dr.Offset()
	header, err := readElementHeader(p.dr, p.syntax, p.dict)
	if err == io.EOF {
		return ElementHeader{}, io.EOF
	}
	if err == errItemDelimitation {
		return ElementHeader{}, fmt.Errorf("unexpected item delimitation item at offset %d", start)
	}
	if err != nil {
		return ElementHeader{}, fmt.Errorf("parsing element header at offset %d: %w", start, err)
	}
	if err := p.checkExtent(header); err != nil {
		return ElementHeader{}, err
	}

	if header.Tag() == SpecificCharacterSetTag && !header.HasUndefinedLength() {
		term, err := p.dr.String(int64(header.Len()))
		if err != nil {
			return ElementHeader{}, fmt.Errorf("reading specific character set: %w", err)
		}
		p.selectCharacterSet(term)
		return header, nil
	}

	if err := skipValue(p.dr, header, p.syntax, p.dict); err != nil {
		return ElementHeader{}, fmt.Errorf("skipping value at offset %d: %w", header.Offset(), err)
	}
	return header, nil
}

// selectCharacterSet switches the text codec. An unknown term does not stop parsing: the codec
// reports the error whenever a character string is decoded with it.
func (p *StreamParser) selectCharacterSet(term string) {
	term = strings.TrimRight(term, "\x00 ")
	codec, err := NewTextCodec(term)
	if err != nil {
		p.logger.Warn("unsupported specific character set", "term", term, "error", err)
		p.codec = errCodec{err}
		return
	}
	p.logger.Debug("selected specific character set", "term", term)
	p.codec = codec
}

type errCodec struct {
	err error
}

func (c errCodec) Decode([]byte) (string, error) {
	return "", c.err
}
