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
	"io"
	"testing"

	"github.com/klauspost/compress/flate"
)

// dcmWriter encodes the test files the parser and decoder are run against
type dcmWriter struct {
	io.Writer
}

func (dw *dcmWriter) Tag(order binary.ByteOrder, tag DataElementTag) {
	dw.UInt16(order, tag.GroupNumber())
	dw.UInt16(order, tag.ElementNumber())
}

func (dw *dcmWriter) Delimiter(order binary.ByteOrder, tag DataElementTag) {
	dw.Tag(order, tag)
	dw.UInt32(order, 0)
}

func (dw *dcmWriter) UInt16(order binary.ByteOrder, v uint16) {
	buf := make([]byte, 2)
	order.PutUint16(buf, v)
	dw.Bytes(buf)
}

func (dw *dcmWriter) UInt32(order binary.ByteOrder, v uint32) {
	buf := make([]byte, 4)
	order.PutUint32(buf, v)
	dw.Bytes(buf)
}

func (dw *dcmWriter) Bytes(b []byte) {
	dw.Write(b)
}

// Header writes the tag, VR and length of an element as laid out by syntax
func (dw *dcmWriter) Header(syntax transferSyntax, tag DataElementTag, vr *VR, length uint32) {
	order := syntax.byteOrder()
	dw.Tag(order, tag)
	explicit, ok := syntax.(explicitSyntax)
	if !ok {
		dw.UInt32(order, length)
		return
	}
	dw.Bytes([]byte(vr.Name))
	if explicit.has32BitLength(vr) {
		dw.UInt16(order, 0)
		dw.UInt32(order, length)
		return
	}
	dw.UInt16(order, uint16(length))
}

// Element writes an element of defined length
func (dw *dcmWriter) Element(syntax transferSyntax, tag DataElementTag, vr *VR, value []byte) {
	dw.Header(syntax, tag, vr, uint32(len(value)))
	dw.Bytes(value)
}

// Item writes a sequence item. An undefined length item is closed by an item delimitation item.
func (dw *dcmWriter) Item(order binary.ByteOrder, length uint32, body []byte) {
	dw.Tag(order, ItemTag)
	if length == UndefinedLength {
		dw.UInt32(order, UndefinedLength)
		dw.Bytes(body)
		dw.Delimiter(order, ItemDelimitationItemTag)
		return
	}
	dw.UInt32(order, uint32(len(body)))
	dw.Bytes(body)
}

// encode returns the bytes written by fn
func encode(fn func(dw *dcmWriter)) []byte {
	var buf bytes.Buffer
	fn(&dcmWriter{&buf})
	return buf.Bytes()
}

func padText(s string) []byte {
	if len(s)%2 == 1 {
		s += " "
	}
	return []byte(s)
}

func padUID(s string) []byte {
	if len(s)%2 == 1 {
		s += "\x00"
	}
	return []byte(s)
}

func uint16Bytes(order binary.ByteOrder, values ...uint16) []byte {
	b := make([]byte, 2*len(values))
	for i, v := range values {
		order.PutUint16(b[2*i:], v)
	}
	return b
}

// metaLength is the number of bytes of the preamble, the signature and the file meta
// information written by newTestFile for a transfer syntax UID
func metaLength(syntaxUID string) int {
	return 128 + 4 + 12 + 8 + len(padUID(syntaxUID))
}

// newTestFile returns a DICOM file with the given transfer syntax whose data set is body.
// Bodies of deflated syntaxes are deflated here.
func newTestFile(t *testing.T, syntaxUID string, body []byte) []byte {
	t.Helper()

	meta := encode(func(dw *dcmWriter) {
		dw.Element(explicitVRLittleEndian, TransferSyntaxUIDTag, UIVR, padUID(syntaxUID))
	})

	return encode(func(dw *dcmWriter) {
		dw.Bytes(make([]byte, 128))
		dw.Bytes([]byte("DICM"))
		dw.Element(explicitVRLittleEndian, FileMetaInformationGroupLengthTag, ULVR,
			[]byte{byte(len(meta)), 0, 0, 0})
		dw.Bytes(meta)

		if lookupTransferSyntax(syntaxUID).isDeflated() {
			var deflated bytes.Buffer
			fw, err := flate.NewWriter(&deflated, flate.DefaultCompression)
			if err != nil {
				t.Fatalf("flate.NewWriter(_, _) => %v", err)
			}
			if _, err := fw.Write(body); err != nil {
				t.Fatalf("deflating body: %v", err)
			}
			if err := fw.Close(); err != nil {
				t.Fatalf("closing flate writer: %v", err)
			}
			body = deflated.Bytes()
		}
		dw.Bytes(body)
	})
}

func dcmReaderFromBytes(data []byte) *dcmReader {
	return newDcmReader(bytes.NewBuffer(data))
}

// countingSource is an io.ReadSeeker recording the seeks made on it
type countingSource struct {
	*bytes.Reader
	seeks   int
	offsets []int64
	closed  bool
}

func newCountingSource(data []byte) *countingSource {
	return &countingSource{Reader: bytes.NewReader(data)}
}

func (s *countingSource) Seek(offset int64, whence int) (int64, error) {
	s.seeks++
	pos, err := s.Reader.Seek(offset, whence)
	s.offsets = append(s.offsets, pos)
	return pos, err
}

func (s *countingSource) Close() error {
	s.closed = true
	return nil
}
