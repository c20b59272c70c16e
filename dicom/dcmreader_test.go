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
)

func TestDcmReader_Offset(t *testing.T) {
	dr := newDcmReaderAt(bytes.NewReader([]byte{0x10, 0x00, 0x20, 0x00, 'A', 'B'}), 100)
	tag, err := dr.Tag(binary.LittleEndian)
	if err != nil {
		t.Fatalf("Tag(_) => %v", err)
	}
	if tag != 0x00100020 {
		t.Fatalf("got %v, want %v", tag, DataElementTag(0x00100020))
	}
	if dr.Offset() != 104 {
		t.Fatalf("got offset %v, want %v", dr.Offset(), 104)
	}
}

func TestDcmReader_Skip(t *testing.T) {
	data := []byte{1, 2, 3, 4, 5, 6}
	tests := []struct {
		name string
		r    io.Reader
	}{
		{"seeker", bytes.NewReader(data)},
		{"plain reader", bytes.NewBuffer(data)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dr := newDcmReader(tc.r)
			if err := dr.Skip(4); err != nil {
				t.Fatalf("Skip(_) => %v", err)
			}
			if dr.Offset() != 4 {
				t.Fatalf("got offset %v, want %v", dr.Offset(), 4)
			}
			b, err := dr.Bytes(2)
			if err != nil {
				t.Fatalf("Bytes(_) => %v", err)
			}
			if !bytes.Equal(b, []byte{5, 6}) {
				t.Fatalf("got %v, want %v", b, []byte{5, 6})
			}
		})
	}

	if err := dcmReaderFromBytes(data).Skip(10); err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestDcmReader_Bytes(t *testing.T) {
	dr := dcmReaderFromBytes([]byte{1, 2})
	if _, err := dr.Bytes(4); err != io.ErrUnexpectedEOF {
		t.Fatalf("got %v, want %v", err, io.ErrUnexpectedEOF)
	}
}

func TestDcmReader_Limit(t *testing.T) {
	dr := dcmReaderFromBytes([]byte{1, 2, 3, 4})
	limited := dr.Limit(2)
	if _, err := limited.Bytes(2); err != nil {
		t.Fatalf("Bytes(_) => %v", err)
	}
	if _, err := limited.UInt16(binary.LittleEndian); err != io.EOF {
		t.Fatalf("got %v, want %v", err, io.EOF)
	}
	if dr.Offset() != 2 || limited.Offset() != 2 {
		t.Fatalf("got offsets (%v, %v), want (2, 2)", dr.Offset(), limited.Offset())
	}
}
