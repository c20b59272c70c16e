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
	"encoding/binary"
	"testing"
)

func TestLookupTransferSyntax(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want transferSyntax
	}{
		{
			"explicit vr little endian",
			ExplicitVRLittleEndianUID,
			explicitVRLittleEndian,
		},
		{
			"implicit vr little endian",
			ImplicitVRLittleEndianUID,
			implicitVRLittleEndian,
		},
		{
			"explicit vr big endian",
			ExplicitVRBigEndianUID,
			explicitVRBigEndian,
		},
		{
			"jpeg baseline uid",
			JPEGBaselineUID,
			explicitVRLittleEndian,
		},
		{
			"deflated explicit vr little endian",
			DeflatedExplicitVRLittleEndianUID,
			deflatedExplicitVRLittleEndian,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := lookupTransferSyntax(tc.in); got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestReadValueLength(t *testing.T) {
	// testing format outlined in Table 7.1-1 and 7.1-2 is respected
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.2
	testCases := []struct {
		name     string
		bytes    []byte
		vr       *VR
		syntax   transferSyntax
		expected uint32
	}{
		{
			"Sequence explicitVRLittleEndian",
			[]byte{0x00, 0x00, 0x11, 0x22, 0x33, 0x44},
			SQVR,
			explicitVRLittleEndian,
			0x44332211,
		},
		{
			"Sequence explicitVRBigEndian",
			[]byte{0x00, 0x00, 0x11, 0x22, 0x33, 0x44},
			SQVR,
			explicitVRBigEndian,
			0x11223344,
		},
		{
			"unsigned short explicitVRLittleEndian",
			[]byte{0x11, 0x22},
			USVR,
			explicitVRLittleEndian,
			0x2211,
		},
		{
			"unsigned short explicitVRBigEndian",
			[]byte{0x11, 0x22},
			USVR,
			explicitVRBigEndian,
			0x1122,
		},
		{
			"unlimited characters explicitVRLittleEndian",
			[]byte{0x00, 0x00, 0x11, 0x22, 0x00, 0x00},
			UCVR,
			explicitVRLittleEndian,
			0x2211,
		},
		{
			"unsigned short implicitVRLittleEndian",
			[]byte{0x11, 0x22, 0x33, 0x44},
			USVR,
			implicitVRLittleEndian,
			0x44332211,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			length, err := tc.syntax.readValueLength(dcmReaderFromBytes(tc.bytes), tc.vr)
			if err != nil {
				t.Fatalf("readValueLength(_, _) => %v", err)
			}
			if length != tc.expected {
				t.Fatalf("got %v, want %v", length, tc.expected)
			}
		})
	}
}

func TestReadVR(t *testing.T) {
	dict := StandardDictionary()
	tests := []struct {
		name   string
		bytes  []byte
		tag    DataElementTag
		syntax transferSyntax
		want   *VR
	}{
		{"explicit", []byte("PN"), 0x00100010, explicitVRLittleEndian, PNVR},
		{"explicit unknown code", []byte("ZZ"), 0x00100010, explicitVRLittleEndian, UNVR},
		{"implicit from dictionary", nil, 0x00100010, implicitVRLittleEndian, PNVR},
		{"implicit unknown tag", nil, 0x00091010, implicitVRLittleEndian, UNVR},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := tc.syntax.readVR(dcmReaderFromBytes(tc.bytes), tc.tag, dict)
			if err != nil {
				t.Fatalf("readVR(_, _, _) => %v", err)
			}
			if got != tc.want {
				t.Fatalf("got %v, want %v", got, tc.want)
			}
		})
	}
}

func TestTransferSyntax_byteOrder(t *testing.T) {
	if explicitVRBigEndian.byteOrder() != binary.BigEndian {
		t.Fatalf("expected explicit vr big endian to be big endian")
	}
	if implicitVRLittleEndian.byteOrder() != binary.LittleEndian {
		t.Fatalf("expected implicit vr little endian to be little endian")
	}
	if !deflatedExplicitVRLittleEndian.isDeflated() || explicitVRLittleEndian.isDeflated() {
		t.Fatalf("unexpected isDeflated")
	}
}
