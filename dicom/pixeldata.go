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
	"fmt"
)

// PixelData is the payload of the Pixel Data (7FE0,0010) element. Frames are not decoded.
type PixelData struct {
	// Encapsulated is true for pixel data in encapsulated (compressed) format
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4
	Encapsulated bool

	// OffsetTable holds the Basic Offset Table of encapsulated pixel data. It is empty for native
	// pixel data and when the table is absent.
	OffsetTable []uint32

	// Fragments holds the pixel bytes. Native pixel data has exactly one fragment.
	Fragments [][]byte
}

// Size returns the number of pixel bytes over all fragments
func (pd *PixelData) Size() int {
	n := 0
	for _, f := range pd.Fragments {
		n += len(f)
	}
	return n
}

// PixelData reads the Pixel Data element through Element and returns its payload
func (o *LazyObject) PixelData() (*PixelData, error) {
	elem, err := o.Element(PixelDataTag)
	if err != nil {
		return nil, err
	}

	switch v := elem.ValueField.(type) {
	case []byte:
		return &PixelData{Fragments: [][]byte{v}}, nil
	case [][]byte:
		return newEncapsulatedPixelData(v)
	default:
		return nil, fmt.Errorf("unexpected pixel data value of type %T with vr %v", elem.ValueField, elem.VR)
	}
}

func newEncapsulatedPixelData(fragments [][]byte) (*PixelData, error) {
	if len(fragments) == 0 {
		return nil, fmt.Errorf("encapsulated pixel data without basic offset table item")
	}

	table := fragments[0]
	if len(table)%4 != 0 {
		return nil, fmt.Errorf("basic offset table length %d is not a multiple of 4", len(table))
	}
	offsets := make([]uint32, len(table)/4)
	for i := range offsets {
		// encapsulated formats are always little endian
		offsets[i] = binary.LittleEndian.Uint32(table[4*i:])
	}

	return &PixelData{
		Encapsulated: true,
		OffsetTable:  offsets,
		Fragments:    fragments[1:],
	}, nil
}
