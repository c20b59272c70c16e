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
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"
)

// errItemDelimitation is returned by readElementHeader when the end of an item of undefined length
// is reached
var errItemDelimitation = errors.New("item delimitation item")

// readElementHeader reads the tag, VR and length of the next element. The returned header records
// the position of the value field, which is where dr is left.
func readElementHeader(dr *dcmReader, syntax transferSyntax, dict Dictionary) (ElementHeader, error) {
	tag, err := dr.Tag(syntax.byteOrder())
	if err == io.EOF {
		return ElementHeader{}, io.EOF
	}
	if err != nil {
		return ElementHeader{}, fmt.Errorf("reading tag: %w", err)
	}

	switch tag {
	case ItemDelimitationItemTag:
		if err := readDelimiterLength(dr, syntax.byteOrder()); err != nil {
			return ElementHeader{}, fmt.Errorf("reading item delimitation: %w", err)
		}
		return ElementHeader{}, errItemDelimitation
	case ItemTag, SequenceDelimitationItemTag:
		return ElementHeader{}, fmt.Errorf("unexpected delimiter %v at offset %d", tag, dr.Offset()-tagSize)
	}

	vr, err := syntax.readVR(dr, tag, dict)
	if err != nil {
		return ElementHeader{}, fmt.Errorf("getting vr of %v: %w", tag, unexpectedEOF(err))
	}

	length, err := syntax.readValueLength(dr, vr)
	if err != nil {
		return ElementHeader{}, fmt.Errorf("getting length of %v: %w", tag, unexpectedEOF(err))
	}

	return NewElementHeader(tag, vr, length, dr.Offset()), nil
}

func readDelimiterLength(dr *dcmReader, order binary.ByteOrder) error {
	length, err := dr.UInt32(order)
	if err != nil {
		return unexpectedEOF(err)
	}
	if length != 0 {
		return fmt.Errorf("wrong length for delimiter. got %v, want %v", length, 0)
	}
	return nil
}

// readDataElement reads a complete element of a sequence item
func (d *valueDecoder) readDataElement(dr *dcmReader, syntax transferSyntax, codec TextCodec) (*DataElement, error) {
	header, err := readElementHeader(dr, syntax, d.dict)
	if err != nil {
		return nil, err
	}

	value, err := d.readValue(dr, header, syntax, codec)
	if err != nil {
		return nil, fmt.Errorf("parsing value of %v: %w", header.Tag(), err)
	}

	return &DataElement{header.Tag(), header.VR(), value, header.Len()}, nil
}

func (d *valueDecoder) readValue(dr *dcmReader, header ElementHeader, syntax transferSyntax, codec TextCodec) (interface{}, error) {
	vr, length := header.VR(), header.Len()
	if length == UndefinedLength {
		return d.readUndefinedLength(dr, header, syntax, codec)
	}

	switch vr.kind {
	case textVR:
		return readText(dr, length, vr, codec, unicode.IsSpace)
	case numberBinaryVR:
		return readNumberBinary(dr, length, vr, syntax.byteOrder())
	case bulkDataVR:
		return readBulkData(dr, length, vr, codec, syntax.byteOrder())
	case uniqueIdentifierVR:
		return readText(dr, length, vr, codec, func(r rune) bool {
			return r == 0x00 || r == ' '
		})
	case sequenceVR:
		return d.readSequence(dr.Limit(int64(length)), length, syntax, codec)
	case tagVR:
		return readTag(dr, syntax, length)
	default:
		return nil, fmt.Errorf("unknown vr type found: %v", vr.kind)
	}
}

// readUndefinedLength reads values whose extent is given by delimitation items: sequences,
// UN holding an implicit VR little endian sequence (PS3.5 6.2.2) and encapsulated fragments.
func (d *valueDecoder) readUndefinedLength(dr *dcmReader, header ElementHeader, syntax transferSyntax, codec TextCodec) (interface{}, error) {
	switch header.VR() {
	case SQVR:
		return d.readSequence(dr, UndefinedLength, syntax, codec)
	case UNVR:
		return d.readSequence(dr, UndefinedLength, implicitVRLittleEndian, codec)
	case OBVR, OWVR:
		return readFragments(dr, syntax.byteOrder())
	}
	return nil, fmt.Errorf("%v %v: %w", header.Tag(), header.VR(), ErrUndefinedLength)
}

func readTag(dr *dcmReader, syntax transferSyntax, length uint32) ([]DataElementTag, error) {
	if length%tagSize != 0 {
		return nil, fmt.Errorf("value length %d is not a multiple of %d", length, tagSize)
	}
	ret := make([]DataElementTag, length/tagSize)

	for i := range ret {
		t, err := dr.Tag(syntax.byteOrder())
		if err != nil {
			return nil, unexpectedEOF(err)
		}
		ret[i] = t
	}
	return ret, nil
}

func decodeText(b []byte, vr *VR, codec TextCodec) (string, error) {
	if vr.IsCharacterString() {
		return codec.Decode(b)
	}
	return string(b), nil
}

func readText(dr *dcmReader, length uint32, vr *VR, codec TextCodec, isPadding func(rune) bool) ([]string, error) {
	if length == 0 {
		return []string{}, nil
	}

	b, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading text field value: %w", err)
	}
	valueField, err := decodeText(b, vr, codec)
	if err != nil {
		return nil, err
	}

	// ST and LT have a value multiplicity of 1 and may contain backslashes
	if vr == STVR || vr == LTVR {
		return []string{strings.TrimRightFunc(valueField, isPadding)}, nil
	}

	// deal with value multiplicity
	strs := strings.Split(valueField, "\\")
	for i, s := range strs {
		strs[i] = strings.TrimFunc(s, isPadding)
	}
	return strs, nil
}

func readNumberBinary(dr *dcmReader, length uint32, vr *VR, order binary.ByteOrder) (interface{}, error) {
	var data interface{}
	var size uint32

	switch vr {
	case SSVR:
		data, size = make([]int16, length/2), 2
	case USVR:
		data, size = make([]uint16, length/2), 2
	case SLVR:
		data, size = make([]int32, length/4), 4
	case ULVR:
		data, size = make([]uint32, length/4), 4
	case SVVR:
		data, size = make([]int64, length/8), 8
	case UVVR:
		data, size = make([]uint64, length/8), 8
	case FLVR:
		data, size = make([]float32, length/4), 4
	case FDVR:
		data, size = make([]float64, length/8), 8
	default:
		return nil, fmt.Errorf("unknown vr: %v", vr)
	}
	if length%size != 0 {
		return nil, fmt.Errorf("value length %d of %v is not a multiple of %d", length, vr, size)
	}

	if err := binary.Read(dr.cr, order, data); err != nil {
		return nil, fmt.Errorf("reading %v: %w", vr, unexpectedEOF(err))
	}

	return data, nil
}

// readBulkData reads the large VRs. OB, OW and UN keep the bytes as found in the file.
// Please refer to DICOM PS3.5 Part 5 for details on UC, UR, UT value representations
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_6.1
func readBulkData(dr *dcmReader, length uint32, vr *VR, codec TextCodec, order binary.ByteOrder) (interface{}, error) {
	buff, err := dr.Bytes(int64(length))
	if err != nil {
		return nil, fmt.Errorf("reading %v value: %w", vr, err)
	}

	var valueField interface{}
	var size int
	switch vr {
	case OBVR, OWVR, UNVR:
		return buff, nil
	case UCVR:
		// UC may be padded with trailing spaces and uses the "\" to delimit multiple values
		if length == 0 {
			return []string{}, nil
		}
		text, err := decodeText(buff, vr, codec)
		if err != nil {
			return nil, err
		}
		strs := strings.Split(text, "\\")
		for i, s := range strs {
			strs[i] = strings.TrimRightFunc(s, unicode.IsSpace)
		}
		return strs, nil
	case URVR, UTVR:
		// UR: Trailing spaces shall be ignored. Backslash is not allowed. Shall be in ISO 2022 IR 6
		// UT: Trailing spaces may be ignored (and are in this implementation). Backslash not allowed.
		if length == 0 {
			return []string{}, nil
		}
		text, err := decodeText(buff, vr, codec)
		if err != nil {
			return nil, err
		}
		return []string{strings.TrimRightFunc(text, unicode.IsSpace)}, nil
	case OLVR:
		valueField, size = make([]uint32, length/4), 4
	case OVVR:
		valueField, size = make([]uint64, length/8), 8
	case ODVR:
		valueField, size = make([]float64, length/8), 8
	case OFVR:
		valueField, size = make([]float32, length/4), 4
	default:
		return nil, fmt.Errorf("unexpected vr found: %v", vr)
	}
	if len(buff)%size != 0 {
		return nil, fmt.Errorf("value length %d of %v is not a multiple of %d", length, vr, size)
	}

	if err := binary.Read(bytes.NewReader(buff), order, valueField); err != nil {
		return nil, fmt.Errorf("reading to buffer: %w", err)
	}

	return valueField, nil
}
