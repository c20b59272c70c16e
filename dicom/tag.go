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
	"regexp"
	"sort"
	"strconv"
)

// DataElementTag is a unique identifier for a Data Element composed of an unordered pair
// of numbers called the group number and the element number as specified in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_3.10.
//
// The least significant 16 bits is the element number. The most significant 16 bits is the group
// number, so comparing two tags as integers orders them by (group, element).
type DataElementTag uint32

// NewTag returns the DataElementTag (group,element)
func NewTag(group, element uint16) DataElementTag {
	return DataElementTag(uint32(group)<<16 | uint32(element))
}

// GroupNumber returns the group number component of the DataElementTag
func (t DataElementTag) GroupNumber() uint16 {
	return uint16(t >> 16)
}

// ElementNumber returns the element number component of the DataElementTag
func (t DataElementTag) ElementNumber() uint16 {
	return uint16(t & 0xFFFF)
}

// IsMetadataElement is true if and only if the Data Element is a meta data element
func (t DataElementTag) IsMetadataElement() bool {
	return t.GroupNumber() == uint16(0x0002)
}

// IsPrivate is true if and only if the group number is odd
func (t DataElementTag) IsPrivate() bool {
	return t.GroupNumber()%2 == 1
}

// String returns the tag in the (GGGG,EEEE) notation
func (t DataElementTag) String() string {
	return fmt.Sprintf("(%04X,%04X)", t.GroupNumber(), t.ElementNumber())
}

var tagPattern = regexp.MustCompile(`^(?:\(([0-9A-Fa-f]{4}),([0-9A-Fa-f]{4})\)|([0-9A-Fa-f]{4}),?([0-9A-Fa-f]{4}))$`)

// ParseTag parses a tag written as (gggg,eeee), gggg,eeee or ggggeeee in hexadecimal. The whole
// string must match.
func ParseTag(s string) (DataElementTag, error) {
	m := tagPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, fmt.Errorf("invalid tag %q", s)
	}
	groupHex, elementHex := m[1], m[2]
	if groupHex == "" {
		groupHex, elementHex = m[3], m[4]
	}

	group, err := strconv.ParseUint(groupHex, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: %w", s, err)
	}
	element, err := strconv.ParseUint(elementHex, 16, 16)
	if err != nil {
		return 0, fmt.Errorf("invalid tag %q: %w", s, err)
	}
	return NewTag(uint16(group), uint16(element)), nil
}

func sortTags(tags []DataElementTag) {
	sort.Slice(tags, func(i, j int) bool { return tags[i] < tags[j] })
}

// Tags used by the parser and decoder. The full attribute list lives in the dictionary.
const (
	FileMetaInformationGroupLengthTag DataElementTag = 0x00020000
	TransferSyntaxUIDTag              DataElementTag = 0x00020010
	SpecificCharacterSetTag           DataElementTag = 0x00080005
	PixelDataTag                      DataElementTag = 0x7FE00010

	// ItemTag, ItemDelimitationItemTag and SequenceDelimitationItemTag delimit sequence items and
	// pixel data fragments as specified in
	// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_7.5
	ItemTag                     DataElementTag = 0xFFFEE000
	ItemDelimitationItemTag     DataElementTag = 0xFFFEE00D
	SequenceDelimitationItemTag DataElementTag = 0xFFFEE0DD
)
