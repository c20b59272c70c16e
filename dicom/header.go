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

import "fmt"

// ElementHeader records where a Data Element lives in its source. It is produced once per element
// by a HeaderIterator and never changes afterwards.
type ElementHeader struct {
	tag    DataElementTag
	vr     *VR
	length uint32
	offset int64
}

// NewElementHeader returns the header of an element whose value field of the given length starts
// at byte offset in the source. A nil vr is recorded as UN.
func NewElementHeader(tag DataElementTag, vr *VR, length uint32, offset int64) ElementHeader {
	if vr == nil {
		vr = UNVR
	}
	return ElementHeader{tag, vr, length, offset}
}

// Tag returns the tag of the element
func (h ElementHeader) Tag() DataElementTag {
	return h.tag
}

// VR returns the value representation of the element, UN if it is not known
func (h ElementHeader) VR() *VR {
	return h.vr
}

// Len returns the value length declared by the element. It may be UndefinedLength, in which case
// the extent of the value is given by delimitation items.
func (h ElementHeader) Len() uint32 {
	return h.length
}

// Offset returns the position of the first byte of the value field in the source
func (h ElementHeader) Offset() int64 {
	return h.offset
}

// HasUndefinedLength is true when the length is the undefined length sentinel
func (h ElementHeader) HasUndefinedLength() bool {
	return h.length == UndefinedLength
}

func (h ElementHeader) String() string {
	if h.HasUndefinedLength() {
		return fmt.Sprintf("%v %v len=undefined @%d", h.tag, h.vr, h.offset)
	}
	return fmt.Sprintf("%v %v len=%d @%d", h.tag, h.vr, h.length, h.offset)
}
