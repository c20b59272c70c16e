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

// LazyElement is a Data Element whose value is only known after the first read. It does not know
// how to read its value: the LazyObject owning it fills the value in, at most once.
type LazyElement struct {
	header ElementHeader
	value  *DataElement
}

func newLazyElement(header ElementHeader) *LazyElement {
	return &LazyElement{header: header}
}

// Header returns the header the element was created from
func (e *LazyElement) Header() ElementHeader {
	return e.header
}

// Tag returns the element's tag
func (e *LazyElement) Tag() DataElementTag {
	return e.header.Tag()
}

// VR returns the element's value representation
func (e *LazyElement) VR() *VR {
	return e.header.VR()
}

// Len returns the declared value length, which can be UndefinedLength for sequences and
// encapsulated pixel data.
func (e *LazyElement) Len() uint32 {
	return e.header.Len()
}

// HasUndefinedLength is true when the extent of the value is given by delimitation items
func (e *LazyElement) HasUndefinedLength() bool {
	return e.header.HasUndefinedLength()
}

// Offset returns the position of the value field in the source
func (e *LazyElement) Offset() int64 {
	return e.header.Offset()
}

// Value returns the cached value. The boolean is false until the value has been read.
func (e *LazyElement) Value() (*DataElement, bool) {
	return e.value, e.value != nil
}

// IsMaterialized is true once the value has been read
func (e *LazyElement) IsMaterialized() bool {
	return e.value != nil
}

func (e *LazyElement) cache(value *DataElement) {
	if e.value == nil {
		e.value = value
	}
}
