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
	"io"
)

// Decoder turns the value field of an element into a Go value. Decoding only depends on the
// header, the bytes read from r and the text codec.
type Decoder interface {
	// Decode reads the value field described by header from r, which is positioned at the first
	// byte of the value field. Exactly Len() bytes are consumed, or, for undefined lengths, the
	// bytes up to and including the delimitation item closing the value.
	Decode(r io.Reader, header ElementHeader, codec TextCodec) (interface{}, error)
}

// NewDecoder returns the Decoder for values encoded with the given transfer syntax. The
// dictionary supplies VRs of nested elements in implicit VR syntaxes.
func NewDecoder(transferSyntaxUID string, dict Dictionary) Decoder {
	return &valueDecoder{lookupTransferSyntax(transferSyntaxUID), dict}
}

type valueDecoder struct {
	syntax transferSyntax
	dict   Dictionary
}

func (d *valueDecoder) Decode(r io.Reader, header ElementHeader, codec TextCodec) (interface{}, error) {
	if codec == nil {
		codec = DefaultTextCodec
	}
	syntax := d.syntax
	if header.Tag().IsMetadataElement() {
		// the file meta information is always explicit VR little endian
		syntax = explicitVRLittleEndian
	}
	return d.readValue(newDcmReaderAt(r, header.Offset()), header, syntax, codec)
}
