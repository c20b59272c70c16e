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
	"io"
)

// fragmentIterator walks the fragments of a value in encapsulated format as described in
// http://dicom.nema.org/medical/dicom/current/output/html/part05.html#sect_A.4.
// The first fragment is the Basic Offset Table, which may be empty.
type fragmentIterator struct {
	dr    *dcmReader
	order binary.ByteOrder
	empty bool
}

func newFragmentIterator(dr *dcmReader, order binary.ByteOrder) *fragmentIterator {
	return &fragmentIterator{dr, order, false}
}

// Next returns the length of the next fragment, leaving dr at its first byte. When there are no
// remaining fragments, the error io.EOF is returned.
func (it *fragmentIterator) Next() (uint32, error) {
	if it.empty {
		return 0, io.EOF
	}

	tag, err := processItemTag(it.dr, it.order)
	if err == io.EOF {
		return 0, fmt.Errorf("unexpected EOF in encapsulated format: %w", io.ErrUnexpectedEOF)
	}
	if err != nil {
		return 0, fmt.Errorf("reading tag in encapsulated format fragment: %w", err)
	}
	if tag == SequenceDelimitationItemTag {
		return 0, it.terminate()
	}

	length, err := it.dr.UInt32(it.order)
	if err != nil {
		return 0, fmt.Errorf("reading fragment length: %w", unexpectedEOF(err))
	}
	if length == UndefinedLength {
		return 0, fmt.Errorf("expected fragment to be of explicit length")
	}
	return length, nil
}

func (it *fragmentIterator) terminate() error {
	if err := readDelimiterLength(it.dr, it.order); err != nil {
		return fmt.Errorf("reading 32 bit length of sequence delimitation item: %w", err)
	}
	it.empty = true
	return io.EOF
}

// readFragments returns every fragment of an encapsulated value, Basic Offset Table first
func readFragments(dr *dcmReader, order binary.ByteOrder) ([][]byte, error) {
	fragments := make([][]byte, 0)
	iter := newFragmentIterator(dr, order)
	for length, err := iter.Next(); err != io.EOF; length, err = iter.Next() {
		if err != nil {
			return nil, err
		}
		fragment, err := dr.Bytes(int64(length))
		if err != nil {
			return nil, fmt.Errorf("reading fragment %d: %w", len(fragments), err)
		}
		fragments = append(fragments, fragment)
	}
	return fragments, nil
}

// skipFragments advances dr past an encapsulated value without reading the fragments
func skipFragments(dr *dcmReader, order binary.ByteOrder) error {
	iter := newFragmentIterator(dr, order)
	for length, err := iter.Next(); err != io.EOF; length, err = iter.Next() {
		if err != nil {
			return err
		}
		if err := dr.Skip(int64(length)); err != nil {
			return fmt.Errorf("skipping fragment: %w", err)
		}
	}
	return nil
}
