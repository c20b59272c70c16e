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
	"strings"
)

// Sequence models a DICOM sequence
type Sequence struct {
	Items []*DataSet
}

func (seq *Sequence) String() string {
	return seq.string(0)
}

func (seq *Sequence) string(indentLvl int) string {
	lines := make([]string, 0)
	for _, obj := range seq.Items {
		lines = append(lines, obj.string(indentLvl+1))
	}
	return "\n" + strings.Join(lines, "\n")
}

func (seq *Sequence) append(dataSet *DataSet) {
	seq.Items = append(seq.Items, dataSet)
}

// itemIterator walks the items of a sequence value in the order in which they appear in the
// file. Each item returned by Next must be fully consumed before Next is called again.
type itemIterator struct {
	dr        *dcmReader
	order     binary.ByteOrder
	undefined bool
	empty     bool
}

// newItemIterator expects dr to be limited to the value field when length is defined
func newItemIterator(dr *dcmReader, length uint32, order binary.ByteOrder) *itemIterator {
	return &itemIterator{dr, order, length == UndefinedLength, false}
}

// Next returns a reader over the next item and the item's length. If there is no next item, the
// error io.EOF is returned.
func (it *itemIterator) Next() (*dcmReader, uint32, error) {
	if it.empty {
		return nil, 0, io.EOF
	}

	tag, err := processItemTag(it.dr, it.order)
	if err == io.EOF {
		if it.undefined {
			return nil, 0, fmt.Errorf("unexpected EOF in undefined length sequence: %w", io.ErrUnexpectedEOF)
		}
		it.empty = true
		return nil, 0, io.EOF
	}
	if err != nil {
		return nil, 0, err
	}
	if tag == SequenceDelimitationItemTag {
		if !it.undefined {
			return nil, 0, fmt.Errorf("unexpected sequence delimitation item tag in explicit length sequence")
		}
		return nil, 0, it.terminate()
	}

	itemLength, err := it.dr.UInt32(it.order)
	if err != nil {
		return nil, 0, fmt.Errorf("reading sequence item length: %w", unexpectedEOF(err))
	}
	if itemLength == UndefinedLength {
		return it.dr, itemLength, nil
	}
	return it.dr.Limit(int64(itemLength)), itemLength, nil
}

func (it *itemIterator) terminate() error {
	if err := readDelimiterLength(it.dr, it.order); err != nil {
		return fmt.Errorf("reading 32 bit length of sequence delimitation item: %w", err)
	}
	// the empty flag prevents the iterator from advancing the input stream past the bytes of the
	// sequence when Next() is called again
	it.empty = true
	return io.EOF
}

func processItemTag(dr *dcmReader, order binary.ByteOrder) (DataElementTag, error) {
	tag, err := dr.Tag(order)
	if err == io.EOF {
		return tag, io.EOF
	}
	if err != nil {
		return tag, fmt.Errorf("unexpected error reading item tag: %w", err)
	}
	if tag != ItemTag && tag != SequenceDelimitationItemTag {
		return tag, fmt.Errorf("invalid item tag in sequence, got %08X want %08X or %08X",
			uint32(tag), uint32(ItemTag), uint32(SequenceDelimitationItemTag))
	}

	return tag, nil
}

// readSequence decodes every item of a sequence value into a DataSet
func (d *valueDecoder) readSequence(dr *dcmReader, length uint32, syntax transferSyntax, codec TextCodec) (*Sequence, error) {
	seq := &Sequence{[]*DataSet{}}
	iter := newItemIterator(dr, length, syntax.byteOrder())
	for item, _, err := iter.Next(); err != io.EOF; item, _, err = iter.Next() {
		if err != nil {
			return nil, err
		}
		dataSet, err := d.readItem(item, syntax, codec)
		if err != nil {
			return nil, fmt.Errorf("reading item %d: %w", len(seq.Items), err)
		}
		seq.append(dataSet)
	}
	return seq, nil
}

// readItem decodes the elements of one item. An item may carry its own Specific Character Set,
// which then applies to the elements following it.
func (d *valueDecoder) readItem(dr *dcmReader, syntax transferSyntax, codec TextCodec) (*DataSet, error) {
	ds := &DataSet{map[DataElementTag]*DataElement{}}
	for {
		elem, err := d.readDataElement(dr, syntax, codec)
		if err == io.EOF || err == errItemDelimitation {
			return ds, nil
		}
		if err != nil {
			return nil, err
		}
		ds.Elements[elem.Tag] = elem

		if elem.Tag == SpecificCharacterSetTag {
			terms, ok := elem.ValueField.([]string)
			if !ok {
				return nil, fmt.Errorf("item character set: unexpected value of type %T with vr %v", elem.ValueField, elem.VR)
			}
			codec, err = NewTextCodec(strings.Join(terms, "\\"))
			if err != nil {
				return nil, fmt.Errorf("item character set: %w", err)
			}
		}
	}
}

// skipSequence advances dr past a sequence of undefined length without decoding it
func skipSequence(dr *dcmReader, syntax transferSyntax, dict Dictionary) error {
	iter := newItemIterator(dr, UndefinedLength, syntax.byteOrder())
	for item, itemLength, err := iter.Next(); err != io.EOF; item, itemLength, err = iter.Next() {
		if err != nil {
			return err
		}
		if itemLength != UndefinedLength {
			if err := dr.Skip(int64(itemLength)); err != nil {
				return fmt.Errorf("skipping item: %w", err)
			}
			continue
		}
		if err := skipItem(item, syntax, dict); err != nil {
			return err
		}
	}
	return nil
}

func skipItem(dr *dcmReader, syntax transferSyntax, dict Dictionary) error {
	for {
		header, err := readElementHeader(dr, syntax, dict)
		if err == errItemDelimitation {
			return nil
		}
		if err == io.EOF {
			return fmt.Errorf("unexpected EOF in undefined length item: %w", io.ErrUnexpectedEOF)
		}
		if err != nil {
			return err
		}
		if err := skipValue(dr, header, syntax, dict); err != nil {
			return err
		}
	}
}

// skipValue advances dr past the value field described by header. Undefined length values are
// walked to their closing delimiter.
func skipValue(dr *dcmReader, header ElementHeader, syntax transferSyntax, dict Dictionary) error {
	if !header.HasUndefinedLength() {
		if err := dr.Skip(int64(header.Len())); err != nil {
			return fmt.Errorf("skipping value of %v: %w", header.Tag(), err)
		}
		return nil
	}

	switch header.VR() {
	case SQVR:
		return skipSequence(dr, syntax, dict)
	case UNVR:
		return skipSequence(dr, implicitVRLittleEndian, dict)
	case OBVR, OWVR:
		return skipFragments(dr, syntax.byteOrder())
	}
	return fmt.Errorf("%v %v: %w", header.Tag(), header.VR(), ErrUndefinedLength)
}
