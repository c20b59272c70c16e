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
	"io"
	"log/slog"
)

// LazyObject is a DICOM object whose Data Elements are indexed by tag when the object is built but
// whose values are only read the first time they are requested. Once read, a value is cached for
// the lifetime of the object.
//
// A LazyObject owns its Parser and the source behind it. It is not safe for concurrent use, and two
// objects must not share a source.
type LazyObject struct {
	dict    Dictionary
	parser  Parser
	entries map[DataElementTag]*LazyElement
	logger  *slog.Logger
}

// Assemble consumes headers until io.EOF and returns an object indexing one LazyElement per tag.
// The first error returned by headers aborts the construction and is returned. When a tag is seen
// more than once, the last header wins. No value is read.
func Assemble(headers HeaderIterator, parser Parser, dict Dictionary, opts ...Option) (*LazyObject, error) {
	if dict == nil {
		return nil, fmt.Errorf("nil dictionary")
	}
	if parser == nil {
		return nil, fmt.Errorf("nil parser")
	}
	o := newOptions(opts)

	entries := map[DataElementTag]*LazyElement{}
	for header, err := headers.Next(); err != io.EOF; header, err = headers.Next() {
		if err != nil {
			return nil, fmt.Errorf("assembling object: %w", err)
		}
		if previous, ok := entries[header.Tag()]; ok {
			o.logger.Warn("duplicate data element, keeping the last one",
				"tag", header.Tag().String(),
				"previous_offset", previous.Offset(),
				"offset", header.Offset())
		}
		entries[header.Tag()] = newLazyElement(header)
	}

	return &LazyObject{
		dict:    dict,
		parser:  parser,
		entries: entries,
		logger:  o.logger,
	}, nil
}

// Element returns the Data Element with the given tag, reading and caching its value on the first
// call. Later calls return the cached *DataElement, which callers must not modify.
func (o *LazyObject) Element(tag DataElementTag) (*DataElement, error) {
	e, ok := o.entries[tag]
	if !ok {
		return nil, fmt.Errorf("%v: %w", tag, ErrNoSuchDataElement)
	}
	if value, ok := e.Value(); ok {
		return value, nil
	}

	value, err := o.materialize(e.Header())
	if err != nil {
		return nil, err
	}
	e.cache(value)
	return value, nil
}

func (o *LazyObject) materialize(header ElementHeader) (*DataElement, error) {
	source := o.parser.Source()
	if _, err := source.Seek(header.Offset(), io.SeekStart); err != nil {
		return nil, fmt.Errorf("seeking to value of %v: %w", header.Tag(), err)
	}

	value, err := o.parser.Decoder().Decode(source, header, o.parser.TextCodec())
	if err != nil {
		return nil, fmt.Errorf("decoding value of %v: %w", header.Tag(), err)
	}

	o.logger.Debug("materialized data element",
		"tag", header.Tag().String(),
		"vr", header.VR().Name,
		"offset", header.Offset(),
		"length", header.Len())
	return &DataElement{header.Tag(), header.VR(), value, header.Len()}, nil
}

// ElementByName returns the Data Element whose attribute name or keyword is name, as resolved by
// the object's dictionary.
func (o *LazyObject) ElementByName(name string) (*DataElement, error) {
	tag, err := o.lookupName(name)
	if err != nil {
		return nil, err
	}
	return o.Element(tag)
}

func (o *LazyObject) lookupName(name string) (DataElementTag, error) {
	entry, ok := o.dict.LookupByName(name)
	if !ok {
		return 0, fmt.Errorf("%q: %w", name, ErrNoSuchAttributeName)
	}
	return entry.Tag, nil
}

// Header returns the lazy element of the given tag without reading its value
func (o *LazyObject) Header(tag DataElementTag) (*LazyElement, bool) {
	e, ok := o.entries[tag]
	return e, ok
}

// Tags returns the tags of the object in ascending order
func (o *LazyObject) Tags() []DataElementTag {
	tags := make([]DataElementTag, 0, len(o.entries))
	for tag := range o.entries {
		tags = append(tags, tag)
	}
	sortTags(tags)
	return tags
}

// Len returns the number of Data Elements in the object
func (o *LazyObject) Len() int {
	return len(o.entries)
}

// Dictionary returns the dictionary used to resolve names
func (o *LazyObject) Dictionary() Dictionary {
	return o.dict
}

// TransferSyntaxUID returns the transfer syntax of the source, or "" when the parser does not
// report one
func (o *LazyObject) TransferSyntaxUID() string {
	if s, ok := o.parser.(interface{ TransferSyntaxUID() string }); ok {
		return s.TransferSyntaxUID()
	}
	return ""
}

// Close releases the parser if it holds resources
func (o *LazyObject) Close() error {
	if c, ok := o.parser.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
