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

package main

import (
	"encoding/hex"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/gobwas/glob"
	"github.com/zeebo/blake3"

	"github.com/GoogleCloudPlatform/go-dicom-lazy/dicom"
)

// DumpCmd lists the element headers of a file.
type DumpCmd struct {
	File  string `arg:"" help:"DICOM file, optionally .gz, .xz or .zst compressed" type:"existingfile"`
	Match string `short:"m" help:"Only list elements whose keyword matches this glob, e.g. 'Patient*'"`
}

func (c *DumpCmd) Run(e *env) error {
	var matcher glob.Glob
	if c.Match != "" {
		g, err := glob.Compile(c.Match)
		if err != nil {
			return fmt.Errorf("invalid match pattern %q: %w", c.Match, err)
		}
		matcher = g
	}

	obj, err := e.open(c.File)
	if err != nil {
		return err
	}
	defer obj.Close()

	listed := 0
	for _, tag := range obj.Tags() {
		elem, _ := obj.Header(tag)
		keyword := ""
		if entry, ok := obj.Dictionary().LookupByTag(tag); ok {
			keyword = entry.Keyword
		}
		if matcher != nil && !matcher.Match(keyword) {
			continue
		}
		fmt.Fprintf(e.out, "%v %s\n", elem.Header(), keyword)
		listed++
	}
	fmt.Fprintf(e.out, "%d of %d elements, transfer syntax %s\n", listed, obj.Len(), obj.TransferSyntaxUID())
	return nil
}

// GetCmd prints element values.
type GetCmd struct {
	File   string   `arg:"" help:"DICOM file, optionally .gz, .xz or .zst compressed" type:"existingfile"`
	Keys   []string `arg:"" help:"Tags as (gggg,eeee) or ggggeeee, or attribute names"`
	Digest bool     `short:"d" help:"Print a BLAKE3 digest of each value instead of the value"`
}

func (c *GetCmd) Run(e *env) error {
	obj, err := e.open(c.File)
	if err != nil {
		return err
	}
	defer obj.Close()

	for _, key := range c.Keys {
		elem, err := lookup(obj, key)
		if err != nil {
			return err
		}
		if c.Digest {
			fmt.Fprintf(e.out, "%v %v %s\n", elem.Tag, elem.VR, valueDigest(elem.ValueField))
			continue
		}
		fmt.Fprintln(e.out, elem)
	}
	return nil
}

// lookup treats key as a tag when it parses as one, as an attribute name otherwise
func lookup(obj *dicom.LazyObject, key string) (*dicom.DataElement, error) {
	if tag, err := dicom.ParseTag(key); err == nil {
		return obj.Element(tag)
	}
	return obj.ElementByName(key)
}

// valueDigest hashes the bytes of binary values and the printed form of any other value
func valueDigest(value interface{}) string {
	h := blake3.New()
	switch v := value.(type) {
	case []byte:
		h.Write(v)
	case [][]byte:
		for _, f := range v {
			h.Write(f)
		}
	default:
		fmt.Fprint(h, v)
	}
	return hex.EncodeToString(h.Sum(nil))
}

// PixelsCmd summarizes the Pixel Data element.
type PixelsCmd struct {
	File string `arg:"" help:"DICOM file, optionally .gz, .xz or .zst compressed" type:"existingfile"`
}

func (c *PixelsCmd) Run(e *env) error {
	obj, err := e.open(c.File)
	if err != nil {
		return err
	}
	defer obj.Close()

	pd, err := obj.PixelData()
	if err != nil {
		return err
	}

	h := blake3.New()
	for _, f := range pd.Fragments {
		h.Write(f)
	}

	fmt.Fprintf(e.out, "encapsulated: %v\n", pd.Encapsulated)
	fmt.Fprintf(e.out, "fragments:    %d\n", len(pd.Fragments))
	if pd.Encapsulated {
		fmt.Fprintf(e.out, "offsets:      %d\n", len(pd.OffsetTable))
	}
	fmt.Fprintf(e.out, "size:         %s\n", humanize.IBytes(uint64(pd.Size())))
	fmt.Fprintf(e.out, "blake3:       %s\n", hex.EncodeToString(h.Sum(nil)))
	return nil
}
