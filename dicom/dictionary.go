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
	"strings"
	"sync"
	"unicode"

	"golang.org/x/text/cases"
)

// DictionaryEntry describes an attribute of the DICOM data dictionary
// http://dicom.nema.org/medical/dicom/current/output/html/part06.html#chapter_6
type DictionaryEntry struct {
	Tag DataElementTag

	// Keyword is the attribute keyword, e.g. PatientName
	Keyword string

	// Name is the attribute name, e.g. Patient's Name
	Name string

	// VR is the value representation used when the transfer syntax does not carry one
	VR *VR
}

// Dictionary resolves attributes by tag and by name. Implementations are read-only once built
// and may be shared by any number of objects.
type Dictionary interface {
	// LookupByName returns the entry matching name. The dictionary decides how names are
	// normalized before matching.
	LookupByName(name string) (DictionaryEntry, bool)

	// LookupByTag returns the entry of the given tag
	LookupByTag(tag DataElementTag) (DictionaryEntry, bool)
}

type mapDictionary struct {
	byTag  map[DataElementTag]DictionaryEntry
	byName map[string]DictionaryEntry
}

// NewDictionary builds a Dictionary from entries. Names are matched ignoring case, spaces and
// punctuation, so "PatientName", "patient name" and "PATIENTNAME" resolve to the same entry.
// Both the keyword and the name of an entry are indexed.
func NewDictionary(entries []DictionaryEntry) (Dictionary, error) {
	d := &mapDictionary{
		byTag:  make(map[DataElementTag]DictionaryEntry, len(entries)),
		byName: make(map[string]DictionaryEntry, 2*len(entries)),
	}
	for _, e := range entries {
		if _, ok := d.byTag[e.Tag]; ok {
			return nil, fmt.Errorf("duplicate dictionary entry for tag %v", e.Tag)
		}
		d.byTag[e.Tag] = e
		for _, name := range []string{e.Keyword, e.Name} {
			key := normalizeName(name)
			if key == "" {
				continue
			}
			if _, ok := d.byName[key]; !ok {
				d.byName[key] = e
			}
		}
	}
	return d, nil
}

func (d *mapDictionary) LookupByName(name string) (DictionaryEntry, bool) {
	e, ok := d.byName[normalizeName(name)]
	return e, ok
}

func (d *mapDictionary) LookupByTag(tag DataElementTag) (DictionaryEntry, bool) {
	e, ok := d.byTag[tag]
	return e, ok
}

func normalizeName(name string) string {
	folded := cases.Fold().String(name)
	return strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return r
		}
		return -1
	}, folded)
}

var (
	standardDictionaryOnce sync.Once
	standardDictionary     Dictionary
)

// StandardDictionary returns the process-wide dictionary of standard attributes. It is built on
// first use and never modified afterwards.
func StandardDictionary() Dictionary {
	standardDictionaryOnce.Do(func() {
		d, err := NewDictionary(standardEntries)
		if err != nil {
			panic(fmt.Sprintf("building standard dictionary: %v", err))
		}
		standardDictionary = d
	})
	return standardDictionary
}
