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
	"testing"
)

func TestStandardDictionary_LookupByName(t *testing.T) {
	tests := []struct {
		name string
		want DataElementTag
	}{
		{"PatientName", 0x00100010},
		{"Patient's Name", 0x00100010},
		{"patient name", 0x00100010},
		{"PATIENTNAME", 0x00100010},
		{"TransferSyntaxUID", TransferSyntaxUIDTag},
		{"Pixel Data", PixelDataTag},
		{"StudyInstanceUID", 0x0020000D},
	}

	dict := StandardDictionary()
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e, ok := dict.LookupByName(tc.name)
			if !ok {
				t.Fatalf("LookupByName(%q) not found", tc.name)
			}
			if e.Tag != tc.want {
				t.Fatalf("got %v, want %v", e.Tag, tc.want)
			}
		})
	}
}

func TestStandardDictionary_LookupByTag(t *testing.T) {
	dict := StandardDictionary()
	e, ok := dict.LookupByTag(PixelDataTag)
	if !ok {
		t.Fatalf("LookupByTag(%v) not found", PixelDataTag)
	}
	if e.Keyword != "PixelData" || e.VR != OWVR {
		t.Fatalf("unexpected entry %+v", e)
	}

	if _, ok := dict.LookupByTag(0x00091010); ok {
		t.Fatalf("expected private tag not to be found")
	}
	if _, ok := dict.LookupByName("NotAnAttribute"); ok {
		t.Fatalf("expected unknown name not to be found")
	}
}

func TestStandardDictionary_Shared(t *testing.T) {
	if StandardDictionary() != StandardDictionary() {
		t.Fatalf("expected the standard dictionary to be built once")
	}
}

func TestNewDictionary(t *testing.T) {
	dict, err := NewDictionary([]DictionaryEntry{
		{0x00091010, "VendorField", "Vendor Field", LOVR},
		{0x00091011, "", "Unnamed", SHVR},
	})
	if err != nil {
		t.Fatalf("NewDictionary(_) => %v", err)
	}

	if e, ok := dict.LookupByName("vendor-field"); !ok || e.Tag != 0x00091010 {
		t.Fatalf("LookupByName(vendor-field) => (%v, %v)", e, ok)
	}
	if e, ok := dict.LookupByName("UNNAMED"); !ok || e.Tag != 0x00091011 {
		t.Fatalf("LookupByName(UNNAMED) => (%v, %v)", e, ok)
	}
	if _, ok := dict.LookupByName(""); ok {
		t.Fatalf("expected empty name not to be found")
	}
}

func TestNewDictionary_DuplicateTag(t *testing.T) {
	_, err := NewDictionary([]DictionaryEntry{
		{0x00091010, "A", "A", LOVR},
		{0x00091010, "B", "B", LOVR},
	})
	if err == nil {
		t.Fatalf("expected error for duplicate tags")
	}
}
