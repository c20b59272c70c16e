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
	"reflect"
	"testing"
)

func TestDataElement_String(t *testing.T) {
	tests := []struct {
		name string
		elem *DataElement
		want string
	}{
		{
			"text",
			&DataElement{patientNameTag, PNVR, []string{"DOE"}, 4},
			"(0010,0010) PN [DOE]",
		},
		{
			"sequence",
			&DataElement{refSeqTag, SQVR, &Sequence{[]*DataSet{{map[DataElementTag]*DataElement{
				refUIDTag: {refUIDTag, UIVR, []string{"1.2"}, 4},
			}}}}, UndefinedLength},
			"(0008,1140) SQ \n  (0008,1155) UI [1.2]",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.elem.String(); got != tc.want {
				t.Fatalf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestDataSet_SortedTags(t *testing.T) {
	ds := &DataSet{map[DataElementTag]*DataElement{
		rowsTag:        {rowsTag, USVR, []uint16{1}, 2},
		studyDateTag:   {studyDateTag, DAVR, []string{"20240131"}, 8},
		patientNameTag: {patientNameTag, PNVR, []string{"DOE"}, 4},
	}}
	want := []DataElementTag{studyDateTag, patientNameTag, rowsTag}
	if got := ds.SortedTags(); !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestElementHeader(t *testing.T) {
	h := NewElementHeader(refSeqTag, nil, UndefinedLength, 42)
	if h.VR() != UNVR {
		t.Fatalf("expected nil VR to be recorded as UN, got %v", h.VR())
	}
	if !h.HasUndefinedLength() {
		t.Fatalf("expected undefined length")
	}
	if want := "(0008,1140) UN len=undefined @42"; h.String() != want {
		t.Fatalf("got %q, want %q", h.String(), want)
	}

	h = NewElementHeader(patientNameTag, PNVR, 4, 12)
	if want := "(0010,0010) PN len=4 @12"; h.String() != want {
		t.Fatalf("got %q, want %q", h.String(), want)
	}
}

func TestLazyElement_CacheOnce(t *testing.T) {
	e := newLazyElement(NewElementHeader(patientNameTag, PNVR, 4, 12))
	if _, ok := e.Value(); ok || e.IsMaterialized() {
		t.Fatalf("expected new element not to be materialized")
	}

	first := &DataElement{patientNameTag, PNVR, []string{"DOE"}, 4}
	e.cache(first)
	e.cache(&DataElement{patientNameTag, PNVR, []string{"ROE"}, 4})

	got, ok := e.Value()
	if !ok || got != first {
		t.Fatalf("got (%v, %v), want (%v, true)", got, ok, first)
	}
	if e.Tag() != patientNameTag || e.VR() != PNVR || e.Len() != 4 || e.Offset() != 12 {
		t.Fatalf("unexpected header %v", e.Header())
	}
	if e.HasUndefinedLength() {
		t.Fatalf("HasUndefinedLength() => true for length 4")
	}
}

func TestLazyElement_HasUndefinedLength(t *testing.T) {
	e := newLazyElement(NewElementHeader(refSeqTag, SQVR, UndefinedLength, 0))
	if !e.HasUndefinedLength() {
		t.Fatalf("HasUndefinedLength() => false for %v", e.Header())
	}
}
