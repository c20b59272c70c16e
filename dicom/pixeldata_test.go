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

func TestNewEncapsulatedPixelData(t *testing.T) {
	got, err := newEncapsulatedPixelData([][]byte{
		{0, 0, 0, 0, 0x10, 0, 0, 0},
		{1, 2},
		{3},
	})
	if err != nil {
		t.Fatalf("newEncapsulatedPixelData(_) => %v", err)
	}
	want := &PixelData{true, []uint32{0, 16}, [][]byte{{1, 2}, {3}}}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	if got.Size() != 3 {
		t.Fatalf("Size() => %v, want 3", got.Size())
	}
}

func TestNewEncapsulatedPixelData_invalid(t *testing.T) {
	tests := []struct {
		name      string
		fragments [][]byte
	}{
		{"no offset table item", [][]byte{}},
		{"offset table not a multiple of 4", [][]byte{{0, 0, 0}}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := newEncapsulatedPixelData(tc.fragments); err == nil {
				t.Fatalf("expected error")
			}
		})
	}
}

func TestPixelData_UnexpectedValue(t *testing.T) {
	p := newFakeParser([]byte("ABCD"))
	obj, err := Assemble(headersOf(NewElementHeader(PixelDataTag, LOVR, 4, 0)), p, StandardDictionary())
	if err != nil {
		t.Fatalf("Assemble(_, _, _) => %v", err)
	}
	if _, err := obj.PixelData(); err == nil {
		t.Fatalf("expected error for pixel data decoded as text")
	}
}
