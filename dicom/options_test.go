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
	"bytes"
	"log/slog"
	"reflect"
	"strings"
	"testing"
)

func TestWithLogger_DuplicateTagWarning(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelWarn}))

	_, err := Assemble(headersOf(
		NewElementHeader(patientNameTag, PNVR, 4, 12),
		NewElementHeader(patientNameTag, DAVR, 8, 16),
	), newFakeParser(sampleSource), StandardDictionary(), WithLogger(logger))
	if err != nil {
		t.Fatalf("Assemble(_, _, _, _) => %v", err)
	}
	if !strings.Contains(buf.String(), "duplicate data element") {
		t.Fatalf("expected a duplicate warning, got %q", buf.String())
	}
}

func TestWithLogger_Nil(t *testing.T) {
	if o := newOptions([]Option{WithLogger(nil)}); o.logger == nil {
		t.Fatalf("expected nil logger to be ignored")
	}
}

func TestWithDictionary(t *testing.T) {
	dict, err := NewDictionary([]DictionaryEntry{{0x00091010, "VendorField", "Vendor Field", LOVR}})
	if err != nil {
		t.Fatalf("NewDictionary(_) => %v", err)
	}
	data := newTestFile(t, ImplicitVRLittleEndianUID, encode(func(dw *dcmWriter) {
		dw.Element(implicitVRLittleEndian, 0x00091010, nil, padText("ACME"))
	}))

	obj, err := Open(bytes.NewReader(data), WithDictionary(dict))
	if err != nil {
		t.Fatalf("Open(_, _) => %v", err)
	}
	elem, err := obj.ElementByName("Vendor Field")
	if err != nil {
		t.Fatalf("ElementByName(_) => %v", err)
	}
	if want := []string{"ACME"}; !reflect.DeepEqual(elem.ValueField, want) {
		t.Fatalf("got %v, want %v", elem.ValueField, want)
	}

	if _, err := NewStreamParser(bytes.NewReader(data), WithDictionary(nil)); err == nil {
		t.Fatalf("expected error for nil dictionary")
	}
}
