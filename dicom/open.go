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
	"os"
)

// Open parses the element headers of the DICOM file in source and returns the object indexing
// them. The object takes ownership of source and closes it on Close if it is an io.Closer. On
// error, source is left to the caller.
func Open(source io.ReadSeeker, opts ...Option) (*LazyObject, error) {
	p, err := NewStreamParser(source, opts...)
	if err != nil {
		return nil, fmt.Errorf("creating stream parser: %w", err)
	}

	return Assemble(p, p, newOptions(opts).dict, opts...)
}

// OpenFile opens the DICOM file at path. The file stays open until the object is closed.
func OpenFile(path string, opts ...Option) (*LazyObject, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	obj, err := Open(f, opts...)
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	return obj, nil
}
