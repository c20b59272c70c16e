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

import "errors"

var (
	// ErrNoSuchDataElement is returned when a tag is not present in an object
	ErrNoSuchDataElement = errors.New("no such data element")

	// ErrNoSuchAttributeName is returned when an attribute name is not known to the dictionary
	ErrNoSuchAttributeName = errors.New("no such attribute name")

	// ErrUndefinedLength is returned for undefined length values whose VR has no delimited form
	ErrUndefinedLength = errors.New("undefined length not supported for value representation")
)
