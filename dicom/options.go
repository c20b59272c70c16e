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
	"log/slog"
)

// DefaultMaxInflatedBytes bounds the size of a data set encoded with the deflated transfer syntax
// once inflated
const DefaultMaxInflatedBytes = 1 << 30

// Option configures how Open, OpenFile, NewStreamParser and Assemble behave
type Option struct {
	apply func(o *options)
}

type options struct {
	dict             Dictionary
	logger           *slog.Logger
	defaultCharset   string
	maxInflatedBytes int64
}

func newOptions(opts []Option) *options {
	o := &options{
		dict:             StandardDictionary(),
		logger:           slog.New(slog.DiscardHandler),
		maxInflatedBytes: DefaultMaxInflatedBytes,
	}
	for _, opt := range opts {
		opt.apply(o)
	}
	return o
}

// WithDictionary replaces the standard dictionary used for name resolution and implicit VRs
func WithDictionary(dict Dictionary) Option {
	return Option{func(o *options) {
		o.dict = dict
	}}
}

// WithLogger sets the logger receiving parse and materialization events. Events are discarded by
// default.
func WithLogger(logger *slog.Logger) Option {
	return Option{func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}}
}

// WithDefaultCharacterSet sets the Specific Character Set term assumed until the data set
// declares one in (0008,0005), e.g. "ISO_IR 192"
func WithDefaultCharacterSet(term string) Option {
	return Option{func(o *options) {
		o.defaultCharset = term
	}}
}

// WithMaxInflatedBytes bounds the inflated size of deflated data sets
func WithMaxInflatedBytes(n int64) Option {
	return Option{func(o *options) {
		o.maxInflatedBytes = n
	}}
}
