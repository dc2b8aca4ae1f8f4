// Copyright (C) 2017 Google Inc.
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

package manifest

import (
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Int is an integer attribute. Decompressed manifests render typed integers
// as 0x prefixed hex, so both that and plain decimal are accepted.
type Int int64

// UnmarshalText implements encoding.TextUnmarshaler.
func (i *Int) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if hex := strings.TrimPrefix(strings.ToLower(s), "0x"); len(hex) != len(s) {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return errors.Wrapf(err, "Parsing integer attribute %q", s)
		}
		*i = Int(int32(v))
		return nil
	}
	v, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return errors.Wrapf(err, "Parsing integer attribute %q", s)
	}
	*i = Int(v)
	return nil
}

// Bool is a boolean attribute. Decompressed manifests render typed booleans
// as 0x prefixed hex, where any non-zero value is true.
type Bool bool

// UnmarshalText implements encoding.TextUnmarshaler.
func (b *Bool) UnmarshalText(text []byte) error {
	s := strings.TrimSpace(string(text))
	if hex := strings.TrimPrefix(strings.ToLower(s), "0x"); len(hex) != len(s) {
		v, err := strconv.ParseUint(hex, 16, 32)
		if err != nil {
			return errors.Wrapf(err, "Parsing boolean attribute %q", s)
		}
		*b = v != 0
		return nil
	}
	v, err := strconv.ParseBool(s)
	if err != nil {
		return errors.Wrapf(err, "Parsing boolean attribute %q", s)
	}
	*b = Bool(v)
	return nil
}
