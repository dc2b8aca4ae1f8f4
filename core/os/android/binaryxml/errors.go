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

package binaryxml

import (
	"fmt"

	"github.com/jingyan/apkxml/core/fault"
	"github.com/pkg/errors"
)

// ErrTruncatedInput is the cause of every failure where the buffer ended
// before a record, string or sentinel was complete.
const ErrTruncatedInput = fault.Const("Truncated binary XML input")

// UnrecognizedTagError is returned when the tag stream holds a word that is
// not one of the known record codes.
type UnrecognizedTagError struct {
	// Code is the word that was read.
	Code uint32
	// Offset is the byte offset of the word in the buffer.
	Offset int
}

func (e *UnrecognizedTagError) Error() string {
	return fmt.Sprintf("Unrecognized tag code 0x%x at offset %d", e.Code, e.Offset)
}

func truncated(offset int, what string) error {
	return errors.Wrapf(ErrTruncatedInput, "%s at offset %d", what, offset)
}
