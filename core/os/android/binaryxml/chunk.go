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
	"bytes"

	"github.com/jingyan/apkxml/core/data/binary"
	"github.com/jingyan/apkxml/core/data/endian"
)

// Tag codes that lead every record in the tag stream.
const (
	endDocTag = 0x00100101
	startTag  = 0x00100102
	endTag    = 0x00100103
	textTag   = 0x00100104
)

const (
	wordSize = 4

	tagStreamOffsetAt      = 3 * wordSize
	stringCountAt          = 4 * wordSize
	stringIndexTableOffset = 0x24

	startTagWords  = 9
	endTagWords    = 6
	attributeWords = 5

	// noValue marks an attribute without a string value, and is the first
	// sentinel of a text record.
	noValue = 0xffffffff
)

// header holds the fixed-offset fields at the start of the chunk.
type header struct {
	tagStreamOffset  int
	stringCount      int
	stringDataOffset int
}

func readHeader(data []byte) (header, error) {
	r := readerAt(data, tagStreamOffsetAt)
	tagStream := r.Uint32()
	count := r.Uint32()
	if r.Error() != nil {
		return header{}, truncated(tagStreamOffsetAt, "header")
	}
	return header{
		tagStreamOffset:  int(tagStream),
		stringCount:      int(count),
		stringDataOffset: stringIndexTableOffset + int(count)*wordSize,
	}, nil
}

// readerAt returns a little-endian reader positioned at offset off of data.
// Offsets beyond the buffer produce a reader that is already exhausted.
func readerAt(data []byte, off int) binary.Reader {
	if off < 0 || off > len(data) {
		off = len(data)
	}
	return endian.Reader(bytes.NewReader(data[off:]), endian.Little)
}

// wordAt reads the little-endian word at off.
func wordAt(data []byte, off int) (uint32, bool) {
	if off < 0 || off+wordSize > len(data) {
		return 0, false
	}
	r := readerAt(data, off)
	return r.Uint32(), true
}
