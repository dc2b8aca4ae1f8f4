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
	"strings"
	"unicode/utf16"

	"github.com/jingyan/apkxml/core/app/flags"
)

// StringDecoding selects how string pool entries are turned into text.
type StringDecoding int

const (
	// LowByteStrings reads the low byte of the length and of every code unit,
	// mapping each byte to the Latin-1 character of the same value.
	LowByteStrings StringDecoding = iota
	// UTF16Strings decodes the full length and every UTF-16 code unit.
	UTF16Strings
)

func (s StringDecoding) String() string {
	switch s {
	case LowByteStrings:
		return "lowbyte"
	case UTF16Strings:
		return "utf16"
	default:
		return ""
	}
}

// Choose sets the decoding from a command line choice.
func (s *StringDecoding) Choose(v interface{}) { *s = v.(StringDecoding) }

// Chooser returns a flags.Chooser over the string decodings.
func (s *StringDecoding) Chooser() flags.Chooser { return flags.ForEnum(s) }

// stringPool resolves string indices against the index table and data region
// described by the chunk header.
type stringPool struct {
	data       []byte
	dataOffset int
	decoding   StringDecoding
}

func newStringPool(data []byte, h header, decoding StringDecoding) *stringPool {
	return &stringPool{data: data, dataOffset: h.stringDataOffset, decoding: decoding}
}

// absent reports whether index refers to no string at all. Indices that are
// negative as a signed 32 bit value are absent.
func absent(index uint32) bool { return int32(index) < 0 }

// get returns the string at index. An absent string renders as the empty
// string, so a tag or attribute with no name still produces output.
func (p *stringPool) get(index uint32) (string, error) {
	if absent(index) {
		return "", nil
	}
	entry := stringIndexTableOffset + int(index)*wordSize
	rel, ok := wordAt(p.data, entry)
	if !ok {
		return "", truncated(entry, "string index")
	}
	off := p.dataOffset + int(rel)
	if p.decoding == UTF16Strings {
		return p.utf16At(off)
	}
	return p.lowBytesAt(off)
}

func (p *stringPool) lowBytesAt(off int) (string, error) {
	r := readerAt(p.data, off)
	length := int(r.Uint16() & 0xff)
	if r.Error() != nil {
		return "", truncated(off, "string length")
	}
	if len(p.data)-(off+2) < length*2 {
		return "", truncated(off, "string data")
	}
	sb := strings.Builder{}
	sb.Grow(length)
	for i := 0; i < length; i++ {
		sb.WriteRune(rune(r.Uint16() & 0xff))
	}
	return sb.String(), nil
}

func (p *stringPool) utf16At(off int) (string, error) {
	r := readerAt(p.data, off)
	start := off + 2
	length := int(r.Uint16())
	if length&0x8000 != 0 {
		length = (length&0x7fff)<<16 | int(r.Uint16())
		start += 2
	}
	if r.Error() != nil {
		return "", truncated(off, "string length")
	}
	if len(p.data)-start < length*2 {
		return "", truncated(off, "string data")
	}
	units := make([]uint16, length)
	for i := range units {
		units[i] = r.Uint16()
	}
	return string(utf16.Decode(units)), nil
}
