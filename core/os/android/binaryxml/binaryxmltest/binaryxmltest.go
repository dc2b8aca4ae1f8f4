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

// Package binaryxmltest builds binary XML chunks for tests.
package binaryxmltest

import (
	"bytes"
	"unicode/utf16"

	"github.com/jingyan/apkxml/core/data/binary"
	"github.com/jingyan/apkxml/core/data/endian"
)

// Record codes.
const (
	EndDocTag  = 0x00100101
	StartTag   = 0x00100102
	EndTag     = 0x00100103
	TextTag    = 0x00100104
	StartNSTag = 0x00100100
	NoValue    = 0xffffffff
)

const headerBytes = 0x24

// Attr is an attribute of a start record.
type Attr struct {
	name  string
	value string
	resID uint32
	typed bool
}

// String returns an attribute with a string pool value.
func String(name, value string) Attr { return Attr{name: name, value: value} }

// Typed returns an attribute with no string value, rendered from id.
func Typed(name string, id uint32) Attr { return Attr{name: name, resID: id, typed: true} }

// Chunk assembles a binary XML buffer: the fixed header, the string pool and
// the tag stream.
type Chunk struct {
	strings []string
	index   map[string]uint32
	padding int
	stream  bytes.Buffer
	w       binary.Writer
	line    uint32

	streamStart int
}

// New returns an empty chunk.
func New() *Chunk {
	c := &Chunk{index: map[string]uint32{}}
	c.w = endian.Writer(&c.stream, endian.Little)
	return c
}

// Str adds s to the string pool if needed and returns its index.
func (c *Chunk) Str(s string) uint32 {
	if i, ok := c.index[s]; ok {
		return i
	}
	i := uint32(len(c.strings))
	c.strings = append(c.strings, s)
	c.index[s] = i
	return i
}

// Pad puts n words between the header declared tag stream offset and the
// first record.
func (c *Chunk) Pad(n int) *Chunk {
	c.padding = n
	return c
}

// Word writes a raw word to the tag stream.
func (c *Chunk) Word(v uint32) *Chunk {
	c.w.Uint32(v)
	return c
}

// Offset returns the absolute offset of the byte at streamOffset in the
// tag stream. It is only valid after Build.
func (c *Chunk) Offset(streamOffset int) int {
	return c.streamStart + streamOffset
}

// Start writes a start record.
func (c *Chunk) Start(name string, attrs ...Attr) *Chunk {
	c.line++
	c.w.Uint32(StartTag)
	c.w.Uint32(0x00100014)
	c.w.Uint32(c.line)
	c.w.Uint32(NoValue)
	c.w.Uint32(NoValue)
	c.w.Uint32(c.Str(name))
	c.w.Uint32(0x00140014)
	c.w.Uint32(uint32(len(attrs)))
	c.w.Uint32(0)
	for _, a := range attrs {
		c.w.Uint32(NoValue)
		c.w.Uint32(c.Str(a.name))
		if a.typed {
			c.w.Uint32(NoValue)
			c.w.Uint32(0x10000008)
			c.w.Uint32(a.resID)
		} else {
			v := c.Str(a.value)
			c.w.Uint32(v)
			c.w.Uint32(0x03000008)
			c.w.Uint32(v)
		}
	}
	return c
}

// End writes an end record.
func (c *Chunk) End(name string) *Chunk {
	c.line++
	c.w.Uint32(EndTag)
	c.w.Uint32(0x00100010)
	c.w.Uint32(c.line)
	c.w.Uint32(NoValue)
	c.w.Uint32(NoValue)
	c.w.Uint32(c.Str(name))
	return c
}

// Text writes a text record that references resource data.
func (c *Chunk) Text() *Chunk {
	c.line++
	c.w.Uint32(TextTag)
	c.w.Uint32(0x001c0010)
	c.w.Uint32(c.line)
	c.w.Uint32(NoValue)
	c.w.Uint32(0x00000005)
	c.w.Uint32(0x00000008)
	c.w.Uint32(0x00000000)
	return c
}

// EndDoc writes the end of document record.
func (c *Chunk) EndDoc() *Chunk {
	c.w.Uint32(EndDocTag)
	c.w.Uint32(0x00000008)
	return c
}

// Build returns the complete chunk.
func (c *Chunk) Build() []byte {
	pool := &bytes.Buffer{}
	pw := endian.Writer(pool, endian.Little)
	offsets := make([]uint32, len(c.strings))
	for i, s := range c.strings {
		offsets[i] = uint32(pool.Len())
		units := utf16.Encode([]rune(s))
		pw.Uint16(uint16(len(units)))
		for _, u := range units {
			pw.Uint16(u)
		}
		pw.Uint16(0)
	}
	for pool.Len()%4 != 0 {
		pw.Uint8(0)
	}

	declared := headerBytes + len(offsets)*4 + pool.Len()
	c.streamStart = declared + c.padding*4
	total := c.streamStart + c.stream.Len()

	out := &bytes.Buffer{}
	w := endian.Writer(out, endian.Little)
	w.Uint32(0x00080003)
	w.Uint32(uint32(total))
	w.Uint32(0x001c0001)
	w.Uint32(uint32(declared))
	w.Uint32(uint32(len(offsets)))
	w.Uint32(0)
	w.Uint32(0)
	w.Uint32(0)
	w.Uint32(0)
	for _, o := range offsets {
		w.Uint32(o)
	}
	w.Data(pool.Bytes())
	for i := 0; i < c.padding; i++ {
		// Resource map and namespace records that precede the first element.
		switch i % 3 {
		case 0:
			w.Uint32(StartNSTag)
		case 1:
			w.Uint32(0x00000018)
		default:
			w.Uint32(0x7f010000)
		}
	}
	w.Data(c.stream.Bytes())
	return out.Bytes()
}
