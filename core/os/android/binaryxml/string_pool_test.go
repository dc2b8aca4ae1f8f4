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
	"testing"

	"github.com/jingyan/apkxml/core/assert"
	"github.com/jingyan/apkxml/core/data/endian"
	"github.com/jingyan/apkxml/core/log"
)

// poolData builds a header and string pool holding the given raw entries.
// Each entry is written verbatim, so tests control the length prefix.
func poolData(entries ...[]uint16) ([]byte, header) {
	pool := &bytes.Buffer{}
	pw := endian.Writer(pool, endian.Little)
	offsets := []uint32{}
	for _, e := range entries {
		offsets = append(offsets, uint32(pool.Len()))
		for _, u := range e {
			pw.Uint16(u)
		}
	}
	buf := &bytes.Buffer{}
	w := endian.Writer(buf, endian.Little)
	for i := 0; i < 9; i++ {
		w.Uint32(0)
	}
	for _, o := range offsets {
		w.Uint32(o)
	}
	w.Data(pool.Bytes())
	data := buf.Bytes()
	return data, header{stringCount: len(entries), stringDataOffset: stringIndexTableOffset + len(entries)*wordSize}
}

func TestStringPoolLowByte(t *testing.T) {
	ctx := log.Testing(t)
	data, h := poolData(
		[]uint16{3, 'a', 'b', 'c', 0},
		[]uint16{0x0102, 'x', 'y', 0},  // only the low byte of the length counts
		[]uint16{2, 0x4e2d, 0x00e9, 0}, // high bytes are dropped
	)
	p := newStringPool(data, h, LowByteStrings)
	for _, test := range []struct {
		index  uint32
		expect string
	}{
		{0, "abc"},
		{1, "xy"},
		{2, "-é"},
		{0xffffffff, ""},
		{0x80000000, ""},
	} {
		got, err := p.get(test.index)
		assert.For(ctx, "err %d", test.index).ThatError(err).Succeeded()
		assert.For(ctx, "string %d", test.index).ThatString(got).Equals(test.expect)
	}
}

func TestAbsentStringIndex(t *testing.T) {
	ctx := log.Testing(t)
	data, h := poolData([]uint16{1, 'a', 0})
	p := newStringPool(data, h, LowByteStrings)
	for _, test := range []struct {
		index  uint32
		absent bool
	}{
		{0, false},
		{0x7fffffff, false},
		{0x80000000, true},
		{0xffffffff, true},
	} {
		assert.For(ctx, "absent(0x%x)", test.index).That(absent(test.index)).Equals(test.absent)
	}
	_, err := p.get(0x7fffffff)
	assert.For(ctx, "largest index").ThatError(err).HasCause(ErrTruncatedInput)
}

func TestStringPoolUTF16(t *testing.T) {
	ctx := log.Testing(t)
	data, h := poolData(
		[]uint16{2, 0x4e2d, 0x6587, 0},
		[]uint16{2, 0xd83d, 0xde00, 0},
		[]uint16{0x8000, 0x0001, 'z', 0},
	)
	p := newStringPool(data, h, UTF16Strings)
	for _, test := range []struct {
		index  uint32
		expect string
	}{
		{0, "中文"},
		{1, "\U0001F600"},
		{2, "z"},
	} {
		got, err := p.get(test.index)
		assert.For(ctx, "err %d", test.index).ThatError(err).Succeeded()
		assert.For(ctx, "string %d", test.index).ThatString(got).Equals(test.expect)
	}
}

func TestStringPoolOutOfRange(t *testing.T) {
	ctx := log.Testing(t)
	data, h := poolData([]uint16{40, 'a', 'b'})
	for _, decoding := range []StringDecoding{LowByteStrings, UTF16Strings} {
		p := newStringPool(data, h, decoding)
		_, err := p.get(0)
		assert.For(ctx, "%v long string", decoding).ThatError(err).HasCause(ErrTruncatedInput)
		_, err = p.get(1000)
		assert.For(ctx, "%v index past table", decoding).ThatError(err).HasCause(ErrTruncatedInput)
	}
}

func TestIndentPrefix(t *testing.T) {
	ctx := log.Testing(t)
	for _, test := range []struct {
		depth, limit, expect int
	}{
		{0, 45, 0},
		{1, 45, 2},
		{22, 45, 44},
		{23, 45, 45},
		{100, 45, 45},
		{-1, 45, 0},
		{-30, 45, 0},
		{3, 4, 4},
	} {
		got := indentPrefix(test.depth, test.limit)
		assert.For(ctx, "indent(%d, %d)", test.depth, test.limit).ThatInteger(len(got)).Equals(test.expect)
		assert.For(ctx, "spaces(%d, %d)", test.depth, test.limit).ThatString(got).DoesNotContain("\t")
	}
}

func TestEmitter(t *testing.T) {
	ctx := log.Testing(t)
	e := newEmitter(DefaultIndentLimit)
	e.line(0, "<a>")
	e.line(1, "<b/>")
	e.line(0, "</a>")
	assert.For(ctx, "text").ThatString(e.String()).Equals(
		"<?xml version=\"1.0\" encoding=\"UTF-8\"?>\r\n<a>\r\n  <b/>\r\n</a>\r\n")
	assert.For(ctx, "lines").ThatInteger(e.lines).Equals(3)
}

func TestStringDecodingChoices(t *testing.T) {
	ctx := log.Testing(t)
	s := LowByteStrings
	c := s.Chooser()
	assert.For(ctx, "choices").ThatInteger(len(c.Choices)).Equals(2)
	assert.For(ctx, "set").ThatError(c.Set("UTF16")).Succeeded()
	assert.For(ctx, "value").That(s).Equals(UTF16Strings)
}
