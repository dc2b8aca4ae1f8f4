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

// Package binaryxml decompresses the binary XML chunks that Android stores
// in compiled application packages, such as AndroidManifest.xml, back into
// indented XML text.
//
// The chunk starts with a fixed header that gives the offset of the tag
// stream and the number of strings in the pool. The tag stream is a
// sequence of little-endian records: start tags with their attributes, end
// tags, text references and a final end of document record.
package binaryxml

import (
	"context"

	"github.com/jingyan/apkxml/core/log"
)

// Config controls how a chunk is turned into text.
// The zero value is the default configuration.
type Config struct {
	// Strings selects how string pool entries are decoded.
	Strings StringDecoding
	// IndentLimit caps the indentation of a line, in spaces.
	// Zero means DefaultIndentLimit.
	IndentLimit int
}

func (c Config) indentLimit() int {
	if c.IndentLimit <= 0 {
		return DefaultIndentLimit
	}
	return c.IndentLimit
}

// Decoder decompresses a single binary XML buffer.
// The text and document are each computed at most once and then cached.
// Failures are not cached, so a failed call may be retried.
// A Decoder is not safe for concurrent use.
type Decoder struct {
	data []byte
	cfg  Config
	text *string
	doc  *Element
}

// New returns a Decoder for data. The buffer must not be modified until
// the first successful call to Decompress.
func New(data []byte, cfg Config) *Decoder {
	return &Decoder{data: data, cfg: cfg}
}

// Decode decompresses data with the default configuration.
func Decode(ctx context.Context, data []byte) (string, error) {
	return New(data, Config{}).Decompress(ctx)
}

// Decompress returns the XML text for the buffer.
func (d *Decoder) Decompress(ctx context.Context) (string, error) {
	if d.text != nil {
		return *d.text, nil
	}
	text, err := decompress(ctx, d.data, d.cfg)
	if err != nil {
		return "", log.Err(ctx, err, "Decompressing binary XML")
	}
	d.text = &text
	return text, nil
}

func decompress(ctx context.Context, data []byte, cfg Config) (string, error) {
	ctx = log.Enter(ctx, "Decompress")
	h, err := readHeader(data)
	if err != nil {
		return "", err
	}
	w := &walker{
		data: data,
		pool: newStringPool(data, h, cfg.Strings),
		out:  newEmitter(cfg.indentLimit()),
	}
	off := w.firstTag(h.tagStreamOffset)
	log.D(ctx, "Tag stream at offset %d (declared %d), %d strings, %v decoding",
		off, h.tagStreamOffset, h.stringCount, cfg.Strings)
	if err := w.walk(off); err != nil {
		return "", err
	}
	if w.depth != 0 {
		log.W(ctx, "Document ended at depth %d", w.depth)
	}
	log.D(ctx, "Decoded %d elements into %d lines, skipped %d text records",
		w.elements, w.out.lines, w.skipped)
	return w.out.String(), nil
}
