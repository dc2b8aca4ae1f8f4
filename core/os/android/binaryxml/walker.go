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
	"strconv"
	"strings"
)

// walker interprets the tag stream record by record, writing one line to
// the emitter for every start and end record.
type walker struct {
	data  []byte
	pool  *stringPool
	out   *emitter
	depth int

	elements int
	skipped  int
}

// firstTag scans forward from the header declared offset, a word at a time,
// for the first start record. If there is none the declared offset is used.
func (w *walker) firstTag(declared int) int {
	for off := declared; off+wordSize < len(w.data); off += wordSize {
		if code, _ := wordAt(w.data, off); code == startTag {
			return off
		}
	}
	return declared
}

// walk processes records from off until the end of document record.
func (w *walker) walk(off int) error {
	for off < len(w.data) {
		code, ok := wordAt(w.data, off)
		if !ok {
			return truncated(off, "tag code")
		}
		var err error
		switch code {
		case startTag:
			off, err = w.start(off)
		case endTag:
			off, err = w.end(off)
		case textTag:
			off, err = w.text(off)
		case endDocTag:
			return nil
		default:
			return &UnrecognizedTagError{Code: code, Offset: off}
		}
		if err != nil {
			return err
		}
	}
	return truncated(off, "end of document record")
}

func (w *walker) start(off int) (int, error) {
	r := readerAt(w.data, off)
	r.Skip(5 * wordSize) // code, unused, line number, unused, namespace
	nameIndex := r.Uint32()
	r.Skip(wordSize) // flags
	attrCount := r.Uint32()
	r.Skip(wordSize)
	if r.Error() != nil {
		return off, truncated(off, "start tag")
	}
	attrOff := off + startTagWords*wordSize
	if uint64(attrCount)*attributeWords*wordSize > uint64(len(w.data)-attrOff) {
		return off, truncated(attrOff, "start tag attributes")
	}

	name, err := w.pool.get(nameIndex)
	if err != nil {
		return off, err
	}
	sb := strings.Builder{}
	sb.WriteString("<")
	sb.WriteString(name)
	for i := 0; i < int(attrCount); i++ {
		r.Skip(wordSize) // namespace
		attrName := r.Uint32()
		attrValue := r.Uint32()
		r.Skip(wordSize) // flags
		resID := r.Uint32()

		key, err := w.pool.get(attrName)
		if err != nil {
			return off, err
		}
		value := ""
		if attrValue != noValue {
			if value, err = w.pool.get(attrValue); err != nil {
				return off, err
			}
		} else {
			value = "0x" + strconv.FormatUint(uint64(resID), 16)
		}
		sb.WriteString(" ")
		sb.WriteString(key)
		sb.WriteString(`="`)
		sb.WriteString(value)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	w.out.line(w.depth, sb.String())
	w.depth++
	w.elements++
	return attrOff + int(attrCount)*attributeWords*wordSize, nil
}

func (w *walker) end(off int) (int, error) {
	nameIndex, ok := wordAt(w.data, off+5*wordSize)
	if !ok || off+endTagWords*wordSize > len(w.data) {
		return off, truncated(off, "end tag")
	}
	w.depth--
	name, err := w.pool.get(nameIndex)
	if err != nil {
		return off, err
	}
	w.out.line(w.depth, "</"+name+">")
	return off + endTagWords*wordSize, nil
}

// text skips a text record. The record holds a resource reference rather
// than literal text. It ends at the first zero word that follows a noValue
// word.
func (w *walker) text(off int) (int, error) {
	start := off
	sawNoValue := false
	for {
		word, ok := wordAt(w.data, off)
		if !ok {
			return off, truncated(start, "text record sentinel")
		}
		off += wordSize
		switch {
		case !sawNoValue && word == noValue:
			sawNoValue = true
		case sawNoValue && word == 0:
			w.skipped++
			return off, nil
		}
	}
}
