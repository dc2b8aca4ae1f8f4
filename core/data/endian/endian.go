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

// Package endian provides binary.Reader and binary.Writer implementations
// for a fixed byte order.
package endian

import (
	eb "encoding/binary"
	"io"

	"github.com/jingyan/apkxml/core/data/binary"
)

// Endian is a byte order.
type Endian int

const (
	// Little stores the least significant byte first.
	Little Endian = iota
	// Big stores the most significant byte first.
	Big
)

func (e Endian) String() string {
	switch e {
	case Little:
		return "Little"
	case Big:
		return "Big"
	default:
		return "Unknown"
	}
}

func byteOrder(e Endian) eb.ByteOrder {
	if e == Big {
		return eb.BigEndian
	}
	return eb.LittleEndian
}

// Reader creates a binary.Reader that reads from the provided io.Reader, with
// the specified byte order.
func Reader(r io.Reader, e Endian) binary.Reader {
	return &reader{reader: r, byteOrder: byteOrder(e)}
}

// Writer creates a binary.Writer that writes to the supplied stream, with the
// specified byte order.
func Writer(w io.Writer, e Endian) binary.Writer {
	return &writer{writer: w, byteOrder: byteOrder(e)}
}

type reader struct {
	reader    io.Reader
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

type writer struct {
	writer    io.Writer
	tmp       [8]byte
	byteOrder eb.ByteOrder
	err       error
}

func (r *reader) Read(p []byte) (n int, err error) {
	return r.reader.Read(p)
}

func (r *reader) fill(n int) []byte {
	if r.err != nil {
		return nil
	}
	b := r.tmp[:n]
	if _, err := io.ReadFull(r.reader, b); err != nil {
		r.err = err
		return nil
	}
	return b
}

func (r *reader) Data(p []byte) {
	if r.err != nil {
		return
	}
	_, r.err = io.ReadFull(r.reader, p)
}

func (r *reader) Skip(n int) {
	if r.err != nil || n <= 0 {
		return
	}
	copied, err := io.CopyN(io.Discard, r.reader, int64(n))
	if err == nil && copied != int64(n) {
		err = io.ErrUnexpectedEOF
	}
	if err == io.EOF {
		err = io.ErrUnexpectedEOF
	}
	r.err = err
}

func (r *reader) Uint8() uint8 {
	if b := r.fill(1); b != nil {
		return b[0]
	}
	return 0
}

func (r *reader) Uint16() uint16 {
	if b := r.fill(2); b != nil {
		return r.byteOrder.Uint16(b)
	}
	return 0
}

func (r *reader) Int32() int32 {
	return int32(r.Uint32())
}

func (r *reader) Uint32() uint32 {
	if b := r.fill(4); b != nil {
		return r.byteOrder.Uint32(b)
	}
	return 0
}

func (r *reader) Error() error {
	return r.err
}

func (r *reader) SetError(err error) {
	if r.err != nil {
		return
	}
	r.err = err
}

func (w *writer) Data(data []byte) {
	if w.err != nil {
		return
	}
	n, err := w.writer.Write(data)
	if err != nil {
		w.err = err
	} else if n != len(data) {
		w.err = io.ErrShortWrite
	}
}

func (w *writer) Uint8(v uint8) {
	w.tmp[0] = v
	w.Data(w.tmp[:1])
}

func (w *writer) Uint16(v uint16) {
	w.byteOrder.PutUint16(w.tmp[:], v)
	w.Data(w.tmp[:2])
}

func (w *writer) Int32(v int32) {
	w.Uint32(uint32(v))
}

func (w *writer) Uint32(v uint32) {
	w.byteOrder.PutUint32(w.tmp[:], v)
	w.Data(w.tmp[:4])
}

func (w *writer) Error() error {
	return w.err
}

func (w *writer) SetError(err error) {
	if w.err != nil {
		return
	}
	w.err = err
}
