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

import "strings"

const (
	// Declaration is the first line of every decompressed document.
	Declaration = `<?xml version="1.0" encoding="UTF-8"?>`

	// DefaultIndentLimit is the widest indentation, in spaces, that any line
	// is given.
	DefaultIndentLimit = 45

	lineEnd = "\r\n"
)

// indentPrefix returns the run of spaces that starts a line at depth.
// Negative depths are treated as zero.
func indentPrefix(depth, limit int) string {
	if depth < 0 {
		depth = 0
	}
	width := depth * 2
	if width > limit {
		width = limit
	}
	return strings.Repeat(" ", width)
}

// emitter accumulates the output document one indented line at a time.
type emitter struct {
	sb    strings.Builder
	limit int
	lines int
}

func newEmitter(limit int) *emitter {
	e := &emitter{limit: limit}
	e.sb.WriteString(Declaration)
	e.sb.WriteString(lineEnd)
	return e
}

func (e *emitter) line(depth int, content string) {
	e.sb.WriteString(indentPrefix(depth, e.limit))
	e.sb.WriteString(content)
	e.sb.WriteString(lineEnd)
	e.lines++
}

func (e *emitter) String() string { return e.sb.String() }
