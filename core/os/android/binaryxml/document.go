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
	"context"
	"encoding/xml"
	"io"
	"strings"

	"github.com/jingyan/apkxml/core/log"
	"github.com/jingyan/apkxml/core/text/xmlchars"
	"github.com/pkg/errors"
)

// Attribute is a single name and value pair on an Element.
type Attribute struct {
	Name  string
	Value string
}

// Element is a node of a parsed document.
type Element struct {
	Name       string
	Attributes []Attribute
	Children   []*Element
}

// Attr returns the value of the named attribute.
func (e *Element) Attr(name string) (string, bool) {
	for _, a := range e.Attributes {
		if a.Name == name {
			return a.Value, true
		}
	}
	return "", false
}

// Child returns the first child element with the given name, or nil.
func (e *Element) Child(name string) *Element {
	for _, c := range e.Children {
		if c.Name == name {
			return c
		}
	}
	return nil
}

// ChildrenNamed returns all the child elements with the given name.
func (e *Element) ChildrenNamed(name string) []*Element {
	var out []*Element
	for _, c := range e.Children {
		if c.Name == name {
			out = append(out, c)
		}
	}
	return out
}

// Document returns the decompressed text parsed into an element tree.
// Characters that are not legal in XML are replaced by spaces before
// parsing.
func (d *Decoder) Document(ctx context.Context) (*Element, error) {
	if d.doc != nil {
		return d.doc, nil
	}
	text, err := d.Decompress(ctx)
	if err != nil {
		return nil, err
	}
	doc, err := parseDocument(xmlchars.Strip(text))
	if err != nil {
		return nil, log.Err(ctx, err, "Parsing decompressed XML")
	}
	d.doc = doc
	return doc, nil
}

func parseDocument(text string) (*Element, error) {
	dec := xml.NewDecoder(strings.NewReader(text))
	var root *Element
	stack := []*Element{}
	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}
		switch tok := tok.(type) {
		case xml.StartElement:
			e := &Element{Name: qualified(tok.Name)}
			for _, a := range tok.Attr {
				e.Attributes = append(e.Attributes, Attribute{Name: qualified(a.Name), Value: a.Value})
			}
			if len(stack) == 0 {
				if root != nil {
					return nil, errors.Errorf("Multiple root elements: %s after %s", e.Name, root.Name)
				}
				root = e
			} else {
				parent := stack[len(stack)-1]
				parent.Children = append(parent.Children, e)
			}
			stack = append(stack, e)
		case xml.EndElement:
			stack = stack[:len(stack)-1]
		}
	}
	if root == nil {
		return nil, errors.New("Document has no root element")
	}
	return root, nil
}

func qualified(n xml.Name) string {
	if n.Space == "" {
		return n.Local
	}
	return n.Space + ":" + n.Local
}
