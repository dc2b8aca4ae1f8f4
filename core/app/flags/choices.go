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

package flags

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
)

type (
	// Choice is something that represents a value of an enumerated type.
	Choice interface {
		String() string
	}

	// Choices is the set of values an enumerated flag accepts.
	Choices []Choice

	// Enum is an enumerated value. Anything that implements Enum can be bound
	// directly as a flag.
	Enum interface {
		// String represents the current value, used for choice matching.
		String() string
		// Choose is handed the value to set from the Choices list.
		Choose(interface{})
	}

	// Choosable is a type that can return a Chooser for itself.
	Choosable interface {
		Chooser() Chooser
	}

	// Chooser selects from amongst a set of choices.
	// It conforms to the flag.Value interface.
	Chooser struct {
		// Value is the value we are choosing for.
		Value Enum
		// Choices is the full set of choices available.
		Choices Choices
	}
)

func (c Chooser) String() string {
	if c.Value == nil {
		return ""
	}
	return c.Value.String()
}

// Set chooses the entry of Choices whose name matches value, ignoring case.
func (c Chooser) Set(value string) error {
	for _, e := range c.Choices {
		if strings.EqualFold(e.String(), value) {
			c.Value.Choose(e)
			return nil
		}
	}
	return fmt.Errorf("Unknown value %q, valid options are: %s", value, c.Choices)
}

func (c Choices) String() string {
	names := make([]string, len(c))
	for i, e := range c {
		names[i] = strconv.Quote(e.String())
	}
	return strings.Join(names, ", ")
}

// ForEnum builds a Chooser for an integer enumeration by walking its values
// from zero until String stops returning a name.
func ForEnum(v Enum) Chooser {
	t := reflect.ValueOf(v).Elem().Type()
	c := Chooser{Value: v}
	for i := 0; i < 1000; i++ {
		ptr := reflect.New(t).Elem()
		switch ptr.Kind() {
		default:
			panic("Invalid enum kind")
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			ptr.SetInt(int64(i))
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
			ptr.SetUint(uint64(i))
		}
		e := ptr.Interface().(Choice)
		name := e.String()
		if name == strconv.Itoa(i) || name == "" {
			return c
		}
		c.Choices = append(c.Choices, e)
	}
	return c
}
