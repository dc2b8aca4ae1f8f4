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

// Package flags binds tagged structs and enumerations to command line flags.
package flags

import (
	"flag"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Set is a set of bound command line flags.
type Set struct {
	// Raw is the underlying flag set.
	Raw flag.FlagSet
}

// Bind adds value to the set under name.
//
// Pointers to the basic flag types, flag.Value, Choosable and Enum values
// are bound directly. A pointer to a struct binds each exported field,
// named after the lower-cased field name prefixed by name. Field tags
// `name:"..."` override the field part of the name, `fullname:"..."`
// overrides the whole name, and `help:"..."` sets the usage text.
func (s *Set) Bind(name string, value interface{}, help string) {
	switch val := value.(type) {
	case *bool:
		s.Raw.BoolVar(val, name, *val, help)
		return
	case *int:
		s.Raw.IntVar(val, name, *val, help)
		return
	case *int64:
		s.Raw.Int64Var(val, name, *val, help)
		return
	case *uint:
		s.Raw.UintVar(val, name, *val, help)
		return
	case *uint64:
		s.Raw.Uint64Var(val, name, *val, help)
		return
	case *float64:
		s.Raw.Float64Var(val, name, *val, help)
		return
	case *string:
		s.Raw.StringVar(val, name, *val, help)
		return
	case *time.Duration:
		s.Raw.DurationVar(val, name, *val, help)
		return
	case Choosable:
		chooser := val.Chooser()
		s.Raw.Var(chooser, name, fmt.Sprintf("%s [one of: %s]", help, chooser.Choices))
		return
	case Enum:
		chooser := ForEnum(val)
		s.Raw.Var(chooser, name, fmt.Sprintf("%s [one of: %s]", help, chooser.Choices))
		return
	case flag.Value:
		s.Raw.Var(val, name, help)
		return
	}

	rv := reflect.ValueOf(value)
	if rv.Kind() != reflect.Ptr || rv.Elem().Kind() != reflect.Struct {
		panic(fmt.Sprintf("Unhandled flag type: %v", rv.Type()))
	}
	e := rv.Elem()
	t := e.Type()
	for i := 0; i < e.NumField(); i++ {
		tf := t.Field(i)
		if tf.PkgPath != "" {
			continue // Unexported.
		}
		field := e.Field(i)
		fname := strings.ToLower(tf.Name)
		if tf.Anonymous {
			fname = ""
		}
		if partial := tf.Tag.Get("name"); partial != "" {
			fname = partial
		}
		fullname := tf.Tag.Get("fullname")
		switch {
		case fullname != "":
		case fname == "":
			fullname = name
		case name == "":
			fullname = fname
		default:
			fullname = name + "-" + fname
		}
		s.Bind(fullname, field.Addr().Interface(), tf.Tag.Get("help"))
	}
}

// Usage returns the usage string for the flags.
func (s *Set) Usage() string {
	result := ""
	s.Raw.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		if result != "" {
			result += "\n"
		}
		result += fmt.Sprintf("  -%s %s\n\t%s", fl.Name, name, usage)
		switch fl.DefValue {
		case "", "false", "0":
		default:
			result += fmt.Sprintf(" (default %v)", fl.DefValue)
		}
	})
	return result
}

// Parse processes the args to fill in the flags.
// see flag.Parse for more details.
func (s *Set) Parse(args ...string) error {
	return s.Raw.Parse(args)
}

// Args returns the unprocessed part of the command line passed to Parse.
func (s *Set) Args() []string {
	return s.Raw.Args()
}
