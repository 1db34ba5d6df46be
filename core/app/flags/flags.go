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

// Package flags binds command line flags to variables and struct fields.
package flags

import (
	"flag"
	"fmt"
	"reflect"
	"strings"
	"time"
)

// Set is a set of bound flags.
type Set struct {
	Raw *flag.FlagSet
}

// New returns a Set wrapping a new flag.FlagSet that returns parse errors.
func New(name string) *Set {
	return &Set{Raw: flag.NewFlagSet(name, flag.ContinueOnError)}
}

// Bind uses reflection to bind a flag to value. Structures are walked
// recursively and every exported leaf field gets a flag named
// name-field, where field is the lower case field name or its "name" tag.
// The "help" tag holds the usage text.
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
		fname := strings.ToLower(tf.Name)
		if n := tf.Tag.Get("name"); n != "" {
			fname = n
		}
		if tf.Anonymous {
			fname = ""
		}
		full := fname
		switch {
		case fname == "":
			full = name
		case name != "":
			full = name + "-" + fname
		}
		s.Bind(full, e.Field(i).Addr().Interface(), tf.Tag.Get("help"))
	}
}

// Usage returns the usage text of every bound flag.
func (s *Set) Usage() string {
	b := strings.Builder{}
	s.Raw.VisitAll(func(fl *flag.Flag) {
		name, usage := flag.UnquoteUsage(fl)
		fmt.Fprintf(&b, "  -%s %s\n\t%s", fl.Name, name, usage)
		switch fl.DefValue {
		case "", "0", "false":
		default:
			fmt.Fprintf(&b, " (default %v)", fl.DefValue)
		}
		b.WriteString("\n")
	})
	return b.String()
}

// Parse processes args to fill in the flags.
func (s *Set) Parse(args ...string) error { return s.Raw.Parse(args) }

// Args returns the arguments left over after Parse.
func (s *Set) Args() []string { return s.Raw.Args() }
