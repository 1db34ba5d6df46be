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

package log

import (
	"bytes"
	"fmt"
	"strings"
)

// Style provides customization for printing messages.
type Style struct {
	Name      string        // Name of the style.
	Timestamp bool          // If true, the timestamp will be printed if part of the message.
	Trace     bool          // If true, the trace will be printed if part of the message.
	Severity  SeverityStyle // How the severity of the message will be printed.
	Values    ValueStyle    // How the values of the message will be printed.
}

// SeverityStyle is an enumerator of ways that severities can be printed.
type SeverityStyle int

const (
	// NoSeverity is the option to disable the printing of the severity.
	NoSeverity = SeverityStyle(iota)
	// SeverityShort is the option to display the severity as a single character.
	SeverityShort
	// SeverityLong is the option to display the severity in its full name.
	SeverityLong
)

func (ss SeverityStyle) print(s Severity) string {
	if ss == SeverityShort {
		return s.Short()
	}
	return s.String()
}

// ValueStyle is an enumerator of ways that values can be printed.
type ValueStyle int

const (
	// NoValues is the option to disable the printing of values.
	NoValues = ValueStyle(iota)
	// ValuesSingleLine is the option to display all values on a single line.
	ValuesSingleLine
	// ValuesMultiLine is the option to display each value on a separate line.
	ValuesMultiLine
)

func (vs ValueStyle) print(v Values) string {
	switch vs {
	case ValuesSingleLine:
		t := make([]string, len(v))
		for i, v := range v {
			t[i] = fmt.Sprintf("%v: %v", v.Name, v.Value)
		}
		return fmt.Sprintf("(%v)", strings.Join(t, ", "))
	case ValuesMultiLine:
		buf := bytes.Buffer{}
		for _, v := range v {
			buf.WriteString(fmt.Sprintf("\n  %v: %v", v.Name, v.Value))
		}
		return buf.String()
	}
	return ""
}

func (s Style) String() string { return s.Name }

// Print returns the message m printed using the style s.
func (s Style) Print(m *Message) string {
	buf := bytes.Buffer{}
	if s.Timestamp && !m.Time.IsZero() {
		buf.WriteString(m.Time.Format("15:04:05.000"))
		buf.WriteRune(' ')
	}
	if s.Severity != NoSeverity {
		buf.WriteString(s.Severity.print(m.Severity))
		buf.WriteString(": ")
	}
	if s.Trace && len(m.Trace) > 0 {
		buf.WriteString(traceString(m.Trace))
		buf.WriteString(": ")
	}
	buf.WriteString(m.Text)
	if s.Values != NoValues && len(m.Values) > 0 {
		if s.Values == ValuesSingleLine {
			buf.WriteRune(' ')
		}
		buf.WriteString(s.Values.print(m.Values))
	}
	return buf.String()
}

var (
	// Raw is a style that only prints the text of the message.
	Raw = Style{Name: "raw"}

	// Brief is a style that only prints the text and short severity of the
	// message.
	Brief = Style{
		Name:     "brief",
		Severity: SeverityShort,
	}

	// Normal is a style that prints the timestamp, trace, short severity and
	// single-line values.
	Normal = Style{
		Name:      "normal",
		Timestamp: true,
		Trace:     true,
		Severity:  SeverityShort,
		Values:    ValuesSingleLine,
	}

	// Detailed is a style that prints the timestamp, trace, long severity
	// and multi-line values.
	Detailed = Style{
		Name:      "detailed",
		Timestamp: true,
		Trace:     true,
		Severity:  SeverityLong,
		Values:    ValuesMultiLine,
	}
)

// Styles lists the registered styles, for flag parsing.
var Styles = []Style{Raw, Brief, Normal, Detailed}

// FindStyle returns the style with the given name.
func FindStyle(name string) (Style, bool) {
	for _, s := range Styles {
		if s.Name == name {
			return s, true
		}
	}
	return Normal, false
}
