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

// Severity defines the severity of a logging message.
type Severity int

const (
	// Debug is the severity used for verbose messages only useful when
	// investigating a problem with a snapshot or restore.
	Debug Severity = iota
	// Info is the severity used for informational messages.
	Info
	// Warning is the severity used for driver inconsistencies that were
	// worked around.
	Warning
	// Error is the severity used for failures of the current operation.
	Error
	// Fatal is the severity used for failures the process cannot continue from.
	Fatal
)

// String returns the full name of the severity.
func (s Severity) String() string {
	switch s {
	case Debug:
		return "Debug"
	case Info:
		return "Info"
	case Warning:
		return "Warning"
	case Error:
		return "Error"
	case Fatal:
		return "Fatal"
	default:
		return "Unknown"
	}
}

// Short returns the severity as a single character.
func (s Severity) Short() string {
	switch s {
	case Debug:
		return "D"
	case Info:
		return "I"
	case Warning:
		return "W"
	case Error:
		return "E"
	case Fatal:
		return "F"
	default:
		return "?"
	}
}

// ParseSeverity returns the Severity with the given full or short name.
func ParseSeverity(name string) (Severity, bool) {
	for s := Debug; s <= Fatal; s++ {
		if name == s.String() || name == s.Short() {
			return s, true
		}
	}
	return Info, false
}
