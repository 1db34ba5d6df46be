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

package assert

import "bytes"

// OnBytes is the result of calling ThatBytes on an Assertion.
// It provides assertion tests for raw byte buffers such as image data.
type OnBytes struct {
	Assertion
	value []byte
}

// ThatBytes returns an OnBytes for byte buffer assertions.
func (a Assertion) ThatBytes(value []byte) OnBytes {
	return OnBytes{Assertion: a, value: value}
}

// Equals asserts that the buffer holds exactly the expected bytes.
// On mismatch only the first differing offset and a window around it are
// printed.
func (o OnBytes) Equals(expect []byte) bool {
	if bytes.Equal(o.value, expect) {
		return true
	}
	i := 0
	for i < len(o.value) && i < len(expect) && o.value[i] == expect[i] {
		i++
	}
	o.Add("Length", len(o.value))
	o.Add("Expect length", len(expect))
	o.Add("First diff", i)
	o.Add("Got", window(o.value, i))
	o.Add("Expect", window(expect, i))
	return o.Test(false)
}

// IsZero asserts that every byte of the buffer is zero.
func (o OnBytes) IsZero() bool {
	for i, b := range o.value {
		if b != 0 {
			o.Add("Non-zero at", i)
			o.Add("Got", window(o.value, i))
			return o.Test(false)
		}
	}
	return true
}

// IsLength asserts that the buffer has exactly length bytes.
func (o OnBytes) IsLength(length int) bool {
	return o.Compare(len(o.value), "length ==", length).Test(len(o.value) == length)
}

func window(b []byte, at int) []byte {
	start, end := at-4, at+12
	if start < 0 {
		start = 0
	}
	if end > len(b) {
		end = len(b)
	}
	if start > end {
		return nil
	}
	return b[start:end]
}
