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

package assert_test

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
)

type fakeT struct {
	fatal bytes.Buffer
	error bytes.Buffer
	log   bytes.Buffer
}

func (f *fakeT) Fatal(args ...interface{}) { fmt.Fprintln(&f.fatal, args...) }
func (f *fakeT) Error(args ...interface{}) { fmt.Fprintln(&f.error, args...) }
func (f *fakeT) Log(args ...interface{})   { fmt.Fprintln(&f.log, args...) }

func TestManagerLevels(t *testing.T) {
	fake := &fakeT{}
	assert.To(fake).For("manager test").Log("log to info")
	assert.To(fake).For("manager test").Error("log to error")
	assert.To(fake).For("manager test").Fatal("log to fatal")
	if !strings.HasPrefix(fake.log.String(), "Info:manager test") {
		t.Errorf("Unexpected info output %q", fake.log.String())
	}
	if !strings.HasPrefix(fake.error.String(), "Error:manager test") {
		t.Errorf("Unexpected error output %q", fake.error.String())
	}
	if !strings.HasPrefix(fake.fatal.String(), "Critical:manager test") {
		t.Errorf("Unexpected fatal output %q", fake.fatal.String())
	}
}

func TestBytes(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	if !a.For("same").ThatBytes([]byte{1, 2, 3}).Equals([]byte{1, 2, 3}) {
		t.Errorf("Equal buffers reported as different")
	}
	if a.For("diff").ThatBytes([]byte{1, 2, 3}).Equals([]byte{1, 9, 3}) {
		t.Errorf("Different buffers reported as equal")
	}
	if !strings.Contains(fake.error.String(), "First diff") {
		t.Errorf("Missing diff offset in %q", fake.error.String())
	}
	if !a.For("zero").ThatBytes(make([]byte, 8)).IsZero() {
		t.Errorf("Zero buffer reported as non-zero")
	}
}

func TestErrorCause(t *testing.T) {
	fake := &fakeT{}
	a := assert.To(fake)
	cause := errors.New("cause")
	wrapped := fmt.Errorf("wrapped: %w", cause)
	if !a.For("nil").ThatError(nil).Succeeded() {
		t.Errorf("nil error reported as failure")
	}
	if !a.For("failed").ThatError(wrapped).Failed() {
		t.Errorf("error reported as success")
	}
	if a.For("slice").ThatSlice([]int{1, 2}).Equals([]int{1, 3}) {
		t.Errorf("Different slices reported as equal")
	}
	if fake.fatal.Len() != 0 {
		t.Errorf("Unexpected fatal output %q", fake.fatal.String())
	}
}
