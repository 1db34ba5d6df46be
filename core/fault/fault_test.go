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

package fault_test

import (
	"errors"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/fault"
)

const (
	errA = fault.Const("a failed")
	errB = fault.Const("b failed")
)

func TestList(t *testing.T) {
	assert := assert.To(t)
	l := fault.List{}
	assert.For("empty").ThatError(l.Err()).Succeeded()
	l.Collect(nil)
	l.Collect(errA)
	l.Collect(errB)
	assert.For("len").ThatSlice(l).IsLength(2)
	assert.For("first").ThatError(l.First()).Equals(errA)
	assert.For("joined").ThatString(l.Err().Error()).Equals("a failed\nb failed")
	assert.For("is b").ThatBoolean(errors.Is(l.Err(), errB)).IsTrue()
}

func TestOne(t *testing.T) {
	assert := assert.To(t)
	o := fault.One{}
	assert.For("empty").ThatError(o.First()).Succeeded()
	o.Collect(errA)
	o.Collect(errB)
	assert.For("first").ThatError(o.First()).Equals(errA)
}
