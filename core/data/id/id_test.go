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

package id_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/id"
)

func TestOfBytes(t *testing.T) {
	assert := assert.To(t)
	// sha1("abc")
	const expect = "a9993e364706816aba3e25717850c26c9cd0d89d"
	got := id.OfBytes([]byte("a"), []byte("bc"))
	assert.For("hash").ThatString(got.String()).Equals(expect)
	assert.For("valid").ThatBoolean(got.IsValid()).IsTrue()
	assert.For("zero").ThatBoolean(id.ID{}.IsValid()).IsFalse()

	parsed, err := id.Parse(expect)
	assert.For("parse").ThatError(err).Succeeded()
	assert.For("parsed").That(parsed).Equals(got)

	_, err = id.Parse("abcd")
	assert.For("short").ThatError(err).Failed()
	_, err = id.Parse("not hex")
	assert.For("bad").ThatError(err).Failed()
}
