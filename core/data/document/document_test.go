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

package document_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/document"
)

func build() *document.Node {
	n := document.New()
	n.SetString("name", "texture")
	n.SetBool("valid", true)
	n.SetInt("width", -4)
	n.SetUint("handle", 1<<40)
	n.SetFloat("lod", 0.25)
	child := n.AddNode("params")
	child.SetInt("GL_TEXTURE_MIN_FILTER", 0x2601)
	arr := n.AddArray("levels")
	arr.AddInt(3)
	arr.AddString("blob_0")
	arr.AddBool(false)
	arr.AddNode().SetString("face", "+x")
	return n
}

func TestAccessors(t *testing.T) {
	assert := assert.To(t)
	n := build()
	s, err := n.GetString("name")
	assert.For("string").ThatError(err).Succeeded()
	assert.For("string").ThatString(s).Equals("texture")
	b, err := n.GetBool("valid")
	assert.For("bool").ThatError(err).Succeeded()
	assert.For("bool").ThatBoolean(b).IsTrue()
	i, err := n.GetInt("width")
	assert.For("int").ThatError(err).Succeeded()
	assert.For("int").That(i).Equals(int64(-4))
	u, err := n.GetUint("handle")
	assert.For("uint").ThatError(err).Succeeded()
	assert.For("uint").That(u).Equals(uint64(1 << 40))
	f, err := n.GetFloat("lod")
	assert.For("float").ThatError(err).Succeeded()
	assert.For("float").That(f).Equals(0.25)
	assert.For("keys").That(n.Keys()).DeepEquals([]string{"handle", "levels", "lod", "name", "params", "valid", "width"})
	assert.For("has").ThatBoolean(n.Has("params")).IsTrue()

	child, err := n.GetNode("params")
	if assert.For("node").ThatError(err).Succeeded() {
		v, _ := child.GetInt("GL_TEXTURE_MIN_FILTER")
		assert.For("child").That(v).Equals(int64(0x2601))
	}
	arr, err := n.GetArray("levels")
	if assert.For("array").ThatError(err).Succeeded() {
		assert.For("len").ThatInteger(arr.Len()).Equals(4)
		v, _ := arr.GetInt(0)
		assert.For("[0]").That(v).Equals(int64(3))
		s, _ := arr.GetString(1)
		assert.For("[1]").ThatString(s).Equals("blob_0")
		face, err := arr.GetNode(3)
		if assert.For("[3]").ThatError(err).Succeeded() {
			s, _ := face.GetString("face")
			assert.For("[3].face").ThatString(s).Equals("+x")
		}
		_, err = arr.GetInt(4)
		assert.For("out of range").ThatError(err).HasCause(document.ErrMissingKey)
		_, err = arr.GetString(0)
		assert.For("array type").ThatError(err).HasCause(document.ErrWrongType)
	}
}

func TestErrors(t *testing.T) {
	assert := assert.To(t)
	n := build()
	_, err := n.GetString("missing")
	assert.For("missing").ThatError(err).HasCause(document.ErrMissingKey)
	_, err = n.GetInt("name")
	assert.For("string as int").ThatError(err).HasCause(document.ErrWrongType)
	_, err = n.GetInt("lod")
	assert.For("fraction as int").ThatError(err).HasCause(document.ErrWrongType)
	_, err = n.GetUint("width")
	assert.For("negative uint").ThatError(err).HasCause(document.ErrWrongType)
	_, err = n.GetBool("width")
	assert.For("int as bool").ThatError(err).HasCause(document.ErrWrongType)
	_, err = n.GetNode("levels")
	assert.For("array as node").ThatError(err).HasCause(document.ErrWrongType)
	_, err = n.GetArray("params")
	assert.For("node as array").ThatError(err).HasCause(document.ErrWrongType)
}

func TestEncodings(t *testing.T) {
	assert := assert.To(t)
	n := build()

	j, err := n.MarshalJSON()
	if !assert.For("json").ThatError(err).Succeeded() {
		return
	}
	assert.For("json text").ThatString(string(j)).Contains(`"name": "texture"`)
	got, err := document.ParseJSON(j)
	if assert.For("parse json").ThatError(err).Succeeded() {
		assert.For("json equal").ThatBoolean(document.Equal(n, got)).IsTrue()
	}

	bin, err := n.MarshalBinary()
	if !assert.For("binary").ThatError(err).Succeeded() {
		return
	}
	got, err = document.ParseBinary(bin)
	if assert.For("parse binary").ThatError(err).Succeeded() {
		assert.For("binary equal").ThatBoolean(document.Equal(n, got)).IsTrue()
	}

	_, err = document.ParseJSON([]byte("{"))
	assert.For("bad json").ThatError(err).Failed()
	got.SetBool("valid", false)
	assert.For("modified").ThatBoolean(document.Equal(n, got)).IsFalse()
}
