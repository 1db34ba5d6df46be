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

package glstate_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/data/document"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func TestKinds(t *testing.T) {
	assert := assert.To(t)
	for _, k := range []glstate.Kind{glstate.KindTexture, glstate.KindBuffer, glstate.KindDefaultFramebuffer} {
		got, ok := glstate.KindFromName(k.String())
		assert.For("%v round trip", k).ThatBoolean(ok).IsTrue()
		assert.For("%v", k).That(got).Equals(k)
		obj, err := glstate.NewObjectState(k)
		if assert.For("%v new", k).ThatError(err).Succeeded() {
			assert.For("%v kind", k).That(obj.Kind()).Equals(k)
			assert.For("%v valid", k).ThatBoolean(obj.IsValid()).IsFalse()
		}
	}
	_, ok := glstate.KindFromName("sampler")
	assert.For("unknown").ThatBoolean(ok).IsFalse()
	_, err := glstate.NewObjectState(glstate.KindInvalid)
	assert.For("invalid").ThatError(err).Failed()
}

func TestSerializeObjects(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	tex := newTexture2D(d, 2, 2, map[int][]byte{0: fill(16, 1)})
	buf := d.GenBuffer()
	d.BindBuffer(gl.ARRAY_BUFFER, buf)
	d.BufferData(gl.ARRAY_BUFFER, fill(8, 9), gl.STATIC_DRAW)

	texture := &glstate.TextureState{}
	buffer := &glstate.BufferState{}
	assert.For("texture").ThatError(texture.Snapshot(ctx, c, uint64(tex), gl.TEXTURE_2D)).Succeeded()
	assert.For("buffer").ThatError(buffer.Snapshot(ctx, c, uint64(buf), gl.ARRAY_BUFFER)).Succeeded()

	blobs := blob.NewInMemory(ctx)
	root := document.New()
	objects := root.AddArray("objects")
	for _, obj := range []glstate.ObjectState{texture, buffer} {
		assert.For("serialize %v", obj.Kind()).ThatError(glstate.SerializeObject(ctx, objects.AddNode(), blobs, obj)).Succeeded()
	}

	data, err := root.MarshalBinary()
	if !assert.For("marshal").ThatError(err).Succeeded() {
		return
	}
	parsed, err := document.ParseBinary(data)
	if !assert.For("parse").ThatError(err).Succeeded() {
		return
	}
	arr, err := parsed.GetArray("objects")
	if !assert.For("objects").ThatError(err).Succeeded() {
		return
	}
	want := []glstate.Kind{glstate.KindTexture, glstate.KindBuffer}
	for i := 0; i < arr.Len(); i++ {
		n, _ := arr.GetNode(i)
		obj, err := glstate.DeserializeObject(ctx, n, blobs)
		if !assert.For("deserialize %d", i).ThatError(err).Succeeded() {
			continue
		}
		assert.For("kind %d", i).That(obj.Kind()).Equals(want[i])
		assert.For("valid %d", i).ThatBoolean(obj.IsValid()).IsTrue()
	}

	bad := document.New()
	bad.SetString("kind", "sampler")
	_, err = glstate.DeserializeObject(ctx, bad, blobs)
	assert.For("unknown kind").ThatError(err).HasCause(glstate.ErrUnsupportedTarget)
}
