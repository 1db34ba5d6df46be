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

func TestBuffer(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	buf := d.GenBuffer()
	d.BindBuffer(gl.ARRAY_BUFFER, buf)
	d.BufferData(gl.ARRAY_BUFFER, fill(40, 3), gl.DYNAMIC_DRAW)
	other := d.GenBuffer()
	d.BindBuffer(gl.COPY_READ_BUFFER, other)

	s := glstate.BufferState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(buf), gl.ARRAY_BUFFER)).Succeeded() {
		return
	}
	assert.For("usage").That(s.Usage()).Equals(gl.DYNAMIC_DRAW)
	assert.For("data").ThatBytes(s.Data()).Equals(fill(40, 3))
	assert.For("copy read binding").ThatInteger(int(gl.GetInteger(d, gl.COPY_READ_BUFFER))).Equals(int(other))

	blobs := blob.NewInMemory(ctx)
	node := document.New()
	if !assert.For("serialize").ThatError(s.Serialize(ctx, node, blobs)).Succeeded() {
		return
	}
	got := glstate.BufferState{}
	if !assert.For("deserialize").ThatError(got.Deserialize(ctx, node, blobs)).Succeeded() {
		return
	}
	assert.For("deserialized").ThatBytes(got.Data()).Equals(s.Data())
	assert.For("deserialized target").That(got.Target()).Equals(gl.ARRAY_BUFFER)

	r := glstate.NewMapRemapper(d)
	name, err := got.Restore(ctx, c, r, 0)
	if !assert.For("restore").ThatError(err).Succeeded() {
		return
	}
	assert.For("declared").That(r.RemapHandle(glstate.Buffers, uint64(buf))).Equals(name)
	restored := d.Buffer(uint32(name))
	assert.For("restored data").ThatBytes(restored.Data).Equals(fill(40, 3))
	assert.For("restored usage").That(restored.Usage).Equals(gl.DYNAMIC_DRAW)
	assert.For("array binding").ThatInteger(int(gl.GetInteger(d, gl.ARRAY_BUFFER_BINDING))).Equals(int(buf))
	assert.For("error").That(d.PendingError()).Equals(gl.NO_ERROR)
}

func TestEmptyBuffer(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	buf := d.GenBuffer()
	s := glstate.BufferState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(buf), gl.UNIFORM_BUFFER)).Succeeded() {
		return
	}
	assert.For("empty").ThatSlice(s.Data()).IsLength(0)
	node := document.New()
	blobs := blob.NewInMemory(ctx)
	assert.For("serialize").ThatError(s.Serialize(ctx, node, blobs)).Succeeded()
	assert.For("no blob").ThatBoolean(node.Has("data_blob_id")).IsFalse()

	invalid := glstate.BufferState{}
	_, err := invalid.Restore(ctx, c, nil, 0)
	assert.For("invalid").ThatError(err).HasCause(glstate.ErrNotValid)
}
