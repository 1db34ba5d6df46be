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

package blob_test

import (
	"context"
	"io/ioutil"
	"path/filepath"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/blob"
)

func testManager(ctx context.Context, t *testing.T, m blob.Manager) {
	assert := assert.To(t)
	data := []byte("level 0 of texture 3")
	id, err := m.Add(ctx, "tex 3/level:0", data)
	if !assert.For("add").ThatError(err).Succeeded() {
		return
	}
	assert.For("id").ThatString(id).Equals(blob.MakeID("tex 3/level:0", data))
	assert.For("sanitized").ThatString(id).HasPrefix("tex_3_level_0_")
	assert.For("verify").ThatError(blob.Verify(id, data)).Succeeded()
	assert.For("contains").ThatBoolean(m.Contains(ctx, id)).IsTrue()

	again, err := m.Add(ctx, "tex 3/level:0", append([]byte{}, data...))
	assert.For("add again").ThatError(err).Succeeded()
	assert.For("dedup").ThatString(again).Equals(id)

	other, err := m.Add(ctx, "buf", []byte{})
	assert.For("empty").ThatError(err).Succeeded()

	got, err := m.Get(ctx, id)
	assert.For("get").ThatError(err).Succeeded()
	assert.For("data").ThatBytes(got).Equals(data)
	empty, err := m.Get(ctx, other)
	assert.For("get empty").ThatError(err).Succeeded()
	assert.For("empty data").ThatBytes(empty).IsLength(0)

	ids, err := m.IDs(ctx)
	assert.For("ids").ThatError(err).Succeeded()
	assert.For("ids").That(ids).DeepEquals([]string{other, id})

	_, err = m.Get(ctx, "missing_0000")
	assert.For("missing").ThatError(err).HasCause(blob.ErrNotFound)
	assert.For("not contained").ThatBoolean(m.Contains(ctx, "missing_0000")).IsFalse()
	assert.For("bad verify").ThatError(blob.Verify(id, []byte("other"))).Failed()
}

func TestInMemory(t *testing.T) {
	ctx := log.Testing(t)
	testManager(ctx, t, blob.NewInMemory(ctx))
}

func TestDirectory(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	dir := filepath.Join(t.TempDir(), "blobs")
	m, err := blob.NewDirectory(ctx, dir)
	if !assert.For("create").ThatError(err).Succeeded() {
		return
	}
	testManager(ctx, t, m)

	id, _ := m.Add(ctx, "data", []byte{1, 2, 3})
	reopened, err := blob.NewDirectory(ctx, dir)
	if assert.For("reopen").ThatError(err).Succeeded() {
		got, err := reopened.Get(ctx, id)
		assert.For("persisted").ThatError(err).Succeeded()
		assert.For("persisted data").ThatBytes(got).Equals([]byte{1, 2, 3})
	}

	err = ioutil.WriteFile(filepath.Join(dir, id+".blob"), []byte{9, 9, 9}, 0644)
	assert.For("tamper").ThatError(err).Succeeded()
	_, err = m.Get(ctx, id)
	assert.For("corrupt").ThatError(err).Failed()

	_, err = m.Get(ctx, "../escape")
	assert.For("escape").ThatError(err).HasCause(blob.ErrNotFound)
}
