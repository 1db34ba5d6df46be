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

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/gltest"
)

func TestWriteAndVerify(t *testing.T) {
	ctx := log.Testing(t)
	assert := assert.To(t)
	d := gltest.New()
	c, err := glstate.NewContext(ctx, d, gltest.NewSplitter(d))
	if !assert.For("context").ThatError(err).Succeeded() {
		return
	}
	src := &ktx.Texture{}
	src.Init2DArray(2, 2, 2, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)
	src.AddImage(0, 0, 0, 0, []byte{1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 12, 13, 14, 15, 16})
	src.AddImage(0, 1, 0, 0, make([]byte, 16))
	name, target, err := glstate.UploadKTX(ctx, c, src)
	if !assert.For("upload").ThatError(err).Succeeded() {
		return
	}
	s := &glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(name), target)).Succeeded() {
		return
	}

	dir := t.TempDir()
	if !assert.For("write").ThatError(write(ctx, dir, []glstate.ObjectState{s})).Succeeded() {
		return
	}
	data, err := os.ReadFile(filepath.Join(dir, "state.json"))
	assert.For("read").ThatError(err).Succeeded()
	assert.For("document").ThatString(string(data)).Contains(`"kind": "texture"`)
	blobs, _ := filepath.Glob(filepath.Join(dir, "blobs", "*.blob"))
	assert.For("blobs").ThatSlice(blobs).IsLength(1)

	live := d.LiveTextures()
	assert.For("verify").ThatError(verify(ctx, c, dir)).Succeeded()
	assert.For("restored texture deleted").ThatInteger(d.LiveTextures()).Equals(live)
}

func TestVerifyMissing(t *testing.T) {
	ctx := log.Testing(t)
	d := gltest.New()
	c, _ := glstate.NewContext(ctx, d, nil)
	assert.To(t).For("verify").ThatError(verify(ctx, c, t.TempDir())).Failed()
}
