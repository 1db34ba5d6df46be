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

	"github.com/pkg/errors"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/gapis/glstate"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func TestUploadKTX(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	src := &ktx.Texture{}
	if !assert.For("init").ThatError(src.Init2D(2, 2, 2, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)).Succeeded() {
		return
	}
	level0, level1 := fill(16, 3), fill(4, 0x80)
	src.AddImage(0, 0, 0, 0, level0)
	src.AddImage(1, 0, 0, 0, level1)

	name, target, err := glstate.UploadKTX(ctx, c, src)
	if !assert.For("upload").ThatError(err).Succeeded() {
		return
	}
	assert.For("target").That(target).Equals(gl.TEXTURE_2D)
	assert.For("level 0").ThatBytes(image(d, name, gl.TEXTURE_2D, 0).Data[0]).Equals(level0)
	assert.For("level 1").ThatBytes(image(d, name, gl.TEXTURE_2D, 1).Data[0]).Equals(level1)
	assert.For("binding").That(gl.GetInteger(d, gl.TEXTURE_BINDING_2D)).Equals(int32(0))

	s := glstate.TextureState{}
	if !assert.For("snapshot").ThatError(s.Snapshot(ctx, c, uint64(name), target)).Succeeded() {
		return
	}
	maxLevel, _ := s.Params().Int(gl.TEXTURE_MAX_LEVEL)
	assert.For("max level").ThatInteger(int(maxLevel)).Equals(1)
	assert.For("captured level 1").ThatBytes(s.Texture(0).ImageData(1, 0, 0, 0)).Equals(level1)
	assert.For("no error").That(d.GetError()).Equals(gl.NO_ERROR)
}

func TestUploadKTXCubemap(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	src := &ktx.Texture{}
	src.InitCubemap(1, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)
	for face := 0; face < 6; face++ {
		src.AddImage(0, 0, face, 0, fill(4, byte(face*4)))
	}
	name, target, err := glstate.UploadKTX(ctx, c, src)
	if !assert.For("upload").ThatError(err).Succeeded() {
		return
	}
	assert.For("target").That(target).Equals(gl.TEXTURE_CUBE_MAP)
	for face, ft := range gl.CubeFaces {
		assert.For("face %v", ft).ThatBytes(image(d, name, ft, 0).Data[0]).Equals(fill(4, byte(face*4)))
	}
}

func TestUploadKTXIncomplete(t *testing.T) {
	ctx, d, c := setup(t)
	assert := assert.To(t)
	src := &ktx.Texture{}
	src.Init2D(4, 4, 1, gl.RGBA8, gl.RGBA, gl.UNSIGNED_BYTE)
	_, _, err := glstate.UploadKTX(ctx, c, src)
	assert.For("err").ThatBoolean(errors.Is(err, ktx.ErrInvalidImage)).IsTrue()
	assert.For("no textures").ThatInteger(d.LiveTextures()).Equals(0)
}

func TestTargetForKTX(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		init   func(*ktx.Texture) error
		target gl.Enum
	}{
		{func(k *ktx.Texture) error { return k.Init1D(4, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_1D},
		{func(k *ktx.Texture) error { return k.Init1DArray(4, 2, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_1D_ARRAY},
		{func(k *ktx.Texture) error { return k.Init2D(4, 4, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_2D},
		{func(k *ktx.Texture) error { return k.Init2DArray(4, 4, 3, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_2D_ARRAY},
		{func(k *ktx.Texture) error { return k.Init3D(4, 4, 4, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_3D},
		{func(k *ktx.Texture) error { return k.InitCubemap(4, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_CUBE_MAP},
		{func(k *ktx.Texture) error { return k.InitCubemapArray(4, 2, 1, gl.R8, gl.RED, gl.UNSIGNED_BYTE) }, gl.TEXTURE_CUBE_MAP_ARRAY},
	} {
		k := &ktx.Texture{}
		if assert.For("init %v", test.target).ThatError(test.init(k)).Succeeded() {
			assert.For("target").That(glstate.TargetForKTX(k)).Equals(test.target)
		}
	}
}
