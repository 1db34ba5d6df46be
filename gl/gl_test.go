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

package gl_test

import (
	"testing"

	"github.com/ValveSoftware/vogl-sub006/core/assert"
	"github.com/ValveSoftware/vogl-sub006/gl"
)

func TestEnumNames(t *testing.T) {
	assert := assert.To(t)
	for _, test := range []struct {
		e    gl.Enum
		name string
	}{
		{gl.NONE, "GL_NONE"},
		{gl.TEXTURE_2D, "GL_TEXTURE_2D"},
		{gl.RGBA8, "GL_RGBA8"},
		{gl.COMPRESSED_RGBA_ASTC_12x12_KHR, "GL_COMPRESSED_RGBA_ASTC_12x12_KHR"},
		{gl.Enum(0xFFFF), "0xFFFF"},
	} {
		assert.For("name of %v", uint32(test.e)).ThatString(test.e.String()).Equals(test.name)
		e, ok := gl.EnumFromName(test.name)
		assert.For("parse %v", test.name).ThatBoolean(ok).IsTrue()
		assert.For("parse %v", test.name).That(e).Equals(test.e)
	}
	e, ok := gl.EnumFromName("TEXTURE_MIN_FILTER")
	assert.For("no prefix").ThatBoolean(ok).IsTrue()
	assert.For("no prefix").That(e).Equals(gl.TEXTURE_MIN_FILTER)
	_, ok = gl.EnumFromName("GL_NOT_A_THING")
	assert.For("unknown").ThatBoolean(ok).IsFalse()
}

func TestTargets(t *testing.T) {
	assert := assert.To(t)
	assert.For("face").ThatBoolean(gl.IsCubeFace(gl.TEXTURE_CUBE_MAP_NEGATIVE_Z)).IsTrue()
	assert.For("not face").ThatBoolean(gl.IsCubeFace(gl.TEXTURE_CUBE_MAP)).IsFalse()
	assert.For("ms").ThatBoolean(gl.IsMultisampleTarget(gl.TEXTURE_2D_MULTISAMPLE_ARRAY)).IsTrue()
	assert.For("array").ThatBoolean(gl.IsArrayTarget(gl.TEXTURE_CUBE_MAP_ARRAY)).IsTrue()
	assert.For("binding").That(gl.TextureBinding(gl.TEXTURE_3D)).Equals(gl.TEXTURE_BINDING_3D)
}
