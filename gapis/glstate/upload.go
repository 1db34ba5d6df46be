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

package glstate

import (
	"context"

	"github.com/ValveSoftware/vogl-sub006/core/image/ktx"
	"github.com/ValveSoftware/vogl-sub006/core/log"
	"github.com/ValveSoftware/vogl-sub006/gl"
	"github.com/ValveSoftware/vogl-sub006/gl/pixfmt"
)

// TargetForKTX returns the texture target matching the geometry of tex.
func TargetForKTX(tex *ktx.Texture) gl.Enum {
	switch {
	case tex.Is1D() && tex.IsArray():
		return gl.TEXTURE_1D_ARRAY
	case tex.Is1D():
		return gl.TEXTURE_1D
	case tex.IsCubemap() && tex.IsArray():
		return gl.TEXTURE_CUBE_MAP_ARRAY
	case tex.IsCubemap():
		return gl.TEXTURE_CUBE_MAP
	case tex.Is3D():
		return gl.TEXTURE_3D
	case tex.IsArray():
		return gl.TEXTURE_2D_ARRAY
	}
	return gl.TEXTURE_2D
}

// UploadKTX creates a new texture holding every image of tex and returns its
// name and target. The mip range of the texture is limited to the levels of
// tex. GL bindings and pixel store state are left as they were.
func UploadKTX(ctx context.Context, c *Context, tex *ktx.Texture) (name uint32, target gl.Enum, err error) {
	target = TargetForKTX(tex)
	ctx = log.Enter(ctx, "UploadKTX")
	ctx = log.V{"target": target, "format": tex.InternalFormat()}.Bind(ctx)
	if err := tex.ConsistencyCheck(); err != nil {
		return 0, target, log.Err(ctx, err, "Checking container")
	}
	desc := pixfmt.Find(tex.InternalFormat())
	if desc == nil {
		return 0, target, log.Errf(ctx, ErrUnsupportedFormat, "Internal format %v", tex.InternalFormat())
	}
	gl.CheckError(c.GL)

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.neutralizePixelTransfer()
	name = c.GL.GenTexture()
	defer func() {
		if err != nil {
			c.GL.DeleteTexture(name)
		}
	}()
	t.bindTexture(target, name)

	sh := ktxShape(tex)
	faces := 1
	if target == gl.TEXTURE_CUBE_MAP {
		faces = 6
	}
	for face := 0; face < faces; face++ {
		for level := 0; level < sh.mips; level++ {
			data := gatherSlices(tex, target, face, level, sh.slices(target, level))
			uploadLevel(c.GL, tex, faceTarget(target, face), level, sh, desc.Compressed, data)
			if err := gl.CheckError(c.GL); err != nil {
				return 0, target, log.Errf(ctx, err, "Uploading level %d face %d", level, face)
			}
		}
	}
	c.GL.TexParameteriv(target, gl.TEXTURE_BASE_LEVEL, []int32{0})
	c.GL.TexParameteriv(target, gl.TEXTURE_MAX_LEVEL, []int32{int32(sh.mips - 1)})
	if err := gl.CheckError(c.GL); err != nil {
		return 0, target, log.Err(ctx, err, "Setting the mip range")
	}
	log.D(ctx, "Uploaded %dx%dx%d with %d levels as texture %d", sh.width, sh.height, sh.depth, sh.mips, name)
	return name, target, nil
}
