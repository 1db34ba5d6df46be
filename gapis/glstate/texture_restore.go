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

// Restore recreates the captured texture. If handle is 0 a new name is
// generated and declared to remapper, which may be nil. The name of the
// restored texture is returned. GL bindings and pixel store state are left as
// they were. Textures created by a failed restore are deleted.
func (s *TextureState) Restore(ctx context.Context, c *Context, remapper HandleRemapper, handle uint64) (restored uint64, err error) {
	ctx = log.Enter(ctx, "TextureState.Restore")
	ctx = log.V{"handle": s.handle, "target": s.target}.Bind(ctx)
	if !s.valid {
		return 0, log.Err(ctx, ErrNotValid, "Restoring texture")
	}
	if err := gl.CheckError(c.GL); err != nil {
		log.W(ctx, "Discarding pending error: %v", err)
	}

	name := uint32(handle)
	if handle == 0 {
		name = c.GL.GenTexture()
		if remapper != nil {
			remapper.DeclareHandle(Textures, s.handle, uint64(name), s.target)
		}
		defer func() {
			if err == nil {
				return
			}
			if remapper != nil {
				remapper.DeleteHandleAndObject(Textures, s.handle, uint64(name))
			} else {
				c.GL.DeleteTexture(name)
			}
		}()
	}
	if s.target == gl.NONE {
		return uint64(name), nil
	}

	t := newTweaker(c.GL)
	defer t.revert(ctx)
	t.neutralizePixelTransfer()
	t.bindTexture(s.target, name)
	if err := gl.CheckError(c.GL); err != nil {
		return 0, log.Errf(ctx, err, "Binding texture %d", name)
	}

	if s.target == gl.TEXTURE_BUFFER {
		format, _ := s.levelParams[LevelKey{}].Int(gl.TEXTURE_INTERNAL_FORMAT)
		buffer := uint32(remap(remapper, Buffers, s.buffer))
		c.GL.TexBuffer(gl.TEXTURE_BUFFER, gl.Enum(format), buffer)
		if err := gl.CheckError(c.GL); err != nil {
			return 0, log.Errf(ctx, err, "Attaching buffer %d as %v", buffer, gl.Enum(format))
		}
		return uint64(name), nil
	}

	if err := applyTextureParams(ctx, c, s.target, s.params); err != nil {
		log.W(ctx, "Some texture parameters could not be restored:\n%v", err)
	}
	if s.unquerable {
		return uint64(name), nil
	}

	tex := s.textures[0]
	desc := pixfmt.Find(tex.InternalFormat())
	if desc == nil {
		return 0, log.Errf(ctx, ErrUnsupportedFormat, "Internal format %v", tex.InternalFormat())
	}
	if gl.IsMultisampleTarget(s.target) {
		err = s.restoreMultisample(ctx, c, t, name, desc)
	} else {
		err = s.restoreLevels(ctx, c, desc)
	}
	if err != nil {
		return 0, err
	}
	return uint64(name), nil
}

func (s *TextureState) levelShape() shape { return ktxShape(s.textures[0]) }

// ktxShape returns the level 0 geometry stored in a KTX header.
func ktxShape(tex *ktx.Texture) shape {
	sh := shape{width: tex.Width(), mips: tex.NumMips()}
	if !tex.Is1D() {
		sh.height = tex.Height()
	}
	if tex.Is3D() {
		sh.depth = tex.Depth()
	}
	if tex.IsArray() {
		sh.layers = tex.ArraySize()
	}
	return sh
}

func (s *TextureState) restoreLevels(ctx context.Context, c *Context, desc *pixfmt.Descriptor) error {
	tex := s.textures[0]
	sh := s.levelShape()
	faces := 1
	if s.target == gl.TEXTURE_CUBE_MAP {
		faces = 6
	}
	for face := 0; face < faces; face++ {
		for level := 0; level < sh.mips; level++ {
			if _, present := s.levelParams[LevelKey{face, level}]; !present {
				continue
			}
			target := faceTarget(s.target, face)
			data := gatherSlices(tex, s.target, face, level, sh.slices(s.target, level))
			uploadLevel(c.GL, tex, target, level, sh, desc.Compressed, data)
			if err := gl.CheckError(c.GL); err != nil {
				return log.Errf(ctx, err, "Uploading level %d of %v", level, target)
			}
		}
	}
	return nil
}

// uploadLevel specifies one level of the texture bound to the base target of
// target.
func uploadLevel(f gl.Functions, tex *ktx.Texture, target gl.Enum, level int, sh shape, compressed bool, data []byte) {
	ifmt, format, ty := tex.InternalFormat(), tex.Format(), tex.Type()
	l := int32(level)
	w := int32(mipSize(sh.width, level))
	h := int32(mipSize(sh.height, level))
	var d int32
	switch target {
	case gl.TEXTURE_1D:
		if compressed {
			f.CompressedTexImage1D(target, l, ifmt, w, data)
		} else {
			f.TexImage1D(target, l, ifmt, w, format, ty, data)
		}
		return
	case gl.TEXTURE_1D_ARRAY:
		h = int32(sh.layers)
	case gl.TEXTURE_3D:
		d = int32(mipSize(sh.depth, level))
	case gl.TEXTURE_2D_ARRAY:
		d = int32(sh.layers)
	case gl.TEXTURE_CUBE_MAP_ARRAY:
		d = int32(sh.layers * 6)
	}
	switch {
	case d > 0 && compressed:
		f.CompressedTexImage3D(target, l, ifmt, w, h, d, data)
	case d > 0:
		f.TexImage3D(target, l, ifmt, w, h, d, format, ty, data)
	case compressed:
		f.CompressedTexImage2D(target, l, ifmt, w, h, data)
	default:
		f.TexImage2D(target, l, ifmt, w, h, format, ty, data)
	}
}

func (s *TextureState) restoreMultisample(ctx context.Context, c *Context, t *tweaker, name uint32, desc *pixfmt.Descriptor) error {
	if c.Splitter == nil {
		return log.Err(ctx, ErrNoSplitter, "Restoring multisample texture")
	}
	sh := s.levelShape()
	ifmt := s.textures[0].InternalFormat()
	fixed := true
	if v, ok := s.levelParams[LevelKey{}].Int(gl.TEXTURE_FIXED_SAMPLE_LOCATIONS); ok {
		fixed = v != 0
	}
	if s.target == gl.TEXTURE_2D_MULTISAMPLE_ARRAY {
		c.GL.TexImage3DMultisample(s.target, int32(s.numSamples), ifmt, int32(sh.width), int32(sh.height), int32(sh.layers), fixed)
	} else {
		c.GL.TexImage2DMultisample(s.target, int32(s.numSamples), ifmt, int32(sh.width), int32(sh.height), fixed)
	}
	if err := gl.CheckError(c.GL); err != nil {
		return log.Errf(ctx, err, "Allocating %d samples of %v", s.numSamples, ifmt)
	}

	planeTarget := SplitTarget(s.target)
	planeShape := sh
	planeShape.mips = 1
	slices := sh.slices(s.target, 0)
	upload := func(tex *ktx.Texture, data []byte) (uint32, error) {
		p := t.genTexture()
		t.bindTexture(planeTarget, p)
		c.GL.TexParameteriv(planeTarget, gl.TEXTURE_MAX_LEVEL, []int32{0})
		uploadLevel(c.GL, tex, planeTarget, 0, planeShape, false, data)
		if err := gl.CheckError(c.GL); err != nil {
			return 0, log.Errf(ctx, err, "Uploading plane")
		}
		return p, nil
	}

	if desc.HasDepth() || !desc.HasStencil() {
		planes := make([]uint32, s.numSamples)
		for i, tex := range s.textures {
			p, err := upload(tex, gatherSlices(tex, s.target, 0, 0, slices))
			if err != nil {
				return err
			}
			planes[i] = p
		}
		if err := c.Splitter.Combine(ctx, planes, s.target, name); err != nil {
			return log.Err(ctx, err, "Combining samples")
		}
	}

	if desc.HasStencil() {
		layout, ok := FindStencilLayout(ifmt)
		if !ok {
			return log.Errf(ctx, ErrUnsupportedFormat, "No stencil layout for %v", ifmt)
		}
		proxyTex := &ktx.Texture{}
		if err := newProxyContainer(proxyTex, planeShape, s.target); err != nil {
			return log.Err(ctx, err, "Creating the stencil proxy container")
		}
		planes := make([]uint32, s.numSamples)
		for i, tex := range s.textures {
			texels := gatherSlices(tex, s.target, 0, 0, slices)
			proxy := make([]byte, sh.width*sh.height*slices*4)
			layout.ExtractStencil(texels, proxy)
			p, err := upload(proxyTex, proxy)
			if err != nil {
				return err
			}
			planes[i] = p
		}
		if err := c.Splitter.CombineStencil(ctx, planes, s.target, name); err != nil {
			return log.Err(ctx, err, "Combining stencil samples")
		}
	}
	return nil
}

// newProxyContainer initializes tex as the StencilProxyFormat equivalent of
// the samples of a multisample target. Only its formats are used.
func newProxyContainer(tex *ktx.Texture, sh shape, ms gl.Enum) error {
	if ms == gl.TEXTURE_2D_MULTISAMPLE_ARRAY {
		return tex.Init2DArray(sh.width, sh.height, sh.layers, 1, StencilProxyFormat, gl.RGBA, gl.UNSIGNED_BYTE)
	}
	return tex.Init2D(sh.width, sh.height, 1, StencilProxyFormat, gl.RGBA, gl.UNSIGNED_BYTE)
}
