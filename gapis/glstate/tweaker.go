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

	"github.com/ValveSoftware/vogl-sub006/gl"
)

// tweaker provides a set of methods for temporarily changing the GL state.
// Every change is recorded and undone in reverse order by revert.
type tweaker struct {
	gl   gl.Functions
	undo []func(context.Context)
}

func newTweaker(fns gl.Functions) *tweaker {
	return &tweaker{gl: fns}
}

// revert undoes all the changes made by the tweaker.
func (t *tweaker) revert(ctx context.Context) {
	for i := len(t.undo) - 1; i >= 0; i-- {
		t.undo[i](ctx)
	}
	t.undo = nil
}

func (t *tweaker) doAndUndo(do func(), undo func()) {
	do()
	t.undo = append(t.undo, func(context.Context) { undo() })
}

func (t *tweaker) onRevert(f func()) {
	t.undo = append(t.undo, func(context.Context) { f() })
}

var packState = []gl.Enum{
	gl.PACK_SWAP_BYTES, gl.PACK_LSB_FIRST, gl.PACK_ROW_LENGTH, gl.PACK_IMAGE_HEIGHT,
	gl.PACK_SKIP_ROWS, gl.PACK_SKIP_PIXELS, gl.PACK_SKIP_IMAGES, gl.PACK_ALIGNMENT,
}

var unpackState = []gl.Enum{
	gl.UNPACK_SWAP_BYTES, gl.UNPACK_LSB_FIRST, gl.UNPACK_ROW_LENGTH, gl.UNPACK_IMAGE_HEIGHT,
	gl.UNPACK_SKIP_ROWS, gl.UNPACK_SKIP_PIXELS, gl.UNPACK_SKIP_IMAGES, gl.UNPACK_ALIGNMENT,
}

func (t *tweaker) pixelStorei(pname gl.Enum, v int32) {
	if o := gl.GetInteger(t.gl, pname); o != v {
		t.doAndUndo(
			func() { t.gl.PixelStorei(pname, v) },
			func() { t.gl.PixelStorei(pname, o) })
	}
}

// neutralizePixelTransfer sets tightly packed pixel store state and unbinds
// the pixel pack and unpack buffers.
func (t *tweaker) neutralizePixelTransfer() {
	for _, l := range [][]gl.Enum{packState, unpackState} {
		for _, p := range l {
			v := int32(0)
			if p == gl.PACK_ALIGNMENT || p == gl.UNPACK_ALIGNMENT {
				v = 1
			}
			t.pixelStorei(p, v)
		}
	}
	t.bindBuffer(gl.PIXEL_PACK_BUFFER, 0)
	t.bindBuffer(gl.PIXEL_UNPACK_BUFFER, 0)
}

func (t *tweaker) bindBuffer(target gl.Enum, buffer uint32) {
	binding := gl.BufferBinding(target)
	if binding == gl.NONE {
		// No query for the binding, so it cannot be restored.
		t.gl.BindBuffer(target, buffer)
		return
	}
	if o := uint32(gl.GetInteger(t.gl, binding)); o != buffer {
		t.doAndUndo(
			func() { t.gl.BindBuffer(target, buffer) },
			func() { t.gl.BindBuffer(target, o) })
	}
}

func (t *tweaker) activeTexture(unit gl.Enum) {
	if o := gl.Enum(gl.GetInteger(t.gl, gl.ACTIVE_TEXTURE)); o != unit {
		t.doAndUndo(
			func() { t.gl.ActiveTexture(unit) },
			func() { t.gl.ActiveTexture(o) })
	}
}

// bindTexture binds texture to target of the active texture unit. The unit
// must not change before revert.
func (t *tweaker) bindTexture(target gl.Enum, texture uint32) {
	if o := uint32(gl.GetInteger(t.gl, gl.TextureBinding(target))); o != texture {
		t.doAndUndo(
			func() { t.gl.BindTexture(target, texture) },
			func() { t.gl.BindTexture(target, o) })
	}
}

func (t *tweaker) texParameteri(target, pname gl.Enum, v int32) {
	o := []int32{0}
	t.gl.GetTexParameteriv(target, pname, o)
	if o[0] != v {
		t.doAndUndo(
			func() { t.gl.TexParameteriv(target, pname, []int32{v}) },
			func() { t.gl.TexParameteriv(target, pname, o) })
	}
}

func (t *tweaker) bindFramebuffer(target gl.Enum, fb uint32) {
	switch target {
	case gl.FRAMEBUFFER:
		t.bindFramebuffer(gl.READ_FRAMEBUFFER, fb)
		t.bindFramebuffer(gl.DRAW_FRAMEBUFFER, fb)
		return
	case gl.READ_FRAMEBUFFER:
		if o := uint32(gl.GetInteger(t.gl, gl.READ_FRAMEBUFFER_BINDING)); o != fb {
			t.doAndUndo(
				func() { t.gl.BindFramebuffer(target, fb) },
				func() { t.gl.BindFramebuffer(target, o) })
		}
	case gl.DRAW_FRAMEBUFFER:
		if o := uint32(gl.GetInteger(t.gl, gl.DRAW_FRAMEBUFFER_BINDING)); o != fb {
			t.doAndUndo(
				func() { t.gl.BindFramebuffer(target, fb) },
				func() { t.gl.BindFramebuffer(target, o) })
		}
	}
}

// readBuffer changes the read buffer of the bound read framebuffer. The
// binding must not change before revert.
func (t *tweaker) readBuffer(mode gl.Enum) {
	if o := gl.Enum(gl.GetInteger(t.gl, gl.READ_BUFFER)); o != mode {
		t.doAndUndo(
			func() { t.gl.ReadBuffer(mode) },
			func() { t.gl.ReadBuffer(o) })
	}
}

// drawBuffer changes the draw buffer of the bound draw framebuffer. The
// binding must not change before revert.
func (t *tweaker) drawBuffer(mode gl.Enum) {
	if o := gl.Enum(gl.GetInteger(t.gl, gl.DRAW_BUFFER)); o != mode {
		t.doAndUndo(
			func() { t.gl.DrawBuffer(mode) },
			func() { t.gl.DrawBuffer(o) })
	}
}

func (t *tweaker) setCapability(cap gl.Enum, enable bool) {
	if o := t.gl.IsEnabled(cap); o != enable {
		set := func(v bool) {
			if v {
				t.gl.Enable(cap)
			} else {
				t.gl.Disable(cap)
			}
		}
		t.doAndUndo(func() { set(enable) }, func() { set(o) })
	}
}

func (t *tweaker) glEnable(cap gl.Enum)  { t.setCapability(cap, true) }
func (t *tweaker) glDisable(cap gl.Enum) { t.setCapability(cap, false) }

func (t *tweaker) useProgram(program uint32) {
	if o := uint32(gl.GetInteger(t.gl, gl.CURRENT_PROGRAM)); o != program {
		t.doAndUndo(
			func() { t.gl.UseProgram(program) },
			func() { t.gl.UseProgram(o) })
	}
}

func (t *tweaker) bindVertexArray(array uint32) {
	if o := uint32(gl.GetInteger(t.gl, gl.VERTEX_ARRAY_BINDING)); o != array {
		t.doAndUndo(
			func() { t.gl.BindVertexArray(array) },
			func() { t.gl.BindVertexArray(o) })
	}
}

func (t *tweaker) viewport(x, y, w, h int32) {
	o := make([]int32, 4)
	t.gl.GetIntegerv(gl.VIEWPORT, o)
	if o[0] != x || o[1] != y || o[2] != w || o[3] != h {
		t.doAndUndo(
			func() { t.gl.Viewport(x, y, w, h) },
			func() { t.gl.Viewport(o[0], o[1], o[2], o[3]) })
	}
}

func (t *tweaker) colorMask(r, g, b, a bool) {
	o := make([]int32, 4)
	t.gl.GetIntegerv(gl.COLOR_WRITEMASK, o)
	t.doAndUndo(
		func() { t.gl.ColorMask(r, g, b, a) },
		func() { t.gl.ColorMask(o[0] != 0, o[1] != 0, o[2] != 0, o[3] != 0) })
}

func (t *tweaker) depthMask(v bool) {
	if o := gl.GetInteger(t.gl, gl.DEPTH_WRITEMASK) != 0; o != v {
		t.doAndUndo(
			func() { t.gl.DepthMask(v) },
			func() { t.gl.DepthMask(o) })
	}
}

func (t *tweaker) depthFunc(v gl.Enum) {
	if o := gl.Enum(gl.GetInteger(t.gl, gl.DEPTH_FUNC)); o != v {
		t.doAndUndo(
			func() { t.gl.DepthFunc(v) },
			func() { t.gl.DepthFunc(o) })
	}
}

func (t *tweaker) stencilMask(v uint32) {
	if o := uint32(gl.GetInteger(t.gl, gl.STENCIL_WRITEMASK)); o != v {
		t.doAndUndo(
			func() { t.gl.StencilMask(v) },
			func() { t.gl.StencilMask(o) })
	}
}

// stencilState saves the stencil function and operation so that they can be
// changed freely until revert.
func (t *tweaker) stencilState() {
	fn := gl.Enum(gl.GetInteger(t.gl, gl.STENCIL_FUNC))
	ref := gl.GetInteger(t.gl, gl.STENCIL_REF)
	mask := uint32(gl.GetInteger(t.gl, gl.STENCIL_VALUE_MASK))
	fail := gl.Enum(gl.GetInteger(t.gl, gl.STENCIL_FAIL))
	zfail := gl.Enum(gl.GetInteger(t.gl, gl.STENCIL_PASS_DEPTH_FAIL))
	zpass := gl.Enum(gl.GetInteger(t.gl, gl.STENCIL_PASS_DEPTH_PASS))
	t.onRevert(func() {
		t.gl.StencilFunc(fn, ref, mask)
		t.gl.StencilOp(fail, zfail, zpass)
	})
}

func (t *tweaker) sampleMask(v uint32) {
	if o := uint32(gl.GetInteger(t.gl, gl.SAMPLE_MASK_VALUE)); o != v {
		t.doAndUndo(
			func() { t.gl.SampleMaski(0, v) },
			func() { t.gl.SampleMaski(0, o) })
	}
}

// genTexture creates a texture that is deleted on revert.
func (t *tweaker) genTexture() uint32 {
	tex := t.gl.GenTexture()
	t.onRevert(func() { t.gl.DeleteTexture(tex) })
	return tex
}

// genFramebuffer creates a framebuffer that is deleted on revert.
func (t *tweaker) genFramebuffer() uint32 {
	fb := t.gl.GenFramebuffer()
	t.onRevert(func() { t.gl.DeleteFramebuffer(fb) })
	return fb
}

// genVertexArray creates a vertex array that is deleted on revert.
func (t *tweaker) genVertexArray() uint32 {
	va := t.gl.GenVertexArray()
	t.onRevert(func() { t.gl.DeleteVertexArray(va) })
	return va
}

// deleteTexturesOnRevert deletes the listed textures on revert.
func (t *tweaker) deleteTexturesOnRevert(textures []uint32) {
	t.onRevert(func() {
		for _, tex := range textures {
			t.gl.DeleteTexture(tex)
		}
	})
}
