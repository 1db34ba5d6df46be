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

// Package gldriver implements gl.Functions on a native OpenGL context
// created with GLFW.
package gldriver

import (
	"unsafe"

	gogl "github.com/go-gl/gl/v4.1-core/gl"

	"github.com/ValveSoftware/vogl-sub006/gl"
)

// Functions forwards to the entry points of the current native context.
type Functions struct{}

var _ gl.Functions = Functions{}

func ptr(data []byte) unsafe.Pointer {
	if len(data) == 0 {
		return nil
	}
	return unsafe.Pointer(&data[0])
}

func goStr(s *uint8) string {
	if s == nil {
		return ""
	}
	return gogl.GoStr(s)
}

func (Functions) GetError() gl.Enum { return gl.Enum(gogl.GetError()) }
func (Functions) GetIntegerv(pname gl.Enum, data []int32) {
	gogl.GetIntegerv(uint32(pname), &data[0])
}
func (Functions) GetFloatv(pname gl.Enum, data []float32) {
	gogl.GetFloatv(uint32(pname), &data[0])
}
func (Functions) GetString(name gl.Enum) string { return goStr(gogl.GetString(uint32(name))) }
func (Functions) GetStringi(name gl.Enum, index uint32) string {
	return goStr(gogl.GetStringi(uint32(name), index))
}
func (Functions) IsEnabled(cap gl.Enum) bool             { return gogl.IsEnabled(uint32(cap)) }
func (Functions) Enable(cap gl.Enum)                     { gogl.Enable(uint32(cap)) }
func (Functions) Disable(cap gl.Enum)                    { gogl.Disable(uint32(cap)) }
func (Functions) PixelStorei(pname gl.Enum, param int32) { gogl.PixelStorei(uint32(pname), param) }

func (Functions) GenTexture() uint32 {
	var n uint32
	gogl.GenTextures(1, &n)
	return n
}
func (Functions) DeleteTexture(texture uint32)  { gogl.DeleteTextures(1, &texture) }
func (Functions) IsTexture(texture uint32) bool { return gogl.IsTexture(texture) }
func (Functions) ActiveTexture(unit gl.Enum)    { gogl.ActiveTexture(uint32(unit)) }
func (Functions) BindTexture(target gl.Enum, texture uint32) {
	gogl.BindTexture(uint32(target), texture)
}
func (Functions) TexParameteriv(target, pname gl.Enum, params []int32) {
	gogl.TexParameteriv(uint32(target), uint32(pname), &params[0])
}
func (Functions) TexParameterfv(target, pname gl.Enum, params []float32) {
	gogl.TexParameterfv(uint32(target), uint32(pname), &params[0])
}
func (Functions) GetTexParameteriv(target, pname gl.Enum, params []int32) {
	gogl.GetTexParameteriv(uint32(target), uint32(pname), &params[0])
}
func (Functions) GetTexParameterfv(target, pname gl.Enum, params []float32) {
	gogl.GetTexParameterfv(uint32(target), uint32(pname), &params[0])
}
func (Functions) GetTexLevelParameteriv(target gl.Enum, level int32, pname gl.Enum, params []int32) {
	gogl.GetTexLevelParameteriv(uint32(target), level, uint32(pname), &params[0])
}

func (Functions) TexImage1D(target gl.Enum, level int32, internalFormat gl.Enum, width int32, format, ty gl.Enum, pixels []byte) {
	gogl.TexImage1D(uint32(target), level, int32(internalFormat), width, 0, uint32(format), uint32(ty), ptr(pixels))
}

func (Functions) TexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, format, ty gl.Enum, pixels []byte) {
	gogl.TexImage2D(uint32(target), level, int32(internalFormat), width, height, 0, uint32(format), uint32(ty), ptr(pixels))
}

func (Functions) TexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth int32, format, ty gl.Enum, pixels []byte) {
	gogl.TexImage3D(uint32(target), level, int32(internalFormat), width, height, depth, 0, uint32(format), uint32(ty), ptr(pixels))
}

func (Functions) CompressedTexImage1D(target gl.Enum, level int32, internalFormat gl.Enum, width int32, data []byte) {
	gogl.CompressedTexImage1D(uint32(target), level, uint32(internalFormat), width, 0, int32(len(data)), ptr(data))
}

func (Functions) CompressedTexImage2D(target gl.Enum, level int32, internalFormat gl.Enum, width, height int32, data []byte) {
	gogl.CompressedTexImage2D(uint32(target), level, uint32(internalFormat), width, height, 0, int32(len(data)), ptr(data))
}

func (Functions) CompressedTexImage3D(target gl.Enum, level int32, internalFormat gl.Enum, width, height, depth int32, data []byte) {
	gogl.CompressedTexImage3D(uint32(target), level, uint32(internalFormat), width, height, depth, 0, int32(len(data)), ptr(data))
}

func (Functions) TexImage2DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height int32, fixed bool) {
	gogl.TexImage2DMultisample(uint32(target), samples, uint32(internalFormat), width, height, fixed)
}

func (Functions) TexImage3DMultisample(target gl.Enum, samples int32, internalFormat gl.Enum, width, height, depth int32, fixed bool) {
	gogl.TexImage3DMultisample(uint32(target), samples, uint32(internalFormat), width, height, depth, fixed)
}

func (Functions) TexBuffer(target, internalFormat gl.Enum, buffer uint32) {
	gogl.TexBuffer(uint32(target), uint32(internalFormat), buffer)
}

func (Functions) GetTexImage(target gl.Enum, level int32, format, ty gl.Enum, pixels []byte) {
	gogl.GetTexImage(uint32(target), level, uint32(format), uint32(ty), ptr(pixels))
}

func (Functions) GetCompressedTexImage(target gl.Enum, level int32, pixels []byte) {
	gogl.GetCompressedTexImage(uint32(target), level, ptr(pixels))
}

func (Functions) GenBuffer() uint32 {
	var n uint32
	gogl.GenBuffers(1, &n)
	return n
}
func (Functions) DeleteBuffer(buffer uint32)               { gogl.DeleteBuffers(1, &buffer) }
func (Functions) IsBuffer(buffer uint32) bool              { return gogl.IsBuffer(buffer) }
func (Functions) BindBuffer(target gl.Enum, buffer uint32) { gogl.BindBuffer(uint32(target), buffer) }
func (Functions) BufferData(target gl.Enum, data []byte, usage gl.Enum) {
	gogl.BufferData(uint32(target), len(data), ptr(data), uint32(usage))
}
func (Functions) GetBufferParameteriv(target, pname gl.Enum, params []int32) {
	gogl.GetBufferParameteriv(uint32(target), uint32(pname), &params[0])
}
func (Functions) GetBufferSubData(target gl.Enum, offset int, data []byte) {
	gogl.GetBufferSubData(uint32(target), offset, len(data), ptr(data))
}

func (Functions) GenFramebuffer() uint32 {
	var n uint32
	gogl.GenFramebuffers(1, &n)
	return n
}
func (Functions) DeleteFramebuffer(framebuffer uint32) { gogl.DeleteFramebuffers(1, &framebuffer) }
func (Functions) BindFramebuffer(target gl.Enum, framebuffer uint32) {
	gogl.BindFramebuffer(uint32(target), framebuffer)
}
func (Functions) FramebufferTexture2D(target, attachment, texTarget gl.Enum, texture uint32, level int32) {
	gogl.FramebufferTexture2D(uint32(target), uint32(attachment), uint32(texTarget), texture, level)
}
func (Functions) FramebufferTextureLayer(target, attachment gl.Enum, texture uint32, level, layer int32) {
	gogl.FramebufferTextureLayer(uint32(target), uint32(attachment), texture, level, layer)
}
func (Functions) CheckFramebufferStatus(target gl.Enum) gl.Enum {
	return gl.Enum(gogl.CheckFramebufferStatus(uint32(target)))
}
func (Functions) GetFramebufferAttachmentParameteriv(target, attachment, pname gl.Enum, params []int32) {
	gogl.GetFramebufferAttachmentParameteriv(uint32(target), uint32(attachment), uint32(pname), &params[0])
}
func (Functions) ReadBuffer(mode gl.Enum) { gogl.ReadBuffer(uint32(mode)) }
func (Functions) DrawBuffer(mode gl.Enum) { gogl.DrawBuffer(uint32(mode)) }
func (Functions) DrawBuffers(bufs []gl.Enum) {
	if len(bufs) == 0 {
		return
	}
	raw := make([]uint32, len(bufs))
	for i, b := range bufs {
		raw[i] = uint32(b)
	}
	gogl.DrawBuffers(int32(len(raw)), &raw[0])
}
func (Functions) BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1 int32, mask uint32, filter gl.Enum) {
	gogl.BlitFramebuffer(srcX0, srcY0, srcX1, srcY1, dstX0, dstY0, dstX1, dstY1, mask, uint32(filter))
}
func (Functions) Viewport(x, y, width, height int32) { gogl.Viewport(x, y, width, height) }

func (Functions) CreateShader(ty gl.Enum) uint32 { return gogl.CreateShader(uint32(ty)) }
func (Functions) ShaderSource(shader uint32, source string) {
	src, free := gogl.Strs(source + "\x00")
	defer free()
	gogl.ShaderSource(shader, 1, src, nil)
}
func (Functions) CompileShader(shader uint32) { gogl.CompileShader(shader) }
func (Functions) GetShaderiv(shader uint32, pname gl.Enum, params []int32) {
	gogl.GetShaderiv(shader, uint32(pname), &params[0])
}
func (Functions) GetShaderInfoLog(shader uint32) string {
	var n int32
	gogl.GetShaderiv(shader, gogl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var written int32
	gogl.GetShaderInfoLog(shader, n, &written, &buf[0])
	return string(buf[:written])
}
func (Functions) DeleteShader(shader uint32)          { gogl.DeleteShader(shader) }
func (Functions) CreateProgram() uint32               { return gogl.CreateProgram() }
func (Functions) AttachShader(program, shader uint32) { gogl.AttachShader(program, shader) }
func (Functions) LinkProgram(program uint32)          { gogl.LinkProgram(program) }
func (Functions) GetProgramiv(program uint32, pname gl.Enum, params []int32) {
	gogl.GetProgramiv(program, uint32(pname), &params[0])
}
func (Functions) GetProgramInfoLog(program uint32) string {
	var n int32
	gogl.GetProgramiv(program, gogl.INFO_LOG_LENGTH, &n)
	if n <= 0 {
		return ""
	}
	buf := make([]byte, n)
	var written int32
	gogl.GetProgramInfoLog(program, n, &written, &buf[0])
	return string(buf[:written])
}
func (Functions) UseProgram(program uint32)    { gogl.UseProgram(program) }
func (Functions) DeleteProgram(program uint32) { gogl.DeleteProgram(program) }
func (Functions) GetUniformLocation(program uint32, name string) int32 {
	return gogl.GetUniformLocation(program, gogl.Str(name+"\x00"))
}
func (Functions) Uniform1i(location, v int32) { gogl.Uniform1i(location, v) }

func (Functions) GenVertexArray() uint32 {
	var n uint32
	gogl.GenVertexArrays(1, &n)
	return n
}
func (Functions) BindVertexArray(array uint32)                { gogl.BindVertexArray(array) }
func (Functions) DeleteVertexArray(array uint32)              { gogl.DeleteVertexArrays(1, &array) }
func (Functions) DrawArrays(mode gl.Enum, first, count int32) { gogl.DrawArrays(uint32(mode), first, count) }

func (Functions) ColorMask(r, g, b, a bool) { gogl.ColorMask(r, g, b, a) }
func (Functions) DepthMask(flag bool)       { gogl.DepthMask(flag) }
func (Functions) DepthFunc(fn gl.Enum)      { gogl.DepthFunc(uint32(fn)) }
func (Functions) StencilMask(mask uint32)   { gogl.StencilMask(mask) }
func (Functions) StencilFunc(fn gl.Enum, ref int32, mask uint32) {
	gogl.StencilFunc(uint32(fn), ref, mask)
}
func (Functions) StencilOp(fail, zfail, zpass gl.Enum) {
	gogl.StencilOp(uint32(fail), uint32(zfail), uint32(zpass))
}
func (Functions) SampleMaski(index, mask uint32) { gogl.SampleMaski(index, mask) }
func (Functions) ClearStencil(s int32)           { gogl.ClearStencil(s) }
func (Functions) Clear(mask uint32)              { gogl.Clear(mask) }
